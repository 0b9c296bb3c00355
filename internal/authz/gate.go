// Package authz is the single authorization checkpoint of the service.
//
// Each use case operation declares the Capability it needs and calls
// Authorize once before touching any data. Rules are plain predicates over
// the actor, registered per capability on a Gate.
package authz

import (
	"context"
	"errors"

	"estimate_request_service/internal/domain/entities"
)

var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrNoRuleDefined    = errors.New("no rule defined for capability")
)

// Capability names an operation that needs authorization.
type Capability string

const (
	CapEstimateRequestList         Capability = "estimate_request.list"
	CapEstimateRequestCreate       Capability = "estimate_request.create"
	CapEstimateRequestView         Capability = "estimate_request.view"
	CapEstimateRequestEdit         Capability = "estimate_request.edit"
	CapEstimateRequestChangeStatus Capability = "estimate_request.change_status"
	CapEstimateRequestDelete       Capability = "estimate_request.delete"
	CapEstimateRequestInvite       Capability = "estimate_request.invite"
	CapUserCreate                  Capability = "user.create"
	CapUserCreateEmployee          Capability = "user.create_employee"
	CapUserCreateClient            Capability = "user.create_client"
	CapNotificationRead            Capability = "notification.read"
)

// Authorizer is what use cases depend on.
type Authorizer interface {
	Authorize(ctx context.Context, actor entities.Actor, capability Capability) error
	Can(ctx context.Context, actor entities.Actor, capability Capability) bool
}

// Gate is a registry of rules keyed by capability.
type Gate struct {
	rules map[Capability]Rule
}

var _ Authorizer = (*Gate)(nil)

func NewGate() *Gate {
	return &Gate{rules: make(map[Capability]Rule)}
}

// Register sets the rule for a capability, replacing any previous one.
func (g *Gate) Register(capability Capability, rule Rule) {
	g.rules[capability] = rule
}

// Authorize returns ErrUnauthenticated for an anonymous actor,
// ErrNoRuleDefined for an unknown capability and ErrPermissionDenied when
// the rule rejects the actor.
func (g *Gate) Authorize(_ context.Context, actor entities.Actor, capability Capability) error {
	if actor.UserID == 0 {
		return ErrUnauthenticated
	}
	rule, ok := g.rules[capability]
	if !ok {
		return ErrNoRuleDefined
	}
	if !rule(actor) {
		return ErrPermissionDenied
	}
	return nil
}

func (g *Gate) Can(ctx context.Context, actor entities.Actor, capability Capability) bool {
	return g.Authorize(ctx, actor, capability) == nil
}
