package authz

import "estimate_request_service/internal/domain/entities"

// Rule decides whether an actor holds a capability.
type Rule func(actor entities.Actor) bool

// Permission names as stored on staff roles.
const (
	PermViewEstimates   = "view_estimates"
	PermAddEstimates    = "add_estimates"
	PermEditEstimates   = "edit_estimates"
	PermDeleteEstimates = "delete_estimates"
	PermAddEmployees    = "add_employees"
	PermAddClients      = "add_clients"
)

var (
	anyScope     = []entities.PermissionScope{entities.ScopeAll, entities.ScopeAdded, entities.ScopeOwned, entities.ScopeBoth}
	creatorScope = []entities.PermissionScope{entities.ScopeAll, entities.ScopeAdded}
)

func Authenticated() Rule {
	return func(entities.Actor) bool { return true }
}

func HasRole(role string) Rule {
	return func(a entities.Actor) bool { return a.HasRole(role) }
}

// HasScope passes when the actor's scope for permission is one of scopes.
func HasScope(permission string, scopes ...entities.PermissionScope) Rule {
	return func(a entities.Actor) bool {
		got := a.Permission(permission)
		for _, s := range scopes {
			if got == s {
				return true
			}
		}
		return false
	}
}

func AnyOf(rules ...Rule) Rule {
	return func(a entities.Actor) bool {
		for _, r := range rules {
			if r(a) {
				return true
			}
		}
		return false
	}
}

// CreateUserCapability is the capability needed to create a user with the
// given role. Unknown roles map to the generic one.
func CreateUserCapability(role string) Capability {
	switch role {
	case entities.RoleEmployee:
		return CapUserCreateEmployee
	case entities.RoleClient:
		return CapUserCreateClient
	}
	return CapUserCreate
}

// NewDefaultGate registers the rules used by the HTTP API.
func NewDefaultGate() *Gate {
	g := NewGate()

	g.Register(CapEstimateRequestList, AnyOf(HasScope(PermViewEstimates, anyScope...), HasRole(entities.RoleClient)))
	g.Register(CapEstimateRequestCreate, HasRole(entities.RoleClient))
	g.Register(CapEstimateRequestView, Authenticated())
	g.Register(CapEstimateRequestEdit, AnyOf(HasRole(entities.RoleClient), HasScope(PermAddEstimates, creatorScope...)))
	g.Register(CapEstimateRequestChangeStatus, HasScope(PermEditEstimates, anyScope...))
	g.Register(CapEstimateRequestDelete, HasScope(PermDeleteEstimates, anyScope...))
	g.Register(CapEstimateRequestInvite, Authenticated())
	g.Register(CapUserCreate, AnyOf(HasScope(PermAddEmployees, creatorScope...), HasScope(PermAddClients, creatorScope...)))
	g.Register(CapUserCreateEmployee, HasScope(PermAddEmployees, creatorScope...))
	g.Register(CapUserCreateClient, HasScope(PermAddClients, creatorScope...))
	g.Register(CapNotificationRead, Authenticated())

	return g
}
