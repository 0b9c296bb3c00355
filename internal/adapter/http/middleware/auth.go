package middleware

import (
	"errors"
	"estimate_request_service/internal/domain/entities"
	"estimate_request_service/internal/logger"
	"estimate_request_service/internal/security"
	"estimate_request_service/pkg"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

var (
	errMissingToken   = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authorization token is not provided", http.StatusUnauthorized)
	errInvalidToken   = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Invalid token", http.StatusUnauthorized)
	errExpiredToken   = pkg.NewDomainErrorSimple("TOKEN_EXPIRED", "Token has expired", http.StatusUnauthorized)
	errModuleDisabled = pkg.NewDomainErrorSimple("MODULE_DISABLED", "This module is not enabled for your account", http.StatusForbidden)
)

// Authenticate validates the Bearer token and stores the Actor it carries.
func Authenticate(tm security.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		claims, err := tm.ValidateToken(token)
		if err != nil {
			logger.Debug("rejected bearer token", "path", c.FullPath(), "error", err)
			appErr := errInvalidToken
			if errors.Is(err, security.ErrExpiredToken) {
				appErr = errExpiredToken
			}
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		SetActor(c, claims.Actor())
		c.Next()
	}
}

// RequireModule rejects actors whose company has not enabled module.
func RequireModule(module string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok || !actor.HasModule(module) {
			c.AbortWithStatusJSON(errModuleDisabled.HTTPStatus, errModuleDisabled.ToHTTPError())
			return
		}
		c.Next()
	}
}

func SetActor(c *gin.Context, actor entities.Actor) {
	c.Set(actorKey, actor)
}

// ActorFrom returns the authenticated actor, or the zero Actor when the
// request went through no authentication.
func ActorFrom(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok
}

func extractToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
