package handlers

import (
	"errors"
	"estimate_request_service/internal/authz"
	"estimate_request_service/internal/usecase"
	"estimate_request_service/pkg"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errValidation       = pkg.NewDomainErrorSimple("VALIDATION_ERROR", "The given data was invalid", http.StatusUnprocessableEntity)
	errUnauthenticated  = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Unauthenticated", http.StatusUnauthorized)
	errPermissionDenied = pkg.NewDomainErrorSimple("PERMISSION_DENIED", "You are not allowed to perform this action", http.StatusForbidden)
)

// mapCommonError handles the errors every use case can return. It reports
// false when err needs a handler specific mapping.
func mapCommonError(err error) (*pkg.AppError, bool) {
	var ve *usecase.ValidationError
	switch {
	case errors.As(err, &ve):
		return errValidation.WithFields(ve.Fields), true
	case errors.Is(err, authz.ErrUnauthenticated):
		return errUnauthenticated, true
	case errors.Is(err, authz.ErrPermissionDenied), errors.Is(err, authz.ErrNoRuleDefined):
		return errPermissionDenied, true
	default:
		return nil, false
	}
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// pathID parses a positive numeric path parameter.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
