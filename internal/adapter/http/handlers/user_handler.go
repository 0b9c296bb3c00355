package handlers

import (
	"errors"
	"estimate_request_service/internal/adapter/http/dto/request"
	"estimate_request_service/internal/adapter/http/dto/response"
	"estimate_request_service/internal/adapter/http/middleware"
	"estimate_request_service/internal/usecase"
	"estimate_request_service/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errUserNotFound = pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)

type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

// CreateUser godoc
// @Summary      Create a company user and send the welcome notification
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        request  body  request.CreateUserRequest  true  "User"
// @Success      201  {object}  response.UserResultResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var payload request.CreateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	actor, _ := middleware.ActorFrom(c)
	res, err := h.usecase.Create(c.Request.Context(), actor, payload.ToDraft())
	if err != nil {
		respondError(c, mapUserError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromUserResult(res))
}

// ResendWelcome godoc
// @Summary      Send the welcome notification again
// @Tags         users
// @Produce      json
// @Security     Bearer
// @Param        id  path  int  true  "User ID"
// @Success      200  {object}  response.UserResultResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /users/{id}/welcome [post]
func (h *UserHandler) ResendWelcome(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, errUserNotFound)
		return
	}

	actor, _ := middleware.ActorFrom(c)
	res, err := h.usecase.ResendWelcome(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, mapUserError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromUserResult(res))
}

func mapUserError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	if errors.Is(err, usecase.ErrUserNotFound) {
		return errUserNotFound
	}
	return internalError(err)
}
