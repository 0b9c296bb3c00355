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

var (
	errEstimateRequestNotFound = pkg.NewDomainErrorSimple("ESTIMATE_REQUEST_NOT_FOUND", "Estimate request not found", http.StatusNotFound)
	errClientNotFound          = pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
)

// EstimateRequestHandler handles HTTP requests for client estimate requests.

type EstimateRequestHandler struct {
	usecase usecase.IEstimateRequestUseCase
}

func NewEstimateRequestHandler(uc usecase.IEstimateRequestUseCase) *EstimateRequestHandler {
	return &EstimateRequestHandler{usecase: uc}
}

// List godoc
// @Summary      List estimate requests
// @Tags         estimate-requests
// @Produce      json
// @Security     Bearer
// @Param        status     query  string  false  "pending, accepted, rejected or all"
// @Param        client_id  query  int     false  "Client filter"
// @Param        search     query  string  false  "Search in description"
// @Param        page       query  int     false  "Page"
// @Param        per_page   query  int     false  "Page size"
// @Success      200  {object}  response.EstimateRequestListResponse
// @Failure      422  {object}  pkg.HTTPError
// @Router       /estimate-requests [get]
func (h *EstimateRequestHandler) List(c *gin.Context) {
	var q request.EstimateRequestListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	actor, _ := middleware.ActorFrom(c)
	list, err := h.usecase.List(c.Request.Context(), actor, q.ToListQuery())
	if err != nil {
		respondError(c, mapEstimateRequestError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateRequestList(list))
}

// CreateForm godoc
// @Summary      Data needed to fill a new estimate request
// @Tags         estimate-requests
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.EstimateRequestFormResponse
// @Router       /estimate-requests/create [get]
func (h *EstimateRequestHandler) CreateForm(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)
	form, err := h.usecase.CreateForm(c.Request.Context(), actor)
	if err != nil {
		respondError(c, mapEstimateRequestError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateRequestForm(form))
}

// Create godoc
// @Summary      Submit an estimate request
// @Tags         estimate-requests
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        request  body  request.EstimateRequestPayload  true  "Estimate request"
// @Success      201  {object}  response.SaveResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /estimate-requests [post]
func (h *EstimateRequestHandler) Create(c *gin.Context) {
	var payload request.EstimateRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	actor, _ := middleware.ActorFrom(c)
	res, err := h.usecase.Create(c.Request.Context(), actor, payload.ToDraft())
	if err != nil {
		respondError(c, mapEstimateRequestError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromSaveResult(res))
}

// View godoc
// @Summary      Show an estimate request
// @Tags         estimate-requests
// @Produce      json
// @Security     Bearer
// @Param        id  path  int  true  "Estimate request ID"
// @Success      200  {object}  response.EstimateRequestViewResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimate-requests/{id} [get]
func (h *EstimateRequestHandler) View(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, errEstimateRequestNotFound)
		return
	}

	actor, _ := middleware.ActorFrom(c)
	view, err := h.usecase.View(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, mapEstimateRequestError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateRequestView(view))
}

// EditForm godoc
// @Summary      Data needed to edit an estimate request
// @Tags         estimate-requests
// @Produce      json
// @Security     Bearer
// @Param        id  path  int  true  "Estimate request ID"
// @Success      200  {object}  response.EstimateRequestFormResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimate-requests/{id}/edit [get]
func (h *EstimateRequestHandler) EditForm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, errEstimateRequestNotFound)
		return
	}

	actor, _ := middleware.ActorFrom(c)
	form, err := h.usecase.EditForm(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, mapEstimateRequestError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateRequestForm(form))
}

// Update godoc
// @Summary      Edit an estimate request; it goes back to pending
// @Tags         estimate-requests
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id       path  int                              true  "Estimate request ID"
// @Param        request  body  request.EstimateRequestPayload  true  "Estimate request"
// @Success      200  {object}  response.SaveResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /estimate-requests/{id} [put]
func (h *EstimateRequestHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, errEstimateRequestNotFound)
		return
	}

	var payload request.EstimateRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	actor, _ := middleware.ActorFrom(c)
	res, err := h.usecase.Update(c.Request.Context(), actor, id, payload.ToDraft())
	if err != nil {
		respondError(c, mapEstimateRequestError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromSaveResult(res))
}

// Delete godoc
// @Summary      Delete an estimate request
// @Tags         estimate-requests
// @Produce      json
// @Security     Bearer
// @Param        id  path  int  true  "Estimate request ID"
// @Success      200  {object}  response.MessageResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimate-requests/{id} [delete]
func (h *EstimateRequestHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, errEstimateRequestNotFound)
		return
	}

	actor, _ := middleware.ActorFrom(c)
	res, err := h.usecase.Delete(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, mapEstimateRequestError(err))
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: res.Message})
}

// ApplyQuickAction godoc
// @Summary      Apply a bulk action
// @Tags         estimate-requests
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        request  body  request.QuickActionRequest  true  "Action"
// @Success      200  {object}  response.MessageResponse
// @Failure      422  {object}  pkg.HTTPError
// @Router       /estimate-requests/apply-quick-action [post]
func (h *EstimateRequestHandler) ApplyQuickAction(c *gin.Context) {
	var payload request.QuickActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	actor, _ := middleware.ActorFrom(c)
	res, err := h.usecase.BulkAction(c.Request.Context(), actor, payload.ActionType)
	if err != nil {
		respondError(c, mapEstimateRequestError(err))
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: res.Message})
}

// ChangeStatus godoc
// @Summary      Accept, reject or reopen an estimate request
// @Tags         estimate-requests
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        request  body  request.ChangeStatusRequest  true  "New status"
// @Success      200  {object}  response.MessageResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /estimate-requests/change-status [post]
func (h *EstimateRequestHandler) ChangeStatus(c *gin.Context) {
	var payload request.ChangeStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	actor, _ := middleware.ActorFrom(c)
	res, err := h.usecase.ChangeStatus(c.Request.Context(), actor, payload.ID, payload.Status, payload.Reason)
	if err != nil {
		respondError(c, mapEstimateRequestError(err))
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: res.Message})
}

// RejectConfirmation godoc
// @Summary      Request shown before asking for a rejection reason
// @Tags         estimate-requests
// @Produce      json
// @Security     Bearer
// @Param        id  path  int  true  "Estimate request ID"
// @Success      200  {object}  response.EstimateRequestResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimate-requests/{id}/reject-confirmation [get]
func (h *EstimateRequestHandler) RejectConfirmation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, errEstimateRequestNotFound)
		return
	}

	actor, _ := middleware.ActorFrom(c)
	req, err := h.usecase.RejectConfirmation(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, mapEstimateRequestError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateRequest(req))
}

// SendRequestForm godoc
// @Summary      Clients that can be invited to submit a request
// @Tags         estimate-requests
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  response.UserSummary
// @Router       /estimate-requests/send-request [get]
func (h *EstimateRequestHandler) SendRequestForm(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)
	clients, err := h.usecase.SendRequestForm(c.Request.Context(), actor)
	if err != nil {
		respondError(c, mapEstimateRequestError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromUserSummaries(clients))
}

// InviteClient godoc
// @Summary      Invite a client to submit an estimate request
// @Tags         estimate-requests
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        request  body  request.InviteClientRequest  true  "Client"
// @Success      200  {object}  response.MessageResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /estimate-requests/send-request [post]
func (h *EstimateRequestHandler) InviteClient(c *gin.Context) {
	var payload request.InviteClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	actor, _ := middleware.ActorFrom(c)
	res, err := h.usecase.InviteClient(c.Request.Context(), actor, payload.ClientID)
	if err != nil {
		respondError(c, mapEstimateRequestError(err))
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: res.Message})
}

func mapEstimateRequestError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrEstimateRequestNotFound):
		return errEstimateRequestNotFound
	case errors.Is(err, usecase.ErrClientNotFound):
		return errClientNotFound
	default:
		return internalError(err)
	}
}
