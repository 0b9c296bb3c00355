package usecase

//go:generate mockgen -source=estimate_request_usecase.go -destination=../adapter/http/handlers/mocks/estimate_request_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"estimate_request_service/internal/authz"
	"estimate_request_service/internal/domain/entities"
	"estimate_request_service/internal/i18n"
	"estimate_request_service/internal/logger"
	"estimate_request_service/internal/notification"
	"estimate_request_service/internal/usecase/interfaces"
	"net/url"
	"strconv"
	"strings"
)

var (
	ErrEstimateRequestNotFound = errors.New("estimate request not found")
	ErrClientNotFound          = errors.New("client not found")
	ErrClientIDRequired        = errors.New("client id is required")
	ErrInvalidClientID         = errors.New("invalid client id")
	ErrClientHasNoEmail        = errors.New("client has no email")
	ErrSelectAction            = errors.New("select an action")
	ErrInvalidStatus           = errors.New("invalid status")
	ErrReasonRequired          = errors.New("reason is required")
)

const (
	DefaultRedirectURL = "/v1/estimate-requests"
	BulkActionDelete   = "delete"
)

// ListQuery holds the optional listing filters.
type ListQuery struct {
	Status   string
	ClientID *uint
	Search   string
	Page     int
	PerPage  int
}

type EstimateRequestList struct {
	Items   []entities.EstimateRequest
	Total   int64
	Page    int
	PerPage int
	Clients []entities.User
}

// EstimateRequestDraft is the user-editable part of a request.
type EstimateRequestDraft struct {
	Description     string
	EstimatedBudget float64
	CurrencyID      uint
	// CurrencyIDMalformed is set when the caller sent something that is not
	// a non-negative integer.
	CurrencyIDMalformed bool
	ProjectID           *uint
	EarlyRequirement    string
	RedirectURL         string
}

type EstimateRequestForm struct {
	Request    *entities.EstimateRequest
	Projects   []entities.Project
	Clients    []entities.User
	Currencies []entities.Currency
}

type SaveResult struct {
	Request  entities.EstimateRequest
	Redirect string
	Message  string
}

// ViewPermissions are the actor's raw scopes, shown next to a request.
type ViewPermissions struct {
	Delete entities.PermissionScope
	Edit   entities.PermissionScope
	Add    entities.PermissionScope
}

type EstimateRequestView struct {
	Request      entities.EstimateRequest
	EstimateLink string
	Permissions  ViewPermissions
}

type ActionResult struct {
	Message string
}

// IEstimateRequestUseCase exposes the estimate request workflow.
//
// Every operation authorizes the actor once before reading or writing.

type IEstimateRequestUseCase interface {
	List(ctx context.Context, actor entities.Actor, q ListQuery) (EstimateRequestList, error)
	CreateForm(ctx context.Context, actor entities.Actor) (EstimateRequestForm, error)
	Create(ctx context.Context, actor entities.Actor, draft EstimateRequestDraft) (SaveResult, error)
	View(ctx context.Context, actor entities.Actor, id uint) (EstimateRequestView, error)
	EditForm(ctx context.Context, actor entities.Actor, id uint) (EstimateRequestForm, error)
	Update(ctx context.Context, actor entities.Actor, id uint, draft EstimateRequestDraft) (SaveResult, error)
	ChangeStatus(ctx context.Context, actor entities.Actor, id uint, status, reason string) (ActionResult, error)
	RejectConfirmation(ctx context.Context, actor entities.Actor, id uint) (entities.EstimateRequest, error)
	Delete(ctx context.Context, actor entities.Actor, id uint) (ActionResult, error)
	BulkAction(ctx context.Context, actor entities.Actor, action string) (ActionResult, error)
	SendRequestForm(ctx context.Context, actor entities.Actor) ([]entities.User, error)
	InviteClient(ctx context.Context, actor entities.Actor, clientID string) (ActionResult, error)
}

type EstimateRequestUseCase struct {
	repo     interfaces.IEstimateRequestRepository
	users    interfaces.IUserRepository
	catalog  interfaces.ICatalogRepository
	notifier interfaces.INotificationDispatcher
	auth     interfaces.IAuthorizer
}

var _ IEstimateRequestUseCase = (*EstimateRequestUseCase)(nil)

func NewEstimateRequestUseCase(
	repo interfaces.IEstimateRequestRepository,
	users interfaces.IUserRepository,
	catalog interfaces.ICatalogRepository,
	notifier interfaces.INotificationDispatcher,
	auth interfaces.IAuthorizer,
) *EstimateRequestUseCase {
	return &EstimateRequestUseCase{
		repo:     repo,
		users:    users,
		catalog:  catalog,
		notifier: notifier,
		auth:     auth,
	}
}

func (u *EstimateRequestUseCase) List(ctx context.Context, actor entities.Actor, q ListQuery) (EstimateRequestList, error) {
	if err := u.auth.Authorize(ctx, actor, authz.CapEstimateRequestList); err != nil {
		return EstimateRequestList{}, err
	}

	status := strings.TrimSpace(q.Status)
	if status == "all" {
		status = ""
	}
	if status != "" && !entities.EstimateRequestStatus(status).Valid() {
		return EstimateRequestList{}, newValidationError(ErrInvalidStatus, "status", i18n.T(actor.Locale, "validation.invalidStatus"))
	}

	filter := interfaces.EstimateRequestFilter{
		CompanyID: actor.CompanyID,
		ClientID:  q.ClientID,
		Status:    entities.EstimateRequestStatus(status),
		Search:    q.Search,
		Page:      q.Page,
		PerPage:   q.PerPage,
	}
	// Clients without a staff view scope only ever see their own requests.
	if actor.HasRole(entities.RoleClient) && actor.Permission(authz.PermViewEstimates) == entities.ScopeNone {
		own := actor.UserID
		filter.ClientID = &own
	}

	items, total, err := u.repo.List(ctx, filter)
	if err != nil {
		return EstimateRequestList{}, err
	}
	clients, err := u.users.ListClients(ctx, actor.CompanyID, false)
	if err != nil {
		return EstimateRequestList{}, err
	}

	page, perPage := q.Page, q.PerPage
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}
	return EstimateRequestList{Items: items, Total: total, Page: page, PerPage: perPage, Clients: clients}, nil
}

func (u *EstimateRequestUseCase) CreateForm(ctx context.Context, actor entities.Actor) (EstimateRequestForm, error) {
	if err := u.auth.Authorize(ctx, actor, authz.CapEstimateRequestCreate); err != nil {
		return EstimateRequestForm{}, err
	}
	return u.form(ctx, actor, nil, actor.UserID)
}

func (u *EstimateRequestUseCase) Create(ctx context.Context, actor entities.Actor, draft EstimateRequestDraft) (SaveResult, error) {
	logger.EnterMethod("EstimateRequestUseCase.Create", "actor_id", actor.UserID)
	if err := u.auth.Authorize(ctx, actor, authz.CapEstimateRequestCreate); err != nil {
		return SaveResult{}, err
	}
	draft, err := validateDraft(actor.Locale, draft)
	if err != nil {
		return SaveResult{}, err
	}

	req := entities.EstimateRequest{
		CompanyID:        actor.CompanyID,
		ClientID:         actor.UserID,
		Description:      draft.Description,
		EstimatedBudget:  entities.RoundBudget(draft.EstimatedBudget),
		CurrencyID:       draft.CurrencyID,
		ProjectID:        draft.ProjectID,
		EarlyRequirement: draft.EarlyRequirement,
		Status:           entities.EstimateRequestStatusPending,
	}
	if err := u.repo.Create(ctx, &req); err != nil {
		logger.ExitMethodWithError("EstimateRequestUseCase.Create", err)
		return SaveResult{}, err
	}

	logger.ExitMethod("EstimateRequestUseCase.Create", "id", req.ID)
	return SaveResult{
		Request:  req,
		Redirect: redirectTarget(draft.RedirectURL),
		Message:  i18n.T(actor.Locale, "messages.recordSaved"),
	}, nil
}

func (u *EstimateRequestUseCase) View(ctx context.Context, actor entities.Actor, id uint) (EstimateRequestView, error) {
	if err := u.auth.Authorize(ctx, actor, authz.CapEstimateRequestView); err != nil {
		return EstimateRequestView{}, err
	}
	req, err := u.find(ctx, actor, id)
	if err != nil {
		return EstimateRequestView{}, err
	}
	return EstimateRequestView{
		Request:      req,
		EstimateLink: req.EstimateLink(),
		Permissions: ViewPermissions{
			Delete: actor.Permission(authz.PermDeleteEstimates),
			Edit:   actor.Permission(authz.PermEditEstimates),
			Add:    actor.Permission(authz.PermAddEstimates),
		},
	}, nil
}

func (u *EstimateRequestUseCase) EditForm(ctx context.Context, actor entities.Actor, id uint) (EstimateRequestForm, error) {
	if err := u.auth.Authorize(ctx, actor, authz.CapEstimateRequestEdit); err != nil {
		return EstimateRequestForm{}, err
	}
	req, err := u.find(ctx, actor, id)
	if err != nil {
		return EstimateRequestForm{}, err
	}
	// Projects follow the request's client, not whoever edits it.
	return u.form(ctx, actor, &req, req.ClientID)
}

func (u *EstimateRequestUseCase) Update(ctx context.Context, actor entities.Actor, id uint, draft EstimateRequestDraft) (SaveResult, error) {
	logger.EnterMethod("EstimateRequestUseCase.Update", "actor_id", actor.UserID, "id", id)
	if err := u.auth.Authorize(ctx, actor, authz.CapEstimateRequestEdit); err != nil {
		return SaveResult{}, err
	}
	draft, err := validateDraft(actor.Locale, draft)
	if err != nil {
		return SaveResult{}, err
	}
	req, err := u.find(ctx, actor, id)
	if err != nil {
		return SaveResult{}, err
	}

	req.Description = draft.Description
	req.EstimatedBudget = entities.RoundBudget(draft.EstimatedBudget)
	req.ProjectID = draft.ProjectID
	req.EarlyRequirement = draft.EarlyRequirement
	req.CurrencyID = draft.CurrencyID
	req.Status = entities.EstimateRequestStatusPending
	if err := u.repo.Update(ctx, &req); err != nil {
		logger.ExitMethodWithError("EstimateRequestUseCase.Update", err)
		return SaveResult{}, err
	}

	logger.ExitMethod("EstimateRequestUseCase.Update", "id", req.ID)
	return SaveResult{
		Request:  req,
		Redirect: redirectTarget(draft.RedirectURL),
		Message:  i18n.T(actor.Locale, "messages.updateSuccess"),
	}, nil
}

// ChangeStatus sets any of the three statuses; there is no transition
// graph. The reason is only written for rejections.
func (u *EstimateRequestUseCase) ChangeStatus(ctx context.Context, actor entities.Actor, id uint, status, reason string) (ActionResult, error) {
	if err := u.auth.Authorize(ctx, actor, authz.CapEstimateRequestChangeStatus); err != nil {
		return ActionResult{}, err
	}

	st := entities.EstimateRequestStatus(strings.TrimSpace(status))
	if st == "" {
		return ActionResult{}, newValidationError(ErrInvalidStatus, "status", i18n.T(actor.Locale, "validation.required"))
	}
	if !st.Valid() {
		return ActionResult{}, newValidationError(ErrInvalidStatus, "status", i18n.T(actor.Locale, "validation.invalidStatus"))
	}
	reason = strings.TrimSpace(reason)
	if st == entities.EstimateRequestStatusRejected && reason == "" {
		return ActionResult{}, newValidationError(ErrReasonRequired, "reason", i18n.T(actor.Locale, "validation.reasonRequired"))
	}

	if _, err := u.find(ctx, actor, id); err != nil {
		return ActionResult{}, err
	}

	var reasonPtr *string
	if st == entities.EstimateRequestStatusRejected {
		reasonPtr = &reason
	}
	if err := u.repo.UpdateStatus(ctx, id, st, reasonPtr); err != nil {
		return ActionResult{}, err
	}
	return ActionResult{Message: i18n.T(actor.Locale, "messages.updateSuccess")}, nil
}

func (u *EstimateRequestUseCase) RejectConfirmation(ctx context.Context, actor entities.Actor, id uint) (entities.EstimateRequest, error) {
	if err := u.auth.Authorize(ctx, actor, authz.CapEstimateRequestView); err != nil {
		return entities.EstimateRequest{}, err
	}
	return u.find(ctx, actor, id)
}

func (u *EstimateRequestUseCase) Delete(ctx context.Context, actor entities.Actor, id uint) (ActionResult, error) {
	if err := u.auth.Authorize(ctx, actor, authz.CapEstimateRequestDelete); err != nil {
		return ActionResult{}, err
	}
	if _, err := u.find(ctx, actor, id); err != nil {
		return ActionResult{}, err
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return ActionResult{}, err
	}
	return ActionResult{Message: i18n.T(actor.Locale, "messages.deleteSuccess")}, nil
}

// BulkAction acknowledges "delete" without deleting anything; bulk deletion
// is disabled.
func (u *EstimateRequestUseCase) BulkAction(ctx context.Context, actor entities.Actor, action string) (ActionResult, error) {
	if err := u.auth.Authorize(ctx, actor, authz.CapEstimateRequestDelete); err != nil {
		return ActionResult{}, err
	}
	if strings.TrimSpace(action) == BulkActionDelete {
		return ActionResult{Message: i18n.T(actor.Locale, "messages.deleteSuccess")}, nil
	}
	return ActionResult{}, newValidationError(ErrSelectAction, "action_type", i18n.T(actor.Locale, "messages.selectAction"))
}

func (u *EstimateRequestUseCase) SendRequestForm(ctx context.Context, actor entities.Actor) ([]entities.User, error) {
	if err := u.auth.Authorize(ctx, actor, authz.CapEstimateRequestInvite); err != nil {
		return nil, err
	}
	return u.users.ListClients(ctx, actor.CompanyID, true)
}

func (u *EstimateRequestUseCase) InviteClient(ctx context.Context, actor entities.Actor, clientID string) (ActionResult, error) {
	logger.EnterMethod("EstimateRequestUseCase.InviteClient", "actor_id", actor.UserID, "client_id", clientID)
	if err := u.auth.Authorize(ctx, actor, authz.CapEstimateRequestInvite); err != nil {
		return ActionResult{}, err
	}

	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return ActionResult{}, newValidationError(ErrClientIDRequired, "client_id", i18n.T(actor.Locale, "validation.required"))
	}
	id, err := strconv.ParseUint(clientID, 10, 64)
	if err != nil || id == 0 {
		return ActionResult{}, newValidationError(ErrInvalidClientID, "client_id", i18n.T(actor.Locale, "validation.positiveInteger"))
	}

	client, err := u.users.GetByID(ctx, uint(id))
	if err != nil {
		return ActionResult{}, err
	}
	if client.ID == 0 || !actor.SameCompany(client.CompanyID) {
		return ActionResult{}, ErrClientNotFound
	}
	if strings.TrimSpace(client.Email) == "" {
		return ActionResult{}, newValidationError(ErrClientHasNoEmail, "client_id", i18n.T(actor.Locale, "validation.clientHasNoEmail"))
	}

	delivery, err := u.notifier.Dispatch(ctx, notification.EstimateRequestInvite{}, client)
	if err != nil {
		logger.ExitMethodWithError("EstimateRequestUseCase.InviteClient", err)
		return ActionResult{}, err
	}

	logger.ExitMethod("EstimateRequestUseCase.InviteClient", "channels", delivery.Channels)
	return ActionResult{Message: i18n.T(actor.Locale, "messages.inviteEmailSuccess")}, nil
}

// find loads a request visible to the actor. Rows of another company are
// reported as missing.
func (u *EstimateRequestUseCase) find(ctx context.Context, actor entities.Actor, id uint) (entities.EstimateRequest, error) {
	if id == 0 {
		return entities.EstimateRequest{}, ErrEstimateRequestNotFound
	}
	req, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.EstimateRequest{}, err
	}
	if req.ID == 0 || !actor.SameCompany(req.CompanyID) {
		return entities.EstimateRequest{}, ErrEstimateRequestNotFound
	}
	return req, nil
}

func (u *EstimateRequestUseCase) form(ctx context.Context, actor entities.Actor, req *entities.EstimateRequest, projectClientID uint) (EstimateRequestForm, error) {
	projects, err := u.catalog.ListProjectsByClient(ctx, projectClientID)
	if err != nil {
		return EstimateRequestForm{}, err
	}
	clients, err := u.users.ListClients(ctx, actor.CompanyID, false)
	if err != nil {
		return EstimateRequestForm{}, err
	}
	currencies, err := u.catalog.ListCurrencies(ctx, actor.CompanyID)
	if err != nil {
		return EstimateRequestForm{}, err
	}
	return EstimateRequestForm{Request: req, Projects: projects, Clients: clients, Currencies: currencies}, nil
}

func validateDraft(locale string, draft EstimateRequestDraft) (EstimateRequestDraft, error) {
	draft.Description = TrimEditor(draft.Description)
	draft.EarlyRequirement = strings.TrimSpace(draft.EarlyRequirement)

	errs := fieldErrors{}
	if draft.Description == "" {
		errs.add("description", i18n.T(locale, "validation.required"))
	}
	switch {
	case draft.CurrencyIDMalformed:
		errs.add("currency_id", i18n.T(locale, "validation.positiveInteger"))
	case draft.CurrencyID == 0:
		errs.add("currency_id", i18n.T(locale, "validation.required"))
	}
	if draft.ProjectID != nil && *draft.ProjectID == 0 {
		draft.ProjectID = nil
	}
	return draft, errs.err()
}

func redirectTarget(raw string) string {
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		decoded = raw
	}
	if strings.TrimSpace(decoded) == "" {
		return DefaultRedirectURL
	}
	return decoded
}
