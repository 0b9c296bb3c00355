package usecase

import (
	"context"
	"errors"
	"testing"

	"estimate_request_service/internal/authz"
	"estimate_request_service/internal/domain/entities"
	"estimate_request_service/internal/notification"
	"estimate_request_service/internal/usecase/interfaces"
	mock_interfaces "estimate_request_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type estimateRequestMocks struct {
	repo     *mock_interfaces.MockIEstimateRequestRepository
	users    *mock_interfaces.MockIUserRepository
	catalog  *mock_interfaces.MockICatalogRepository
	notifier *mock_interfaces.MockINotificationDispatcher
	auth     *mock_interfaces.MockIAuthorizer
}

func newEstimateRequestUseCase(t *testing.T) (*EstimateRequestUseCase, estimateRequestMocks) {
	ctrl := gomock.NewController(t)
	m := estimateRequestMocks{
		repo:     mock_interfaces.NewMockIEstimateRequestRepository(ctrl),
		users:    mock_interfaces.NewMockIUserRepository(ctrl),
		catalog:  mock_interfaces.NewMockICatalogRepository(ctrl),
		notifier: mock_interfaces.NewMockINotificationDispatcher(ctrl),
		auth:     mock_interfaces.NewMockIAuthorizer(ctrl),
	}
	return NewEstimateRequestUseCase(m.repo, m.users, m.catalog, m.notifier, m.auth), m
}

func uintPtr(v uint) *uint { return &v }

var companyID = uint(5)

func clientActor() entities.Actor {
	return entities.Actor{UserID: 10, CompanyID: &companyID, Locale: "en", Roles: []string{entities.RoleClient}}
}

func staffActor() entities.Actor {
	return entities.Actor{
		UserID:    20,
		CompanyID: &companyID,
		Locale:    "en",
		Roles:     []string{entities.RoleEmployee},
		Permissions: map[string]entities.PermissionScope{
			authz.PermViewEstimates:   entities.ScopeAll,
			authz.PermEditEstimates:   entities.ScopeAll,
			authz.PermDeleteEstimates: entities.ScopeOwned,
			authz.PermAddEstimates:    entities.ScopeAdded,
		},
	}
}

func storedRequest(status entities.EstimateRequestStatus) entities.EstimateRequest {
	reason := "too expensive"
	return entities.EstimateRequest{
		ID:          7,
		CompanyID:   &companyID,
		ClientID:    10,
		Description: "<p>Site</p>",
		CurrencyID:  1,
		Status:      status,
		Reason:      &reason,
	}
}

func TestEstimateRequestUseCase_Authorization(t *testing.T) {
	t.Run("denied stops before any repository call", func(t *testing.T) {
		uc, m := newEstimateRequestUseCase(t)
		m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), authz.CapEstimateRequestDelete).Return(authz.ErrPermissionDenied).Times(1)

		_, err := uc.Delete(context.Background(), clientActor(), 7)
		if !errors.Is(err, authz.ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
	})

	t.Run("each operation declares its capability", func(t *testing.T) {
		ctx := context.Background()
		cases := []struct {
			name       string
			capability authz.Capability
			call       func(uc *EstimateRequestUseCase) error
		}{
			{"list", authz.CapEstimateRequestList, func(uc *EstimateRequestUseCase) error {
				_, err := uc.List(ctx, staffActor(), ListQuery{})
				return err
			}},
			{"create form", authz.CapEstimateRequestCreate, func(uc *EstimateRequestUseCase) error {
				_, err := uc.CreateForm(ctx, staffActor())
				return err
			}},
			{"create", authz.CapEstimateRequestCreate, func(uc *EstimateRequestUseCase) error {
				_, err := uc.Create(ctx, staffActor(), EstimateRequestDraft{})
				return err
			}},
			{"view", authz.CapEstimateRequestView, func(uc *EstimateRequestUseCase) error {
				_, err := uc.View(ctx, staffActor(), 1)
				return err
			}},
			{"edit form", authz.CapEstimateRequestEdit, func(uc *EstimateRequestUseCase) error {
				_, err := uc.EditForm(ctx, staffActor(), 1)
				return err
			}},
			{"update", authz.CapEstimateRequestEdit, func(uc *EstimateRequestUseCase) error {
				_, err := uc.Update(ctx, staffActor(), 1, EstimateRequestDraft{})
				return err
			}},
			{"change status", authz.CapEstimateRequestChangeStatus, func(uc *EstimateRequestUseCase) error {
				_, err := uc.ChangeStatus(ctx, staffActor(), 1, "accepted", "")
				return err
			}},
			{"reject confirmation", authz.CapEstimateRequestView, func(uc *EstimateRequestUseCase) error {
				_, err := uc.RejectConfirmation(ctx, staffActor(), 1)
				return err
			}},
			{"bulk action", authz.CapEstimateRequestDelete, func(uc *EstimateRequestUseCase) error {
				_, err := uc.BulkAction(ctx, staffActor(), "delete")
				return err
			}},
			{"send request form", authz.CapEstimateRequestInvite, func(uc *EstimateRequestUseCase) error {
				_, err := uc.SendRequestForm(ctx, staffActor())
				return err
			}},
			{"invite", authz.CapEstimateRequestInvite, func(uc *EstimateRequestUseCase) error {
				_, err := uc.InviteClient(ctx, staffActor(), "3")
				return err
			}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc, m := newEstimateRequestUseCase(t)
				m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), tc.capability).Return(authz.ErrPermissionDenied).Times(1)
				if err := tc.call(uc); !errors.Is(err, authz.ErrPermissionDenied) {
					t.Fatalf("expected ErrPermissionDenied, got %v", err)
				}
			})
		}
	})
}

func TestEstimateRequestUseCase_List(t *testing.T) {
	t.Run("client without view scope only sees own requests", func(t *testing.T) {
		uc, m := newEstimateRequestUseCase(t)
		actor := clientActor()
		m.auth.EXPECT().Authorize(gomock.Any(), actor, authz.CapEstimateRequestList).Return(nil)
		m.repo.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f interfaces.EstimateRequestFilter) ([]entities.EstimateRequest, int64, error) {
				if f.ClientID == nil || *f.ClientID != actor.UserID {
					t.Fatalf("expected client scope %d, got %+v", actor.UserID, f.ClientID)
				}
				if f.CompanyID == nil || *f.CompanyID != companyID {
					t.Fatalf("expected company scope, got %+v", f.CompanyID)
				}
				return []entities.EstimateRequest{storedRequest(entities.EstimateRequestStatusPending)}, 1, nil
			},
		)
		m.users.EXPECT().ListClients(gomock.Any(), actor.CompanyID, false).Return(nil, nil)

		res, err := uc.List(context.Background(), actor, ListQuery{ClientID: uintPtr(99)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Total != 1 || len(res.Items) != 1 || res.Page != 1 || res.PerPage != 20 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("staff filters pass through", func(t *testing.T) {
		uc, m := newEstimateRequestUseCase(t)
		m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), authz.CapEstimateRequestList).Return(nil)
		m.repo.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f interfaces.EstimateRequestFilter) ([]entities.EstimateRequest, int64, error) {
				if f.ClientID == nil || *f.ClientID != 3 || f.Status != entities.EstimateRequestStatusRejected || f.Search != "logo" {
					t.Fatalf("unexpected filter: %+v", f)
				}
				return nil, 0, nil
			},
		)
		m.users.EXPECT().ListClients(gomock.Any(), gomock.Any(), false).Return([]entities.User{{ID: 3}}, nil)

		res, err := uc.List(context.Background(), staffActor(), ListQuery{
			Status: "rejected", ClientID: uintPtr(3), Search: "logo", PerPage: 500,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PerPage != 100 || len(res.Clients) != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("invalid status filter", func(t *testing.T) {
		uc, m := newEstimateRequestUseCase(t)
		m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		_, err := uc.List(context.Background(), staffActor(), ListQuery{Status: "archived"})
		if !errors.Is(err, ErrValidation) || !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected invalid status validation error, got %v", err)
		}
	})
}

func TestEstimateRequestUseCase_Create(t *testing.T) {
	t.Run("validation errors", func(t *testing.T) {
		uc, m := newEstimateRequestUseCase(t)
		m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := uc.Create(context.Background(), clientActor(), EstimateRequestDraft{Description: " <p><br></p> "})
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if _, ok := ve.Fields["description"]; !ok {
			t.Fatalf("expected description error, got %+v", ve.Fields)
		}
		if _, ok := ve.Fields["currency_id"]; !ok {
			t.Fatalf("expected currency_id error, got %+v", ve.Fields)
		}
	})

	t.Run("malformed currency is a field error", func(t *testing.T) {
		uc, m := newEstimateRequestUseCase(t)
		m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := uc.Create(context.Background(), clientActor(), EstimateRequestDraft{Description: "x", CurrencyIDMalformed: true})
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if ve.Fields["currency_id"] != "This field must be a positive integer." {
			t.Fatalf("unexpected currency_id error: %+v", ve.Fields)
		}
	})

	t.Run("forces pending, rounds budget and copies company", func(t *testing.T) {
		uc, m := newEstimateRequestUseCase(t)
		actor := clientActor()
		m.auth.EXPECT().Authorize(gomock.Any(), actor, authz.CapEstimateRequestCreate).Return(nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(&entities.EstimateRequest{})).DoAndReturn(
			func(_ context.Context, r *entities.EstimateRequest) error {
				if r.Status != entities.EstimateRequestStatusPending {
					t.Fatalf("expected pending, got %s", r.Status)
				}
				if r.EstimatedBudget != 12.35 {
					t.Fatalf("expected 12.35, got %v", r.EstimatedBudget)
				}
				if r.ClientID != actor.UserID || r.CompanyID == nil || *r.CompanyID != companyID {
					t.Fatalf("unexpected ownership: %+v", r)
				}
				if r.ProjectID != nil {
					t.Fatalf("expected zero project to be cleared")
				}
				r.ID = 44
				return nil
			},
		)

		res, err := uc.Create(context.Background(), actor, EstimateRequestDraft{
			Description:     " <p>Logo</p> ",
			EstimatedBudget: 12.3456,
			CurrencyID:      2,
			ProjectID:       uintPtr(0),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Request.ID != 44 || res.Request.Description != "<p>Logo</p>" {
			t.Fatalf("unexpected request: %+v", res.Request)
		}
		if res.Redirect != DefaultRedirectURL {
			t.Fatalf("expected default redirect, got %q", res.Redirect)
		}
		if res.Message != "Record saved successfully." {
			t.Fatalf("unexpected message %q", res.Message)
		}
	})

	t.Run("decodes redirect url", func(t *testing.T) {
		uc, m := newEstimateRequestUseCase(t)
		m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.Create(context.Background(), clientActor(), EstimateRequestDraft{
			Description: "x", CurrencyID: 1, RedirectURL: "%2Fv1%2Fprojects%2F3",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Redirect != "/v1/projects/3" {
			t.Fatalf("unexpected redirect %q", res.Redirect)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		uc, m := newEstimateRequestUseCase(t)
		m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db"))

		_, err := uc.Create(context.Background(), clientActor(), EstimateRequestDraft{Description: "x", CurrencyID: 1})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestEstimateRequestUseCase_Update(t *testing.T) {
	t.Run("resets status to pending from any status", func(t *testing.T) {
		for _, prior := range []entities.EstimateRequestStatus{
			entities.EstimateRequestStatusAccepted,
			entities.EstimateRequestStatusRejected,
			entities.EstimateRequestStatusPending,
		} {
			t.Run(string(prior), func(t *testing.T) {
				uc, m := newEstimateRequestUseCase(t)
				m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), authz.CapEstimateRequestEdit).Return(nil)
				m.repo.EXPECT().GetByID(gomock.Any(), uint(7)).Return(storedRequest(prior), nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r *entities.EstimateRequest) error {
						if r.Status != entities.EstimateRequestStatusPending {
							t.Fatalf("expected pending, got %s", r.Status)
						}
						if r.EstimatedBudget != 5 || r.CurrencyID != 3 || r.Description != "new" {
							t.Fatalf("unexpected update: %+v", r)
						}
						return nil
					},
				)

				res, err := uc.Update(context.Background(), staffActor(), 7, EstimateRequestDraft{
					Description: "new", EstimatedBudget: 5, CurrencyID: 3,
				})
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if res.Message != "Record updated successfully." {
					t.Fatalf("unexpected message %q", res.Message)
				}
			})
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newEstimateRequestUseCase(t)
		m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.repo.EXPECT().GetByID(gomock.Any(), uint(7)).Return(entities.EstimateRequest{}, nil)

		_, err := uc.Update(context.Background(), staffActor(), 7, EstimateRequestDraft{Description: "x", CurrencyID: 1})
		if !errors.Is(err, ErrEstimateRequestNotFound) {
			t.Fatalf("expected ErrEstimateRequestNotFound, got %v", err)
		}
	})

	t.Run("other company is not found", func(t *testing.T) {
		uc, m := newEstimateRequestUseCase(t)
		m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		other := storedRequest(entities.EstimateRequestStatusPending)
		other.CompanyID = uintPtr(99)
		m.repo.EXPECT().GetByID(gomock.Any(), uint(7)).Return(other, nil)

		_, err := uc.Update(context.Background(), staffActor(), 7, EstimateRequestDraft{Description: "x", CurrencyID: 1})
		if !errors.Is(err, ErrEstimateRequestNotFound) {
			t.Fatalf("expected ErrEstimateRequestNotFound, got %v", err)
		}
	})
}

func TestEstimateRequestUseCase_ViewAndForms(t *testing.T) {
	t.Run("view returns placeholder link and raw scopes", func(t *testing.T) {
		uc, m := newEstimateRequestUseCase(t)
		m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), authz.CapEstimateRequestView).Return(nil)
		m.repo.EXPECT().GetByID(gomock.Any(), uint(7)).Return(storedRequest(entities.EstimateRequestStatusPending), nil)

		v, err := uc.View(context.Background(), staffActor(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.EstimateLink != entities.EstimateLinkPlaceholder {
			t.Fatalf("expected placeholder, got %q", v.EstimateLink)
		}
		if v.Permissions.Delete != entities.ScopeOwned || v.Permissions.Edit != entities.ScopeAll || v.Permissions.Add != entities.ScopeAdded {
			t.Fatalf("unexpected permissions: %+v", v.Permissions)
		}
	})

	t.Run("view shows linked estimate number", func(t *testing.T) {
		uc, m := newEstimateRequestUseCase(t)
		req := storedRequest(entities.EstimateRequestStatusAccepted)
		req.Estimate = &entities.Estimate{ID: 3, EstimateNumber: "EST#003"}
		m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.repo.EXPECT().GetByID(gomock.Any(), uint(7)).Return(req, nil)

		v, err := uc.View(context.Background(), clientActor(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.EstimateLink != req.Estimate.DisplayLabel() {
			t.Fatalf("unexpected link %q", v.EstimateLink)
		}
	})

	t.Run("edit form scopes projects to request client", func(t *testing.T) {
		uc, m := newEstimateRequestUseCase(t)
		m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), authz.CapEstimateRequestEdit).Return(nil)
		m.repo.EXPECT().GetByID(gomock.Any(), uint(7)).Return(storedRequest(entities.EstimateRequestStatusPending), nil)
		m.catalog.EXPECT().ListProjectsByClient(gomock.Any(), uint(10)).Return([]entities.Project{{ID: 1}}, nil)
		m.users.EXPECT().ListClients(gomock.Any(), gomock.Any(), false).Return(nil, nil)
		m.catalog.EXPECT().ListCurrencies(gomock.Any(), gomock.Any()).Return([]entities.Currency{{ID: 1}}, nil)

		form, err := uc.EditForm(context.Background(), staffActor(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if form.Request == nil || form.Request.ID != 7 || len(form.Projects) != 1 || len(form.Currencies) != 1 {
			t.Fatalf("unexpected form: %+v", form)
		}
	})

	t.Run("create form uses the acting client", func(t *testing.T) {
		uc, m := newEstimateRequestUseCase(t)
		m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), authz.CapEstimateRequestCreate).Return(nil)
		m.catalog.EXPECT().ListProjectsByClient(gomock.Any(), uint(10)).Return(nil, nil)
		m.users.EXPECT().ListClients(gomock.Any(), gomock.Any(), false).Return(nil, nil)
		m.catalog.EXPECT().ListCurrencies(gomock.Any(), gomock.Any()).Return(nil, nil)

		form, err := uc.CreateForm(context.Background(), clientActor())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if form.Request != nil {
			t.Fatalf("expected no request on create form")
		}
	})

	t.Run("reject confirmation not found", func(t *testing.T) {
		uc, m := newEstimateRequestUseCase(t)
		m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), authz.CapEstimateRequestView).Return(nil)
		m.repo.EXPECT().GetByID(gomock.Any(), uint(8)).Return(entities.EstimateRequest{}, nil)

		_, err := uc.RejectConfirmation(context.Background(), staffActor(), 8)
		if !errors.Is(err, ErrEstimateRequestNotFound) {
			t.Fatalf("expected ErrEstimateRequestNotFound, got %v", err)
		}
	})
}

func TestEstimateRequestUseCase_ChangeStatus(t *testing.T) {
	t.Run("rejected stores reason", func(t *testing.T) {
		uc, m := newEstimateRequestUseCase(t)
		m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), authz.CapEstimateRequestChangeStatus).Return(nil)
		m.repo.EXPECT().GetByID(gomock.Any(), uint(7)).Return(storedRequest(entities.EstimateRequestStatusPending), nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), uint(7), entities.EstimateRequestStatusRejected, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uint, _ entities.EstimateRequestStatus, reason *string) error {
				if reason == nil || *reason != "no budget" {
					t.Fatalf("expected reason, got %v", reason)
				}
				return nil
			},
		)

		res, err := uc.ChangeStatus(context.Background(), staffActor(), 7, "rejected", " no budget ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Message != "Record updated successfully." {
			t.Fatalf("unexpected message %q", res.Message)
		}
	})

	t.Run("other statuses leave reason untouched", func(t *testing.T) {
		uc, m := newEstimateRequestUseCase(t)
		m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.repo.EXPECT().GetByID(gomock.Any(), uint(7)).Return(storedRequest(entities.EstimateRequestStatusRejected), nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), uint(7), entities.EstimateRequestStatusAccepted, nil).Return(nil)

		if _, err := uc.ChangeStatus(context.Background(), staffActor(), 7, "accepted", "ignored"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejected without reason", func(t *testing.T) {
		uc, m := newEstimateRequestUseCase(t)
		m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := uc.ChangeStatus(context.Background(), staffActor(), 7, "rejected", "  ")
		if !errors.Is(err, ErrReasonRequired) || !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrReasonRequired, got %v", err)
		}
	})

	t.Run("unknown or missing status", func(t *testing.T) {
		for _, status := range []string{"", "archived"} {
			uc, m := newEstimateRequestUseCase(t)
			m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			_, err := uc.ChangeStatus(context.Background(), staffActor(), 7, status, "")
			if !errors.Is(err, ErrInvalidStatus) {
				t.Fatalf("status %q: expected ErrInvalidStatus, got %v", status, err)
			}
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newEstimateRequestUseCase(t)
		m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.repo.EXPECT().GetByID(gomock.Any(), uint(7)).Return(entities.EstimateRequest{}, nil)

		_, err := uc.ChangeStatus(context.Background(), staffActor(), 7, "accepted", "")
		if !errors.Is(err, ErrEstimateRequestNotFound) {
			t.Fatalf("expected ErrEstimateRequestNotFound, got %v", err)
		}
	})
}

func TestEstimateRequestUseCase_DeleteAndBulk(t *testing.T) {
	t.Run("delete", func(t *testing.T) {
		uc, m := newEstimateRequestUseCase(t)
		m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), authz.CapEstimateRequestDelete).Return(nil)
		m.repo.EXPECT().GetByID(gomock.Any(), uint(7)).Return(storedRequest(entities.EstimateRequestStatusPending), nil)
		m.repo.EXPECT().Delete(gomock.Any(), uint(7)).Return(nil)

		res, err := uc.Delete(context.Background(), staffActor(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Message != "Record deleted successfully." {
			t.Fatalf("unexpected message %q", res.Message)
		}
	})

	t.Run("delete not found", func(t *testing.T) {
		uc, m := newEstimateRequestUseCase(t)
		m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.repo.EXPECT().GetByID(gomock.Any(), uint(7)).Return(entities.EstimateRequest{}, nil)

		_, err := uc.Delete(context.Background(), staffActor(), 7)
		if !errors.Is(err, ErrEstimateRequestNotFound) {
			t.Fatalf("expected ErrEstimateRequestNotFound, got %v", err)
		}
	})

	t.Run("bulk delete succeeds without deleting", func(t *testing.T) {
		uc, m := newEstimateRequestUseCase(t)
		m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), authz.CapEstimateRequestDelete).Return(nil)
		// no repository expectations: any call fails the test

		res, err := uc.BulkAction(context.Background(), staffActor(), "delete")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Message != "Record deleted successfully." {
			t.Fatalf("unexpected message %q", res.Message)
		}
	})

	t.Run("bulk other action", func(t *testing.T) {
		uc, m := newEstimateRequestUseCase(t)
		m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := uc.BulkAction(context.Background(), staffActor(), "archive")
		if !errors.Is(err, ErrSelectAction) {
			t.Fatalf("expected ErrSelectAction, got %v", err)
		}
	})
}

func TestEstimateRequestUseCase_InviteClient(t *testing.T) {
	t.Run("empty id fails without lookup", func(t *testing.T) {
		uc, m := newEstimateRequestUseCase(t)
		m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), authz.CapEstimateRequestInvite).Return(nil)

		_, err := uc.InviteClient(context.Background(), staffActor(), "  ")
		if !errors.Is(err, ErrClientIDRequired) || !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrClientIDRequired, got %v", err)
		}
	})

	t.Run("non numeric id", func(t *testing.T) {
		uc, m := newEstimateRequestUseCase(t)
		m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := uc.InviteClient(context.Background(), staffActor(), "abc")
		if !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("client not found", func(t *testing.T) {
		uc, m := newEstimateRequestUseCase(t)
		m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.users.EXPECT().GetByID(gomock.Any(), uint(3)).Return(entities.User{}, nil)

		_, err := uc.InviteClient(context.Background(), staffActor(), "3")
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("client without email is looked up then rejected", func(t *testing.T) {
		uc, m := newEstimateRequestUseCase(t)
		m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.users.EXPECT().GetByID(gomock.Any(), uint(3)).Return(entities.User{ID: 3, CompanyID: &companyID}, nil).Times(1)

		_, err := uc.InviteClient(context.Background(), staffActor(), "3")
		if !errors.Is(err, ErrClientHasNoEmail) || !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrClientHasNoEmail, got %v", err)
		}
	})

	t.Run("dispatches invite", func(t *testing.T) {
		uc, m := newEstimateRequestUseCase(t)
		client := entities.User{ID: 3, CompanyID: &companyID, Email: "c@example.com"}
		m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.users.EXPECT().GetByID(gomock.Any(), uint(3)).Return(client, nil)
		m.notifier.EXPECT().Dispatch(gomock.Any(), notification.EstimateRequestInvite{}, client).Return(notification.Delivery{
			Channels: []notification.Channel{notification.ChannelDatabase, notification.ChannelMail},
		}, nil)

		res, err := uc.InviteClient(context.Background(), staffActor(), "3")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Message != "Invitation email sent successfully." {
			t.Fatalf("unexpected message %q", res.Message)
		}
	})

	t.Run("dispatch error", func(t *testing.T) {
		uc, m := newEstimateRequestUseCase(t)
		m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.users.EXPECT().GetByID(gomock.Any(), uint(3)).Return(entities.User{ID: 3, CompanyID: &companyID, Email: "c@example.com"}, nil)
		m.notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(notification.Delivery{}, errors.New("smtp"))

		_, err := uc.InviteClient(context.Background(), staffActor(), "3")
		if err == nil || err.Error() != "smtp" {
			t.Fatalf("expected smtp error, got %v", err)
		}
	})

	t.Run("send request form lists clients with email", func(t *testing.T) {
		uc, m := newEstimateRequestUseCase(t)
		m.auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), authz.CapEstimateRequestInvite).Return(nil)
		m.users.EXPECT().ListClients(gomock.Any(), gomock.Any(), true).Return([]entities.User{{ID: 3}}, nil)

		clients, err := uc.SendRequestForm(context.Background(), staffActor())
		if err != nil || len(clients) != 1 {
			t.Fatalf("unexpected result %v %v", clients, err)
		}
	})
}

func TestTrimEditor(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "<p><br></p>", want: ""},
		{in: "  <p><br/></p>\n", want: ""},
		{in: "<p></p><p><br></p>", want: ""},
		{in: " <p>a</p><p><br></p> ", want: "<p>a</p><p><br></p>"},
		{in: "plain", want: "plain"},
	}
	for _, tc := range cases {
		if got := TrimEditor(tc.in); got != tc.want {
			t.Fatalf("TrimEditor(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
