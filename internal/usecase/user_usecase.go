package usecase

//go:generate mockgen -source=user_usecase.go -destination=../adapter/http/handlers/mocks/user_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"estimate_request_service/internal/authz"
	"estimate_request_service/internal/domain/entities"
	"estimate_request_service/internal/i18n"
	"estimate_request_service/internal/logger"
	"estimate_request_service/internal/notification"
	"estimate_request_service/internal/usecase/interfaces"
	"strings"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already taken")
)

const minPasswordLength = 8

type UserDraft struct {
	Name               string
	Email              string
	Password           string
	Role               string
	Locale             string
	EmailNotifications *bool
	SlackUsername      string
}

type UserResult struct {
	User     entities.User
	Channels []notification.Channel
	Message  string
}

// IUserUseCase creates company users and sends their welcome notification.

type IUserUseCase interface {
	Create(ctx context.Context, actor entities.Actor, draft UserDraft) (UserResult, error)
	ResendWelcome(ctx context.Context, actor entities.Actor, userID uint) (UserResult, error)
}

type UserUseCase struct {
	users    interfaces.IUserRepository
	hasher   interfaces.IPasswordHasher
	notifier interfaces.INotificationDispatcher
	auth     interfaces.IAuthorizer
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(
	users interfaces.IUserRepository,
	hasher interfaces.IPasswordHasher,
	notifier interfaces.INotificationDispatcher,
	auth interfaces.IAuthorizer,
) *UserUseCase {
	return &UserUseCase{users: users, hasher: hasher, notifier: notifier, auth: auth}
}

// Create stores the user and welcomes them with their password. A failed
// notification is logged and does not undo the creation.
func (u *UserUseCase) Create(ctx context.Context, actor entities.Actor, draft UserDraft) (UserResult, error) {
	logger.EnterMethod("UserUseCase.Create", "actor_id", actor.UserID)
	if err := u.auth.Authorize(ctx, actor, authz.CapUserCreate); err != nil {
		return UserResult{}, err
	}

	draft.Name = strings.TrimSpace(draft.Name)
	draft.Email = strings.ToLower(strings.TrimSpace(draft.Email))
	draft.Role = strings.TrimSpace(draft.Role)

	errs := fieldErrors{}
	if draft.Name == "" {
		errs.add("name", i18n.T(actor.Locale, "validation.required"))
	}
	if draft.Email == "" {
		errs.add("email", i18n.T(actor.Locale, "validation.required"))
	} else if !emailPattern.MatchString(draft.Email) {
		errs.add("email", i18n.T(actor.Locale, "validation.invalidEmail"))
	}
	if len(draft.Password) < minPasswordLength {
		errs.add("password", i18n.T(actor.Locale, "validation.passwordTooShort"))
	}
	if draft.Role != entities.RoleEmployee && draft.Role != entities.RoleClient {
		errs.add("role", i18n.T(actor.Locale, "validation.invalidRole"))
	}
	if err := errs.err(); err != nil {
		return UserResult{}, err
	}
	// Holding user.create is not enough: the role being created needs its own
	// add_* permission.
	if err := u.auth.Authorize(ctx, actor, authz.CreateUserCapability(draft.Role)); err != nil {
		return UserResult{}, err
	}

	existing, err := u.users.GetByEmail(ctx, draft.Email)
	if err != nil {
		return UserResult{}, err
	}
	if existing.ID != 0 {
		return UserResult{}, newValidationError(ErrEmailTaken, "email", i18n.T(actor.Locale, "validation.emailTaken"))
	}

	hash, err := u.hasher.Hash(draft.Password)
	if err != nil {
		return UserResult{}, err
	}

	locale := draft.Locale
	if strings.TrimSpace(locale) == "" {
		locale = actor.Locale
	}
	user := entities.User{
		CompanyID:          actor.CompanyID,
		Name:               draft.Name,
		Email:              draft.Email,
		PasswordHash:       hash,
		Locale:             i18n.Normalize(locale),
		Roles:              draft.Role,
		EmailNotifications: draft.EmailNotifications,
		SlackUsername:      strings.TrimSpace(draft.SlackUsername),
	}
	if err := u.users.Create(ctx, &user); err != nil {
		logger.ExitMethodWithError("UserUseCase.Create", err)
		return UserResult{}, err
	}

	result := UserResult{User: user, Message: i18n.T(actor.Locale, "messages.recordSaved")}
	delivery, err := u.notifier.Dispatch(ctx, notification.NewUser{Password: draft.Password}, user)
	if err != nil {
		logger.ErrorContext(ctx, "new user notification failed", "user_id", user.ID, "error", err)
	}
	result.Channels = delivery.Channels

	logger.ExitMethod("UserUseCase.Create", "id", user.ID, "channels", delivery.Channels)
	return result, nil
}

// ResendWelcome sends the welcome notification again. The password is not
// known anymore, so the mail shows a placeholder instead.
func (u *UserUseCase) ResendWelcome(ctx context.Context, actor entities.Actor, userID uint) (UserResult, error) {
	if err := u.auth.Authorize(ctx, actor, authz.CapUserCreate); err != nil {
		return UserResult{}, err
	}

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return UserResult{}, err
	}
	if user.ID == 0 || !actor.SameCompany(user.CompanyID) {
		return UserResult{}, ErrUserNotFound
	}

	delivery, err := u.notifier.Dispatch(ctx, notification.NewUser{}, user)
	if err != nil {
		return UserResult{}, err
	}
	return UserResult{
		User:     user,
		Channels: delivery.Channels,
		Message:  i18n.T(actor.Locale, "messages.welcomeEmailSent"),
	}, nil
}
