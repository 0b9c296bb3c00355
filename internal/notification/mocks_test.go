package notification

import (
	"context"

	"estimate_request_service/internal/domain/entities"

	"github.com/stretchr/testify/mock"
)

type MockSettingsProvider struct {
	mock.Mock
}

func (m *MockSettingsProvider) GetCompany(ctx context.Context, id uint) (entities.Company, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entities.Company), args.Error(1)
}

func (m *MockSettingsProvider) GetEmailSetting(ctx context.Context, companyID uint, slug string) (entities.EmailNotificationSetting, error) {
	args := m.Called(ctx, companyID, slug)
	return args.Get(0).(entities.EmailNotificationSetting), args.Error(1)
}

func (m *MockSettingsProvider) GetSlackSetting(ctx context.Context, companyID uint) (entities.SlackSetting, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(entities.SlackSetting), args.Error(1)
}

type MockChatDirectory struct {
	mock.Mock
}

func (m *MockChatDirectory) LookupHandle(ctx context.Context, user entities.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Save(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	args := m.Called(ctx, n)
	if fn, ok := args.Get(0).(func(context.Context, entities.Notification) entities.Notification); ok {
		return fn(ctx, n), args.Error(1)
	}
	return args.Get(0).(entities.Notification), args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg MailMessage) error {
	return m.Called(ctx, msg).Error(0)
}

type MockChatPublisher struct {
	mock.Mock
}

func (m *MockChatPublisher) Publish(ctx context.Context, msg ChatMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func uintPtr(v uint) *uint { return &v }

func boolPtr(v bool) *bool { return &v }

// companySettings stubs a company with the given switches.
func companySettings(sendEmail, sendSlack, slackStatus string) *MockSettingsProvider {
	s := new(MockSettingsProvider)
	s.On("GetCompany", mock.Anything, uint(1)).Return(entities.Company{ID: 1, CompanyName: "Acme", HeaderColor: "#ff0000"}, nil)
	s.On("GetEmailSetting", mock.Anything, uint(1), mock.Anything).Return(entities.EmailNotificationSetting{ID: 9, CompanyID: 1, SendEmail: sendEmail, SendSlack: sendSlack}, nil)
	s.On("GetSlackSetting", mock.Anything, uint(1)).Return(entities.SlackSetting{ID: 4, CompanyID: 1, Status: slackStatus}, nil)
	return s
}
