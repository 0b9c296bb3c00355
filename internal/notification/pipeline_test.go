package notification

import (
	"context"
	"errors"
	"testing"

	"estimate_request_service/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher(settings SettingsProvider, directory ChatDirectory) *Dispatcher {
	return NewDispatcher(settings, directory, nil, nil, nil, AppInfo{Name: "Worksuite", URL: "https://app.test"}, "en")
}

func TestNewUserPipeline_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("company-less recipient gets database and mail only", func(t *testing.T) {
		settings := new(MockSettingsProvider)
		directory := new(MockChatDirectory)
		d := newTestDispatcher(settings, directory)

		channels, err := d.Resolve(ctx, NewUser{}, entities.User{ID: 1, Email: "", EmailNotifications: boolPtr(false)})
		require.NoError(t, err)
		assert.Equal(t, []Channel{ChannelDatabase, ChannelMail}, channels)
		settings.AssertNotCalled(t, "GetCompany", mock.Anything, mock.Anything)
		directory.AssertNotCalled(t, "LookupHandle", mock.Anything, mock.Anything)
	})

	t.Run("company with everything off gets database only", func(t *testing.T) {
		d := newTestDispatcher(companySettings(entities.SettingNo, entities.SettingNo, entities.SlackStatusActive), new(MockChatDirectory))

		channels, err := d.Resolve(ctx, NewUser{}, entities.User{ID: 1, CompanyID: uintPtr(1), Email: "a@b.test"})
		require.NoError(t, err)
		assert.Equal(t, []Channel{ChannelDatabase}, channels)
	})

	t.Run("explicit opt-out never gets mail", func(t *testing.T) {
		d := newTestDispatcher(companySettings(entities.SettingYes, entities.SettingNo, entities.SlackStatusInactive), new(MockChatDirectory))

		channels, err := d.Resolve(ctx, NewUser{}, entities.User{ID: 1, CompanyID: uintPtr(1), Email: "a@b.test", EmailNotifications: boolPtr(false)})
		require.NoError(t, err)
		assert.Equal(t, []Channel{ChannelDatabase}, channels)
	})

	t.Run("unset and true preferences get mail", func(t *testing.T) {
		d := newTestDispatcher(companySettings(entities.SettingYes, entities.SettingNo, entities.SlackStatusInactive), new(MockChatDirectory))

		for _, pref := range []*bool{nil, boolPtr(true)} {
			channels, err := d.Resolve(ctx, NewUser{}, entities.User{ID: 1, CompanyID: uintPtr(1), Email: "a@b.test", EmailNotifications: pref})
			require.NoError(t, err)
			assert.Equal(t, []Channel{ChannelDatabase, ChannelMail}, channels)
		}
	})

	t.Run("no email address means no mail", func(t *testing.T) {
		d := newTestDispatcher(companySettings(entities.SettingYes, entities.SettingNo, entities.SlackStatusInactive), new(MockChatDirectory))

		channels, err := d.Resolve(ctx, NewUser{}, entities.User{ID: 1, CompanyID: uintPtr(1), Email: "  "})
		require.NoError(t, err)
		assert.Equal(t, []Channel{ChannelDatabase}, channels)
	})

	t.Run("chat needs active integration and handle", func(t *testing.T) {
		directory := new(MockChatDirectory)
		directory.On("LookupHandle", mock.Anything, mock.Anything).Return("jane", nil)
		d := newTestDispatcher(companySettings(entities.SettingYes, entities.SettingYes, entities.SlackStatusActive), directory)

		channels, err := d.Resolve(ctx, NewUser{}, entities.User{ID: 1, CompanyID: uintPtr(1), Email: "a@b.test"})
		require.NoError(t, err)
		assert.Equal(t, []Channel{ChannelDatabase, ChannelMail, ChannelChat}, channels)
	})

	t.Run("inactive integration skips lookup", func(t *testing.T) {
		directory := new(MockChatDirectory)
		d := newTestDispatcher(companySettings(entities.SettingNo, entities.SettingYes, entities.SlackStatusInactive), directory)

		channels, err := d.Resolve(ctx, NewUser{}, entities.User{ID: 1, CompanyID: uintPtr(1)})
		require.NoError(t, err)
		assert.Equal(t, []Channel{ChannelDatabase}, channels)
		directory.AssertNotCalled(t, "LookupHandle", mock.Anything, mock.Anything)
	})

	t.Run("failed handle lookup silently drops chat", func(t *testing.T) {
		directory := new(MockChatDirectory)
		directory.On("LookupHandle", mock.Anything, mock.Anything).Return("", errors.New("slack api down"))
		d := newTestDispatcher(companySettings(entities.SettingNo, entities.SettingYes, entities.SlackStatusActive), directory)

		channels, err := d.Resolve(ctx, NewUser{}, entities.User{ID: 1, CompanyID: uintPtr(1)})
		require.NoError(t, err)
		assert.Equal(t, []Channel{ChannelDatabase}, channels)
	})

	t.Run("missing setting row counts as off", func(t *testing.T) {
		settings := new(MockSettingsProvider)
		settings.On("GetCompany", mock.Anything, uint(1)).Return(entities.Company{ID: 1}, nil)
		settings.On("GetEmailSetting", mock.Anything, uint(1), NewUserSettingSlug).Return(entities.EmailNotificationSetting{}, nil)
		settings.On("GetSlackSetting", mock.Anything, uint(1)).Return(entities.SlackSetting{}, nil)
		d := newTestDispatcher(settings, new(MockChatDirectory))

		channels, err := d.Resolve(ctx, NewUser{}, entities.User{ID: 1, CompanyID: uintPtr(1), Email: "a@b.test"})
		require.NoError(t, err)
		assert.Equal(t, []Channel{ChannelDatabase}, channels)
	})

	t.Run("settings error propagates", func(t *testing.T) {
		settings := new(MockSettingsProvider)
		settings.On("GetCompany", mock.Anything, uint(1)).Return(entities.Company{}, errors.New("db"))
		d := newTestDispatcher(settings, new(MockChatDirectory))

		_, err := d.Resolve(ctx, NewUser{}, entities.User{ID: 1, CompanyID: uintPtr(1)})
		require.Error(t, err)
	})
}

func TestEstimateRequestInvitePipeline_Resolve(t *testing.T) {
	ctx := context.Background()
	d := newTestDispatcher(companySettings(entities.SettingNo, entities.SettingNo, entities.SlackStatusInactive), new(MockChatDirectory))

	channels, err := d.Resolve(ctx, EstimateRequestInvite{}, entities.User{ID: 3, CompanyID: uintPtr(1), Email: "client@b.test", EmailNotifications: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, []Channel{ChannelDatabase, ChannelMail}, channels)
}

func TestPipeline_ResolveDeduplicatesAndStops(t *testing.T) {
	p := Pipeline{
		Always(ChannelMail),
		Always(ChannelDatabase),
		{Name: "stop", Channel: ChannelMail, Decide: func(context.Context, *RecipientContext) Decision { return IncludeAndStop }},
		Always(ChannelChat),
	}
	got := p.Resolve(context.Background(), &RecipientContext{})
	assert.Equal(t, []Channel{ChannelMail, ChannelDatabase}, got)
}

func TestPipeline_Unconditional(t *testing.T) {
	assert.Equal(t, []Channel{ChannelDatabase}, NewUser{}.Pipeline().Unconditional())
	assert.Equal(t, []Channel{ChannelDatabase}, EstimateRequestInvite{}.Pipeline().Unconditional())
	assert.Empty(t, Pipeline{MailWithoutCompany()}.Unconditional())
}
