package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"estimate_request_service/internal/domain/entities"
	"estimate_request_service/internal/security"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(tm security.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Authenticate(tm), RequireModule(entities.ModuleEstimates), func(c *gin.Context) {
		actor, _ := ActorFrom(c)
		c.JSON(http.StatusOK, gin.H{"user_id": actor.UserID})
	})
	return r
}

func TestAuthenticate(t *testing.T) {
	tm := security.NewTokenManager("test-secret")
	company := uint(5)
	withModule, err := tm.GenerateAccessToken(entities.Actor{UserID: 10, CompanyID: &company, Modules: []string{entities.ModuleEstimates}})
	require.NoError(t, err)
	withoutModule, err := tm.GenerateAccessToken(entities.Actor{UserID: 11, CompanyID: &company})
	require.NoError(t, err)
	foreign, err := security.NewTokenManager("other-secret").GenerateAccessToken(entities.Actor{UserID: 12})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "missing header", header: "", status: http.StatusUnauthorized},
		{name: "not a bearer", header: "Basic abc", status: http.StatusUnauthorized},
		{name: "bad signature", header: "Bearer " + foreign, status: http.StatusUnauthorized},
		{name: "module disabled", header: "Bearer " + withoutModule, status: http.StatusForbidden},
		{name: "ok", header: "bearer " + withModule, status: http.StatusOK},
	}

	r := newRouter(tm)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code, w.Body.String())
			if tt.status == http.StatusOK {
				assert.JSONEq(t, `{"user_id":10}`, w.Body.String())
			}
		})
	}
}

func TestActorFrom_WithoutAuthentication(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	actor, ok := ActorFrom(c)
	assert.False(t, ok)
	assert.Equal(t, uint(0), actor.UserID)

	SetActor(c, entities.Actor{UserID: 3})
	actor, ok = ActorFrom(c)
	assert.True(t, ok)
	assert.Equal(t, uint(3), actor.UserID)
}
