package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/auth-service/internal/domain/apperr"
	"github.com/oksasatya/auth-service/internal/domain/entity"
	"github.com/oksasatya/auth-service/internal/domain/repository"
	"github.com/oksasatya/auth-service/pkg/helpers"
	"github.com/oksasatya/auth-service/pkg/pagination"
)

type stubUserRepo struct {
	users map[string]*entity.User
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperr.UserNotFound()
	}
	return u, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperr.UserNotFound()
}

func (r *stubUserRepo) CreateWithEvent(context.Context, *entity.User, *entity.OutboxEvent) error {
	return nil
}

func (r *stubUserRepo) UpdateWithEvent(context.Context, *entity.User, *entity.OutboxEvent) error {
	return nil
}

func (r *stubUserRepo) List(context.Context, repository.UserFilter, int, int) (*pagination.Page[*entity.User], error) {
	return pagination.NewPage[*entity.User](nil, 0, 1, 10), nil
}

func setupAuthRouter(jwt *helpers.JWTManager, repo repository.UserRepository, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{Auth(jwt, repo)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		u := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"user_id": u.ID})
	})
	r.GET("/protected", handlers...)
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var env struct {
		Error []struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NotEmpty(t, env.Error)
	return env.Error[0].Code
}

func TestAuthAcceptsValidBearerToken(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour, time.Hour)
	repo := &stubUserRepo{users: map[string]*entity.User{
		"u-1": {ID: "u-1", Email: "alice@example.com", Type: entity.UserTypeClient, Status: entity.UserStatusActive},
	}}
	token, _, err := jwt.GenerateAccessToken("u-1", "alice@example.com")
	require.NoError(t, err)

	w := doRequest(setupAuthRouter(jwt, repo), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u-1")
}

func TestAuthRejectsBadHeaders(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour, time.Hour)
	repo := &stubUserRepo{users: map[string]*entity.User{}}
	r := setupAuthRouter(jwt, repo)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "no bearer prefix", header: "Token abc"},
		{name: "empty token", header: "Bearer "},
		{name: "garbage token", header: "Bearer not.a.jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, apperr.CodeInvalidToken, errorCode(t, w))
		})
	}
}

func TestAuthRejectsRefreshTokenOnAccessRoute(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour, time.Hour)
	repo := &stubUserRepo{users: map[string]*entity.User{
		"u-1": {ID: "u-1", Status: entity.UserStatusActive},
	}}
	refresh, _, err := jwt.GenerateRefreshToken("u-1")
	require.NoError(t, err)

	w := doRequest(setupAuthRouter(jwt, repo), "Bearer "+refresh)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, apperr.CodeInvalidToken, errorCode(t, w))
}

func TestAuthValidTokenForDeletedUser(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour, time.Hour)
	repo := &stubUserRepo{users: map[string]*entity.User{}}
	token, _, err := jwt.GenerateAccessToken("gone", "gone@example.com")
	require.NoError(t, err)

	w := doRequest(setupAuthRouter(jwt, repo), "Bearer "+token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apperr.CodeUserNotFound, errorCode(t, w))
}

func TestAuthExpiredToken(t *testing.T) {
	expiredJWT := helpers.NewJWTManager("test-secret", -time.Minute, -time.Minute)
	jwt := helpers.NewJWTManager("test-secret", time.Hour, time.Hour)
	repo := &stubUserRepo{users: map[string]*entity.User{}}
	token, _, err := expiredJWT.GenerateAccessToken("u-1", "alice@example.com")
	require.NoError(t, err)

	w := doRequest(setupAuthRouter(jwt, repo), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, apperr.CodeExpiredToken, errorCode(t, w))
}

func TestRequireRoles(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour, time.Hour)

	tests := []struct {
		name       string
		utype      entity.UserType
		wantStatus int
	}{
		{name: "sudo allowed", utype: entity.UserTypeSudo, wantStatus: http.StatusOK},
		{name: "admin allowed", utype: entity.UserTypeAdmin, wantStatus: http.StatusOK},
		{name: "audit allowed", utype: entity.UserTypeAudit, wantStatus: http.StatusOK},
		{name: "client rejected", utype: entity.UserTypeClient, wantStatus: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubUserRepo{users: map[string]*entity.User{
				"u-1": {ID: "u-1", Type: tt.utype, Status: entity.UserStatusActive},
			}}
			r := setupAuthRouter(jwt, repo,
				RequireRoles(entity.UserTypeSudo, entity.UserTypeAdmin, entity.UserTypeAudit))
			token, _, err := jwt.GenerateAccessToken("u-1", "x@example.com")
			require.NoError(t, err)

			w := doRequest(r, "Bearer "+token)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, apperr.CodeNotAllowed, errorCode(t, w))
			}
		})
	}
}
