package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/auth-service/internal/container"
	"github.com/oksasatya/auth-service/internal/domain/entity"
	"github.com/oksasatya/auth-service/internal/domain/repository"
	handlers "github.com/oksasatya/auth-service/internal/interface/http"
	"github.com/oksasatya/auth-service/internal/interface/middleware"
	"github.com/oksasatya/auth-service/pkg/helpers"
)

// AuthModule wires registration and login routes.
// Public: POST /v1/register, POST /v1/login
// Protected: POST /v1/register/internal (sudo/admin/audit)
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
	Users   repository.UserRepository
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager, users repository.UserRepository) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt, Users: users}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP())

	rg.POST("/v1/register", registerLimiter, m.Handler.RegisterUser)
	rg.POST("/v1/login", loginLimiter, m.Handler.LoginUser)

	internal := rg.Group("/")
	internal.Use(middleware.Auth(m.JWT, m.Users))
	internal.Use(middleware.RequireRoles(entity.UserTypeSudo, entity.UserTypeAdmin, entity.UserTypeAudit))
	{
		internal.POST("/v1/register/internal", m.Handler.RegisterInternal)
	}
}
