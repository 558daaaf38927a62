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

// ProfileModule wires profile routes. All routes require a bearer token.
// PUT /v1/profile/:user_id additionally enforces ownership in the handler;
// GET /v1/profile/internal is gated to sudo/admin/audit.
type ProfileModule struct {
	Handler *handlers.ProfileHandler
	JWT     *helpers.JWTManager
	Users   repository.UserRepository
}

func NewProfileModule(h *handlers.ProfileHandler, jwt *helpers.JWTManager, users repository.UserRepository) *ProfileModule {
	return &ProfileModule{Handler: h, JWT: jwt, Users: users}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT, m.Users))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		auth.PUT("/v1/profile/:user_id", m.Handler.UpdateProfile)

		internal := auth.Group("/")
		internal.Use(middleware.RequireRoles(entity.UserTypeSudo, entity.UserTypeAdmin, entity.UserTypeAudit))
		{
			internal.GET("/v1/profile/internal", m.Handler.ListInternal)
		}
	}
}
