package router

import (
	"github.com/oksasatya/auth-service/internal/application"
	"github.com/oksasatya/auth-service/internal/container"
	pginfra "github.com/oksasatya/auth-service/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/auth-service/internal/interface/http"
	"github.com/oksasatya/auth-service/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()
	jwt := container.GetJWT()

	userRepo := pginfra.NewUserRepository(pool)

	registerSvc := application.NewRegisterService(
		userRepo,
		jwt,
		container.GetEmailPub(),
		logger,
		cfg.ServiceURL,
		cfg.MailSendEnabled,
	)
	loginSvc := application.NewLoginService(userRepo, jwt, logger)
	profileSvc := application.NewProfileService(userRepo, logger)

	authHandler := handlers.NewAuthHandler(registerSvc, loginSvc, logger)
	profileHandler := handlers.NewProfileHandler(profileSvc, logger)
	healthHandler := handlers.NewHealthHandler(pool, cfg.AppName, cfg.Version)

	r.Add(modules.NewAuthModule(authHandler, jwt, userRepo))
	r.Add(modules.NewProfileModule(profileHandler, jwt, userRepo))
	r.Add(modules.NewHealthModule(healthHandler))
}
