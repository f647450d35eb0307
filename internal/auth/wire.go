package auth

import (
	"stockroom/internal/auth/controller"
	"stockroom/internal/auth/middleware"
	"stockroom/internal/auth/repository"
	"stockroom/internal/auth/service"
	"stockroom/internal/config"

	"go.uber.org/zap"
)

func NewModule(repo *repository.MemoryUserRepository, cfg config.AuthConfig, logger *zap.Logger) (*controller.AuthController, *middleware.Middleware) {
	svc := service.NewAuthService(repo, cfg)
	ctrl := controller.NewAuthController(svc, logger)
	mw := middleware.NewMiddleware(svc, logger)
	return ctrl, mw
}
