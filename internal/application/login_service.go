package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/auth-service/internal/domain/apperr"
	"github.com/oksasatya/auth-service/internal/domain/entity"
	"github.com/oksasatya/auth-service/internal/domain/repository"
	"github.com/oksasatya/auth-service/pkg/helpers"
)

type TokenResult struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	UserID       string `json:"user_id"`
}

type LoginService struct {
	Repo   repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewLoginService(repo repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *LoginService {
	return &LoginService{Repo: repo, JWT: jwt, Logger: logger}
}

// Login verifies credentials and issues an access/refresh token pair.
// Unknown email and wrong password return the same INVALID_CREDENTIALS so
// responses carry no user-enumeration signal. The status check runs once
// here, not per request.
func (s *LoginService) Login(ctx context.Context, email, password string) (*TokenResult, error) {
	masked := helpers.MaskEmail(email)

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		s.Logger.WithField("email", masked).Debug("login failed, user not found")
		return nil, apperr.InvalidCredentials()
	}
	if !helpers.VerifyPassword(password, u.PasswordHash) {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": masked}).
			Debug("login failed, invalid password")
		return nil, apperr.InvalidCredentials()
	}
	if u.Status != entity.UserStatusActive {
		return nil, apperr.NotAllowed("User not allowed due to status " + string(u.Status))
	}

	access, _, err := s.JWT.GenerateAccessToken(u.ID, u.Email)
	if err != nil {
		return nil, err
	}
	refresh, _, err := s.JWT.GenerateRefreshToken(u.ID)
	if err != nil {
		return nil, err
	}

	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": masked}).
		Info("user logged in")

	return &TokenResult{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		ExpiresIn:    int64(s.JWT.AccessTTL.Seconds()),
		UserID:       u.ID,
	}, nil
}
