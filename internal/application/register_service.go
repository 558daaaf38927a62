package application

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/auth-service/internal/domain/apperr"
	"github.com/oksasatya/auth-service/internal/domain/entity"
	"github.com/oksasatya/auth-service/internal/domain/repository"
	"github.com/oksasatya/auth-service/pkg/helpers"
	"github.com/oksasatya/auth-service/pkg/mailer"
)

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

type RegisterResult struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// RegisterService creates users. The user row and its user.registered outbox
// event are committed in one transaction; the verification email is enqueued
// fire-and-forget after commit.
type RegisterService struct {
	Repo        repository.UserRepository
	JWT         *helpers.JWTManager
	EmailPub    *helpers.RabbitPublisher
	Logger      *logrus.Logger
	ServiceURL  string
	MailEnabled bool
}

func NewRegisterService(repo repository.UserRepository, jwt *helpers.JWTManager, emailPub *helpers.RabbitPublisher, logger *logrus.Logger, serviceURL string, mailEnabled bool) *RegisterService {
	return &RegisterService{
		Repo:        repo,
		JWT:         jwt,
		EmailPub:    emailPub,
		Logger:      logger,
		ServiceURL:  serviceURL,
		MailEnabled: mailEnabled,
	}
}

// Register creates a user of the given type. The pre-check and the unique
// constraint both surface DUPLICATE_EMAIL; either path leaves no partial row.
func (s *RegisterService) Register(ctx context.Context, in RegisterInput, utype entity.UserType) (*RegisterResult, error) {
	masked := helpers.MaskEmail(in.Email)

	if existing, err := s.Repo.GetByEmail(ctx, in.Email); err == nil && existing != nil {
		s.Logger.WithField("email", masked).Debug("registration rejected, email exists")
		return nil, apperr.DuplicateEmail(in.Email)
	} else if err != nil {
		var ae *apperr.Error
		if !errors.As(err, &ae) || ae.Code != apperr.CodeUserNotFound {
			return nil, err
		}
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: hash,
		Type:         utype,
		Status:       entity.UserStatusActive,
	}

	verifyToken, err := s.JWT.GenerateEmailVerificationToken(u.ID, u.Email)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(map[string]any{
		"user_id":                  u.ID,
		"email":                    u.Email,
		"first_name":               u.FirstName,
		"last_name":                u.LastName,
		"type":                     u.Type,
		"is_email_verified":        u.IsEmailVerified,
		"email_verification_token": verifyToken,
	})
	if err != nil {
		return nil, err
	}

	ev := &entity.OutboxEvent{
		ID:          uuid.NewString(),
		EventType:   entity.EventUserRegistered,
		AggregateID: u.ID,
		Payload:     payload,
		Status:      entity.OutboxStatusPending,
	}

	if err := s.Repo.CreateWithEvent(ctx, u, ev); err != nil {
		s.Logger.WithField("email", masked).WithError(err).Error("user was not created")
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": masked}).
		Info("user created and outbox event stored")

	// Fire-and-forget; a queue failure never affects the registration.
	if s.EmailPub != nil && s.MailEnabled {
		link := s.ServiceURL + "/v1/email/verify?token=" + verifyToken
		if err := s.EmailPub.PublishJSON(ctx, mailer.VerificationEmail(u.Email, link)); err != nil {
			s.Logger.WithField("email", masked).WithError(err).Warn("verification email enqueue failed")
		}
	}

	return &RegisterResult{
		UserID:  u.ID,
		Email:   u.Email,
		Message: "Registration successful. Please verify your email.",
	}, nil
}
