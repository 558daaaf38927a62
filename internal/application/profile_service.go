package application

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/auth-service/internal/domain/apperr"
	"github.com/oksasatya/auth-service/internal/domain/entity"
	"github.com/oksasatya/auth-service/internal/domain/repository"
	"github.com/oksasatya/auth-service/pkg/pagination"
)

type UpdateProfileInput struct {
	FirstName string
	LastName  string
	Email     string
}

type ProfileService struct {
	Repo   repository.UserRepository
	Logger *logrus.Logger
}

func NewProfileService(repo repository.UserRepository, logger *logrus.Logger) *ProfileService {
	return &ProfileService{Repo: repo, Logger: logger}
}

// Update replaces the basic profile fields atomically with the
// user.profile_updated outbox event. The read-transform-write runs on a
// value copy; the stored row only changes when the transaction commits.
func (s *ProfileService) Update(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	current, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Email != current.Email {
		if existing, err := s.Repo.GetByEmail(ctx, in.Email); err == nil && existing != nil && existing.ID != userID {
			return nil, apperr.DuplicateEmail(in.Email)
		}
	}

	updated := *current
	updated.FirstName = in.FirstName
	updated.LastName = in.LastName
	updated.Email = in.Email

	payload, err := json.Marshal(map[string]any{
		"user_id":    updated.ID,
		"first_name": updated.FirstName,
		"last_name":  updated.LastName,
		"email":      updated.Email,
	})
	if err != nil {
		return nil, err
	}

	ev := &entity.OutboxEvent{
		ID:          uuid.NewString(),
		EventType:   entity.EventUserProfileUpdated,
		AggregateID: updated.ID,
		Payload:     payload,
		Status:      entity.OutboxStatusPending,
	}

	if err := s.Repo.UpdateWithEvent(ctx, &updated, ev); err != nil {
		return nil, err
	}
	s.Logger.WithField("user_id", updated.ID).Info("profile updated and outbox event stored")
	return &updated, nil
}

// List returns one page of the administrative user listing.
func (s *ProfileService) List(ctx context.Context, filter repository.UserFilter, page, pageSize int) (*pagination.Page[*entity.User], error) {
	return s.Repo.List(ctx, filter, page, pageSize)
}
