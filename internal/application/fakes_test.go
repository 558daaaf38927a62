package application

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/auth-service/internal/domain/apperr"
	"github.com/oksasatya/auth-service/internal/domain/entity"
	"github.com/oksasatya/auth-service/internal/domain/repository"
	"github.com/oksasatya/auth-service/pkg/helpers"
	"github.com/oksasatya/auth-service/pkg/pagination"
)

// fakeUserRepo is an in-memory UserRepository that records outbox events the
// same way the SQL implementation commits them alongside the user row.
type fakeUserRepo struct {
	users  map[string]*entity.User // by id
	events []*entity.OutboxEvent
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperr.UserNotFound()
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperr.UserNotFound()
}

func (r *fakeUserRepo) CreateWithEvent(_ context.Context, u *entity.User, ev *entity.OutboxEvent) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return apperr.DuplicateEmail(u.Email)
		}
	}
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	ev.OccurredAt = now
	r.users[u.ID] = u
	r.events = append(r.events, ev)
	return nil
}

func (r *fakeUserRepo) UpdateWithEvent(_ context.Context, u *entity.User, ev *entity.OutboxEvent) error {
	if _, ok := r.users[u.ID]; !ok {
		return apperr.UserNotFound()
	}
	u.UpdatedAt = time.Now()
	ev.OccurredAt = u.UpdatedAt
	r.users[u.ID] = u
	r.events = append(r.events, ev)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, filter repository.UserFilter, page, pageSize int) (*pagination.Page[*entity.User], error) {
	matched := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		if filter.Email != "" && u.Email != filter.Email {
			continue
		}
		if filter.Type != "" && u.Type != filter.Type {
			continue
		}
		if filter.UserID != "" && u.ID != filter.UserID {
			continue
		}
		matched = append(matched, u)
	}
	total := int64(len(matched))
	off := pagination.Offset(page, pageSize)
	if off > len(matched) {
		off = len(matched)
	}
	end := off + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return pagination.NewPage(matched[off:end], total, page, pageSize), nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

func testJWT() *helpers.JWTManager {
	return helpers.NewJWTManager("test-secret", time.Hour, 7*24*time.Hour)
}

func activeUser(id, email, password string) *entity.User {
	hash, _ := helpers.HashPassword(password)
	return &entity.User{
		ID:           id,
		Email:        email,
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: hash,
		Type:         entity.UserTypeClient,
		Status:       entity.UserStatusActive,
	}
}
