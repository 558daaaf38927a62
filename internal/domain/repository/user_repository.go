package repository

import (
	"context"

	"github.com/oksasatya/auth-service/internal/domain/entity"
	"github.com/oksasatya/auth-service/pkg/pagination"
)

// UserFilter narrows the administrative user listing.
// Zero-value fields are ignored.
type UserFilter struct {
	Email  string
	Type   entity.UserType
	UserID string
}

// UserRepository defines user persistence. The *WithEvent operations write
// the domain row and the outbox event in one transaction; both commit or
// both roll back.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	CreateWithEvent(ctx context.Context, u *entity.User, ev *entity.OutboxEvent) error
	UpdateWithEvent(ctx context.Context, u *entity.User, ev *entity.OutboxEvent) error
	List(ctx context.Context, filter UserFilter, page, pageSize int) (*pagination.Page[*entity.User], error)
}
