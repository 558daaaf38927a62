package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/auth-service/internal/domain/apperr"
	"github.com/oksasatya/auth-service/internal/domain/entity"
	"github.com/oksasatya/auth-service/internal/domain/repository"
	"github.com/oksasatya/auth-service/pkg/pagination"
)

const pgUniqueViolation = "23505"

const userColumns = `id, email, first_name, last_name, password_hash, type, status,
		is_email_verified, email_verified_at, created_at, updated_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// mapWriteError turns a unique-constraint violation on email into the
// domain-level duplicate error so no raw driver text leaves this layer.
func mapWriteError(err error, email string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgUniqueViolation {
			return apperr.DuplicateEmail(email)
		}
		return apperr.Integrity("constraint violation")
	}
	return err
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash,
		&u.Type, &u.Status, &u.IsEmailVerified, &u.EmailVerifiedAt,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.UserNotFound()
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM "user"
		WHERE id = $1
	`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM "user"
		WHERE email = $1
	`, email)
	return scanUser(row)
}

func insertOutboxEvent(ctx context.Context, tx pgx.Tx, ev *entity.OutboxEvent) error {
	row := tx.QueryRow(ctx, `
		INSERT INTO outbox_event (id, event_type, aggregate_id, payload, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING occurred_at
	`, ev.ID, ev.EventType, ev.AggregateID, ev.Payload, ev.Status)
	return row.Scan(&ev.OccurredAt)
}

// CreateWithEvent inserts the user row and its outbox event in one
// transaction. A racing duplicate email surfaces as DUPLICATE_EMAIL and
// leaves no partial row behind.
func (r *UserRepository) CreateWithEvent(ctx context.Context, u *entity.User, ev *entity.OutboxEvent) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO "user" (id, email, first_name, last_name, password_hash, type, status, is_email_verified, email_verified_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`, u.ID, u.Email, u.FirstName, u.LastName, u.PasswordHash, u.Type, u.Status,
		u.IsEmailVerified, u.EmailVerifiedAt)
	if err := row.Scan(&u.CreatedAt, &u.UpdatedAt); err != nil {
		return mapWriteError(err, u.Email)
	}

	if err := insertOutboxEvent(ctx, tx, ev); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return mapWriteError(err, u.Email)
	}
	return nil
}

// UpdateWithEvent updates the mutable profile fields together with the
// outbox event describing the change.
func (r *UserRepository) UpdateWithEvent(ctx context.Context, u *entity.User, ev *entity.OutboxEvent) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		UPDATE "user"
		SET email = $1, first_name = $2, last_name = $3, updated_at = now()
		WHERE id = $4
		RETURNING updated_at
	`, u.Email, u.FirstName, u.LastName, u.ID)
	if err := row.Scan(&u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.UserNotFound()
		}
		return mapWriteError(err, u.Email)
	}

	if err := insertOutboxEvent(ctx, tx, ev); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return mapWriteError(err, u.Email)
	}
	return nil
}

// List returns one page of users matching the filter, newest first with an
// id tiebreak so pages stay stable under concurrent inserts.
func (r *UserRepository) List(ctx context.Context, filter repository.UserFilter, page, pageSize int) (*pagination.Page[*entity.User], error) {
	page, pageSize = pagination.Clamp(page, pageSize)

	where := make([]string, 0, 3)
	args := make([]any, 0, 3)
	if filter.Email != "" {
		args = append(args, filter.Email)
		where = append(where, fmt.Sprintf("email = $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		where = append(where, fmt.Sprintf("type = $%d", len(args)))
	}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		where = append(where, fmt.Sprintf("id = $%d", len(args)))
	}
	cond := ""
	if len(where) > 0 {
		cond = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM "user"`+cond, args...).Scan(&total); err != nil {
		return nil, err
	}

	limitArgs := append(args, pageSize, pagination.Offset(page, pageSize))
	rows, err := r.pool.Query(ctx, `
		SELECT `+userColumns+`
		FROM "user"`+cond+`
		ORDER BY created_at DESC, id DESC
		LIMIT $`+fmt.Sprint(len(args)+1)+` OFFSET $`+fmt.Sprint(len(args)+2),
		limitArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*entity.User, 0, pageSize)
	for rows.Next() {
		u := &entity.User{}
		if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash,
			&u.Type, &u.Status, &u.IsEmailVerified, &u.EmailVerifiedAt,
			&u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return pagination.NewPage(users, total, page, pageSize), nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
