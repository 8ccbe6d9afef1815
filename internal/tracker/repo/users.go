package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/workouttracker/internal/db"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"
	"github.com/2beens/workouttracker/pkg"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

const userColumns = `user_id, username, email, created_at`

type UsersRepo struct {
	db db.DB
}

func NewUsersRepo(db db.DB) *UsersRepo {
	return &UsersRepo{
		db: db,
	}
}

func (r *UsersRepo) Add(ctx context.Context, user User) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		row := tx.QueryRow(
			ctx,
			`INSERT INTO users (username, email) VALUES ($1, $2) RETURNING `+userColumns,
			user.Username, user.Email,
		)
		added, err := scanUser(row)
		if err != nil {
			return err
		}
		user = added
		return nil
	})
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			if pkg.ViolatedConstraint(err) == "users_email_key" {
				return nil, Conflictf("User with this email already exists")
			}
			return nil, Conflictf("User with this username already exists")
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	span.SetAttributes(attribute.Int("user.id", user.ID))
	return &user, nil
}

func (r *UsersRepo) Get(ctx context.Context, id int) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	user, err := scanUser(r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM users WHERE user_id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, NotFoundf("user %d not found", id)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

func (r *UsersRepo) List(ctx context.Context) (_ []User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	users, err := collect(rows, scanUser)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("count", len(users)))

	return users, nil
}

func scanUser(row scanner) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.CreatedAt)
	return u, err
}
