package postgres

import (
	"context"
	"database/sql"
	"time"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, username, password_hash, full_name, email, phone,
	avatar_url, role, status, bio, last_login_at, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	u := &domain.User{}
	var email, phone, avatar, bio sql.NullString
	err := row.Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.FullName, &email, &phone,
		&avatar, &u.Role, &u.Status, &bio, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Email = email.String
	u.Phone = phone.String
	u.AvatarURL = avatar.String
	u.Bio = bio.String
	return u, nil
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	now := time.Now().UTC()
	return r.db.QueryRowContext(ctx,
		`INSERT INTO users (username, password_hash, full_name, email, phone, avatar_url, role, status, bio, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10) RETURNING id`,
		u.Username, u.PasswordHash, u.FullName, u.Email, u.Phone, u.AvatarURL,
		u.Role, u.Status, u.Bio, now,
	).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username))
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET full_name=$1, email=$2, phone=$3, avatar_url=$4, bio=$5,
			status=$6, last_login_at=$7, updated_at=$8 WHERE id=$9`,
		u.FullName, u.Email, u.Phone, u.AvatarURL, u.Bio,
		u.Status, u.LastLoginAt, time.Now().UTC(), u.ID)
	return err
}
