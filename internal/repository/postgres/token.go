package postgres

import (
	"context"
	"database/sql"
	"time"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/repository"
)

type authTokenRepository struct {
	db *sql.DB
}

func NewAuthTokenRepository(db *sql.DB) repository.AuthTokenRepository {
	return &authTokenRepository{db: db}
}

func (r *authTokenRepository) Create(ctx context.Context, t *domain.AuthToken) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO auth_tokens (jti, user_id, expires_at, revoked, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		t.JTI, t.UserID, t.ExpiresAt, t.Revoked, time.Now().UTC())
	return err
}

func (r *authTokenRepository) GetByJTI(ctx context.Context, jti string) (*domain.AuthToken, error) {
	t := &domain.AuthToken{}
	err := r.db.QueryRowContext(ctx,
		`SELECT jti, user_id, expires_at, revoked, created_at FROM auth_tokens WHERE jti = $1`,
		jti).Scan(&t.JTI, &t.UserID, &t.ExpiresAt, &t.Revoked, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *authTokenRepository) Revoke(ctx context.Context, jti string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE auth_tokens SET revoked = TRUE WHERE jti = $1`, jti)
	return err
}

// DeleteExpired removes tokens past their expiry. The JWT itself stops
// validating at expiry, so the row only matters for revocation lookups.
func (r *authTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM auth_tokens WHERE expires_at < $1`, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
