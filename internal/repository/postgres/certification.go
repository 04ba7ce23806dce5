package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/repository"
)

type certificationRepository struct {
	db *sql.DB
}

func NewCertificationRepository(db *sql.DB) repository.CertificationRepository {
	return &certificationRepository{db: db}
}

const certificationColumns = `id, user_id, document_urls, reason, status,
	reviewed_by, reviewed_at, created_at, updated_at`

func scanCertification(row interface{ Scan(...any) error }) (*domain.LandlordCertification, error) {
	c := &domain.LandlordCertification{}
	var reason sql.NullString
	err := row.Scan(&c.ID, &c.UserID, pq.Array(&c.DocumentURLs), &reason, &c.Status,
		&c.ReviewedBy, &c.ReviewedAt, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Reason = reason.String
	return c, nil
}

func (r *certificationRepository) Create(ctx context.Context, c *domain.LandlordCertification) error {
	now := time.Now().UTC()
	return r.db.QueryRowContext(ctx,
		`INSERT INTO landlord_certifications (user_id, document_urls, reason, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $5) RETURNING id, created_at, updated_at`,
		c.UserID, pq.Array(c.DocumentURLs), c.Reason, c.Status, now,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *certificationRepository) GetByID(ctx context.Context, id int64) (*domain.LandlordCertification, error) {
	return scanCertification(r.db.QueryRowContext(ctx,
		`SELECT `+certificationColumns+` FROM landlord_certifications WHERE id = $1`, id))
}

func (r *certificationRepository) LatestByUser(ctx context.Context, userID int64) (*domain.LandlordCertification, error) {
	return scanCertification(r.db.QueryRowContext(ctx,
		`SELECT `+certificationColumns+` FROM landlord_certifications
		 WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`, userID))
}

func (r *certificationRepository) ListByStatus(ctx context.Context, status domain.CertificationStatus, page, pageSize int32) ([]domain.LandlordCertification, int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM landlord_certifications WHERE status = $1`, status).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+certificationColumns+` FROM landlord_certifications
		 WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		status, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []domain.LandlordCertification
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *c)
	}
	return items, count, rows.Err()
}

// Review is a compare-and-set on status = 'PENDING' so an application can
// only be resolved once.
func (r *certificationRepository) Review(ctx context.Context, id, reviewerID int64, status domain.CertificationStatus, reason string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE landlord_certifications SET
			status = $2,
			reason = $3,
			reviewed_by = $4,
			reviewed_at = $5,
			updated_at = $5
		 WHERE id = $1 AND status = 'PENDING'`,
		id, status, reason, reviewerID, time.Now().UTC())
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
