package postgres

import (
	"context"
	"database/sql"
	"time"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/repository"
)

type announcementRepository struct {
	db *sql.DB
}

func NewAnnouncementRepository(db *sql.DB) repository.AnnouncementRepository {
	return &announcementRepository{db: db}
}

const announcementColumns = `id, title, content, active, expires_at, created_by, created_at, updated_at`

func scanAnnouncement(row interface{ Scan(...any) error }) (*domain.Announcement, error) {
	a := &domain.Announcement{}
	err := row.Scan(&a.ID, &a.Title, &a.Content, &a.Active, &a.ExpiresAt,
		&a.CreatedBy, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *announcementRepository) Create(ctx context.Context, a *domain.Announcement) error {
	now := time.Now().UTC()
	return r.db.QueryRowContext(ctx,
		`INSERT INTO announcements (title, content, active, expires_at, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $6) RETURNING id`,
		a.Title, a.Content, a.Active, a.ExpiresAt, a.CreatedBy, now).Scan(&a.ID)
}

func (r *announcementRepository) ListActive(ctx context.Context) ([]domain.Announcement, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+announcementColumns+` FROM announcements
		 WHERE active AND (expires_at IS NULL OR expires_at > $1)
		 ORDER BY created_at DESC`, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

func (r *announcementRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Announcement, int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM announcements`).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+announcementColumns+` FROM announcements ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []domain.Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *a)
	}
	return items, count, rows.Err()
}

func (r *announcementRepository) Deactivate(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE announcements SET active = FALSE, updated_at = $1 WHERE id = $2`,
		time.Now().UTC(), id)
	return err
}

func (r *announcementRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE announcements SET active = FALSE, updated_at = $1
		 WHERE active AND expires_at IS NOT NULL AND expires_at <= $1`, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
