package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/repository"
)

type contactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

const contactColumns = `id, house_id, tenant_id, landlord_id, message,
	preferred_visit_time, status, remarks, handled_at, created_at, updated_at`

func scanContact(row interface{ Scan(...any) error }) (*domain.ContactRecord, error) {
	c := &domain.ContactRecord{}
	var message, remarks sql.NullString
	err := row.Scan(&c.ID, &c.HouseID, &c.TenantID, &c.LandlordID, &message,
		&c.PreferredVisitTime, &c.Status, &remarks, &c.HandledAt, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Message = message.String
	c.Remarks = remarks.String
	return c, nil
}

func (r *contactRepository) Create(ctx context.Context, record *domain.ContactRecord) error {
	now := time.Now().UTC()
	return r.db.QueryRowContext(ctx,
		`INSERT INTO contact_records
			(house_id, tenant_id, landlord_id, message, preferred_visit_time, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $7) RETURNING id, created_at, updated_at`,
		record.HouseID, record.TenantID, record.LandlordID, record.Message,
		record.PreferredVisitTime, record.Status, now,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
}

func (r *contactRepository) GetByID(ctx context.Context, id int64) (*domain.ContactRecord, error) {
	return scanContact(r.db.QueryRowContext(ctx,
		`SELECT `+contactColumns+` FROM contact_records WHERE id = $1`, id))
}

func (r *contactRepository) LatestByTenantAndHouse(ctx context.Context, tenantID, houseID int64) (*domain.ContactRecord, error) {
	return scanContact(r.db.QueryRowContext(ctx,
		`SELECT `+contactColumns+` FROM contact_records
		 WHERE tenant_id = $1 AND house_id = $2 ORDER BY created_at DESC LIMIT 1`,
		tenantID, houseID))
}

func (r *contactRepository) UpdateStatus(ctx context.Context, id int64, status domain.ContactStatus, remarks string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE contact_records SET status = $2, remarks = $3, handled_at = $4, updated_at = $4
		 WHERE id = $1`,
		id, status, remarks, time.Now().UTC())
	return err
}

func (r *contactRepository) ListByTenant(ctx context.Context, tenantID int64, page, pageSize int32) ([]domain.ContactRecord, int64, error) {
	return r.list(ctx, `tenant_id = $1`, []any{tenantID}, page, pageSize)
}

func (r *contactRepository) ListByLandlord(ctx context.Context, landlordID int64, page, pageSize int32) ([]domain.ContactRecord, int64, error) {
	return r.list(ctx, `landlord_id = $1`, []any{landlordID}, page, pageSize)
}

func (r *contactRepository) ListAll(ctx context.Context, page, pageSize int32) ([]domain.ContactRecord, int64, error) {
	return r.list(ctx, `TRUE`, nil, page, pageSize)
}

func (r *contactRepository) list(ctx context.Context, where string, args []any, page, pageSize int32) ([]domain.ContactRecord, int64, error) {
	var count int64
	countQuery := `SELECT count(*) FROM contact_records WHERE ` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := fmt.Sprintf(`SELECT %s FROM contact_records WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		contactColumns, where, len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []domain.ContactRecord
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, *c)
	}
	return records, count, rows.Err()
}
