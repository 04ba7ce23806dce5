package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/repository"
)

type houseRepository struct {
	db *sql.DB
}

func NewHouseRepository(db *sql.DB) repository.HouseRepository {
	return &houseRepository{db: db}
}

const houseColumns = `id, owner_id, title, description, rent_price_cents, deposit_cents,
	area_sqm, layout, orientation, address, available_from, region_id, subway_line_id,
	status, recommended, media_urls, created_at, updated_at`

func scanHouse(row interface{ Scan(...any) error }) (*domain.House, error) {
	h := &domain.House{}
	var description, layout, orientation, address sql.NullString
	var availableFrom sql.NullTime
	var media pq.StringArray
	err := row.Scan(
		&h.ID, &h.OwnerID, &h.Title, &description, &h.RentPriceCents, &h.DepositCents,
		&h.AreaSqm, &layout, &orientation, &address, &availableFrom, &h.RegionID, &h.SubwayLineID,
		&h.Status, &h.Recommended, &media, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	h.Description = description.String
	h.Layout = layout.String
	h.Orientation = orientation.String
	h.Address = address.String
	if availableFrom.Valid {
		h.AvailableFrom = availableFrom.Time.Format("2006-01-02")
	}
	h.MediaURLs = media
	return h, nil
}

func (r *houseRepository) Create(ctx context.Context, h *domain.House) error {
	now := time.Now().UTC()
	var availableFrom any
	if h.AvailableFrom != "" {
		availableFrom = h.AvailableFrom
	}
	return r.db.QueryRowContext(ctx,
		`INSERT INTO houses (owner_id, title, description, rent_price_cents, deposit_cents,
			area_sqm, layout, orientation, address, available_from, region_id, subway_line_id,
			status, recommended, media_urls, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$16) RETURNING id`,
		h.OwnerID, h.Title, h.Description, h.RentPriceCents, h.DepositCents,
		h.AreaSqm, h.Layout, h.Orientation, h.Address, availableFrom, h.RegionID, h.SubwayLineID,
		h.Status, h.Recommended, pq.Array(h.MediaURLs), now,
	).Scan(&h.ID)
}

func (r *houseRepository) GetByID(ctx context.Context, id int64) (*domain.House, error) {
	return scanHouse(r.db.QueryRowContext(ctx,
		`SELECT `+houseColumns+` FROM houses WHERE id = $1`, id))
}

func (r *houseRepository) Update(ctx context.Context, h *domain.House) error {
	var availableFrom any
	if h.AvailableFrom != "" {
		availableFrom = h.AvailableFrom
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE houses SET title=$1, description=$2, rent_price_cents=$3, deposit_cents=$4,
			area_sqm=$5, layout=$6, orientation=$7, address=$8, available_from=$9,
			region_id=$10, subway_line_id=$11, status=$12, recommended=$13, media_urls=$14,
			updated_at=$15
		 WHERE id=$16`,
		h.Title, h.Description, h.RentPriceCents, h.DepositCents,
		h.AreaSqm, h.Layout, h.Orientation, h.Address, availableFrom,
		h.RegionID, h.SubwayLineID, h.Status, h.Recommended, pq.Array(h.MediaURLs),
		time.Now().UTC(), h.ID)
	return err
}

func (r *houseRepository) List(ctx context.Context, filter domain.HouseFilter, page, pageSize int32) ([]domain.House, int64, error) {
	where := `TRUE`
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filter.OnlyPublished {
		where += ` AND status = ` + arg(domain.HouseStatusPublished)
	}
	if filter.Keyword != "" {
		p := arg("%" + filter.Keyword + "%")
		where += fmt.Sprintf(` AND (title ILIKE %s OR address ILIKE %s)`, p, p)
	}
	if filter.RegionID > 0 {
		where += ` AND region_id = ` + arg(filter.RegionID)
	}
	if filter.SubwayLineID > 0 {
		where += ` AND subway_line_id = ` + arg(filter.SubwayLineID)
	}
	if filter.MaxRentCents > 0 {
		where += ` AND rent_price_cents <= ` + arg(filter.MaxRentCents)
	}
	return r.list(ctx, where, args, page, pageSize)
}

func (r *houseRepository) ListByOwner(ctx context.Context, ownerID int64, page, pageSize int32) ([]domain.House, int64, error) {
	return r.list(ctx, `owner_id = $1`, []any{ownerID}, page, pageSize)
}

func (r *houseRepository) list(ctx context.Context, where string, args []any, page, pageSize int32) ([]domain.House, int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM houses WHERE `+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := fmt.Sprintf(`SELECT %s FROM houses WHERE %s ORDER BY recommended DESC, created_at DESC LIMIT $%d OFFSET $%d`,
		houseColumns, where, len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var houses []domain.House
	for rows.Next() {
		h, err := scanHouse(rows)
		if err != nil {
			return nil, 0, err
		}
		houses = append(houses, *h)
	}
	return houses, count, rows.Err()
}

func (r *houseRepository) CountByRegion(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT COALESCE(rg.name, '') AS region, count(*)
		 FROM houses h LEFT JOIN regions rg ON rg.id = h.region_id
		 GROUP BY rg.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var name string
		var n int64
		if err := rows.Scan(&name, &n); err != nil {
			return nil, err
		}
		counts[name] = n
	}
	return counts, rows.Err()
}

func (r *houseRepository) CountBySubwayProximity(ctx context.Context) (int64, int64, error) {
	var withSubway, withoutSubway int64
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FILTER (WHERE subway_line_id IS NOT NULL),
		        count(*) FILTER (WHERE subway_line_id IS NULL)
		 FROM houses`).Scan(&withSubway, &withoutSubway)
	return withSubway, withoutSubway, err
}
