package postgres

import (
	"context"
	"database/sql"
	"time"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/repository"
)

type favoriteRepository struct {
	db *sql.DB
}

func NewFavoriteRepository(db *sql.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Add(ctx context.Context, userID, houseID int64) error {
	// The unique (user_id, house_id) index makes a repeated add a no-op.
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO house_favorites (user_id, house_id, created_at)
		 VALUES ($1, $2, $3) ON CONFLICT (user_id, house_id) DO NOTHING`,
		userID, houseID, time.Now().UTC())
	return err
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, houseID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM house_favorites WHERE user_id = $1 AND house_id = $2`,
		userID, houseID)
	return err
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, houseID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM house_favorites WHERE user_id = $1 AND house_id = $2)`,
		userID, houseID).Scan(&exists)
	return exists, err
}

const favoriteHouseColumns = `h.id, h.owner_id, h.title, h.description, h.rent_price_cents,
	h.deposit_cents, h.area_sqm, h.layout, h.orientation, h.address, h.available_from,
	h.region_id, h.subway_line_id, h.status, h.recommended, h.media_urls,
	h.created_at, h.updated_at`

func (r *favoriteRepository) ListHousesByUser(ctx context.Context, userID int64) ([]domain.House, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+favoriteHouseColumns+` FROM houses h
		 JOIN house_favorites f ON f.house_id = h.id
		 WHERE f.user_id = $1 ORDER BY f.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var houses []domain.House
	for rows.Next() {
		h, err := scanHouse(rows)
		if err != nil {
			return nil, err
		}
		houses = append(houses, *h)
	}
	return houses, rows.Err()
}
