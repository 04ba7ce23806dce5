package postgres

import (
	"context"
	"database/sql"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/repository"
)

type regionRepository struct {
	db *sql.DB
}

func NewRegionRepository(db *sql.DB) repository.RegionRepository {
	return &regionRepository{db: db}
}

func (r *regionRepository) ListRegions(ctx context.Context) ([]domain.Region, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM regions ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regions []domain.Region
	for rows.Next() {
		var rg domain.Region
		if err := rows.Scan(&rg.ID, &rg.Name); err != nil {
			return nil, err
		}
		regions = append(regions, rg)
	}
	return regions, rows.Err()
}

func (r *regionRepository) ListSubwayLines(ctx context.Context) ([]domain.SubwayLine, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, color FROM subway_lines ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.SubwayLine
	for rows.Next() {
		var ln domain.SubwayLine
		var color sql.NullString
		if err := rows.Scan(&ln.ID, &ln.Name, &color); err != nil {
			return nil, err
		}
		ln.Color = color.String
		lines = append(lines, ln)
	}
	return lines, rows.Err()
}
