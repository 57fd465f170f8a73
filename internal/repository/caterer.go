package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
)

const catererColumns = `id, user_id, business_name, city, price_per_plate, min_capacity, max_capacity,
	veg_supported, nonveg_supported, rating, latitude, longitude, phone, image_url, services,
	created_at, updated_at`

type CatererRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCatererRepo(db *dbpg.DB) *CatererRepository {
	return &CatererRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CatererRepository) Create(ctx context.Context, p *domain.CatererProfile) error {
	query := `INSERT INTO caterer_profiles (` + catererColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		p.ID, p.UserID, p.BusinessName, p.City, p.PricePerPlate, p.MinCapacity, p.MaxCapacity,
		p.VegSupported, p.NonVegSupported, p.Rating, p.Latitude, p.Longitude, p.Phone, p.ImageURL,
		pq.Array(p.Services), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: profile already exists", domain.ErrValidation)
		}
		return fmt.Errorf("insert caterer profile: %w", err)
	}

	return nil
}

func (r *CatererRepository) Update(ctx context.Context, p *domain.CatererProfile) error {
	query := `UPDATE caterer_profiles
			  SET business_name = $2, city = $3, price_per_plate = $4,
			      min_capacity = $5, max_capacity = $6,
			      veg_supported = $7, nonveg_supported = $8,
			      latitude = $9, longitude = $10, phone = $11, image_url = $12,
			      services = $13, updated_at = $14
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		p.ID, p.BusinessName, p.City, p.PricePerPlate,
		p.MinCapacity, p.MaxCapacity,
		p.VegSupported, p.NonVegSupported,
		p.Latitude, p.Longitude, p.Phone, p.ImageURL,
		pq.Array(p.Services), p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update caterer profile: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("caterer rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrCatererNotFound
	}

	return nil
}

func (r *CatererRepository) GetByID(ctx context.Context, id string) (*domain.CatererProfile, error) {
	query := `SELECT ` + catererColumns + ` FROM caterer_profiles WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *CatererRepository) GetByUser(ctx context.Context, userID string) (*domain.CatererProfile, error) {
	query := `SELECT ` + catererColumns + ` FROM caterer_profiles WHERE user_id = $1`
	return r.getOne(ctx, query, userID)
}

func (r *CatererRepository) getOne(ctx context.Context, query string, arg any) (*domain.CatererProfile, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get caterer: %w", err)
	}

	p, err := scanCaterer(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCatererNotFound
		}
		return nil, fmt.Errorf("scan caterer: %w", err)
	}

	return p, nil
}

func (r *CatererRepository) ListCandidates(ctx context.Context, attendees int, f domain.MatchFilter) ([]*domain.CatererProfile, error) {
	query := `SELECT ` + catererColumns + `
			  FROM caterer_profiles
			  WHERE min_capacity <= $1 AND max_capacity >= $1
			    AND ($2::numeric IS NULL OR price_per_plate >= $2)
			    AND ($3::numeric IS NULL OR price_per_plate <= $3)
			    AND ($4::numeric IS NULL OR rating >= $4)
			    AND (NOT $5 OR veg_supported)
			    AND (NOT $6 OR nonveg_supported)`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query,
		attendees, f.MinPrice, f.MaxPrice, f.MinRating, f.VegOnly, f.NonVegOnly,
	)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	var res []*domain.CatererProfile
	for rows.Next() {
		p, err := scanCaterer(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

func scanCaterer(scan func(dest ...any) error) (*domain.CatererProfile, error) {
	var p domain.CatererProfile
	err := scan(
		&p.ID, &p.UserID, &p.BusinessName, &p.City, &p.PricePerPlate, &p.MinCapacity, &p.MaxCapacity,
		&p.VegSupported, &p.NonVegSupported, &p.Rating, &p.Latitude, &p.Longitude, &p.Phone, &p.ImageURL,
		pq.Array(&p.Services), &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &p, nil
}
