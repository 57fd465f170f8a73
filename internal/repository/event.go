package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/JahnaviYelishala1/eventconnect/internal/domain"
)

const eventColumns = `id, organizer_id, event_name, event_type, attendees, duration_hours,
	meal_style, location_type, season, estimated_food_quantity, unit,
	address, city, pincode, latitude, longitude,
	status, food_prepared, food_consumed,
	surplus_address, surplus_city, surplus_pincode, surplus_latitude, surplus_longitude, surplus_location_type,
	created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (` + eventColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			          $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		e.ID, e.OrganizerID, e.Name, e.Type, e.Attendees, e.DurationHours,
		e.MealStyle, e.LocationType, e.Season, e.EstimatedFoodKg, e.Unit,
		e.Venue.Address, e.Venue.City, e.Venue.Pincode, e.Venue.Latitude, e.Venue.Longitude,
		string(e.Status), e.FoodPreparedKg, e.FoodConsumedKg,
		nil, nil, nil, nil, nil, nil,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) ListByOrganizer(ctx context.Context, organizerID string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE organizer_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, organizerID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *EventRepository) Complete(ctx context.Context, e *domain.Event) error {
	var pickup domain.Location
	if e.SurplusPickup != nil {
		pickup = *e.SurplusPickup
	}

	query := `UPDATE events
			  SET status = $2,
			      food_prepared = $3,
			      food_consumed = $4,
			      surplus_address = $5,
			      surplus_city = $6,
			      surplus_pincode = $7,
			      surplus_latitude = $8,
			      surplus_longitude = $9,
			      surplus_location_type = $10,
			      updated_at = $11
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		e.ID, string(e.Status), e.FoodPreparedKg, e.FoodConsumedKg,
		nullIfEmpty(pickup.Address), nullIfEmpty(pickup.City), nullIfEmpty(pickup.Pincode),
		pickup.Latitude, pickup.Longitude, nullIfEmpty(pickup.LocationType),
		e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("complete event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("complete rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func scanEvent(scan func(dest ...any) error) (*domain.Event, error) {
	var (
		e              domain.Event
		status         string
		surplusAddress sql.NullString
		surplusCity    sql.NullString
		surplusPincode sql.NullString
		surplusLat     *float64
		surplusLng     *float64
		surplusLocType sql.NullString
	)

	err := scan(
		&e.ID, &e.OrganizerID, &e.Name, &e.Type, &e.Attendees, &e.DurationHours,
		&e.MealStyle, &e.LocationType, &e.Season, &e.EstimatedFoodKg, &e.Unit,
		&e.Venue.Address, &e.Venue.City, &e.Venue.Pincode, &e.Venue.Latitude, &e.Venue.Longitude,
		&status, &e.FoodPreparedKg, &e.FoodConsumedKg,
		&surplusAddress, &surplusCity, &surplusPincode, &surplusLat, &surplusLng, &surplusLocType,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	e.Status = domain.EventStatus(status)
	if surplusAddress.Valid {
		e.SurplusPickup = &domain.Location{
			Address:      surplusAddress.String,
			City:         surplusCity.String,
			Pincode:      surplusPincode.String,
			Latitude:     surplusLat,
			Longitude:    surplusLng,
			LocationType: surplusLocType.String,
		}
	}

	return &e, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
