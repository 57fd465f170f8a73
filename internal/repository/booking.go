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

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// CreateRequest inserts the pending booking and flips the event to
// BOOKING_REQUESTED in one transaction. The unique (event, caterer)
// index rejects duplicate requests.
func (r *BookingRepository) CreateRequest(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var status string
	statusQuery := `SELECT status FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, statusQuery, b.EventID).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("lock event: %w", err)
	}

	switch domain.EventStatus(status) {
	case domain.EventStatusCreated, domain.EventStatusBookingRequested:
	default:
		return domain.ErrEventNotBookable
	}

	insertQuery := `INSERT INTO bookings (id, event_id, caterer_id, status, created_at, updated_at)
				    VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = tx.ExecContext(ctx, insertQuery,
		b.ID, b.EventID, b.CatererID, string(b.Status), b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyRequested
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	eventQuery := `UPDATE events SET status = $2, updated_at = now() WHERE id = $1`
	if _, err = tx.ExecContext(ctx, eventQuery, b.EventID, string(domain.EventStatusBookingRequested)); err != nil {
		return fmt.Errorf("update event status: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT id, event_id, caterer_id, status, created_at, updated_at
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.Booking
	var status string
	if err = row.Scan(&b.ID, &b.EventID, &b.CatererID, &status, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}
	b.Status = domain.BookingStatus(status)

	return &b, nil
}

// Respond applies the caterer's decision atomically. Accepting books
// the event, but only while it is still BOOKING_REQUESTED, and rejects
// every other pending request for it; rejecting returns the event to
// CREATED when no other pending request remains.
func (r *BookingRepository) Respond(ctx context.Context, bookingID string, status domain.BookingStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var eventID string
	updateQuery := `UPDATE bookings
				    SET status = $2, updated_at = now()
				    WHERE id = $1 AND status = $3
				    RETURNING event_id`
	err = tx.QueryRowContext(ctx, updateQuery,
		bookingID, string(status), string(domain.BookingStatusPending),
	).Scan(&eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotPending
		}
		return fmt.Errorf("update booking: %w", err)
	}

	if status == domain.BookingStatusAccepted {
		rejectQuery := `UPDATE bookings
					    SET status = $2, updated_at = now()
					    WHERE event_id = $1 AND status = $3`
		if _, err = tx.ExecContext(ctx, rejectQuery,
			eventID, string(domain.BookingStatusRejected), string(domain.BookingStatusPending),
		); err != nil {
			return fmt.Errorf("reject competing requests: %w", err)
		}

		eventQuery := `UPDATE events SET status = $2, updated_at = now()
					   WHERE id = $1 AND status = $3`
		res, err := tx.ExecContext(ctx, eventQuery,
			eventID, string(domain.EventStatusBooked), string(domain.EventStatusBookingRequested),
		)
		if err != nil {
			return fmt.Errorf("book event: %w", err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return fmt.Errorf("book event: %w", err)
		} else if n == 0 {
			return domain.ErrEventNotBookable
		}

		return tx.Commit()
	}

	var pending int
	countQuery := `SELECT COUNT(*) FROM bookings WHERE event_id = $1 AND status = $2`
	if err = tx.QueryRowContext(ctx, countQuery, eventID, string(domain.BookingStatusPending)).Scan(&pending); err != nil {
		return fmt.Errorf("count pending: %w", err)
	}
	if pending == 0 {
		eventQuery := `UPDATE events SET status = $2, updated_at = now() WHERE id = $1 AND status = $3`
		if _, err = tx.ExecContext(ctx, eventQuery,
			eventID, string(domain.EventStatusCreated), string(domain.EventStatusBookingRequested),
		); err != nil {
			return fmt.Errorf("reopen event: %w", err)
		}
	}

	return tx.Commit()
}

func (r *BookingRepository) ListByCaterer(ctx context.Context, catererID string) ([]*domain.BookingRequest, error) {
	query := `SELECT b.id, b.event_id, b.caterer_id, b.status, b.created_at, b.updated_at,
			         e.event_name, e.event_type, e.attendees, e.duration_hours,
			         e.meal_style, e.location_type, e.season, e.estimated_food_quantity, e.unit
			  FROM bookings b
			  JOIN events e ON e.id = b.event_id
			  WHERE b.caterer_id = $1
			  ORDER BY b.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, catererID)
	if err != nil {
		return nil, fmt.Errorf("list caterer requests: %w", err)
	}
	defer rows.Close()

	var res []*domain.BookingRequest
	for rows.Next() {
		var (
			req    domain.BookingRequest
			status string
		)
		if err = rows.Scan(
			&req.Booking.ID, &req.Booking.EventID, &req.Booking.CatererID, &status,
			&req.Booking.CreatedAt, &req.Booking.UpdatedAt,
			&req.Event.Name, &req.Event.Type, &req.Event.Attendees, &req.Event.DurationHours,
			&req.Event.MealStyle, &req.Event.LocationType, &req.Event.Season,
			&req.Event.EstimatedFoodKg, &req.Event.Unit,
		); err != nil {
			return nil, fmt.Errorf("scan caterer request: %w", err)
		}
		req.Booking.Status = domain.BookingStatus(status)
		req.Event.ID = req.Booking.EventID
		res = append(res, &req)
	}

	return res, rows.Err()
}

// StatusForEvent reports the accepted request when there is one,
// otherwise the most recent request.
func (r *BookingRepository) StatusForEvent(ctx context.Context, eventID string) (*domain.EventBookingStatus, error) {
	query := `SELECT b.status, c.business_name, c.price_per_plate, c.phone
			  FROM bookings b
			  JOIN caterer_profiles c ON c.id = b.caterer_id
			  WHERE b.event_id = $1
			  ORDER BY (b.status = 'ACCEPTED') DESC, b.created_at DESC
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event booking status: %w", err)
	}

	var (
		s     domain.EventBookingStatus
		state string
	)
	if err = row.Scan(&state, &s.CatererName, &s.PricePerPlate, &s.CatererPhone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan event booking status: %w", err)
	}
	s.Status = domain.BookingStatus(state)

	return &s, nil
}

// ExpireStale marks pending requests older than the TTL as EXPIRED and
// returns affected events to CREATED when no pending request remains,
// mirroring the reject path.
func (r *BookingRepository) ExpireStale(ctx context.Context, olderThan time.Duration) ([]*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE status = $1 AND created_at < now() - make_interval(secs => $3)
			  RETURNING id, event_id, caterer_id, status, created_at, updated_at`

	rows, err := tx.QueryContext(ctx, query,
		string(domain.BookingStatusPending), string(domain.BookingStatusExpired),
		int64(olderThan.Seconds()),
	)
	if err != nil {
		return nil, fmt.Errorf("expire stale: %w", err)
	}
	defer rows.Close()

	var (
		res      []*domain.Booking
		eventIDs []string
	)
	for rows.Next() {
		var (
			b      domain.Booking
			status string
		)
		if err = rows.Scan(&b.ID, &b.EventID, &b.CatererID, &status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan expired booking: %w", err)
		}
		b.Status = domain.BookingStatus(status)
		res = append(res, &b)
		eventIDs = append(eventIDs, b.EventID)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("expire stale: %w", err)
	}
	rows.Close()

	if len(eventIDs) > 0 {
		reopenQuery := `UPDATE events e
					    SET status = $1, updated_at = now()
					    WHERE e.id = ANY($2) AND e.status = $3
					      AND NOT EXISTS (
					        SELECT 1 FROM bookings b
					        WHERE b.event_id = e.id AND b.status = $4
					      )`
		if _, err = tx.ExecContext(ctx, reopenQuery,
			string(domain.EventStatusCreated), pq.Array(eventIDs),
			string(domain.EventStatusBookingRequested), string(domain.BookingStatusPending),
		); err != nil {
			return nil, fmt.Errorf("reopen events: %w", err)
		}
	}

	return res, tx.Commit()
}
