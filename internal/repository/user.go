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

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, subject, email, role, telegram_chat_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		user.ID, user.Subject, user.Email, string(user.Role), user.TelegramChatID, user.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Concurrent first request for the same subject: the row
			// already exists, treat as created.
			return nil
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, subject, email, role, telegram_chat_id, created_at
			  FROM users
			  WHERE id = $1`
	return r.scanUser(ctx, query, id)
}

func (r *UserRepository) GetBySubject(ctx context.Context, subject string) (*domain.User, error) {
	query := `SELECT id, subject, email, role, telegram_chat_id, created_at
			  FROM users
			  WHERE subject = $1`
	return r.scanUser(ctx, query, subject)
}

func (r *UserRepository) scanUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var u domain.User
	var role string
	if err = row.Scan(&u.ID, &u.Subject, &u.Email, &role, &u.TelegramChatID, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	u.Role = domain.Role(role)

	return &u, nil
}

// SetRole assigns the role only while the user is unassigned.
func (r *UserRepository) SetRole(ctx context.Context, id string, role domain.Role) error {
	query := `UPDATE users SET role = $2 WHERE id = $1 AND role = ''`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, string(role))
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("role rows affected: %w", err)
	}
	if rows == 0 {
		// Either the user is gone or the role is already set.
		var current string
		checkQuery := `SELECT role FROM users WHERE id = $1`
		row, qerr := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, id)
		if qerr != nil {
			return fmt.Errorf("check role: %w", qerr)
		}
		if scanErr := row.Scan(&current); scanErr != nil {
			return domain.ErrUserNotFound
		}
		return domain.ErrRoleAlreadySet
	}

	return nil
}

func (r *UserRepository) GetOrganizerProfile(ctx context.Context, userID string) (*domain.OrganizerProfile, error) {
	query := `SELECT id, user_id, full_name, organization_name, phone, city, profile_image_url, updated_at
			  FROM organizer_profiles
			  WHERE user_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get organizer profile: %w", err)
	}

	var p domain.OrganizerProfile
	if err = row.Scan(&p.ID, &p.UserID, &p.FullName, &p.OrganizationName, &p.Phone, &p.City, &p.ProfileImageURL, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("scan organizer profile: %w", err)
	}

	return &p, nil
}

func (r *UserRepository) UpsertOrganizerProfile(ctx context.Context, p *domain.OrganizerProfile) error {
	query := `INSERT INTO organizer_profiles (id, user_id, full_name, organization_name, phone, city, profile_image_url, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  ON CONFLICT (user_id) DO UPDATE
			  SET full_name = EXCLUDED.full_name,
			      organization_name = EXCLUDED.organization_name,
			      phone = EXCLUDED.phone,
			      city = EXCLUDED.city,
			      profile_image_url = EXCLUDED.profile_image_url,
			      updated_at = EXCLUDED.updated_at`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		p.ID, p.UserID, p.FullName, p.OrganizationName, p.Phone, p.City, p.ProfileImageURL, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert organizer profile: %w", err)
	}

	return nil
}
