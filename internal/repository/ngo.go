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

type NGORepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewNGORepo(db *dbpg.DB) *NGORepository {
	return &NGORepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *NGORepository) Create(ctx context.Context, n *domain.NGO) error {
	query := `INSERT INTO ngos (id, user_id, name, registration_number, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		n.ID, n.UserID, n.Name, n.RegistrationNumber, string(n.Status), n.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrNGOAlreadyExists
		}
		return fmt.Errorf("insert ngo: %w", err)
	}

	return nil
}

func (r *NGORepository) GetByID(ctx context.Context, id string) (*domain.NGO, error) {
	query := `SELECT id, user_id, name, registration_number, status, created_at
			  FROM ngos WHERE id = $1`
	return r.scanNGO(ctx, query, id)
}

func (r *NGORepository) GetByUser(ctx context.Context, userID string) (*domain.NGO, error) {
	query := `SELECT id, user_id, name, registration_number, status, created_at
			  FROM ngos WHERE user_id = $1`
	return r.scanNGO(ctx, query, userID)
}

func (r *NGORepository) scanNGO(ctx context.Context, query string, arg any) (*domain.NGO, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get ngo: %w", err)
	}

	var (
		n      domain.NGO
		status string
	)
	if err = row.Scan(&n.ID, &n.UserID, &n.Name, &n.RegistrationNumber, &status, &n.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNGONotFound
		}
		return nil, fmt.Errorf("scan ngo: %w", err)
	}
	n.Status = domain.NGOStatus(status)

	return &n, nil
}

func (r *NGORepository) SetStatus(ctx context.Context, id string, status domain.NGOStatus) error {
	query := `UPDATE ngos SET status = $2 WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, string(status))
	if err != nil {
		return fmt.Errorf("update ngo status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ngo rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNGONotFound
	}

	return nil
}

func (r *NGORepository) ListWithDocuments(ctx context.Context) ([]*domain.AdminNGO, error) {
	query := `SELECT id, user_id, name, registration_number, status, created_at
			  FROM ngos
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list ngos: %w", err)
	}
	defer rows.Close()

	var res []*domain.AdminNGO
	byID := make(map[string]*domain.AdminNGO)
	for rows.Next() {
		var (
			n      domain.NGO
			status string
		)
		if err = rows.Scan(&n.ID, &n.UserID, &n.Name, &n.RegistrationNumber, &status, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ngo: %w", err)
		}
		n.Status = domain.NGOStatus(status)

		entry := &domain.AdminNGO{NGO: n, Documents: []domain.NGODocument{}}
		byID[n.ID] = entry
		res = append(res, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	docQuery := `SELECT id, ngo_id, document_type, file_url, status, created_at
				 FROM ngo_documents
				 ORDER BY created_at`
	docRows, err := r.db.QueryWithRetry(ctx, r.strategy, docQuery)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer docRows.Close()

	for docRows.Next() {
		d, err := scanDocument(docRows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		if entry, ok := byID[d.NgoID]; ok {
			entry.Documents = append(entry.Documents, *d)
		}
	}

	return res, docRows.Err()
}

func (r *NGORepository) CreateDocument(ctx context.Context, d *domain.NGODocument) error {
	query := `INSERT INTO ngo_documents (id, ngo_id, document_type, file_url, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		d.ID, d.NgoID, d.Type, d.FileURL, string(d.Status), d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}

	return nil
}

func (r *NGORepository) ListDocuments(ctx context.Context, ngoID string) ([]*domain.NGODocument, error) {
	query := `SELECT id, ngo_id, document_type, file_url, status, created_at
			  FROM ngo_documents
			  WHERE ngo_id = $1
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ngoID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var res []*domain.NGODocument
	for rows.Next() {
		d, err := scanDocument(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		res = append(res, d)
	}

	return res, rows.Err()
}

func (r *NGORepository) SetDocumentStatus(ctx context.Context, docID string, status domain.DocumentStatus) error {
	query := `UPDATE ngo_documents SET status = $2 WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, docID, string(status))
	if err != nil {
		return fmt.Errorf("update document status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("document rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}

	return nil
}

func (r *NGORepository) GetProfile(ctx context.Context, ngoID string) (*domain.NGOProfile, error) {
	query := `SELECT ngo_id, name, established_year, about, email, phone, address,
			         latitude, longitude, image_url, updated_at
			  FROM ngo_profiles
			  WHERE ngo_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, ngoID)
	if err != nil {
		return nil, fmt.Errorf("get ngo profile: %w", err)
	}

	var p domain.NGOProfile
	if err = row.Scan(
		&p.NgoID, &p.Name, &p.EstablishedYear, &p.About, &p.Email, &p.Phone, &p.Address,
		&p.Latitude, &p.Longitude, &p.ImageURL, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("scan ngo profile: %w", err)
	}

	return &p, nil
}

func (r *NGORepository) UpsertProfile(ctx context.Context, p *domain.NGOProfile) error {
	query := `INSERT INTO ngo_profiles (ngo_id, name, established_year, about, email, phone, address,
			                            latitude, longitude, image_url, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  ON CONFLICT (ngo_id) DO UPDATE
			  SET name = EXCLUDED.name,
			      established_year = EXCLUDED.established_year,
			      about = EXCLUDED.about,
			      email = EXCLUDED.email,
			      phone = EXCLUDED.phone,
			      address = EXCLUDED.address,
			      latitude = EXCLUDED.latitude,
			      longitude = EXCLUDED.longitude,
			      image_url = EXCLUDED.image_url,
			      updated_at = EXCLUDED.updated_at`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		p.NgoID, p.Name, p.EstablishedYear, p.About, p.Email, p.Phone, p.Address,
		p.Latitude, p.Longitude, p.ImageURL, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert ngo profile: %w", err)
	}

	return nil
}

func (r *NGORepository) ListVerifiedRecipients(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT u.id, u.subject, u.email, u.role, u.telegram_chat_id, u.created_at
			  FROM ngos n
			  JOIN users u ON u.id = n.user_id
			  WHERE n.status = $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, string(domain.NGOStatusVerified))
	if err != nil {
		return nil, fmt.Errorf("list verified recipients: %w", err)
	}
	defer rows.Close()

	var res []*domain.User
	for rows.Next() {
		var (
			u    domain.User
			role string
		)
		if err = rows.Scan(&u.ID, &u.Subject, &u.Email, &role, &u.TelegramChatID, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recipient: %w", err)
		}
		u.Role = domain.Role(role)
		res = append(res, &u)
	}

	return res, rows.Err()
}

func scanDocument(scan func(dest ...any) error) (*domain.NGODocument, error) {
	var (
		d      domain.NGODocument
		status string
	)
	if err := scan(&d.ID, &d.NgoID, &d.Type, &d.FileURL, &status, &d.CreatedAt); err != nil {
		return nil, err
	}
	d.Status = domain.DocumentStatus(status)

	return &d, nil
}
