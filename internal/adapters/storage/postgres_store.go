package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver

	"captura/internal/domain"
	"captura/internal/ports"
)

const pgDriver = "pgx"

// openDB is a package-level var to allow test injection
var openDB = sql.Open

// PostgresLeadStore implements ports.LeadStore against a shared Postgres
// instance. The funnel in production writes leads to the same database the
// rest of the marketing stack reads from; blog and tenant content stay on
// the local sqlite store.
type PostgresLeadStore struct {
	db *sql.DB
}

// Verify interface compliance at compile time
var _ ports.LeadStore = (*PostgresLeadStore)(nil)

const leadsDDL = `
CREATE TABLE IF NOT EXISTS leads_captura (
	session_id TEXT PRIMARY KEY,
	full_name TEXT NOT NULL DEFAULT '',
	contact_phone TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'partial'
		CHECK (status IN ('partial','abandoned','completed')),
	source TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_leads_captura_updated ON leads_captura (updated_at DESC);
`

// NewPostgresLeadStore opens a Postgres-backed lead store using the
// provided DSN and ensures the capture table exists.
func NewPostgresLeadStore(dsn string) (*PostgresLeadStore, error) {
	if dsn == "" {
		return nil, &domain.ConfigurationError{Message: "postgres lead store requires a DSN"}
	}

	db, err := openDB(pgDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, &domain.ConfigurationError{Message: fmt.Sprintf("postgres unreachable: %v", err)}
	}

	if _, err := db.ExecContext(ctx, leadsDDL); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure leads table: %w", err)
	}

	return &PostgresLeadStore{db: db}, nil
}

// Close closes the database connection
func (s *PostgresLeadStore) Close() error {
	return s.db.Close()
}

// Upsert implements ports.LeadWriter.Upsert with the same single-statement
// merge the sqlite store performs: coalesce-on-non-empty per field, status
// last-write-wins unless already completed, source written on insert only.
func (s *PostgresLeadStore) Upsert(ctx context.Context, up ports.LeadUpsert) (*domain.Lead, error) {
	if up.SessionID == "" {
		return nil, &domain.PersistenceError{Op: "lead upsert", Err: errors.New("empty session id")}
	}

	const query = `
		INSERT INTO leads_captura (session_id, full_name, contact_phone, email, status, source, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (session_id) DO UPDATE SET
			full_name = CASE WHEN EXCLUDED.full_name <> '' THEN EXCLUDED.full_name ELSE leads_captura.full_name END,
			contact_phone = CASE WHEN EXCLUDED.contact_phone <> '' THEN EXCLUDED.contact_phone ELSE leads_captura.contact_phone END,
			email = CASE WHEN EXCLUDED.email <> '' THEN EXCLUDED.email ELSE leads_captura.email END,
			status = CASE WHEN leads_captura.status = 'completed' THEN leads_captura.status ELSE EXCLUDED.status END,
			updated_at = NOW()
		RETURNING session_id, full_name, contact_phone, email, status, source, created_at, updated_at`

	row := s.db.QueryRowContext(ctx, query,
		up.SessionID,
		up.Fields.FullName,
		up.Fields.ContactPhone,
		up.Fields.Email,
		string(up.Status),
		up.Source,
	)

	lead, err := scanLead(row)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "lead upsert", Err: err}
	}
	return lead, nil
}

// Get implements ports.LeadReader.Get
func (s *PostgresLeadStore) Get(ctx context.Context, sessionID string) (*domain.Lead, error) {
	const query = `
		SELECT session_id, full_name, contact_phone, email, status, source, created_at, updated_at
		FROM leads_captura WHERE session_id = $1`

	lead, err := scanLead(s.db.QueryRowContext(ctx, query, sessionID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLeadNotFound
		}
		return nil, &domain.PersistenceError{Op: "lead get", Err: err}
	}
	return lead, nil
}

// List implements ports.LeadReader.List
func (s *PostgresLeadStore) List(ctx context.Context, status domain.LeadStatus) ([]domain.Lead, error) {
	query := `
		SELECT session_id, full_name, contact_phone, email, status, source, created_at, updated_at
		FROM leads_captura`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, string(status))
	}
	query += ` ORDER BY updated_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "lead list", Err: err}
	}
	defer rows.Close()

	var leads []domain.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, &domain.PersistenceError{Op: "lead list", Err: err}
		}
		leads = append(leads, *lead)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.PersistenceError{Op: "lead list", Err: err}
	}
	return leads, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*domain.Lead, error) {
	var lead domain.Lead
	var status string
	err := row.Scan(
		&lead.SessionID,
		&lead.FullName,
		&lead.ContactPhone,
		&lead.Email,
		&status,
		&lead.Source,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	lead.Status = domain.LeadStatus(status)
	return &lead, nil
}
