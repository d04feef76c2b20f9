// Durable job registry in PostgreSQL
// Redis holds the live queue and job state; this table is the audit trail

package server

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

type JobRecord struct {
	ID          string
	SessionID   string
	Backend     string
	Shots       int32
	CircuitHash string
	NumQubits   int32
	NumOps      int32
	Noisy       bool
	State       string
	Error       string
	SubmittedAt time.Time
	CompletedAt sql.NullTime
}

type Store struct {
	db *sql.DB
}

// OpenStore connects to PostgreSQL and ensures the schema exists.
func OpenStore(connStr string) (*Store, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping: %w", err)
	}
	if err := initDB(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Store{db: db}, nil
}

func initDB(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS jobs (
		id UUID PRIMARY KEY,
		session_id UUID NOT NULL,
		backend VARCHAR(255) NOT NULL,
		shots INTEGER NOT NULL,
		circuit_hash CHAR(64) NOT NULL,
		num_qubits INTEGER NOT NULL,
		num_ops INTEGER NOT NULL,
		noisy BOOLEAN NOT NULL DEFAULT false,
		state VARCHAR(20) NOT NULL,
		error_message TEXT NOT NULL DEFAULT '',
		submitted_at TIMESTAMP NOT NULL,
		completed_at TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_jobs_session ON jobs(session_id);
	CREATE INDEX IF NOT EXISTS idx_jobs_backend ON jobs(backend);
	CREATE INDEX IF NOT EXISTS idx_jobs_hash ON jobs(circuit_hash);
	`
	_, err := db.Exec(schema)
	return err
}

func (s *Store) Close() error { return s.db.Close() }

// InsertJob records a freshly submitted job.
func (s *Store) InsertJob(ctx context.Context, rec *JobRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO jobs (id, session_id, backend, shots, circuit_hash, num_qubits, num_ops, noisy, state, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		rec.ID, rec.SessionID, rec.Backend, rec.Shots, rec.CircuitHash,
		rec.NumQubits, rec.NumOps, rec.Noisy, rec.State, rec.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

// MarkJob moves a job to a new state. Terminal states stamp completed_at.
func (s *Store) MarkJob(ctx context.Context, jobID, state, errMsg string) error {
	var completedAt any
	switch state {
	case "COMPLETED", "FAILED", "CANCELLED":
		completedAt = time.Now()
	default:
		completedAt = nil
	}
	_, err := s.db.ExecContext(ctx, `
		UPDATE jobs SET state = $2, error_message = $3, completed_at = $4 WHERE id = $1
	`, jobID, state, errMsg, completedAt)
	if err != nil {
		return fmt.Errorf("mark job %s: %w", jobID, err)
	}
	return nil
}

// ListJobs returns the most recent jobs, optionally filtered by backend.
func (s *Store) ListJobs(ctx context.Context, backendName string, limit int) ([]*JobRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	query := `SELECT id, session_id, backend, shots, circuit_hash, num_qubits, num_ops, noisy, state, error_message, submitted_at, completed_at FROM jobs`
	args := []any{}
	if backendName != "" {
		query += ` WHERE backend = $1`
		args = append(args, backendName)
	}
	query += fmt.Sprintf(` ORDER BY submitted_at DESC LIMIT %d`, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*JobRecord
	for rows.Next() {
		var rec JobRecord
		if err := rows.Scan(
			&rec.ID, &rec.SessionID, &rec.Backend, &rec.Shots, &rec.CircuitHash,
			&rec.NumQubits, &rec.NumOps, &rec.Noisy, &rec.State, &rec.Error,
			&rec.SubmittedAt, &rec.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan job row: %w", err)
		}
		jobs = append(jobs, &rec)
	}
	return jobs, rows.Err()
}
