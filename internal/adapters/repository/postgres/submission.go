package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"patientintake/internal/core/domain/intake"
	"patientintake/internal/platform/database/postgres"
)

var ErrNotConnected = errors.New("database connection is not initialized")

// Connector hands out the current pool; *database.Lifecycle satisfies it.
type Connector interface {
	Connection() *postgres.DB
}

type SubmissionRepository struct {
	db Connector
}

func NewSubmissionRepository(db Connector) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) conn() (*postgres.DB, error) {
	conn := r.db.Connection()
	if conn == nil {
		return nil, ErrNotConnected
	}
	return conn, nil
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id string) (*intake.Record, error) {
	conn, err := r.conn()
	if err != nil {
		return nil, err
	}

	query := `SELECT id, session_id, name, age, allergies, symptoms, submitted_at
		FROM intake_submissions WHERE id = $1`

	var record intake.Record
	var symptoms []string
	err = conn.QueryRowContext(ctx, query, id).Scan(
		&record.ID,
		&record.SessionID,
		&record.Submission.Name,
		&record.Submission.Age,
		&record.Submission.Allergies,
		pq.Array(&symptoms),
		&record.SubmittedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, intake.ErrSubmissionNotFound
		}
		return nil, err
	}
	record.Submission.Symptoms = symptoms

	return &record, nil
}

func (r *SubmissionRepository) Save(ctx context.Context, record *intake.Record) error {
	conn, err := r.conn()
	if err != nil {
		return err
	}

	query := `INSERT INTO intake_submissions
		(id, session_id, name, age, allergies, symptoms, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = conn.ExecContext(ctx, query,
		record.ID,
		record.SessionID,
		record.Submission.Name,
		record.Submission.Age,
		record.Submission.Allergies,
		pq.Array(record.Submission.Symptoms),
		record.SubmittedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fmt.Errorf("%w: %s", intake.ErrDuplicateID, record.ID)
		}
		return err
	}
	return nil
}

func (r *SubmissionRepository) CreateTable(ctx context.Context) error {
	conn, err := r.conn()
	if err != nil {
		return err
	}

	return conn.InTx(ctx, func(tx *sql.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS intake_submissions (
		id VARCHAR(64) PRIMARY KEY,
		session_id VARCHAR(64) NOT NULL,
		name TEXT NOT NULL,
		age VARCHAR(32) NOT NULL,
		allergies TEXT NOT NULL DEFAULT '',
		symptoms TEXT[] NOT NULL,
		submitted_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS intake_submissions_session_id_idx
		ON intake_submissions (session_id)`,
}
