package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/suite"

	"patientintake/internal/core/domain/intake"
	"patientintake/internal/platform/database/postgres"
)

type staticConnector struct {
	db *postgres.DB
}

func (c staticConnector) Connection() *postgres.DB {
	return c.db
}

type SubmissionRepositoryTestSuite struct {
	suite.Suite
	mock sqlmock.Sqlmock
	repo *SubmissionRepository
	ctx  context.Context
}

func (s *SubmissionRepositoryTestSuite) SetupTest() {
	db, mock, err := sqlmock.New()
	s.Require().NoError(err)

	s.mock = mock
	s.repo = NewSubmissionRepository(staticConnector{db: postgres.Wrap(db, 0)})
	s.ctx = context.Background()
}

func (s *SubmissionRepositoryTestSuite) TearDownTest() {
	s.Require().NoError(s.mock.ExpectationsWereMet())
}

func (s *SubmissionRepositoryTestSuite) record() *intake.Record {
	return &intake.Record{
		ID:        "record-1",
		SessionID: "session-1",
		Submission: intake.Submission{
			Name:      "Jane Doe",
			Age:       "34",
			Symptoms:  []string{"fever", "cough"},
			Allergies: "",
		},
		SubmittedAt: time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC),
	}
}

func (s *SubmissionRepositoryTestSuite) TestSave() {
	record := s.record()
	s.mock.ExpectExec("INSERT INTO intake_submissions").
		WithArgs("record-1", "session-1", "Jane Doe", "34", "", sqlmock.AnyArg(), record.SubmittedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s.Assert().NoError(s.repo.Save(s.ctx, record))
}

func (s *SubmissionRepositoryTestSuite) TestSave_Duplicate() {
	s.mock.ExpectExec("INSERT INTO intake_submissions").
		WillReturnError(&pq.Error{Code: "23505"})

	err := s.repo.Save(s.ctx, s.record())

	s.Require().Error(err)
	s.Assert().ErrorIs(err, intake.ErrDuplicateID)
}

func (s *SubmissionRepositoryTestSuite) TestSave_DriverError() {
	driverErr := errors.New("connection reset")
	s.mock.ExpectExec("INSERT INTO intake_submissions").WillReturnError(driverErr)

	err := s.repo.Save(s.ctx, s.record())

	s.Assert().ErrorIs(err, driverErr)
}

func (s *SubmissionRepositoryTestSuite) TestGetByID() {
	want := s.record()
	rows := sqlmock.NewRows([]string{"id", "session_id", "name", "age", "allergies", "symptoms", "submitted_at"}).
		AddRow("record-1", "session-1", "Jane Doe", "34", "", "{fever,cough}", want.SubmittedAt)
	s.mock.ExpectQuery("SELECT id, session_id, name, age, allergies, symptoms, submitted_at").
		WithArgs("record-1").
		WillReturnRows(rows)

	got, err := s.repo.GetByID(s.ctx, "record-1")

	s.Require().NoError(err)
	s.Assert().Equal(want, got)
}

func (s *SubmissionRepositoryTestSuite) TestGetByID_NotFound() {
	s.mock.ExpectQuery("SELECT id, session_id").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := s.repo.GetByID(s.ctx, "missing")

	s.Assert().ErrorIs(err, intake.ErrSubmissionNotFound)
	s.Assert().Nil(got)
}

func (s *SubmissionRepositoryTestSuite) TestCreateTable() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec("CREATE TABLE IF NOT EXISTS intake_submissions").
		WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectExec("CREATE INDEX IF NOT EXISTS intake_submissions_session_id_idx").
		WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectCommit()

	s.Assert().NoError(s.repo.CreateTable(s.ctx))
}

func (s *SubmissionRepositoryTestSuite) TestCreateTable_RollsBackOnFailure() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec("CREATE TABLE IF NOT EXISTS intake_submissions").
		WillReturnError(errors.New("permission denied"))
	s.mock.ExpectRollback()

	s.Assert().EqualError(s.repo.CreateTable(s.ctx), "permission denied")
}

func TestSubmissionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SubmissionRepositoryTestSuite))
}

func TestSubmissionRepository_NotConnected(t *testing.T) {
	repo := NewSubmissionRepository(staticConnector{})
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "record-1")
	if !errors.Is(err, ErrNotConnected) {
		t.Fatalf("GetByID() error = %v, want %v", err, ErrNotConnected)
	}
	if err := repo.Save(ctx, &intake.Record{}); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("Save() error = %v, want %v", err, ErrNotConnected)
	}
	if err := repo.CreateTable(ctx); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("CreateTable() error = %v, want %v", err, ErrNotConnected)
	}
}
