package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"patientintake/internal/core/domain/intake"
	intakeUsecase "patientintake/internal/core/usecase/intake"
	"patientintake/internal/platform/metrics"
)

var _ intakeUsecase.Recorder = (*IntakeRecorder)(nil)

type IntakeRecorderTestSuite struct {
	suite.Suite
	provider *metrics.Provider
	recorder *IntakeRecorder
}

func (s *IntakeRecorderTestSuite) SetupTest() {
	var err error
	s.provider, err = metrics.NewProvider()
	s.Require().NoError(err)
	s.recorder = NewIntakeRecorder(s.provider)
}

func (s *IntakeRecorderTestSuite) scrape() string {
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	s.provider.Handler().ServeHTTP(w, req)
	s.Require().Equal(http.StatusOK, w.Code)
	return w.Body.String()
}

func (s *IntakeRecorderTestSuite) TestRecordsSessionsAndSubmissions() {
	ctx := context.Background()

	s.recorder.SessionCreated(ctx)
	s.recorder.SessionCreated(ctx)
	s.recorder.SubmissionAccepted(ctx)

	body := s.scrape()
	s.Assert().Regexp(`intake_sessions_total(\{[^}]*\})? 2`, body)
	s.Assert().Regexp(`intake_submissions_total(\{[^}]*\})? 1`, body)
}

func (s *IntakeRecorderTestSuite) TestValidationFailuresLabelledByField() {
	ctx := context.Background()

	s.recorder.ValidationFailed(ctx, intake.FieldName)
	s.recorder.ValidationFailed(ctx, intake.FieldSymptoms)
	s.recorder.ValidationFailed(ctx, intake.FieldSymptoms)

	body := s.scrape()
	s.Assert().Regexp(`intake_validation_failures_total\{field="name"[^}]*\} 1`, body)
	s.Assert().Regexp(`intake_validation_failures_total\{field="symptoms"[^}]*\} 2`, body)
}

func TestIntakeRecorderTestSuite(t *testing.T) {
	suite.Run(t, new(IntakeRecorderTestSuite))
}
