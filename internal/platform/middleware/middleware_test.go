package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/suite"

	"patientintake/internal/platform/logger"
	"patientintake/internal/platform/metrics"
)

type entry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

// recordingLogger keeps every entry, including those written through
// loggers derived with With.
type recordingLogger struct {
	mu      *sync.Mutex
	entries *[]entry
	base    []logger.Field
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{mu: &sync.Mutex{}, entries: &[]entry{}}
}

func (l *recordingLogger) log(level, msg string, fields []logger.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	values := make(map[string]interface{}, len(l.base)+len(fields))
	for _, f := range append(append([]logger.Field{}, l.base...), fields...) {
		values[f.Key] = f.Value
	}
	*l.entries = append(*l.entries, entry{level: level, msg: msg, fields: values})
}

func (l *recordingLogger) Info(msg string, fields ...logger.Field)  { l.log("info", msg, fields) }
func (l *recordingLogger) Error(msg string, fields ...logger.Field) { l.log("error", msg, fields) }
func (l *recordingLogger) Debug(msg string, fields ...logger.Field) { l.log("debug", msg, fields) }
func (l *recordingLogger) Warn(msg string, fields ...logger.Field)  { l.log("warn", msg, fields) }
func (l *recordingLogger) Sync() error                              { return nil }

func (l *recordingLogger) With(fields ...logger.Field) logger.Logger {
	return &recordingLogger{mu: l.mu, entries: l.entries, base: append(append([]logger.Field{}, l.base...), fields...)}
}

func (l *recordingLogger) all() []entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]entry(nil), *l.entries...)
}

type MiddlewareTestSuite struct {
	suite.Suite
	log      *recordingLogger
	provider *metrics.Provider
	router   chi.Router
}

func (s *MiddlewareTestSuite) SetupTest() {
	var err error
	s.provider, err = metrics.NewProvider()
	s.Require().NoError(err)
	s.log = newRecordingLogger()

	s.router = chi.NewRouter()
	s.router.Use(chiMiddleware.RequestID)
	s.router.Use(RequestLogger(s.log))
	s.router.Use(MetricsMiddleware(s.provider))
	s.router.Use(Recovery(s.log))

	s.router.Get("/health/live", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	s.router.Post("/api/intake/sessions/{id}/submit", func(w http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context()).Info("handler ran")
		w.WriteHeader(http.StatusCreated)
	})
	s.router.Get("/panic", func(http.ResponseWriter, *http.Request) {
		panic("template exploded")
	})
}

func (s *MiddlewareTestSuite) serve(method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func (s *MiddlewareTestSuite) requestEntries() []entry {
	var out []entry
	for _, e := range s.log.all() {
		if e.msg == "HTTP Request" {
			out = append(out, e)
		}
	}
	return out
}

func (s *MiddlewareTestSuite) TestRequestLogger_ScopesLoggerAndLogsRoute() {
	w := s.serve(http.MethodPost, "/api/intake/sessions/abc-123/submit")
	s.Require().Equal(http.StatusCreated, w.Code)

	entries := s.log.all()
	s.Require().Len(entries, 2)

	s.Assert().Equal("handler ran", entries[0].msg)
	s.Assert().NotEmpty(entries[0].fields["request_id"])

	req := entries[1]
	s.Assert().Equal("info", req.level)
	s.Assert().Equal(entries[0].fields["request_id"], req.fields["request_id"])
	s.Assert().Equal("/api/intake/sessions/abc-123/submit", req.fields["path"])
	s.Assert().Equal("/api/intake/sessions/{id}/submit", req.fields["route"])
	s.Assert().Equal(http.StatusCreated, req.fields["status"])
}

func (s *MiddlewareTestSuite) TestRequestLogger_ProbesAtDebug() {
	s.serve(http.MethodGet, "/health/live")

	entries := s.requestEntries()
	s.Require().Len(entries, 1)
	s.Assert().Equal("debug", entries[0].level)
}

func (s *MiddlewareTestSuite) TestRequestLogger_UnmatchedRoute() {
	w := s.serve(http.MethodGet, "/nope")
	s.Require().Equal(http.StatusNotFound, w.Code)

	entries := s.requestEntries()
	s.Require().Len(entries, 1)
	s.Assert().Equal(unmatchedRoute, entries[0].fields["route"])
}

func (s *MiddlewareTestSuite) TestRecovery_RespondsAndLogs() {
	w := s.serve(http.MethodGet, "/panic")

	s.Assert().Equal(http.StatusInternalServerError, w.Code)
	s.Assert().Equal("application/json", w.Header().Get("Content-Type"))
	s.Assert().JSONEq(`{"error":"internal server error"}`, w.Body.String())

	var panicEntry *entry
	for _, e := range s.log.all() {
		if e.msg == "Panic recovered" {
			e := e
			panicEntry = &e
		}
	}
	s.Require().NotNil(panicEntry)
	s.Assert().Equal("template exploded", panicEntry.fields["panic"])
	s.Assert().NotEmpty(panicEntry.fields["request_id"], "panic is logged with the request scoped logger")

	entries := s.requestEntries()
	s.Require().Len(entries, 1)
	s.Assert().Equal("error", entries[0].level)
}

func (s *MiddlewareTestSuite) TestRecovery_WithoutRequestLogger() {
	log := newRecordingLogger()
	handler := Recovery(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	s.Assert().Equal(http.StatusInternalServerError, w.Code)
	s.Require().Len(log.all(), 1)
	s.Assert().Equal("Panic recovered", log.all()[0].msg)
}

func (s *MiddlewareTestSuite) TestMetrics_UsesRoutePattern() {
	s.serve(http.MethodPost, "/api/intake/sessions/abc/submit")
	s.serve(http.MethodPost, "/api/intake/sessions/def/submit")

	w := httptest.NewRecorder()
	s.provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()

	s.Assert().Contains(body, `path="/api/intake/sessions/{id}/submit"`)
	s.Assert().NotContains(body, "/api/intake/sessions/abc/submit")
	s.Assert().Regexp(`http_requests_total\{[^}]*path="/api/intake/sessions/\{id\}/submit"[^}]*\} 2`, body)
}

func TestMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}
