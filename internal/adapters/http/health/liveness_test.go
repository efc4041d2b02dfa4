package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLivenessHandler_Check(t *testing.T) {
	handler := NewLivenessHandler("v1.2.3")
	handler.started = time.Now().Add(-90 * time.Second)

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	w := httptest.NewRecorder()
	before := time.Now()

	handler.Check(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp LivenessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, StatusPass, resp.Status)
	assert.Equal(t, ServiceID, resp.ServiceId)
	assert.Equal(t, "v1.2.3", resp.Version)
	assert.Equal(t, "1m30s", resp.Uptime)
	assert.WithinDuration(t, before, resp.Timestamp, 2*time.Second)
}

func TestLivenessHandler_Check_EmptyVersionOmitted(t *testing.T) {
	handler := NewLivenessHandler("")
	w := httptest.NewRecorder()

	handler.Check(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"version"`)
}

func TestLivenessHandler_Check_CancelledRequest(t *testing.T) {
	handler := NewLivenessHandler("v1.0.0")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	handler.Check(w, req)

	assert.Equal(t, http.StatusRequestTimeout, w.Code)
	assert.JSONEq(t, `{"error":"context canceled"}`, w.Body.String())
}
