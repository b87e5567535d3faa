package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"flightwatch-service/internal/usecase"
	"flightwatch-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{})        {}
func (nopLogger) Info(string, ...interface{})         {}
func (nopLogger) Warn(string, ...interface{})         {}
func (nopLogger) Error(string, ...interface{})        {}
func (nopLogger) Fatal(string, ...interface{})        {}
func (l nopLogger) With(...interface{}) logger.Logger { return l }

type stubProcessor struct {
	summary *usecase.ProcessSummary
	err     error
	calls   int
}

func (p *stubProcessor) ProcessCycle(context.Context) (*usecase.ProcessSummary, error) {
	p.calls++
	return p.summary, p.err
}

func newTestServer(processor Processor) *Server {
	return New("8080", 30*time.Second, 120*time.Second, "test-secret", processor, nopLogger{})
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(&stubProcessor{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestProcessEndpoint_Unauthorized(t *testing.T) {
	processor := &stubProcessor{summary: &usecase.ProcessSummary{}}
	srv := newTestServer(processor)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic test-secret"},
		{"wrong secret", "Bearer wrong-secret"},
		{"empty token", "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/process", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			srv.Handler().ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "unauthorized", body["error"])
		})
	}

	assert.Equal(t, 0, processor.calls)
}

func TestProcessEndpoint_Success(t *testing.T) {
	processor := &stubProcessor{summary: &usecase.ProcessSummary{
		FlightsChecked:       3,
		RulesEvaluated:       2,
		ChangesDetected:      4,
		NotificationsCreated: 2,
		EmailsSent:           1,
	}}
	srv := newTestServer(processor)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/process", nil)
	req.Header.Set("Authorization", "Bearer test-secret")
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, processor.calls)

	var body struct {
		Success bool                   `json:"success"`
		Summary usecase.ProcessSummary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 3, body.Summary.FlightsChecked)
	assert.Equal(t, 4, body.Summary.ChangesDetected)
}

func TestProcessEndpoint_ProcessorFailure(t *testing.T) {
	processor := &stubProcessor{err: errors.New("postgres connection refused")}
	srv := newTestServer(processor)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/process", nil)
	req.Header.Set("Authorization", "Bearer test-secret")
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// Internal failure details must not leak to the caller.
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "processing failed", body["error"])
	assert.NotContains(t, rec.Body.String(), "postgres")
}

func TestProcessEndpoint_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(&stubProcessor{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/process", nil)
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
