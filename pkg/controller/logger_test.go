package controller_test

import (
	"cmsscan/pkg/controller"
	"cmsscan/pkg/logger"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "X-Forwarded-For", headers: map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"}, want: "1.2.3.4"},
		{name: "X-Real-IP", headers: map[string]string{"X-Real-IP": "9.8.7.6"}, want: "9.8.7.6"},
		{name: "RemoteAddr", remote: "10.0.0.1:12345", want: "10.0.0.1"},
		{name: "invalid RemoteAddr", remote: "not-an-addr", want: "not-an-addr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if tt.remote != "" {
				req.RemoteAddr = tt.remote
			}
			require.Equal(t, tt.want, controller.GetClientIP(req))
		})
	}
}

func TestWithLogger_SetsRequestIDAndPassesStatus(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))

	// the handler echoes the request ID from its context so we can assert it
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s, _ := r.Context().Value(controller.RequestIDKey).(string); s != "" {
			w.Header().Set("X-Echo-Request-Id", s)
		}
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "abc-123", rec.Header().Get("X-Echo-Request-Id"))

	rec = httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, rec.Header().Get("X-Echo-Request-Id"), "a request id should be generated")
}

func TestWithLogger_QuietPaths(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	status := http.StatusOK
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
	handler := controller.WithLogger(next, "/metrics")

	serve := func(path string) {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req = req.WithContext(logger.WithLogger(context.Background(), zap.New(core)))
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	serve("/metrics")
	serve("/healthz")
	status = http.StatusInternalServerError
	serve("/metrics")

	entries := logs.All()
	require.Len(t, entries, 3)
	require.Equal(t, zapcore.DebugLevel, entries[0].Level)
	require.Equal(t, zapcore.InfoLevel, entries[1].Level)
	require.Equal(t, zapcore.InfoLevel, entries[2].Level, "failing quiet paths are still logged")
}
