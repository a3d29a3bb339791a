// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package api_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phamtuan/vitalog/internal/api"
)

/*
TestReadiness verifies the readiness verdict: all dependencies healthy is
200, any failing ping degrades the endpoint to 503.
*/
func TestReadiness(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	t.Run("all_healthy", func(t *testing.T) {
		_, readiness := api.NewHealthHandlers(api.HealthDependencies{
			CheckDatabase: func() error { return nil },
			CheckCache:    func() error { return nil },
		}, logger)

		recorder := httptest.NewRecorder()
		readiness(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"ready"`)
	})

	t.Run("degraded_on_failing_dependency", func(t *testing.T) {
		_, readiness := api.NewHealthHandlers(api.HealthDependencies{
			CheckDatabase: func() error { return nil },
			CheckCache:    func() error { return errors.New("connection refused") },
		}, logger)

		recorder := httptest.NewRecorder()
		readiness(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"degraded"`)
		assert.Contains(t, recorder.Body.String(), `"redis"`)
	})
}
