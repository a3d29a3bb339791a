// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

// Package api contains the health check handlers for liveness and readiness probes.
package api

import (
	"log/slog"
	"net/http"

	"github.com/phamtuan/vitalog/internal/platform/respond"
)

// HealthDependencies holds the injectable dependency pings for the /ready endpoint.
type HealthDependencies struct {
	// CheckDatabase pings the PostgreSQL pool.
	CheckDatabase func() error

	// CheckCache pings the Redis client.
	CheckCache func() error
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

// NewHealthHandlers creates the /health and /ready http.HandlerFuncs.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{dependencies: deps, logger: logger}
	return handler.liveness, handler.readiness
}

// liveness handles GET /health (Liveness probe).
func (handler *healthHandler) liveness(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{"status": "ok"})
}

// dependencyStatus is one row of the readiness report.
type dependencyStatus struct {
	Dependency string `json:"dependency"`
	Healthy    bool   `json:"healthy"`
	Error      string `json:"error,omitempty"`
}

// readiness handles GET /ready (Readiness probe).
//
// Every registered dependency is pinged; one unhealthy dependency degrades
// the whole endpoint to 503 so the orchestrator stops routing traffic here.
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	pings := []struct {
		name string
		ping func() error
	}{
		{"postgres", handler.dependencies.CheckDatabase},
		{"redis", handler.dependencies.CheckCache},
	}

	report := make([]dependencyStatus, 0, len(pings))
	ready := true

	for _, probe := range pings {
		if probe.ping == nil {
			continue
		}

		status := dependencyStatus{Dependency: probe.name, Healthy: true}
		if err := probe.ping(); err != nil {
			status.Healthy = false
			status.Error = err.Error()
			ready = false
			handler.logger.Error("readiness_check_failed",
				slog.String("dependency", probe.name),
				slog.Any("error", err),
			)
		}
		report = append(report, status)
	}

	httpStatus := http.StatusOK
	verdict := "ready"
	if !ready {
		httpStatus = http.StatusServiceUnavailable
		verdict = "degraded"
	}

	respond.JSON(writer, httpStatus, respond.SuccessEnvelope{Data: map[string]any{
		"status": verdict,
		"checks": report,
	}})
}
