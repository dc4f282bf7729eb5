package usecase

import (
	"context"
	"log/slog"

	"visionboard/src/core/ports"
)

// HealthService checks the critical dependencies of the application.
type HealthService struct {
	log    *slog.Logger
	board  ports.Repository
	stores map[string]ports.Repository
}

// NewHealthService creates a HealthService over the board repository and
// the named profile stores (absent stores may be nil and are skipped).
func NewHealthService(board ports.Repository, stores map[string]ports.Repository, log *slog.Logger) *HealthService {
	return &HealthService{log: log, board: board, stores: stores}
}

// HealthStatus represents the health of the application.
type HealthStatus struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
}

// ComponentHealth represents the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Check performs a health check of all application components.
// Returns the overall health status.
func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:     "ok",
		Components: make(map[string]ComponentHealth),
	}

	check := func(name string, repo ports.Repository) {
		if repo == nil {
			return
		}
		if err := repo.Health(ctx); err != nil {
			status.Status = "degraded"
			status.Components[name] = ComponentHealth{Status: "unhealthy", Message: err.Error()}
			s.log.Warn("component unhealthy", "component", name, "error", err)
			return
		}
		status.Components[name] = ComponentHealth{Status: "healthy"}
	}

	check("board", s.board)
	for name, store := range s.stores {
		check(name, store)
	}

	return status
}
