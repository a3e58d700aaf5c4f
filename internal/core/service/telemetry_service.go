package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/spaceresearch/mission-console/internal/core/domain"
	"github.com/spaceresearch/mission-console/internal/core/ports"
)

const defaultTelemetryLimit = 10

// TelemetryService fronts the telemetry table (read-only).
type TelemetryService struct {
	telemetry ports.TelemetryRepository
	logger    zerolog.Logger
}

func NewTelemetryService(telemetry ports.TelemetryRepository, logger zerolog.Logger) *TelemetryService {
	return &TelemetryService{telemetry: telemetry, logger: logger}
}

func (s *TelemetryService) ListReadings(ctx context.Context) ([]domain.Telemetry, error) {
	return s.telemetry.List(ctx)
}

func (s *TelemetryService) LatestReadings(ctx context.Context, satID, limit int) ([]domain.Telemetry, error) {
	if limit <= 0 {
		limit = defaultTelemetryLimit
	}
	return s.telemetry.Latest(ctx, satID, limit)
}
