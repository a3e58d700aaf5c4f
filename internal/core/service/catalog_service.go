package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/spaceresearch/mission-console/internal/core/domain"
	"github.com/spaceresearch/mission-console/internal/core/ports"
)

// CatalogService fronts the mission, satellite and equipment repositories.
// Composite-key operations validate the full key tuple before any remote
// call goes out.
type CatalogService struct {
	missions   ports.MissionRepository
	satellites ports.SatelliteRepository
	equipment  ports.EquipmentRepository
	logger     zerolog.Logger
}

func NewCatalogService(missions ports.MissionRepository, satellites ports.SatelliteRepository, equipment ports.EquipmentRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{missions: missions, satellites: satellites, equipment: equipment, logger: logger}
}

func (s *CatalogService) ListMissions(ctx context.Context) ([]domain.Mission, error) {
	return s.missions.List(ctx)
}

func (s *CatalogService) ActiveMissions(ctx context.Context) ([]domain.Mission, error) {
	return s.missions.ListActive(ctx)
}

func (s *CatalogService) GetMission(ctx context.Context, key domain.MissionKey) (*domain.Mission, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	return s.missions.Get(ctx, key)
}

func (s *CatalogService) AddMission(ctx context.Context, m domain.Mission) (*domain.Mission, error) {
	if err := m.MissionKey.Validate(); err != nil {
		return nil, err
	}
	created, err := s.missions.Add(ctx, m)
	if err != nil {
		s.logger.Error().Err(err).Int("mission_id", m.MissionID).Msg("add mission failed")
		return nil, err
	}
	return created, nil
}

func (s *CatalogService) UpdateMission(ctx context.Context, key domain.MissionKey, m domain.Mission) (*domain.Mission, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	return s.missions.Update(ctx, key, m)
}

func (s *CatalogService) DeleteMission(ctx context.Context, key domain.MissionKey) error {
	if err := key.Validate(); err != nil {
		return err
	}
	return s.missions.Delete(ctx, key)
}

func (s *CatalogService) ListSatellites(ctx context.Context) ([]domain.Satellite, error) {
	return s.satellites.List(ctx)
}

func (s *CatalogService) OperationalSatellites(ctx context.Context) ([]domain.Satellite, error) {
	return s.satellites.ListOperational(ctx)
}

func (s *CatalogService) GetSatellite(ctx context.Context, satID int) (*domain.Satellite, error) {
	return s.satellites.Get(ctx, satID)
}

func (s *CatalogService) AddSatellite(ctx context.Context, sat domain.Satellite) (*domain.Satellite, error) {
	created, err := s.satellites.Add(ctx, sat)
	if err != nil {
		s.logger.Error().Err(err).Str("sat_name", sat.SatName).Msg("add satellite failed")
		return nil, err
	}
	return created, nil
}

func (s *CatalogService) UpdateSatellite(ctx context.Context, satID int, sat domain.Satellite) (*domain.Satellite, error) {
	return s.satellites.Update(ctx, satID, sat)
}

func (s *CatalogService) DeleteSatellite(ctx context.Context, satID int) error {
	return s.satellites.Delete(ctx, satID)
}

func (s *CatalogService) ListEquipment(ctx context.Context) ([]domain.Equipment, error) {
	return s.equipment.List(ctx)
}
