package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/spaceresearch/mission-console/internal/core/domain"
)

type stubEquipmentRepo struct{}

func (stubEquipmentRepo) List(_ context.Context) ([]domain.Equipment, error) { return nil, nil }

func newCatalogFixture(missions *stubMissionRepo) *CatalogService {
	return NewCatalogService(missions, &stubSatelliteRepo{}, stubEquipmentRepo{}, zerolog.Nop())
}

func TestCatalogService_GetMission_RejectsPartialKey(t *testing.T) {
	svc := newCatalogFixture(&stubMissionRepo{})

	partials := []domain.MissionKey{
		{MissionID: 1},
		{MissionID: 1, PadID: 2},
		{PadID: 2, LocID: 3},
		{},
	}
	for _, key := range partials {
		if _, err := svc.GetMission(context.Background(), key); !errors.Is(err, domain.ErrIncompleteKey) {
			t.Fatalf("key %+v: expected ErrIncompleteKey, got %v", key, err)
		}
	}
}

func TestCatalogService_AddMission_RequiresFullKey(t *testing.T) {
	missions := &stubMissionRepo{}
	svc := newCatalogFixture(missions)

	_, err := svc.AddMission(context.Background(), domain.Mission{
		MissionKey:  domain.MissionKey{MissionID: 7},
		MissionName: "Artemis Echo",
	})
	if !errors.Is(err, domain.ErrIncompleteKey) {
		t.Fatalf("expected ErrIncompleteKey, got %v", err)
	}
}

func TestCatalogService_DeleteMission_FullKeyPasses(t *testing.T) {
	svc := newCatalogFixture(&stubMissionRepo{})

	key := domain.MissionKey{MissionID: 1, PadID: 2, LocID: 3}
	if err := svc.DeleteMission(context.Background(), key); err != nil {
		t.Fatalf("full key must be accepted: %v", err)
	}
}
