package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/spaceresearch/mission-console/internal/core/domain"
	"github.com/spaceresearch/mission-console/internal/core/ports"
)

// ResearchService fronts the research_fact table. Listing joins contributor
// usernames in-memory from the user table; a failed username lookup degrades
// to "Unknown" contributors instead of failing the page.
type ResearchService struct {
	facts    ports.ResearchRepository
	profiles ports.ProfileRepository
	logger   zerolog.Logger
}

func NewResearchService(facts ports.ResearchRepository, profiles ports.ProfileRepository, logger zerolog.Logger) *ResearchService {
	return &ResearchService{facts: facts, profiles: profiles, logger: logger}
}

func (s *ResearchService) ListFacts(ctx context.Context) ([]domain.ResearchFact, error) {
	facts, err := s.facts.List(ctx)
	if err != nil {
		return nil, err
	}

	usernames, err := s.profiles.ListUsernames(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("username lookup failed, listing facts without contributors")
		usernames = nil
	}

	for i := range facts {
		if name, ok := usernames[facts[i].UserID]; ok {
			facts[i].Username = name
		} else {
			facts[i].Username = "Unknown"
		}
	}
	return facts, nil
}

func (s *ResearchService) AddFact(ctx context.Context, fact domain.ResearchFact) (*domain.ResearchFact, error) {
	if fact.UserID == "" {
		return nil, domain.ErrIncompleteKey
	}
	created, err := s.facts.Add(ctx, fact)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", fact.UserID).Msg("add research fact failed")
		return nil, err
	}
	return created, nil
}

func (s *ResearchService) UpdateFact(ctx context.Context, key domain.FactKey, fact domain.ResearchFact) (*domain.ResearchFact, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	return s.facts.Update(ctx, key, fact)
}

func (s *ResearchService) DeleteFact(ctx context.Context, key domain.FactKey) error {
	if err := key.Validate(); err != nil {
		return err
	}
	return s.facts.Delete(ctx, key)
}
