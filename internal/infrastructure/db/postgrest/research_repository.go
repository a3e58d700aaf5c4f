package postgrest

import (
	"context"

	"github.com/spaceresearch/mission-console/internal/core/domain"
)

// ResearchRepository wraps the research_fact table. Fact ids are per-user
// sequences assigned at insert time: the next id is one past the user's
// current maximum. Two concurrent inserts for the same user can race on the
// same id; the remote primary key rejects the loser.
type ResearchRepository struct {
	client *Client
}

func NewResearchRepository(client *Client) *ResearchRepository {
	return &ResearchRepository{client: client}
}

func (r *ResearchRepository) List(ctx context.Context) ([]domain.ResearchFact, error) {
	var rows []domain.ResearchFact
	if err := r.client.From("research_fact").Order("date_added", true).Select(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ResearchRepository) Add(ctx context.Context, fact domain.ResearchFact) (*domain.ResearchFact, error) {
	existing, err := r.listByUser(ctx, fact.UserID)
	if err != nil {
		return nil, err
	}

	next := 1
	for _, f := range existing {
		if f.FactID >= next {
			next = f.FactID + 1
		}
	}
	fact.FactID = next

	var rows []domain.ResearchFact
	if err := r.client.From("research_fact").Insert(ctx, fact, &rows); err != nil {
		return nil, err
	}
	return first(rows)
}

func (r *ResearchRepository) Update(ctx context.Context, key domain.FactKey, fact domain.ResearchFact) (*domain.ResearchFact, error) {
	var rows []domain.ResearchFact
	err := r.client.From("research_fact").
		Eq("fact_id", key.FactID).
		Eq("user_id", key.UserID).
		Update(ctx, fact, &rows)
	if err != nil {
		return nil, err
	}
	return first(rows)
}

func (r *ResearchRepository) Delete(ctx context.Context, key domain.FactKey) error {
	return r.client.From("research_fact").
		Eq("fact_id", key.FactID).
		Eq("user_id", key.UserID).
		Delete(ctx)
}

func (r *ResearchRepository) listByUser(ctx context.Context, userID string) ([]domain.ResearchFact, error) {
	var rows []domain.ResearchFact
	if err := r.client.From("research_fact").Eq("user_id", userID).Select(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
