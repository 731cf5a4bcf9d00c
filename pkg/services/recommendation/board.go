package recommendation

import (
	"context"
	"fmt"

	"github.com/de-tools/growth-scorecard/pkg/models/domain"
	"github.com/de-tools/growth-scorecard/pkg/services/source"
	"github.com/rs/zerolog"
)

// highlightCount is how many board entries the scorecard surfaces.
const highlightCount = 5

// Reorderer decides the order of a regenerated board.
type Reorderer interface {
	Reorder(recs []domain.Recommendation) []domain.Recommendation
}

// ReordererFunc adapts a plain function to Reorderer.
type ReordererFunc func([]domain.Recommendation) []domain.Recommendation

func (f ReordererFunc) Reorder(recs []domain.Recommendation) []domain.Recommendation { return f(recs) }

type BoardFilter struct {
	Kind     domain.RecommendationKind
	Priority domain.Priority
	// Limit caps the result; 0 means no cap.
	Limit int
}

func (f BoardFilter) match(r domain.Recommendation) bool {
	if f.Kind != "" && r.Kind != f.Kind {
		return false
	}
	if f.Priority != "" && r.Priority != f.Priority {
		return false
	}
	return true
}

// Board manages the system-level recommendations held by a store.
type Board struct {
	store     source.Store
	reorderer Reorderer
}

func NewBoard(store source.Store, reorderer Reorderer) *Board {
	return &Board{store: store, reorderer: reorderer}
}

func (b *Board) List(ctx context.Context, filter BoardFilter) ([]domain.Recommendation, error) {
	recs, err := b.store.ListRecommendations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}

	filtered := make([]domain.Recommendation, 0, len(recs))
	for _, r := range recs {
		if !filter.match(r) {
			continue
		}
		filtered = append(filtered, r)
		if filter.Limit > 0 && len(filtered) == filter.Limit {
			break
		}
	}
	return filtered, nil
}

// Toggle flips the resolved flag of one recommendation and returns the updated entry.
func (b *Board) Toggle(ctx context.Context, id string) (domain.Recommendation, error) {
	updated, err := b.store.ToggleResolved(ctx, id)
	if err != nil {
		return domain.Recommendation{}, fmt.Errorf("toggle recommendation %s: %w", id, err)
	}
	zerolog.Ctx(ctx).Debug().Str("id", id).Bool("resolved", updated.Resolved).Msg("recommendation toggled")
	return updated, nil
}

// Regenerate reorders the board and stores the new order. Resolved flags are kept.
func (b *Board) Regenerate(ctx context.Context) ([]domain.Recommendation, error) {
	recs, err := b.store.ListRecommendations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}

	if b.reorderer != nil {
		recs = b.reorderer.Reorder(recs)
	}

	if err := b.store.ReplaceRecommendations(ctx, recs); err != nil {
		return nil, fmt.Errorf("store regenerated recommendations: %w", err)
	}

	zerolog.Ctx(ctx).Info().Int("count", len(recs)).Msg("recommendations regenerated")
	return recs, nil
}

// Highlights picks the entries shown on the scorecard. Retention-focused objectives only see
// alerts and high priority entries.
func Highlights(recs []domain.Recommendation, objective domain.Objective) []domain.Recommendation {
	out := make([]domain.Recommendation, 0, highlightCount)
	for _, r := range recs {
		if len(out) == highlightCount {
			break
		}
		if objective.RetentionFocused() && r.Kind != domain.KindAlert && r.Priority != domain.PriorityHigh {
			continue
		}
		out = append(out, r)
	}
	return out
}
