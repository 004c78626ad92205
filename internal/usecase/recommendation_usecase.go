package usecase

import (
	"context"

	"job-trends/internal/corpus"
	"job-trends/internal/recommend"
)

type RecommendationUsecase interface {
	Recommend(ctx context.Context, prefs recommend.Preferences) (recommend.Report, error)
}

// Recommendation runs the scoring engine against the in-memory corpus on
// every call. Reports are ephemeral and never cached.
type Recommendation struct {
	store *corpus.Store
}

func NewRecommendationUsecase(store *corpus.Store) *Recommendation {
	return &Recommendation{store: store}
}

func (u *Recommendation) Recommend(ctx context.Context, prefs recommend.Preferences) (recommend.Report, error) {
	if u == nil || u.store == nil {
		return recommend.Report{}, ErrCorpusUnavailable
	}
	// The engine itself degrades gracefully on an empty skill set; the
	// delivery layer is expected to block the request before it gets here.
	if len(prefs.UserSkills) == 0 {
		return recommend.Report{}, ErrEmptySkillSet
	}
	if err := ctx.Err(); err != nil {
		return recommend.Report{}, err
	}

	return recommend.Recommend(u.store.Jobs(), prefs), nil
}
