package usecase

import (
	"context"

	"job-trends/internal/taxonomy"
)

type SkillCatalogEntry struct {
	Category string
	Skills   []string
}

type SkillCatalogUsecase interface {
	ListSkills(ctx context.Context) ([]SkillCatalogEntry, error)
}

// SkillCatalog exposes the configured skill taxonomy so the dashboard can
// offer canonical names for the user's self-reported skill set.
type SkillCatalog struct {
	tax taxonomy.Taxonomy
}

func NewSkillCatalogUsecase(tax taxonomy.Taxonomy) *SkillCatalog {
	return &SkillCatalog{tax: tax}
}

func (u *SkillCatalog) ListSkills(ctx context.Context) ([]SkillCatalogEntry, error) {
	if u == nil {
		return nil, ErrInternal
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]SkillCatalogEntry, 0, len(u.tax.SkillCategories))
	for _, sc := range u.tax.SkillCategories {
		out = append(out, SkillCatalogEntry{
			Category: sc.Name,
			Skills:   append([]string(nil), sc.Skills...),
		})
	}
	return out, nil
}
