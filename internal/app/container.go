package app

import (
	"fmt"
	"log"
	"os"

	"job-trends/internal/analytics"
	"job-trends/internal/config"
	"job-trends/internal/corpus"
	"job-trends/internal/infrastructure/cache"
	"job-trends/internal/taxonomy"
	"job-trends/internal/usecase"
)

// Container holds the loaded artifacts and the usecases built on top of
// them. The server is read-only: both artifacts are produced by the
// pipeline command ahead of time.
type Container struct {
	Config   config.Config
	Store    *corpus.Store
	Summary  analytics.Summary
	Taxonomy taxonomy.Taxonomy
	Cache    *cache.Redis

	Analytics       usecase.AnalyticsUsecase
	SkillCatalog    usecase.SkillCatalogUsecase
	JobList         usecase.JobListUsecase
	Recommendations usecase.RecommendationUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	tax, err := loadTaxonomy(cfg.Data, logger)
	if err != nil {
		return nil, err
	}

	jobs, err := corpus.ReadJobsCSV(cfg.Data.EnrichedCSV())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("enriched corpus not found at %s: run the pipeline command first", cfg.Data.EnrichedCSV())
		}
		return nil, fmt.Errorf("load enriched corpus: %w", err)
	}
	store := corpus.NewStore(jobs)
	logger.Printf("app=container artifact=corpus jobs=%d", store.Len())

	summary, err := analytics.Load(cfg.Data.AnalyticsJSON())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("analytics summary not found at %s: run the pipeline command first", cfg.Data.AnalyticsJSON())
		}
		return nil, fmt.Errorf("load analytics summary: %w", err)
	}
	logger.Printf("app=container artifact=analytics total_jobs=%d", summary.Metadata.TotalJobs)

	redisCache := cache.NewRedis(logger)

	c := &Container{
		Config:   cfg,
		Store:    store,
		Summary:  summary,
		Taxonomy: tax,
		Cache:    redisCache,
	}
	c.Analytics = usecase.NewAnalyticsUsecase(summary, redisCache, logger)
	c.SkillCatalog = usecase.NewSkillCatalogUsecase(tax)
	c.JobList = usecase.NewJobListUsecase(store)
	c.Recommendations = usecase.NewRecommendationUsecase(store)

	return c, nil
}

func loadTaxonomy(data config.DataConfig, logger *log.Logger) (taxonomy.Taxonomy, error) {
	if data.TaxonomyFile == "" {
		return taxonomy.Default(), nil
	}
	tax, err := taxonomy.Load(data.TaxonomyFile)
	if err != nil {
		return taxonomy.Taxonomy{}, fmt.Errorf("load taxonomy: %w", err)
	}
	logger.Printf("app=container taxonomy=%s skill_categories=%d", data.TaxonomyFile, len(tax.SkillCategories))
	return tax, nil
}

func (c *Container) Close() error {
	if c == nil || c.Cache == nil {
		return nil
	}
	return c.Cache.Close()
}
