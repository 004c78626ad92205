package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"job-trends/internal/analytics"
	"job-trends/internal/config"
	"job-trends/internal/corpus"
	"job-trends/internal/extract"
	"job-trends/internal/ingest"
)

// FullPipeline orchestrates the batch run: raw CSV → cleaned corpus →
// enriched corpus + skill mappings → analytics document, each stage
// persisted as a flat-file artifact for the next consumer.
type FullPipeline struct {
	extraction *ExtractionPipeline
	data       config.DataConfig
	analytics  config.AnalyticsConfig
	log        *log.Logger
}

type FullParams struct {
	// RawCSV overrides the configured raw input path when non-empty.
	RawCSV  string
	Workers int
}

func NewFullPipeline(ex *extract.Extractor, data config.DataConfig, an config.AnalyticsConfig, logger *log.Logger) *FullPipeline {
	if logger == nil {
		logger = log.Default()
	}
	return &FullPipeline{
		extraction: NewExtractionPipeline(ex, logger),
		data:       data,
		analytics:  an,
		log:        logger,
	}
}

func (p *FullPipeline) Run(ctx context.Context, params FullParams) error {
	if p == nil {
		return nil
	}
	start := time.Now()

	p.log.Printf("pipeline=full status=started")
	defer func() {
		p.log.Printf("pipeline=full status=finished duration=%s", time.Since(start))
	}()

	cleaned, err := p.runClean(params)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	enriched, err := p.runExtraction(ctx, cleaned, params)
	if err != nil {
		return err
	}

	return p.runAnalytics(enriched)
}

func (p *FullPipeline) runClean(params FullParams) ([]corpus.JobRecord, error) {
	stepStart := time.Now()
	p.log.Printf("pipeline=full step=clean status=started")

	rawPath := params.RawCSV
	if rawPath == "" {
		rawPath = p.data.RawCSV()
	}

	raw, err := ingest.LoadCSV(rawPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("raw corpus not found at %s: place the scraped CSV there before running the pipeline: %w", rawPath, err)
		}
		return nil, fmt.Errorf("load raw corpus: %w", err)
	}

	cleaned, stats := ingest.Clean(raw)
	if err := corpus.WriteJobsCSV(p.data.CleanedCSV(), cleaned); err != nil {
		return nil, fmt.Errorf("write cleaned corpus: %w", err)
	}

	p.log.Printf("pipeline=full step=clean status=finished input=%d output=%d dropped_titles=%d duplicates=%d duration=%s",
		stats.Input, stats.Output, stats.DroppedTitles, stats.Duplicates, time.Since(stepStart))
	return cleaned, nil
}

func (p *FullPipeline) runExtraction(ctx context.Context, cleaned []corpus.JobRecord, params FullParams) ([]corpus.JobRecord, error) {
	stepStart := time.Now()
	p.log.Printf("pipeline=full step=extraction status=started jobs=%d", len(cleaned))

	enriched, mappings, err := p.extraction.Run(ctx, cleaned, ExtractionParams{Workers: params.Workers})
	if err != nil {
		return nil, err
	}

	if err := corpus.WriteJobsCSV(p.data.EnrichedCSV(), enriched); err != nil {
		return nil, fmt.Errorf("write enriched corpus: %w", err)
	}
	if err := corpus.WriteSkillMappingsCSV(p.data.SkillMappingsCSV(), mappings); err != nil {
		return nil, fmt.Errorf("write skill mappings: %w", err)
	}

	p.log.Printf("pipeline=full step=extraction status=finished jobs=%d mappings=%d duration=%s",
		len(enriched), len(mappings), time.Since(stepStart))
	return enriched, nil
}

func (p *FullPipeline) runAnalytics(enriched []corpus.JobRecord) error {
	stepStart := time.Now()
	p.log.Printf("pipeline=full step=analytics status=started")

	summary := analytics.Summarize(enriched, analytics.Options{
		TopRoles:     p.analytics.TopRoles,
		TopSkills:    p.analytics.TopSkills,
		TopCompanies: p.analytics.TopCompanies,
		TopLocations: p.analytics.TopLocations,
		SourceLabel:  p.data.SourceLabel,
	})
	if err := analytics.Save(p.data.AnalyticsJSON(), summary); err != nil {
		return fmt.Errorf("write analytics: %w", err)
	}

	p.log.Printf("pipeline=full step=analytics status=finished total_jobs=%d unique_skills=%d duration=%s",
		summary.Metadata.TotalJobs, summary.Skills.TotalUniqueSkills, time.Since(stepStart))
	return nil
}
