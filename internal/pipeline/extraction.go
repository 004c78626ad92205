package pipeline

import (
	"context"
	"log"
	"time"

	"job-trends/internal/corpus"
	"job-trends/internal/extract"
)

// ExtractionPipeline applies the text extractor across a cleaned corpus,
// producing the enriched corpus and the flattened skill-mapping table.
type ExtractionPipeline struct {
	ex      *extract.Extractor
	log     *log.Logger
	workers int
}

func NewExtractionPipeline(ex *extract.Extractor, logger *log.Logger) *ExtractionPipeline {
	if logger == nil {
		logger = log.Default()
	}
	return &ExtractionPipeline{ex: ex, log: logger, workers: 5}
}

type ExtractionParams struct {
	Workers int
}

// Run enriches every record independently: no cross-record state, so the
// per-record work is spread over the worker pool, with each result written
// back by index. The output corpus therefore always preserves input order,
// and skill sets come out of the extractor sorted, so a run is fully
// deterministic regardless of scheduling.
func (p *ExtractionPipeline) Run(ctx context.Context, jobs []corpus.JobRecord, params ExtractionParams) ([]corpus.JobRecord, []corpus.SkillMappingRow, error) {
	if p == nil || p.ex == nil {
		return jobs, nil, nil
	}
	if len(jobs) == 0 {
		return jobs, nil, nil
	}

	workers := params.Workers
	if workers <= 0 {
		workers = p.workers
	}

	start := time.Now()
	enriched := make([]corpus.JobRecord, len(jobs))

	pool := NewWorkerPool(workers, workers*2)
	results := pool.Run(ctx)

	go func() {
		defer pool.Close()
		for i := range jobs {
			i := i
			pool.Submit(func(ctx context.Context) error {
				enriched[i] = p.enrich(jobs[i])
				return nil
			})
		}
	}()

	for r := range results {
		_ = r
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	mappings := Flatten(enriched)

	p.log.Printf("pipeline=extraction status=ok jobs=%d mappings=%d workers=%d duration=%s",
		len(enriched), len(mappings), workers, time.Since(start))
	return enriched, mappings, nil
}

func (p *ExtractionPipeline) enrich(j corpus.JobRecord) corpus.JobRecord {
	j.Skills = p.ex.Skills(j.Details)
	j.SkillCount = len(j.Skills)
	j.Certifications = p.ex.Certifications(j.Details)
	j.JobCategory = p.ex.CategorizeRole(j.Title)
	j.RequiredExperienceYears = p.ex.ExperienceYears(j.Details, j.Title)
	return j
}

// Flatten emits one SkillMappingRow per (job, skill) pair, grouped by
// record order and, within a record, by the sorted order the skill set
// carries.
func Flatten(jobs []corpus.JobRecord) []corpus.SkillMappingRow {
	var rows []corpus.SkillMappingRow
	for _, j := range jobs {
		for _, skill := range j.Skills {
			rows = append(rows, corpus.SkillMappingRow{
				JobID:       j.JobID,
				Skill:       skill,
				JobTitle:    j.Title,
				CompanyName: j.CompanyName,
				Location:    j.Location,
				JobCategory: j.JobCategory,
			})
		}
	}
	return rows
}
