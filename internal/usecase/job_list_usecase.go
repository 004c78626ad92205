package usecase

import (
	"context"

	"job-trends/internal/corpus"
)

type JobListParams struct {
	Limit    int
	Offset   int
	WorkType string
	City     string
}

type JobListResult struct {
	Jobs   []corpus.JobRecord
	Total  int
	Limit  int
	Offset int
}

type JobListUsecase interface {
	List(ctx context.Context, params JobListParams) (JobListResult, error)
}

// JobList pages through the enriched corpus for the dashboard's data
// explorer.
type JobList struct {
	store *corpus.Store
}

func NewJobListUsecase(store *corpus.Store) *JobList {
	return &JobList{store: store}
}

func (u *JobList) List(ctx context.Context, params JobListParams) (JobListResult, error) {
	if u == nil || u.store == nil {
		return JobListResult{}, ErrCorpusUnavailable
	}
	if err := ctx.Err(); err != nil {
		return JobListResult{}, err
	}

	limit := params.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	jobs, total := u.store.List(corpus.ListFilter{
		WorkType: params.WorkType,
		City:     params.City,
		Limit:    limit,
		Offset:   offset,
	})

	return JobListResult{Jobs: jobs, Total: total, Limit: limit, Offset: offset}, nil
}
