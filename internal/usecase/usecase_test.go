package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"job-trends/internal/analytics"
	"job-trends/internal/corpus"
	"job-trends/internal/recommend"
	"job-trends/internal/taxonomy"
)

func testStore() *corpus.Store {
	return corpus.NewStore([]corpus.JobRecord{
		{JobID: "1", Title: "Python Developer", City: "Pune", WorkType: corpus.WorkTypeRemote, Skills: []string{"Python"}},
		{JobID: "2", Title: "QA Engineer", City: "Mumbai", WorkType: corpus.WorkTypeOnSite, Skills: []string{"JIRA"}},
	})
}

func TestAnalyticsUsecaseServesSummary(t *testing.T) {
	summary := analytics.Summary{Metadata: analytics.Metadata{TotalJobs: 7}}
	uc := NewAnalyticsUsecase(summary, nil, log.New(io.Discard, "", 0))

	got, err := uc.GetSummary(context.Background())
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}
	if got.Metadata.TotalJobs != 7 {
		t.Fatalf("total jobs = %d", got.Metadata.TotalJobs)
	}
}

func TestRecommendationUsecaseRejectsEmptySkills(t *testing.T) {
	uc := NewRecommendationUsecase(testStore())

	_, err := uc.Recommend(context.Background(), recommend.Preferences{})
	if !errors.Is(err, ErrEmptySkillSet) {
		t.Fatalf("err = %v, want ErrEmptySkillSet", err)
	}
}

func TestRecommendationUsecaseRuns(t *testing.T) {
	uc := NewRecommendationUsecase(testStore())

	report, err := uc.Recommend(context.Background(), recommend.Preferences{UserSkills: []string{"Python"}})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if report.TotalJobs != 2 || report.MatchingJobs != 1 {
		t.Fatalf("report = %+v", report)
	}
}

func TestRecommendationUsecaseMissingStore(t *testing.T) {
	uc := NewRecommendationUsecase(nil)

	_, err := uc.Recommend(context.Background(), recommend.Preferences{UserSkills: []string{"Python"}})
	if !errors.Is(err, ErrCorpusUnavailable) {
		t.Fatalf("err = %v, want ErrCorpusUnavailable", err)
	}
}

func TestJobListUsecaseClampsParams(t *testing.T) {
	uc := NewJobListUsecase(testStore())

	res, err := uc.List(context.Background(), JobListParams{Limit: -5, Offset: -3})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if res.Limit != 20 || res.Offset != 0 {
		t.Fatalf("clamped params = %d/%d", res.Limit, res.Offset)
	}

	res, err = uc.List(context.Background(), JobListParams{Limit: 500})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if res.Limit != 100 {
		t.Fatalf("limit = %d, want 100", res.Limit)
	}
}

func TestJobListUsecaseFilters(t *testing.T) {
	uc := NewJobListUsecase(testStore())

	res, err := uc.List(context.Background(), JobListParams{WorkType: corpus.WorkTypeRemote})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if res.Total != 1 || len(res.Jobs) != 1 || res.Jobs[0].JobID != "1" {
		t.Fatalf("result = %+v", res)
	}
}

func TestSkillCatalogUsecase(t *testing.T) {
	uc := NewSkillCatalogUsecase(taxonomy.Default())

	entries, err := uc.ListSkills(context.Background())
	if err != nil {
		t.Fatalf("ListSkills: %v", err)
	}
	if len(entries) == 0 {
		t.Fatalf("no entries")
	}
	if entries[0].Category != "Programming Languages" || len(entries[0].Skills) == 0 {
		t.Fatalf("first entry = %+v", entries[0])
	}
}
