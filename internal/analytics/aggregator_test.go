package analytics

import (
	"path/filepath"
	"testing"

	"job-trends/internal/corpus"
)

func testJobs() []corpus.JobRecord {
	three := 3.0
	five := 5.0
	return []corpus.JobRecord{
		{
			JobID: "1", Title: "Python Developer", CompanyName: "Acme", City: "Bangalore",
			WorkType: corpus.WorkTypeRemote, JobCategory: "Developer",
			ExperienceLevel: corpus.LevelSenior, Skills: []string{"AWS", "Python"},
			RequiredExperienceYears: &five,
		},
		{
			JobID: "2", Title: "Python Developer", CompanyName: "Acme", City: "Bangalore",
			WorkType: corpus.WorkTypeRemote, JobCategory: "Developer",
			ExperienceLevel: corpus.LevelMid, Skills: []string{"Python"},
			RequiredExperienceYears: &three,
		},
		{
			JobID: "3", Title: "QA Engineer", CompanyName: "Globex", City: "Pune",
			WorkType: corpus.WorkTypeOnSite, JobCategory: "QA/Testing",
			ExperienceLevel: corpus.LevelMid, Skills: []string{"JIRA", "Python"},
		},
		{
			JobID: "4", Title: "Data Scientist", CompanyName: "Acme", City: "Mumbai",
			WorkType: corpus.WorkTypeHybrid, JobCategory: "Data Professional",
			ExperienceLevel: corpus.LevelSenior, Skills: nil,
		},
	}
}

func TestSummarizeMetadataAndRoles(t *testing.T) {
	s := Summarize(testJobs(), Options{SourceLabel: "Test Corpus"})

	if s.Metadata.TotalJobs != 4 {
		t.Fatalf("total jobs = %d", s.Metadata.TotalJobs)
	}
	if s.Metadata.DataSource != "Test Corpus" {
		t.Fatalf("data source = %q", s.Metadata.DataSource)
	}
	if s.Metadata.GenerationDate == "" {
		t.Fatalf("generation date empty")
	}

	if s.Roles.TotalUniqueRoles != 3 {
		t.Fatalf("unique roles = %d", s.Roles.TotalUniqueRoles)
	}
	top := s.Roles.TopRoles[0]
	if top.Role != "Python Developer" || top.Count != 2 || top.Percentage != 50 {
		t.Fatalf("top role = %+v", top)
	}
}

func TestSummarizeSkills(t *testing.T) {
	s := Summarize(testJobs(), Options{})

	if s.Skills.TotalUniqueSkills != 3 {
		t.Fatalf("unique skills = %d", s.Skills.TotalUniqueSkills)
	}
	if s.Skills.TotalSkillMentions != 5 {
		t.Fatalf("mentions = %d", s.Skills.TotalSkillMentions)
	}
	if s.Skills.AvgSkillsPerJob != 1.25 {
		t.Fatalf("avg skills per job = %v", s.Skills.AvgSkillsPerJob)
	}

	top := s.Skills.TopSkills[0]
	if top.Skill != "Python" || top.Count != 3 || top.Percentage != 75 {
		t.Fatalf("top skill = %+v", top)
	}
}

func TestSummarizeCompaniesAndLocations(t *testing.T) {
	s := Summarize(testJobs(), Options{})

	if s.Companies.TotalCompanies != 2 {
		t.Fatalf("total companies = %d", s.Companies.TotalCompanies)
	}
	acme := s.Companies.TopCompanies[0]
	if acme.Company != "Acme" || acme.JobCount != 3 {
		t.Fatalf("top company = %+v", acme)
	}
	if acme.PrimaryWorkType != corpus.WorkTypeRemote {
		t.Fatalf("primary work type = %q", acme.PrimaryWorkType)
	}
	if acme.PrimaryLocation != "Bangalore" {
		t.Fatalf("primary location = %q", acme.PrimaryLocation)
	}

	if s.Locations.TotalLocations != 3 {
		t.Fatalf("total locations = %d", s.Locations.TotalLocations)
	}
	bangalore := s.Locations.TopLocations[0]
	if bangalore.City != "Bangalore" || bangalore.JobCount != 2 || bangalore.Companies != 1 {
		t.Fatalf("top location = %+v", bangalore)
	}
}

func TestSummarizeDistributionsSumToHundred(t *testing.T) {
	s := Summarize(testJobs(), Options{})

	var workTypeTotal float64
	for _, item := range s.WorkTypes.Distribution {
		workTypeTotal += item.Percentage
	}
	if workTypeTotal != 100 {
		t.Fatalf("work type percentages sum = %v", workTypeTotal)
	}

	var categoryTotal float64
	for _, item := range s.JobCategories.Distribution {
		categoryTotal += item.Percentage
	}
	if categoryTotal != 100 {
		t.Fatalf("category percentages sum = %v", categoryTotal)
	}

	var levelTotal float64
	for _, item := range s.Experience.LevelDistribution {
		levelTotal += item.Percentage
	}
	if levelTotal != 100 {
		t.Fatalf("level percentages sum = %v", levelTotal)
	}
}

func TestSummarizeYearsStatistics(t *testing.T) {
	s := Summarize(testJobs(), Options{})

	ys := s.Experience.YearsStatistics
	if ys == nil {
		t.Fatalf("years statistics absent")
	}
	if ys.Average != 4 || ys.Median != 4 || ys.Min != 3 || ys.Max != 5 {
		t.Fatalf("years statistics = %+v", ys)
	}
}

func TestSummarizeYearsStatisticsAbsent(t *testing.T) {
	jobs := []corpus.JobRecord{{JobID: "1", Title: "Dev"}}

	s := Summarize(jobs, Options{})
	if s.Experience.YearsStatistics != nil {
		t.Fatalf("years statistics = %+v, want nil", s.Experience.YearsStatistics)
	}
}

func TestSummarizeEmptyCorpus(t *testing.T) {
	s := Summarize(nil, Options{})

	if s.Metadata.TotalJobs != 0 {
		t.Fatalf("total jobs = %d", s.Metadata.TotalJobs)
	}
	if len(s.Roles.TopRoles) != 0 || len(s.Skills.TopSkills) != 0 {
		t.Fatalf("expected empty rankings")
	}
}

func TestSummarizeTruncation(t *testing.T) {
	jobs := []corpus.JobRecord{
		{JobID: "1", Title: "A"}, {JobID: "2", Title: "B"},
		{JobID: "3", Title: "C"}, {JobID: "4", Title: "D"},
	}

	s := Summarize(jobs, Options{TopRoles: 2})
	if len(s.Roles.TopRoles) != 2 {
		t.Fatalf("top roles len = %d, want 2", len(s.Roles.TopRoles))
	}
	if s.Roles.TotalUniqueRoles != 4 {
		t.Fatalf("unique roles = %d", s.Roles.TotalUniqueRoles)
	}
}

func TestCounterRankedTieBreak(t *testing.T) {
	c := newCounter()
	c.Add("b")
	c.Add("a")
	c.Add("a")
	c.Add("c")
	c.Add("c")

	ranked := c.Ranked(0)
	if len(ranked) != 3 {
		t.Fatalf("ranked len = %d", len(ranked))
	}
	// a and c tie at 2; a was seen first.
	if ranked[0].Key != "a" || ranked[1].Key != "c" || ranked[2].Key != "b" {
		t.Fatalf("ranked = %v", ranked)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	s := Summarize(testJobs(), Options{SourceLabel: "Round Trip"})

	path := filepath.Join(t.TempDir(), "processed", "analytics_summary.json")
	if err := Save(path, s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Metadata.TotalJobs != s.Metadata.TotalJobs {
		t.Fatalf("total jobs = %d", got.Metadata.TotalJobs)
	}
	if got.Metadata.DataSource != "Round Trip" {
		t.Fatalf("data source = %q", got.Metadata.DataSource)
	}
	if len(got.Skills.TopSkills) != len(s.Skills.TopSkills) {
		t.Fatalf("skills mismatch after round trip")
	}
}
