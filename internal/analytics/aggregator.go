package analytics

import (
	"math"
	"sort"
	"time"

	"job-trends/internal/corpus"
)

// Options carries the per-dimension truncation limits.
type Options struct {
	TopRoles     int
	TopSkills    int
	TopCompanies int
	TopLocations int
	SourceLabel  string
}

func (o Options) withDefaults() Options {
	if o.TopRoles <= 0 {
		o.TopRoles = 20
	}
	if o.TopSkills <= 0 {
		o.TopSkills = 30
	}
	if o.TopCompanies <= 0 {
		o.TopCompanies = 10
	}
	if o.TopLocations <= 0 {
		o.TopLocations = 10
	}
	if o.SourceLabel == "" {
		o.SourceLabel = "LinkedIn Job Postings"
	}
	return o
}

// Summary is the analytics document consumed by the dashboard. Percentages
// are relative to total job count across every group; ranked lists are
// sorted descending by count with first-encountered tie-break.
type Summary struct {
	Metadata      Metadata         `json:"metadata"`
	Roles         RoleStats        `json:"roles"`
	Skills        SkillStats       `json:"skills"`
	Companies     CompanyStats     `json:"companies"`
	Locations     LocationStats    `json:"locations"`
	WorkTypes     WorkTypeStats    `json:"work_types"`
	JobCategories JobCategoryStats `json:"job_categories"`
	Experience    ExperienceStats  `json:"experience"`
}

type Metadata struct {
	TotalJobs      int    `json:"total_jobs"`
	GenerationDate string `json:"generation_date"`
	DataSource     string `json:"data_source"`
}

type RoleStats struct {
	TotalUniqueRoles int        `json:"total_unique_roles"`
	TopRoles         []RoleItem `json:"top_roles"`
}

type RoleItem struct {
	Role       string  `json:"role"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type SkillStats struct {
	TotalUniqueSkills  int         `json:"total_unique_skills"`
	TotalSkillMentions int         `json:"total_skill_mentions"`
	AvgSkillsPerJob    float64     `json:"avg_skills_per_job"`
	TopSkills          []SkillItem `json:"top_skills"`
}

type SkillItem struct {
	Skill      string  `json:"skill"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type CompanyStats struct {
	TotalCompanies int           `json:"total_companies"`
	TopCompanies   []CompanyItem `json:"top_companies"`
}

type CompanyItem struct {
	Company         string `json:"company"`
	JobCount        int    `json:"job_count"`
	PrimaryWorkType string `json:"primary_work_type"`
	PrimaryLocation string `json:"primary_location"`
}

type LocationStats struct {
	TotalLocations int            `json:"total_locations"`
	TopLocations   []LocationItem `json:"top_locations"`
}

type LocationItem struct {
	City            string `json:"city"`
	JobCount        int    `json:"job_count"`
	Companies       int    `json:"companies"`
	PrimaryWorkType string `json:"primary_work_type"`
}

type WorkTypeStats struct {
	Distribution []WorkTypeItem `json:"distribution"`
}

type WorkTypeItem struct {
	WorkType   string  `json:"work_type"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type JobCategoryStats struct {
	TotalCategories int               `json:"total_categories"`
	Distribution    []JobCategoryItem `json:"distribution"`
}

type JobCategoryItem struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type ExperienceStats struct {
	LevelDistribution []ExperienceLevelItem `json:"level_distribution"`
	YearsStatistics   *YearsStatistics      `json:"years_statistics,omitempty"`
}

type ExperienceLevelItem struct {
	Level      string  `json:"level"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// YearsStatistics is computed only over records carrying a required
// experience value; it is absent when none do.
type YearsStatistics struct {
	Average float64 `json:"average"`
	Median  float64 `json:"median"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// Summarize computes corpus-wide statistics from an enriched corpus.
func Summarize(jobs []corpus.JobRecord, opts Options) Summary {
	opts = opts.withDefaults()
	total := len(jobs)

	s := Summary{
		Metadata: Metadata{
			TotalJobs:      total,
			GenerationDate: time.Now().Format("2006-01-02 15:04:05"),
			DataSource:     opts.SourceLabel,
		},
	}
	if total == 0 {
		return s
	}

	roles := newCounter()
	skills := newCounter()
	categories := newCounter()
	workTypes := newCounter()
	levels := newCounter()
	mentions := 0

	companyJobs := newCounter()
	companyWorkTypes := make(map[string]*counter)
	companyLocations := make(map[string]*counter)

	cityJobs := newCounter()
	cityWorkTypes := make(map[string]*counter)
	cityCompanies := make(map[string]map[string]struct{})

	var years []float64

	for _, j := range jobs {
		roles.Add(j.Title)
		categories.Add(j.JobCategory)
		workTypes.Add(j.WorkType)
		levels.Add(j.ExperienceLevel)

		for _, skill := range j.Skills {
			skills.Add(skill)
			mentions++
		}

		companyJobs.Add(j.CompanyName)
		groupAdd(companyWorkTypes, j.CompanyName, j.WorkType)
		groupAdd(companyLocations, j.CompanyName, j.City)

		cityJobs.Add(j.City)
		groupAdd(cityWorkTypes, j.City, j.WorkType)
		if cityCompanies[j.City] == nil {
			cityCompanies[j.City] = make(map[string]struct{})
		}
		cityCompanies[j.City][j.CompanyName] = struct{}{}

		if j.RequiredExperienceYears != nil {
			years = append(years, *j.RequiredExperienceYears)
		}
	}

	s.Roles.TotalUniqueRoles = roles.Unique()
	for _, e := range roles.Ranked(opts.TopRoles) {
		s.Roles.TopRoles = append(s.Roles.TopRoles, RoleItem{
			Role: e.Key, Count: e.Count, Percentage: percentage(e.Count, total),
		})
	}

	s.Skills.TotalUniqueSkills = skills.Unique()
	s.Skills.TotalSkillMentions = mentions
	s.Skills.AvgSkillsPerJob = round2(float64(mentions) / float64(total))
	for _, e := range skills.Ranked(opts.TopSkills) {
		s.Skills.TopSkills = append(s.Skills.TopSkills, SkillItem{
			Skill: e.Key, Count: e.Count, Percentage: percentage(e.Count, total),
		})
	}

	s.Companies.TotalCompanies = companyJobs.Unique()
	for _, e := range companyJobs.Ranked(opts.TopCompanies) {
		s.Companies.TopCompanies = append(s.Companies.TopCompanies, CompanyItem{
			Company:         e.Key,
			JobCount:        e.Count,
			PrimaryWorkType: groupMode(companyWorkTypes, e.Key),
			PrimaryLocation: groupMode(companyLocations, e.Key),
		})
	}

	s.Locations.TotalLocations = cityJobs.Unique()
	for _, e := range cityJobs.Ranked(opts.TopLocations) {
		s.Locations.TopLocations = append(s.Locations.TopLocations, LocationItem{
			City:            e.Key,
			JobCount:        e.Count,
			Companies:       len(cityCompanies[e.Key]),
			PrimaryWorkType: groupMode(cityWorkTypes, e.Key),
		})
	}

	for _, e := range workTypes.Ranked(0) {
		s.WorkTypes.Distribution = append(s.WorkTypes.Distribution, WorkTypeItem{
			WorkType: e.Key, Count: e.Count, Percentage: percentage(e.Count, total),
		})
	}

	s.JobCategories.TotalCategories = categories.Unique()
	for _, e := range categories.Ranked(0) {
		s.JobCategories.Distribution = append(s.JobCategories.Distribution, JobCategoryItem{
			Category: e.Key, Count: e.Count, Percentage: percentage(e.Count, total),
		})
	}

	for _, e := range levels.Ranked(0) {
		s.Experience.LevelDistribution = append(s.Experience.LevelDistribution, ExperienceLevelItem{
			Level: e.Key, Count: e.Count, Percentage: percentage(e.Count, total),
		})
	}
	s.Experience.YearsStatistics = yearsStatistics(years)

	return s
}

func yearsStatistics(years []float64) *YearsStatistics {
	if len(years) == 0 {
		return nil
	}

	sorted := append([]float64(nil), years...)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}

	n := len(sorted)
	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return &YearsStatistics{
		Average: round1(sum / float64(n)),
		Median:  round1(median),
		Min:     round1(sorted[0]),
		Max:     round1(sorted[n-1]),
	}
}

func groupAdd(groups map[string]*counter, group, value string) {
	c := groups[group]
	if c == nil {
		c = newCounter()
		groups[group] = c
	}
	c.Add(value)
}

func groupMode(groups map[string]*counter, group string) string {
	c := groups[group]
	if c == nil {
		return "Unknown"
	}
	m := c.Mode()
	if m == "" {
		return "Unknown"
	}
	return m
}

func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(count) / float64(total) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
