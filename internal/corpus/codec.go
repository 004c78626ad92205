package corpus

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ListSeparator joins multi-valued fields (skills, certifications) when a
// record round-trips through flat-file storage.
const ListSeparator = "|"

// JoinList renders a list field for CSV storage. Empty lists become the
// empty string.
func JoinList(items []string) string {
	return strings.Join(items, ListSeparator)
}

// SplitList parses a pipe-delimited list field. Empty or missing values
// yield an empty list.
func SplitList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ListSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

var jobColumns = []string{
	"job_ID", "job", "company_name", "location", "city", "state", "country",
	"work_type", "no_of_employ", "no_of_application", "posted_day_ago",
	"days_since_posted", "full_time_remote", "is_full_time", "experience_level",
	"job_details", "skills", "skill_count", "certifications", "job_category",
	"required_experience_years",
}

// WriteJobsCSV stores a cleaned or enriched corpus. The same schema covers
// both stages; pre-extraction records simply carry empty derived columns.
func WriteJobsCSV(path string, jobs []JobRecord) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(jobColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, j := range jobs {
		row := []string{
			j.JobID,
			j.Title,
			j.CompanyName,
			j.Location,
			j.City,
			j.State,
			j.Country,
			j.WorkType,
			j.Employees,
			strconv.Itoa(j.Applications),
			j.PostedAgo,
			formatOptFloat(j.DaysSincePosted),
			j.FullTimeRemote,
			strconv.FormatBool(j.IsFullTime),
			j.ExperienceLevel,
			j.Details,
			JoinList(j.Skills),
			strconv.Itoa(j.SkillCount),
			JoinList(j.Certifications),
			j.JobCategory,
			formatOptFloat(j.RequiredExperienceYears),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write record %s: %w", j.JobID, err)
		}
	}

	w.Flush()
	return w.Error()
}

// ReadJobsCSV loads a corpus previously written by WriteJobsCSV.
func ReadJobsCSV(path string) ([]JobRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read corpus csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	col := indexColumns(rows[0])
	get := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	jobs := make([]JobRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		apps, _ := strconv.Atoi(get(row, "no_of_application"))
		skillCount, _ := strconv.Atoi(get(row, "skill_count"))
		isFullTime, _ := strconv.ParseBool(get(row, "is_full_time"))

		jobs = append(jobs, JobRecord{
			JobID:                   get(row, "job_ID"),
			Title:                   get(row, "job"),
			CompanyName:             get(row, "company_name"),
			Location:                get(row, "location"),
			City:                    get(row, "city"),
			State:                   get(row, "state"),
			Country:                 get(row, "country"),
			WorkType:                get(row, "work_type"),
			Employees:               get(row, "no_of_employ"),
			Applications:            apps,
			PostedAgo:               get(row, "posted_day_ago"),
			DaysSincePosted:         parseOptFloat(get(row, "days_since_posted")),
			FullTimeRemote:          get(row, "full_time_remote"),
			IsFullTime:              isFullTime,
			ExperienceLevel:         get(row, "experience_level"),
			Details:                 get(row, "job_details"),
			Skills:                  SplitList(get(row, "skills")),
			SkillCount:              skillCount,
			Certifications:          SplitList(get(row, "certifications")),
			JobCategory:             get(row, "job_category"),
			RequiredExperienceYears: parseOptFloat(get(row, "required_experience_years")),
		})
	}
	return jobs, nil
}

var mappingColumns = []string{"job_ID", "skill", "job_title", "company_name", "location", "job_category"}

// WriteSkillMappingsCSV stores the flattened (job, skill) fact table.
func WriteSkillMappingsCSV(path string, rows []SkillMappingRow) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(mappingColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, m := range rows {
		if err := w.Write([]string{m.JobID, m.Skill, m.JobTitle, m.CompanyName, m.Location, m.JobCategory}); err != nil {
			return fmt.Errorf("write mapping row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// ReadSkillMappingsCSV loads the fact table written by WriteSkillMappingsCSV.
func ReadSkillMappingsCSV(path string) ([]SkillMappingRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read mappings csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	col := indexColumns(rows[0])
	get := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	out := make([]SkillMappingRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		out = append(out, SkillMappingRow{
			JobID:       get(row, "job_ID"),
			Skill:       get(row, "skill"),
			JobTitle:    get(row, "job_title"),
			CompanyName: get(row, "company_name"),
			Location:    get(row, "location"),
			JobCategory: get(row, "job_category"),
		})
	}
	return out, nil
}

func indexColumns(header []string) map[string]int {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	return col
}

func createFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, nil
}

func formatOptFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func parseOptFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
