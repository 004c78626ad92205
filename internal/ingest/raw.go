package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// RawJob is one unprocessed row of the scraped CSV. Every field is kept as
// text; cleaning owns all parsing and normalization.
type RawJob struct {
	JobID          string
	Title          string
	CompanyName    string
	Location       string
	WorkType       string
	FullTimeRemote string
	Employees      string
	Applications   string
	PostedAgo      string
	Details        string
}

// LoadCSV reads the raw scraped corpus. Columns are resolved by header
// name; rows missing a column yield empty fields rather than errors.
func LoadCSV(path string) ([]RawJob, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read raw csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[strings.TrimSpace(name)] = i
	}
	get := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	out := make([]RawJob, 0, len(rows)-1)
	for _, row := range rows[1:] {
		out = append(out, RawJob{
			JobID:          get(row, "job_ID"),
			Title:          get(row, "job"),
			CompanyName:    get(row, "company_name"),
			Location:       get(row, "location"),
			WorkType:       get(row, "work_type"),
			FullTimeRemote: get(row, "full_time_remote"),
			Employees:      get(row, "no_of_employ"),
			Applications:   get(row, "no_of_application"),
			PostedAgo:      get(row, "posted_day_ago"),
			Details:        get(row, "job_details"),
		})
	}
	return out, nil
}
