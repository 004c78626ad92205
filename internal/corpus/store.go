package corpus

import (
	"sort"
	"strings"
)

// Store is a read-only in-memory view over an enriched corpus, loaded once
// from the pipeline's flat-file artifacts. It backs the HTTP layer; nothing
// mutates it after construction.
type Store struct {
	jobs   []JobRecord
	cities []string
}

func NewStore(jobs []JobRecord) *Store {
	s := &Store{jobs: jobs}

	seen := make(map[string]struct{})
	for _, j := range jobs {
		city := strings.TrimSpace(j.City)
		if city == "" {
			continue
		}
		if _, ok := seen[city]; ok {
			continue
		}
		seen[city] = struct{}{}
		s.cities = append(s.cities, city)
	}
	sort.Strings(s.cities)

	return s
}

// Jobs returns the full corpus in ingestion order. Callers must treat the
// slice as read-only.
func (s *Store) Jobs() []JobRecord {
	if s == nil {
		return nil
	}
	return s.jobs
}

func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.jobs)
}

// Cities returns the distinct cleaned city names, sorted.
func (s *Store) Cities() []string {
	if s == nil {
		return nil
	}
	return s.cities
}

// ListFilter narrows a corpus listing. Zero values mean "no filter"; a
// Limit of 0 applies no truncation.
type ListFilter struct {
	WorkType string
	City     string
	Limit    int
	Offset   int
}

// List returns the filtered page of jobs plus the total number of jobs
// matching the filter before pagination.
func (s *Store) List(f ListFilter) ([]JobRecord, int) {
	if s == nil {
		return nil, 0
	}

	matched := make([]JobRecord, 0, len(s.jobs))
	for _, j := range s.jobs {
		if f.WorkType != "" && j.WorkType != f.WorkType {
			continue
		}
		if f.City != "" && j.City != f.City {
			continue
		}
		matched = append(matched, j)
	}
	total := len(matched)

	if f.Offset > 0 {
		if f.Offset >= len(matched) {
			return []JobRecord{}, total
		}
		matched = matched[f.Offset:]
	}
	if f.Limit > 0 && f.Limit < len(matched) {
		matched = matched[:f.Limit]
	}
	return matched, total
}
