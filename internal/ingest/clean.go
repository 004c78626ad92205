package ingest

import (
	"regexp"
	"strconv"
	"strings"

	"job-trends/internal/corpus"
)

// MinTitleLength drops degenerate scrape artifacts masquerading as titles.
const MinTitleLength = 3

const (
	defaultCountry = "India"
	unknownValue   = "Unknown"
	unknownCompany = "Unknown Company"
	notSpecified   = "Not Specified"
)

var workTypeSynonyms = map[string]string{
	"remote":         corpus.WorkTypeRemote,
	"on-site":        corpus.WorkTypeOnSite,
	"onsite":         corpus.WorkTypeOnSite,
	"hybrid":         corpus.WorkTypeHybrid,
	"work from home": corpus.WorkTypeRemote,
	"wfh":            corpus.WorkTypeRemote,
}

var (
	seniorKeywords = []string{"senior", "sr.", "lead", "principal", "staff"}
	juniorKeywords = []string{"junior", "jr.", "entry", "fresher", "trainee"}
	midKeywords    = []string{"mid", "intermediate", "associate"}
)

var digitsRe = regexp.MustCompile(`\d+`)

// Stats summarizes one cleaning run for operator logging.
type Stats struct {
	Input         int
	Output        int
	DroppedTitles int
	Duplicates    int
}

// Clean normalizes the raw corpus into typed records: invalid titles are
// dropped, locations are split into city/state/country, work types are
// mapped onto the fixed enum, numeric fields are parsed, and duplicates
// (same job_ID) are removed keeping the first occurrence.
func Clean(raw []RawJob) ([]corpus.JobRecord, Stats) {
	stats := Stats{Input: len(raw)}

	seen := make(map[string]struct{}, len(raw))
	out := make([]corpus.JobRecord, 0, len(raw))

	for _, r := range raw {
		title := strings.TrimSpace(r.Title)
		if len(title) < MinTitleLength {
			stats.DroppedTitles++
			continue
		}

		id := strings.TrimSpace(r.JobID)
		if id != "" {
			if _, dup := seen[id]; dup {
				stats.Duplicates++
				continue
			}
			seen[id] = struct{}{}
		}

		location := strings.TrimSpace(r.Location)
		if location == "" {
			location = unknownValue
		}
		city, state, country := ParseLocation(location)

		company := strings.TrimSpace(r.CompanyName)
		if company == "" {
			company = unknownCompany
		}

		employees := strings.TrimSpace(r.Employees)
		if employees == "" {
			employees = notSpecified
		}

		out = append(out, corpus.JobRecord{
			JobID:           id,
			Title:           title,
			CompanyName:     company,
			Location:        location,
			City:            city,
			State:           state,
			Country:         country,
			WorkType:        NormalizeWorkType(r.WorkType),
			Employees:       employees,
			Applications:    parseApplications(r.Applications),
			PostedAgo:       strings.TrimSpace(r.PostedAgo),
			DaysSincePosted: ParsePostedDays(r.PostedAgo),
			FullTimeRemote:  strings.TrimSpace(r.FullTimeRemote),
			IsFullTime:      strings.Contains(strings.ToLower(r.FullTimeRemote), "full-time"),
			ExperienceLevel: ExperienceLevelFromTitle(title),
			Details:         r.Details,
		})
	}

	stats.Output = len(out)
	return out, stats
}

// ParseLocation splits a raw location string into city, state and country.
// Two-part locations default the country, one-part locations default both
// state and country; the source corpus is India-centric.
func ParseLocation(loc string) (city, state, country string) {
	loc = strings.TrimSpace(loc)
	if loc == "" || loc == unknownValue {
		return unknownValue, unknownValue, unknownValue
	}

	parts := strings.Split(loc, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	switch {
	case len(parts) >= 3:
		return parts[0], parts[1], parts[2]
	case len(parts) == 2:
		return parts[0], parts[1], defaultCountry
	default:
		return parts[0], unknownValue, defaultCountry
	}
}

// NormalizeWorkType maps free-form work-type text onto the fixed enum.
// Unrecognized values are title-cased and passed through so the dimension
// is never empty.
func NormalizeWorkType(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return corpus.WorkTypeNotSpecified
	}
	if mapped, ok := workTypeSynonyms[s]; ok {
		return mapped
	}
	return titleCase(s)
}

// ParsePostedDays converts relative-age text ("3 days ago", "2 weeks")
// into fractional days. Nil when the field is absent.
func ParsePostedDays(s string) *float64 {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil
	}

	n, found := firstNumber(s)
	var days float64
	switch {
	case strings.Contains(s, "hour") || strings.Contains(s, "hr"):
		if found {
			days = n / 24
		}
	case strings.Contains(s, "day"):
		days = 1
		if found {
			days = n
		}
	case strings.Contains(s, "week"):
		days = 7
		if found {
			days = n * 7
		}
	case strings.Contains(s, "month"):
		days = 30
		if found {
			days = n * 30
		}
	default:
		days = 1
	}
	return &days
}

// ExperienceLevelFromTitle buckets a title into Junior/Mid-Level/Senior by
// keyword. Mid-Level is the default when nothing matches.
func ExperienceLevelFromTitle(title string) string {
	lower := strings.ToLower(title)
	for _, kw := range seniorKeywords {
		if strings.Contains(lower, kw) {
			return corpus.LevelSenior
		}
	}
	for _, kw := range juniorKeywords {
		if strings.Contains(lower, kw) {
			return corpus.LevelJunior
		}
	}
	for _, kw := range midKeywords {
		if strings.Contains(lower, kw) {
			return corpus.LevelMid
		}
	}
	return corpus.LevelMid
}

func parseApplications(s string) int {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func firstNumber(s string) (float64, bool) {
	m := digitsRe.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
