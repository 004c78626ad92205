package extract

import (
	"regexp"
	"strconv"
	"strings"

	"job-trends/internal/dictionary"
	"job-trends/internal/taxonomy"
)

// CategoryOther is the fallback role category when no keyword matches.
const CategoryOther = "Other"

var experiencePatterns = []*regexp.Regexp{
	// Order is part of the contract: the single-number pattern is tried
	// first, then the range forms. Only the first match of the first
	// pattern that fires is used.
	regexp.MustCompile(`(\d+)\+?\s*years?`),
	regexp.MustCompile(`(\d+)\s*-\s*(\d+)\s*years?`),
	regexp.MustCompile(`(\d+)\s*to\s*(\d+)\s*years?`),
}

type certMatcher struct {
	name string
	re   *regexp.Regexp
}

type jobCategory struct {
	name     string
	keywords []string
}

// Extractor turns free-text job fields into structured facts. Every method
// is a total function: empty or missing text yields the empty result.
type Extractor struct {
	dict       *dictionary.Dictionary
	categories []jobCategory
	certs      []certMatcher
}

func New(dict *dictionary.Dictionary, tax taxonomy.Taxonomy) *Extractor {
	e := &Extractor{dict: dict}

	for _, jc := range tax.JobCategories {
		kws := make([]string, 0, len(jc.Keywords))
		for _, kw := range jc.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				kws = append(kws, kw)
			}
		}
		e.categories = append(e.categories, jobCategory{name: jc.Name, keywords: kws})
	}

	for _, c := range tax.Certifications {
		re, err := regexp.Compile(c.Pattern)
		if err != nil {
			continue
		}
		e.certs = append(e.certs, certMatcher{name: c.Name, re: re})
	}

	return e
}

// Skills returns the canonical skills found in text, sorted. The text is
// lowercased once; each dictionary surface form matches only on word
// boundaries.
func (e *Extractor) Skills(text string) []string {
	if e == nil || e.dict == nil {
		return nil
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	return e.dict.FindAll(strings.ToLower(text))
}

// Certifications returns every certification whose pattern matches the
// lowercased text, in taxonomy order.
func (e *Extractor) Certifications(text string) []string {
	if e == nil {
		return nil
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	var out []string
	for _, c := range e.certs {
		if c.re.MatchString(lower) {
			out = append(out, c.name)
		}
	}
	return out
}

// CategorizeRole maps a job title to the first category whose keyword
// occurs as a substring of the lowercased title. First match wins; a title
// hitting keywords from two categories resolves to whichever category is
// declared first in the taxonomy.
func (e *Extractor) CategorizeRole(title string) string {
	if e == nil {
		return CategoryOther
	}
	title = strings.ToLower(strings.TrimSpace(title))
	if title == "" {
		return CategoryOther
	}

	for _, cat := range e.categories {
		for _, kw := range cat.keywords {
			if strings.Contains(title, kw) {
				return cat.name
			}
		}
	}
	return CategoryOther
}

// ExperienceYears extracts the required years of experience from the
// description and title combined. A single-number form yields that number;
// a range yields the arithmetic mean of its bounds. Returns nil when no
// pattern matches.
func (e *Extractor) ExperienceYears(text, title string) *float64 {
	combined := strings.ToLower(strings.TrimSpace(text + " " + title))
	if combined == "" {
		return nil
	}

	for _, re := range experiencePatterns {
		m := re.FindStringSubmatch(combined)
		if m == nil {
			continue
		}
		lo, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if len(m) >= 3 && m[2] != "" {
			hi, err := strconv.ParseFloat(m[2], 64)
			if err != nil {
				continue
			}
			v := (lo + hi) / 2
			return &v
		}
		return &lo
	}
	return nil
}
