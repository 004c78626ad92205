package dictionary

import (
	"regexp"
	"sort"
	"strings"

	"job-trends/internal/taxonomy"
)

// Entry resolves a surface form to the canonical skill it stands for.
type Entry struct {
	Canonical string
	Category  string
}

// Dictionary maps normalized surface forms of skill names to canonical
// skills. Each canonical skill registers its lowercase form plus dot-,
// space- and hyphen-stripped variants. Registration is first-writer-wins:
// when two skills collapse to the same surface form, the one declared
// earlier in the taxonomy keeps the form. That is an accepted lossy
// simplification, not a defect.
type Dictionary struct {
	entries  map[string]Entry
	order    []string
	matchers map[string]*regexp.Regexp
	category map[string]string
}

// Build constructs the lookup from an ordered skill taxonomy. It never
// fails: empty or duplicate variants are skipped.
func Build(categories []taxonomy.SkillCategory) *Dictionary {
	d := &Dictionary{
		entries:  make(map[string]Entry),
		matchers: make(map[string]*regexp.Regexp),
		category: make(map[string]string),
	}

	for _, cat := range categories {
		for _, skill := range cat.Skills {
			name := strings.TrimSpace(skill)
			if name == "" {
				continue
			}
			if _, ok := d.category[name]; !ok {
				d.category[name] = cat.Name
			}

			lower := strings.ToLower(name)
			variants := []string{
				lower,
				strings.ReplaceAll(lower, ".", ""),
				strings.ReplaceAll(lower, " ", ""),
				strings.ReplaceAll(lower, "-", ""),
			}
			for _, form := range variants {
				d.register(form, Entry{Canonical: name, Category: cat.Name})
			}
		}
	}
	return d
}

func (d *Dictionary) register(form string, e Entry) {
	form = strings.TrimSpace(form)
	if form == "" {
		return
	}
	if _, exists := d.entries[form]; exists {
		return
	}
	d.entries[form] = e
	d.order = append(d.order, form)
	// Matches only when the form is bounded by non-alphanumerics or the
	// text edges, so "java" never fires inside "javascript".
	d.matchers[form] = regexp.MustCompile(`(^|[^a-z0-9])` + regexp.QuoteMeta(form) + `([^a-z0-9]|$)`)
}

// Lookup returns the entry registered for a surface form.
func (d *Dictionary) Lookup(form string) (Entry, bool) {
	if d == nil {
		return Entry{}, false
	}
	e, ok := d.entries[strings.ToLower(strings.TrimSpace(form))]
	return e, ok
}

// FindAll scans lowercased text and returns the canonical names of every
// skill whose surface form occurs at least once, sorted for determinism.
// Multiplicity within the text is discarded.
func (d *Dictionary) FindAll(textLower string) []string {
	if d == nil || textLower == "" {
		return nil
	}

	seen := make(map[string]struct{})
	for _, form := range d.order {
		if _, ok := seen[d.entries[form].Canonical]; ok {
			continue
		}
		if d.matchers[form].MatchString(textLower) {
			seen[d.entries[form].Canonical] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// CanonicalNames returns every registered canonical skill, sorted.
func (d *Dictionary) CanonicalNames() []string {
	if d == nil {
		return nil
	}
	out := make([]string, 0, len(d.category))
	for name := range d.category {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// CategoryOf returns the category of a canonical skill name.
func (d *Dictionary) CategoryOf(canonical string) (string, bool) {
	if d == nil {
		return "", false
	}
	c, ok := d.category[canonical]
	return c, ok
}

// Len reports the number of registered surface forms.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.order)
}
