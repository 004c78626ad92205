package recommend

import "sort"

// freqCounter counts occurrences keeping first-encountered order as the
// tie-break, so rankings are reproducible across invocations.
type freqCounter struct {
	counts map[string]int
	order  []string
}

func newFreqCounter() *freqCounter {
	return &freqCounter{counts: make(map[string]int)}
}

func (c *freqCounter) Add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

type freqEntry struct {
	key   string
	count int
}

// Ranked returns entries sorted descending by count, ties in insertion
// order. Limit 0 means unbounded.
func (c *freqCounter) Ranked(limit int) []freqEntry {
	out := make([]freqEntry, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, freqEntry{key: k, count: c.counts[k]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].count > out[j].count
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

// MostCommon returns just the keys of the top entries.
func (c *freqCounter) MostCommon(limit int) []string {
	ranked := c.Ranked(limit)
	out := make([]string, 0, len(ranked))
	for _, e := range ranked {
		out = append(out, e.key)
	}
	return out
}
