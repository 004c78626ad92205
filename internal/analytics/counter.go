package analytics

import "sort"

// counter tracks frequencies while remembering first-encountered order, so
// ranked output has a stable tie-break independent of map iteration.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) Add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) Unique() int {
	return len(c.order)
}

type entry struct {
	Key   string
	Count int
}

// Ranked returns entries sorted descending by count; ties keep
// first-encountered order. A limit of 0 returns everything.
func (c *counter) Ranked(limit int) []entry {
	out := make([]entry, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, entry{Key: k, Count: c.counts[k]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

// Mode returns the most frequent key; ties resolve to the key encountered
// first.
func (c *counter) Mode() string {
	best := ""
	bestCount := 0
	for _, k := range c.order {
		if c.counts[k] > bestCount {
			best = k
			bestCount = c.counts[k]
		}
	}
	return best
}
