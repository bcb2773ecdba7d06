package draft

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// substringBase keeps any substring hit ranked above every fuzzy-only hit;
// earlier match positions score higher.
const substringBase = 200

// Matches ranks choices against query. Substring matches outrank fuzzy
// matches, with earlier positions winning; fuzzy matching fills the
// remainder. An empty query returns the first limit choices.
func Matches(query string, choices []string, limit int) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		if len(choices) > limit {
			return choices[:limit]
		}
		return choices
	}

	type scored struct {
		name  string
		score int
		order int
	}

	results := make([]scored, 0, len(choices))
	seen := make(map[string]bool, len(choices))

	for i, ch := range choices {
		if idx := strings.Index(strings.ToLower(ch), q); idx >= 0 {
			results = append(results, scored{name: ch, score: substringBase - idx, order: i})
			seen[ch] = true
		}
	}

	for _, m := range fuzzy.Find(q, choices) {
		if seen[m.Str] {
			continue
		}
		score := m.Score
		if score >= substringBase {
			score = substringBase - 1
		}
		results = append(results, scored{name: m.Str, score: score, order: m.Index})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		return results[i].order < results[j].order
	})

	if len(results) > limit {
		results = results[:limit]
	}
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.name
	}
	return out
}
