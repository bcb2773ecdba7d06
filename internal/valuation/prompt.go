// Package valuation assembles the salary-sheet prompt and, optionally,
// runs it against the OpenAI API with a schema-constrained response.
package valuation

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed prompt.md
var promptTemplate string

// PromptTemplate returns the valuation instructions without any data
// attached, for the manual copy-into-an-assistant workflow.
func PromptTemplate() string {
	return promptTemplate
}

// Inputs carries everything the prompt embeds: raw CSV text keyed by
// season year, the projection CSV, and the drafter's strategy notes.
type Inputs struct {
	Strategy    string
	Seasons     map[int]string
	Projections string
	ProjYear    int
}

// BuildPrompt renders the full valuation prompt: instructions, strategy,
// then each data file fenced and labeled. Seasons appear oldest first.
func BuildPrompt(in Inputs) string {
	var b strings.Builder
	b.WriteString(promptTemplate)

	b.WriteString("\n## Strategy notes\n\n")
	if strings.TrimSpace(in.Strategy) == "" {
		b.WriteString("(none provided — use the default weighting)\n")
	} else {
		b.WriteString(strings.TrimSpace(in.Strategy))
		b.WriteString("\n")
	}

	years := make([]int, 0, len(in.Seasons))
	for y := range in.Seasons {
		years = append(years, y)
	}
	sort.Ints(years)
	for _, y := range years {
		fmt.Fprintf(&b, "\n## Season stats %d\n\n```csv\n%s\n```\n", y, strings.TrimSpace(in.Seasons[y]))
	}

	if in.Projections != "" {
		fmt.Fprintf(&b, "\n## Projections %d\n\n```csv\n%s\n```\n", in.ProjYear, strings.TrimSpace(in.Projections))
	}

	return b.String()
}
