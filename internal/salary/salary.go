// Package salary loads the valuation output (salaries.csv) for the draft
// shell and the MCP server.
package salary

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Row struct {
	Name     string
	ProTeam  string
	Position string
	Salary   int
	Tier     int
}

// Load reads a salaries CSV. Header names are lowercased and trimmed before
// matching; name and salary are required, position defaults to UNKNOWN,
// proTeam and tier are optional.
func Load(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}

	col := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"name", "salary"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("missing required column %q in %s", required, path)
		}
	}

	get := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	rows := make([]Row, 0, len(records)-1)
	for n, record := range records[1:] {
		name := get(record, "name")
		if name == "" {
			continue
		}

		sal, err := parseIntField(get(record, "salary"))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad salary %q", n+2, get(record, "salary"))
		}

		tier := 0
		if raw := get(record, "tier"); raw != "" {
			if tier, err = parseIntField(raw); err != nil {
				return nil, fmt.Errorf("row %d: bad tier %q", n+2, raw)
			}
		}

		pos := get(record, "position")
		if pos == "" {
			pos = "UNKNOWN"
		}

		rows = append(rows, Row{
			Name:     name,
			ProTeam:  strings.ToUpper(get(record, "proteam")),
			Position: pos,
			Salary:   sal,
			Tier:     tier,
		})
	}
	return rows, nil
}

// Names returns the player names in file order.
func Names(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

// ByName indexes rows by player name; the first occurrence wins.
func ByName(rows []Row) map[string]Row {
	out := make(map[string]Row, len(rows))
	for _, r := range rows {
		if _, ok := out[r.Name]; !ok {
			out[r.Name] = r
		}
	}
	return out
}

func parseIntField(s string) (int, error) {
	s = strings.TrimPrefix(s, "$")
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	// Some sheets carry salaries as floats; round toward zero.
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
