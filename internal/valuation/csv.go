package valuation

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
)

// SalariesHeader matches what the draft shell's loader expects.
var SalariesHeader = []string{"name", "proTeam", "position", "salary", "tier"}

// WriteSalariesCSV writes the sheet to path, replacing any previous run.
func WriteSalariesCSV(path string, sheet *SalarySheet) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(SalariesHeader); err != nil {
		f.Close()
		return err
	}
	for _, r := range sheet.Salaries {
		row := []string{r.Name, r.ProTeam, r.Position, strconv.Itoa(r.Salary), strconv.Itoa(r.Tier)}
		if err := w.Write(row); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
