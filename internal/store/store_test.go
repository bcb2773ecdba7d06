package store

import (
	"encoding/csv"
	"os"
	"strings"
	"testing"
)

func TestWriteRaw_PrettyPrintsJSON(t *testing.T) {
	s := New(t.TempDir())

	if err := s.WriteRaw("raw/2024/league.json", []byte(`{"id":42}`), true); err != nil {
		t.Fatalf("WriteRaw error: %v", err)
	}
	b, err := s.ReadRaw("raw/2024/league.json")
	if err != nil {
		t.Fatalf("ReadRaw error: %v", err)
	}
	if !strings.Contains(string(b), "\n") {
		t.Errorf("pretty output not indented: %q", b)
	}
	if !strings.Contains(string(b), `"id": 42`) {
		t.Errorf("pretty output missing field: %q", b)
	}
}

func TestWriteRaw_InvalidJSONKeptVerbatim(t *testing.T) {
	s := New(t.TempDir())

	body := []byte("not json")
	if err := s.WriteRaw("raw/x.json", body, true); err != nil {
		t.Fatalf("WriteRaw error: %v", err)
	}
	b, err := s.ReadRaw("raw/x.json")
	if err != nil {
		t.Fatalf("ReadRaw error: %v", err)
	}
	if string(b) != "not json" {
		t.Errorf("body rewritten: %q", b)
	}
}

func TestReadRaw_Missing(t *testing.T) {
	s := New(t.TempDir())

	if _, err := s.ReadRaw("nope.json"); !os.IsNotExist(err) {
		t.Errorf("want not-exist error, got %v", err)
	}
	if s.Exists("nope.json") {
		t.Error("Exists true for missing file")
	}
}

func TestWriteCSV_HeaderAndRows(t *testing.T) {
	s := New(t.TempDir())

	header := []string{"name", "salary"}
	rows := [][]string{{"Player A", "42"}, {"Player B", "7"}}
	if err := s.WriteCSV("2024.csv", header, rows); err != nil {
		t.Fatalf("WriteCSV error: %v", err)
	}

	f, err := os.Open(s.Path("2024.csv"))
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records len = %d, want 3 (header + 2 rows)", len(records))
	}
	if records[0][0] != "name" || records[2][1] != "7" {
		t.Errorf("unexpected contents: %v", records)
	}
}

func TestWriteCSV_OverwritesPreviousRun(t *testing.T) {
	s := New(t.TempDir())

	header := []string{"name"}
	if err := s.WriteCSV("proj_2025.csv", header, [][]string{{"a"}, {"b"}, {"c"}}); err != nil {
		t.Fatalf("first WriteCSV error: %v", err)
	}
	if err := s.WriteCSV("proj_2025.csv", header, [][]string{{"only"}}); err != nil {
		t.Fatalf("second WriteCSV error: %v", err)
	}

	b, err := os.ReadFile(s.Path("proj_2025.csv"))
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 {
		t.Errorf("file not replaced, %d lines: %q", len(lines), b)
	}
}

func TestWriteCSV_RowWidthMismatch(t *testing.T) {
	s := New(t.TempDir())

	err := s.WriteCSV("bad.csv", []string{"a", "b"}, [][]string{{"only one"}})
	if err == nil {
		t.Fatal("want error for row width mismatch")
	}
}
