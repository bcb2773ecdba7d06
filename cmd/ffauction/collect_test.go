package main

import "testing"

func TestParseYear(t *testing.T) {
	cases := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"2024", 2024, false},
		{"1999", 1999, false},
		{"24", 0, true},
		{"20245", 0, true},
		{"twenty", 0, true},
		{"", 0, true},
	}
	for _, c := range cases {
		got, err := parseYear(c.raw)
		if (err != nil) != c.wantErr {
			t.Errorf("parseYear(%q): err = %v, wantErr %v", c.raw, err, c.wantErr)
			continue
		}
		if got != c.want {
			t.Errorf("parseYear(%q) = %d, want %d", c.raw, got, c.want)
		}
	}
}
