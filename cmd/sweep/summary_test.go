package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/habitat/components"
	"github.com/pthm-cable/habitat/telemetry"
)

func reportWith(final, born, hunted int) telemetry.Report {
	return telemetry.BuildReport(telemetry.Counts{
		Final:  map[components.Species]int{components.Wolf: final},
		Born:   map[components.Species]int{components.Wolf: born},
		Hunted: map[components.Species]int{components.Wolf: hunted},
	}, nil)
}

func TestSummarize(t *testing.T) {
	reports := []telemetry.Report{
		reportWith(10, 4, 2),
		reportWith(20, 6, 0),
		reportWith(0, 2, 7),
	}
	rows := Summarize(8, reports)

	if len(rows) != len(components.AnimalSpecies) {
		t.Fatalf("len(rows) = %d, want %d", len(rows), len(components.AnimalSpecies))
	}

	var wolf SummaryRow
	for _, r := range rows {
		if r.Reach != 8 {
			t.Errorf("%v reach = %d, want 8", r.Species, r.Reach)
		}
		if r.Species == components.Wolf {
			wolf = r
		}
	}

	if wolf.Runs != 3 {
		t.Errorf("runs = %d, want 3", wolf.Runs)
	}
	if wolf.MeanFinal != 10 {
		t.Errorf("mean final = %v, want 10", wolf.MeanFinal)
	}
	if wolf.StdFinal != 10 {
		t.Errorf("std final = %v, want 10", wolf.StdFinal)
	}
	if wolf.MeanBorn != 4 {
		t.Errorf("mean born = %v, want 4", wolf.MeanBorn)
	}
	if wolf.MeanHunted != 3 {
		t.Errorf("mean hunted = %v, want 3", wolf.MeanHunted)
	}
	if wolf.Extinct != 1 {
		t.Errorf("extinct = %d, want 1", wolf.Extinct)
	}

	// Species absent from every report went extinct in every run
	for _, r := range rows {
		if r.Species == components.Sheep && r.Extinct != 3 {
			t.Errorf("sheep extinct = %d, want 3", r.Extinct)
		}
	}
}

func TestSummarizeEmpty(t *testing.T) {
	for _, r := range Summarize(0, nil) {
		if r.Runs != 0 || r.MeanFinal != 0 || r.StdFinal != 0 {
			t.Errorf("%v = %+v, want zero stats", r.Species, r)
		}
	}
}

func TestParseReaches(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"0,4,8", []int{0, 4, 8}, false},
		{" 2 , 3 ,", []int{2, 3}, false},
		{"", nil, true},
		{"a", nil, true},
		{"-1", nil, true},
	}

	for _, tt := range tests {
		got, err := parseReaches(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseReaches(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("parseReaches(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseReaches(%q) = %v, want %v", tt.in, got, tt.want)
				break
			}
		}
	}
}

func TestWriteSummary(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	rows := Summarize(4, []telemetry.Report{reportWith(3, 1, 0)})

	if err := writeSummary(dir, rows); err != nil {
		t.Fatalf("writeSummary failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "summary.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1+len(components.AnimalSpecies) {
		t.Errorf("summary.csv has %d lines, want %d", len(lines), 1+len(components.AnimalSpecies))
	}
	if !strings.HasPrefix(lines[0], "hunter_reach,species,runs") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(string(data), "Wolf") {
		t.Error("summary.csv does not name Wolf")
	}
}
