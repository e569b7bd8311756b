package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/habitat/components"
	"github.com/pthm-cable/habitat/telemetry"
)

func TestTicksThisFrame(t *testing.T) {
	tests := []struct {
		name      string
		state     RunState
		want      int
		wantAfter bool // StepRequested after the call
	}{
		{"running", RunState{StepsPerFrame: 3}, 3, false},
		{"running clamps speed", RunState{StepsPerFrame: 99}, MaxStepsPerFrame, false},
		{"running ignores step", RunState{StepsPerFrame: 2, StepRequested: true}, 2, false},
		{"paused", RunState{Paused: true, StepsPerFrame: 5}, 0, false},
		{"paused single step", RunState{Paused: true, StepRequested: true, StepsPerFrame: 5}, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.state
			if got := s.TicksThisFrame(); got != tt.want {
				t.Errorf("TicksThisFrame() = %d, want %d", got, tt.want)
			}
			if s.StepRequested != tt.wantAfter {
				t.Errorf("StepRequested = %v, want %v", s.StepRequested, tt.wantAfter)
			}
		})
	}
}

func TestApplyKey(t *testing.T) {
	overlays := NewOverlays()
	state := &RunState{StepsPerFrame: 1}

	ApplyKey(rl.KeySpace, state, overlays)
	if !state.Paused {
		t.Error("space did not pause")
	}
	ApplyKey(rl.KeyN, state, overlays)
	if !state.StepRequested {
		t.Error("N did not request a step")
	}
	ApplyKey(rl.KeyComma, state, overlays)
	if state.StepsPerFrame != 1 {
		t.Errorf("speed = %d, want 1 (floor)", state.StepsPerFrame)
	}
	ApplyKey(rl.KeyPeriod, state, overlays)
	if state.StepsPerFrame != 2 {
		t.Errorf("speed = %d, want 2", state.StepsPerFrame)
	}

	ApplyKey(rl.KeyG, state, overlays)
	if overlays.Enabled(OverlayGrid) {
		t.Error("G did not turn the grid off")
	}
}

func TestOverlayDefaultsAndExclusive(t *testing.T) {
	s := NewOverlays()

	for _, o := range []Overlay{OverlayGrid, OverlayEffects, OverlayEvents} {
		if !s.Enabled(o) {
			t.Errorf("%s disabled at startup", o)
		}
	}
	if s.Enabled(OverlayPerf) || s.Enabled(OverlayReport) {
		t.Error("perf or report enabled at startup")
	}

	if !s.Toggle(OverlayPerf) {
		t.Fatal("Toggle(perf) = false, want true")
	}
	if s.Enabled(OverlayEvents) {
		t.Error("events still enabled after enabling perf")
	}

	// Switching off does not bring the excluded overlay back
	s.Set(OverlayPerf, false)
	if s.Enabled(OverlayEvents) || s.Enabled(OverlayPerf) {
		t.Error("side panel overlays should both be off")
	}

	if o, on, ok := s.HandleKey(rl.KeyR); !ok || o != OverlayReport || !on {
		t.Errorf("HandleKey(R) = %s, %v, %v", o, on, ok)
	}
	if _, _, ok := s.HandleKey(rl.KeyZ); ok {
		t.Error("HandleKey(Z) toggled an overlay")
	}
}

func TestOverlayGroups(t *testing.T) {
	total := 0
	for _, g := range Groups {
		for _, o := range InGroup(g) {
			if o.Info().Group != g {
				t.Errorf("%s listed under %s", o, g)
			}
			total++
		}
	}
	if total != int(overlayCount) {
		t.Errorf("grouped overlays = %d, want %d", total, overlayCount)
	}
	if got := InGroup(GroupBoard); len(got) != 2 || got[0] != OverlayGrid {
		t.Errorf("InGroup(board) = %v", got)
	}
}

func TestFieldText(t *testing.T) {
	fd := FieldDescriptor{Getter: func(any) float32 { return 7 }}
	if got := fieldText(fd, nil); got != "7" {
		t.Errorf("fieldText default format = %q, want 7", got)
	}
	fd.Format = "%.0f ticks"
	if got := fieldText(fd, nil); got != "7 ticks" {
		t.Errorf("fieldText = %q, want %q", got, "7 ticks")
	}
	fd = FieldDescriptor{TextGetter: func(any) string { return "Male" }}
	if got := fieldText(fd, nil); got != "Male" {
		t.Errorf("fieldText = %q, want Male", got)
	}
}

func TestEventSummary(t *testing.T) {
	lion := telemetry.Actor{ID: 5, Species: components.Lion}
	sheep := telemetry.Actor{ID: 3, Species: components.Sheep}

	got := EventSummary(telemetry.NewHuntEvent(12, lion, sheep))
	if want := "t12 Lion #5 took Sheep #3"; got != want {
		t.Errorf("EventSummary(hunt) = %q, want %q", got, want)
	}
}
