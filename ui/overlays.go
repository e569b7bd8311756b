package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Overlay identifies a toggleable layer of the viewer.
type Overlay uint8

const (
	OverlayGrid Overlay = iota
	OverlayEffects
	OverlayEvents
	OverlayPerf
	OverlayReport
	overlayCount
)

// OverlayGroup groups overlays in the controls panel.
type OverlayGroup uint8

const (
	GroupBoard OverlayGroup = iota
	GroupPanels
)

func (g OverlayGroup) String() string {
	if g == GroupBoard {
		return "Board"
	}
	return "Panels"
}

// OverlayInfo describes one overlay.
type OverlayInfo struct {
	ID       string
	Name     string
	Key      int32  // Toggle key
	KeyLabel string // Shown next to the toggle
	Group    OverlayGroup
	Default  bool      // Enabled at startup
	Excludes []Overlay // Switched off when this one is switched on
}

var overlayTable = [overlayCount]OverlayInfo{
	OverlayGrid: {
		ID: "grid", Name: "Grid", Key: rl.KeyG, KeyLabel: "G",
		Group: GroupBoard, Default: true,
	},
	OverlayEffects: {
		ID: "effects", Name: "Hunts & Births", Key: rl.KeyE, KeyLabel: "E",
		Group: GroupBoard, Default: true,
	},
	// Events and perf share the side panel
	OverlayEvents: {
		ID: "events", Name: "Event Log", Key: rl.KeyL, KeyLabel: "L",
		Group: GroupPanels, Default: true, Excludes: []Overlay{OverlayPerf},
	},
	OverlayPerf: {
		ID: "perf", Name: "Performance", Key: rl.KeyP, KeyLabel: "P",
		Group: GroupPanels, Excludes: []Overlay{OverlayEvents},
	},
	OverlayReport: {
		ID: "report", Name: "Report", Key: rl.KeyR, KeyLabel: "R",
		Group: GroupPanels,
	},
}

func (o Overlay) String() string {
	if o < overlayCount {
		return overlayTable[o].ID
	}
	return "unknown"
}

// Info returns the overlay's description.
func (o Overlay) Info() OverlayInfo {
	return overlayTable[o]
}

// Overlays is the on/off state of every overlay.
type Overlays struct {
	on uint32
}

// NewOverlays returns the startup overlay state.
func NewOverlays() *Overlays {
	s := &Overlays{}
	for o := Overlay(0); o < overlayCount; o++ {
		if overlayTable[o].Default {
			s.on |= 1 << o
		}
	}
	return s
}

// Enabled reports whether o is on.
func (s *Overlays) Enabled(o Overlay) bool {
	return s.on&(1<<o) != 0
}

// Set switches o on or off. Switching on clears the overlays it excludes.
func (s *Overlays) Set(o Overlay, on bool) {
	if o >= overlayCount {
		return
	}
	if !on {
		s.on &^= 1 << o
		return
	}
	s.on |= 1 << o
	for _, x := range overlayTable[o].Excludes {
		s.on &^= 1 << x
	}
}

// Toggle flips o and returns its new state.
func (s *Overlays) Toggle(o Overlay) bool {
	on := !s.Enabled(o)
	s.Set(o, on)
	return on
}

// HandleKey toggles the overlay bound to key. ok is false for unbound keys.
func (s *Overlays) HandleKey(key int32) (o Overlay, on, ok bool) {
	for i := Overlay(0); i < overlayCount; i++ {
		if overlayTable[i].Key == key {
			return i, s.Toggle(i), true
		}
	}
	return 0, false, false
}

// InGroup lists the overlays of a group in display order.
func InGroup(g OverlayGroup) []Overlay {
	var out []Overlay
	for o := Overlay(0); o < overlayCount; o++ {
		if overlayTable[o].Group == g {
			out = append(out, o)
		}
	}
	return out
}

// Groups lists the overlay groups in display order.
var Groups = []OverlayGroup{GroupBoard, GroupPanels}
