package camera

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.01
}

func TestNew(t *testing.T) {
	cam := New(10, 10, 800, 800)

	if cam.X != 400 || cam.Y != 400 {
		t.Errorf("center = (%v, %v), want (400, 400)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("zoom = %v, want 1", cam.Zoom)
	}
}

func TestWorldToScreenIdentityAtZoomOne(t *testing.T) {
	cam := New(10, 20, 800, 800)

	sx, sy := cam.WorldToScreen(0, 0)
	if !near(sx, 10) || !near(sy, 20) {
		t.Errorf("board origin on screen = (%v, %v), want (10, 20)", sx, sy)
	}
	sx, sy = cam.WorldToScreen(800, 800)
	if !near(sx, 810) || !near(sy, 820) {
		t.Errorf("board corner on screen = (%v, %v), want (810, 820)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(10, 10, 800, 800)
	cam.SetZoom(3)
	cam.Pan(150, -40)

	testCases := []struct{ sx, sy float32 }{
		{410, 410},
		{20, 30},
		{790, 700},
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if !near(sx, tc.sx) || !near(sy, tc.sy) {
			t.Errorf("roundtrip failed: (%v,%v) -> (%v,%v) -> (%v,%v)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestZoomClamped(t *testing.T) {
	cam := New(0, 0, 800, 800)

	cam.SetZoom(0.2)
	if cam.Zoom != cam.MinZoom {
		t.Errorf("zoom = %v, want min %v", cam.Zoom, cam.MinZoom)
	}
	cam.ZoomBy(100)
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("zoom = %v, want max %v", cam.Zoom, cam.MaxZoom)
	}
}

func TestPanStaysInsideBoard(t *testing.T) {
	cam := New(0, 0, 800, 800)

	// At zoom 1 the whole board is visible, so panning is a no-op
	cam.Pan(300, 300)
	if cam.X != 400 || cam.Y != 400 {
		t.Errorf("center = (%v, %v), want (400, 400) at zoom 1", cam.X, cam.Y)
	}

	cam.SetZoom(2)
	cam.Pan(10000, -10000)
	minX, minY, maxX, maxY := cam.VisibleWorldBounds()
	if !near(maxX, 800) || !near(minY, 0) {
		t.Errorf("bounds = (%v, %v, %v, %v), want right and top edges pinned", minX, minY, maxX, maxY)
	}
	if minX < 0 || maxY > 800 {
		t.Errorf("bounds = (%v, %v, %v, %v), want inside board", minX, minY, maxX, maxY)
	}
}

func TestZoomAtKeepsPointFixed(t *testing.T) {
	cam := New(0, 0, 800, 800)

	wx, wy := cam.ScreenToWorld(200, 300)
	cam.ZoomAt(200, 300, 2)
	sx, sy := cam.WorldToScreen(wx, wy)
	if !near(sx, 200) || !near(sy, 300) {
		t.Errorf("anchor moved to (%v, %v), want (200, 300)", sx, sy)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(0, 0, 800, 800)
	cam.SetZoom(4)
	cam.Pan(-10000, -10000) // view covers board [0,200] x [0,200]

	if !cam.IsVisible(100, 100, 1) {
		t.Error("point in view reported invisible")
	}
	if cam.IsVisible(600, 600, 1) {
		t.Error("point outside view reported visible")
	}
}

func TestInViewport(t *testing.T) {
	cam := New(10, 10, 100, 100)

	tests := []struct {
		sx, sy float32
		want   bool
	}{
		{10, 10, true},
		{109, 109, true},
		{110, 50, false},
		{5, 50, false},
	}
	for _, tt := range tests {
		if got := cam.InViewport(tt.sx, tt.sy); got != tt.want {
			t.Errorf("InViewport(%v, %v) = %v, want %v", tt.sx, tt.sy, got, tt.want)
		}
	}
}

func TestReset(t *testing.T) {
	cam := New(0, 0, 800, 800)
	cam.SetZoom(3)
	cam.Pan(100, 100)
	cam.Reset()

	if cam.X != 400 || cam.Y != 400 || cam.Zoom != 1 {
		t.Errorf("after Reset = (%v, %v, %v), want (400, 400, 1)", cam.X, cam.Y, cam.Zoom)
	}
}
