// Package renderer draws the board and its entities with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/habitat/camera"
	"github.com/pthm-cable/habitat/components"
	"github.com/pthm-cable/habitat/game"
)

// speciesColors maps each species to its marker color.
var speciesColors = map[components.Species]rl.Color{
	components.Sheep:   {R: 235, G: 235, B: 225, A: 255},
	components.Cow:     {R: 140, G: 95, B: 60, A: 255},
	components.Wolf:    {R: 120, G: 120, B: 135, A: 255},
	components.Lion:    {R: 220, G: 170, B: 60, A: 255},
	components.Chicken: {R: 240, G: 200, B: 140, A: 255},
	components.Rooster: {R: 200, G: 60, B: 40, A: 255},
	components.Hunter:  {R: 230, G: 40, B: 200, A: 255},
}

// SpeciesColor returns the marker color of a species.
func SpeciesColor(s components.Species) rl.Color {
	if c, ok := speciesColors[s]; ok {
		return c
	}
	return rl.Gray
}

// BoardRenderer draws the square grid inside a fixed screen rectangle,
// viewed through a zoomable camera.
type BoardRenderer struct {
	boardSize int
	x, y      int32   // Top-left corner on screen
	pixels    int32   // Side of the screen rectangle
	cell      float32 // Pixel size of one grid cell at zoom 1
	showGrid  bool
	cam       *camera.Camera
}

// NewBoardRenderer fits a boardSize x boardSize grid into a pixels x pixels
// square whose top-left corner is (x, y).
func NewBoardRenderer(boardSize int, x, y, pixels int32) *BoardRenderer {
	return &BoardRenderer{
		boardSize: boardSize,
		x:         x,
		y:         y,
		pixels:    pixels,
		cell:      float32(pixels) / float32(boardSize),
		showGrid:  true,
		cam:       camera.New(float32(x), float32(y), float32(pixels), float32(pixels)),
	}
}

// Camera returns the camera used to view the board.
func (r *BoardRenderer) Camera() *camera.Camera {
	return r.cam
}

// SetGrid switches grid lines on or off. Grid lines are only drawn when
// cells are at least 4 pixels wide.
func (r *BoardRenderer) SetGrid(on bool) {
	r.showGrid = on
}

// CellSize returns the on-screen pixel size of one cell at the current zoom.
func (r *BoardRenderer) CellSize() float32 {
	return r.cell * r.cam.Zoom
}

// CellCenter returns the screen position of the center of a grid cell.
func (r *BoardRenderer) CellCenter(p components.Position) (float32, float32) {
	return r.cam.WorldToScreen((float32(p.X)+0.5)*r.cell, (float32(p.Y)+0.5)*r.cell)
}

// CellAt returns the grid cell under a screen point.
func (r *BoardRenderer) CellAt(sx, sy float32) (components.Position, bool) {
	if !r.cam.InViewport(sx, sy) {
		return components.Position{}, false
	}
	wx, wy := r.cam.ScreenToWorld(sx, sy)
	cx := int(wx / r.cell)
	cy := int(wy / r.cell)
	if wx < 0 || wy < 0 || cx >= r.boardSize || cy >= r.boardSize {
		return components.Position{}, false
	}
	return components.Position{X: cx, Y: cy}, true
}

// Draw renders the board background, grid and every visible entity.
func (r *BoardRenderer) Draw(entities []game.EntityView) {
	rl.DrawRectangle(r.x, r.y, r.pixels, r.pixels, rl.Color{R: 40, G: 70, B: 40, A: 255})

	rl.BeginScissorMode(r.x, r.y, r.pixels, r.pixels)

	cell := r.CellSize()
	if r.showGrid && cell >= 4 {
		lineColor := rl.Color{R: 55, G: 90, B: 55, A: 255}
		minX, minY, maxX, maxY := r.cam.VisibleWorldBounds()
		first := int(minX / r.cell)
		last := int(maxX/r.cell) + 1
		for i := max(first, 0); i <= min(last, r.boardSize); i++ {
			sx, _ := r.cam.WorldToScreen(float32(i)*r.cell, 0)
			rl.DrawLineV(rl.Vector2{X: sx, Y: float32(r.y)}, rl.Vector2{X: sx, Y: float32(r.y + r.pixels)}, lineColor)
		}
		first = int(minY / r.cell)
		last = int(maxY/r.cell) + 1
		for i := max(first, 0); i <= min(last, r.boardSize); i++ {
			_, sy := r.cam.WorldToScreen(0, float32(i)*r.cell)
			rl.DrawLineV(rl.Vector2{X: float32(r.x), Y: sy}, rl.Vector2{X: float32(r.x + r.pixels), Y: sy}, lineColor)
		}
	}

	radius := cell * 0.45
	if radius < 1.5 {
		radius = 1.5
	}
	for _, e := range entities {
		wx := (float32(e.Position.X) + 0.5) * r.cell
		wy := (float32(e.Position.Y) + 0.5) * r.cell
		if !r.cam.IsVisible(wx, wy, r.cell) {
			continue
		}
		cx, cy := r.cam.WorldToScreen(wx, wy)
		color := SpeciesColor(e.Organism.Species)

		if e.Hunter {
			// Hunter is a square so it stands out among the animals
			side := radius * 2
			rl.DrawRectangleV(rl.Vector2{X: cx - radius, Y: cy - radius}, rl.Vector2{X: side, Y: side}, color)
			continue
		}

		rl.DrawCircleV(rl.Vector2{X: cx, Y: cy}, radius, color)
		if e.Organism.Gender == components.Female && radius >= 3 {
			rl.DrawCircleLines(int32(cx), int32(cy), radius, rl.Black)
		}
	}

	rl.EndScissorMode()
	rl.DrawRectangleLines(r.x, r.y, r.pixels, r.pixels, rl.Color{R: 90, G: 120, B: 90, A: 255})
}
