package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/habitat/game"
	"github.com/pthm-cable/habitat/telemetry"
)

// InspectorData holds all the data needed to render the inspector panel.
type InspectorData struct {
	Entity   game.EntityView
	Lifetime *telemetry.LifetimeStats // nil if not tracked
	Color    rl.Color
	Tick     int32
}

// inspectorSections describes the inspector layout.
var inspectorSections = []SectionDescriptor{
	{
		ID:    "identity",
		Title: "Identity",
		Fields: []FieldDescriptor{
			{ID: "id", Label: "ID", Widget: WidgetText, Format: "%.0f", Getter: func(d any) float32 {
				return float32(d.(InspectorData).Entity.Organism.ID)
			}},
			{ID: "gender", Label: "Gender", Widget: WidgetText, TextGetter: func(d any) string {
				return d.(InspectorData).Entity.Organism.Gender.String()
			}, Visible: func(d any) bool { return !d.(InspectorData).Entity.Hunter }},
			{ID: "color", Label: "Color", Widget: WidgetColorSwatch, ColorGetter: func(d any) rl.Color {
				return d.(InspectorData).Color
			}},
			{ID: "pos", Label: "Position", Widget: WidgetText, TextGetter: func(d any) string {
				p := d.(InspectorData).Entity.Position
				return fmt.Sprintf("(%d, %d)", p.X, p.Y)
			}},
		},
	},
	{
		ID:    "mobility",
		Title: "Mobility",
		Fields: []FieldDescriptor{
			{ID: "steps", Label: "Steps", Widget: WidgetText, Getter: func(d any) float32 {
				return float32(d.(InspectorData).Entity.Mobility.Steps)
			}},
			{ID: "reach", Label: "Reach", Widget: WidgetText, Getter: func(d any) float32 {
				return float32(d.(InspectorData).Entity.Mobility.Reach)
			}, Visible: func(d any) bool { return d.(InspectorData).Entity.Mobility.Predator }},
		},
	},
	{
		ID:      "lifetime",
		Title:   "Lifetime",
		Visible: func(d any) bool { return d.(InspectorData).Lifetime != nil },
		Fields: []FieldDescriptor{
			{ID: "age", Label: "Age", Widget: WidgetText, Format: "%.0f ticks", Getter: func(d any) float32 {
				data := d.(InspectorData)
				return float32(data.Tick - data.Lifetime.BirthTick)
			}},
			{ID: "parents", Label: "Parents", Widget: WidgetText, TextGetter: func(d any) string {
				lt := d.(InspectorData).Lifetime
				return fmt.Sprintf("#%d x #%d", lt.MotherID, lt.FatherID)
			}, Visible: func(d any) bool { return d.(InspectorData).Lifetime.MotherID != 0 }},
			{ID: "steps_taken", Label: "Walked", Widget: WidgetText, Getter: func(d any) float32 {
				return float32(d.(InspectorData).Lifetime.StepsTaken)
			}},
			{ID: "stuck", Label: "Stuck", Widget: WidgetText, Getter: func(d any) float32 {
				return float32(d.(InspectorData).Lifetime.Stuck)
			}},
			{ID: "free", Label: "Free", Widget: WidgetBar, Getter: func(d any) float32 {
				return d.(InspectorData).Lifetime.FreeRatio()
			}},
			{ID: "kills", Label: "Kills", Widget: WidgetText, Getter: func(d any) float32 {
				return float32(d.(InspectorData).Lifetime.Kills)
			}, Visible: func(d any) bool { return d.(InspectorData).Entity.Mobility.Predator }},
			{ID: "children", Label: "Children", Widget: WidgetText, Getter: func(d any) float32 {
				return float32(d.(InspectorData).Lifetime.Children)
			}, Visible: func(d any) bool { return !d.(InspectorData).Entity.Hunter }},
		},
	},
}

// Inspector renders the entity inspection panel.
type Inspector struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewInspector creates a new inspector panel.
func NewInspector(x, y, width int32) *Inspector {
	return &Inspector{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the inspector position.
func (ins *Inspector) SetPosition(x, y int32) {
	ins.x = x
	ins.y = y
}

// Draw renders the inspector panel for the given data.
func (ins *Inspector) Draw(data InspectorData) int32 {
	r := ins.renderer
	padding := r.Theme.Padding

	panelHeight := int32(15)*r.Theme.LineHeight + padding*2
	r.DrawPanel(ins.x, ins.y, ins.width, panelHeight)

	x := ins.x + padding
	y := ins.y + padding
	contentWidth := ins.width - padding*2

	rl.DrawText(data.Entity.Organism.Species.String(), x, y, 18, data.Color)
	y += r.Theme.LineHeight + 6

	for _, sd := range inspectorSections {
		y = r.DrawSection(x, y, sd, data, contentWidth)
	}
	return y
}
