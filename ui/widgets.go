package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws panels and rows in one theme. Every Draw* row method
// returns the Y position of the next row.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a bordered panel background.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSectionHeader draws a header row.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight
}

func (r *Renderer) label(x, y int32, label string) {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
}

// DrawLabelValue draws "label: value".
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	r.label(x, y, label)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// DrawBar draws a labelled bar for a fraction in [0, 1] with its percentage.
// Fractions under 0.2 are filled in the warning color.
func (r *Renderer) DrawBar(x, y int32, label string, frac float32, width int32) int32 {
	frac = min(max(frac, 0), 1)
	barX := x + r.Theme.LabelWidth
	barW := width - r.Theme.LabelWidth - 50

	fill := r.Theme.BarFill
	if frac < 0.2 {
		fill = r.Theme.BarFillLow
	}

	r.label(x, y, label)
	rl.DrawRectangle(barX, y+2, barW, r.Theme.BarHeight, r.Theme.BarBg)
	rl.DrawRectangle(barX, y+2, int32(float32(barW)*frac), r.Theme.BarHeight, fill)
	rl.DrawText(fmt.Sprintf("%.0f%%", frac*100), barX+barW+5, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight + 2
}

// DrawColorSwatch draws a label, a color square and an optional value after it.
func (r *Renderer) DrawColorSwatch(x, y int32, label string, color rl.Color, value string) int32 {
	const side = 12
	r.label(x, y, label)
	rl.DrawRectangle(x+r.Theme.LabelWidth, y+1, side, side, color)
	if value != "" {
		rl.DrawText(value, x+r.Theme.LabelWidth+side+8, y, r.Theme.FontSize, r.Theme.ValueColor)
	}
	return y + r.Theme.LineHeight
}

// DrawField draws one descriptor-driven row.
func (r *Renderer) DrawField(x, y int32, fd FieldDescriptor, data any, width int32) int32 {
	switch fd.Widget {
	case WidgetText:
		return r.DrawLabelValue(x, y, fd.Label, fieldText(fd, data))
	case WidgetBar:
		var frac float32
		if fd.Getter != nil {
			frac = fd.Getter(data)
		}
		return r.DrawBar(x, y, fd.Label, frac, width)
	case WidgetColorSwatch:
		color := rl.Gray
		if fd.ColorGetter != nil {
			color = fd.ColorGetter(data)
		}
		return r.DrawColorSwatch(x, y, fd.Label, color, "")
	case WidgetSection:
		return r.DrawSectionHeader(x, y, fd.Label)
	case WidgetSpacer:
		return y + 6
	}
	return y
}

// fieldText formats a text field. Numeric getters default to "%.0f".
func fieldText(fd FieldDescriptor, data any) string {
	switch {
	case fd.TextGetter != nil:
		return fd.TextGetter(data)
	case fd.Getter != nil:
		format := fd.Format
		if format == "" {
			format = "%.0f"
		}
		return fmt.Sprintf(format, fd.Getter(data))
	}
	return ""
}

// DrawSection draws a titled group of fields, skipping hidden ones.
func (r *Renderer) DrawSection(x, y int32, sd SectionDescriptor, data any, width int32) int32 {
	if sd.Visible != nil && !sd.Visible(data) {
		return y
	}
	if sd.Title != "" {
		y = r.DrawSectionHeader(x, y, sd.Title)
	}
	for _, fd := range sd.Fields {
		if fd.Visible == nil || fd.Visible(data) {
			y = r.DrawField(x, y, fd, data, width)
		}
	}
	return y + 4
}
