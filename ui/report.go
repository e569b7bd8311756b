package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/habitat/telemetry"
)

// ReportPanel draws the species report as an on-screen table.
type ReportPanel struct {
	renderer *Renderer
}

// NewReportPanel creates a report panel.
func NewReportPanel() *ReportPanel {
	return &ReportPanel{renderer: NewRenderer()}
}

// reportColumns are the table headers. Column x offsets are fixed.
var reportColumns = []string{"Species", "Initial", "Final", "Born", "Hunted"}

// Draw renders the report centered in a screenWidth x screenHeight area.
func (p *ReportPanel) Draw(report telemetry.Report, title string, screenWidth, screenHeight int32) {
	r := p.renderer
	const colWidth = 80
	width := int32(colWidth*len(reportColumns)) + r.Theme.Padding*2
	height := int32(len(report.Rows)+5)*r.Theme.LineHeight + r.Theme.Padding*2

	x := (screenWidth - width) / 2
	y := (screenHeight - height) / 2
	r.DrawPanel(x, y, width, height)

	x += r.Theme.Padding
	y += r.Theme.Padding
	y = r.DrawSectionHeader(x, y, title)
	y += 4

	for i, col := range reportColumns {
		rl.DrawText(col, x+int32(i*colWidth), y, r.Theme.FontSize, r.Theme.SectionHeader)
	}
	y += r.Theme.LineHeight

	for _, row := range report.Rows {
		cells := []string{
			row.Species.String(),
			fmt.Sprintf("%d", row.Initial),
			fmt.Sprintf("%d", row.Final),
			fmt.Sprintf("%d", row.Born),
			fmt.Sprintf("%d", row.Hunted),
		}
		for i, cell := range cells {
			rl.DrawText(cell, x+int32(i*colWidth), y, r.Theme.FontSize, r.Theme.ValueColor)
		}
		y += r.Theme.LineHeight
	}

	y += 4
	rl.DrawText(fmt.Sprintf("Total Animal Count: %d", report.TotalFinal), x, y, r.Theme.HeaderFontSize, rl.White)
}
