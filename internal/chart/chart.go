// Package chart renders grouped numeric series as SVG bar charts. Rendering
// is deterministic: the same grouped input always produces the same document.
package chart

import (
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"github.com/rogerio-castellano/logistics-dashboard/internal/stats"
)

// Fixed canvas geometry, in logical units. The padding band on every side is
// reserved for axis labels and the legend.
const (
	Width   = 800
	Height  = 400
	Padding = 60

	groupGap = 20
	pairGap  = 5
)

const (
	axisColor  = "#888"
	gridColor  = "#eee"
	titleColor = "#333"

	// Bar palette, matching the dashboard theme.
	ColorPrimary   = "#3b82f6"
	ColorSecondary = "#22c55e"
)

// BarChart describes a single- or dual-series bar chart. SeriesNames and
// Colors are indexed together; a legend is drawn only for multi-series charts.
type BarChart struct {
	Title       string
	SeriesNames []string
	Colors      []string
}

// Render paints the grouped series onto w as a complete SVG document. Empty
// input produces a blank surface: the document is opened and closed with no
// drawing elements inside. A grouping whose values are all zero is treated the
// same way, since there is no scale to draw against.
func (c BarChart) Render(w io.Writer, g *stats.Grouped) {
	canvas := svg.New(w)
	canvas.Start(Width, Height)
	defer canvas.End()

	maxValue := g.Max()
	if g.Len() == 0 || maxValue <= 0 {
		return
	}

	usableWidth := float64(Width - 2*Padding)
	usableHeight := float64(Height - 2*Padding)
	groupWidth := usableWidth / float64(g.Len())

	// Axes.
	canvas.Line(Padding, Padding, Padding, Height-Padding, "stroke:"+axisColor)
	canvas.Line(Padding, Height-Padding, Width-Padding, Height-Padding, "stroke:"+axisColor)

	// Gridlines and tick labels, from zero to the max rounded up to a
	// multiple of five steps. Rounding applies to the labels only.
	yStep := int(math.Ceil(float64(maxValue) / 5))
	for i := 0; i <= 5; i++ {
		y := Height - Padding - round(float64(i)*usableHeight/5)
		canvas.Line(Padding, y, Width-Padding, y, "stroke:"+gridColor)
		canvas.Text(Padding-10, y, strconv.Itoa(i*yStep),
			"text-anchor:end;dominant-baseline:middle;fill:"+axisColor)
	}

	series := len(c.Colors)
	for idx, key := range g.Keys() {
		values := g.Values(key)
		groupX := float64(Padding) + float64(idx)*groupWidth

		if series > 1 {
			barWidth := groupWidth/2 - 10
			x := groupX + groupGap
			for s := 0; s < series && s < len(values); s++ {
				barHeight := float64(values[s]) / float64(maxValue) * usableHeight
				canvas.Rect(round(x), Height-Padding-round(barHeight),
					round(barWidth), round(barHeight), "fill:"+c.Colors[s])
				x += barWidth + pairGap
			}
			canvas.Text(round(groupX+groupGap+barWidth), Height-Padding+18, key,
				"text-anchor:middle;fill:"+axisColor)
		} else {
			barWidth := groupWidth - groupGap
			x := groupX + groupGap/2
			barHeight := float64(values[0]) / float64(maxValue) * usableHeight
			canvas.Rect(round(x), Height-Padding-round(barHeight),
				round(barWidth), round(barHeight), "fill:"+c.Colors[0])
			canvas.Text(round(x+barWidth/2), Height-Padding+18, key,
				"text-anchor:middle;fill:"+axisColor)
		}
	}

	if c.Title != "" {
		canvas.Text(Width/2, 30, c.Title,
			"text-anchor:middle;font-size:16px;fill:"+titleColor)
	}

	if series > 1 {
		c.legend(canvas)
	}
}

// legend draws fixed-position color swatches in the top-right padding region.
func (c BarChart) legend(canvas *svg.SVG) {
	for s, name := range c.SeriesNames {
		y := Padding + s*25
		canvas.Rect(Width-Padding-150, y, 15, 15, "fill:"+c.Colors[s])
		canvas.Text(Width-Padding-130, y+11, name, "fill:"+axisColor)
	}
}

func round(f float64) int {
	return int(math.Round(f))
}

// ItemsByCategory renders the single-series quantity chart.
func ItemsByCategory(w io.Writer, g *stats.Grouped) {
	BarChart{
		Title:       "Items by Category",
		SeriesNames: []string{"Quantity"},
		Colors:      []string{ColorPrimary},
	}.Render(w, g)
}

// StockDistribution renders the dual-series available/sold chart.
func StockDistribution(w io.Writer, g *stats.Grouped) {
	BarChart{
		SeriesNames: []string{"Available", "Sold"},
		Colors:      []string{ColorSecondary, ColorPrimary},
	}.Render(w, g)
}
