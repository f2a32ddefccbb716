package chart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rogerio-castellano/logistics-dashboard/internal/stats"
)

type row struct {
	Category  string
	Available int
	Sold      int
}

func available(r row) int { return r.Available }
func sold(r row) int      { return r.Sold }
func category(r row) string {
	return r.Category
}

func TestRenderEmptyInputDrawsNothing(t *testing.T) {
	g := stats.GroupSum([]row{}, category, available)

	var buf bytes.Buffer
	ItemsByCategory(&buf, g)

	out := buf.String()
	for _, element := range []string{"<rect", "<line", "<text"} {
		if strings.Contains(out, element) {
			t.Errorf("expected blank surface, found %s in output", element)
		}
	}
	if !strings.Contains(out, "<svg") {
		t.Error("expected an svg document to be opened")
	}
}

func TestRenderAllZeroValuesDrawsNothing(t *testing.T) {
	g := stats.GroupSum([]row{{Category: "Tools"}}, category, available)

	var buf bytes.Buffer
	ItemsByCategory(&buf, g)

	if strings.Contains(buf.String(), "<rect") {
		t.Error("expected no bars when every value is zero")
	}
}

func TestRenderSingleSeries(t *testing.T) {
	g := stats.GroupSum([]row{
		{Category: "Tools", Available: 12},
		{Category: "Food", Available: 7},
		{Category: "Tools", Available: 3},
	}, category, available)

	var buf bytes.Buffer
	ItemsByCategory(&buf, g)
	out := buf.String()

	if got := strings.Count(out, "<rect"); got != 2 {
		t.Errorf("expected 2 bars, got %d rects", got)
	}
	for _, label := range []string{"Tools", "Food", "Items by Category"} {
		if !strings.Contains(out, label) {
			t.Errorf("expected label %q in output", label)
		}
	}
	if !strings.Contains(out, ColorPrimary) {
		t.Error("expected primary bar color in output")
	}
	// Max is 15, so the top gridline reads ceil(15/5)*5 = 15.
	if !strings.Contains(out, ">15<") {
		t.Error("expected top tick label 15")
	}
}

func TestRenderDualSeriesWithLegend(t *testing.T) {
	g := stats.GroupSum([]row{
		{Category: "Tools", Available: 4, Sold: 1},
		{Category: "Food", Available: 20, Sold: 8},
	}, category, available, sold)

	var buf bytes.Buffer
	StockDistribution(&buf, g)
	out := buf.String()

	// Two bars per category plus two legend swatches.
	if got := strings.Count(out, "<rect"); got != 6 {
		t.Errorf("expected 6 rects, got %d", got)
	}
	for _, label := range []string{"Available", "Sold"} {
		if !strings.Contains(out, label) {
			t.Errorf("expected legend entry %q", label)
		}
	}
	if !strings.Contains(out, ColorSecondary) || !strings.Contains(out, ColorPrimary) {
		t.Error("expected both series colors in output")
	}
}

func TestRenderDeterministic(t *testing.T) {
	rows := []row{
		{Category: "Tools", Available: 4, Sold: 1},
		{Category: "Food", Available: 20, Sold: 8},
	}

	var first, second bytes.Buffer
	StockDistribution(&first, stats.GroupSum(rows, category, available, sold))
	StockDistribution(&second, stats.GroupSum(rows, category, available, sold))

	if first.String() != second.String() {
		t.Error("expected identical output for identical input")
	}
}
