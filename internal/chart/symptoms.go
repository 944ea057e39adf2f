package chart

import (
	"sort"

	"github.com/infectieradar-dashboard/internal/domain"
)

// SymptomBars builds the horizontal symptom frequency chart. Bars are colored
// on the Pinkyl scale by their own frequency and the category axis is ordered
// by ascending total, which puts the longest bar on top.
func SymptomBars(rows []domain.SymptomRow, labels domain.Labels) domain.Figure {
	sorted := make([]domain.SymptomRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Frequentie < sorted[j].Frequentie
	})

	x := make([]any, len(sorted))
	y := make([]any, len(sorted))
	colors := make([]float64, len(sorted))
	for i, r := range sorted {
		x[i] = r.Frequentie
		y[i] = r.Symptom
		colors[i] = r.Frequentie
	}

	freqLabel := labels.Get(domain.ColFrequentie)
	symptomLabel := labels.Get(domain.ColSymptom)

	layout := whiteLayout()
	layout.Height = DefaultHeight
	layout.XAxis = axis(freqLabel)
	layout.YAxis = axis(symptomLabel)
	layout.YAxis.CategoryOrder = "total ascending"
	layout.BarMode = "relative"

	return domain.Figure{
		Data: []domain.Trace{{
			Type:        "bar",
			Orientation: "h",
			X:           x,
			Y:           y,
			Marker: &domain.Marker{
				Color:      colors,
				ColorScale: Pinkyl,
				ShowScale:  true,
				ColorBar:   &domain.ColorBar{Title: &domain.Title{Text: freqLabel}},
			},
			HoverTemplate: freqLabel + "=%{x}<br>" + symptomLabel + "=%{y}<extra></extra>",
			ShowLegend:    boolPtr(false),
		}},
		Layout: layout,
		Config: defaultConfig(),
	}
}

// TopToBottom returns the category labels of a horizontal bar figure in the
// order they are drawn from the top of the chart downwards.
func TopToBottom(fig domain.Figure) []string {
	if len(fig.Data) == 0 {
		return nil
	}
	y := fig.Data[0].Y
	out := make([]string, 0, len(y))
	for i := len(y) - 1; i >= 0; i-- {
		if s, ok := y[i].(string); ok {
			out = append(out, s)
		}
	}
	return out
}
