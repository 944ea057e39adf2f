// Package chart builds Plotly figure specifications from dashboard tables.
// Builders are pure: the same rows always produce the same figure.
package chart

import (
	"github.com/infectieradar-dashboard/internal/domain"
)

const (
	// DefaultHeight is the fixed height of the symptom chart and the province map.
	DefaultHeight = 600

	colorWhite = "#FFFFFF"
	colorGrid  = "#EBF0F8"
	colorText  = "#2A3F5F"
)

// Pinkyl is the CARTO Pinkyl sequential scale.
var Pinkyl = domain.ColorScale{
	{0.0, "rgb(254, 246, 181)"},
	{1.0 / 6, "rgb(255, 221, 154)"},
	{2.0 / 6, "rgb(255, 194, 133)"},
	{3.0 / 6, "rgb(255, 166, 121)"},
	{4.0 / 6, "rgb(250, 138, 118)"},
	{5.0 / 6, "rgb(241, 109, 122)"},
	{1.0, "rgb(225, 83, 131)"},
}

// discrete colors for categorical series, in plotly's default order
var palette = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// dashedSeasons are historical seasons drawn with a dashed stroke.
var dashedSeasons = map[string]bool{
	"2022-2023": true,
	"2021-2022": true,
}

const (
	DashSolid  = "solid"
	DashDashed = "dash"
)

// DashFor returns the stroke style of a season series.
func DashFor(season string) string {
	if dashedSeasons[season] {
		return DashDashed
	}
	return DashSolid
}

// whiteLayout mimics the plotly_white template.
func whiteLayout() domain.Layout {
	return domain.Layout{
		PaperBGColor: colorWhite,
		PlotBGColor:  colorWhite,
		Font:         &domain.Font{Color: colorText},
		Margin:       &domain.Margin{R: 20, T: 40, L: 20, B: 40},
	}
}

func axis(title string) *domain.Axis {
	return &domain.Axis{
		Title:         &domain.Title{Text: title},
		GridColor:     colorGrid,
		LineColor:     colorGrid,
		ZeroLineColor: colorGrid,
		AutoMargin:    true,
	}
}

func defaultConfig() *domain.FigureConfig {
	return &domain.FigureConfig{Responsive: true}
}

func colorFor(i int) string {
	return palette[i%len(palette)]
}

func boolPtr(b bool) *bool {
	return &b
}

// firstAppearance returns the distinct keys in the order they first occur.
func firstAppearance[T any](items []T, key func(T) string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0)
	for _, it := range items {
		k := key(it)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
