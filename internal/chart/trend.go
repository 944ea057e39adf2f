package chart

import (
	"strconv"
	"strings"

	"github.com/infectieradar-dashboard/internal/domain"
)

// TrendOptions controls how week gaps are drawn.
type TrendOptions struct {
	// BreakGaps lays every season out on the fixed season week axis
	// (25..52, 1..24) and leaves missing weeks as breaks in the line.
	BreakGaps bool
}

const (
	seasonStartWeek = 25
	seasonLastWeek  = 52
	leapWeek        = "53"
)

// SeasonWeeks returns the season week axis: weeks 25 through 52, then 1 through 24.
func SeasonWeeks() []string {
	weeks := make([]string, 0, 52)
	for w := seasonStartWeek; w <= seasonLastWeek; w++ {
		weeks = append(weeks, strconv.Itoa(w))
	}
	for w := 1; w < seasonStartWeek; w++ {
		weeks = append(weeks, strconv.Itoa(w))
	}
	return weeks
}

// TrendLines builds the weekly incidence chart: one line per season in order
// of first appearance, markers on every point, historical seasons dashed.
func TrendLines(rows []domain.TrendRow, labels domain.Labels, opts TrendOptions) domain.Figure {
	weekLabel := labels.Get(domain.ColWeek)
	yearLabel := labels.Get(domain.ColYear)
	incLabel := labels.Get(domain.ColIncidentie)

	seasons := firstAppearance(rows, func(r domain.TrendRow) string { return r.Year })

	var weekAxis []string
	if opts.BreakGaps {
		weekAxis = seasonAxis(rows)
	}

	traces := make([]domain.Trace, 0, len(seasons))
	for i, season := range seasons {
		var x, y []any
		if opts.BreakGaps {
			x, y = onWeekAxis(rows, season, weekAxis)
		} else {
			x, y = asGiven(rows, season)
		}

		t := domain.Trace{
			Type:          "scatter",
			Mode:          "lines+markers",
			Name:          season,
			LegendGroup:   season,
			X:             x,
			Y:             y,
			Line:          &domain.Line{Dash: DashFor(season), Color: colorFor(i)},
			Marker:        &domain.Marker{Symbol: "circle", Color: colorFor(i)},
			HoverTemplate: yearLabel + "=" + season + "<br>" + weekLabel + "=%{x}<br>" + incLabel + "=%{y}<extra></extra>",
		}
		if opts.BreakGaps {
			t.ConnectGaps = boolPtr(false)
		}
		traces = append(traces, t)
	}

	layout := whiteLayout()
	layout.XAxis = axis(weekLabel)
	layout.YAxis = axis(incLabel)
	layout.Legend = &domain.Legend{Title: &domain.Title{Text: yearLabel}}
	if opts.BreakGaps {
		layout.XAxis.Type = "category"
		layout.XAxis.CategoryOrder = "array"
		layout.XAxis.CategoryArray = weekAxis
	}

	return domain.Figure{
		Data:   traces,
		Layout: layout,
		Config: defaultConfig(),
	}
}

func asGiven(rows []domain.TrendRow, season string) ([]any, []any) {
	var x, y []any
	for _, r := range rows {
		if r.Year != season {
			continue
		}
		x = append(x, r.Week)
		y = append(y, r.Incidentie)
	}
	return x, y
}

func onWeekAxis(rows []domain.TrendRow, season string, weekAxis []string) ([]any, []any) {
	values := make(map[string]float64)
	for _, r := range rows {
		if r.Year == season {
			values[normalizeWeek(r.Week)] = r.Incidentie
		}
	}

	x := make([]any, len(weekAxis))
	y := make([]any, len(weekAxis))
	for i, w := range weekAxis {
		x[i] = w
		if v, ok := values[w]; ok {
			y[i] = v
		}
	}
	return x, y
}

// seasonAxis is the fixed season cycle, with week 53 after 52 when the data
// has it and any non-numeric labels appended in order of first appearance.
func seasonAxis(rows []domain.TrendRow) []string {
	base := SeasonWeeks()
	known := make(map[string]bool, len(base)+1)
	for _, w := range base {
		known[w] = true
	}

	hasLeap := false
	var extra []string
	for _, w := range firstAppearance(rows, func(r domain.TrendRow) string { return normalizeWeek(r.Week) }) {
		switch {
		case w == leapWeek:
			hasLeap = true
		case !known[w]:
			extra = append(extra, w)
		}
	}

	out := make([]string, 0, len(base)+1+len(extra))
	for _, w := range base {
		out = append(out, w)
		if hasLeap && w == strconv.Itoa(seasonLastWeek) {
			out = append(out, leapWeek)
		}
	}
	return append(out, extra...)
}

// normalizeWeek turns "05" and " 5" into "5"; other labels are only trimmed.
func normalizeWeek(w string) string {
	w = strings.TrimSpace(w)
	if n, err := strconv.Atoi(w); err == nil {
		return strconv.Itoa(n)
	}
	return w
}
