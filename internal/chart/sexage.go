package chart

import (
	"github.com/infectieradar-dashboard/internal/domain"
)

// SexAgeBars builds the participant demographics chart: one horizontal bar
// segment per sex in every age bucket. Segments are stacked (barmode
// "relative"), so a bucket reads as its total split by sex.
func SexAgeBars(rows []domain.SexAgeRow, labels domain.Labels) domain.Figure {
	ageLabel := labels.Get(domain.ColAge)
	sexLabel := labels.Get(domain.ColSex)
	countLabel := labels.Get(domain.ColCount)

	sexes := firstAppearance(rows, func(r domain.SexAgeRow) string { return r.Sex })

	traces := make([]domain.Trace, 0, len(sexes))
	for i, sex := range sexes {
		var x, y []any
		for _, r := range rows {
			if r.Sex != sex {
				continue
			}
			x = append(x, r.Count)
			y = append(y, r.Age)
		}
		traces = append(traces, domain.Trace{
			Type:           "bar",
			Orientation:    "h",
			Name:           sex,
			LegendGroup:    sex,
			AlignmentGroup: "sexage",
			X:              x,
			Y:              y,
			Marker:         &domain.Marker{Color: colorFor(i)},
			HoverTemplate:  sexLabel + "=" + sex + "<br>" + countLabel + "=%{x}<br>" + ageLabel + "=%{y}<extra></extra>",
		})
	}

	layout := whiteLayout()
	layout.XAxis = axis(countLabel)
	layout.YAxis = axis(ageLabel)
	layout.Legend = &domain.Legend{Title: &domain.Title{Text: sexLabel}}
	layout.BarMode = "relative"

	return domain.Figure{
		Data:   traces,
		Layout: layout,
		Config: defaultConfig(),
	}
}
