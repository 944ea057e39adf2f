package chart

import (
	"github.com/paulmach/orb/geojson"

	"github.com/infectieradar-dashboard/internal/domain"
	"github.com/infectieradar-dashboard/internal/pkg/errors"
)

// ProvinceChoropleth builds the participation map. Every row is joined to a
// boundary feature by the locale's name property; a single unmatched province
// fails the whole figure.
func ProvinceChoropleth(
	rows []domain.ProvinceRow,
	boundaries *domain.BoundaryCollection,
	featureIDKey string,
	labels domain.Labels,
) (domain.Figure, error) {
	locations := make([]string, len(rows))
	z := make([]float64, len(rows))
	matched := make([]*geojson.Feature, 0, len(rows))

	for i, r := range rows {
		f, ok := boundaries.FindByProperty(featureIDKey, r.Province)
		if !ok {
			return domain.Figure{}, errors.ErrProvinceJoinMismatch.WithDetails(map[string]interface{}{
				"province":       r.Province,
				"feature_id_key": featureIDKey,
			})
		}
		locations[i] = r.Province
		z[i] = r.DeelnemersPer1000
		matched = append(matched, f)
	}

	provinceLabel := labels.Get(domain.ColProvince)
	rateLabel := labels.Get(domain.ColDeelnemersPer1000)

	var fc *geojson.FeatureCollection
	if boundaries != nil {
		fc = boundaries.Features
	}

	geo := &domain.Geo{
		Visible:    boolPtr(false),
		FitBounds:  "locations",
		Projection: &domain.GeoProjection{Type: "mercator"},
	}
	if bound, ok := domain.UnionBound(matched); ok {
		c := bound.Center()
		geo.Center = &domain.GeoCenter{Lon: c.Lon(), Lat: c.Lat()}
	}

	layout := whiteLayout()
	layout.Height = DefaultHeight
	layout.Margin = &domain.Margin{R: 10, T: 0, L: 10, B: 0}
	layout.DragMode = false
	layout.Geo = geo

	return domain.Figure{
		Data: []domain.Trace{{
			Type:          "choropleth",
			GeoJSON:       fc,
			FeatureIDKey:  "properties." + featureIDKey,
			Locations:     locations,
			Z:             z,
			ColorScale:    Pinkyl,
			ColorBar:      &domain.ColorBar{Title: &domain.Title{Text: rateLabel}},
			Geo:           "geo",
			HoverTemplate: provinceLabel + "=%{location}<br>" + rateLabel + "=%{z}<extra></extra>",
		}},
		Layout: layout,
		Config: &domain.FigureConfig{Responsive: true, ScrollZoom: false},
	}, nil
}
