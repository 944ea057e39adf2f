package domain

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// BoundaryCollection - общие для всех локалей полигоны провинций
type BoundaryCollection struct {
	Features *geojson.FeatureCollection
}

// NewBoundaryCollection wraps a decoded feature collection.
func NewBoundaryCollection(fc *geojson.FeatureCollection) *BoundaryCollection {
	return &BoundaryCollection{Features: fc}
}

// FindByProperty returns the first feature whose string property key equals value.
func (b *BoundaryCollection) FindByProperty(key, value string) (*geojson.Feature, bool) {
	if b == nil || b.Features == nil {
		return nil, false
	}
	for _, f := range b.Features.Features {
		if f.Properties.MustString(key, "") == value {
			return f, true
		}
	}
	return nil, false
}

// Len - количество полигонов
func (b *BoundaryCollection) Len() int {
	if b == nil || b.Features == nil {
		return 0
	}
	return len(b.Features.Features)
}

// GeoCenter - центр охватывающего прямоугольника в градусах
type GeoCenter struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// UnionBound returns the bounding box covering all given features.
func UnionBound(features []*geojson.Feature) (orb.Bound, bool) {
	var (
		bound orb.Bound
		found bool
	)
	for _, f := range features {
		if f == nil || f.Geometry == nil {
			continue
		}
		b := f.Geometry.Bound()
		if !found {
			bound = b
			found = true
			continue
		}
		bound = bound.Union(b)
	}
	return bound, found
}
