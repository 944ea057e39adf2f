package domain

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocaleByCode(t *testing.T) {
	l, ok := LocaleByCode(" NL-BE ")
	require.True(t, ok)
	assert.Equal(t, "/nl-be", l.Route)
	assert.Equal(t, PropertyNameDutch, l.FeatureIDKey)
	assert.False(t, l.FluGapsBroken)

	_, ok = LocaleByCode("es")
	assert.False(t, ok)
}

func TestLocales_RoutesAndKeys(t *testing.T) {
	routes := make([]string, 0, 4)
	keys := make([]string, 0, 4)
	broken := 0
	for _, l := range Locales() {
		routes = append(routes, l.Route)
		keys = append(keys, l.FeatureIDKey)
		if l.FluGapsBroken {
			broken++
		}
	}
	assert.Equal(t, []string{"/en", "/nl-be", "/fr-be", "/de-be"}, routes)
	assert.Equal(t, []string{"name-english", "name-dutch", "name-french", "name-german"}, keys)
	assert.Equal(t, 1, broken)
}

func TestFilterSymptomsByWeek(t *testing.T) {
	rows := []SymptomRow{
		{Symptom: "Fever", Frequentie: 3, Week: "2024/06/12"},
		{Symptom: "Fever", Frequentie: 4, Week: "2024/06/19"},
		{Symptom: "Cough", Frequentie: 9, Week: "2024/06/19"},
	}

	assert.Len(t, FilterSymptomsByWeek(rows, ""), 3)
	assert.Equal(t, []SymptomRow{rows[1], rows[2]}, FilterSymptomsByWeek(rows, "2024/06/19"))
	assert.Empty(t, FilterSymptomsByWeek(rows, "2023/01/01"))

	noWeeks := []SymptomRow{{Symptom: "Fever", Frequentie: 3}}
	assert.Equal(t, noWeeks, FilterSymptomsByWeek(noWeeks, "2024/06/19"))
}

func TestTrace_Segments(t *testing.T) {
	broken := Trace{Y: []any{1.0, 2.0, nil, 4.0}, ConnectGaps: boolPtr(false)}
	assert.Equal(t, 2, broken.Segments())

	connected := Trace{Y: []any{1.0, nil, 4.0}, ConnectGaps: boolPtr(true)}
	assert.Equal(t, 1, connected.Segments())

	empty := Trace{Y: []any{nil, nil}}
	assert.Equal(t, 0, empty.Segments())
}

func TestUnionBound(t *testing.T) {
	a := geojson.NewFeature(orb.Polygon{{{3, 50}, {4, 50}, {4, 51}, {3, 51}, {3, 50}}})
	b := geojson.NewFeature(orb.Polygon{{{5, 49.5}, {6, 49.5}, {6, 50.5}, {5, 50.5}, {5, 49.5}}})

	bound, ok := UnionBound([]*geojson.Feature{a, nil, b})
	require.True(t, ok)
	assert.Equal(t, orb.Point{3, 49.5}, bound.Min)
	assert.Equal(t, orb.Point{6, 51}, bound.Max)

	_, ok = UnionBound(nil)
	assert.False(t, ok)
}

func TestBoundaryCollection_FindByProperty(t *testing.T) {
	f := geojson.NewFeature(orb.Point{4.4, 51.2})
	f.Properties["name-english"] = "Antwerp"
	f.Properties["name-dutch"] = "Antwerpen"
	fc := geojson.NewFeatureCollection()
	fc.Append(f)
	bc := NewBoundaryCollection(fc)

	got, ok := bc.FindByProperty(PropertyNameDutch, "Antwerpen")
	require.True(t, ok)
	assert.Same(t, f, got)

	_, ok = bc.FindByProperty(PropertyNameEnglish, "Antwerpen")
	assert.False(t, ok)
	assert.Equal(t, 1, bc.Len())
}

func boolPtr(b bool) *bool { return &b }
