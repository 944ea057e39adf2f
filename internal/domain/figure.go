package domain

import "github.com/paulmach/orb/geojson"

// Figure - спецификация графика в формате Plotly ({data, layout, config})
type Figure struct {
	Data   []Trace       `json:"data"`
	Layout Layout        `json:"layout"`
	Config *FigureConfig `json:"config,omitempty"`
}

// ColorScale is a Plotly colorscale: [[position, "#rrggbb"], ...].
type ColorScale [][2]interface{}

type Trace struct {
	Type           string  `json:"type"`
	Name           string  `json:"name,omitempty"`
	Orientation    string  `json:"orientation,omitempty"`
	Mode           string  `json:"mode,omitempty"`
	X              []any   `json:"x,omitempty"`
	Y              []any   `json:"y,omitempty"`
	Marker         *Marker `json:"marker,omitempty"`
	Line           *Line   `json:"line,omitempty"`
	ConnectGaps    *bool   `json:"connectgaps,omitempty"`
	LegendGroup    string  `json:"legendgroup,omitempty"`
	ShowLegend     *bool   `json:"showlegend,omitempty"`
	HoverTemplate  string  `json:"hovertemplate,omitempty"`
	AlignmentGroup string  `json:"alignmentgroup,omitempty"`
	OffsetGroup    string  `json:"offsetgroup,omitempty"`

	// choropleth
	GeoJSON      *geojson.FeatureCollection `json:"geojson,omitempty"`
	FeatureIDKey string                     `json:"featureidkey,omitempty"`
	Locations    []string                   `json:"locations,omitempty"`
	Z            []float64                  `json:"z,omitempty"`
	ColorScale   ColorScale                 `json:"colorscale,omitempty"`
	ColorBar     *ColorBar                  `json:"colorbar,omitempty"`
	Geo          string                     `json:"geo,omitempty"`
}

type Marker struct {
	Color      interface{} `json:"color,omitempty"`
	ColorScale ColorScale  `json:"colorscale,omitempty"`
	ShowScale  bool        `json:"showscale,omitempty"`
	ColorBar   *ColorBar   `json:"colorbar,omitempty"`
	Symbol     string      `json:"symbol,omitempty"`
}

type Line struct {
	Dash  string `json:"dash,omitempty"`
	Color string `json:"color,omitempty"`
}

type ColorBar struct {
	Title *Title `json:"title,omitempty"`
}

type Title struct {
	Text string `json:"text"`
}

type Layout struct {
	Height       int         `json:"height,omitempty"`
	Margin       *Margin     `json:"margin,omitempty"`
	PaperBGColor string      `json:"paper_bgcolor,omitempty"`
	PlotBGColor  string      `json:"plot_bgcolor,omitempty"`
	Font         *Font       `json:"font,omitempty"`
	XAxis        *Axis       `json:"xaxis,omitempty"`
	YAxis        *Axis       `json:"yaxis,omitempty"`
	Legend       *Legend     `json:"legend,omitempty"`
	BarMode      string      `json:"barmode,omitempty"`
	DragMode     interface{} `json:"dragmode,omitempty"`
	Geo          *Geo        `json:"geo,omitempty"`
}

type Margin struct {
	R int `json:"r"`
	T int `json:"t"`
	L int `json:"l"`
	B int `json:"b"`
}

type Font struct {
	Family string `json:"family,omitempty"`
	Color  string `json:"color,omitempty"`
}

type Axis struct {
	Title         *Title   `json:"title,omitempty"`
	Type          string   `json:"type,omitempty"`
	CategoryOrder string   `json:"categoryorder,omitempty"`
	CategoryArray []string `json:"categoryarray,omitempty"`
	GridColor     string   `json:"gridcolor,omitempty"`
	LineColor     string   `json:"linecolor,omitempty"`
	ZeroLineColor string   `json:"zerolinecolor,omitempty"`
	AutoMargin    bool     `json:"automargin,omitempty"`
}

type Legend struct {
	Title *Title `json:"title,omitempty"`
}

type Geo struct {
	Visible    *bool          `json:"visible,omitempty"`
	FitBounds  string         `json:"fitbounds,omitempty"`
	Projection *GeoProjection `json:"projection,omitempty"`
	Center     *GeoCenter     `json:"center,omitempty"`
}

type GeoProjection struct {
	Type string `json:"type"`
}

// FigureConfig - клиентские опции Plotly
type FigureConfig struct {
	Responsive  bool `json:"responsive"`
	DisplayLogo bool `json:"displaylogo"`
	ScrollZoom  bool `json:"scrollZoom"`
}

// TraceByName returns the first trace with the given name.
func (f *Figure) TraceByName(name string) (*Trace, bool) {
	for i := range f.Data {
		if f.Data[i].Name == name {
			return &f.Data[i], true
		}
	}
	return nil, false
}

// Segments counts the connected runs of a line trace: consecutive non-null y
// values form one run. With connectgaps enabled the whole trace is one run.
func (t *Trace) Segments() int {
	if t.ConnectGaps != nil && *t.ConnectGaps {
		for _, y := range t.Y {
			if y != nil {
				return 1
			}
		}
		return 0
	}
	segments := 0
	inRun := false
	for _, y := range t.Y {
		if y == nil {
			inRun = false
			continue
		}
		if !inRun {
			segments++
			inRun = true
		}
	}
	return segments
}

// ValueFor returns the choropleth value assigned to a location.
func (t *Trace) ValueFor(location string) (float64, bool) {
	for i, loc := range t.Locations {
		if loc == location && i < len(t.Z) {
			return t.Z[i], true
		}
	}
	return 0, false
}

// Labels maps a column name to its display label, like the labels argument of
// plotly express. Columns without an entry are shown by name.
type Labels map[string]string

// Get returns the label for column.
func (l Labels) Get(column string) string {
	if v, ok := l[column]; ok && v != "" {
		return v
	}
	return column
}
