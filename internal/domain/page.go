package domain

// Figure ids in page order.
const (
	FigureSymptoms       = "symptoms"
	FigureTrendlineFlu   = "trendline_flu"
	FigureTrendlineCovid = "trendline_covid"
	FigureProvinceMap    = "province-map"
	FigureSexAge         = "sexage"
)

// Section ids in page order.
const (
	SectionSymptoms       = "symptoms"
	SectionTrendlineFlu   = "trendline_flu"
	SectionTrendlineCovid = "trendline_covid"
	SectionParticipants   = "participants"
)

// FigureIDs returns all figure ids in the order they appear on a page.
func FigureIDs() []string {
	return []string{FigureSymptoms, FigureTrendlineFlu, FigureTrendlineCovid, FigureProvinceMap, FigureSexAge}
}

// Page - собранная страница дашборда одной локали
type Page struct {
	Locale      string    `json:"locale"`
	Lang        string    `json:"lang"`
	Route       string    `json:"route"`
	Title       string    `json:"title"`
	LastUpdated string    `json:"last_updated"`
	Intro       string    `json:"intro"`
	Sections    []Section `json:"sections"`
}

// Section - заголовок, пояснение и графики одного блока страницы
type Section struct {
	ID        string        `json:"id"`
	Heading   string        `json:"heading"`
	Paragraph string        `json:"paragraph"`
	Figures   []NamedFigure `json:"figures"`
}

type NamedFigure struct {
	ID     string `json:"id"`
	Figure Figure `json:"figure"`
}

// FigureIDs returns the ids of every figure on the page in render order.
func (p *Page) FigureIDs() []string {
	ids := make([]string, 0, len(FigureIDs()))
	for _, s := range p.Sections {
		for _, f := range s.Figures {
			ids = append(ids, f.ID)
		}
	}
	return ids
}

// Figure looks up a figure on the page by id.
func (p *Page) Figure(id string) (*Figure, bool) {
	for si := range p.Sections {
		for fi := range p.Sections[si].Figures {
			if p.Sections[si].Figures[fi].ID == id {
				return &p.Sections[si].Figures[fi].Figure, true
			}
		}
	}
	return nil, false
}

// Figures returns a map of figure id to figure.
func (p *Page) Figures() map[string]Figure {
	out := make(map[string]Figure, len(FigureIDs()))
	for _, s := range p.Sections {
		for _, f := range s.Figures {
			out[f.ID] = f.Figure
		}
	}
	return out
}
