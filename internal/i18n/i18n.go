// Package i18n holds the per-locale page text: notices, section prose and
// chart labels. The texts are embedded in the binary, one YAML file per locale.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/infectieradar-dashboard/internal/domain"
)

//go:embed locales/*.yaml
var embedded embed.FS

// SectionText - заголовок и пояснение секции
type SectionText struct {
	Heading   string `yaml:"heading"`
	Paragraph string `yaml:"paragraph"`
}

// Text - все тексты одной локали
type Text struct {
	Title       string                 `yaml:"title"`
	LastUpdated string                 `yaml:"last_updated"`
	Intro       string                 `yaml:"intro"`
	Sections    map[string]SectionText `yaml:"sections"`
	Labels      domain.Labels          `yaml:"labels"`
}

// Section returns the text of a section by id.
func (t *Text) Section(id string) SectionText {
	return t.Sections[id]
}

// Bundle - тексты всех обслуживаемых локалей
type Bundle struct {
	texts map[string]*Text
}

// Load reads the embedded locale files.
func Load() (*Bundle, error) {
	return LoadFS(embedded, "locales")
}

// LoadFS reads <dir>/<locale code>.yaml for every served locale. A missing
// file or an empty required key fails the whole bundle.
func LoadFS(fsys fs.FS, dir string) (*Bundle, error) {
	b := &Bundle{texts: make(map[string]*Text, len(domain.Locales()))}

	for _, loc := range domain.Locales() {
		name := path.Join(dir, loc.Code+".yaml")
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read locale text %s: %w", name, err)
		}

		var t Text
		if err := yaml.Unmarshal(raw, &t); err != nil {
			return nil, fmt.Errorf("parse locale text %s: %w", name, err)
		}
		if missing := t.missingKeys(); len(missing) > 0 {
			return nil, fmt.Errorf("locale text %s: missing keys %s", name, strings.Join(missing, ", "))
		}

		b.texts[loc.Code] = &t
	}

	return b, nil
}

// For returns the text of a locale.
func (b *Bundle) For(code string) (*Text, bool) {
	loc, ok := domain.LocaleByCode(code)
	if !ok {
		return nil, false
	}
	t, ok := b.texts[loc.Code]
	return t, ok
}

var requiredLabels = []string{
	domain.ColFrequentie,
	domain.ColSymptom,
	domain.ColIncidentie,
	domain.ColWeek,
	domain.ColYear,
	domain.ColDeelnemersPer1000,
	domain.ColProvince,
	domain.ColCount,
	domain.ColAge,
	domain.ColSex,
}

var requiredSections = []string{
	domain.SectionSymptoms,
	domain.SectionTrendlineFlu,
	domain.SectionTrendlineCovid,
	domain.SectionParticipants,
}

func (t *Text) missingKeys() []string {
	var missing []string
	if t.Title == "" {
		missing = append(missing, "title")
	}
	if t.LastUpdated == "" {
		missing = append(missing, "last_updated")
	}
	if t.Intro == "" {
		missing = append(missing, "intro")
	}
	for _, id := range requiredSections {
		s := t.Sections[id]
		if s.Heading == "" {
			missing = append(missing, "sections."+id+".heading")
		}
		if s.Paragraph == "" {
			missing = append(missing, "sections."+id+".paragraph")
		}
	}
	for _, col := range requiredLabels {
		if t.Labels[col] == "" {
			missing = append(missing, "labels."+col)
		}
	}
	return missing
}
