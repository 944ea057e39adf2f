package domain

import "strings"

// Locale - одна из обслуживаемых языковых версий дашборда
type Locale struct {
	Code         string `json:"code"`
	Route        string `json:"route"`
	Lang         string `json:"lang"`
	DataDir      string `json:"data_dir"`
	FeatureIDKey string `json:"feature_id_key"`
	// FluGapsBroken: flu trend is laid out on the fixed season week axis and
	// missing weeks are left as breaks in the line.
	FluGapsBroken bool `json:"flu_gaps_broken"`
}

// Property keys carried by every province feature in provinces.geojson.
const (
	PropertyNameEnglish = "name-english"
	PropertyNameDutch   = "name-dutch"
	PropertyNameFrench  = "name-french"
	PropertyNameGerman  = "name-german"
)

var (
	LocaleEN = Locale{Code: "en", Route: "/en", Lang: "en", DataDir: "en", FeatureIDKey: PropertyNameEnglish, FluGapsBroken: true}
	LocaleNL = Locale{Code: "nl-be", Route: "/nl-be", Lang: "nl-BE", DataDir: "nl", FeatureIDKey: PropertyNameDutch}
	LocaleFR = Locale{Code: "fr-be", Route: "/fr-be", Lang: "fr-BE", DataDir: "fr", FeatureIDKey: PropertyNameFrench}
	LocaleDE = Locale{Code: "de-be", Route: "/de-be", Lang: "de-BE", DataDir: "de", FeatureIDKey: PropertyNameGerman}
)

// Locales returns the served locales in menu order.
func Locales() []Locale {
	return []Locale{LocaleEN, LocaleNL, LocaleFR, LocaleDE}
}

// DefaultLocale - локаль для корневого маршрута
func DefaultLocale() Locale {
	return LocaleEN
}

// LocaleByCode ищет локаль по коду без учёта регистра
func LocaleByCode(code string) (Locale, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, l := range Locales() {
		if l.Code == code {
			return l, true
		}
	}
	return Locale{}, false
}

// LocaleByDataDir maps a data sub-directory (en, nl, fr, de) back to its locale.
func LocaleByDataDir(dir string) (Locale, bool) {
	for _, l := range Locales() {
		if l.DataDir == dir {
			return l, true
		}
	}
	return Locale{}, false
}

// Disease - тип трендовой кривой
type Disease string

const (
	DiseaseFluLike   Disease = "flulike"
	DiseaseCovidLike Disease = "covidlike"
)

// FileName returns the per-locale CSV file holding the disease trend.
func (d Disease) FileName() string {
	return string(d) + ".csv"
}
