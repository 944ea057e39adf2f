package domain

// SymptomRow - доля участников, сообщивших о симптоме
type SymptomRow struct {
	Symptom    string  `json:"symptom" db:"symptom" validate:"required"`
	Frequentie float64 `json:"frequentie" db:"frequentie" validate:"gte=0,lte=100"`
	Week       string  `json:"week,omitempty" db:"week"`
}

// TrendRow - недельная заболеваемость на 1000 участников в пределах сезона
type TrendRow struct {
	Week       string  `json:"week" db:"week" validate:"required"`
	Year       string  `json:"year" db:"year" validate:"required"`
	Incidentie float64 `json:"incidentie" db:"incidentie" validate:"gte=0"`
}

// ProvinceRow - участники на 1000 жителей провинции
type ProvinceRow struct {
	Province          string  `json:"province" db:"province" validate:"required"`
	DeelnemersPer1000 float64 `json:"deelnemersper1000" db:"deelnemersper1000" validate:"gte=0"`
}

// SexAgeRow - число участников в возрастной группе по полу
type SexAgeRow struct {
	Age   string `json:"age" db:"age" validate:"required"`
	Sex   string `json:"sex" db:"sex" validate:"required"`
	Count int    `json:"count" db:"count" validate:"gte=0"`
}

// Column names as they appear in the CSV headers and the SQL tables.
const (
	ColSymptom           = "symptom"
	ColFrequentie        = "frequentie"
	ColWeek              = "week"
	ColYear              = "year"
	ColIncidentie        = "incidentie"
	ColProvince          = "province"
	ColDeelnemersPer1000 = "deelnemersper1000"
	ColAge               = "age"
	ColSex               = "sex"
	ColCount             = "count"
)

// FilterSymptomsByWeek keeps the rows reported for week. An empty week, or a
// table without week values, returns rows unchanged.
func FilterSymptomsByWeek(rows []SymptomRow, week string) []SymptomRow {
	if week == "" {
		return rows
	}
	hasWeeks := false
	for _, r := range rows {
		if r.Week != "" {
			hasWeeks = true
			break
		}
	}
	if !hasWeeks {
		return rows
	}

	filtered := make([]SymptomRow, 0, len(rows))
	for _, r := range rows {
		if r.Week == week {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
