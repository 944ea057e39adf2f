package dto

// PageRequest - запрос страницы дашборда
type PageRequest struct {
	Locale      string `json:"locale" validate:"required,oneof=en nl-be fr-be de-be"`
	SymptomWeek string `json:"symptom_week,omitempty" validate:"omitempty,max=32"`
}

// FigureRequest - запрос одного графика локали
type FigureRequest struct {
	Locale string `json:"locale" validate:"required,oneof=en nl-be fr-be de-be"`
	Figure string `json:"figure" validate:"required,oneof=symptoms trendline_flu trendline_covid province-map sexage"`
}
