package dto

import "github.com/infectieradar-dashboard/internal/domain"

// LocaleResponse - описание обслуживаемой локали
type LocaleResponse struct {
	Code  string `json:"code"`
	Route string `json:"route"`
	Lang  string `json:"lang"`
}

// LocalesResponse - список локалей в порядке меню
type LocalesResponse struct {
	Locales []LocaleResponse `json:"locales"`
}

// FiguresResponse - все графики страницы локали
type FiguresResponse struct {
	Locale  string                   `json:"locale"`
	Order   []string                 `json:"order"`
	Figures map[string]domain.Figure `json:"figures"`
}

// FigureResponse - один график локали
type FigureResponse struct {
	Locale string        `json:"locale"`
	ID     string        `json:"id"`
	Figure domain.Figure `json:"figure"`
}

// HealthResponse - состояние сервиса и его зависимостей
type HealthResponse struct {
	Status       string            `json:"status"`
	DataSource   string            `json:"data_source"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}
