// Package view renders assembled dashboard pages as standalone HTML: Plotly.js
// draws each figure client side and the iframe-resizer child script lets the
// embedding site size the frame.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/bytedance/sonic"

	"github.com/infectieradar-dashboard/internal/domain"
	"github.com/infectieradar-dashboard/internal/pkg/errors"
)

const (
	DefaultPlotlyURL  = "https://cdn.plot.ly/plotly-2.32.0.min.js"
	DefaultResizerURL = "https://cdn.jsdelivr.net/npm/@iframe-resizer/child"
)

//go:embed templates/*.html
var templateFS embed.FS

// figureAPI sorts map keys and escapes <, > and & so a figure can sit inside a <script> block.
var figureAPI = sonic.ConfigStd

// Renderer - разобранные шаблоны страницы и страницы ошибки
type Renderer struct {
	page       *template.Template
	errorPage  *template.Template
	plotlyURL  string
	resizerURL string
}

type pageData struct {
	Page       *domain.Page
	PlotlyURL  string
	ResizerURL string
}

type errorData struct {
	Status     int
	Code       string
	Message    string
	PlotlyURL  string
	ResizerURL string
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	funcs := template.FuncMap{
		"figureJSON": FigureJSON,
	}

	page, err := template.New("page.html").Funcs(funcs).ParseFS(templateFS, "templates/page.html", "templates/head.html")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	errorPage, err := template.New("error.html").ParseFS(templateFS, "templates/error.html", "templates/head.html")
	if err != nil {
		return nil, fmt.Errorf("parse error template: %w", err)
	}

	return &Renderer{
		page:       page,
		errorPage:  errorPage,
		plotlyURL:  DefaultPlotlyURL,
		resizerURL: DefaultResizerURL,
	}, nil
}

// Page writes the HTML of an assembled page.
func (r *Renderer) Page(w io.Writer, page *domain.Page) error {
	return r.page.Execute(w, pageData{
		Page:       page,
		PlotlyURL:  r.plotlyURL,
		ResizerURL: r.resizerURL,
	})
}

// Error writes a plain error page. The page build either fully succeeds or
// shows this, never a partial dashboard.
func (r *Renderer) Error(w io.Writer, appErr *errors.AppError) error {
	return r.errorPage.Execute(w, errorData{
		Status:     appErr.StatusCode,
		Code:       appErr.Code,
		Message:    appErr.Message,
		ResizerURL: r.resizerURL,
	})
}

// FigureJSON encodes a figure for inline use in a script block.
func FigureJSON(fig domain.Figure) (template.JS, error) {
	raw, err := figureAPI.Marshal(fig)
	if err != nil {
		return "", fmt.Errorf("encode figure: %w", err)
	}
	return template.JS(raw), nil
}
