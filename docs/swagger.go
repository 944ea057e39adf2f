// Package docs Infectieradar Dashboard API.
//
// Мультиязычный дашборд Infectieradar: HTML-страницы по локалям для встраивания
// в iframe и JSON-спецификации графиков Plotly.
//
// Регенерация: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/health": {
            "get": {
                "description": "Состояние сервиса и подключённых зависимостей",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        },
        "/api/v1/locales": {
            "get": {
                "description": "Обслуживаемые локали в порядке меню",
                "produces": ["application/json"],
                "tags": ["Figures"],
                "summary": "List locales",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LocalesResponse"}}
                }
            }
        },
        "/api/v1/figures/{locale}": {
            "get": {
                "description": "Все графики страницы локали в формате Plotly {data, layout, config}",
                "produces": ["application/json"],
                "tags": ["Figures"],
                "summary": "Figures of a locale",
                "parameters": [
                    {"enum": ["en", "nl-be", "fr-be", "de-be"], "type": "string", "description": "Locale code", "name": "locale", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FiguresResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/figures/{locale}/{figure}": {
            "get": {
                "description": "Один график локали",
                "produces": ["application/json"],
                "tags": ["Figures"],
                "summary": "Single figure",
                "parameters": [
                    {"enum": ["en", "nl-be", "fr-be", "de-be"], "type": "string", "description": "Locale code", "name": "locale", "in": "path", "required": true},
                    {"enum": ["symptoms", "trendline_flu", "trendline_covid", "province-map", "sexage"], "type": "string", "description": "Figure id", "name": "figure", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FigureResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/{locale}": {
            "get": {
                "description": "Полная HTML-страница дашборда для локали: тексты и пять графиков Plotly",
                "produces": ["text/html"],
                "tags": ["Dashboard"],
                "summary": "Dashboard page",
                "parameters": [
                    {"enum": ["en", "nl-be", "fr-be", "de-be"], "type": "string", "description": "Locale code", "name": "locale", "in": "path", "required": true},
                    {"type": "string", "description": "Symptom week filter, e.g. 2024/06/19", "name": "week", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "HTML page", "schema": {"type": "string"}},
                    "404": {"description": "HTML error page", "schema": {"type": "string"}},
                    "500": {"description": "HTML error page", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "data_source": {"type": "string"},
                "dependencies": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "dto.LocaleResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "route": {"type": "string"},
                "lang": {"type": "string"}
            }
        },
        "dto.LocalesResponse": {
            "type": "object",
            "properties": {
                "locales": {"type": "array", "items": {"$ref": "#/definitions/dto.LocaleResponse"}}
            }
        },
        "dto.FiguresResponse": {
            "type": "object",
            "properties": {
                "locale": {"type": "string"},
                "order": {"type": "array", "items": {"type": "string"}},
                "figures": {"type": "object", "additionalProperties": {"$ref": "#/definitions/domain.Figure"}}
            }
        },
        "dto.FigureResponse": {
            "type": "object",
            "properties": {
                "locale": {"type": "string"},
                "id": {"type": "string"},
                "figure": {"$ref": "#/definitions/domain.Figure"}
            }
        },
        "domain.Figure": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"type": "object"}},
                "layout": {"type": "object"},
                "config": {"type": "object"}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "message": {"type": "string"},
                        "details": {"type": "object"}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8050",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Infectieradar Dashboard API",
	Description:      "Мультиязычный дашборд Infectieradar: HTML-страницы для встраивания в iframe и JSON-спецификации графиков Plotly.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
