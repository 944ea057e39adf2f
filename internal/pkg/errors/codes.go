package errors

import "net/http"

// Ошибки загрузки данных и построения страницы. Все они фатальны для страницы целиком.
var (
	ErrDataFileUnreadable = New(
		"DATA_FILE_UNREADABLE",
		"Data file is missing or unreadable",
		http.StatusInternalServerError,
	)

	ErrDataColumnMissing = New(
		"DATA_COLUMN_MISSING",
		"Expected column is missing from data file",
		http.StatusInternalServerError,
	)

	ErrDataMalformed = New(
		"DATA_MALFORMED",
		"Data file contains a malformed value",
		http.StatusInternalServerError,
	)

	ErrProvinceJoinMismatch = New(
		"PROVINCE_JOIN_MISMATCH",
		"Province name not found among boundary properties",
		http.StatusInternalServerError,
	)
)

var (
	ErrLocaleNotFound = New(
		"LOCALE_NOT_FOUND",
		"Locale not found",
		http.StatusNotFound,
	)

	ErrFigureNotFound = New(
		"FIGURE_NOT_FOUND",
		"Figure not found",
		http.StatusNotFound,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
