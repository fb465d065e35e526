package errors

import "net/http"

var (
	ErrBuildingNotFound = New(
		"BUILDING_NOT_FOUND",
		"Building not found",
		http.StatusNotFound,
	)

	ErrDuplicateBuildingID = New(
		"DUPLICATE_BUILDING_ID",
		"Duplicate building identifier in dataset",
		http.StatusInternalServerError,
	)

	ErrSessionNotFound = New(
		"SESSION_NOT_FOUND",
		"Map session not found",
		http.StatusNotFound,
	)

	ErrNoSelection = New(
		"NO_SELECTION",
		"Building is not selected",
		http.StatusConflict,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrDatasetError = New(
		"DATASET_ERROR",
		"Failed to load building dataset",
		http.StatusInternalServerError,
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

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
