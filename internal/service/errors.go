package service

import "errors"

// Common service errors
var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when there's a conflict (e.g., duplicate)
	ErrConflict = errors.New("resource conflict")

	// ErrUnauthorized is returned when the caller is not authenticated
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnknownSurface is returned when a surface code is not recognized
	ErrUnknownSurface = errors.New("unknown surface")

	// ErrSameSurface is returned when input and output surfaces are identical
	ErrSameSurface = errors.New("input and output surfaces are the same")

	// ErrOutOfRegion is returned when a point lies outside the model coverage
	ErrOutOfRegion = errors.New("point outside model coverage")

	// ErrJobNotFinished is returned when a job result is requested before completion
	ErrJobNotFinished = errors.New("job has not finished")

	// ErrEmptyInput is returned when an uploaded file contains no parseable points
	ErrEmptyInput = errors.New("input contains no points")

	// ErrWarehouseDisabled is returned when a sync is requested without a warehouse connection
	ErrWarehouseDisabled = errors.New("tide warehouse is not enabled")
)
