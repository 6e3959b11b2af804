package stsp

import "errors"

// Sentinel errors. Converted to a textual Router.ErrorMessage on failure;
// never surfaced as panics (spec.md section 7).
var (
	// ErrMatrixUnavailable covers both "Run failed" and "Run succeeded
	// previously reported failure".
	ErrMatrixUnavailable = errors.New("stsp: matrix collaborator unavailable")
	// ErrEndpointUnresolved covers an endpoint id the matrix cannot map
	// to an interior index, or one flagged with a location/router-point
	// error.
	ErrEndpointUnresolved = errors.New("stsp: endpoint could not be resolved")
	// ErrEndpointUnroutable covers a solver failure once the problem was
	// built successfully.
	ErrEndpointUnroutable = errors.New("stsp: endpoint is unroutable")
)
