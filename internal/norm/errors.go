package norm

import "errors"

// Errors reported at the API boundary. Nothing inside the normalization
// pass itself fails; missing or malformed bundle content degrades to
// empty slots.
var (
	// ErrNoBundle indicates a nil raw bundle was supplied.
	ErrNoBundle = errors.New("norm: no raw bundle supplied")

	// ErrUnitCount indicates a negative requested unit count.
	ErrUnitCount = errors.New("norm: requested unit count must be non-negative")
)
