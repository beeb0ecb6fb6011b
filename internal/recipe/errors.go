package recipe

import "errors"

var (
	// ErrContentFormat marks a template whose shape doesn't match what the policy expects
	ErrContentFormat = errors.New("unexpected easyconfig format")

	// ErrAnchorNotFound is returned when a splice anchor line is missing
	ErrAnchorNotFound = errors.New("anchor line not found")

	// ErrInvalidToolchain is returned for an empty toolchain or one containing a path separator
	ErrInvalidToolchain = errors.New("invalid toolchain")
)
