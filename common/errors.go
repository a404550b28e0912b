package common

import "errors"

var (
	ErrorInvalidValue     = errors.New("invalid value")
	ErrorMismatchedLength = errors.New("mismatched length")
	// x values must be strictly increasing once sorted
	ErrorNotMonotonic = errors.New("x values not strictly increasing")
)
