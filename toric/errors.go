package toric

import "errors"

// ErrInvalidDimensions is returned by New when width or length is <= 1
// (spec.md §4.C "Rejects W<=1 or L<=1"), wrapped as a surface.KindConfiguration
// error.
var ErrInvalidDimensions = errors.New("toric: width and length must each be greater than 1")
