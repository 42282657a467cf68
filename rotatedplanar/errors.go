package rotatedplanar

import "errors"

// ErrInvalidDimension is returned by New when the dimension is even or less
// than 3 (spec.md REDESIGN FLAG 3: the original accepted even D, which does
// not describe a valid rotated planar code), wrapped as a
// surface.KindConfiguration error.
var ErrInvalidDimension = errors.New("rotatedplanar: dimension must be odd and at least 3")
