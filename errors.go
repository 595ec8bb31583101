package picgeom

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports a parameter of the wrong shape or kind: an arm
// parameter set that is not a scalar, 4-element sequence, or complete
// mapping; mismatched port counts; an unknown axis token; or an
// overconstrained routing request.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrDomain reports a numeric parameter outside the range the geometry is
// defined for, such as a non-positive bend radius or a shallow S-bend span
// of 1 or less.
var ErrDomain = errors.New("parameter out of domain")

// ErrOverconstrained is returned when both the spacing and the length of a
// parallel route are fixed. It matches ErrInvalidArgument under errors.Is.
var ErrOverconstrained = fmt.Errorf("%w: overconstrained geometry", ErrInvalidArgument)
