package cldr

import "errors"

// ErrConfiguration indicates an unresolvable format request: no pattern could
// be derived from the skeleton/type combination and no explicit format
// override was supplied.
var ErrConfiguration = errors.New("cldr: unresolvable format configuration")

// ErrValidation indicates inconsistent or out-of-range digit-count options.
var ErrValidation = errors.New("cldr: invalid format options")
