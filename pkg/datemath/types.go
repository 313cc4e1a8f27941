package datemath

import "errors"

// ErrInvalidWeekID is returned for identifiers that are not "<year>-W<week>" or name a week the year lacks.
var ErrInvalidWeekID = errors.New("invalid week id")
