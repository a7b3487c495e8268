package optimizer

import "errors"

// ErrUnsupported marks a program construct a pass cannot handle. The program
// is left in a consistent, possibly partially rewritten state; callers
// should treat it as spoiled for the requested transformation.
var ErrUnsupported = errors.New("unsupported construct")
