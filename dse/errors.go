package dse

import "errors"

// ErrMissingLiveness is returned when a function reaches dse.Pass without a
// liveness.Annotation already attached to its annotation bundle. This is a
// programmer error in pipeline configuration, not a recoverable condition —
// callers should treat it as fatal for the affected function. Use errors.Is
// to match it; dse.Pass wraps it with pkg/errors.Wrap to attach a stack
// trace for diagnostics.
var ErrMissingLiveness = errors.New("dse: missing liveness annotation")
