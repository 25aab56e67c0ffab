package site

import "errors"

// ErrNilSpec is returned when asked to render without a spec.
var ErrNilSpec = errors.New("site spec is nil")
