package strgen

import "errors"

// Validation errors. Generate itself never fails; these are returned by
// Options.Validate and LoadPresets for callers that prefer to fail fast.
var (
	ErrEmptyPreset       = errors.New("preset has no elements")
	ErrNegativeLength    = errors.New("length must not be negative")
	ErrNegativeInterval  = errors.New("interval must not be negative")
	ErrUnknownPreset     = errors.New("unknown preset")
	ErrInvalidPresetFile = errors.New("invalid preset file")
)
