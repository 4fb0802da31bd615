package strgen

import (
	"errors"
	"math/rand/v2"
)

// Options configures string generation.
type Options struct {
	// Preset holds the candidate substrings. Elements are picked uniformly,
	// with replacement.
	Preset []string

	// Length is the number of preset elements to emit.
	// Default: 0 (empty output)
	Length int

	// Interval inserts Separator before every Interval-th element.
	// Default: 0 (no separators)
	Interval int

	// Separator is the text inserted at interval boundaries.
	Separator string

	// Rand is the random source. When nil the goroutine-safe global
	// source of math/rand/v2 is used.
	Rand *rand.Rand
}

// Validate reports every problem with the options.
// Generate tolerates all of them by producing empty or shorter output.
func (o *Options) Validate() error {
	if o == nil {
		return ErrEmptyPreset
	}

	var errs []error
	if len(o.Preset) == 0 {
		errs = append(errs, ErrEmptyPreset)
	}
	if o.Length < 0 {
		errs = append(errs, ErrNegativeLength)
	}
	if o.Interval < 0 {
		errs = append(errs, ErrNegativeInterval)
	}
	return errors.Join(errs...)
}

func (o *Options) pick() string {
	n := len(o.Preset)
	if o.Rand != nil {
		return o.Preset[o.Rand.IntN(n)]
	}
	return o.Preset[rand.IntN(n)]
}
