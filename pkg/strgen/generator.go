package strgen

import (
	"strings"
)

// Generate builds a string from opts.Length elements sampled from opts.Preset.
// When opts.Interval is positive, opts.Separator is written before element i
// (0-indexed, i > 0) whenever i is a multiple of the interval.
//
// Nil options, an empty preset or a non-positive length produce an empty
// string. Use Options.Validate to reject such input instead.
func Generate(opts *Options) string {
	if opts == nil || len(opts.Preset) == 0 || opts.Length <= 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(opts.Length*len(opts.Preset[0]) + separators(opts)*len(opts.Separator))

	for i := range opts.Length {
		if opts.Interval > 0 && i > 0 && i%opts.Interval == 0 {
			b.WriteString(opts.Separator)
		}
		b.WriteString(opts.pick())
	}

	return b.String()
}

// separators returns how many separators Generate writes for opts.
func separators(opts *Options) int {
	if opts.Interval <= 0 || opts.Length <= 1 {
		return 0
	}
	return (opts.Length - 1) / opts.Interval
}

// Hex returns n random lower-case hexadecimal characters.
func Hex(n int) string {
	return Generate(&Options{Preset: hexPreset, Length: n})
}

// UUIDLike returns 32 hexadecimal characters grouped by four, e.g.
// 055e-b8d1-18b7-9173-30f4-496d-1a8b-9b3e. It is not an RFC 4122 UUID.
func UUIDLike() string {
	return Generate(&Options{
		Preset:    hexPreset,
		Length:    32,
		Separator: "-",
		Interval:  4,
	})
}

// Words returns n greek letter names separated by spaces,
// e.g. "nu sigma iota lambda".
func Words(n int) string {
	return Generate(&Options{
		Preset:    greekPreset,
		Length:    n,
		Separator: " ",
		Interval:  1,
	})
}
