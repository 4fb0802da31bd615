// Package strgen builds random strings by sampling a caller-supplied set of
// substrings, optionally grouping the result with a separator.
//
// Elements can be single characters (a charset) or whole words:
//
//	strgen.Generate(&strgen.Options{
//		Preset:    strgen.MustPreset("hex"),
//		Length:    32,
//		Separator: "-",
//		Interval:  4,
//	}) // 055e-b8d1-18b7-9173-30f4-496d-1a8b-9b3e
//
//	strgen.Words(4) // nu sigma iota lambda
//
// Built-in presets are hex, digits, lower, upper, alpha, alnum and greek.
// LoadPresets reads additional named presets from YAML.
//
// Randomness comes from math/rand/v2 and is not suitable for secrets, tokens
// or anything else that must be unpredictable. Set Options.Rand to a seeded
// source for reproducible output.
//
// Generate never fails: nil options, an empty preset or a zero length yield an
// empty string. Options.Validate reports those cases for callers that want to
// reject them.
package strgen
