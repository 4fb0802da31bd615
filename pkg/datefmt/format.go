package datefmt

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Predefined layouts.
const (
	// LayoutISO renders e.g. 2020-10-15T13:37:00.000+01:00.
	LayoutISO = "{yyyy}-{MM}-{dd}T{hh24}:{mm}:{ss}.{msmsms}{tzs}{tzhh}:{tzmm}"
	// LayoutUS renders e.g. 10-15-2020 (Thu) 1:37 PM.
	LayoutUS = "{MM}-{dd}-{yyyy} ({Wday}) {h12}:{mm} {P}"
	// LayoutDate renders e.g. 2020-10-15.
	LayoutDate = "{yyyy}-{MM}-{dd}"
	// LayoutTime renders e.g. 13:37:00.
	LayoutTime = "{hh24}:{mm}:{ss}"
)

// spanPattern matches the shortest run between a "{" and the next "}".
// Like most regexp engines "." stops at a newline, so spans never cross lines.
var spanPattern = regexp.MustCompile(`\{.*?\}`)

// Format substitutes every token span in format with the matching field of t.
//
// A span is resolved against the token table by its exact text first. If that
// fails, the lower-cased span is looked up and the produced value takes the
// span's case shape: an all upper-case span yields an upper-case value, any
// other spelling upper-cases only the first character.
//
// Format returns ErrNoTokens when format has no span and a *TokenError
// (wrapping ErrUnrecognizedToken) when a span resolves to nothing. On error no
// partial output is returned.
func Format(t time.Time, format string) (string, error) {
	spans := spanPattern.FindAllStringIndex(format, -1)
	if len(spans) == 0 {
		return "", fmt.Errorf("%w: %q", ErrNoTokens, format)
	}

	var b strings.Builder
	b.Grow(len(format) + len(spans)*4)

	last := 0
	for _, span := range spans {
		token := format[span[0]:span[1]]

		value, ok := resolve(t, token)
		if !ok {
			return "", &TokenError{Token: token, Offset: span[0]}
		}

		b.WriteString(format[last:span[0]])
		b.WriteString(value)
		last = span[1]
	}
	b.WriteString(format[last:])

	return b.String(), nil
}

// MustFormat is like Format but panics on error.
// Intended for layouts known at compile time.
func MustFormat(t time.Time, format string) string {
	s, err := Format(t, format)
	if err != nil {
		panic(err)
	}
	return s
}

// IsToken reports whether span resolves to a token, exactly or case-insensitively.
func IsToken(span string) bool {
	if _, ok := tokens[span]; ok {
		return true
	}
	_, ok := tokens[strings.ToLower(span)]
	return ok
}

func resolve(t time.Time, token string) (string, bool) {
	if fn, ok := tokens[token]; ok {
		return fn(t), true
	}

	fn, ok := tokens[strings.ToLower(token)]
	if !ok {
		return "", false
	}

	out := fn(t)
	if out == "" {
		return out, true
	}

	// Casers keep state, so one per call.
	upper := cases.Upper(language.Und)
	if token == strings.ToUpper(token) {
		return upper.String(out), true
	}

	_, size := utf8.DecodeRuneInString(out)
	return upper.String(out[:size]) + out[size:], true
}
