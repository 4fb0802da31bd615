package datefmt

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTokens is returned when the format string has no bracketed span at all.
	ErrNoTokens = errors.New("no tokens in the format string")

	// ErrUnrecognizedToken is returned when a bracketed span matches no token,
	// neither exactly nor lower-cased.
	ErrUnrecognizedToken = errors.New("unrecognized token in the format string")
)

// TokenError reports the span that could not be resolved.
// It unwraps to ErrUnrecognizedToken.
type TokenError struct {
	Token  string // span text including braces
	Offset int    // byte offset of the span in the format string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%s: %s (offset %d)", ErrUnrecognizedToken, e.Token, e.Offset)
}

func (e *TokenError) Unwrap() error {
	return ErrUnrecognizedToken
}
