// Package datefmt formats time values through brace-delimited tokens such as
// {yyyy}, {MM} or {weekday}, without going through Go's reference-time layouts.
//
// Literal text in the format string is copied verbatim; every "{...}" span
// (shortest match, left to right) must resolve to a token or the whole call
// fails. This makes the format string safe to write by hand: a typo is an
// error instead of silently leaking into the output.
//
// # Tokens
//
//	{yy}       year without the first two digits   20
//	{yyyy}     full year                            2020
//	{M} {MM}   month 1-12 / 01-12                   10
//	{d} {dd}   day 1-31 / 01-31                     15
//	{h24}      hour 0-23, {hh24} zero-padded        13
//	{h12}      hour 1-12, {hh12} zero-padded        1
//	{m} {mm}   minutes / zero-padded                37
//	{s} {ss}   seconds / zero-padded                0
//	{ms}       milliseconds, {msmsms} padded to 3   0
//	{p}        am / pm
//	{mon}      jan ... dec, {month} january ... december
//	{wday}     sun ... sat, {weekday} sunday ... saturday
//	{tzs}      "+" east of UTC (or at UTC), "-" west of it
//	{tzh}      offset hours, {tzhh} zero-padded
//	{tzm}      offset minutes, {tzmm} zero-padded
//
// # Case
//
// Month and minute tokens differ only by the case of "m", so a span is first
// looked up exactly as written. Any other spelling is looked up lower-cased
// and changes the case of the value: {MONTH} gives OCTOBER, {Month} and {mONTH}
// give October, {P} gives PM.
//
// # Usage
//
//	s, err := datefmt.Format(time.Now(), "{yyyy}-{MM}-{dd} {h12}:{mm} {P}")
//	if err != nil {
//		// errors.Is(err, datefmt.ErrNoTokens) or datefmt.ErrUnrecognizedToken
//	}
//
// Calendar fields are read in the location of the time value; the offset
// tokens use that location's offset at that instant.
//
// All functions are safe for concurrent use.
package datefmt
