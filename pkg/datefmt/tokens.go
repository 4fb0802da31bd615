package datefmt

import (
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"
)

type tokenFunc func(t time.Time) string

// hours12 maps a 0-23 hour to the 12-hour clock. Midnight and noon are both 12.
var hours12 = [24]int{12, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}

// tokens is the dispatch table. Keys are matched exactly first, then lower-cased,
// so month tokens keep their upper-case M to stay apart from minutes.
var tokens = map[string]tokenFunc{
	"{yy}": func(t time.Time) string {
		y := strconv.Itoa(t.Year())
		if len(y) <= 2 {
			return ""
		}
		return y[2:]
	},
	"{yyyy}":    func(t time.Time) string { return strconv.Itoa(t.Year()) },
	"{M}":       func(t time.Time) string { return strconv.Itoa(int(t.Month())) },
	"{MM}":      func(t time.Time) string { return pad(int(t.Month()), 2) },
	"{d}":       func(t time.Time) string { return strconv.Itoa(t.Day()) },
	"{dd}":      func(t time.Time) string { return pad(t.Day(), 2) },
	"{h24}":     func(t time.Time) string { return strconv.Itoa(t.Hour()) },
	"{hh24}":    func(t time.Time) string { return pad(t.Hour(), 2) },
	"{h12}":     func(t time.Time) string { return strconv.Itoa(hours12[t.Hour()]) },
	"{hh12}":    func(t time.Time) string { return pad(hours12[t.Hour()], 2) },
	"{m}":       func(t time.Time) string { return strconv.Itoa(t.Minute()) },
	"{mm}":      func(t time.Time) string { return pad(t.Minute(), 2) },
	"{s}":       func(t time.Time) string { return strconv.Itoa(t.Second()) },
	"{ss}":      func(t time.Time) string { return pad(t.Second(), 2) },
	"{ms}":      func(t time.Time) string { return strconv.Itoa(millisecond(t)) },
	"{msmsms}":  func(t time.Time) string { return pad(millisecond(t), 3) },
	"{p}":       period,
	"{mon}":     func(t time.Time) string { return monthName(t)[:3] },
	"{month}":   monthName,
	"{wday}":    func(t time.Time) string { return weekdayName(t)[:3] },
	"{weekday}": weekdayName,
	"{tzs}": func(t time.Time) string {
		// Offset is minutes to add to local time to reach UTC, so zones
		// west of Greenwich are positive.
		if utcOffset(t) > 0 {
			return "-"
		}
		return "+"
	},
	"{tzh}":  func(t time.Time) string { return strconv.Itoa(abs(utcOffset(t)) / 60) },
	"{tzhh}": func(t time.Time) string { return pad(abs(utcOffset(t))/60, 2) },
	"{tzm}":  func(t time.Time) string { return strconv.Itoa(abs(utcOffset(t)) % 60) },
	"{tzmm}": func(t time.Time) string { return pad(abs(utcOffset(t))%60, 2) },
}

// Tokens returns every recognized token, sorted.
func Tokens() []string {
	return slices.Sorted(maps.Keys(tokens))
}

func period(t time.Time) string {
	if t.Hour() < 12 {
		return "am"
	}
	return "pm"
}

func monthName(t time.Time) string {
	return strings.ToLower(t.Month().String())
}

func weekdayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

func millisecond(t time.Time) int {
	return t.Nanosecond() / int(time.Millisecond)
}

// utcOffset returns the zone offset of t in minutes to add to local time to get UTC.
func utcOffset(t time.Time) int {
	_, sec := t.Zone()
	return -sec / 60
}

func pad(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
