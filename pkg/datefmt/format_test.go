package datefmt_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/xdkit/pkg/datefmt"
)

// Thursday, 2020-10-15 13:37:05.007 at +01:00.
var afternoon = time.Date(2020, time.October, 15, 13, 37, 5, 7_000_000, time.FixedZone("CET", 60*60))

// Thursday, 2021-03-04 05:06:07.089 at -03:30.
var morning = time.Date(2021, time.March, 4, 5, 6, 7, 89_000_000, time.FixedZone("NST", -(3*60+30)*60))

func TestFormat_Tokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token     string
		afternoon string
		morning   string
	}{
		{"{yy}", "20", "21"},
		{"{yyyy}", "2020", "2021"},
		{"{M}", "10", "3"},
		{"{MM}", "10", "03"},
		{"{d}", "15", "4"},
		{"{dd}", "15", "04"},
		{"{h24}", "13", "5"},
		{"{hh24}", "13", "05"},
		{"{h12}", "1", "5"},
		{"{hh12}", "01", "05"},
		{"{m}", "37", "6"},
		{"{mm}", "37", "06"},
		{"{s}", "5", "7"},
		{"{ss}", "05", "07"},
		{"{ms}", "7", "89"},
		{"{msmsms}", "007", "089"},
		{"{p}", "pm", "am"},
		{"{mon}", "oct", "mar"},
		{"{month}", "october", "march"},
		{"{wday}", "thu", "thu"},
		{"{weekday}", "thursday", "thursday"},
		{"{tzs}", "+", "-"},
		{"{tzh}", "1", "3"},
		{"{tzhh}", "01", "03"},
		{"{tzm}", "0", "30"},
		{"{tzmm}", "00", "30"},
	}

	require.Len(t, tests, len(datefmt.Tokens()), "every token should be covered")

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			t.Parallel()

			got, err := datefmt.Format(afternoon, tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.afternoon, got)

			got, err = datefmt.Format(morning, tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.morning, got)
		})
	}
}

func TestFormat_Layouts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format string
		want   string
	}{
		{"iso", datefmt.LayoutISO, "2020-10-15T13:37:05.007+01:00"},
		{"us", datefmt.LayoutUS, "10-15-2020 (Thu) 1:37 PM"},
		{"date", datefmt.LayoutDate, "2020-10-15"},
		{"time", datefmt.LayoutTime, "13:37:05"},
		{"twelve hour clock", "{h12}:{mm} {p}", "1:37 pm"},
		{"literal text around tokens", "Today is {Weekday}, {Month} {d}.", "Today is Thursday, October 15."},
		{"repeated token", "{dd}/{dd}/{dd}", "15/15/15"},
		{"adjacent tokens", "{yyyy}{MM}{dd}", "20201015"},
		{"unmatched braces stay literal", "{yyyy} }{", "2020 }{"},
		{"span does not cross a newline", "{yy\n}{yyyy}", "{yy\n}2020"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := datefmt.Format(afternoon, tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_CaseShape(t *testing.T) {
	t.Parallel()

	// Wednesday, 2020-10-14
	wednesday := time.Date(2020, time.October, 14, 9, 5, 0, 0, time.UTC)

	tests := []struct {
		format string
		want   string
	}{
		{"{weekday}", "wednesday"},
		{"{Weekday}", "Wednesday"},
		{"{WEEKDAY}", "WEDNESDAY"},
		{"{wEEKDAY}", "Wednesday"},
		{"{Wday}", "Wed"},
		{"{WDAY}", "WED"},
		{"{Mon}", "Oct"},
		{"{MON}", "OCT"},
		{"{MONTH}", "OCTOBER"},
		{"{P}", "AM"},
		{"{p}", "am"},
		{"{D}", "14"},
		{"{HH24}", "09"},
		{"{TZS}", "+"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			got, err := datefmt.Format(wednesday, tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_MonthAndMinuteSpelling(t *testing.T) {
	t.Parallel()

	at := time.Date(2020, time.July, 1, 10, 42, 0, 0, time.UTC)

	tests := []struct {
		format string
		want   string
	}{
		{"{MM}", "07"}, // exact: month
		{"{mm}", "42"}, // exact: minutes
		{"{M}", "7"},   // exact: month
		{"{m}", "42"},  // exact: minutes
		{"{Mm}", "42"}, // lower-cased: minutes
		{"{mM}", "42"}, // lower-cased: minutes
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			got, err := datefmt.Format(at, tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_TwelveHourClock(t *testing.T) {
	t.Parallel()

	for hour := range 24 {
		t.Run(fmt.Sprintf("hour %d", hour), func(t *testing.T) {
			t.Parallel()

			at := time.Date(2020, time.January, 1, hour, 0, 0, 0, time.UTC)
			got, err := datefmt.Format(at, "{h12}|{hh12}|{p}")
			require.NoError(t, err)

			h := hour % 12
			if h == 0 {
				h = 12
			}
			period := "am"
			if hour >= 12 {
				period = "pm"
			}
			assert.Equal(t, fmt.Sprintf("%d|%02d|%s", h, h, period), got)
		})
	}
}

func TestFormat_TimezoneSign(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		offset time.Duration
		want   string
	}{
		{"utc", 0, "+00:00"},
		{"east", 5*time.Hour + 45*time.Minute, "+05:45"},
		{"west", -8 * time.Hour, "-08:00"},
		{"west with minutes", -(9*time.Hour + 30*time.Minute), "-09:30"},
		{"far east", 14 * time.Hour, "+14:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loc := time.FixedZone(tt.name, int(tt.offset.Seconds()))
			at := time.Date(2020, time.June, 1, 12, 0, 0, 0, loc)

			got, err := datefmt.Format(at, "{tzs}{tzhh}:{tzmm}")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_ShortYear(t *testing.T) {
	t.Parallel()

	got, err := datefmt.Format(time.Date(2005, time.May, 1, 0, 0, 0, 0, time.UTC), "{yy}")
	require.NoError(t, err)
	assert.Equal(t, "05", got)

	got, err = datefmt.Format(time.Date(12345, time.May, 1, 0, 0, 0, 0, time.UTC), "{yy}")
	require.NoError(t, err)
	assert.Equal(t, "345", got)

	got, err = datefmt.Format(time.Date(42, time.May, 1, 0, 0, 0, 0, time.UTC), "[{YY}]")
	require.NoError(t, err)
	assert.Equal(t, "[]", got)
}

func TestFormat_Errors(t *testing.T) {
	t.Parallel()

	t.Run("no tokens", func(t *testing.T) {
		t.Parallel()

		for _, format := range []string{"", "plain text", "2020-10-15", "} {", "{\n}"} {
			got, err := datefmt.Format(afternoon, format)
			require.Error(t, err, "format %q", format)
			assert.True(t, errors.Is(err, datefmt.ErrNoTokens))
			assert.Empty(t, got)
		}
	})

	t.Run("unrecognized token", func(t *testing.T) {
		t.Parallel()

		got, err := datefmt.Format(afternoon, "{yyyy}-{bogus}")
		require.Error(t, err)
		assert.Empty(t, got)
		assert.True(t, errors.Is(err, datefmt.ErrUnrecognizedToken))

		var tokenErr *datefmt.TokenError
		require.True(t, errors.As(err, &tokenErr))
		assert.Equal(t, "{bogus}", tokenErr.Token)
		assert.Equal(t, 7, tokenErr.Offset)
		assert.Contains(t, err.Error(), "{bogus}")
	})

	t.Run("first bad span aborts", func(t *testing.T) {
		t.Parallel()

		_, err := datefmt.Format(afternoon, "{x} {yyyy} {y}")
		var tokenErr *datefmt.TokenError
		require.True(t, errors.As(err, &tokenErr))
		assert.Equal(t, "{x}", tokenErr.Token)
	})

	for _, format := range []string{"{}", "{ yyyy}", "{a{yy}}", "{{dd}}"} {
		t.Run(format, func(t *testing.T) {
			t.Parallel()

			got, err := datefmt.Format(afternoon, format)
			assert.ErrorIs(t, err, datefmt.ErrUnrecognizedToken)
			assert.Empty(t, got)
		})
	}
}

func TestFormat_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	at := afternoon
	_, err := datefmt.Format(at, datefmt.LayoutISO)
	require.NoError(t, err)
	assert.True(t, at.Equal(afternoon))
	assert.Equal(t, afternoon.Location(), at.Location())
}

func TestMustFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2020", datefmt.MustFormat(afternoon, "{yyyy}"))
	assert.Panics(t, func() { datefmt.MustFormat(afternoon, "no tokens") })
	assert.Panics(t, func() { datefmt.MustFormat(afternoon, "{nope}") })
}

func TestTokens(t *testing.T) {
	t.Parallel()

	list := datefmt.Tokens()
	assert.Len(t, list, 26)
	assert.IsIncreasing(t, list)
	assert.Contains(t, list, "{MM}")
	assert.Contains(t, list, "{mm}")
	assert.NotContains(t, list, "{Weekday}")
}

func TestIsToken(t *testing.T) {
	t.Parallel()

	assert.True(t, datefmt.IsToken("{yyyy}"))
	assert.True(t, datefmt.IsToken("{YYYY}"))
	assert.True(t, datefmt.IsToken("{MM}"))
	assert.True(t, datefmt.IsToken("{Weekday}"))
	assert.False(t, datefmt.IsToken("yyyy"))
	assert.False(t, datefmt.IsToken("{bogus}"))
}

func TestFormat_Concurrent(t *testing.T) {
	t.Parallel()

	const goroutines = 32

	var wg sync.WaitGroup
	results := make([]string, goroutines)
	for i := range goroutines {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = datefmt.Format(afternoon, "{WEEKDAY} {Month} {yyyy}")
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, "THURSDAY October 2020", got)
	}
}
