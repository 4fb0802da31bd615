package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Command records the CLI command path under the key "command".
func Command(path string) slog.Attr {
	return slog.String("command", path)
}

// Layout records a date format string under the key "layout".
func Layout(format string) slog.Attr {
	return slog.String("layout", format)
}

// Time records the instant being formatted under the key "time_value",
// leaving "time" to the record timestamp.
func Time(v any) slog.Attr {
	return slog.Any("time_value", v)
}

// Preset records a generator preset name and size under the key "preset".
func Preset(name string, size int) slog.Attr {
	return Group("preset", slog.String("name", name), slog.Int("size", size))
}

// Count records how many items were produced under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
