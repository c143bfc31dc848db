package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Helpers for reading loosely typed aggregate-row values. SQLite hands
// back a mix of int64, float64, string and []byte depending on column
// affinity, so every read goes through coercion.

func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case []byte:
		return parseFloatString(string(x))
	case string:
		return parseFloatString(x)
	}
	return 0, false
}

func parseFloatString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func asInt(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int64:
		return x, true
	case float64:
		return int64(x), true
	}
	f, ok := asFloat(v)
	if !ok {
		return 0, false
	}
	return int64(f), true
}

func asString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case time.Time:
		return x.Format("2006-01-02 15:04:05")
	}
	return fmt.Sprintf("%v", v)
}

// dateLayouts covers the datetime text shapes SQLite stores produce.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02",
}

func parseDate(v any) (time.Time, bool) {
	if t, ok := v.(time.Time); ok {
		return t, true
	}
	s := strings.TrimSpace(asString(v))
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// daysBetween returns the whole days from earlier to later, floored at 0.
func daysBetween(later, earlier time.Time) int64 {
	d := int64(later.Sub(earlier).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

// round2 rounds half away from zero to two decimals, matching the store
// side ROUND() used by the aggregate queries.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
