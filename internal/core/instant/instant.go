// Package instant normalizes heterogeneous timestamp representations into time.Time
// Accepted shapes
// 1 numeric epoch seconds int or float
// 2 numeric strings optionally signed or decimal same epoch seconds rule
// 3 ISO-8601 strings with Z explicit offset or none
// 4 object shapes with a seconds or milliseconds field
// Anything else is ErrUnparseable, never a silently wrong time
package instant

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrUnparseable reports an input no accepted shape could interpret
var ErrUnparseable = errors.New("unparseable timestamp")

// iso layouts tried in order for non numeric strings
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Parse converts v into a UTC time.Time
// pure and total: every failure is ErrUnparseable, Parse never panics
func Parse(v any) (time.Time, error) {
	switch t := v.(type) {
	case nil:
		return time.Time{}, ErrUnparseable
	case time.Time:
		if t.IsZero() {
			return time.Time{}, ErrUnparseable
		}
		return t.UTC(), nil
	case float64:
		return fromSeconds(t)
	case float32:
		return fromSeconds(float64(t))
	case int:
		return fromSeconds(float64(t))
	case int32:
		return fromSeconds(float64(t))
	case int64:
		return fromSeconds(float64(t))
	case uint:
		return fromSeconds(float64(t))
	case uint64:
		return fromSeconds(float64(t))
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return time.Time{}, ErrUnparseable
		}
		return fromSeconds(f)
	case string:
		return parseString(t)
	case map[string]any:
		return parseObject(t)
	default:
		return time.Time{}, ErrUnparseable
	}
}

// UnixSeconds renders t as fractional epoch seconds for wire payloads
func UnixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

func fromSeconds(sec float64) (time.Time, error) {
	if math.IsNaN(sec) || math.IsInf(sec, 0) {
		return time.Time{}, ErrUnparseable
	}
	whole, frac := math.Modf(sec)
	return time.Unix(int64(whole), int64(frac*float64(time.Second))).UTC(), nil
}

func parseString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrUnparseable
	}
	if numericLike(s) {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return time.Time{}, ErrUnparseable
		}
		return fromSeconds(f)
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrUnparseable
}

// numericLike matches an optional sign integer or decimal
func numericLike(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '+' || s[0] == '-' {
		i++
	}
	digits, dot := 0, false
	for ; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits++
		case s[i] == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digits > 0
}

// parseObject accepts {seconds} or {milliseconds} shaped values
func parseObject(m map[string]any) (time.Time, error) {
	if v, ok := m["seconds"]; ok {
		if f, ok := asFloat(v); ok {
			return fromSeconds(f)
		}
	}
	if v, ok := m["milliseconds"]; ok {
		if f, ok := asFloat(v); ok {
			return fromSeconds(f / 1000)
		}
	}
	return time.Time{}, ErrUnparseable
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
