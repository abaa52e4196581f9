package utils

import (
	"fmt"
	"strconv"
)

// ToString converts various types to string. nil becomes the empty string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		// JSON numbers decode as float64; render integral values without
		// a trailing ".0" so SKUs survive the round trip.
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToIntDefault converts various types to int, falling back to def when the
// value is absent, non-numeric or zero. Device input is noisy; a missing or
// unparseable quantity means "one unit", never a rejected sync.
func ToIntDefault(val any, def int) int {
	n, ok := toInt(val)
	if !ok || n == 0 {
		return def
	}
	return n
}

func toInt(val any) (int, bool) {
	switch v := val.(type) {
	case nil:
		return 0, false
	case int:
		return v, true
	case int64:
		return int(v), true
	case int32:
		return int(v), true
	case uint:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		return int(v), true
	case float32:
		return int(v), true
	case string:
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return i, true
	case []byte:
		i, err := strconv.Atoi(string(v))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		i, err := strconv.Atoi(fmt.Sprintf("%v", v))
		if err != nil {
			return 0, false
		}
		return i, true
	}
}

// Truncate limits s to at most n bytes.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
