package contacts

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Values is a map-backed Row, keyed by column name. It is also the shape of
// the content values produced by Kind.Values.
type Values map[string]any

var _ Row = Values(nil)

// Int implements Row. Signed and unsigned integers, whole-number floats
// (as produced by encoding/json) and decimal strings are accepted; anything
// else, including values that overflow int, reports absent.
func (v Values) Int(column string) (int, bool) {
	switch typed := v[column].(type) {
	case int:
		return typed, true
	case int8:
		return int(typed), true
	case int16:
		return int(typed), true
	case int32:
		return int(typed), true
	case int64:
		return fromInt64(typed)
	case uint:
		return fromUint64(uint64(typed))
	case uint8:
		return int(typed), true
	case uint16:
		return int(typed), true
	case uint32:
		return fromUint64(uint64(typed))
	case uint64:
		return fromUint64(typed)
	case float32:
		return fromFloat64(float64(typed))
	case float64:
		return fromFloat64(typed)
	case string:
		return parseInt(typed)
	case []byte:
		return parseInt(string(typed))
	default:
		return 0, false
	}
}

// String implements Row. A nil value reports absent.
func (v Values) String(column string) (string, bool) {
	switch typed := v[column].(type) {
	case nil:
		return "", false
	case string:
		return typed, true
	case []byte:
		return string(typed), true
	default:
		return fmt.Sprint(typed), true
	}
}

func parseInt(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}

func fromInt64(n int64) (int, bool) {
	if n < math.MinInt || n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}

func fromUint64(n uint64) (int, bool) {
	if n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}

func fromFloat64(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt || f >= math.MaxInt {
		return 0, false
	}
	return int(f), true
}
