package clock

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// CoerceInt64 normalizes a caller-supplied value into an int64. Tool inputs
// arrive as native integers, JSON numbers, or strings of decimal digits;
// everything downstream operates on the normalized integer only. A value of
// any other shape, a fractional number, or an unparseable string fails with
// an InvalidArgumentError naming the field.
func CoerceInt64(field string, v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		if n != math.Trunc(n) {
			return 0, &InvalidArgumentError{Field: field, Value: v}
		}
		return int64(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, &InvalidArgumentError{Field: field, Value: v}
		}
		return i, nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, &InvalidArgumentError{Field: field, Value: v}
		}
		return i, nil
	}
	return 0, &InvalidArgumentError{Field: field, Value: v}
}
