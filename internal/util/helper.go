package util

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrNotInteger is returned by ToInt when a value can't be represented as an int.
var ErrNotInteger = errors.New("value is not an integer")

// CloneSlice clones slice with cloneSize.
// This function will use src length as the clone size if cloneSize is 0.
func CloneSlice[T any](src []T, cloneSize int) []T {
	if cloneSize == 0 {
		cloneSize = len(src)
	}
	clone := make([]T, cloneSize)
	copy(clone, src)

	return clone
}

// ToInt converts a loosely typed value into an int.
//
// Supported types:
//   - Signed integers: int, int8, int16, int32, int64
//   - Unsigned integers: uint, uint8, uint16, uint32, uint64 (must fit in int)
//   - Floats: float32, float64 (must hold a whole number, as produced by YAML/JSON decoders)
//   - Strings holding a base-10 integer, surrounding spaces are ignored
//
// ErrNotInteger is returned for every other value.
func ToInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return intFromInt64(v)
	case uint:
		return intFromUint64(uint64(v))
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return intFromUint64(uint64(v))
	case uint64:
		return intFromUint64(v)
	case float32:
		return intFromFloat64(float64(v))
	case float64:
		return intFromFloat64(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, ErrNotInteger
		}
		return n, nil
	}

	return 0, ErrNotInteger
}

// IsIntegerString reports whether s holds a base-10 integer.
func IsIntegerString(s string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil
}

func intFromInt64(v int64) (int, error) {
	if v < math.MinInt || v > math.MaxInt {
		return 0, ErrNotInteger
	}
	return int(v), nil
}

func intFromUint64(v uint64) (int, error) {
	if v > math.MaxInt {
		return 0, ErrNotInteger
	}
	return int(v), nil
}

func intFromFloat64(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, ErrNotInteger
	}
	if v < math.MinInt64 || v >= math.MaxInt64 {
		return 0, ErrNotInteger
	}
	return intFromInt64(int64(v))
}
