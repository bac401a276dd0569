// Package scalar converts in-code scalar values to the types and text forms
// protocols put on the wire.
package scalar

import (
	"encoding/base64"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"

	smithy "github.com/aws/smithy-marshal"
	smithytime "github.com/aws/smithy-marshal/time"
)

// Kind is the encoding family of a scalar.
type Kind int

// Enumerates Kind.
const (
	KindString Kind = iota
	KindInteger
	KindFloat
	KindBoolean
	KindTimestamp
	KindBlob
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindTimestamp:
		return "timestamp"
	case KindBlob:
		return "blob"
	default:
		return "string"
	}
}

// KindOf returns the scalar kind of a shape type. Non-scalar types report
// KindString.
func KindOf(t smithy.ShapeType) Kind {
	switch t {
	case smithy.ShapeTypeByte, smithy.ShapeTypeShort, smithy.ShapeTypeInteger,
		smithy.ShapeTypeLong, smithy.ShapeTypeBigInteger, smithy.ShapeTypeIntEnum:
		return KindInteger
	case smithy.ShapeTypeFloat, smithy.ShapeTypeDouble, smithy.ShapeTypeBigDecimal:
		return KindFloat
	case smithy.ShapeTypeBoolean:
		return KindBoolean
	case smithy.ShapeTypeTimestamp:
		return KindTimestamp
	case smithy.ShapeTypeBlob:
		return KindBlob
	default:
		return KindString
	}
}

// String returns v as a string if it is of a string kind, which includes
// named enum types.
func String(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

// Int64 returns v as an int64 if it is an integer, or a float with no
// fractional part.
func Int64(v any) (int64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
			return 0, false
		}
		return int64(f), true
	}
	return 0, false
}

// Float64 returns v as a float64 if it is any numeric kind.
func Float64(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	}
	return 0, false
}

// Bool returns v as a bool if it is of a bool kind.
func Bool(v any) (bool, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Bool {
		return false, false
	}
	return rv.Bool(), true
}

// Time returns v as a time.Time. Numbers are read as epoch seconds.
func Time(v any) (time.Time, bool) {
	if t, ok := v.(time.Time); ok {
		return t, true
	}
	if f, ok := Float64(v); ok {
		sec, frac := math.Modf(f)
		return time.Unix(int64(sec), int64(frac*1e9)).UTC(), true
	}
	return time.Time{}, false
}

// Bytes returns v as a byte slice if it is one.
func Bytes(v any) ([]byte, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || rv.Type().Elem().Kind() != reflect.Uint8 {
		return nil, false
	}
	return rv.Bytes(), true
}

// FloatBits returns 32 if v is of a float32 kind, and 64 otherwise.
func FloatBits(v any) int {
	if reflect.ValueOf(v).Kind() == reflect.Float32 {
		return 32
	}
	return 64
}

// FormatFloat formats v in the shortest decimal representation that round
// trips at the given bit size. NaN and infinities are written as NaN,
// Infinity and -Infinity.
func FormatFloat(v float64, bits int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'f', -1, bits)
}

// Text encodes v as text per kind. Timestamps use tsFormat; a string given
// for a timestamp is taken as already formatted.
func Text(k Kind, v any, tsFormat string) (string, error) {
	switch k {
	case KindString:
		if s, ok := String(v); ok {
			return s, nil
		}
	case KindInteger:
		if i, ok := Int64(v); ok {
			return strconv.FormatInt(i, 10), nil
		}
	case KindFloat:
		if f, ok := Float64(v); ok {
			return FormatFloat(f, FloatBits(v)), nil
		}
	case KindBoolean:
		if b, ok := Bool(v); ok {
			return strconv.FormatBool(b), nil
		}
	case KindTimestamp:
		if s, ok := String(v); ok {
			return s, nil
		}
		if t, ok := Time(v); ok {
			return smithytime.Format(t, tsFormat)
		}
	case KindBlob:
		if b, ok := Bytes(v); ok {
			return base64.StdEncoding.EncodeToString(b), nil
		}
		if s, ok := String(v); ok {
			return base64.StdEncoding.EncodeToString([]byte(s)), nil
		}
	}
	return "", fmt.Errorf("expected %s value, got %T", k, v)
}
