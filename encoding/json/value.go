package json

import (
	"bytes"
	"encoding/base64"
	"math"
	"strconv"
)

const (
	leftBrace    = '{'
	rightBrace   = '}'
	leftBracket  = '['
	rightBracket = ']'
	comma        = ','
	quote        = '"'
	colon        = ':'
)

// Value represents a JSON Value type
// JSON Value types: Object, Array, String, Number, Boolean, and Null
type Value struct {
	w       *bytes.Buffer
	scratch *[]byte
}

func newValue(w *bytes.Buffer, scratch *[]byte) Value {
	return Value{w: w, scratch: scratch}
}

// String encodes v as a JSON string
func (jv Value) String(v string) {
	escapeStringBytes(jv.w, []byte(v))
}

// Long encodes v as a JSON number
func (jv Value) Long(v int64) {
	*jv.scratch = strconv.AppendInt((*jv.scratch)[:0], v, 10)
	jv.w.Write(*jv.scratch)
}

// Double encodes v as a JSON number. NaN and infinities, which JSON cannot
// represent, are written as the strings "NaN", "Infinity" and "-Infinity".
func (jv Value) Double(v float64) {
	switch {
	case math.IsNaN(v):
		jv.String("NaN")
	case math.IsInf(v, 1):
		jv.String("Infinity")
	case math.IsInf(v, -1):
		jv.String("-Infinity")
	default:
		*jv.scratch = encodeFloat((*jv.scratch)[:0], v, 64)
		jv.w.Write(*jv.scratch)
	}
}

// Float encodes v as a JSON number, formatted at 32-bit precision. NaN and
// infinities are written as strings, as by Double.
func (jv Value) Float(v float32) {
	switch {
	case math.IsNaN(float64(v)) || math.IsInf(float64(v), 0):
		jv.Double(float64(v))
	default:
		*jv.scratch = encodeFloat((*jv.scratch)[:0], float64(v), 32)
		jv.w.Write(*jv.scratch)
	}
}

// Boolean encodes v as a JSON boolean
func (jv Value) Boolean(v bool) {
	*jv.scratch = strconv.AppendBool((*jv.scratch)[:0], v)
	jv.w.Write(*jv.scratch)
}

// Base64EncodeBytes writes v as a base64 value in JSON string
func (jv Value) Base64EncodeBytes(v []byte) {
	jv.w.WriteRune(quote)
	enc := base64.NewEncoder(base64.StdEncoding, jv.w)
	enc.Write(v)
	enc.Close()
	jv.w.WriteRune(quote)
}

// Object returns a new Object encoder
func (jv Value) Object() *Object {
	return newObject(jv.w, jv.scratch)
}

// Array returns a new Array encoder
func (jv Value) Array() *Array {
	return newArray(jv.w, jv.scratch)
}

// Null encodes a null JSON value
func (jv Value) Null() {
	jv.w.WriteString("null")
}

// encodeFloat formats v the way encoding/json does: decimal notation unless
// the exponent is very small or very large.
func encodeFloat(dst []byte, v float64, bits int) []byte {
	abs := math.Abs(v)
	fmt := byte('f')
	if abs != 0 {
		if bits == 64 && (abs < 1e-6 || abs >= 1e21) || bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			fmt = 'e'
		}
	}

	dst = strconv.AppendFloat(dst, v, fmt, -1, bits)

	if fmt == 'e' {
		// clean up e-09 to e-9
		n := len(dst)
		if n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}

	return dst
}
