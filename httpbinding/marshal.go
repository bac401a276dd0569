package httpbinding

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	smithy "github.com/aws/smithy-marshal"
	"github.com/aws/smithy-marshal/internal/scalar"
	smithytime "github.com/aws/smithy-marshal/time"
	"github.com/aws/smithy-marshal/traits"
)

// Value is one bound member as it goes on the wire.
//
// Payload values are one of string, int64, float32, float64, bool, []byte,
// []any, *Object or nil. Header and query values are a string, or a []string for
// lists. Query maps are a smithy.Map of strings. URI values are strings.
type Value struct {
	Location Location
	Name     string
	Type     WireType
	Value    any
}

// Object is an encoded structure or map payload value. Members keep the
// order they were encoded in.
type Object struct {
	Members []Member
}

// Member is a single named value of an Object.
type Member struct {
	Name  string
	Value any
}

// Get returns the named member value.
func (o *Object) Get(name string) (any, bool) {
	for _, m := range o.Members {
		if m.Name == name {
			return m.Value, true
		}
	}
	return nil, false
}

// Request is the ordered set of values marshalled from one input.
type Request struct {
	values []Value
}

// Len returns the number of emitted values.
func (r *Request) Len() int {
	return len(r.values)
}

// Values returns the emitted values in binding table order.
func (r *Request) Values() []Value {
	return append([]Value(nil), r.values...)
}

// At returns the emitted values bound to loc, in order.
func (r *Request) At(loc Location) []Value {
	var vs []Value
	for _, v := range r.values {
		if v.Location == loc {
			vs = append(vs, v)
		}
	}
	return vs
}

// Marshal walks table in order and emits a value for every member present on
// in. Absent members are skipped. A nil input is rejected before any binding
// is evaluated. On error no partial request is returned.
func Marshal(in any, table *Table) (*Request, error) {
	v, ok := smithy.Indirect(in)
	if !ok {
		return nil, &smithy.InvalidMarshallingInputError{Reason: "input must not be nil"}
	}

	req := &Request{values: make([]Value, 0, table.Len())}
	for _, b := range table.Bindings() {
		mv, ok := b.Accessor.Get(v)
		if !ok {
			continue
		}

		encoded, err := encodeBinding(b, mv)
		if err != nil {
			return nil, wrapError(b.Name, err)
		}
		req.values = append(req.values, Value{
			Location: b.Location,
			Name:     b.Name,
			Type:     b.Type,
			Value:    encoded,
		})
	}
	return req, nil
}

func wrapError(name string, err error) error {
	var invalid *smithy.InvalidMarshallingInputError
	if errors.As(err, &invalid) {
		return err
	}
	return &smithy.SerializationError{Err: fmt.Errorf("%s: %w", name, err)}
}

func depthError() error {
	return &smithy.InvalidMarshallingInputError{
		Reason: fmt.Sprintf("input exceeds maximum nesting depth of %d", smithy.MaxDepth),
	}
}

func encodeBinding(b Binding, v any) (any, error) {
	switch b.Location {
	case LocationPayload:
		return encodePayload(b.Type, b.Schema, b.TimestampFormat, v, 1)
	case LocationHeader:
		return encodeText(b, v, smithytime.HTTPDate, true)
	case LocationQueryString:
		return encodeText(b, v, smithytime.DateTime, true)
	case LocationURI:
		return encodeText(b, v, smithytime.DateTime, false)
	case LocationStatusCode:
		i, ok := scalar.Int64(v)
		if !ok {
			return nil, fmt.Errorf("expected integer status code, got %T", v)
		}
		return i, nil
	default:
		return nil, fmt.Errorf("unsupported location %v", b.Location)
	}
}

func textKind(t WireType) scalar.Kind {
	switch t {
	case WireInteger, WireLong:
		return scalar.KindInteger
	case WireFloat, WireDouble:
		return scalar.KindFloat
	case WireBoolean:
		return scalar.KindBoolean
	case WireTimestamp:
		return scalar.KindTimestamp
	case WireBlob:
		return scalar.KindBlob
	default:
		return scalar.KindString
	}
}

// encodeText encodes a header, query or URI value. Lists become []string and
// maps a smithy.Map of strings when allowed.
func encodeText(b Binding, v any, defaultFormat string, collections bool) (any, error) {
	format := b.TimestampFormat
	if len(format) == 0 {
		format = defaultFormat
	}

	switch b.Type {
	case WireList:
		elems, ok := smithy.ListElements(v)
		if !collections || !ok {
			return nil, fmt.Errorf("cannot bind %T to %v", v, b.Location)
		}
		k, f := elementText(b.Schema, "member", format)
		out := make([]string, 0, len(elems))
		for _, e := range elems {
			e, ok := smithy.Indirect(e)
			if !ok {
				continue
			}
			s, err := scalar.Text(k, e, f)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil

	case WireMap:
		entries, ok := smithy.MapEntries(v)
		if !collections || !ok {
			return nil, fmt.Errorf("cannot bind %T to %v", v, b.Location)
		}
		k, f := elementText(b.Schema, "value", format)
		out := make(smithy.Map, 0, len(entries))
		for _, e := range entries {
			ev, ok := smithy.Indirect(e.Value)
			if !ok {
				continue
			}
			s, err := scalar.Text(k, ev, f)
			if err != nil {
				return nil, err
			}
			out = append(out, smithy.MapEntry{Key: e.Key, Value: s})
		}
		return out, nil

	case WireStructure, WireDocument:
		return nil, fmt.Errorf("cannot bind %v to %v", b.Type, b.Location)
	}

	return scalar.Text(textKind(b.Type), v, format)
}

func elementText(s *smithy.Schema, member, format string) (scalar.Kind, string) {
	if s == nil {
		return scalar.KindString, format
	}
	m := s.Member(member)
	if m == nil {
		return scalar.KindString, format
	}
	if tf, ok := smithy.SchemaTrait[*traits.TimestampFormat](m); ok {
		format = tf.Format
	}
	return scalar.KindOf(m.Type()), format
}

// encodePayload converts v into a payload tree value. s describes nested
// values for lists, maps and structures; without it they are encoded as
// documents.
func encodePayload(t WireType, s *smithy.Schema, format string, v any, depth int) (any, error) {
	if depth > smithy.MaxDepth {
		return nil, depthError()
	}

	switch t {
	case WireString:
		if str, ok := scalar.String(v); ok {
			return str, nil
		}
	case WireInteger, WireLong:
		if i, ok := scalar.Int64(v); ok {
			return i, nil
		}
	case WireFloat, WireDouble:
		if f, ok := scalar.Float64(v); ok {
			if scalar.FloatBits(v) == 32 {
				return float32(f), nil
			}
			return f, nil
		}
	case WireBoolean:
		if b, ok := scalar.Bool(v); ok {
			return b, nil
		}
	case WireTimestamp:
		return encodeTimestamp(v, format)
	case WireBlob:
		if b, ok := scalar.Bytes(v); ok {
			return b, nil
		}
		if str, ok := scalar.String(v); ok {
			return []byte(str), nil
		}
	case WireList:
		if s == nil {
			return encodeDocument(v, depth)
		}
		return encodeList(s, v, depth)
	case WireMap:
		if s == nil {
			return encodeDocument(v, depth)
		}
		return encodeMap(s, v, depth)
	case WireStructure:
		if s == nil {
			return encodeDocument(v, depth)
		}
		return encodeStructure(s, v, depth)
	case WireDocument:
		return encodeDocument(v, depth)
	}
	return nil, fmt.Errorf("expected %v value, got %T", t, v)
}

func encodeTimestamp(v any, format string) (any, error) {
	if str, ok := scalar.String(v); ok {
		return str, nil
	}
	t, ok := scalar.Time(v)
	if !ok {
		return nil, fmt.Errorf("expected timestamp value, got %T", v)
	}
	if len(format) == 0 || format == smithytime.EpochSeconds {
		return smithytime.FormatEpochSeconds(t), nil
	}
	return smithytime.Format(t, format)
}

func encodeNested(s *smithy.Schema, v any, depth int) (any, error) {
	var format string
	if tf, ok := smithy.SchemaTrait[*traits.TimestampFormat](s); ok {
		format = tf.Format
	}
	var nested *smithy.Schema
	if !smithy.IsScalar(s) {
		nested = s
	}
	return encodePayload(wireTypeOf(s), nested, format, v, depth)
}

func encodeList(s *smithy.Schema, v any, depth int) (any, error) {
	elems, ok := smithy.ListElements(v)
	if !ok {
		return nil, fmt.Errorf("expected list value, got %T", v)
	}
	member := s.Member("member")

	out := make([]any, 0, len(elems))
	for _, e := range elems {
		e, ok := smithy.Indirect(e)
		if !ok {
			continue
		}
		var ev any
		var err error
		if member == nil {
			ev, err = encodeDocument(e, depth+1)
		} else {
			ev, err = encodeNested(member, e, depth+1)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, nil
}

func encodeMap(s *smithy.Schema, v any, depth int) (any, error) {
	entries, ok := smithy.MapEntries(v)
	if !ok {
		return nil, fmt.Errorf("expected map value, got %T", v)
	}
	value := s.Member("value")

	out := &Object{Members: make([]Member, 0, len(entries))}
	for _, e := range entries {
		ev, ok := smithy.Indirect(e.Value)
		if !ok {
			continue
		}
		var enc any
		var err error
		if value == nil {
			enc, err = encodeDocument(ev, depth+1)
		} else {
			enc, err = encodeNested(value, ev, depth+1)
		}
		if err != nil {
			return nil, err
		}
		out.Members = append(out.Members, Member{Name: e.Key, Value: enc})
	}
	return out, nil
}

func encodeStructure(s *smithy.Schema, v any, depth int) (any, error) {
	out := &Object{}
	for _, m := range s.Members() {
		mv, ok := m.Accessor().Get(v)
		if !ok {
			continue
		}
		enc, err := encodeNested(m, mv, depth+1)
		if err != nil {
			return nil, err
		}
		out.Members = append(out.Members, Member{Name: payloadName(m), Value: enc})
	}
	return out, nil
}

// encodeDocument encodes an untyped value by its Go kind. Struct fields are
// named by their Go field name.
func encodeDocument(v any, depth int) (any, error) {
	if depth > smithy.MaxDepth {
		return nil, depthError()
	}

	v, ok := smithy.Indirect(v)
	if !ok {
		return nil, nil
	}

	switch vv := v.(type) {
	case time.Time:
		return smithytime.FormatEpochSeconds(vv), nil
	case smithy.Map:
		return encodeDocumentEntries(vv, depth)
	case []smithy.MapEntry:
		return encodeDocumentEntries(vv, depth)
	}
	if b, ok := scalar.Bytes(v); ok {
		return b, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if i, ok := scalar.Int64(v); ok {
			return i, nil
		}
	case reflect.Float32:
		return float32(rv.Float()), nil
	case reflect.Float64:
		return rv.Float(), nil
	case reflect.Slice, reflect.Array:
		elems, _ := smithy.ListElements(v)
		out := make([]any, 0, len(elems))
		for _, e := range elems {
			enc, err := encodeDocument(e, depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, enc)
		}
		return out, nil
	case reflect.Map:
		if entries, ok := smithy.MapEntries(v); ok {
			return encodeDocumentEntries(entries, depth)
		}
	case reflect.Struct:
		out := &Object{}
		rt := rv.Type()
		for i := 0; i < rt.NumField(); i++ {
			f := rt.Field(i)
			if !f.IsExported() {
				continue
			}
			fv, ok := smithy.Indirect(rv.Field(i).Interface())
			if !ok {
				continue
			}
			enc, err := encodeDocument(fv, depth+1)
			if err != nil {
				return nil, err
			}
			out.Members = append(out.Members, Member{Name: f.Name, Value: enc})
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported document value %T", v)
}

func encodeDocumentEntries(entries []smithy.MapEntry, depth int) (any, error) {
	out := &Object{Members: make([]Member, 0, len(entries))}
	for _, e := range entries {
		enc, err := encodeDocument(e.Value, depth+1)
		if err != nil {
			return nil, err
		}
		out.Members = append(out.Members, Member{Name: e.Key, Value: enc})
	}
	return out, nil
}
