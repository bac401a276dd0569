package smithy

import (
	"reflect"
	"sort"
)

// MaxDepth bounds the nesting of a marshalled value. Deeper instance graphs,
// cyclic ones included, are rejected with an InvalidMarshallingInputError.
const MaxDepth = 64

// Map is an insertion-ordered value for map shapes. Marshallers visit its
// entries in slice order. Plain Go maps are accepted too and are visited in
// sorted key order.
type Map []MapEntry

// MapEntry is a single key/value pair of a Map.
type MapEntry struct {
	Key   string
	Value any
}

// Indirect dereferences pointers and interfaces and reports whether the
// result is present. nil, nil pointers, nil slices and nil maps are absent.
// A non-nil empty slice or map is present.
func Indirect(v any) (any, bool) {
	if v == nil {
		return nil, false
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		if rv.IsNil() {
			return nil, false
		}
	}
	return rv.Interface(), true
}

// ListElements returns the elements of a slice or array value in order.
func ListElements(v any) ([]any, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	elems := make([]any, rv.Len())
	for i := range elems {
		elems[i] = rv.Index(i).Interface()
	}
	return elems, true
}

// MapEntries returns the entries of a map value. Map keeps its own order; Go
// maps with string keys are returned sorted by key.
func MapEntries(v any) ([]MapEntry, bool) {
	switch vv := v.(type) {
	case Map:
		return vv, true
	case []MapEntry:
		return vv, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	entries := make([]MapEntry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, MapEntry{
			Key:   iter.Key().String(),
			Value: iter.Value().Interface(),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return entries, true
}
