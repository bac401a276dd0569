package smithy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type accessorInput struct {
	Name   *string
	Count  int32
	Tags   []string
	Attrs  map[string]string
	Nested *accessorInput
}

func TestAccessor(t *testing.T) {
	name := "mygroup"
	in := &accessorInput{
		Name:  &name,
		Count: 3,
		Tags:  []string{},
	}

	cases := map[string]struct {
		Input   any
		Member  string
		Expect  any
		Present bool
	}{
		"pointer field":     {in, "Name", "mygroup", true},
		"lower-case member": {in, "name", "mygroup", true},
		"value field":       {in, "Count", int32(3), true},
		"empty slice":       {in, "Tags", []string{}, true},
		"nil map":           {in, "Attrs", nil, false},
		"nil pointer":       {in, "Nested", nil, false},
		"unknown field":     {in, "Missing", nil, false},
		"struct value":      {*in, "Count", int32(3), true},
		"map input":         {map[string]any{"a": "b"}, "a", "b", true},
		"map input missing": {map[string]any{"a": "b"}, "b", nil, false},
		"map input nil":     {map[string]any{"a": nil}, "a", nil, false},
		"nil input":         {nil, "Name", nil, false},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			actual, ok := NewAccessor(c.Member).Get(c.Input)
			if e, a := c.Present, ok; e != a {
				t.Fatalf("expect present %v, got %v", e, a)
			}
			if diff := cmp.Diff(c.Expect, actual); len(diff) != 0 {
				t.Errorf("value mismatch (-expect +actual):\n%s", diff)
			}
		})
	}
}

func TestMapEntries(t *testing.T) {
	ordered := Map{{"b", 1}, {"a", 2}}
	actual, ok := MapEntries(ordered)
	if !ok {
		t.Fatalf("expect map entries")
	}
	if diff := cmp.Diff([]MapEntry(ordered), actual); len(diff) != 0 {
		t.Errorf("expect insertion order kept (-expect +actual):\n%s", diff)
	}

	actual, ok = MapEntries(map[string]int{"b": 1, "a": 2, "c": 3})
	if !ok {
		t.Fatalf("expect map entries")
	}
	expect := []MapEntry{{"a", 2}, {"b", 1}, {"c", 3}}
	if diff := cmp.Diff(expect, actual); len(diff) != 0 {
		t.Errorf("expect sorted keys (-expect +actual):\n%s", diff)
	}

	if _, ok := MapEntries(map[int]string{1: "a"}); ok {
		t.Errorf("expect non-string keys to be rejected")
	}
	if _, ok := MapEntries("abc"); ok {
		t.Errorf("expect non-map to be rejected")
	}
}

func TestListElements(t *testing.T) {
	actual, ok := ListElements([]string{"a", "b"})
	if !ok {
		t.Fatalf("expect list elements")
	}
	if diff := cmp.Diff([]any{"a", "b"}, actual); len(diff) != 0 {
		t.Errorf("list mismatch (-expect +actual):\n%s", diff)
	}

	if _, ok := ListElements(map[string]string{}); ok {
		t.Errorf("expect map to be rejected")
	}
}
