package httpbinding

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	smithy "github.com/aws/smithy-marshal"
	"github.com/aws/smithy-marshal/traits"
)

type listArtifactsInput struct {
	SessionArn *string
	Type       *string
	MaxResult  *int32
	NextToken  *string
}

var listArtifactsTable = NewTable(
	Bind("sessionArn", WireString, LocationPayload, ""),
	Bind("type", WireString, LocationPayload, ""),
	Bind("maxResult", WireInteger, LocationPayload, ""),
	Bind("nextToken", WireString, LocationPayload, ""),
)

func ptr[T any](v T) *T { return &v }

func TestMarshal(t *testing.T) {
	cases := map[string]struct {
		Input  any
		Table  *Table
		Expect []Value
	}{
		"absent members skipped": {
			Input: &listArtifactsInput{SessionArn: ptr("arn:x"), MaxResult: ptr(int32(10))},
			Table: listArtifactsTable,
			Expect: []Value{
				{Location: LocationPayload, Name: "sessionArn", Type: WireString, Value: "arn:x"},
				{Location: LocationPayload, Name: "maxResult", Type: WireInteger, Value: int64(10)},
			},
		},
		"all absent": {
			Input: &listArtifactsInput{},
			Table: listArtifactsTable,
		},
		"value input": {
			Input: listArtifactsInput{Type: ptr("VIDEO")},
			Table: listArtifactsTable,
			Expect: []Value{
				{Location: LocationPayload, Name: "type", Type: WireString, Value: "VIDEO"},
			},
		},
		"map input": {
			Input: map[string]any{"nextToken": "abc", "maxResult": 3},
			Table: listArtifactsTable,
			Expect: []Value{
				{Location: LocationPayload, Name: "maxResult", Type: WireInteger, Value: int64(3)},
				{Location: LocationPayload, Name: "nextToken", Type: WireString, Value: "abc"},
			},
		},
		"http locations": {
			Input: map[string]any{
				"bucket":   "my bucket",
				"since":    time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC),
				"ids":      []*string{ptr("a"), nil, ptr("b")},
				"modified": time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC),
			},
			Table: NewTable(
				Bind("bucket", WireString, LocationURI, "Bucket"),
				Bind("since", WireTimestamp, LocationQueryString, "since"),
				Bind("ids", WireList, LocationQueryString, "id"),
				Bind("modified", WireTimestamp, LocationHeader, "If-Modified-Since"),
			),
			Expect: []Value{
				{Location: LocationURI, Name: "Bucket", Type: WireString, Value: "my bucket"},
				{Location: LocationQueryString, Name: "since", Type: WireTimestamp, Value: "2020-01-02T03:04:05Z"},
				{Location: LocationQueryString, Name: "id", Type: WireList, Value: []string{"a", "b"}},
				{Location: LocationHeader, Name: "If-Modified-Since", Type: WireTimestamp, Value: "Thu, 02 Jan 2020 03:04:05 GMT"},
			},
		},
		"timestamp format override": {
			Input: map[string]any{"at": time.Unix(1577934245, 0)},
			Table: NewTable(
				Bind("at", WireTimestamp, LocationPayload, "").WithTimestampFormat("date-time"),
			),
			Expect: []Value{
				{Location: LocationPayload, Name: "at", Type: WireTimestamp, Value: "2020-01-02T03:04:05Z"},
			},
		},
		"empty table": {
			Input: &listArtifactsInput{SessionArn: ptr("arn:x")},
			Table: NewTable(),
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			req, err := Marshal(c.Input, c.Table)
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if e, a := len(c.Expect), req.Len(); e != a {
				t.Errorf("expect %d values, got %d", e, a)
			}
			if diff := cmp.Diff(c.Expect, req.Values()); len(diff) != 0 {
				t.Errorf("values mismatch (-expect +actual):\n%s", diff)
			}
		})
	}
}

func TestMarshal_NilInput(t *testing.T) {
	var typed *listArtifactsInput
	for name, in := range map[string]any{"nil": nil, "typed nil": typed} {
		t.Run(name, func(t *testing.T) {
			req, err := Marshal(in, listArtifactsTable)
			if req != nil {
				t.Errorf("expect no request, got %v", req.Values())
			}
			var e *smithy.InvalidMarshallingInputError
			if !errors.As(err, &e) {
				t.Fatalf("expect InvalidMarshallingInputError, got %v", err)
			}
		})
	}
}

func TestMarshal_SerializationError(t *testing.T) {
	req, err := Marshal(map[string]any{"sessionArn": 12}, listArtifactsTable)
	if req != nil {
		t.Errorf("expect no partial request, got %v", req.Values())
	}
	var e *smithy.SerializationError
	if !errors.As(err, &e) {
		t.Fatalf("expect SerializationError, got %v", err)
	}
}

type node struct {
	Value *string
	Next  *node
}

func TestMarshal_CyclicInput(t *testing.T) {
	var nodeSchema *smithy.Schema
	nodeSchema = smithy.NewSchema("com.example#Node", smithy.ShapeTypeStructure,
		smithy.WithMember("Value", smithy.NewSchema("smithy.api#String", smithy.ShapeTypeString)),
		smithy.WithMemberRef("Next", func() *smithy.Schema { return nodeSchema }),
	)
	input := smithy.NewSchema("com.example#Input", smithy.ShapeTypeStructure,
		smithy.WithMember("Head", nodeSchema),
	)

	n := &node{Value: ptr("loop")}
	n.Next = n

	req, err := Marshal(map[string]any{"Head": n}, TableOf(input))
	if req != nil {
		t.Errorf("expect no partial request")
	}
	var e *smithy.InvalidMarshallingInputError
	if !errors.As(err, &e) {
		t.Fatalf("expect InvalidMarshallingInputError, got %v", err)
	}
}

func TestMarshal_Payload(t *testing.T) {
	str := smithy.NewSchema("smithy.api#String", smithy.ShapeTypeString)
	integer := smithy.NewSchema("smithy.api#Integer", smithy.ShapeTypeInteger)
	item := smithy.NewSchema("com.example#Item", smithy.ShapeTypeStructure,
		smithy.WithMember("id", integer),
		smithy.WithMember("label", str, &traits.JSONName{Name: "Label"}),
	)
	input := smithy.NewSchema("com.example#PutInput", smithy.ShapeTypeStructure,
		smithy.WithMember("name", str),
		smithy.WithMember("tags", smithy.NewSchema("com.example#Tags", smithy.ShapeTypeMap,
			smithy.WithMember("key", str),
			smithy.WithMember("value", str),
		)),
		smithy.WithMember("items", smithy.NewSchema("com.example#Items", smithy.ShapeTypeList,
			smithy.WithMember("member", item),
		)),
		smithy.WithMember("created", smithy.NewSchema("smithy.api#Timestamp", smithy.ShapeTypeTimestamp)),
		smithy.WithMember("data", smithy.NewSchema("smithy.api#Blob", smithy.ShapeTypeBlob)),
		smithy.WithMember("ratio", smithy.NewSchema("smithy.api#Float", smithy.ShapeTypeFloat)),
		smithy.WithMember("weight", smithy.NewSchema("smithy.api#Double", smithy.ShapeTypeDouble)),
		smithy.WithMember("token", str, &traits.HTTPHeader{Name: "X-Token"}),
	)

	ratio := float32(1.1)
	req, err := Marshal(map[string]any{
		"name":    "x",
		"tags":    map[string]string{"b": "2", "a": "1"},
		"items":   []map[string]any{{"id": 1, "label": "one"}, {"id": 2}},
		"created": time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC),
		"data":    []byte("foo"),
		"ratio":   &ratio,
		"weight":  1.1,
		"token":   "secret",
	}, TableOf(input))
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	expect := `{"name":"x","tags":{"a":"1","b":"2"},"items":[{"id":1,"Label":"one"},{"id":2}],"created":1577934245,"data":"Zm9v","ratio":1.1,"weight":1.1}`
	if e, a := expect, string(req.Payload()); e != a {
		t.Errorf("expect %s, got %s", e, a)
	}

	headers := req.At(LocationHeader)
	if e, a := 1, len(headers); e != a {
		t.Fatalf("expect %d header, got %d", e, a)
	}
	if e, a := "X-Token", headers[0].Name; e != a {
		t.Errorf("expect %q, got %q", e, a)
	}
}

func TestMarshal_Document(t *testing.T) {
	type inner struct {
		Count int
		Skip  *string
	}

	req, err := Marshal(map[string]any{
		"doc": map[string]any{"z": []any{true, 1.5, nil, float32(0.3)}, "a": inner{Count: 2}},
	}, NewTable(Bind("doc", WireDocument, LocationPayload, "")))
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	expect := `{"doc":{"a":{"Count":2},"z":[true,1.5,null,0.3]}}`
	if e, a := expect, string(req.Payload()); e != a {
		t.Errorf("expect %s, got %s", e, a)
	}
}

func TestTableOf(t *testing.T) {
	str := smithy.NewSchema("smithy.api#String", smithy.ShapeTypeString)
	list := smithy.NewSchema("com.example#Ids", smithy.ShapeTypeList, smithy.WithMember("member", str))
	input := smithy.NewSchema("com.example#GetInput", smithy.ShapeTypeStructure,
		smithy.WithMember("Bucket", str, &traits.HTTPLabel{}),
		smithy.WithMember("Key", str, &traits.HTTPLabel{Name: "ObjectKey"}),
		smithy.WithMember("Range", str, &traits.HTTPHeader{Name: "Range"}),
		smithy.WithMember("Ids", list, &traits.HTTPQuery{Name: "id"}),
		smithy.WithMember("Body", str, &traits.JSONName{Name: "body"}),
		smithy.WithMember("At", smithy.NewSchema("smithy.api#Timestamp", smithy.ShapeTypeTimestamp),
			&traits.TimestampFormat{Format: "http-date"}),
	)

	type summary struct {
		Name     string
		Location Location
		Type     WireType
		Format   string
		Nested   bool
	}
	var actual []summary
	for _, b := range TableOf(input).Bindings() {
		actual = append(actual, summary{b.Name, b.Location, b.Type, b.TimestampFormat, b.Schema != nil})
	}

	expect := []summary{
		{"Bucket", LocationURI, WireString, "", false},
		{"ObjectKey", LocationURI, WireString, "", false},
		{"Range", LocationHeader, WireString, "", false},
		{"id", LocationQueryString, WireList, "", true},
		{"body", LocationPayload, WireString, "", false},
		{"At", LocationPayload, WireTimestamp, "http-date", false},
	}
	if diff := cmp.Diff(expect, actual); len(diff) != 0 {
		t.Errorf("bindings mismatch (-expect +actual):\n%s", diff)
	}
}

func TestRegistry(t *testing.T) {
	str := smithy.NewSchema("smithy.api#String", smithy.ShapeTypeString)
	a := smithy.NewSchema("com.example#A", smithy.ShapeTypeStructure, smithy.WithMember("x", str))
	b := smithy.NewSchema("com.example#B", smithy.ShapeTypeStructure)

	r := NewRegistry(a, b)
	if e, a := 2, r.Len(); e != a {
		t.Errorf("expect %d tables, got %d", e, a)
	}

	table, ok := r.Table(a.ID())
	if !ok {
		t.Fatalf("expect table for %v", a.ID())
	}
	if e, a := 1, table.Len(); e != a {
		t.Errorf("expect %d bindings, got %d", e, a)
	}

	if _, ok := r.Table(smithy.ShapeID{Namespace: "com.example", Name: "C"}); ok {
		t.Errorf("expect no table for unknown shape")
	}

	var nilRegistry *Registry
	if _, ok := nilRegistry.Table(a.ID()); ok {
		t.Errorf("expect nil registry to have no tables")
	}
}

func TestLocationString(t *testing.T) {
	cases := map[Location]string{
		LocationPayload:     "Payload",
		LocationHeader:      "Header",
		LocationQueryString: "QueryString",
		LocationURI:         "Uri",
		LocationStatusCode:  "StatusCode",
		Location(42):        "Location(42)",
	}
	for l, expect := range cases {
		if a := l.String(); expect != a {
			t.Errorf("expect %q, got %q", expect, a)
		}
	}
}
