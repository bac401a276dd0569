package query

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	smithy "github.com/aws/smithy-marshal"
	"github.com/aws/smithy-marshal/operation"
	smithytesting "github.com/aws/smithy-marshal/testing"
	"github.com/aws/smithy-marshal/traits"
)

var (
	stringSchema    = smithy.NewSchema("smithy.api#String", smithy.ShapeTypeString)
	integerSchema   = smithy.NewSchema("smithy.api#Integer", smithy.ShapeTypeInteger)
	floatSchema     = smithy.NewSchema("smithy.api#Float", smithy.ShapeTypeFloat)
	doubleSchema    = smithy.NewSchema("smithy.api#Double", smithy.ShapeTypeDouble)
	booleanSchema   = smithy.NewSchema("smithy.api#Boolean", smithy.ShapeTypeBoolean)
	timestampSchema = smithy.NewSchema("smithy.api#Timestamp", smithy.ShapeTypeTimestamp)
	blobSchema      = smithy.NewSchema("smithy.api#Blob", smithy.ShapeTypeBlob)
)

var modifySubnetGroupSchema = smithy.NewSchema("com.amazonaws.docdb#ModifyDBSubnetGroupMessage", smithy.ShapeTypeStructure,
	smithy.WithMember("DBSubnetGroupName", stringSchema),
	smithy.WithMember("DBSubnetGroupDescription", stringSchema),
	smithy.WithMember("SubnetIds", smithy.NewSchema("com.amazonaws.docdb#SubnetIdentifierList", smithy.ShapeTypeList,
		smithy.WithMember("member", stringSchema, &traits.XMLName{Name: "SubnetIdentifier"}),
	)),
)

var modifySubnetGroup = &operation.Descriptor{
	Action:     "ModifyDBSubnetGroup",
	HTTPMethod: "POST",
	RequestURI: "/",
	Target:     "AmazonDocDB.ModifyDBSubnetGroup",
}

type modifyDBSubnetGroupInput struct {
	DBSubnetGroupName        *string
	DBSubnetGroupDescription *string
	SubnetIds                []*string
}

func ptr[T any](v T) *T { return &v }

func TestMarshal_ModifyDBSubnetGroup(t *testing.T) {
	cases := map[string]struct {
		Input  *modifyDBSubnetGroupInput
		Expect []Param
	}{
		"list": {
			Input: &modifyDBSubnetGroupInput{
				DBSubnetGroupName: ptr("mygroup"),
				SubnetIds:         []*string{ptr("subnet-1"), ptr("subnet-2")},
			},
			Expect: []Param{
				{"Action", "ModifyDBSubnetGroup"},
				{"Version", "2014-10-31"},
				{"DBSubnetGroupName", "mygroup"},
				{"SubnetIds.SubnetIdentifier.1", "subnet-1"},
				{"SubnetIds.SubnetIdentifier.2", "subnet-2"},
			},
		},
		"empty list": {
			Input: &modifyDBSubnetGroupInput{
				DBSubnetGroupName: ptr("mygroup"),
				SubnetIds:         []*string{},
			},
			Expect: []Param{
				{"Action", "ModifyDBSubnetGroup"},
				{"Version", "2014-10-31"},
				{"DBSubnetGroupName", "mygroup"},
				{"SubnetIds", ""},
			},
		},
		"absent list": {
			Input: &modifyDBSubnetGroupInput{DBSubnetGroupName: ptr("mygroup")},
			Expect: []Param{
				{"Action", "ModifyDBSubnetGroup"},
				{"Version", "2014-10-31"},
				{"DBSubnetGroupName", "mygroup"},
			},
		},
		"nil element keeps its index": {
			Input: &modifyDBSubnetGroupInput{
				SubnetIds: []*string{ptr("subnet-1"), nil, ptr("subnet-3")},
			},
			Expect: []Param{
				{"Action", "ModifyDBSubnetGroup"},
				{"Version", "2014-10-31"},
				{"SubnetIds.SubnetIdentifier.1", "subnet-1"},
				{"SubnetIds.SubnetIdentifier.3", "subnet-3"},
			},
		},
		"empty input": {
			Input: &modifyDBSubnetGroupInput{},
			Expect: []Param{
				{"Action", "ModifyDBSubnetGroup"},
				{"Version", "2014-10-31"},
			},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			req, err := Marshal(modifySubnetGroup, "2014-10-31", modifySubnetGroupSchema, c.Input)
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if diff := cmp.Diff(c.Expect, req.Params); len(diff) != 0 {
				t.Errorf("params mismatch (-expect +actual):\n%s", diff)
			}
			if e, a := "POST", req.Method; e != a {
				t.Errorf("expect method %q, got %q", e, a)
			}
			if _, ok := req.Get("Target"); ok {
				t.Errorf("expect target to be ignored")
			}
		})
	}
}

func TestMarshal_NilInput(t *testing.T) {
	var typed *modifyDBSubnetGroupInput
	for name, in := range map[string]any{"nil": nil, "typed nil": typed} {
		t.Run(name, func(t *testing.T) {
			req, err := Marshal(modifySubnetGroup, "2014-10-31", modifySubnetGroupSchema, in)
			if req != nil {
				t.Errorf("expect no request, got %v", req.Params)
			}
			var e *smithy.InvalidMarshallingInputError
			if !errors.As(err, &e) {
				t.Fatalf("expect InvalidMarshallingInputError, got %v", err)
			}
			if a := e.Operation; a != "ModifyDBSubnetGroup" {
				t.Errorf("expect operation ModifyDBSubnetGroup, got %q", a)
			}
		})
	}
}

func TestMarshal_MissingOperation(t *testing.T) {
	_, err := Marshal(nil, "2014-10-31", modifySubnetGroupSchema, &modifyDBSubnetGroupInput{})
	var e *smithy.MissingOperationError
	if !errors.As(err, &e) {
		t.Fatalf("expect MissingOperationError, got %v", err)
	}
}

func TestMarshal_Shapes(t *testing.T) {
	filter := smithy.NewSchema("com.example#Filter", smithy.ShapeTypeStructure,
		smithy.WithMember("Name", stringSchema),
		smithy.WithMember("Values", smithy.NewSchema("com.example#ValueList", smithy.ShapeTypeList,
			smithy.WithMember("member", stringSchema),
		)),
	)
	s := smithy.NewSchema("com.example#Input", smithy.ShapeTypeStructure,
		smithy.WithMember("Count", integerSchema),
		smithy.WithMember("Ratio", doubleSchema),
		smithy.WithMember("Scale", floatSchema),
		smithy.WithMember("Enabled", booleanSchema),
		smithy.WithMember("Since", timestampSchema),
		smithy.WithMember("Until", timestampSchema, &traits.TimestampFormat{Format: "epoch-seconds"}),
		smithy.WithMember("Data", blobSchema),
		smithy.WithMember("Renamed", stringSchema, &traits.XMLName{Name: "WireName"}),
		smithy.WithMember("Filter", filter),
		smithy.WithMember("Filters", smithy.NewSchema("com.example#FilterList", smithy.ShapeTypeList,
			smithy.WithMember("member", filter, &traits.XMLName{Name: "Filter"}),
		)),
		smithy.WithMember("Flat", smithy.NewSchema("com.example#FlatList", smithy.ShapeTypeList,
			smithy.WithMember("member", stringSchema),
			smithy.WithTraits(&traits.XMLFlattened{}),
		)),
		smithy.WithMember("Attributes", smithy.NewSchema("com.example#Attributes", smithy.ShapeTypeMap,
			smithy.WithMember("key", stringSchema, &traits.XMLName{Name: "Name"}),
			smithy.WithMember("value", stringSchema),
		)),
		smithy.WithMember("Empty", smithy.NewSchema("com.example#EmptyMap", smithy.ShapeTypeMap,
			smithy.WithMember("key", stringSchema),
			smithy.WithMember("value", integerSchema),
		)),
	)

	desc := &operation.Descriptor{Action: "Describe", HTTPMethod: "POST", RequestURI: "/"}
	req, err := Marshal(desc, "2020-01-01", s, map[string]any{
		"Count":   7,
		"Ratio":   math.Inf(1),
		"Scale":   float32(1.1),
		"Enabled": false,
		"Since":   time.Date(2020, 1, 2, 3, 4, 5, 120e6, time.UTC),
		"Until":   time.Unix(1577934245, 0),
		"Data":    []byte("foo"),
		"Renamed": "x",
		"Filter":  map[string]any{"Name": "f"},
		"Filters": []map[string]any{
			{"Name": "a", "Values": []string{"1", "2"}},
			{"Name": "b", "Values": []string{}},
		},
		"Flat":       []string{"p", "q"},
		"Attributes": smithy.Map{{Key: "z", Value: "last"}, {Key: "a", Value: "first"}},
		"Empty":      map[string]int{},
	})
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	expect := []Param{
		{"Action", "Describe"},
		{"Version", "2020-01-01"},
		{"Count", "7"},
		{"Ratio", "Infinity"},
		{"Scale", "1.1"},
		{"Enabled", "false"},
		{"Since", "2020-01-02T03:04:05.12Z"},
		{"Until", "1577934245"},
		{"Data", "Zm9v"},
		{"WireName", "x"},
		{"Filter.Name", "f"},
		{"Filters.Filter.1.Name", "a"},
		{"Filters.Filter.1.Values.member.1", "1"},
		{"Filters.Filter.1.Values.member.2", "2"},
		{"Filters.Filter.2.Name", "b"},
		{"Filters.Filter.2.Values", ""},
		{"Flat.1", "p"},
		{"Flat.2", "q"},
		{"Attributes.entry.1.Name", "z"},
		{"Attributes.entry.1.value", "last"},
		{"Attributes.entry.2.Name", "a"},
		{"Attributes.entry.2.value", "first"},
		{"Empty", ""},
	}
	if diff := cmp.Diff(expect, req.Params); len(diff) != 0 {
		t.Errorf("params mismatch (-expect +actual):\n%s", diff)
	}
}

func TestMarshal_EC2(t *testing.T) {
	s := smithy.NewSchema("com.amazonaws.ec2#DescribeSubnetsRequest", smithy.ShapeTypeStructure,
		smithy.WithMember("subnetIds", smithy.NewSchema("com.amazonaws.ec2#SubnetIdStringList", smithy.ShapeTypeList,
			smithy.WithMember("member", stringSchema, &traits.XMLName{Name: "SubnetId"}),
		), &traits.XMLName{Name: "SubnetId"}),
		smithy.WithMember("dryRun", booleanSchema, &traits.EC2QueryName{Name: "DryRun"}),
		smithy.WithMember("maxResults", integerSchema),
	)

	desc := &operation.Descriptor{Action: "DescribeSubnets", HTTPMethod: "POST", RequestURI: "/"}
	req, err := Marshal(desc, "2016-11-15", s, map[string]any{
		"subnetIds":  []string{"subnet-1", "subnet-2"},
		"dryRun":     true,
		"maxResults": 5,
	}, func(o *Options) {
		o.Protocol = smithy.ProtocolEC2
	})
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	expect := []Param{
		{"Action", "DescribeSubnets"},
		{"Version", "2016-11-15"},
		{"SubnetId.1", "subnet-1"},
		{"SubnetId.2", "subnet-2"},
		{"DryRun", "true"},
		{"MaxResults", "5"},
	}
	if diff := cmp.Diff(expect, req.Params); len(diff) != 0 {
		t.Errorf("params mismatch (-expect +actual):\n%s", diff)
	}
}

func TestMarshal_SerializationError(t *testing.T) {
	req, err := Marshal(modifySubnetGroup, "2014-10-31", modifySubnetGroupSchema, map[string]any{
		"DBSubnetGroupName": 42,
	})
	if req != nil {
		t.Errorf("expect no partial request, got %v", req.Params)
	}
	var e *smithy.SerializationError
	if !errors.As(err, &e) {
		t.Fatalf("expect SerializationError, got %v", err)
	}
}

type node struct {
	Name  *string
	Child *node
}

func TestMarshal_CyclicInput(t *testing.T) {
	var nodeSchema *smithy.Schema
	nodeSchema = smithy.NewSchema("com.example#Node", smithy.ShapeTypeStructure,
		smithy.WithMember("Name", stringSchema),
		smithy.WithMemberRef("Child", func() *smithy.Schema { return nodeSchema }),
	)

	n := &node{Name: ptr("loop")}
	n.Child = n

	desc := &operation.Descriptor{Action: "Walk"}
	req, err := Marshal(desc, "1", nodeSchema, n)
	if req != nil {
		t.Errorf("expect no partial request")
	}
	var e *smithy.InvalidMarshallingInputError
	if !errors.As(err, &e) {
		t.Fatalf("expect InvalidMarshallingInputError, got %v", err)
	}
}

func TestRequest_Encode(t *testing.T) {
	req, err := Marshal(modifySubnetGroup, "2014-10-31", modifySubnetGroupSchema, &modifyDBSubnetGroupInput{
		DBSubnetGroupName:        ptr("mygroup"),
		DBSubnetGroupDescription: ptr("a b&c"),
		SubnetIds:                []*string{ptr("subnet-1")},
	})
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	expect := "Action=ModifyDBSubnetGroup&Version=2014-10-31&DBSubnetGroupName=mygroup" +
		"&DBSubnetGroupDescription=a+b%26c&SubnetIds.SubnetIdentifier.1=subnet-1"
	if e, a := expect, req.Encode(); e != a {
		t.Errorf("expect %q, got %q", e, a)
	}
	smithytesting.AssertURLFormEqual(t, []byte(expect), []byte(req.Encode()))
}
