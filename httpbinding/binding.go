// Package httpbinding implements binding-table request marshalling for
// JSON-family protocols. A shape's members are described once by an ordered
// table of bindings, each naming the wire location, wire name and encoding
// of one member. Marshalling walks the table and emits the present members.
package httpbinding

import (
	"fmt"

	smithy "github.com/aws/smithy-marshal"
	"github.com/aws/smithy-marshal/traits"
)

// Location is where a bound value is placed in an HTTP request.
type Location int

// Enumerates Location.
const (
	LocationPayload Location = iota
	LocationHeader
	LocationQueryString
	LocationURI
	LocationStatusCode
)

func (l Location) String() string {
	switch l {
	case LocationPayload:
		return "Payload"
	case LocationHeader:
		return "Header"
	case LocationQueryString:
		return "QueryString"
	case LocationURI:
		return "Uri"
	case LocationStatusCode:
		return "StatusCode"
	default:
		return fmt.Sprintf("Location(%d)", int(l))
	}
}

// WireType selects the encoder used for a bound value.
type WireType int

// Enumerates WireType.
const (
	WireString WireType = iota + 1
	WireInteger
	WireLong
	WireFloat
	WireDouble
	WireBoolean
	WireTimestamp
	WireBlob
	WireList
	WireMap
	WireStructure
	WireDocument
)

var wireTypeNames = map[WireType]string{
	WireString:    "string",
	WireInteger:   "integer",
	WireLong:      "long",
	WireFloat:     "float",
	WireDouble:    "double",
	WireBoolean:   "boolean",
	WireTimestamp: "timestamp",
	WireBlob:      "blob",
	WireList:      "list",
	WireMap:       "map",
	WireStructure: "structure",
	WireDocument:  "document",
}

func (t WireType) String() string {
	if n, ok := wireTypeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("WireType(%d)", int(t))
}

// Binding maps one structure member to its place on the wire.
type Binding struct {
	Type     WireType
	Location Location

	// Name is the wire name: the JSON key, header name, query key or URI
	// label.
	Name string

	Accessor smithy.Accessor

	// Schema is the member schema for list, map and structure wire types.
	// Nested values are encoded by walking it.
	Schema *smithy.Schema

	// TimestampFormat overrides the location's default timestamp format.
	TimestampFormat string
}

// Bind returns a binding that reads the named member. The wire name defaults
// to the member name.
func Bind(member string, typ WireType, loc Location, name string) Binding {
	if len(name) == 0 {
		name = member
	}
	return Binding{
		Type:     typ,
		Location: loc,
		Name:     name,
		Accessor: smithy.NewAccessor(member),
	}
}

// WithSchema returns a copy of b encoding nested values with s.
func (b Binding) WithSchema(s *smithy.Schema) Binding {
	b.Schema = s
	return b
}

// WithTimestampFormat returns a copy of b using the given timestamp format.
func (b Binding) WithTimestampFormat(format string) Binding {
	b.TimestampFormat = format
	return b
}

// Table is the ordered, immutable list of bindings for one shape. Tables are
// built once, typically as package variables of generated code, and shared
// by every marshalling call.
type Table struct {
	bindings []Binding
}

// NewTable returns a table of the given bindings, in order.
func NewTable(bindings ...Binding) *Table {
	return &Table{bindings: append([]Binding(nil), bindings...)}
}

// Len returns the number of bindings in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.bindings)
}

// Bindings returns a copy of the table's bindings.
func (t *Table) Bindings() []Binding {
	if t == nil {
		return nil
	}
	return append([]Binding(nil), t.bindings...)
}

// TableOf derives the binding table of a structure schema from its members'
// HTTP binding traits. Members without one are bound to the payload under
// their jsonName, or member name.
func TableOf(s *smithy.Schema) *Table {
	members := s.Members()
	bindings := make([]Binding, 0, len(members))
	for _, m := range members {
		b := Binding{
			Type:     wireTypeOf(m),
			Location: LocationPayload,
			Name:     payloadName(m),
			Accessor: m.Accessor(),
		}
		if !smithy.IsScalar(m) {
			b.Schema = m
		}
		if tf, ok := smithy.SchemaTrait[*traits.TimestampFormat](m); ok {
			b.TimestampFormat = tf.Format
		}

		if h, ok := smithy.SchemaTrait[*traits.HTTPHeader](m); ok {
			b.Location, b.Name = LocationHeader, h.Name
		} else if q, ok := smithy.SchemaTrait[*traits.HTTPQuery](m); ok {
			b.Location, b.Name = LocationQueryString, q.Name
		} else if l, ok := smithy.SchemaTrait[*traits.HTTPLabel](m); ok {
			b.Location = LocationURI
			if len(l.Name) != 0 {
				b.Name = l.Name
			} else {
				b.Name = m.MemberName()
			}
		} else if smithy.HasTrait[*traits.HTTPResponseCode](m) {
			b.Location = LocationStatusCode
		}

		bindings = append(bindings, b)
	}
	return &Table{bindings: bindings}
}

func payloadName(m *smithy.Schema) string {
	if n, ok := smithy.SchemaTrait[*traits.JSONName](m); ok && len(n.Name) != 0 {
		return n.Name
	}
	return m.MemberName()
}

func wireTypeOf(s *smithy.Schema) WireType {
	switch s.Type() {
	case smithy.ShapeTypeBlob:
		return WireBlob
	case smithy.ShapeTypeBoolean:
		return WireBoolean
	case smithy.ShapeTypeTimestamp:
		return WireTimestamp
	case smithy.ShapeTypeByte, smithy.ShapeTypeShort, smithy.ShapeTypeInteger, smithy.ShapeTypeIntEnum:
		return WireInteger
	case smithy.ShapeTypeLong, smithy.ShapeTypeBigInteger:
		return WireLong
	case smithy.ShapeTypeFloat:
		return WireFloat
	case smithy.ShapeTypeDouble, smithy.ShapeTypeBigDecimal:
		return WireDouble
	case smithy.ShapeTypeList, smithy.ShapeTypeSet:
		return WireList
	case smithy.ShapeTypeMap:
		return WireMap
	case smithy.ShapeTypeStructure, smithy.ShapeTypeUnion:
		return WireStructure
	case smithy.ShapeTypeDocument:
		return WireDocument
	default:
		return WireString
	}
}
