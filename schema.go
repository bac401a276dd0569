package smithy

import (
	"strings"
	"sync"
)

// ShapeType is a type of Smithy shape.
// See https://smithy.io/2.0/spec/idl.html#defining-shapes.
type ShapeType int

// Enumerates ShapeType per the Smithy IDL.
const (
	ShapeTypeBlob ShapeType = iota
	ShapeTypeBoolean
	ShapeTypeString
	ShapeTypeTimestamp
	ShapeTypeByte
	ShapeTypeShort
	ShapeTypeInteger
	ShapeTypeLong
	ShapeTypeFloat
	ShapeTypeDocument
	ShapeTypeDouble
	ShapeTypeBigDecimal
	ShapeTypeBigInteger
	ShapeTypeEnum
	ShapeTypeIntEnum
	ShapeTypeList
	ShapeTypeSet
	ShapeTypeMap
	ShapeTypeStructure
	ShapeTypeUnion
)

var shapeTypeNames = [...]string{
	ShapeTypeBlob:       "blob",
	ShapeTypeBoolean:    "boolean",
	ShapeTypeString:     "string",
	ShapeTypeTimestamp:  "timestamp",
	ShapeTypeByte:       "byte",
	ShapeTypeShort:      "short",
	ShapeTypeInteger:    "integer",
	ShapeTypeLong:       "long",
	ShapeTypeFloat:      "float",
	ShapeTypeDocument:   "document",
	ShapeTypeDouble:     "double",
	ShapeTypeBigDecimal: "bigDecimal",
	ShapeTypeBigInteger: "bigInteger",
	ShapeTypeEnum:       "enum",
	ShapeTypeIntEnum:    "intEnum",
	ShapeTypeList:       "list",
	ShapeTypeSet:        "set",
	ShapeTypeMap:        "map",
	ShapeTypeStructure:  "structure",
	ShapeTypeUnion:      "union",
}

func (t ShapeType) String() string {
	if t < 0 || int(t) >= len(shapeTypeNames) {
		return "unknown"
	}
	return shapeTypeNames[t]
}

// ShapeID fields of a Smithy shape ID.
type ShapeID struct {
	Namespace, Name, Member string
}

func stoid(s string) ShapeID {
	ns, n, _ := strings.Cut(s, "#")
	n, m, _ := strings.Cut(n, "$")
	return ShapeID{ns, n, m}
}

// String returns the absolute shape ID, e.g. com.example#Shape$member.
func (id ShapeID) String() string {
	s := id.Name
	if len(id.Namespace) != 0 {
		s = id.Namespace + "#" + s
	}
	if len(id.Member) != 0 {
		s += "$" + id.Member
	}
	return s
}

// Schema encodes information about a shape from a Smithy model.
//
// Generated clients use schemas at runtime to marshal requests for whichever
// protocol the service speaks. A Schema is immutable once constructed and is
// safe for concurrent use.
type Schema struct {
	id  ShapeID
	typ ShapeType

	members *memberSet
	traits  map[string]Trait // trait ID -> trait

	// set on member schemas only
	accessor Accessor

	// lazily resolved member target, see WithMemberRef
	ref       func() *Schema
	refTraits []Trait
	once      sync.Once
}

type memberSet struct {
	byName map[string]*Schema
	order  []*Schema
}

// SchemaOptions configures a new Schema.
type SchemaOptions struct {
	members []*Schema
	traits  []Trait
}

// WithMember adds a member targeting the given Schema.
//
// Traits provided for the member here override any traits on the target if
// there is collision.
func WithMember(name string, target *Schema, traits ...Trait) func(*SchemaOptions) {
	return func(o *SchemaOptions) {
		target.resolve()
		o.members = append(o.members, &Schema{
			id:       ShapeID{Member: name},
			typ:      target.typ,
			members:  target.members,
			traits:   mergeTraits(target.traits, traits),
			accessor: NewAccessor(name),
		})
	}
}

// WithMemberRef adds a member whose target is resolved on first use. It is
// how mutually recursive shapes are declared: the target does not need to
// exist yet when the referencing schema is built, only by the time the
// member is first inspected.
func WithMemberRef(name string, ref func() *Schema, traits ...Trait) func(*SchemaOptions) {
	return func(o *SchemaOptions) {
		o.members = append(o.members, &Schema{
			id:        ShapeID{Member: name},
			accessor:  NewAccessor(name),
			ref:       ref,
			refTraits: traits,
		})
	}
}

// WithTraits adds traits to the Schema.
func WithTraits(traits ...Trait) func(*SchemaOptions) {
	return func(o *SchemaOptions) {
		o.traits = append(o.traits, traits...)
	}
}

// NewSchema returns a schema with the provided members and traits.
//
// Members are kept in the order they are given, which is the order
// marshallers visit them in.
func NewSchema(id string, typ ShapeType, opts ...func(*SchemaOptions)) *Schema {
	var o SchemaOptions
	for _, opt := range opts {
		opt(&o)
	}

	sid := stoid(id)
	members := &memberSet{
		byName: make(map[string]*Schema, len(o.members)),
		order:  make([]*Schema, 0, len(o.members)),
	}
	for _, m := range o.members {
		m.id.Namespace = sid.Namespace
		m.id.Name = sid.Name
		members.byName[m.id.Member] = m
		members.order = append(members.order, m)
	}

	return &Schema{
		id:      sid,
		typ:     typ,
		members: members,
		traits:  mergeTraits(nil, o.traits),
	}
}

func mergeTraits(base map[string]Trait, overrides []Trait) map[string]Trait {
	traits := make(map[string]Trait, len(base)+len(overrides))
	for id, t := range base {
		traits[id] = t
	}
	for _, t := range overrides {
		traits[t.TraitID()] = t
	}
	return traits
}

func (s *Schema) resolve() {
	if s.ref == nil {
		return
	}

	s.once.Do(func() {
		target := s.ref()
		target.resolve()
		s.typ = target.typ
		s.members = target.members
		s.traits = mergeTraits(target.traits, s.refTraits)
	})
}

// ID returns the shape ID for this schema as it appears in the original
// Smithy model.
func (s *Schema) ID() ShapeID {
	return s.id
}

// Type returns the schema's type.
func (s *Schema) Type() ShapeType {
	s.resolve()
	return s.typ
}

// Member returns the named member from the schema.
func (s *Schema) Member(name string) *Schema {
	s.resolve()
	if s.members == nil {
		return nil
	}
	return s.members.byName[name]
}

// Members returns the schema's members in declaration order.
func (s *Schema) Members() []*Schema {
	s.resolve()
	if s.members == nil {
		return nil
	}
	return append([]*Schema(nil), s.members.order...)
}

// MemberName returns the member name of a member schema, or "" for a shape.
func (s *Schema) MemberName() string {
	return s.id.Member
}

// Accessor returns the accessor that reads this member off a structure
// value. It is the zero Accessor for non-member schemas.
func (s *Schema) Accessor() Accessor {
	return s.accessor
}

// SchemaTrait returns the target trait on the schema if it exists.
func SchemaTrait[T Trait](s *Schema) (T, bool) {
	var trait T

	s.resolve()
	opaque, ok := s.traits[trait.TraitID()]
	if !ok {
		return trait, false
	}

	tt, ok := opaque.(T)
	return tt, ok
}

// HasTrait reports whether the schema carries the trait T.
func HasTrait[T Trait](s *Schema) bool {
	_, ok := SchemaTrait[T](s)
	return ok
}
