package smithy

import "github.com/aws/smithy-marshal/traits"

// ShapeKind is the marshalling category of a shape. Every shape is exactly
// one of the four kinds.
type ShapeKind int

// Enumerates ShapeKind.
const (
	KindScalar ShapeKind = iota
	KindStructure
	KindList
	KindMap
)

func (k ShapeKind) String() string {
	switch k {
	case KindStructure:
		return "structure"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "scalar"
	}
}

// Classify returns the marshalling category of s. Unions marshal like
// structures and sets like lists. Anything that is not a structure, list or
// map is a scalar, enums included.
func Classify(s *Schema) ShapeKind {
	switch s.Type() {
	case ShapeTypeStructure, ShapeTypeUnion:
		return KindStructure
	case ShapeTypeList, ShapeTypeSet:
		return KindList
	case ShapeTypeMap:
		return KindMap
	default:
		return KindScalar
	}
}

// IsStructure reports whether s is a structure shape.
func IsStructure(s *Schema) bool { return Classify(s) == KindStructure }

// IsList reports whether s is a list shape.
func IsList(s *Schema) bool { return Classify(s) == KindList }

// IsMap reports whether s is a map shape.
func IsMap(s *Schema) bool { return Classify(s) == KindMap }

// IsScalar reports whether s is none of structure, list or map.
func IsScalar(s *Schema) bool { return Classify(s) == KindScalar }

// IsEnum reports whether s carries a non-empty closed set of values. An enum
// is still classified as a scalar.
func IsEnum(s *Schema) bool {
	if Classify(s) != KindScalar {
		return false
	}
	e, ok := SchemaTrait[*traits.Enum](s)
	return ok && len(e.Values) != 0
}

// IsExceptionShape reports whether s models an error payload, i.e. it is
// flagged as an exception or a fault.
func IsExceptionShape(s *Schema) bool {
	return HasTrait[*traits.Exception](s) || HasTrait[*traits.Fault](s)
}
