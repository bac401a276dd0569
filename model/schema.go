package model

import (
	"fmt"
	"strings"
	"sync"

	smithy "github.com/aws/smithy-marshal"
	smithytime "github.com/aws/smithy-marshal/time"
	"github.com/aws/smithy-marshal/traits"
)

// Schema returns the schema of the named shape. Schemas are built on first
// request and shared afterwards, so recursive shapes resolve to the same
// schema.
func (m *Model) Schema(name string) (*smithy.Schema, error) {
	if _, ok := m.Shapes[name]; !ok {
		return nil, fmt.Errorf("shape %q not found", name)
	}
	m.once.Do(func() {
		m.schemas = &schemaCache{
			model:   m,
			schemas: map[string]*smithy.Schema{},
		}
	})
	return m.schemas.get(name), nil
}

// Namespace returns the shape ID namespace of the model's shapes.
func (m *Model) Namespace() string {
	name := m.Metadata.EndpointPrefix
	if len(name) == 0 {
		name = m.Metadata.ServiceID
	}
	name = strings.ToLower(strings.ReplaceAll(name, " ", ""))
	if len(name) == 0 {
		return "com.amazonaws"
	}
	return "com.amazonaws." + name
}

type schemaCache struct {
	model *Model

	mu      sync.Mutex
	schemas map[string]*smithy.Schema
}

// get builds member targets lazily, so the lock is never held while another
// shape is resolved.
func (c *schemaCache) get(name string) *smithy.Schema {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.schemas[name]; ok {
		return s
	}
	s := c.build(name)
	c.schemas[name] = s
	return s
}

func (c *schemaCache) build(name string) *smithy.Schema {
	shape := c.model.Shapes[name]
	typ, _ := shapeType(shape)

	var opts []func(*smithy.SchemaOptions)
	switch typ {
	case smithy.ShapeTypeList, smithy.ShapeTypeSet:
		opts = append(opts, c.memberRef("member", *shape.Member))
	case smithy.ShapeTypeMap:
		opts = append(opts, c.memberRef("key", *shape.Key), c.memberRef("value", *shape.Value))
	case smithy.ShapeTypeStructure, smithy.ShapeTypeUnion:
		for _, m := range shape.Members {
			opts = append(opts, c.memberRef(m.Name, m.Ref))
		}
	}
	opts = append(opts, smithy.WithTraits(shapeTraits(shape)...))

	return smithy.NewSchema(c.model.Namespace()+"#"+name, typ, opts...)
}

func (c *schemaCache) memberRef(name string, ref ShapeRef) func(*smithy.SchemaOptions) {
	target := ref.Shape
	return smithy.WithMemberRef(name, func() *smithy.Schema {
		return c.get(target)
	}, refTraits(ref)...)
}

func refTraits(ref ShapeRef) []smithy.Trait {
	var ts []smithy.Trait

	switch ref.Location {
	case "header":
		ts = append(ts, &traits.HTTPHeader{Name: ref.LocationName})
	case "querystring":
		ts = append(ts, &traits.HTTPQuery{Name: ref.LocationName})
	case "uri":
		ts = append(ts, &traits.HTTPLabel{Name: ref.LocationName})
	case "statusCode":
		ts = append(ts, &traits.HTTPResponseCode{})
	default:
		if len(ref.LocationName) != 0 {
			ts = append(ts,
				&traits.XMLName{Name: ref.LocationName},
				&traits.JSONName{Name: ref.LocationName},
			)
		}
	}

	if len(ref.QueryName) != 0 {
		ts = append(ts, &traits.EC2QueryName{Name: ref.QueryName})
	}
	if len(ref.TimestampFormat) != 0 {
		ts = append(ts, &traits.TimestampFormat{Format: timestampFormat(ref.TimestampFormat)})
	}
	if ref.Flattened {
		ts = append(ts, &traits.XMLFlattened{})
	}
	if ns := ref.XMLNamespace; ns != nil {
		ts = append(ts, &traits.XMLNamespace{URI: ns.URI, Prefix: ns.Prefix})
	}
	return ts
}

func shapeTraits(s Shape) []smithy.Trait {
	var ts []smithy.Trait

	if len(s.Enum) != 0 {
		ts = append(ts, &traits.Enum{Values: append([]string(nil), s.Enum...)})
	}
	if s.Exception {
		ts = append(ts, &traits.Exception{})
	}
	if s.Fault {
		ts = append(ts, &traits.Fault{})
	}
	if s.Flattened {
		ts = append(ts, &traits.XMLFlattened{})
	}
	if len(s.TimestampFormat) != 0 {
		ts = append(ts, &traits.TimestampFormat{Format: timestampFormat(s.TimestampFormat)})
	}
	if ns := s.XMLNamespace; ns != nil {
		ts = append(ts, &traits.XMLNamespace{URI: ns.URI, Prefix: ns.Prefix})
	}
	return ts
}

// timestampFormat maps service model timestamp format names onto the
// smithy ones. Smithy names pass through.
func timestampFormat(name string) string {
	switch name {
	case "iso8601":
		return smithytime.DateTime
	case "rfc822":
		return smithytime.HTTPDate
	case "unixTimestamp":
		return smithytime.EpochSeconds
	default:
		return name
	}
}

var shapeTypes = map[string]smithy.ShapeType{
	"blob":       smithy.ShapeTypeBlob,
	"boolean":    smithy.ShapeTypeBoolean,
	"string":     smithy.ShapeTypeString,
	"timestamp":  smithy.ShapeTypeTimestamp,
	"byte":       smithy.ShapeTypeByte,
	"short":      smithy.ShapeTypeShort,
	"integer":    smithy.ShapeTypeInteger,
	"long":       smithy.ShapeTypeLong,
	"float":      smithy.ShapeTypeFloat,
	"double":     smithy.ShapeTypeDouble,
	"bigdecimal": smithy.ShapeTypeBigDecimal,
	"biginteger": smithy.ShapeTypeBigInteger,
	"document":   smithy.ShapeTypeDocument,
	"list":       smithy.ShapeTypeList,
	"set":        smithy.ShapeTypeSet,
	"map":        smithy.ShapeTypeMap,
	"structure":  smithy.ShapeTypeStructure,
}

func shapeType(s Shape) (smithy.ShapeType, error) {
	typ, ok := shapeTypes[strings.ToLower(s.Type)]
	if !ok {
		return 0, fmt.Errorf("unknown shape type %q", s.Type)
	}
	if typ == smithy.ShapeTypeStructure && s.Union {
		return smithy.ShapeTypeUnion, nil
	}
	return typ, nil
}
