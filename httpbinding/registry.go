package httpbinding

import (
	smithy "github.com/aws/smithy-marshal"
)

// Registry holds the binding tables of a fixed set of shapes, keyed by shape
// ID. It is built once and only read afterwards, so it is safe for
// concurrent use.
type Registry struct {
	tables map[smithy.ShapeID]*Table
}

// NewRegistry builds the binding table of every given schema.
func NewRegistry(schemas ...*smithy.Schema) *Registry {
	tables := make(map[smithy.ShapeID]*Table, len(schemas))
	for _, s := range schemas {
		tables[s.ID()] = TableOf(s)
	}
	return &Registry{tables: tables}
}

// Table returns the binding table registered for id.
func (r *Registry) Table(id smithy.ShapeID) (*Table, bool) {
	if r == nil {
		return nil, false
	}
	t, ok := r.tables[id]
	return t, ok
}

// Len returns the number of registered tables.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.tables)
}
