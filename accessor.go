package smithy

import (
	"strconv"

	"github.com/jmespath/go-jmespath"
)

// Accessor reads a single member off an in-code structure value. Values may
// be structs, pointers to structs, or map[string]any. Struct fields are
// matched by the member name with its first letter upper-cased.
type Accessor struct {
	name string
	path *jmespath.JMESPath
}

// NewAccessor returns an Accessor for the named member.
func NewAccessor(name string) Accessor {
	return Accessor{
		name: name,
		path: jmespath.MustCompile(strconv.Quote(name)),
	}
}

// Name returns the member name the accessor reads.
func (a Accessor) Name() string {
	return a.name
}

// Get returns the member value with pointers dereferenced, and whether the
// member is present. A nil pointer, slice or map is not present.
func (a Accessor) Get(v any) (any, bool) {
	if a.path == nil || v == nil {
		return nil, false
	}

	out, err := a.path.Search(v)
	if err != nil {
		return nil, false
	}
	return Indirect(out)
}
