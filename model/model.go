package model

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	smithy "github.com/aws/smithy-marshal"
)

// Model is a decoded service model document.
type Model struct {
	Metadata   Metadata             `yaml:"metadata"`
	Operations map[string]Operation `yaml:"operations"`
	Shapes     map[string]Shape     `yaml:"shapes"`

	once    sync.Once
	schemas *schemaCache
}

// Metadata is the service level metadata of a model.
type Metadata struct {
	Protocol       string `yaml:"protocol"`
	APIVersion     string `yaml:"apiVersion"`
	TargetPrefix   string `yaml:"targetPrefix"`
	ServiceID      string `yaml:"serviceId"`
	EndpointPrefix string `yaml:"endpointPrefix"`
}

// Operation is a modeled operation.
type Operation struct {
	Name  string    `yaml:"name"`
	HTTP  HTTP      `yaml:"http"`
	Input *ShapeRef `yaml:"input"`
}

// HTTP is an operation's HTTP binding.
type HTTP struct {
	Method     string `yaml:"method"`
	RequestURI string `yaml:"requestUri"`
}

// XMLNamespace is a namespace declared on a shape reference.
type XMLNamespace struct {
	URI    string `yaml:"uri"`
	Prefix string `yaml:"prefix"`
}

// ShapeRef is a reference to a shape from an operation input or a member.
type ShapeRef struct {
	Shape           string        `yaml:"shape"`
	LocationName    string        `yaml:"locationName"`
	Location        string        `yaml:"location"`
	QueryName       string        `yaml:"queryName"`
	TimestampFormat string        `yaml:"timestampFormat"`
	Flattened       bool          `yaml:"flattened"`
	XMLNamespace    *XMLNamespace `yaml:"xmlNamespace"`
}

// Shape is a modeled shape.
type Shape struct {
	Type            string        `yaml:"type"`
	Members         Members       `yaml:"members"`
	Member          *ShapeRef     `yaml:"member"`
	Key             *ShapeRef     `yaml:"key"`
	Value           *ShapeRef     `yaml:"value"`
	Enum            []string      `yaml:"enum"`
	Exception       bool          `yaml:"exception"`
	Fault           bool          `yaml:"fault"`
	Union           bool          `yaml:"union"`
	Flattened       bool          `yaml:"flattened"`
	TimestampFormat string        `yaml:"timestampFormat"`
	XMLNamespace    *XMLNamespace `yaml:"xmlNamespace"`
}

// Member is a named structure member.
type Member struct {
	Name string
	Ref  ShapeRef
}

// Members are the members of a structure in declaration order.
type Members []Member

// UnmarshalYAML decodes a mapping of member names to shape references,
// keeping the mapping's order.
func (m *Members) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: members must be a mapping", value.Line)
	}

	members := make(Members, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var ref ShapeRef
		if err := value.Content[i+1].Decode(&ref); err != nil {
			return fmt.Errorf("member %s: %w", value.Content[i].Value, err)
		}
		members = append(members, Member{Name: value.Content[i].Value, Ref: ref})
	}
	*m = members
	return nil
}

// Load decodes a model document from r and checks that every shape it
// references is defined.
func Load(r io.Reader) (*Model, error) {
	var m Model
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&m); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty model document")
		}
		return nil, fmt.Errorf("failed to decode model, %w", err)
	}

	for name, op := range m.Operations {
		if len(op.Name) == 0 {
			op.Name = name
			m.Operations[name] = op
		}
	}
	if err := m.validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// LoadFile loads the model document at path.
func LoadFile(path string) (*Model, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Load(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// OperationNames returns the names of the model's operations, sorted.
func (m *Model) OperationNames() []string {
	names := make([]string, 0, len(m.Operations))
	for name := range m.Operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *Model) validate() error {
	check := func(where string, ref *ShapeRef) error {
		if ref == nil {
			return nil
		}
		if _, ok := m.Shapes[ref.Shape]; !ok {
			return fmt.Errorf("%s references undefined shape %q", where, ref.Shape)
		}
		return nil
	}

	for _, name := range m.OperationNames() {
		if err := check("operation "+name, m.Operations[name].Input); err != nil {
			return err
		}
	}

	names := make([]string, 0, len(m.Shapes))
	for name := range m.Shapes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		s := m.Shapes[name]
		typ, err := shapeType(s)
		if err != nil {
			return fmt.Errorf("shape %s: %w", name, err)
		}
		switch {
		case (typ == smithy.ShapeTypeList || typ == smithy.ShapeTypeSet) && s.Member == nil:
			return fmt.Errorf("shape %s: list has no member", name)
		case typ == smithy.ShapeTypeMap && (s.Key == nil || s.Value == nil):
			return fmt.Errorf("shape %s: map needs a key and a value", name)
		}
		for _, mem := range s.Members {
			mem := mem
			if err := check("shape "+name+" member "+mem.Name, &mem.Ref); err != nil {
				return err
			}
		}
		for _, ref := range []*ShapeRef{s.Member, s.Key, s.Value} {
			if err := check("shape "+name, ref); err != nil {
				return err
			}
		}
	}
	return nil
}
