package query

import (
	"fmt"
	"strconv"
	"strings"

	smithy "github.com/aws/smithy-marshal"
	"github.com/aws/smithy-marshal/internal/scalar"
	"github.com/aws/smithy-marshal/operation"
	smithytime "github.com/aws/smithy-marshal/time"
	"github.com/aws/smithy-marshal/traits"
)

// Options configures parameter-list marshalling.
type Options struct {
	// Protocol selects the naming rules. ProtocolEC2 capitalizes names,
	// honors ec2QueryName and always flattens lists. Anything else uses the
	// Query rules.
	Protocol smithy.Protocol
}

// Marshal flattens in, an instance of the structure schema s, into the
// parameters of desc's operation. Action and Version are always emitted
// first. A nil input is rejected before any parameter is emitted, and no
// partial request is returned on error.
func Marshal(desc *operation.Descriptor, version string, s *smithy.Schema, in any, optFns ...func(*Options)) (*Request, error) {
	var o Options
	for _, fn := range optFns {
		fn(&o)
	}

	if desc == nil {
		return nil, &smithy.MissingOperationError{}
	}

	v, ok := smithy.Indirect(in)
	if !ok {
		return nil, &smithy.InvalidMarshallingInputError{
			Operation: desc.Action,
			Reason:    "input must not be nil",
		}
	}

	m := &marshaller{
		ec2:    o.Protocol == smithy.ProtocolEC2,
		action: desc.Action,
		params: []Param{
			{Name: "Action", Value: desc.Action},
			{Name: "Version", Value: version},
		},
	}
	if err := m.structure(s, v, "", 1); err != nil {
		return nil, err
	}

	return &Request{
		Method:     desc.HTTPMethod,
		RequestURI: desc.RequestURI,
		Params:     m.params,
	}, nil
}

type marshaller struct {
	ec2    bool
	action string
	params []Param
}

func (m *marshaller) add(name, value string) {
	m.params = append(m.params, Param{Name: name, Value: value})
}

func (m *marshaller) structure(s *smithy.Schema, v any, prefix string, depth int) error {
	if depth > smithy.MaxDepth {
		return &smithy.InvalidMarshallingInputError{
			Operation: m.action,
			Reason:    fmt.Sprintf("input exceeds maximum nesting depth of %d", smithy.MaxDepth),
		}
	}

	for _, member := range s.Members() {
		mv, ok := member.Accessor().Get(v)
		if !ok {
			continue
		}
		if err := m.value(member, mv, prefix+m.memberName(member), depth); err != nil {
			return err
		}
	}
	return nil
}

// value writes v, present and non-nil, under name.
func (m *marshaller) value(s *smithy.Schema, v any, name string, depth int) error {
	switch smithy.Classify(s) {
	case smithy.KindStructure:
		return m.structure(s, v, name+".", depth+1)
	case smithy.KindList:
		return m.list(s, v, name, depth)
	case smithy.KindMap:
		return m.mapEntries(s, v, name, depth)
	}

	format := smithytime.DateTime
	if tf, ok := smithy.SchemaTrait[*traits.TimestampFormat](s); ok {
		format = tf.Format
	}
	str, err := scalar.Text(scalar.KindOf(s.Type()), v, format)
	if err != nil {
		return &smithy.SerializationError{Err: fmt.Errorf("%s: %w", name, err)}
	}
	m.add(name, str)
	return nil
}

func (m *marshaller) list(s *smithy.Schema, v any, name string, depth int) error {
	elems, ok := smithy.ListElements(v)
	if !ok {
		return &smithy.SerializationError{Err: fmt.Errorf("%s: expected list value, got %T", name, v)}
	}
	if len(elems) == 0 {
		m.add(name, "")
		return nil
	}

	member := s.Member("member")
	prefix := name + "."
	if !m.ec2 && !smithy.HasTrait[*traits.XMLFlattened](s) {
		prefix += tagName(member, "member") + "."
	}

	for i, e := range elems {
		e, ok := smithy.Indirect(e)
		if !ok {
			continue
		}
		elemName := prefix + strconv.Itoa(i+1)
		if member == nil {
			str, err := scalar.Text(scalar.KindString, e, smithytime.DateTime)
			if err != nil {
				return &smithy.SerializationError{Err: fmt.Errorf("%s: %w", elemName, err)}
			}
			m.add(elemName, str)
			continue
		}
		if err := m.value(member, e, elemName, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (m *marshaller) mapEntries(s *smithy.Schema, v any, name string, depth int) error {
	entries, ok := smithy.MapEntries(v)
	if !ok {
		return &smithy.SerializationError{Err: fmt.Errorf("%s: expected map value, got %T", name, v)}
	}
	if len(entries) == 0 {
		m.add(name, "")
		return nil
	}

	key, value := s.Member("key"), s.Member("value")
	prefix := name + "."
	if !smithy.HasTrait[*traits.XMLFlattened](s) {
		prefix += "entry."
	}
	keyTag, valueTag := tagName(key, "key"), tagName(value, "value")

	for i, e := range entries {
		ev, ok := smithy.Indirect(e.Value)
		if !ok {
			continue
		}

		entry := prefix + strconv.Itoa(i+1) + "."
		m.add(entry+keyTag, e.Key)
		if value == nil {
			str, err := scalar.Text(scalar.KindString, ev, smithytime.DateTime)
			if err != nil {
				return &smithy.SerializationError{Err: fmt.Errorf("%s: %w", entry+valueTag, err)}
			}
			m.add(entry+valueTag, str)
			continue
		}
		if err := m.value(value, ev, entry+valueTag, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (m *marshaller) memberName(s *smithy.Schema) string {
	if m.ec2 {
		if n, ok := smithy.SchemaTrait[*traits.EC2QueryName](s); ok && len(n.Name) != 0 {
			return n.Name
		}
		return capitalize(tagName(s, s.MemberName()))
	}
	return tagName(s, s.MemberName())
}

// tagName returns the xmlName of s, or def.
func tagName(s *smithy.Schema, def string) string {
	if s == nil {
		return def
	}
	if n, ok := smithy.SchemaTrait[*traits.XMLName](s); ok && len(n.Name) != 0 {
		return n.Name
	}
	return def
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
