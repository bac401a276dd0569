package xml

import (
	"fmt"

	smithy "github.com/aws/smithy-marshal"
	"github.com/aws/smithy-marshal/internal/scalar"
	"github.com/aws/smithy-marshal/operation"
	smithytime "github.com/aws/smithy-marshal/time"
	"github.com/aws/smithy-marshal/traits"
)

// Marshal renders in, an instance of the structure schema s, as the XML body
// of a REST-XML request. The root element is named by the descriptor's
// location name, or the shape name, and carries the descriptor's namespace.
// Members bound to headers, query strings, labels or the status code are
// left out of the body.
func Marshal(desc *operation.Descriptor, s *smithy.Schema, in any) ([]byte, error) {
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

	root := StartElement{Name: Name{Local: desc.LocationName}}
	if len(root.Name.Local) == 0 {
		root.Name.Local = s.ID().Name
	}
	if len(desc.XMLNamespaceURI) != 0 {
		root.Attr = append(root.Attr, NewNamespaceAttribute("", desc.XMLNamespaceURI))
	} else {
		root.Attr = append(root.Attr, namespaceAttr(s)...)
	}

	m := &marshaller{action: desc.Action}
	enc := NewEncoder()
	rv := enc.RootElement(root)
	if err := m.members(rv, s, v, 1, true); err != nil {
		return nil, err
	}
	rv.Close()

	return enc.Bytes(), nil
}

type marshaller struct {
	action string
}

func (m *marshaller) depthError() error {
	return &smithy.InvalidMarshallingInputError{
		Operation: m.action,
		Reason:    fmt.Sprintf("input exceeds maximum nesting depth of %d", smithy.MaxDepth),
	}
}

func (m *marshaller) members(parent Value, s *smithy.Schema, v any, depth int, top bool) error {
	if depth > smithy.MaxDepth {
		return m.depthError()
	}

	for _, member := range s.Members() {
		if top && isHTTPBound(member) {
			continue
		}
		mv, ok := member.Accessor().Get(v)
		if !ok {
			continue
		}

		start := StartElement{
			Name: Name{Local: elementName(member, member.MemberName())},
			Attr: namespaceAttr(member),
		}
		if err := m.value(parent, member, start, mv, depth); err != nil {
			return err
		}
	}
	return nil
}

// value writes v as the element start. Flattened collections repeat start
// for every entry instead of wrapping them.
func (m *marshaller) value(parent Value, s *smithy.Schema, start StartElement, v any, depth int) error {
	flattened := smithy.HasTrait[*traits.XMLFlattened](s)

	switch smithy.Classify(s) {
	case smithy.KindStructure:
		sv := parent.MemberElement(start)
		if err := m.members(sv, s, v, depth+1, false); err != nil {
			return err
		}
		sv.Close()
		return nil

	case smithy.KindList:
		if flattened {
			return m.list(parent.CollectionElement(start).FlattenedArray(), s, v, depth)
		}
		return m.list(parent.MemberElement(start).ArrayWithCustomName(itemElement(s)), s, v, depth)

	case smithy.KindMap:
		if flattened {
			return m.mapEntries(parent.CollectionElement(start).FlattenedMap(), s, v, depth)
		}
		return m.mapEntries(parent.MemberElement(start).Map(), s, v, depth)
	}

	str, err := scalarText(s, v)
	if err != nil {
		return serializationError(start, err)
	}
	parent.MemberElement(start).String(str)
	return nil
}

// element writes v into ev, whose start tag is already written, and closes
// it. Collections nested directly in a list or map are never flattened.
func (m *marshaller) element(ev Value, s *smithy.Schema, v any, depth int) error {
	if depth > smithy.MaxDepth {
		return m.depthError()
	}
	if s == nil {
		ev.String(fmt.Sprint(v))
		return nil
	}

	switch smithy.Classify(s) {
	case smithy.KindStructure:
		if err := m.members(ev, s, v, depth+1, false); err != nil {
			return err
		}
		ev.Close()
		return nil
	case smithy.KindList:
		return m.list(ev.ArrayWithCustomName(itemElement(s)), s, v, depth)
	case smithy.KindMap:
		return m.mapEntries(ev.Map(), s, v, depth)
	}

	str, err := scalarText(s, v)
	if err != nil {
		return serializationError(ev.startElement, err)
	}
	ev.String(str)
	return nil
}

func (m *marshaller) list(arr *Array, s *smithy.Schema, v any, depth int) error {
	elems, ok := smithy.ListElements(v)
	if !ok {
		return serializationError(arr.memberStartElement, fmt.Errorf("expected list value, got %T", v))
	}
	member := s.Member("member")

	for _, e := range elems {
		e, ok := smithy.Indirect(e)
		if !ok {
			continue
		}
		if err := m.element(arr.Member(), member, e, depth+1); err != nil {
			return err
		}
	}
	arr.Close()
	return nil
}

func (m *marshaller) mapEntries(mp *Map, s *smithy.Schema, v any, depth int) error {
	entries, ok := smithy.MapEntries(v)
	if !ok {
		return serializationError(mp.entryStartElement, fmt.Errorf("expected map value, got %T", v))
	}
	key, value := s.Member("key"), s.Member("value")
	keyStart := StartElement{Name: Name{Local: elementName(key, "key")}}
	valueStart := StartElement{Name: Name{Local: elementName(value, "value")}}

	for _, e := range entries {
		ev, ok := smithy.Indirect(e.Value)
		if !ok {
			continue
		}
		entry := mp.Entry()
		entry.MemberElement(keyStart).String(e.Key)
		if err := m.element(entry.MemberElement(valueStart), value, ev, depth+1); err != nil {
			return err
		}
		entry.Close()
	}
	mp.Close()
	return nil
}

func itemElement(list *smithy.Schema) StartElement {
	return StartElement{Name: Name{Local: elementName(list.Member("member"), arrayMemberWrapper)}}
}

func scalarText(s *smithy.Schema, v any) (string, error) {
	format := smithytime.DateTime
	if tf, ok := smithy.SchemaTrait[*traits.TimestampFormat](s); ok {
		format = tf.Format
	}
	return scalar.Text(scalar.KindOf(s.Type()), v, format)
}

func serializationError(start StartElement, err error) error {
	return &smithy.SerializationError{Err: fmt.Errorf("%s: %w", start.Name.Local, err)}
}

func isHTTPBound(s *smithy.Schema) bool {
	return smithy.HasTrait[*traits.HTTPHeader](s) ||
		smithy.HasTrait[*traits.HTTPQuery](s) ||
		smithy.HasTrait[*traits.HTTPLabel](s) ||
		smithy.HasTrait[*traits.HTTPResponseCode](s)
}

func elementName(s *smithy.Schema, def string) string {
	if s == nil {
		return def
	}
	if n, ok := smithy.SchemaTrait[*traits.XMLName](s); ok && len(n.Name) != 0 {
		return n.Name
	}
	return def
}

func namespaceAttr(s *smithy.Schema) []Attr {
	ns, ok := smithy.SchemaTrait[*traits.XMLNamespace](s)
	if !ok || len(ns.URI) == 0 {
		return nil
	}
	return []Attr{NewNamespaceAttribute(ns.Prefix, ns.URI)}
}
