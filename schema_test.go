package smithy

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aws/smithy-marshal/traits"
)

func TestSchema_MemberOrder(t *testing.T) {
	str := NewSchema("com.example#String", ShapeTypeString)
	s := NewSchema("com.example#Input", ShapeTypeStructure,
		WithMember("Zeta", str),
		WithMember("Alpha", str),
		WithMember("Mid", str),
	)

	var names []string
	for _, m := range s.Members() {
		names = append(names, m.MemberName())
	}
	if diff := cmp.Diff([]string{"Zeta", "Alpha", "Mid"}, names); len(diff) != 0 {
		t.Errorf("member order mismatch (-expect +actual):\n%s", diff)
	}

	if e, a := "com.example#Input$Alpha", s.Member("Alpha").ID().String(); e != a {
		t.Errorf("expect %q, got %q", e, a)
	}
	if s.Member("Missing") != nil {
		t.Errorf("expect nil for unknown member")
	}
}

func TestSchema_MemberTraitsOverrideTarget(t *testing.T) {
	str := NewSchema("com.example#String", ShapeTypeString, WithTraits(&traits.XMLName{Name: "target"}))
	s := NewSchema("com.example#Input", ShapeTypeStructure,
		WithMember("Plain", str),
		WithMember("Renamed", str, &traits.XMLName{Name: "member"}),
	)

	if n, _ := SchemaTrait[*traits.XMLName](s.Member("Plain")); n.Name != "target" {
		t.Errorf("expect target trait, got %q", n.Name)
	}
	if n, _ := SchemaTrait[*traits.XMLName](s.Member("Renamed")); n.Name != "member" {
		t.Errorf("expect member trait, got %q", n.Name)
	}
	if n, _ := SchemaTrait[*traits.XMLName](str); n.Name != "target" {
		t.Errorf("expect target trait untouched, got %q", n.Name)
	}
}

func TestSchema_RecursiveMembers(t *testing.T) {
	var nodeSchema, nodeListSchema *Schema
	nodeSchema = NewSchema("com.example#Node", ShapeTypeStructure,
		WithMember("Value", NewSchema("com.example#String", ShapeTypeString)),
		WithMemberRef("Children", func() *Schema { return nodeListSchema }),
	)
	nodeListSchema = NewSchema("com.example#NodeList", ShapeTypeList,
		WithMemberRef("member", func() *Schema { return nodeSchema }, &traits.XMLName{Name: "Node"}),
	)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			children := nodeSchema.Member("Children")
			if e, a := KindList, Classify(children); e != a {
				t.Errorf("expect %v, got %v", e, a)
			}
		}()
	}
	wg.Wait()

	elem := nodeSchema.Member("Children").Member("member")
	if e, a := KindStructure, Classify(elem); e != a {
		t.Fatalf("expect %v, got %v", e, a)
	}
	if n, ok := SchemaTrait[*traits.XMLName](elem); !ok || n.Name != "Node" {
		t.Errorf("expect member ref traits, got %v", n)
	}
	if elem.Member("Children").Member("member").Member("Value") == nil {
		t.Errorf("expect recursive members to resolve")
	}
}
