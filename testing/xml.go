package testing

import (
	"encoding/xml"
	"io"
	"sort"
	"strings"
)

type xmlNode struct {
	Name     xml.Name
	Attr     []xml.Attr
	Text     string
	Children []*xmlNode
}

type xmlAttrSlice []xml.Attr

func (x xmlAttrSlice) Len() int {
	return len(x)
}

func (x xmlAttrSlice) Less(i, j int) bool {
	if x[i].Name.Space != x[j].Name.Space {
		return x[i].Name.Space < x[j].Name.Space
	}
	if x[i].Name.Local != x[j].Name.Local {
		return x[i].Name.Local < x[j].Name.Local
	}
	return x[i].Value < x[j].Value
}

func (x xmlAttrSlice) Swap(i, j int) {
	x[i], x[j] = x[j], x[i]
}

func parseXML(r io.Reader) (*xmlNode, error) {
	d := xml.NewDecoder(r)
	root := &xmlNode{}
	stack := []*xmlNode{root}

	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		top := stack[len(stack)-1]
		switch t := tok.(type) {
		case xml.StartElement:
			n := &xmlNode{Name: t.Name, Attr: append([]xml.Attr(nil), t.Attr...)}
			sort.Sort(xmlAttrSlice(n.Attr))
			top.Children = append(top.Children, n)
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			top.Text += strings.TrimSpace(string(t))
		}
	}
	return root, nil
}
