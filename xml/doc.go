/*
Package xml holds the XML encoder used to render REST-XML request bodies, and
the reader that extracts error codes from XML error responses.

Value is responsible for writing an element's start and end tags. Values
returned by MemberElement, Array.Member and Map.Entry have their start tag
written and must be closed; scalar writers such as String close the element
themselves.

	enc := xml.NewEncoder()
	root := enc.RootElement(xml.StartElement{Name: xml.Name{Local: "Tagging"}})
	set := root.MemberElement(xml.StartElement{Name: xml.Name{Local: "TagSet"}})
	tags := set.Array()
	tags.Member().String("a")
	tags.Close()
	root.Close()

Resources followed: https://smithy.io/2.0/spec/protocol-traits.html#xml-bindings
*/
package xml
