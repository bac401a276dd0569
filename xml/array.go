package xml

import "bytes"

// arrayMemberWrapper is the default member wrapper tag name for XML Array type
const arrayMemberWrapper = "member"

// Array represents the encoding of a XML array type
type Array struct {
	w       *bytes.Buffer
	scratch *[]byte

	memberStartElement StartElement

	// zero for flattened arrays
	arrayEndElement EndElement
}

// newArray returns an array encoder wrapping each member with the given
// element.
//
// for eg. an array ["value1", "value2"] is represented as
// <List><member>value1</member><member>value2</member></List>
func newArray(w *bytes.Buffer, scratch *[]byte, memberStartElement StartElement, arrayEndElement EndElement) *Array {
	return &Array{
		w:                  w,
		scratch:            scratch,
		memberStartElement: memberStartElement,
		arrayEndElement:    arrayEndElement,
	}
}

// newFlattenedArray returns an Array Encoder that wraps each member with the
// given element.
//
// for eg. an array `someList: ["value1", "value2"]` is represented as
// <someList>value1</someList><someList>value2</someList>.
func newFlattenedArray(w *bytes.Buffer, scratch *[]byte, memberStartElement StartElement) *Array {
	return &Array{w: w, scratch: scratch, memberStartElement: memberStartElement}
}

// Member adds a new member to the XML array.
// It returns a Value encoder with the member start tag written.
func (a *Array) Member() Value {
	return newWrappedValue(a.w, a.scratch, a.memberStartElement.Copy())
}

// Close closes the array. For flattened array, this function is a noOp.
func (a *Array) Close() {
	writeEndElement(a.w, a.arrayEndElement)
}
