package xml

import (
	"bytes"
	"encoding/base64"
	"math"
	"strconv"
)

const (
	leftAngleBracket  = '<'
	rightAngleBracket = '>'
	forwardSlash      = '/'
	colon             = ':'
	equals            = '='
	quote             = '"'
)

// Value represents an XML Value type
// XML Value types: Object, Array, Map, String, Number, Boolean.
type Value struct {
	w       *bytes.Buffer
	scratch *[]byte

	startElement StartElement
}

// newValue returns a new Value encoder. newValue does NOT write the start element tag
func newValue(w *bytes.Buffer, scratch *[]byte, startElement StartElement) Value {
	return Value{
		w:            w,
		scratch:      scratch,
		startElement: startElement,
	}
}

// newWrappedValue writes the start element xml tag and returns a Value
func newWrappedValue(w *bytes.Buffer, scratch *[]byte, startElement StartElement) Value {
	writeStartElement(w, startElement)
	return newValue(w, scratch, startElement)
}

// writeStartElement takes in a start element and writes it.
// It handles namespace, attributes in start element.
func writeStartElement(w *bytes.Buffer, el StartElement) {
	if el.isZero() {
		return
	}

	w.WriteRune(leftAngleBracket)

	if len(el.Name.Space) != 0 {
		w.WriteString(el.Name.Space)
		w.WriteRune(colon)
	}
	w.WriteString(el.Name.Local)

	for _, attr := range el.Attr {
		w.WriteRune(' ')
		writeAttribute(w, attr)
	}

	w.WriteRune(rightAngleBracket)
}

// writeAttribute writes an attribute. A namespace attribute has Name.Space
// set to "xmlns"; with an empty Name.Local it declares the default
// namespace.
// https://www.w3.org/TR/REC-xml-names/#NT-DefaultAttName
func writeAttribute(w *bytes.Buffer, attr Attr) {
	switch {
	case len(attr.Name.Space) != 0 && len(attr.Name.Local) != 0:
		w.WriteString(attr.Name.Space)
		w.WriteRune(colon)
		w.WriteString(attr.Name.Local)
	case len(attr.Name.Local) == 0:
		w.WriteString(attr.Name.Space)
	default:
		w.WriteString(attr.Name.Local)
	}

	w.WriteRune(equals)
	w.WriteRune(quote)
	escapeAttr(w, attr.Value)
	w.WriteRune(quote)
}

// writeEndElement takes in a end element and writes it.
func writeEndElement(w *bytes.Buffer, el EndElement) {
	if el.isZero() {
		return
	}

	w.WriteRune(leftAngleBracket)
	w.WriteRune(forwardSlash)

	if len(el.Name.Space) != 0 {
		w.WriteString(el.Name.Space)
		w.WriteRune(colon)
	}
	w.WriteString(el.Name.Local)
	w.WriteRune(rightAngleBracket)
}

// RootElement writes the document's root start element and returns its
// Value. The Value must be closed.
func (xv Value) RootElement(element StartElement) Value {
	return newWrappedValue(xv.w, xv.scratch, element)
}

// String encodes v as a XML string.
// It will auto close the parent xml element tag.
func (xv Value) String(v string) {
	escapeText(xv.w, []byte(v))
	xv.Close()
}

// Long encodes v as a XML number.
// It will auto close the parent xml element tag.
func (xv Value) Long(v int64) {
	*xv.scratch = strconv.AppendInt((*xv.scratch)[:0], v, 10)
	xv.w.Write(*xv.scratch)
	xv.Close()
}

// Double encodes v as a XML number. NaN and infinities are written as NaN,
// Infinity and -Infinity.
// It will auto close the parent xml element tag.
func (xv Value) Double(v float64) {
	switch {
	case math.IsNaN(v):
		xv.w.WriteString("NaN")
	case math.IsInf(v, 1):
		xv.w.WriteString("Infinity")
	case math.IsInf(v, -1):
		xv.w.WriteString("-Infinity")
	default:
		*xv.scratch = encodeFloat((*xv.scratch)[:0], v, 64)
		xv.w.Write(*xv.scratch)
	}
	xv.Close()
}

// Boolean encodes v as a XML boolean.
// It will auto close the parent xml element tag.
func (xv Value) Boolean(v bool) {
	*xv.scratch = strconv.AppendBool((*xv.scratch)[:0], v)
	xv.w.Write(*xv.scratch)
	xv.Close()
}

// Base64EncodeBytes writes v as a base64 value in XML string.
// It will auto close the parent xml element tag.
func (xv Value) Base64EncodeBytes(v []byte) {
	encodeByteSlice(xv.w, (*xv.scratch)[:0], v)
	xv.Close()
}

// Write writes v directly to the xml document
// if escapeXMLText is set to true, write will escape text.
// It will auto close the parent xml element tag.
func (xv Value) Write(v []byte, escapeXMLText bool) {
	if escapeXMLText {
		escapeText(xv.w, v)
	} else {
		xv.w.Write(v)
	}
	xv.Close()
}

// MemberElement returns a structure or simple shape member element encoding.
// The start tag is written directly; the returned Value must be closed.
func (xv Value) MemberElement(element StartElement) Value {
	return newWrappedValue(xv.w, xv.scratch, element)
}

// CollectionElement returns a Value for a flattened collection. Unlike
// MemberElement it does NOT write the element tags; the flattened array or
// map repeats them for every entry.
func (xv Value) CollectionElement(element StartElement) Value {
	return newValue(xv.w, xv.scratch, element)
}

// Array returns an array encoder. By default, the members of array are
// wrapped with `<member>` element tag.
//
// for eg,`<someList><member>entry</member><member>entry2</member></someList>`.
func (xv Value) Array() *Array {
	return newArray(xv.w, xv.scratch, StartElement{Name: Name{Local: arrayMemberWrapper}}, xv.startElement.End())
}

// ArrayWithCustomName returns an array encoder wrapping each member with
// the given element, e.g. `<someList><customName>entry1</customName></someList>`.
func (xv Value) ArrayWithCustomName(element StartElement) *Array {
	return newArray(xv.w, xv.scratch, element, xv.startElement.End())
}

// FlattenedArray returns a flattened array encoder. Each member is wrapped
// with the array's own element tag, e.g.
// `<someList>entry1</someList><someList>entry2</someList>`.
func (xv Value) FlattenedArray() *Array {
	return newFlattenedArray(xv.w, xv.scratch, xv.startElement)
}

// Map returns a map encoder. By default, the map entries are wrapped with
// `<entry>` element tag.
//
// for eg. `<someMap><entry><k>entry1</k><v>value1</v></entry></someMap>`
func (xv Value) Map() *Map {
	return newMap(xv.w, xv.scratch, xv.startElement.End())
}

// FlattenedMap returns a flattened map encoder. Each entry is wrapped with
// the map's own element tag, e.g. `<someMap><k>entry1</k><v>value1</v></someMap>`.
func (xv Value) FlattenedMap() *Map {
	return newFlattenedMap(xv.w, xv.scratch, xv.startElement)
}

// Close closes the value
func (xv Value) Close() {
	writeEndElement(xv.w, xv.startElement.End())
}

// encodeFloat formats v the way encoding/xml does.
func encodeFloat(dst []byte, v float64, bits int) []byte {
	abs := math.Abs(v)
	fmt := byte('f')

	if abs != 0 {
		if bits == 64 && (abs < 1e-6 || abs >= 1e21) || bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			fmt = 'e'
		}
	}

	dst = strconv.AppendFloat(dst, v, fmt, -1, bits)

	if fmt == 'e' {
		// clean up e-09 to e-9
		n := len(dst)
		if n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}

	return dst
}

// encodeByteSlice is modified copy of json encoder's encodeByteSlice.
// It is used to base64 encode a byte slice.
func encodeByteSlice(w *bytes.Buffer, scratch []byte, v []byte) {
	if v == nil {
		return
	}

	encodedLen := base64.StdEncoding.EncodedLen(len(v))
	if encodedLen <= len(scratch) {
		// If the encoded bytes fit in e.scratch, avoid an extra
		// allocation and use the cheaper Encoding.Encode.
		dst := scratch[:encodedLen]
		base64.StdEncoding.Encode(dst, v)
		w.Write(dst)
	} else if encodedLen <= 1024 {
		// The encoded bytes are short enough to allocate for, and
		// Encoding.Encode is still cheaper.
		dst := make([]byte, encodedLen)
		base64.StdEncoding.Encode(dst, v)
		w.Write(dst)
	} else {
		// The encoded bytes are too long to cheaply allocate, and
		// Encoding.Encode is no longer noticeably cheaper.
		enc := base64.NewEncoder(base64.StdEncoding, w)
		enc.Write(v)
		enc.Close()
	}
}
