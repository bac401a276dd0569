package xml

import "bytes"

// mapEntryWrapper is the default member wrapper tag name for XML Map type
const mapEntryWrapper = "entry"

// Map represents the encoding of a XML map type
type Map struct {
	w       *bytes.Buffer
	scratch *[]byte

	entryStartElement StartElement

	// zero for flattened maps
	mapEndElement EndElement
}

// newMap returns a map encoder which sets the default map
// entry wrapper to `entry`.
//
// for eg. someMap : {{key:"abc", value:"123"}} is represented as
// <someMap><entry><key>abc</key><value>123</value></entry></someMap>
func newMap(w *bytes.Buffer, scratch *[]byte, mapEndElement EndElement) *Map {
	return &Map{
		w:                 w,
		scratch:           scratch,
		entryStartElement: StartElement{Name: Name{Local: mapEntryWrapper}},
		mapEndElement:     mapEndElement,
	}
}

// newFlattenedMap returns a map Encoder that wraps each entry with the
// given element.
//
// for eg. `someMap : {{key:"abc", value:"123"}}` is represented as
// `<someMap><key>abc</key><value>123</value></someMap>`.
func newFlattenedMap(w *bytes.Buffer, scratch *[]byte, entryStartElement StartElement) *Map {
	return &Map{w: w, scratch: scratch, entryStartElement: entryStartElement}
}

// Entry returns a Value encoder for one map entry, with the entry start tag
// written. The key and value are written as member elements and the entry
// must be closed.
func (m *Map) Entry() Value {
	return newWrappedValue(m.w, m.scratch, m.entryStartElement.Copy())
}

// Close closes the map. For flattened map, this function is a noOp.
func (m *Map) Close() {
	writeEndElement(m.w, m.mapEndElement)
}
