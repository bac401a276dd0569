package xml

import (
	"bytes"
	"encoding/xml"
)

// escapeText writes v with the XML special characters escaped.
func escapeText(w *bytes.Buffer, v []byte) {
	// EscapeText only fails when the writer does.
	_ = xml.EscapeText(w, v)
}

// escapeAttr writes an attribute value. Quotes are escaped along with the
// other special characters.
func escapeAttr(w *bytes.Buffer, v string) {
	escapeText(w, []byte(v))
}
