package httpbinding

import (
	"github.com/aws/smithy-marshal/encoding/json"
)

// Payload renders the payload values as a JSON object document, keys in
// binding order. A request with no payload values renders "{}".
func (r *Request) Payload() []byte {
	enc := json.NewEncoder()
	obj := enc.Object()
	for _, v := range r.values {
		if v.Location != LocationPayload {
			continue
		}
		writeJSON(obj.Key(v.Name), v.Value)
	}
	obj.Close()
	return enc.Bytes()
}

func writeJSON(jv json.Value, v any) {
	switch vv := v.(type) {
	case string:
		jv.String(vv)
	case int64:
		jv.Long(vv)
	case float32:
		jv.Float(vv)
	case float64:
		jv.Double(vv)
	case bool:
		jv.Boolean(vv)
	case []byte:
		jv.Base64EncodeBytes(vv)
	case []any:
		arr := jv.Array()
		for _, e := range vv {
			writeJSON(arr.Value(), e)
		}
		arr.Close()
	case *Object:
		obj := jv.Object()
		for _, m := range vv.Members {
			writeJSON(obj.Key(m.Name), m.Value)
		}
		obj.Close()
	default:
		jv.Null()
	}
}
