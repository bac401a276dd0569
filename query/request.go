package query

import (
	"net/url"
	"strings"
)

// Param is a single query parameter.
type Param struct {
	Name  string
	Value string
}

// Request is the marshalled form of a parameter-list request.
type Request struct {
	Method     string
	RequestURI string

	// Params in emission order, Action and Version first.
	Params []Param
}

// Get returns the value of the first parameter with the given name.
func (r *Request) Get(name string) (string, bool) {
	for _, p := range r.Params {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Encode renders the parameters as an application/x-www-form-urlencoded
// body, keeping their order.
func (r *Request) Encode() string {
	var sb strings.Builder
	for i, p := range r.Params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Name))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}
