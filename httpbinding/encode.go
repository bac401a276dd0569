package httpbinding

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	smithy "github.com/aws/smithy-marshal"
)

// An Encoder provides encoding of REST URI path, query, and header components
// of an HTTP request.
type Encoder struct {
	path, rawPath string

	query  url.Values
	header http.Header
}

// NewEncoder creates a new encoder from the passed in request. All query and
// header values will be added on top of the request's existing values. Overwriting
// duplicate values.
func NewEncoder(path, query string, headers http.Header) (*Encoder, error) {
	parseQuery, err := url.ParseQuery(query)
	if err != nil {
		return nil, fmt.Errorf("failed to parse query string: %w", err)
	}
	if headers == nil {
		headers = http.Header{}
	}

	e := &Encoder{
		path:    path,
		rawPath: path,
		query:   parseQuery,
		header:  headers.Clone(),
	}

	return e, nil
}

// Encode applies the encoded path, query and headers to req.
func (e *Encoder) Encode(req *http.Request) (*http.Request, error) {
	if req.URL == nil {
		req.URL = &url.URL{}
	}
	req.URL.Path, req.URL.RawPath = e.path, e.rawPath
	req.URL.RawQuery = e.query.Encode()
	req.Header = e.header

	return req, nil
}

// AddHeader appends a value to the given header name.
func (e *Encoder) AddHeader(key, value string) {
	e.header.Add(key, value)
}

// SetHeader sets the given header name to value.
func (e *Encoder) SetHeader(key, value string) {
	e.header.Set(key, value)
}

// SetQuery sets the given query key to value.
func (e *Encoder) SetQuery(key, value string) {
	e.query.Set(key, value)
}

// AddQuery appends a value to the given query key.
func (e *Encoder) AddQuery(key, value string) {
	e.query.Add(key, value)
}

// SetURI replaces the {key} or greedy {key+} label in the path with value.
// Greedy labels keep the value's slashes.
func (e *Encoder) SetURI(key, value string) error {
	if len(value) == 0 {
		return fmt.Errorf("input member %s must not be empty", key)
	}

	if label := "{" + key + "}"; strings.Contains(e.path, label) {
		e.replace(label, value, url.PathEscape(value))
		return nil
	}
	if label := "{" + key + "+}"; strings.Contains(e.path, label) {
		segments := strings.Split(value, "/")
		for i, s := range segments {
			segments[i] = url.PathEscape(s)
		}
		e.replace(label, value, strings.Join(segments, "/"))
		return nil
	}
	return fmt.Errorf("label %s not found in path %s", key, e.path)
}

func (e *Encoder) replace(label, value, escaped string) {
	e.path = strings.Replace(e.path, label, value, 1)
	e.rawPath = strings.Replace(e.rawPath, label, escaped, 1)
}

// Encode writes the request's header, query and URI values to e. Payload
// values are left to Payload.
func (r *Request) Encode(e *Encoder) error {
	for _, v := range r.values {
		var err error
		switch v.Location {
		case LocationHeader:
			err = encodeHeader(e, v)
		case LocationQueryString:
			err = encodeQuery(e, v)
		case LocationURI:
			s, ok := v.Value.(string)
			if !ok {
				return fmt.Errorf("uri value %s is %T, not string", v.Name, v.Value)
			}
			err = e.SetURI(v.Name, s)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func encodeHeader(e *Encoder, v Value) error {
	switch vv := v.Value.(type) {
	case string:
		e.SetHeader(v.Name, vv)
	case []string:
		for _, s := range vv {
			e.AddHeader(v.Name, s)
		}
	default:
		return fmt.Errorf("header value %s is %T", v.Name, v.Value)
	}
	return nil
}

func encodeQuery(e *Encoder, v Value) error {
	switch vv := v.Value.(type) {
	case string:
		e.SetQuery(v.Name, vv)
	case []string:
		for _, s := range vv {
			e.AddQuery(v.Name, s)
		}
	case smithy.Map:
		for _, entry := range vv {
			s, _ := entry.Value.(string)
			e.SetQuery(entry.Key, s)
		}
	default:
		return fmt.Errorf("query value %s is %T", v.Name, v.Value)
	}
	return nil
}
