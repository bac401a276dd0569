package marshal

import (
	"net/http"

	smithy "github.com/aws/smithy-marshal"
	"github.com/aws/smithy-marshal/httpbinding"
	"github.com/aws/smithy-marshal/operation"
	"github.com/aws/smithy-marshal/query"
)

// Result is a marshalled request, ready to be handed to a transport.
type Result struct {
	Protocol          smithy.Protocol
	Kind              smithy.MarshallingKind
	Descriptor        *operation.Descriptor
	ErrorUnmarshaller smithy.ErrorUnmarshaller

	// Bindings holds the bound values of binding-table and REST-XML
	// requests.
	Bindings *httpbinding.Request

	// Params holds the parameters of Query and EC2 requests.
	Params *query.Request

	Method   string
	Path     string
	RawPath  string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// Request returns an HTTP request for the result against endpoint, e.g.
// "https://docdb.us-east-1.amazonaws.com".
func (r *Result) Request(endpoint string) (*http.Request, error) {
	req, err := http.NewRequest(r.Method, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.URL.Path = joinPath(req.URL.Path, r.Path)
	if len(r.RawPath) != 0 {
		req.URL.RawPath = joinPath(req.URL.EscapedPath(), r.RawPath)
	}
	req.URL.RawQuery = r.RawQuery
	req.Header = r.Header.Clone()
	if len(r.Body) != 0 {
		req.ContentLength = int64(len(r.Body))
		req.GetBody = r.body
		req.Body, _ = r.body()
	}
	return req, nil
}
