package marshal

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	smithy "github.com/aws/smithy-marshal"
	"github.com/aws/smithy-marshal/httpbinding"
	"github.com/aws/smithy-marshal/logging"
	"github.com/aws/smithy-marshal/middleware"
	"github.com/aws/smithy-marshal/middleware/id"
	"github.com/aws/smithy-marshal/operation"
	"github.com/aws/smithy-marshal/query"
	"github.com/aws/smithy-marshal/xml"
)

type resolveDescriptor struct{}

func (*resolveDescriptor) ID() string { return id.OperationDescriptor }

func (*resolveDescriptor) HandleMiddleware(ctx context.Context, input interface{}, next middleware.Handler) (
	interface{}, error,
) {
	req := input.(*request)
	res := req.result

	desc, err := operation.Build(req.service, req.op)
	if err != nil {
		return nil, err
	}
	kind, err := smithy.MarshallingKindFor(res.Protocol)
	if err != nil {
		return nil, err
	}
	eu, err := smithy.ErrorUnmarshallerFor(res.Protocol)
	if err != nil {
		return nil, err
	}

	res.Descriptor = desc
	res.Kind = kind
	res.ErrorUnmarshaller = eu
	res.Method = desc.HTTPMethod

	return next.Handle(ctx, input)
}

type validateInput struct{}

func (*validateInput) ID() string { return id.OperationInputValidation }

func (*validateInput) HandleMiddleware(ctx context.Context, input interface{}, next middleware.Handler) (
	interface{}, error,
) {
	req := input.(*request)
	action := req.result.Descriptor.Action

	if req.schema == nil {
		return nil, &smithy.InvalidMarshallingInputError{
			Operation: action,
			Reason:    "input schema must not be nil",
		}
	}
	if !smithy.IsStructure(req.schema) {
		return nil, &smithy.InvalidMarshallingInputError{
			Operation: action,
			Reason:    fmt.Sprintf("input shape %s is a %s, not a structure", req.schema.ID(), req.schema.Type()),
		}
	}
	if _, ok := smithy.Indirect(req.input); !ok {
		return nil, &smithy.InvalidMarshallingInputError{
			Operation: action,
			Reason:    "input must not be nil",
		}
	}

	return next.Handle(ctx, input)
}

type serializeOperation struct {
	registry *httpbinding.Registry
}

func (*serializeOperation) ID() string { return id.OperationSerializer }

func (m *serializeOperation) HandleMiddleware(ctx context.Context, input interface{}, next middleware.Handler) (
	interface{}, error,
) {
	req := input.(*request)
	res := req.result
	logger := middleware.GetLogger(ctx)

	switch {
	case res.Protocol == smithy.ProtocolRESTXML:
		body, err := xml.Marshal(res.Descriptor, req.schema, req.input)
		if err != nil {
			return nil, err
		}
		bindings, err := httpbinding.Marshal(req.input, httpBound(m.table(ctx, req.schema)))
		if err != nil {
			return nil, err
		}
		res.Bindings, res.Body = bindings, body

	case res.Kind == smithy.MarshallingKindParameterList:
		params, err := query.Marshal(res.Descriptor, req.service.APIVersion, req.schema, req.input,
			func(o *query.Options) {
				o.Protocol = res.Protocol
			})
		if err != nil {
			return nil, err
		}
		res.Params, res.Body = params, []byte(params.Encode())

	default:
		bindings, err := httpbinding.Marshal(req.input, m.table(ctx, req.schema))
		if err != nil {
			return nil, err
		}
		res.Bindings = bindings
		if res.Protocol == smithy.ProtocolJSON || len(bindings.At(httpbinding.LocationPayload)) != 0 {
			res.Body = bindings.Payload()
		}
	}

	logger.Logf(logging.Debug, "marshalled %s input %s with %s (%s), %d byte body",
		res.Descriptor.Action, req.schema.ID(), res.Protocol, res.Kind, len(res.Body))

	return next.Handle(ctx, input)
}

func (m *serializeOperation) table(ctx context.Context, s *smithy.Schema) *httpbinding.Table {
	if t, ok := m.registry.Table(s.ID()); ok {
		return t
	}
	middleware.GetLogger(ctx).Logf(logging.Warn,
		"no binding table registered for %s, deriving one for this call", s.ID())
	return httpbinding.TableOf(s)
}

// httpBound returns the bindings of t that are not bound to the payload.
func httpBound(t *httpbinding.Table) *httpbinding.Table {
	var bound []httpbinding.Binding
	for _, b := range t.Bindings() {
		if b.Location != httpbinding.LocationPayload {
			bound = append(bound, b)
		}
	}
	return httpbinding.NewTable(bound...)
}

type applyHTTPBindings struct{}

func (*applyHTTPBindings) ID() string { return id.HTTPBindings }

func (*applyHTTPBindings) HandleMiddleware(ctx context.Context, input interface{}, next middleware.Handler) (
	interface{}, error,
) {
	res := input.(*request).result

	path, rawQuery := splitRequestURI(res.Descriptor.RequestURI)
	enc, err := httpbinding.NewEncoder(path, rawQuery, res.Header)
	if err != nil {
		return nil, &smithy.SerializationError{Err: err}
	}
	if res.Bindings != nil {
		if err := res.Bindings.Encode(enc); err != nil {
			return nil, &smithy.SerializationError{Err: err}
		}
	}

	hreq, err := enc.Encode(&http.Request{})
	if err != nil {
		return nil, &smithy.SerializationError{Err: err}
	}
	if strings.Contains(hreq.URL.Path, "{") {
		return nil, &smithy.InvalidMarshallingInputError{
			Operation: res.Descriptor.Action,
			Reason:    fmt.Sprintf("request URI %s has unbound labels", hreq.URL.Path),
		}
	}

	res.Path = hreq.URL.Path
	res.RawPath = hreq.URL.RawPath
	res.RawQuery = hreq.URL.RawQuery
	res.Header = hreq.Header

	return next.Handle(ctx, input)
}

type setContentType struct{}

func (*setContentType) ID() string { return id.ContentType }

func (*setContentType) HandleMiddleware(ctx context.Context, input interface{}, next middleware.Handler) (
	interface{}, error,
) {
	res := input.(*request).result
	if len(res.Body) != 0 {
		ct, err := smithy.ContentType(res.Protocol)
		if err != nil {
			return nil, err
		}
		header(res).Set("Content-Type", ct)
	}
	return next.Handle(ctx, input)
}

type setAmzTarget struct{}

func (*setAmzTarget) ID() string { return id.AmzTarget }

func (*setAmzTarget) HandleMiddleware(ctx context.Context, input interface{}, next middleware.Handler) (
	interface{}, error,
) {
	res := input.(*request).result
	if res.Kind == smithy.MarshallingKindBindingTable && res.Descriptor.HasTarget() {
		header(res).Set("X-Amz-Target", res.Descriptor.Target)
	}
	return next.Handle(ctx, input)
}

func header(res *Result) http.Header {
	if res.Header == nil {
		res.Header = http.Header{}
	}
	return res.Header
}
