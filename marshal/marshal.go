package marshal

import (
	"context"

	smithy "github.com/aws/smithy-marshal"
	"github.com/aws/smithy-marshal/httpbinding"
	"github.com/aws/smithy-marshal/logging"
	"github.com/aws/smithy-marshal/middleware"
	"github.com/aws/smithy-marshal/operation"
)

// Options configures a Marshaller.
type Options struct {
	// Logger receives DEBUG entries for each marshalled request and WARN
	// entries when a binding table is derived per call. Defaults to
	// logging.Noop.
	Logger logging.Logger

	// Schemas are the input structures whose binding tables are derived once,
	// at construction. Inputs of other shapes have theirs derived on every
	// call.
	Schemas []*smithy.Schema

	// APIOptions mutate the middleware stack of every call, after the
	// default middleware are added.
	APIOptions []func(*middleware.Stack) error
}

// Marshaller marshals the operation inputs of one service. It is safe for
// concurrent use.
type Marshaller struct {
	service  operation.ServiceMetadata
	options  Options
	registry *httpbinding.Registry
}

// New returns a Marshaller for service.
func New(service operation.ServiceMetadata, optFns ...func(*Options)) *Marshaller {
	var o Options
	for _, fn := range optFns {
		fn(&o)
	}
	if o.Logger == nil {
		o.Logger = logging.Noop{}
	}
	o.Schemas = append([]*smithy.Schema(nil), o.Schemas...)
	o.APIOptions = append([]func(*middleware.Stack) error(nil), o.APIOptions...)

	return &Marshaller{
		service:  service,
		options:  o,
		registry: httpbinding.NewRegistry(o.Schemas...),
	}
}

// Service returns the service metadata the marshaller was built with.
func (m *Marshaller) Service() operation.ServiceMetadata {
	return m.service
}

// Marshal marshals in, an instance of the structure schema s, as the input
// of op.
func (m *Marshaller) Marshal(ctx context.Context, op *operation.Operation, s *smithy.Schema, in any) (*Result, error) {
	ctx = middleware.SetLogger(ctx, m.options.Logger)

	stack := middleware.NewStack("Marshal")
	if err := m.addDefaultMiddleware(stack); err != nil {
		return nil, err
	}
	for _, fn := range m.options.APIOptions {
		if err := fn(stack); err != nil {
			return nil, err
		}
	}

	req := &request{
		service: &m.service,
		op:      op,
		schema:  s,
		input:   in,
		result:  &Result{Protocol: m.service.Protocol},
	}
	out, err := stack.HandleMiddleware(ctx, req, middleware.HandlerFunc(
		func(ctx context.Context, input interface{}) (interface{}, error) {
			return input.(*request).result, nil
		},
	))
	if err != nil {
		return nil, err
	}
	return out.(*Result), nil
}

func (m *Marshaller) addDefaultMiddleware(stack *middleware.Stack) error {
	if err := stack.Initialize.Add(&resolveDescriptor{}, middleware.After); err != nil {
		return err
	}
	if err := stack.Initialize.Add(&validateInput{}, middleware.After); err != nil {
		return err
	}
	if err := stack.Serialize.Add(&serializeOperation{registry: m.registry}, middleware.After); err != nil {
		return err
	}
	if err := stack.Build.Add(&applyHTTPBindings{}, middleware.After); err != nil {
		return err
	}
	if err := stack.Build.Add(&setContentType{}, middleware.After); err != nil {
		return err
	}
	return stack.Build.Add(&setAmzTarget{}, middleware.After)
}

// request is the input passed down the stack. Middleware fill in result.
type request struct {
	service *operation.ServiceMetadata
	op      *operation.Operation
	schema  *smithy.Schema
	input   any
	result  *Result
}
