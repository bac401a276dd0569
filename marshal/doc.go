// Package marshal dispatches operation inputs to the request marshaller of
// their service's protocol.
//
// A Marshaller is built once per service. Each call to Marshal runs a
// middleware stack that resolves the operation descriptor and protocol
// strategies, serializes the input with the binding-table or parameter-list
// marshaller, and then sets the request's content type, routing target and
// HTTP bindings.
//
//	m := marshal.New(service, func(o *marshal.Options) {
//		o.Schemas = []*smithy.Schema{listArtifactsInput}
//	})
//	res, err := m.Marshal(ctx, op, listArtifactsInput, in)
package marshal
