// Package id names the middleware slots of a marshalling stack.
package id

const (
	// OperationDescriptor is the slot ID for middleware that resolves the operation descriptor and protocol strategies.
	OperationDescriptor = "OperationDescriptor"
	// OperationInputValidation is the slot ID for middleware that rejects input that cannot be marshalled.
	OperationInputValidation = "OperationInputValidation"
	// OperationSerializer is the slot ID for middleware that handles the serialization of operation requests.
	OperationSerializer = "OperationSerializer"
	// HTTPBindings is the slot ID for middleware that applies header, query and URI bindings to the request.
	HTTPBindings = "HTTPBindings"
	// ContentType is the slot ID for middleware that sets the request content type.
	ContentType = "ContentType"
	// AmzTarget is the slot ID for middleware that sets the X-Amz-Target routing header.
	AmzTarget = "AmzTarget"
)
