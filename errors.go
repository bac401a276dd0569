package smithy

import "fmt"

// InvalidMarshallingInputError is returned when a marshaller is handed input
// it cannot marshal: a nil top-level request, or an instance graph deeper
// than the marshaller's depth limit. No partial output accompanies it.
type InvalidMarshallingInputError struct {
	// Operation being marshalled, if known.
	Operation string
	Reason    string
}

func (e *InvalidMarshallingInputError) Error() string {
	msg := "invalid argument passed to marshal"
	if len(e.Operation) != 0 {
		msg += " " + e.Operation
	}
	if len(e.Reason) != 0 {
		msg += ": " + e.Reason
	}
	return msg
}

// UnknownProtocolError is returned for a Protocol value outside the closed
// set this package knows. It indicates a programming error.
type UnknownProtocolError struct {
	Protocol Protocol
}

func (e *UnknownProtocolError) Error() string {
	return fmt.Sprintf("unknown protocol %d", int(e.Protocol))
}

// MissingOperationError is returned when an operation descriptor is requested
// without an operation.
type MissingOperationError struct{}

func (e *MissingOperationError) Error() string {
	return "the operation parameter must be specified"
}

// SerializationError wraps a failure to encode a present value, e.g. a member
// whose Go value does not fit the modeled type.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialization failed: %v", e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}
