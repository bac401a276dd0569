package smithy

import "fmt"

// Protocol identifies the wire protocol a service speaks. The set is closed;
// values outside it are programming errors.
type Protocol int

// Enumerates Protocol.
const (
	ProtocolEC2 Protocol = iota + 1
	ProtocolQuery
	ProtocolRESTXML
	ProtocolJSON
	ProtocolRESTJSON
)

// Protocols returns every supported protocol.
func Protocols() []Protocol {
	return []Protocol{
		ProtocolEC2,
		ProtocolQuery,
		ProtocolRESTXML,
		ProtocolJSON,
		ProtocolRESTJSON,
	}
}

// String returns the protocol name as it appears in service models.
func (p Protocol) String() string {
	switch p {
	case ProtocolEC2:
		return "ec2"
	case ProtocolQuery:
		return "query"
	case ProtocolRESTXML:
		return "rest-xml"
	case ProtocolJSON:
		return "json"
	case ProtocolRESTJSON:
		return "rest-json"
	default:
		return fmt.Sprintf("Protocol(%d)", int(p))
	}
}

// ParseProtocol returns the Protocol for a service model protocol name.
func ParseProtocol(name string) (Protocol, error) {
	for _, p := range Protocols() {
		if p.String() == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown protocol %q", name)
}

// ErrorUnmarshaller names the strategy the response layer uses to decode
// error responses.
type ErrorUnmarshaller int

// Enumerates ErrorUnmarshaller.
const (
	// ErrorUnmarshallerNone means the protocol's error handling is fixed by
	// the transport layer and no strategy is handed to it.
	ErrorUnmarshallerNone ErrorUnmarshaller = iota

	// ErrorUnmarshallerLegacy decodes bare <Response><Errors><Error> bodies.
	ErrorUnmarshallerLegacy

	// ErrorUnmarshallerStandard decodes <ErrorResponse><Error> bodies.
	ErrorUnmarshallerStandard
)

// String returns the strategy name, or "" for ErrorUnmarshallerNone.
func (u ErrorUnmarshaller) String() string {
	switch u {
	case ErrorUnmarshallerLegacy:
		return "LegacyErrorUnmarshaller"
	case ErrorUnmarshallerStandard:
		return "StandardErrorUnmarshaller"
	default:
		return ""
	}
}

// MarshallingKind is the request marshalling algorithm a protocol uses.
type MarshallingKind int

// Enumerates MarshallingKind.
const (
	// MarshallingKindBindingTable walks a static table of member bindings.
	MarshallingKindBindingTable MarshallingKind = iota + 1

	// MarshallingKindParameterList flattens the input into ordered
	// name/value parameters.
	MarshallingKindParameterList
)

func (k MarshallingKind) String() string {
	switch k {
	case MarshallingKindBindingTable:
		return "BindingTable"
	case MarshallingKindParameterList:
		return "ParameterList"
	default:
		return fmt.Sprintf("MarshallingKind(%d)", int(k))
	}
}

// ErrorUnmarshallerFor returns the error unmarshalling strategy for p.
func ErrorUnmarshallerFor(p Protocol) (ErrorUnmarshaller, error) {
	switch p {
	case ProtocolEC2:
		return ErrorUnmarshallerLegacy, nil
	case ProtocolQuery, ProtocolRESTXML:
		return ErrorUnmarshallerStandard, nil
	case ProtocolJSON, ProtocolRESTJSON:
		// JSON protocols have their error unmarshaller fixed by the transport.
		return ErrorUnmarshallerNone, nil
	default:
		return ErrorUnmarshallerNone, &UnknownProtocolError{Protocol: p}
	}
}

// MarshallingKindFor returns the marshalling algorithm for p.
func MarshallingKindFor(p Protocol) (MarshallingKind, error) {
	switch p {
	case ProtocolEC2, ProtocolQuery, ProtocolRESTXML:
		return MarshallingKindParameterList, nil
	case ProtocolJSON, ProtocolRESTJSON:
		return MarshallingKindBindingTable, nil
	default:
		return 0, &UnknownProtocolError{Protocol: p}
	}
}

// ContentType returns the request content type for p.
func ContentType(p Protocol) (string, error) {
	switch p {
	case ProtocolEC2, ProtocolQuery:
		return "application/x-www-form-urlencoded", nil
	case ProtocolRESTXML:
		return "application/xml", nil
	case ProtocolJSON:
		return "application/x-amz-json-1.1", nil
	case ProtocolRESTJSON:
		return "application/json", nil
	default:
		return "", &UnknownProtocolError{Protocol: p}
	}
}
