// Package operation builds the per-operation marshalling descriptor shared by
// every protocol marshaller.
package operation

import (
	smithy "github.com/aws/smithy-marshal"
)

// ServiceMetadata is the subset of service model metadata marshalling needs.
type ServiceMetadata struct {
	ServiceID  string
	APIVersion string
	Protocol   smithy.Protocol

	// TargetPrefix routes JSON protocol requests, e.g.
	// "AmazonEC2ContainerRegistry_V20150921". Empty for most services.
	TargetPrefix string
}

// HTTP is an operation's HTTP binding.
type HTTP struct {
	Method     string
	RequestURI string
}

// XMLNamespace is the xmlNamespace trait of an input reference.
type XMLNamespace struct {
	URI string
}

// Input is an operation's reference to its input shape.
type Input struct {
	Shape        string
	LocationName string
	XMLNamespace *XMLNamespace
}

// Operation is a modeled service operation.
type Operation struct {
	Name  string
	HTTP  HTTP
	Input *Input
}

// Descriptor carries what a marshaller needs to know about an operation.
// Optional fields are empty when unset.
type Descriptor struct {
	Action     string
	HTTPMethod string
	RequestURI string

	// LocationName overrides the payload's root element name.
	LocationName string

	XMLNamespaceURI string

	// Target is "<targetPrefix>.<operation>" for services with a target
	// prefix. Only JSON protocols use it.
	Target string
}

// HasTarget reports whether the descriptor carries a routing target.
func (d *Descriptor) HasTarget() bool {
	return len(d.Target) != 0
}

// Build returns the marshalling descriptor for op. The input reference and
// the service target prefix contribute only when present; no defaults are
// synthesized for them.
func Build(service *ServiceMetadata, op *Operation) (*Descriptor, error) {
	if op == nil {
		return nil, &smithy.MissingOperationError{}
	}

	d := &Descriptor{
		Action:     op.Name,
		HTTPMethod: op.HTTP.Method,
		RequestURI: op.HTTP.RequestURI,
	}

	if in := op.Input; in != nil {
		d.LocationName = in.LocationName
		if ns := in.XMLNamespace; ns != nil {
			d.XMLNamespaceURI = ns.URI
		}
	}

	if service != nil && len(service.TargetPrefix) != 0 {
		d.Target = service.TargetPrefix + "." + op.Name
	}

	return d, nil
}
