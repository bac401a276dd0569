package model

import (
	"fmt"

	smithy "github.com/aws/smithy-marshal"
	"github.com/aws/smithy-marshal/operation"
)

// Service returns the service metadata of the model.
func (m *Model) Service() (operation.ServiceMetadata, error) {
	p, err := smithy.ParseProtocol(m.Metadata.Protocol)
	if err != nil {
		return operation.ServiceMetadata{}, err
	}
	return operation.ServiceMetadata{
		ServiceID:    m.Metadata.ServiceID,
		APIVersion:   m.Metadata.APIVersion,
		Protocol:     p,
		TargetPrefix: m.Metadata.TargetPrefix,
	}, nil
}

// Operation returns the named operation.
func (m *Model) Operation(name string) (*operation.Operation, error) {
	op, ok := m.Operations[name]
	if !ok {
		return nil, fmt.Errorf("operation %q not found", name)
	}

	o := &operation.Operation{
		Name: op.Name,
		HTTP: operation.HTTP{
			Method:     op.HTTP.Method,
			RequestURI: op.HTTP.RequestURI,
		},
	}
	if in := op.Input; in != nil {
		o.Input = &operation.Input{
			Shape:        in.Shape,
			LocationName: in.LocationName,
		}
		if ns := in.XMLNamespace; ns != nil {
			o.Input.XMLNamespace = &operation.XMLNamespace{URI: ns.URI}
		}
	}
	return o, nil
}

// InputSchema returns the schema of the named operation's input. An
// operation without input gets an empty structure.
func (m *Model) InputSchema(name string) (*smithy.Schema, error) {
	op, err := m.Operation(name)
	if err != nil {
		return nil, err
	}
	if op.Input == nil {
		return smithy.NewSchema(m.Namespace()+"#"+op.Name+"Input", smithy.ShapeTypeStructure), nil
	}
	return m.Schema(op.Input.Shape)
}
