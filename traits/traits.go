// Package traits defines representations of Smithy IDL traits that appear in
// schemas and drive request marshalling.
package traits

// Enum represents smithy.api#enum, the closed set of values a string shape
// may take.
type Enum struct {
	Values []string
}

// TraitID identifies the trait.
func (*Enum) TraitID() string { return "smithy.api#enum" }

// Exception flags a structure as a client-side error payload.
type Exception struct{}

// TraitID identifies the trait.
func (*Exception) TraitID() string { return "aws.api#exception" }

// Fault flags a structure as a service-side error payload.
type Fault struct{}

// TraitID identifies the trait.
func (*Fault) TraitID() string { return "aws.api#fault" }

// EC2QueryName represents aws.protocols#ec2QueryName.
type EC2QueryName struct {
	Name string
}

// TraitID identifies the trait.
func (*EC2QueryName) TraitID() string { return "aws.protocols#ec2QueryName" }
