// Package query implements parameter-list request marshalling for the Query
// and EC2 protocols. An input structure is flattened into an ordered list of
// name/value parameters: nested structures extend the name with ".", and list
// and map entries carry a 1-based index.
//
// Given a list member SubnetIds whose elements are tagged SubnetIdentifier,
//
//	SubnetIds.SubnetIdentifier.1=subnet-1
//	SubnetIds.SubnetIdentifier.2=subnet-2
//
// A present but empty list or map is written as a single parameter with an
// empty value, so it can be told apart from an absent one.
package query
