package smithy

// Trait represents a trait applied to a shape in a Smithy model. Traits that
// drive marshalling (wire names, HTTP bindings, list/map wrappers, enum
// values, error flags) are attached to schemas.
type Trait interface {
	TraitID() string
}
