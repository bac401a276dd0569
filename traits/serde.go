package traits

// JSONName represents smithy.api#jsonName.
type JSONName struct {
	Name string
}

// TraitID identifies the trait.
func (*JSONName) TraitID() string { return "smithy.api#jsonName" }

// TimestampFormat represents smithy.api#timestampFormat. Format is one of
// date-time, http-date or epoch-seconds.
type TimestampFormat struct {
	Format string
}

// TraitID identifies the trait.
func (*TimestampFormat) TraitID() string { return "smithy.api#timestampFormat" }

// XMLFlattened represents smithy.api#xmlFlattened.
type XMLFlattened struct{}

// TraitID identifies the trait.
func (*XMLFlattened) TraitID() string { return "smithy.api#xmlFlattened" }

// XMLName represents smithy.api#xmlName.
type XMLName struct {
	Name string
}

// TraitID identifies the trait.
func (*XMLName) TraitID() string { return "smithy.api#xmlName" }

// XMLNamespace represents smithy.api#xmlNamespace.
type XMLNamespace struct {
	URI    string
	Prefix string
}

// TraitID identifies the trait.
func (*XMLNamespace) TraitID() string { return "smithy.api#xmlNamespace" }
