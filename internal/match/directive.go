package match

//go:generate go tool stringer -type=Directive,Conversion -output=directive_string.go

// Directive is the per-member mapping decision.
type Directive int

const (
	_ Directive = iota // zero value is not a valid directive

	// DirectiveCopy copies the same-named source member.
	DirectiveCopy
	// DirectiveIgnore leaves the destination member untouched.
	DirectiveIgnore
)

// Conversion is the value step the executor performs for a copied member.
type Conversion int

const (
	_ Conversion = iota // ignored members carry no conversion

	// ConversionAssign assigns the source value as is.
	ConversionAssign
	// ConversionWrap stores a bare source value into a wrapped destination.
	ConversionWrap
	// ConversionUnwrap extracts the inner value of a wrapped source.
	ConversionUnwrap
)
