// Package codegen renders types as C declarators and emits the program
// entry-point wrapper.
package codegen

// Options controls how types and expressions are rendered.
type Options struct {
	// Pretty prefers readable names over the ones C needs, e.g. zero_t
	// instead of long int.
	Pretty bool
	// GenC targets plain C rather than the extended source dialect.
	GenC bool
	// LineMarks and PrintExprTypes are carried for the statement generator;
	// rendering types does not look at them.
	LineMarks      bool
	PrintExprTypes bool
}

// PrettyOptions renders for human-readable diagnostics.
var PrettyOptions = Options{Pretty: true}

// COptions renders for the generated C output.
var COptions = Options{GenC: true, LineMarks: true}
