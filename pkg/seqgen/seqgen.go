// Package seqgen turns an example sequence template into a C preprocessor macro.
//
// A template is an ordinary header or implementation file written around the
// placeholder container type ExSeq, which wraps the placeholder element type
// Example. Everything above the sentinel comment is echoed unchanged, and the
// qualifying lines are re-emitted as the body of GENERATE_SEQ_HEADER or
// GENERATE_SEQ_BODY with the placeholders replaced by macro parameters.
package seqgen

import "fmt"

const (
	// Sentinel ends the part of the template that is scanned. It is echoed but never saved.
	Sentinel = "/* Autogenerated code below this point (including this comment). */"

	// ElementPlaceholder stands for the element type supplied by the macro caller.
	ElementPlaceholder = "Example"
	// ContainerPlaceholder stands for the name prefix supplied by the macro caller.
	ContainerPlaceholder = "ExSeq"
	// ContainerPrefix is ContainerPlaceholder joined to a suffix, e.g. ExSeq_New.
	ContainerPrefix = ContainerPlaceholder + "_"

	// PlaceholderDecl makes the example compile on its own and never reaches the macro.
	PlaceholderDecl = "typedef double Example;"

	// TypeParam and SeqParam are the formal parameters of the generated macro.
	TypeParam = "type"
	SeqParam  = "seqType"

	// MacroStem is the fixed part of the generated macro names.
	MacroStem = "SEQ"

	// HeaderGuardClose is appended after the macro in header mode.
	HeaderGuardClose = "#endif /* MNW_BASE_SEQ_H_ */"

	bodyIndent   = "    "
	continuation = " \\"
)

// Mode selects between header and implementation output.
type Mode string

const (
	ModeHeader Mode = "h"
	ModeBody   Mode = "c"
)

// ValidModes returns the accepted mode literals.
func ValidModes() []string {
	return []string{string(ModeHeader), string(ModeBody)}
}

// ParseMode converts a command-line literal into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeHeader, ModeBody:
		return Mode(s), nil
	}
	return "", &UsageError{Arg: s}
}

// MacroName returns the name of the macro generated in this mode.
func (m Mode) MacroName() string {
	if m == ModeHeader {
		return fmt.Sprintf("GENERATE_%s_HEADER", MacroStem)
	}
	return fmt.Sprintf("GENERATE_%s_BODY", MacroStem)
}

// String returns a human readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeHeader:
		return "header"
	case ModeBody:
		return "implementation"
	}
	return string(m)
}
