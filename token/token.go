package token

import "strconv"

// Location is the source position a declaration was parsed from.
// The zero Location marks a synthesized node.
type Location struct {
	File string
	Line int
	Col  int
}

func (l Location) IsSet() bool {
	return l.File != "" || l.Line != 0
}

func (l Location) String() string {
	if !l.IsSet() {
		return "<generated>"
	}
	return l.File + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Col)
}

// CompileError is a diagnostic meant for the end user, as opposed to an
// internal fault which panics.
type CompileError struct {
	Loc Location
	Msg string
}

func (e *CompileError) Error() string {
	return e.Loc.String() + ":" + e.Msg
}
