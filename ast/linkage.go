package ast

// LinkageSpec describes how a declaration is linked and whether it is
// mangled, generated, or may be overridden by user code.
type LinkageSpec uint8

const (
	Mangled LinkageSpec = 1 << iota
	Generatable
	Overrideable
	Builtin
	GccBuiltin
)

const (
	Intrinsic  = Mangled | Generatable | Overrideable | Builtin
	C          = Generatable
	Cforall    = Mangled | Generatable
	AutoGen    = Mangled | Generatable | Overrideable
	Compiler   = Mangled | Builtin | GccBuiltin
	BuiltinCFA = Mangled | Generatable | Builtin
	BuiltinC   = Generatable | Builtin | GccBuiltin
)

func (l LinkageSpec) IsMangled() bool      { return l&Mangled != 0 }
func (l LinkageSpec) IsGeneratable() bool  { return l&Generatable != 0 }
func (l LinkageSpec) IsOverrideable() bool { return l&Overrideable != 0 }
func (l LinkageSpec) IsBuiltin() bool      { return l&Builtin != 0 }
func (l LinkageSpec) IsGccBuiltin() bool   { return l&GccBuiltin != 0 }

func (l LinkageSpec) String() string {
	switch l {
	case Intrinsic:
		return "intrinsic"
	case C:
		return "C"
	case Cforall:
		return "Cforall"
	case AutoGen:
		return "autogen"
	case Compiler:
		return "compiler built-in"
	case BuiltinCFA:
		return "cfa built-in"
	case BuiltinC:
		return "c built-in"
	}
	return "<unnamed linkage spec>"
}
