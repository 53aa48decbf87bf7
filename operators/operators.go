// Package operators maps the source spellings of overloadable operators,
// such as `?+?` or `?{}`, to the identifiers used for them in generated
// code and mangled names.
package operators

// Kind classifies an operator by its syntactic position.
type Kind int

const (
	Index Kind = iota
	Ctor
	Dtor
	Call
	PostfixAssign
	Prefix
	PrefixAssign
	Infix
	InfixAssign
	LabelAddress
	Constant
)

// Info is one row of the operator table.
type Info struct {
	InputName    string // spelling in source, e.g. "?+?"
	Symbol       string // C operator text, e.g. "+"
	OutputName   string // identifier used in mangled names
	FriendlyName string
	Kind         Kind
}

var table = []Info{
	{"?[?]", "", "_operator_index", "Index", Index},
	{"?{}", "=", "_constructor", "Constructor", Ctor},
	{"^?{}", "", "_destructor", "Destructor", Dtor},
	{"?()", "", "_operator_call", "Call Operator", Call},
	{"?++", "++", "_operator_postincr", "Postfix Increment", PostfixAssign},
	{"?--", "--", "_operator_postdecr", "Postfix Decrement", PostfixAssign},
	{"*?", "*", "_operator_deref", "Dereference", Prefix},
	{"+?", "+", "_operator_unaryplus", "Plus", Prefix},
	{"-?", "-", "_operator_unaryminus", "Minus", Prefix},
	{"~?", "~", "_operator_bitnot", "Bitwise Not", Prefix},
	{"!?", "!", "_operator_lognot", "Logical Not", Prefix},
	{"++?", "++", "_operator_preincr", "Prefix Increment", PrefixAssign},
	{"--?", "--", "_operator_predecr", "Prefix Decrement", PrefixAssign},
	{"?\\?", "\\", "_operator_exponential", "Exponentiation", Infix},
	{"?*?", "*", "_operator_multiply", "Multiplication", Infix},
	{"?/?", "/", "_operator_divide", "Division", Infix},
	{"?%?", "%", "_operator_modulus", "Modulo", Infix},
	{"?+?", "+", "_operator_add", "Addition", Infix},
	{"?-?", "-", "_operator_subtract", "Subtraction", Infix},
	{"?<<?", "<<", "_operator_shiftleft", "Shift Left", Infix},
	{"?>>?", ">>", "_operator_shiftright", "Shift Right", Infix},
	{"?<?", "<", "_operator_less", "Less-than", Infix},
	{"?>?", ">", "_operator_greater", "Greater-than", Infix},
	{"?<=?", "<=", "_operator_lessequal", "Less-than-or-Equal", Infix},
	{"?>=?", ">=", "_operator_greaterequal", "Greater-than-or-Equal", Infix},
	{"?==?", "==", "_operator_equal", "Equality", Infix},
	{"?!=?", "!=", "_operator_notequal", "Not-Equal", Infix},
	{"?&?", "&", "_operator_bitand", "Bitwise And", Infix},
	{"?^?", "^", "_operator_bitxor", "Bitwise Xor", Infix},
	{"?|?", "|", "_operator_bitor", "Bitwise Or", Infix},
	{"?=?", "=", "_operator_assign", "Assignment", InfixAssign},
	{"?\\=?", "\\=", "_operator_expassign", "Exponentiation Assignment", InfixAssign},
	{"?*=?", "*=", "_operator_multassign", "Multiplication Assignment", InfixAssign},
	{"?/=?", "/=", "_operator_divassign", "Division Assignment", InfixAssign},
	{"?%=?", "%=", "_operator_modassign", "Modulo Assignment", InfixAssign},
	{"?+=?", "+=", "_operator_addassign", "Addition Assignment", InfixAssign},
	{"?-=?", "-=", "_operator_subassign", "Subtraction Assignment", InfixAssign},
	{"?<<=?", "<<=", "_operator_shiftleftassign", "Shift Left Assignment", InfixAssign},
	{"?>>=?", ">>=", "_operator_shiftrightassign", "Shift Right Assignment", InfixAssign},
	{"?&=?", "&=", "_operator_bitandassign", "Bitwise And Assignment", InfixAssign},
	{"?^=?", "^=", "_operator_bitxorassign", "Bitwise Xor Assignment", InfixAssign},
	{"?|=?", "|=", "_operator_bitorassign", "Bitwise Or Assignment", InfixAssign},
	{"&&", "&&", "&&", "Logical And", LabelAddress},
	{"0", "0", "_constant_zero", "Zero", Constant},
	{"1", "1", "_constant_one", "One", Constant},
}

var byInputName = func() map[string]*Info {
	m := make(map[string]*Info, len(table))
	for i := range table {
		m[table[i].InputName] = &table[i]
	}
	return m
}()

// Lookup returns the table row for an operator's source spelling. The
// returned Info must not be modified.
func Lookup(name string) (*Info, bool) {
	info, ok := byInputName[name]
	return info, ok
}

// All returns a copy of the table in declaration order.
func All() []Info {
	return append([]Info(nil), table...)
}

func IsOperator(name string) bool {
	_, ok := byInputName[name]
	return ok
}

func kindOf(name string) (Kind, bool) {
	info, ok := byInputName[name]
	if !ok {
		return 0, false
	}
	return info.Kind, true
}

func IsConstructor(name string) bool {
	k, ok := kindOf(name)
	return ok && k == Ctor
}

func IsDestructor(name string) bool {
	k, ok := kindOf(name)
	return ok && k == Dtor
}

func IsCtorDtor(name string) bool {
	return IsConstructor(name) || IsDestructor(name)
}

// IsAssignment reports whether name is an assignment operator, compound
// assignments included.
func IsAssignment(name string) bool {
	k, ok := kindOf(name)
	return ok && (k == InfixAssign || k == PrefixAssign || k == PostfixAssign)
}

// IsCtorDtorAssign reports whether name is a constructor, a destructor or
// plain assignment, the routines that may be generated for a type.
func IsCtorDtorAssign(name string) bool {
	return IsCtorDtor(name) || name == "?=?"
}
