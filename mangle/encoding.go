package mangle

import "github.com/thiremani/cfasym/ast"

// Tokens of the mangled-name grammar. Basic types use the per-kind tokens
// held in the basic-type table.
const (
	PREFIX     = "_X" // every mangled declaration starts with this
	VOID       = "v"
	POINTER    = "P"
	ARRAY      = "A"
	FUNCTION   = "F"
	TUPLE      = "T"
	STRUCT     = "S"
	UNION      = "U"
	ENUM       = "M"
	TYPE       = "Y"
	ZERO       = "Z"
	ONE        = "O"
	QUAL_START = "N" // start of a nested S.T type
	QUAL_END   = "E"
	FORALL     = "Q"
	SEP        = "_"

	AUTOGEN   = "autogen__"
	INTRINSIC = "intrinsic__"

	VA_LIST = "__builtin_va_list"
)

const (
	CONST    = "K"
	VOLATILE = "V"
	ATOMIC   = "DA"
	MUTEX    = "X"
)

// typeVariableCodes is indexed by ast.TypeDeclKind.
var typeVariableCodes = [...]string{
	ast.Dtype:     "BD",
	ast.DStype:    "BDS",
	ast.Otype:     "BO",
	ast.Ftype:     "BF",
	ast.Ttype:     "BT",
	ast.Dimension: "BAL",
}

// TypeVariableCode returns the token that prefixes the index of a type
// variable of kind k.
func TypeVariableCode(k ast.TypeDeclKind) (string, bool) {
	if k < 0 || int(k) >= len(typeVariableCodes) {
		return "", false
	}
	return typeVariableCodes[k], true
}
