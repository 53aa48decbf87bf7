package ast

import "github.com/thiremani/cfasym/token"

// Expr covers the few expression forms that appear inside types: array
// dimensions, generic arguments and typeof operands.
type Expr interface {
	Node
	aExpr()
}

type ExprBase struct {
	node
	Loc token.Location
}

func (ExprBase) aExpr() {}

// TypeExpr is a type used as a generic argument, as in `S(int)`.
type TypeExpr struct {
	ExprBase
	Type Type
}

func NewTypeExpr(t Type) *TypeExpr { return &TypeExpr{Type: t} }

func (e *TypeExpr) String() string { return "Type Expression: " + e.Type.String() }

// NameExpr is an unresolved name.
type NameExpr struct {
	ExprBase
	Name string
}

func (e *NameExpr) String() string { return "Name: " + e.Name }

// ConstantExpr is a literal; Rep is its source spelling.
type ConstantExpr struct {
	ExprBase
	Rep  string
	Type Type
}

func NewIntConstant(rep string) *ConstantExpr {
	return &ConstantExpr{Rep: rep, Type: NewBasicType(SignedInt, NoQualifiers)}
}

func (e *ConstantExpr) String() string { return "constant expression (" + e.Rep + ")" }

// VariableExpr refers to a resolved declaration.
type VariableExpr struct {
	ExprBase
	Var DeclWithType
}

func NewVariableExpr(d DeclWithType) *VariableExpr {
	return &VariableExpr{ExprBase: ExprBase{Loc: d.Location()}, Var: d}
}

func (e *VariableExpr) String() string { return "Variable Expression: " + e.Var.GetName() }

// Attribute is a GCC-style attribute such as `aligned(8)`.
type Attribute struct {
	node
	Name   string
	Params []Expr
}

func (a *Attribute) String() string {
	if len(a.Params) == 0 {
		return "Attribute with name: " + a.Name
	}
	return "Attribute with name: " + a.Name + " with parameters: " + printVec(a.Params)
}
