package ast

import (
	"fmt"
	"strings"
)

// Type is implemented by every type node. The set of variants is closed;
// consumers switch over the concrete types below.
type Type interface {
	Node
	Qualifiers() Qualifiers
	Attributes() []*Attribute
	aType()
}

// TypeBase carries the state shared by every type node.
type TypeBase struct {
	node
	Quals Qualifiers
	Attrs []*Attribute
}

func (t TypeBase) Qualifiers() Qualifiers   { return t.Quals }
func (t TypeBase) Attributes() []*Attribute { return t.Attrs }
func (TypeBase) aType()                     {}

func (t TypeBase) prefix() string {
	if t.Quals == NoQualifiers {
		return ""
	}
	return t.Quals.String() + " "
}

// ReferenceToType is implemented by the instantiation types, which refer to
// a declaration by name and carry generic arguments.
type ReferenceToType interface {
	Type
	TypeName() string
	TypeParams() []Expr
}

type VoidType struct {
	TypeBase
}

func NewVoidType(q Qualifiers) *VoidType {
	return &VoidType{TypeBase: TypeBase{Quals: q}}
}

func (t *VoidType) String() string { return t.prefix() + "void" }

type BasicType struct {
	TypeBase
	Kind BasicKind
}

func NewBasicType(k BasicKind, q Qualifiers) *BasicType {
	return &BasicType{TypeBase: TypeBase{Quals: q}, Kind: k}
}

func (t *BasicType) String() string { return t.prefix() + t.Kind.String() }

// PointerType is also used for array parameters that decayed to pointers;
// such pointers keep their array fields and render as arrays.
type PointerType struct {
	TypeBase
	Base      Type
	Dimension Expr
	IsVarLen  bool
	IsStatic  bool
}

func NewPointerType(base Type, q Qualifiers) *PointerType {
	return &PointerType{TypeBase: TypeBase{Quals: q}, Base: base}
}

// IsArray reports whether the pointer is spelled as an array.
func (t *PointerType) IsArray() bool {
	return t.IsStatic || t.IsVarLen || t.Dimension != nil
}

func (t *PointerType) String() string {
	if t.IsArray() {
		return t.prefix() + "decayed " + arrayString(t.Base, t.Dimension, t.IsVarLen, t.IsStatic)
	}
	return t.prefix() + "pointer to " + t.Base.String()
}

type ArrayType struct {
	TypeBase
	Base      Type
	Dimension Expr
	IsVarLen  bool
	IsStatic  bool
}

func NewArrayType(base Type, dim Expr, q Qualifiers) *ArrayType {
	return &ArrayType{TypeBase: TypeBase{Quals: q}, Base: base, Dimension: dim}
}

func (t *ArrayType) String() string {
	return t.prefix() + arrayString(t.Base, t.Dimension, t.IsVarLen, t.IsStatic)
}

func arrayString(base Type, dim Expr, isVarLen, isStatic bool) string {
	var sb strings.Builder
	if isStatic {
		sb.WriteString("static ")
	}
	if isVarLen {
		sb.WriteString("variable length array of ")
	} else {
		sb.WriteString("array of ")
	}
	sb.WriteString(base.String())
	if dim != nil {
		sb.WriteString(" with dimension of ")
		sb.WriteString(dim.String())
	}
	return sb.String()
}

type ReferenceType struct {
	TypeBase
	Base Type
}

func NewReferenceType(base Type, q Qualifiers) *ReferenceType {
	return &ReferenceType{TypeBase: TypeBase{Quals: q}, Base: base}
}

func (t *ReferenceType) String() string { return t.prefix() + "reference to " + t.Base.String() }

// FunctionType is the only type whose forall list may be non-empty.
type FunctionType struct {
	TypeBase
	Forall     []*TypeDecl
	Assertions []DeclWithType
	Params     []Type
	Returns    []Type
	IsVarArgs  bool
}

// IsTtype reports whether the last parameter or return is a ttype pack.
func (t *FunctionType) IsTtype() bool {
	return endsInTtype(t.Returns) || endsInTtype(t.Params)
}

func endsInTtype(ts []Type) bool {
	if len(ts) == 0 {
		return false
	}
	inst, ok := ts[len(ts)-1].(*TypeInstType)
	return ok && inst.Kind == Ttype
}

func (t *FunctionType) String() string {
	var sb strings.Builder
	if len(t.Forall) > 0 {
		sb.WriteString("forall ")
		sb.WriteString(printVec(t.Forall))
		sb.WriteString(" ")
	}
	sb.WriteString(t.prefix())
	sb.WriteString("function with parameters (")
	sb.WriteString(printVec(t.Params))
	if t.IsVarArgs {
		if len(t.Params) > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("...")
	}
	sb.WriteString(") returning (")
	sb.WriteString(printVec(t.Returns))
	sb.WriteString(")")
	return sb.String()
}

type StructInstType struct {
	TypeBase
	Name   string
	Params []Expr
	Base   *StructDecl // not owned; nil until resolved
}

func NewStructInstType(decl *StructDecl, params []Expr, q Qualifiers) *StructInstType {
	t := NewStructInstTypeNamed(decl.Name, params, q)
	t.Base = decl
	return t
}

// NewStructInstTypeNamed builds an unresolved reference to struct name.
func NewStructInstTypeNamed(name string, params []Expr, q Qualifiers) *StructInstType {
	return &StructInstType{TypeBase: TypeBase{Quals: q}, Name: name, Params: params}
}

func (t *StructInstType) TypeName() string   { return t.Name }
func (t *StructInstType) TypeParams() []Expr { return t.Params }
func (t *StructInstType) IsComplete() bool   { return t.Base != nil && t.Base.Body }

func (t *StructInstType) String() string {
	return instString(t.prefix(), "struct", t.Name, t.Params)
}

type UnionInstType struct {
	TypeBase
	Name   string
	Params []Expr
	Base   *UnionDecl // not owned; nil until resolved
}

func NewUnionInstType(decl *UnionDecl, params []Expr, q Qualifiers) *UnionInstType {
	t := NewUnionInstTypeNamed(decl.Name, params, q)
	t.Base = decl
	return t
}

func NewUnionInstTypeNamed(name string, params []Expr, q Qualifiers) *UnionInstType {
	return &UnionInstType{TypeBase: TypeBase{Quals: q}, Name: name, Params: params}
}

func (t *UnionInstType) TypeName() string   { return t.Name }
func (t *UnionInstType) TypeParams() []Expr { return t.Params }
func (t *UnionInstType) IsComplete() bool   { return t.Base != nil && t.Base.Body }

func (t *UnionInstType) String() string {
	return instString(t.prefix(), "union", t.Name, t.Params)
}

type EnumInstType struct {
	TypeBase
	Name   string
	Params []Expr
	Base   *EnumDecl // not owned; nil until resolved
}

func NewEnumInstType(decl *EnumDecl, q Qualifiers) *EnumInstType {
	t := NewEnumInstTypeNamed(decl.Name, q)
	t.Base = decl
	return t
}

func NewEnumInstTypeNamed(name string, q Qualifiers) *EnumInstType {
	return &EnumInstType{TypeBase: TypeBase{Quals: q}, Name: name}
}

func (t *EnumInstType) TypeName() string   { return t.Name }
func (t *EnumInstType) TypeParams() []Expr { return t.Params }
func (t *EnumInstType) IsComplete() bool   { return t.Base != nil && t.Base.Body }

func (t *EnumInstType) String() string {
	return instString(t.prefix(), "enum", t.Name, t.Params)
}

// TypeInstType names a type variable or a type declared with `otype`/`dtype`.
type TypeInstType struct {
	TypeBase
	Name   string
	Params []Expr
	Base   *TypeDecl // not owned; nil until resolved
	Kind   TypeDeclKind
}

func NewTypeInstType(decl *TypeDecl, q Qualifiers) *TypeInstType {
	t := NewTypeInstTypeNamed(decl.Name, decl.Kind, q)
	t.Base = decl
	return t
}

// NewTypeInstTypeNamed refers to a type by name before its declaration is
// resolved. kind is what the reference site implies.
func NewTypeInstTypeNamed(name string, kind TypeDeclKind, q Qualifiers) *TypeInstType {
	return &TypeInstType{TypeBase: TypeBase{Quals: q}, Name: name, Kind: kind}
}

func (t *TypeInstType) TypeName() string   { return t.Name }
func (t *TypeInstType) TypeParams() []Expr { return t.Params }

// IsComplete reports whether the named type variable is sized.
func (t *TypeInstType) IsComplete() bool { return t.Base != nil && t.Base.Sized }

func (t *TypeInstType) String() string {
	return fmt.Sprintf("%sinstance of type %s (%s)", t.prefix(), t.Name, t.Kind)
}

type TraitInstType struct {
	TypeBase
	Name   string
	Params []Expr
	Base   *TraitDecl // not owned; nil until resolved
}

func NewTraitInstType(decl *TraitDecl, params []Expr) *TraitInstType {
	t := NewTraitInstTypeNamed(decl.Name, params)
	t.Base = decl
	return t
}

func NewTraitInstTypeNamed(name string, params []Expr) *TraitInstType {
	return &TraitInstType{Name: name, Params: params}
}

func (t *TraitInstType) TypeName() string   { return t.Name }
func (t *TraitInstType) TypeParams() []Expr { return t.Params }

func (t *TraitInstType) String() string {
	return instString(t.prefix(), "trait", t.Name, t.Params)
}

func instString(prefix, kind, name string, params []Expr) string {
	s := prefix + "instance of " + kind + " " + name
	if len(params) > 0 {
		s += " with parameters (" + printVec(params) + ")"
	}
	return s
}

type TupleType struct {
	TypeBase
	Types []Type
}

func NewTupleType(types []Type, q Qualifiers) *TupleType {
	return &TupleType{TypeBase: TypeBase{Quals: q}, Types: types}
}

func (t *TupleType) Size() int { return len(t.Types) }

func (t *TupleType) String() string {
	return t.prefix() + "tuple of types (" + printVec(t.Types) + ")"
}

// VarArgsType is the type of a builtin va_list.
type VarArgsType struct {
	TypeBase
}

func (t *VarArgsType) String() string { return t.prefix() + "builtin var args pack" }

// ZeroType is the type of the literal 0 when used as a value of any type.
type ZeroType struct {
	TypeBase
}

func (t *ZeroType) String() string { return t.prefix() + "zero_t" }

// OneType is the type of the literal 1 when used as a value of any type.
type OneType struct {
	TypeBase
}

func (t *OneType) String() string { return t.prefix() + "one_t" }

// GlobalScopeType is the empty parent of a qualified type written `.T`.
type GlobalScopeType struct {
	TypeBase
}

func (t *GlobalScopeType) String() string { return "Global Scope Type" }

type TypeofType struct {
	TypeBase
	Expr         Expr
	IsBasetypeof bool
}

func (t *TypeofType) String() string {
	kw := "type-of"
	if t.IsBasetypeof {
		kw = "base-type-of"
	}
	return t.prefix() + kw + " expression " + t.Expr.String()
}

type VTableType struct {
	TypeBase
	Base Type
}

func (t *VTableType) String() string {
	return t.prefix() + "get virtual-table type of " + t.Base.String()
}

// QualifiedType is a nested type `Parent.Child`.
type QualifiedType struct {
	TypeBase
	Parent Type
	Child  Type
}

func (t *QualifiedType) String() string {
	return t.prefix() + "Qualified Type: " + t.Parent.String() + "." + t.Child.String()
}

// StripReferences removes every outer reference layer.
func StripReferences(t Type) Type {
	for {
		ref, ok := t.(*ReferenceType)
		if !ok {
			return t
		}
		t = ref.Base
	}
}

// StripDeclarator removes every outer pointer and array layer.
func StripDeclarator(t Type) Type {
	for {
		switch x := t.(type) {
		case *PointerType:
			t = x.Base
		case *ArrayType:
			t = x.Base
		default:
			return t
		}
	}
}

// ReferenceDepth counts the outer reference layers of t.
func ReferenceDepth(t Type) int {
	depth := 0
	for ref, ok := t.(*ReferenceType); ok; ref, ok = ref.Base.(*ReferenceType) {
		depth++
	}
	return depth
}
