package ast

import (
	"strconv"
	"strings"

	"github.com/thiremani/cfasym/token"
)

type Decl interface {
	Node
	Location() token.Location
	GetName() string
	GetLinkage() LinkageSpec
	aDecl()
}

// DeclBase carries the state shared by every declaration.
type DeclBase struct {
	node
	Loc     token.Location
	Name    string
	Storage StorageClasses
	Linkage LinkageSpec
}

func (d *DeclBase) Location() token.Location { return d.Loc }
func (d *DeclBase) GetName() string          { return d.Name }
func (d *DeclBase) GetLinkage() LinkageSpec  { return d.Linkage }
func (*DeclBase) aDecl()                     {}

func (d *DeclBase) prefix() string {
	if d.Storage == 0 {
		return ""
	}
	return d.Storage.String() + " "
}

// DeclWithType is a declaration that introduces a typed name: an object or
// a function. Its mangled name is assigned once overload resolution has
// settled the type.
type DeclWithType interface {
	Decl
	GetType() Type
	MangleName() string
	SetMangleName(string)
	// ScopedMangleName is the name emitted into generated C.
	ScopedMangleName() string
}

type DeclWithTypeBase struct {
	DeclBase
	mangleName string
	ScopeLevel int
	Attrs      []*Attribute
	FuncSpec   FuncSpecifiers
}

func (d *DeclWithTypeBase) MangleName() string     { return d.mangleName }
func (d *DeclWithTypeBase) SetMangleName(s string) { d.mangleName = s }

// ScopedMangleName suffixes the mangled name with the scope level so that
// shadowing declarations stay distinct in generated C.
func (d *DeclWithTypeBase) ScopedMangleName() string {
	return d.mangleName + "_" + strconv.Itoa(d.ScopeLevel)
}

type ObjectDecl struct {
	DeclWithTypeBase
	Type          Type
	Init          Expr
	BitfieldWidth Expr
}

func NewObjectDecl(loc token.Location, name string, t Type) *ObjectDecl {
	d := &ObjectDecl{Type: t}
	d.Loc, d.Name, d.Linkage = loc, name, Cforall
	return d
}

func (d *ObjectDecl) GetType() Type { return d.Type }

func (d *ObjectDecl) String() string {
	s := d.prefix() + d.Name + ": " + d.Type.String()
	if d.Init != nil {
		s += " with initializer " + d.Init.String()
	}
	return s
}

// CompoundStmt marks a function body. Statements themselves are not
// modelled here.
type CompoundStmt struct {
	Loc token.Location
}

// ArgumentFlag records whether a function takes a trailing `...`.
type ArgumentFlag bool

const (
	FixedArgs    ArgumentFlag = false
	VariableArgs ArgumentFlag = true
)

type FunctionDecl struct {
	DeclWithTypeBase
	TypeParams []*TypeDecl
	Assertions []DeclWithType
	Params     []DeclWithType
	Returns    []DeclWithType
	Type       *FunctionType
	Stmts      *CompoundStmt
}

// NewFunctionDecl builds a monomorphic function declaration.
func NewFunctionDecl(loc token.Location, name string, params, returns []DeclWithType, args ArgumentFlag) *FunctionDecl {
	return NewPolyFunctionDecl(loc, name, nil, nil, params, returns, args)
}

// NewPolyFunctionDecl builds a function declaration and derives its
// function type from the forall list, assertions, parameters and returns.
func NewPolyFunctionDecl(loc token.Location, name string, forall []*TypeDecl, assertions, params, returns []DeclWithType, args ArgumentFlag) *FunctionDecl {
	ft := &FunctionType{
		Forall:     forall,
		Assertions: assertions,
		IsVarArgs:  bool(args),
	}
	for _, p := range params {
		ft.Params = append(ft.Params, p.GetType())
	}
	for _, r := range returns {
		ft.Returns = append(ft.Returns, r.GetType())
	}
	d := &FunctionDecl{
		TypeParams: forall,
		Assertions: assertions,
		Params:     params,
		Returns:    returns,
		Type:       ft,
	}
	d.Loc, d.Name, d.Linkage = loc, name, Cforall
	return d
}

func (d *FunctionDecl) GetType() Type   { return d.Type }
func (d *FunctionDecl) HasBody() bool   { return d.Stmts != nil }
func (d *FunctionDecl) IsVarArgs() bool { return d.Type.IsVarArgs }

func (d *FunctionDecl) String() string {
	s := d.prefix() + d.Name + ": " + d.Type.String()
	if d.HasBody() {
		s += " with body"
	}
	return s
}

// TypeDeclKind is the kind of a type parameter or an opaque type.
type TypeDeclKind int

const (
	Dtype TypeDeclKind = iota
	DStype
	Otype
	Ftype
	Ttype
	Dimension
)

var typeDeclKindNames = [...]string{"dtype", "sized dtype", "otype", "ftype", "ttype", "dimension"}

func (k TypeDeclKind) String() string {
	if k < 0 || int(k) >= len(typeDeclKindNames) {
		return "<unknown type kind>"
	}
	return typeDeclKindNames[k]
}

// TypeDecl declares a type parameter of a forall clause or an opaque type.
type TypeDecl struct {
	DeclBase
	Kind       TypeDeclKind
	Sized      bool
	Base       Type
	Init       Type
	Assertions []DeclWithType
}

func NewTypeDecl(loc token.Location, name string, kind TypeDeclKind, sized bool) *TypeDecl {
	d := &TypeDecl{Kind: kind, Sized: kind == Ttype || sized}
	d.Loc, d.Name, d.Linkage = loc, name, Cforall
	return d
}

var genTypeNames = [...]string{"dtype", "dtype", "otype", "ftype", "ttype", "dimension"}

// GenTypeString is the keyword that introduces d in a forall clause.
// Sizedness is written separately as an assertion.
func (d *TypeDecl) GenTypeString() string {
	if d.Kind < 0 || int(d.Kind) >= len(genTypeNames) {
		panic("TypeDecl kind is out of bounds: " + strconv.Itoa(int(d.Kind)))
	}
	return genTypeNames[d.Kind]
}

// IsSized reports whether d carries an implicit sized assertion.
func (d *TypeDecl) IsSized() bool { return d.Sized || d.Kind == DStype }

func (d *TypeDecl) String() string {
	s := d.prefix() + d.Name + ": " + d.Kind.String()
	if len(d.Assertions) > 0 {
		s += " with assertions " + printVec(d.Assertions)
	}
	return s
}

// AggregateKind distinguishes the flavours of struct-like declarations.
type AggregateKind int

const (
	Struct AggregateKind = iota
	Union
	Enum
	Exception
	Trait
	Generator
	Coroutine
	Monitor
	Thread
	NoAggregate
)

var aggregateKindNames = [...]string{
	"struct", "union", "enum", "exception", "trait",
	"generator", "coroutine", "monitor", "thread", "<no kind>",
}

func (k AggregateKind) String() string {
	if k < 0 || int(k) >= len(aggregateKindNames) {
		return "<no kind>"
	}
	return aggregateKindNames[k]
}

type AggregateDecl struct {
	DeclBase
	Members []Decl
	Params  []*TypeDecl
	Attrs   []*Attribute
	// Body is set once the definition, not just a forward declaration, has
	// been seen.
	Body bool
}

func (d *AggregateDecl) aggrString(kind string) string {
	var sb strings.Builder
	sb.WriteString(d.prefix())
	sb.WriteString(kind)
	sb.WriteString(" ")
	sb.WriteString(d.Name)
	if len(d.Params) > 0 {
		sb.WriteString(" with parameters ")
		sb.WriteString(printVec(d.Params))
	}
	if !d.Body {
		sb.WriteString(" (forward)")
	}
	return sb.String()
}

type StructDecl struct {
	AggregateDecl
	Kind AggregateKind
}

func NewStructDecl(loc token.Location, name string, kind AggregateKind, params []*TypeDecl) *StructDecl {
	d := &StructDecl{Kind: kind}
	d.Loc, d.Name, d.Linkage, d.Params = loc, name, Cforall, params
	return d
}

func (d *StructDecl) String() string { return d.aggrString(d.Kind.String()) }

type UnionDecl struct {
	AggregateDecl
}

func NewUnionDecl(loc token.Location, name string, params []*TypeDecl) *UnionDecl {
	d := &UnionDecl{}
	d.Loc, d.Name, d.Linkage, d.Params = loc, name, Cforall, params
	return d
}

func (d *UnionDecl) String() string { return d.aggrString("union") }

// EnumDecl may be typed, as in `enum(char) E`; Base then holds the
// underlying type.
type EnumDecl struct {
	AggregateDecl
	Base Type
}

func NewEnumDecl(loc token.Location, name string, base Type) *EnumDecl {
	d := &EnumDecl{Base: base}
	d.Loc, d.Name, d.Linkage = loc, name, Cforall
	return d
}

func (d *EnumDecl) IsTyped() bool { return d.Base != nil }

func (d *EnumDecl) String() string { return d.aggrString("enum") }

type TraitDecl struct {
	AggregateDecl
}

func NewTraitDecl(loc token.Location, name string, params []*TypeDecl) *TraitDecl {
	d := &TraitDecl{}
	d.Loc, d.Name, d.Linkage, d.Params = loc, name, Cforall, params
	return d
}

func (d *TraitDecl) String() string { return d.aggrString("trait") }
