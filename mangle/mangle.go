// Package mangle turns declarations and types into linker-safe names. Two
// function declarations mangle equally exactly when a caller could not tell
// them apart during overload resolution.
package mangle

import (
	"fmt"
	"maps"
	"strconv"
	"strings"

	"github.com/thiremani/cfasym/ast"
	"github.com/thiremani/cfasym/operators"
)

// Mode selects a mangling variant. The zero Mode mangles a declaration for
// use as a symbol name.
type Mode uint8

const (
	// Type produces a key for type identity. Qualifiers and forall headers
	// are left out.
	Type Mode = 1 << iota
	// NoOverrideable drops the autogen/intrinsic suffixes.
	NoOverrideable
	// NoGenericParams drops the argument lists of generic instances.
	NoGenericParams
)

// Mangle returns the mangled name of a declaration or type.
func Mangle(n ast.Node, mode Mode) string {
	m := newMangler(mode)
	m.visit(n)
	return m.sb.String()
}

func MangleType(n ast.Node) string {
	return Mangle(n, Type|NoOverrideable)
}

// MangleAssertionKey ignores generic arguments so that assertions on
// different instances of one generic type share a key.
func MangleAssertionKey(n ast.Node) string {
	return Mangle(n, Type|NoOverrideable|NoGenericParams)
}

// AssignName mangles d and records the result on it. Repeated calls on an
// unchanged declaration store the same name.
func AssignName(d ast.DeclWithType) string {
	name := Mangle(d, 0)
	d.SetMangleName(name)
	return name
}

type varInfo struct {
	index int
	kind  ast.TypeDeclKind
}

type mangler struct {
	sb         strings.Builder
	varNums    map[string]varInfo
	nextVarNum int

	isTopLevel          bool
	mangleOverridable   bool
	typeMode            bool
	mangleGenericParams bool
	// inFunctionType suppresses the qualifiers of the outermost layer of a
	// parameter or return type.
	inFunctionType  bool
	inQualifiedType bool
}

func newMangler(mode Mode) *mangler {
	return &mangler{
		varNums:             make(map[string]varInfo),
		isTopLevel:          true,
		mangleOverridable:   mode&NoOverrideable == 0,
		typeMode:            mode&Type != 0,
		mangleGenericParams: mode&NoGenericParams == 0,
	}
}

// child returns a nested mangler that shares the parent's type variable
// numbering but none of its output or flags.
func (m *mangler) child() *mangler {
	return &mangler{
		varNums:             maps.Clone(m.varNums),
		nextVarNum:          m.nextVarNum,
		mangleOverridable:   m.mangleOverridable,
		typeMode:            m.typeMode,
		mangleGenericParams: m.mangleGenericParams,
	}
}

// guard saves *flag and returns a func that restores it.
func guard(flag *bool) func() {
	saved := *flag
	return func() { *flag = saved }
}

func (m *mangler) writeIdent(name string) {
	m.sb.WriteString(strconv.Itoa(len(name)))
	m.sb.WriteString(name)
}

func (m *mangler) visit(n ast.Node) {
	// Changes to inFunctionType last only until this node is done.
	defer guard(&m.inFunctionType)()

	switch n := n.(type) {
	case *ast.ObjectDecl:
		m.mangleDecl(n)
	case *ast.FunctionDecl:
		m.mangleDecl(n)
	case *ast.TypeDecl:
		panic(fmt.Sprintf("Mangler should not visit typedecl: %s", n))

	case *ast.VoidType:
		m.printQualifiers(n)
		m.sb.WriteString(VOID)
	case *ast.BasicType:
		m.printQualifiers(n)
		m.sb.WriteString(n.Kind.Mangled())
	case *ast.PointerType:
		m.printQualifiers(n)
		// f(void (*)()) and f(void ()) must not overload
		if _, ok := n.Base.(*ast.FunctionType); !ok {
			m.sb.WriteString(POINTER)
		}
		if n.Base != nil {
			m.visit(n.Base)
		}
	case *ast.ArrayType:
		m.printQualifiers(n)
		m.sb.WriteString(ARRAY + "0")
		m.visit(n.Base)
	case *ast.ReferenceType:
		// No prefix and no qualifiers: a reference never overloads against
		// its base type.
		m.inFunctionType = true
		m.printQualifiers(n)
		m.visit(n.Base)
	case *ast.FunctionType:
		m.mangleFunction(n)
	case *ast.StructInstType:
		m.mangleRef(n, STRUCT)
	case *ast.UnionInstType:
		m.mangleRef(n, UNION)
	case *ast.EnumInstType:
		m.mangleRef(n, ENUM)
	case *ast.TypeInstType:
		m.mangleTypeInst(n)
	case *ast.TraitInstType:
		m.printQualifiers(n)
		m.writeIdent(n.Name)
	case *ast.TupleType:
		m.printQualifiers(n)
		m.sb.WriteString(TUPLE)
		m.sb.WriteString(strconv.Itoa(len(n.Types)))
		for _, t := range n.Types {
			m.visit(t)
		}
	case *ast.VarArgsType:
		m.printQualifiers(n)
		m.sb.WriteString(TYPE)
		m.writeIdent(VA_LIST)
	case *ast.ZeroType:
		m.sb.WriteString(ZERO)
	case *ast.OneType:
		m.sb.WriteString(ONE)
	case *ast.QualifiedType:
		m.mangleQualified(n)
	case *ast.GlobalScopeType:
		// the empty parent of `.T` contributes nothing
	case *ast.TypeofType, *ast.VTableType:
		panic(fmt.Sprintf("Mangler reached unresolved type: %s", n))
	default:
		panic(fmt.Sprintf("Unhandled node reached in Mangler: %v", n))
	}
}

func (m *mangler) mangleDecl(d ast.DeclWithType) {
	wasTopLevel := m.isTopLevel
	if m.isTopLevel {
		clear(m.varNums)
		m.nextVarNum = 0
		m.isTopLevel = false
	}
	defer func() { m.isTopLevel = wasTopLevel }()

	m.sb.WriteString(PREFIX)
	name := d.GetName()
	if info, ok := operators.Lookup(name); ok {
		name = info.OutputName
	}
	m.writeIdent(name)
	m.visit(d.GetType())

	linkage := d.GetLinkage()
	if !m.mangleOverridable || !linkage.IsOverrideable() {
		return
	}
	// autogenerated and intrinsic routines can be overridden by user code,
	// so they need names of their own
	switch linkage {
	case ast.AutoGen:
		m.sb.WriteString(AUTOGEN)
	case ast.Intrinsic:
		m.sb.WriteString(INTRINSIC)
	default:
		panic(fmt.Sprintf("unknown overrideable linkage %s on %s", linkage, d.GetName()))
	}
}

func (m *mangler) mangleFunction(ft *ast.FunctionType) {
	// a forall binds its variables for this function type only; the
	// numbering keeps counting up
	if len(ft.Forall) > 0 {
		saved := maps.Clone(m.varNums)
		defer func() { m.varNums = saved }()
	}
	m.printQualifiers(ft)
	m.sb.WriteString(FUNCTION)
	// void (*)(const int) and void (*)(int) are the same type, but
	// void (*)(const int *) and void (*)(int *) are not.
	m.inFunctionType = true
	if len(ft.Returns) == 0 {
		m.sb.WriteString(VOID)
	} else {
		for _, r := range ft.Returns {
			m.visit(r)
		}
	}
	m.sb.WriteString(SEP)
	for _, p := range ft.Params {
		m.visit(p)
	}
	m.sb.WriteString(SEP)
}

func (m *mangler) mangleRef(t ast.ReferenceToType, prefix string) {
	m.printQualifiers(t)
	m.sb.WriteString(prefix)
	m.writeIdent(t.TypeName())

	params := t.TypeParams()
	if !m.mangleGenericParams || len(params) == 0 {
		return
	}
	m.sb.WriteString(SEP)
	for _, p := range params {
		te, ok := p.(*ast.TypeExpr)
		if !ok {
			panic(fmt.Sprintf("Aggregate parameters should be type expressions: %s", p))
		}
		m.visit(te.Type)
	}
	m.sb.WriteString(SEP)
}

// mangleTypeInst writes a bound type variable by kind and index rather than
// by name, so forall(T) f(T) and forall(S) f(S) mangle alike.
func (m *mangler) mangleTypeInst(t *ast.TypeInstType) {
	v, ok := m.varNums[t.Name]
	if !ok {
		m.mangleRef(t, TYPE)
		return
	}
	m.printQualifiers(t)
	code, ok := TypeVariableCode(v.kind)
	if !ok {
		panic(fmt.Sprintf("Unhandled type variable kind: %d", v.kind))
	}
	m.sb.WriteString(code)
	m.sb.WriteString(strconv.Itoa(v.index))
}

// mangleQualified emits a single N...E pair around the outermost S.T.
func (m *mangler) mangleQualified(t *ast.QualifiedType) {
	outer := !m.inQualifiedType
	if outer {
		m.inQualifiedType = true
		m.sb.WriteString(QUAL_START)
	}
	m.visit(t.Parent)
	m.visit(t.Child)
	if outer {
		m.inQualifiedType = false
		m.sb.WriteString(QUAL_END)
	}
}

func (m *mangler) printQualifiers(t ast.Type) {
	if m.typeMode {
		return
	}
	if ft, ok := t.(*ast.FunctionType); ok && len(ft.Forall) > 0 {
		m.mangleForall(ft)
	}

	q := t.Qualifiers()
	if !m.inFunctionType {
		if q.IsConst() {
			m.sb.WriteString(CONST)
		}
		if q.IsVolatile() {
			m.sb.WriteString(VOLATILE)
		}
		// restrict does not affect function compatibility
		if q.IsAtomic() {
			m.sb.WriteString(ATOMIC)
		}
	}
	if q.IsMutex() {
		m.sb.WriteString(MUTEX)
	}
	// nested layers keep their qualifiers; the guard in visit restores
	// the flag for the next sibling
	m.inFunctionType = false
}

// mangleForall numbers the type variables of ft in order and writes the
// Q<d>_<f>_<v>_<a>_<assertions>_ header.
func (m *mangler) mangleForall(ft *ast.FunctionType) {
	var dcount, fcount, vcount int
	m.sb.WriteString(FORALL)
	for _, d := range ft.Forall {
		switch d.Kind {
		// sized dtype and otype variables are data types with extra
		// assertions, so they count as dtype
		case ast.Dtype, ast.DStype, ast.Otype:
			dcount++
		case ast.Ftype:
			fcount++
		case ast.Ttype:
			vcount++
		default:
			code, _ := TypeVariableCode(d.Kind)
			panic(fmt.Sprintf("unimplemented kind for type variable %s %s", d.Name, code))
		}
		m.varNums[d.Name] = varInfo{index: m.nextVarNum, kind: d.Kind}
		m.nextVarNum++
	}

	assertions := make([]string, 0, len(ft.Assertions))
	for _, a := range ft.Assertions {
		c := m.child()
		c.visit(a)
		assertions = append(assertions, c.sb.String())
	}

	fmt.Fprintf(&m.sb, "%d_%d_%d_%d_", dcount, fcount, vcount, len(assertions))
	for _, a := range assertions {
		m.sb.WriteString(a)
	}
	m.sb.WriteString(SEP)
}
