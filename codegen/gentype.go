package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thiremani/cfasym/ast"
)

// GenType renders t as a declarator of base, prefixed by t's attributes.
// An empty base yields an abstract type, as used in casts.
func GenType(t ast.Type, base string, opts Options) string {
	return GenAttributes(t.Attributes(), opts) + GenTypeNoAttr(t, base, opts)
}

// GenTypeNoAttr is GenType without the attribute prefix.
func GenTypeNoAttr(t ast.Type, base string, opts Options) string {
	g := &typeGen{result: base, opts: opts}
	g.visit(t)
	return g.result
}

func GenPrettyType(t ast.Type, base string) string {
	return GenType(t, base, PrettyOptions)
}

// typeGen builds a declarator inside out: every node wraps the text built
// so far and hands it on to its base type.
type typeGen struct {
	result string
	opts   Options
}

func (g *typeGen) prepend(s string) {
	g.result = s + g.result
}

func (g *typeGen) rejectInC(what string) {
	if g.opts.GenC {
		panic(what + " should not reach code generation.")
	}
}

func (g *typeGen) visit(t ast.Type) {
	switch t := t.(type) {
	case *ast.VoidType:
		g.prepend("void ")
		g.handleQualifiers(t)
	case *ast.BasicType:
		if !t.Kind.Valid() {
			panic("Unhandled basic type: " + strconv.Itoa(int(t.Kind)))
		}
		g.prepend(t.Kind.Name() + " ")
		g.handleQualifiers(t)
	case *ast.PointerType:
		if t.IsArray() {
			g.genArray(t.Quals, t.Base, t.Dimension, t.IsVarLen, t.IsStatic)
			return
		}
		g.handleQualifiers(t)
		// keep `* ?+?` from lexing as `*?`
		if strings.HasPrefix(g.result, "?") {
			g.prepend("* ")
		} else {
			g.prepend("*")
		}
		g.visit(t.Base)
	case *ast.ArrayType:
		g.genArray(t.Quals, t.Base, t.Dimension, t.IsVarLen, t.IsStatic)
	case *ast.ReferenceType:
		g.rejectInC("Reference types")
		g.handleQualifiers(t)
		g.prepend("&")
		g.visit(t.Base)
	case *ast.FunctionType:
		g.genFunction(t)
	case *ast.StructInstType:
		g.prepend(t.Name + g.genGeneric(t.Params) + " ")
		if g.opts.GenC {
			g.prepend("struct ")
		}
		g.handleQualifiers(t)
	case *ast.UnionInstType:
		g.prepend(t.Name + g.genGeneric(t.Params) + " ")
		if g.opts.GenC {
			g.prepend("union ")
		}
		g.handleQualifiers(t)
	case *ast.EnumInstType:
		if t.Base != nil && t.Base.Base != nil {
			g.result = GenType(t.Base.Base, g.result, g.opts)
		} else {
			g.prepend(t.Name + " ")
			if g.opts.GenC {
				g.prepend("enum ")
			}
		}
		g.handleQualifiers(t)
	case *ast.TypeInstType:
		g.rejectInC("TypeInstType")
		g.prepend(t.Name + " ")
		g.handleQualifiers(t)
	case *ast.TupleType:
		g.rejectInC("TupleType")
		parts := make([]string, len(t.Types))
		for i, e := range t.Types {
			parts[i] = GenType(e, "", g.opts)
		}
		g.prepend("[" + strings.Join(parts, ", ") + "] ")
	case *ast.VarArgsType:
		g.prepend("__builtin_va_list ")
		g.handleQualifiers(t)
	case *ast.ZeroType:
		if g.opts.Pretty {
			g.prepend("zero_t ")
		} else {
			g.prepend("long int ")
		}
		g.handleQualifiers(t)
	case *ast.OneType:
		if g.opts.Pretty {
			g.prepend("one_t ")
		} else {
			g.prepend("long int ")
		}
		g.handleQualifiers(t)
	case *ast.GlobalScopeType:
		g.rejectInC("GlobalScopeType")
		g.handleQualifiers(t)
	case *ast.TraitInstType:
		g.rejectInC("TraitInstType")
		g.prepend(t.Name + " ")
		g.handleQualifiers(t)
	case *ast.TypeofType:
		kw := "typeof"
		if t.IsBasetypeof && !g.opts.GenC {
			kw = "basetypeof"
		}
		g.prepend(kw + "(" + GenExpr(t.Expr, g.opts) + ") ")
		g.handleQualifiers(t)
	case *ast.VTableType:
		g.rejectInC("Virtual table types")
		g.prepend("vtable(" + GenType(t.Base, "", g.opts) + ") ")
		g.handleQualifiers(t)
	case *ast.QualifiedType:
		g.rejectInC("QualifiedType")
		g.prepend(GenType(t.Parent, "", g.opts) + "." + GenType(t.Child, "", g.opts))
		g.handleQualifiers(t)
	default:
		panic(fmt.Sprintf("Unhandled node reached in GenType: %v", t))
	}
}

// wrapPointer parenthesizes a declarator that starts with `*` before an
// array or parameter suffix binds to it, so pointer-to-array stays distinct
// from array-of-pointer.
func (g *typeGen) wrapPointer(sb *strings.Builder) {
	if strings.HasPrefix(g.result, "*") {
		sb.WriteString("(" + g.result + ")")
		return
	}
	sb.WriteString(g.result)
}

func (g *typeGen) genArray(q ast.Qualifiers, base ast.Type, dim ast.Expr, isVarLen, isStatic bool) {
	var sb strings.Builder
	g.wrapPointer(&sb)
	sb.WriteString("[")
	if isStatic {
		sb.WriteString("static ")
	}
	if q.IsConst() {
		sb.WriteString("const ")
	}
	if q.IsVolatile() {
		sb.WriteString("volatile ")
	}
	if q.IsRestrict() {
		sb.WriteString("__restrict ")
	}
	if q.IsAtomic() {
		sb.WriteString("_Atomic ")
	}
	if dim != nil {
		sb.WriteString(GenExpr(dim, g.opts))
	} else if isVarLen {
		// a VLA without a dimension came in with the * token
		sb.WriteString("*")
	}
	sb.WriteString("]")
	g.result = sb.String()
	g.visit(base)
}

// genFunction renders only the first return type; further returns of a
// multiple-return function have no declarator form.
func (g *typeGen) genFunction(t *ast.FunctionType) {
	var sb strings.Builder
	g.wrapPointer(&sb)
	switch {
	case len(t.Params) == 0 && t.IsVarArgs:
		sb.WriteString("()")
	case len(t.Params) == 0:
		sb.WriteString("(void)")
	default:
		sb.WriteString("(")
		sb.WriteString(g.genParamList(t.Params))
		if t.IsVarArgs {
			sb.WriteString(", ...")
		}
		sb.WriteString(")")
	}
	g.result = sb.String()

	if len(t.Returns) == 0 {
		g.prepend("void ")
	} else {
		g.visit(t.Returns[0])
	}

	if len(t.Forall) > 0 && !g.opts.GenC {
		params := make([]string, len(t.Forall))
		for i, d := range t.Forall {
			params[i] = genForallParam(d)
		}
		g.prepend("forall(" + strings.Join(params, ", ") + ")\n")
	}
}

// genForallParam renders a type parameter as `otype T | sized(T)`.
func genForallParam(d *ast.TypeDecl) string {
	s := d.GenTypeString() + " " + d.Name
	if d.IsSized() {
		s += " | sized(" + d.Name + ")"
	}
	return s
}

// genParamList names parameters __param_0, __param_1, ... in C output.
func (g *typeGen) genParamList(params []ast.Type) string {
	parts := make([]string, len(params))
	for i, p := range params {
		name := ""
		if g.opts.GenC {
			name = "__param_" + strconv.Itoa(i)
		}
		parts[i] = GenType(p, name, g.opts)
	}
	return strings.Join(parts, ", ")
}

func (g *typeGen) genGeneric(params []ast.Expr) string {
	if len(params) == 0 {
		return ""
	}
	return "(" + genCommaList(params, g.opts) + ") "
}

func (g *typeGen) handleQualifiers(t ast.Type) {
	q := t.Qualifiers()
	if q.IsConst() {
		g.prepend("const ")
	}
	if q.IsVolatile() {
		g.prepend("volatile ")
	}
	if q.IsRestrict() {
		g.prepend("__restrict ")
	}
	if q.IsAtomic() {
		g.prepend("_Atomic ")
	}
}
