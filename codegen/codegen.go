package codegen

import (
	"fmt"
	"strings"

	"github.com/thiremani/cfasym/ast"
)

// GenExpr renders the expressions that can appear inside a type: array
// dimensions, generic arguments and typeof operands.
func GenExpr(e ast.Expr, opts Options) string {
	switch e := e.(type) {
	case *ast.ConstantExpr:
		return e.Rep
	case *ast.NameExpr:
		return e.Name
	case *ast.TypeExpr:
		// type arguments are erased in C
		if opts.GenC {
			return ""
		}
		return GenType(e.Type, "", opts)
	case *ast.VariableExpr:
		return varName(e.Var, opts)
	default:
		panic(fmt.Sprintf("Unhandled expression reached in GenExpr: %v", e))
	}
}

// varName is the name a declaration is referred to by in the output.
func varName(d ast.DeclWithType, opts Options) string {
	if opts.GenC && d.GetLinkage().IsMangled() && d.MangleName() != "" {
		return d.ScopedMangleName()
	}
	return d.GetName()
}

// GenAttributes renders attrs as a GCC attribute list followed by a space,
// or returns "" when there are none.
func GenAttributes(attrs []*ast.Attribute, opts Options) string {
	if len(attrs) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("__attribute__ ((")
	for i, a := range attrs {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(a.Name)
		if len(a.Params) > 0 {
			sb.WriteString("(")
			sb.WriteString(genCommaList(a.Params, opts))
			sb.WriteString(")")
		}
	}
	sb.WriteString(")) ")
	return sb.String()
}

func genCommaList(exprs []ast.Expr, opts Options) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = GenExpr(e, opts)
	}
	return strings.Join(parts, ", ")
}
