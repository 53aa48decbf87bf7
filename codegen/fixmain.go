package codegen

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/thiremani/cfasym/ast"
	"github.com/thiremani/cfasym/mangle"
	"github.com/thiremani/cfasym/token"
)

const invokeMainPrologue = "static inline int invoke_main(int argc, char* argv[], char* envp[]) " +
	"{ (void)argc; (void)argv; (void)envp; return "

// mainShapes holds the type-mode names of the accepted entry points:
// int main(...) and int main(int, char **).
var mainShapes = sync.OnceValue(func() []string {
	return []string{
		mangleMainShape(nil, ast.VariableArgs),
		mangleMainShape([]ast.DeclWithType{intObj(), charStarStarObj()}, ast.FixedArgs),
	}
})

func intObj() *ast.ObjectDecl {
	return ast.NewObjectDecl(token.Location{}, "", ast.NewBasicType(ast.SignedInt, ast.NoQualifiers))
}

func charStarStarObj() *ast.ObjectDecl {
	char := ast.NewBasicType(ast.Char, ast.NoQualifiers)
	return ast.NewObjectDecl(token.Location{}, "",
		ast.NewPointerType(ast.NewPointerType(char, ast.NoQualifiers), ast.NoQualifiers))
}

func mangleMainShape(params []ast.DeclWithType, args ast.ArgumentFlag) string {
	fn := ast.NewFunctionDecl(token.Location{}, "main", params, []ast.DeclWithType{intObj()}, args)
	fn.Linkage = 0
	return mangle.Mangle(fn, mangle.Type)
}

// IsMain reports whether fn is a valid program entry point. Signatures are
// compared through their mangled names, so anything the mangler treats as
// the same overload is accepted.
func IsMain(fn *ast.FunctionDecl) bool {
	if fn.Name != "main" {
		return false
	}
	return slices.Contains(mainShapes(), mangle.Mangle(fn, mangle.Type))
}

// MainFinder locates the entry point of a translation unit.
type MainFinder struct {
	Main   *ast.FunctionDecl
	Errors []*token.CompileError
}

// Find scans decls for the entry point. A second definition is reported
// once and ends the scan.
func (f *MainFinder) Find(decls []ast.Decl) *ast.FunctionDecl {
	for _, d := range decls {
		fn, ok := d.(*ast.FunctionDecl)
		if !ok || !IsMain(fn) {
			continue
		}
		if f.Main != nil {
			f.addError(fn.Loc, "Multiple definition of main routine")
			break
		}
		f.Main = fn
	}
	return f.Main
}

func (f *MainFinder) addError(loc token.Location, msg string) {
	f.Errors = append(f.Errors, &token.CompileError{Loc: loc, Msg: msg})
}

// FixMain writes an invoke_main wrapper that calls the program's entry
// point under its mangled name, followed by the bootloader source. Nothing
// is written when decls has no entry point.
func FixMain(w io.Writer, decls []ast.Decl, bootloader io.Reader) error {
	var finder MainFinder
	entry := finder.Find(decls)
	if len(finder.Errors) > 0 {
		return finder.Errors[0]
	}
	if entry == nil {
		return nil
	}
	if bootloader == nil {
		return errors.New("cannot open bootloader")
	}

	mangle.AssignName(entry)

	var sb strings.Builder
	sb.WriteString(invokeMainPrologue)
	sb.WriteString(entry.ScopedMangleName())
	sb.WriteString("(")
	params := entry.Type.Params
	switch len(params) {
	case 3:
		fmt.Fprintf(&sb, "(%s)argc, (%s)argv, (%s)envp", genTypeAt(params, 0), genTypeAt(params, 1), genTypeAt(params, 2))
	case 2:
		fmt.Fprintf(&sb, "(%s)argc, (%s)argv", genTypeAt(params, 0), genTypeAt(params, 1))
	case 0:
	default:
		panic(fmt.Sprintf("main with %d parameters accepted as entry point", len(params)))
	}
	sb.WriteString("); }\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("writing invoke_main: %w", err)
	}
	if _, err := io.Copy(w, bootloader); err != nil {
		return fmt.Errorf("copying bootloader: %w", err)
	}
	return nil
}

// genTypeAt renders the cast type for an argument of main.
func genTypeAt(types []ast.Type, at int) string {
	return GenType(types[at], "", Options{})
}
