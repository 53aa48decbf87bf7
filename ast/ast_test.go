package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thiremani/cfasym/token"
)

func TestBasicTableIndexedByKind(t *testing.T) {
	for k := BasicKind(0); k < NumBasicKinds; k++ {
		info := basicTypes[k]
		assert.Equal(t, k, info.Kind, "row %d holds the wrong kind", k)
		assert.NotEmpty(t, info.Name, "kind %d has no name", k)
		assert.NotEmpty(t, info.Mangled, "kind %d has no mangling token", k)
	}
}

func TestBasicTableMangledTokensUnique(t *testing.T) {
	seen := make(map[string]BasicKind)
	for _, info := range basicTypes {
		prev, dup := seen[info.Mangled]
		require.False(t, dup, "%s and %s share token %q", prev, info.Kind, info.Mangled)
		seen[info.Mangled] = info.Kind
	}
}

func TestBasicKindAccessors(t *testing.T) {
	tests := []struct {
		kind     BasicKind
		name     string
		mangled  string
		signed   bool
		unsigned bool
		floating bool
		integer  bool
	}{
		{Bool, "_Bool", "b", true, false, false, true},
		{SignedInt, "signed int", "i", true, false, false, true},
		{LongUnsignedInt, "unsigned long int", "m", false, true, false, true},
		{UnsignedInt128, "unsigned __int128", "o", false, true, false, true},
		{Double, "double", "d", true, true, true, false},
		{LongDouble, "long double", "e", true, true, true, false},
		{UUFloat128, "__float128", "g", true, true, true, false},
		{UFloat32xComplex, "_Float32x _Complex", "CDF32x_", true, true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.kind.Name())
			assert.Equal(t, tt.name, tt.kind.String())
			assert.Equal(t, tt.mangled, tt.kind.Mangled())
			assert.Equal(t, tt.signed, tt.kind.IsSigned())
			assert.Equal(t, tt.unsigned, tt.kind.IsUnsigned())
			assert.Equal(t, tt.floating, tt.kind.IsFloating())
			assert.Equal(t, tt.integer, tt.kind.IsInteger())
		})
	}
}

func TestBasicKindRankOrdering(t *testing.T) {
	assert.Less(t, Char.Rank(), SignedInt.Rank())
	assert.Less(t, SignedInt.Rank(), LongLongSignedInt.Rank())
	assert.Equal(t, SignedInt.Rank(), UnsignedInt.Rank())
	assert.Less(t, Float.Rank(), Double.Rank())
	assert.Less(t, Double.Rank(), LongDouble.Rank())
}

func TestLookupBasicKind(t *testing.T) {
	k, ok := LookupBasicKind("signed long long int")
	require.True(t, ok)
	assert.Equal(t, LongLongSignedInt, k)

	_, ok = LookupBasicKind("long long")
	assert.False(t, ok)
}

func TestBasicKindOutOfRange(t *testing.T) {
	assert.PanicsWithValue(t, "Unhandled basic type: 36", func() { NumBasicKinds.Info() })
	assert.Equal(t, "BasicKind(-1)", BasicKind(-1).String())
	assert.False(t, BasicKind(-1).IsInteger())
}

func TestQualifiers(t *testing.T) {
	tests := []struct {
		name string
		q    Qualifiers
		want string
	}{
		{"none", NoQualifiers, ""},
		{"const", Const, "const"},
		{"canonical order", Atomic | Volatile | Const, "const volatile _Atomic"},
		{"all", Mask, "const restrict volatile mutex _Atomic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.String())
		})
	}

	q := Const | Mutex
	assert.True(t, q.IsConst())
	assert.True(t, q.IsMutex())
	assert.False(t, q.IsVolatile())
	assert.False(t, q.IsRestrict())
	assert.False(t, q.IsAtomic())
	assert.True(t, q.Has(Const|Mutex))
	assert.False(t, q.Has(Const|Volatile))
}

func TestStorageAndSpecifiers(t *testing.T) {
	assert.Equal(t, "extern _Thread_local", (Extern | ThreadLocal).String())
	assert.True(t, Static.IsStatic())
	assert.False(t, Static.IsExtern())
	assert.Equal(t, "inline _Noreturn", (Inline | Noreturn).String())
}

func TestLinkage(t *testing.T) {
	tests := []struct {
		spec         LinkageSpec
		name         string
		mangled      bool
		overrideable bool
		builtin      bool
	}{
		{Intrinsic, "intrinsic", true, true, true},
		{C, "C", false, false, false},
		{Cforall, "Cforall", true, false, false},
		{AutoGen, "autogen", true, true, false},
		{Compiler, "compiler built-in", true, false, true},
		{BuiltinCFA, "cfa built-in", true, false, true},
		{BuiltinC, "c built-in", false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.spec.String())
			assert.Equal(t, tt.mangled, tt.spec.IsMangled())
			assert.Equal(t, tt.overrideable, tt.spec.IsOverrideable())
			assert.Equal(t, tt.builtin, tt.spec.IsBuiltin())
		})
	}
	assert.Equal(t, "<unnamed linkage spec>", (Overrideable).String())
}

func TestNewFunctionDeclBuildsType(t *testing.T) {
	loc := token.Location{File: "f.cfa", Line: 3, Col: 1}
	tv := NewTypeDecl(loc, "T", Dtype, false)
	param := NewObjectDecl(loc, "p", NewPointerType(NewTypeInstType(tv, NoQualifiers), NoQualifiers))
	ret := NewObjectDecl(loc, "", NewBasicType(SignedInt, NoQualifiers))
	assertion := NewFunctionDecl(loc, "?=?", nil, nil, FixedArgs)

	fn := NewPolyFunctionDecl(loc, "f", []*TypeDecl{tv}, []DeclWithType{assertion},
		[]DeclWithType{param}, []DeclWithType{ret}, VariableArgs)

	require.Len(t, fn.Type.Params, 1)
	require.Len(t, fn.Type.Returns, 1)
	assert.Same(t, param.Type, fn.Type.Params[0])
	assert.Same(t, ret.Type, fn.Type.Returns[0])
	assert.Equal(t, []*TypeDecl{tv}, fn.Type.Forall)
	assert.Len(t, fn.Type.Assertions, 1)
	assert.True(t, fn.IsVarArgs())
	assert.False(t, fn.HasBody())
	assert.Equal(t, Cforall, fn.GetLinkage())
	assert.Equal(t, loc, fn.Location())

	fn.Stmts = &CompoundStmt{Loc: loc}
	assert.True(t, fn.HasBody())
}

func TestMangleNameRoundTrip(t *testing.T) {
	d := NewObjectDecl(token.Location{}, "x", NewBasicType(SignedInt, NoQualifiers))
	assert.Empty(t, d.MangleName())
	d.SetMangleName("_X1xi")
	d.ScopeLevel = 2
	assert.Equal(t, "_X1xi", d.MangleName())
	assert.Equal(t, "_X1xi_2", d.ScopedMangleName())
}

func TestTypeDeclSized(t *testing.T) {
	assert.True(t, NewTypeDecl(token.Location{}, "Ts", Ttype, false).Sized)
	assert.False(t, NewTypeDecl(token.Location{}, "T", Dtype, false).Sized)
	assert.True(t, NewTypeDecl(token.Location{}, "T", Otype, true).Sized)
	assert.Equal(t, "sized dtype", DStype.String())
	assert.Equal(t, "<unknown type kind>", TypeDeclKind(42).String())
}

func TestTypeDeclGenTypeString(t *testing.T) {
	tests := []struct {
		kind    TypeDeclKind
		sized   bool
		keyword string
		isSized bool
	}{
		{Dtype, false, "dtype", false},
		{DStype, false, "dtype", true},
		{Otype, true, "otype", true},
		{Ftype, false, "ftype", false},
		{Ttype, false, "ttype", true},
		{Dimension, false, "dimension", false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			d := NewTypeDecl(token.Location{}, "T", tt.kind, tt.sized)
			assert.Equal(t, tt.keyword, d.GenTypeString())
			assert.Equal(t, tt.isSized, d.IsSized())
		})
	}

	bad := NewTypeDecl(token.Location{}, "T", TypeDeclKind(42), false)
	assert.PanicsWithValue(t, "TypeDecl kind is out of bounds: 42", func() { bad.GenTypeString() })
}

func TestFunctionTypeIsTtype(t *testing.T) {
	pack := NewTypeDecl(token.Location{}, "Params", Ttype, false)
	ft := &FunctionType{Params: []Type{
		NewBasicType(SignedInt, NoQualifiers),
		NewTypeInstType(pack, NoQualifiers),
	}}
	assert.True(t, ft.IsTtype())

	ft.Params = ft.Params[:1]
	assert.False(t, ft.IsTtype())
}

func TestTypeHelpers(t *testing.T) {
	i := NewBasicType(SignedInt, NoQualifiers)
	ref := NewReferenceType(NewReferenceType(i, NoQualifiers), Const)
	assert.Equal(t, 2, ReferenceDepth(ref))
	assert.Same(t, i, StripReferences(ref))
	assert.Equal(t, 0, ReferenceDepth(i))

	decl := NewPointerType(NewArrayType(i, NewIntConstant("3"), NoQualifiers), NoQualifiers)
	assert.Same(t, i, StripDeclarator(decl))

	tup := NewTupleType([]Type{i, i}, NoQualifiers)
	assert.Equal(t, 2, tup.Size())
}

func TestInstCompleteness(t *testing.T) {
	s := NewStructDecl(token.Location{}, "S", Struct, nil)
	inst := NewStructInstType(s, nil, NoQualifiers)
	assert.False(t, inst.IsComplete())
	s.Body = true
	assert.True(t, inst.IsComplete())

	e := NewEnumDecl(token.Location{}, "E", NewBasicType(Char, NoQualifiers))
	assert.True(t, e.IsTyped())
	assert.Equal(t, "E", NewEnumInstType(e, NoQualifiers).TypeName())

	tv := NewTypeDecl(token.Location{}, "T", Otype, true)
	assert.True(t, NewTypeInstType(tv, NoQualifiers).IsComplete())
}

func TestUnresolvedInstTypes(t *testing.T) {
	s := NewStructInstTypeNamed("S", []Expr{NewTypeExpr(NewBasicType(Char, NoQualifiers))}, Const)
	assert.Nil(t, s.Base)
	assert.False(t, s.IsComplete())
	assert.Equal(t, "const instance of struct S with parameters (Type Expression: char)", s.String())

	u := NewUnionInstTypeNamed("U", nil, NoQualifiers)
	assert.Equal(t, "U", u.TypeName())
	assert.False(t, u.IsComplete())

	e := NewEnumInstTypeNamed("E", NoQualifiers)
	assert.Nil(t, e.Base)
	assert.False(t, e.IsComplete())

	tv := NewTypeInstTypeNamed("T", Otype, NoQualifiers)
	assert.False(t, tv.IsComplete())
	assert.Equal(t, "instance of type T (otype)", tv.String())

	tr := NewTraitInstTypeNamed("is_ordered", nil)
	assert.Equal(t, "is_ordered", tr.TypeName())
	assert.Nil(t, tr.Base)
}

func TestTypeStrings(t *testing.T) {
	i := NewBasicType(SignedInt, NoQualifiers)
	tests := []struct {
		name string
		typ  Type
		want string
	}{
		{"basic", NewBasicType(Char, Const), "const char"},
		{"pointer", NewPointerType(i, Volatile), "volatile pointer to signed int"},
		{"array", NewArrayType(i, NewIntConstant("4"), NoQualifiers), "array of signed int with dimension of constant expression (4)"},
		{"reference", NewReferenceType(i, NoQualifiers), "reference to signed int"},
		{"tuple", NewTupleType([]Type{i, NewVoidType(NoQualifiers)}, NoQualifiers), "tuple of types (signed int, void)"},
		{"function", &FunctionType{Params: []Type{i}, IsVarArgs: true}, "function with parameters (signed int, ...) returning ()"},
		{"struct inst", NewStructInstType(NewStructDecl(token.Location{}, "S", Struct, nil), []Expr{NewTypeExpr(i)}, NoQualifiers),
			"instance of struct S with parameters (Type Expression: signed int)"},
		{"type inst", NewTypeInstType(NewTypeDecl(token.Location{}, "T", Dtype, false), NoQualifiers), "instance of type T (dtype)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.String())
		})
	}
}
