package operators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		input  string
		output string
		kind   Kind
	}{
		{"?[?]", "_operator_index", Index},
		{"?{}", "_constructor", Ctor},
		{"^?{}", "_destructor", Dtor},
		{"?()", "_operator_call", Call},
		{"?++", "_operator_postincr", PostfixAssign},
		{"-?", "_operator_unaryminus", Prefix},
		{"?+?", "_operator_add", Infix},
		{"?\\?", "_operator_exponential", Infix},
		{"?=?", "_operator_assign", InfixAssign},
		{"?<<=?", "_operator_shiftleftassign", InfixAssign},
		{"0", "_constant_zero", Constant},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			info, ok := Lookup(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.output, info.OutputName)
			assert.Equal(t, tt.kind, info.Kind)
		})
	}
}

func TestLookupMiss(t *testing.T) {
	_, ok := Lookup("add")
	assert.False(t, ok)
	assert.False(t, IsOperator("main"))
	assert.True(t, IsOperator("?*?"))
}

func TestTableInputNamesUnique(t *testing.T) {
	all := All()
	assert.Len(t, byInputName, len(all))
	for _, info := range all {
		assert.NotEmpty(t, info.OutputName, info.InputName)
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name       string
		ctor       bool
		dtor       bool
		assign     bool
		ctorDtorAs bool
	}{
		{"?{}", true, false, false, true},
		{"^?{}", false, true, false, true},
		{"?=?", false, false, true, true},
		{"?+=?", false, false, true, false},
		{"++?", false, false, true, false},
		{"?+?", false, false, false, false},
		{"f", false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ctor, IsConstructor(tt.name))
			assert.Equal(t, tt.dtor, IsDestructor(tt.name))
			assert.Equal(t, tt.ctor || tt.dtor, IsCtorDtor(tt.name))
			assert.Equal(t, tt.assign, IsAssignment(tt.name))
			assert.Equal(t, tt.ctorDtorAs, IsCtorDtorAssign(tt.name))
		})
	}
}
