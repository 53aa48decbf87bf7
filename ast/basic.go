package ast

import "strconv"

// BasicKind enumerates the primitive types. The order is the conversion
// rank order of the type-conversion graph and must not change: the table
// below is indexed by it.
type BasicKind int

const (
	Bool BasicKind = iota
	Char
	SignedChar
	UnsignedChar
	ShortSignedInt
	ShortUnsignedInt
	SignedInt
	UnsignedInt
	LongSignedInt
	LongUnsignedInt
	LongLongSignedInt
	LongLongUnsignedInt
	SignedInt128
	UnsignedInt128
	UFloat16        // _Float16
	UFloat16Complex // _Float16 _Complex
	UFloat32        // _Float32
	UFloat32Complex
	Float
	FloatComplex
	UFloat32x // _Float32x
	UFloat32xComplex
	UFloat64 // _Float64
	UFloat64Complex
	Double
	DoubleComplex
	UFloat64x // _Float64x
	UFloat64xComplex
	UUFloat80 // __float80
	UFloat128 // _Float128
	UFloat128Complex
	UUFloat128 // __float128
	LongDouble
	LongDoubleComplex
	UFloat128x // _Float128x
	UFloat128xComplex

	NumBasicKinds
)

// NumSort classifies a basic type's signedness. Floating types count as
// both signed and unsigned.
type NumSort uint8

const (
	Signed   NumSort = 0x1
	Unsigned NumSort = 0x2
	Floating NumSort = Signed | Unsigned
)

// BasicInfo is one row of the basic-type table.
type BasicInfo struct {
	Kind    BasicKind
	Name    string // C spelling used by the renderer
	Mangled string // mangling token
	Sign    NumSort
	Rank    int // integral conversion rank, extended to floating types
}

// basicTypes is derived offline from the conversion-rank graph. Float128
// and LongDouble mangle differently; the complex _FloatN tokens are best
// guesses since the Itanium ABI does not define them.
var basicTypes = [NumBasicKinds]BasicInfo{
	Bool:                {Bool, "_Bool", "b", Signed, 0},
	Char:                {Char, "char", "c", Signed, 1},
	SignedChar:          {SignedChar, "signed char", "a", Signed, 1},
	UnsignedChar:        {UnsignedChar, "unsigned char", "h", Unsigned, 1},
	ShortSignedInt:      {ShortSignedInt, "signed short int", "s", Signed, 2},
	ShortUnsignedInt:    {ShortUnsignedInt, "unsigned short int", "t", Unsigned, 2},
	SignedInt:           {SignedInt, "signed int", "i", Signed, 3},
	UnsignedInt:         {UnsignedInt, "unsigned int", "j", Unsigned, 3},
	LongSignedInt:       {LongSignedInt, "signed long int", "l", Signed, 4},
	LongUnsignedInt:     {LongUnsignedInt, "unsigned long int", "m", Unsigned, 4},
	LongLongSignedInt:   {LongLongSignedInt, "signed long long int", "x", Signed, 5},
	LongLongUnsignedInt: {LongLongUnsignedInt, "unsigned long long int", "y", Unsigned, 5},
	SignedInt128:        {SignedInt128, "__int128", "n", Signed, 6},
	UnsignedInt128:      {UnsignedInt128, "unsigned __int128", "o", Unsigned, 6},
	UFloat16:            {UFloat16, "_Float16", "DF16_", Floating, 7},
	UFloat16Complex:     {UFloat16Complex, "_Float16 _Complex", "CDF16_", Floating, 7},
	UFloat32:            {UFloat32, "_Float32", "DF32_", Floating, 8},
	UFloat32Complex:     {UFloat32Complex, "_Float32 _Complex", "CDF32_", Floating, 8},
	Float:               {Float, "float", "f", Floating, 9},
	FloatComplex:        {FloatComplex, "float _Complex", "Cf", Floating, 9},
	UFloat32x:           {UFloat32x, "_Float32x", "DF32x_", Floating, 10},
	UFloat32xComplex:    {UFloat32xComplex, "_Float32x _Complex", "CDF32x_", Floating, 10},
	UFloat64:            {UFloat64, "_Float64", "DF64_", Floating, 11},
	UFloat64Complex:     {UFloat64Complex, "_Float64 _Complex", "CDF64_", Floating, 11},
	Double:              {Double, "double", "d", Floating, 12},
	DoubleComplex:       {DoubleComplex, "double _Complex", "Cd", Floating, 12},
	UFloat64x:           {UFloat64x, "_Float64x", "DF64x_", Floating, 13},
	UFloat64xComplex:    {UFloat64xComplex, "_Float64x _Complex", "CDF64x_", Floating, 13},
	UUFloat80:           {UUFloat80, "__float80", "Dq", Floating, 14},
	UFloat128:           {UFloat128, "_Float128", "DF128_", Floating, 15},
	UFloat128Complex:    {UFloat128Complex, "_Float128 _Complex", "CDF128_", Floating, 15},
	UUFloat128:          {UUFloat128, "__float128", "g", Floating, 16},
	LongDouble:          {LongDouble, "long double", "e", Floating, 17},
	LongDoubleComplex:   {LongDoubleComplex, "long double _Complex", "Ce", Floating, 17},
	UFloat128x:          {UFloat128x, "_Float128x", "DF128x_", Floating, 18},
	UFloat128xComplex:   {UFloat128xComplex, "_Float128x _Complex", "CDF128x_", Floating, 18},
}

var basicKindByName = func() map[string]BasicKind {
	m := make(map[string]BasicKind, len(basicTypes))
	for _, info := range basicTypes {
		m[info.Name] = info.Kind
	}
	return m
}()

// LookupBasicKind returns the kind whose C spelling is name.
func LookupBasicKind(name string) (BasicKind, bool) {
	k, ok := basicKindByName[name]
	return k, ok
}

func (k BasicKind) Valid() bool { return 0 <= k && k < NumBasicKinds }

// Info returns the table row for k. It panics on an out-of-range kind.
func (k BasicKind) Info() BasicInfo {
	if !k.Valid() {
		panic("Unhandled basic type: " + strconv.Itoa(int(k)))
	}
	return basicTypes[k]
}

func (k BasicKind) Name() string    { return k.Info().Name }
func (k BasicKind) Mangled() string { return k.Info().Mangled }
func (k BasicKind) Rank() int       { return k.Info().Rank }

func (k BasicKind) IsFloating() bool { return k.Info().Sign == Floating }
func (k BasicKind) IsInteger() bool  { return k.Valid() && k <= UnsignedInt128 }
func (k BasicKind) IsSigned() bool   { return k.Info().Sign&Signed != 0 }
func (k BasicKind) IsUnsigned() bool { return k.Info().Sign&Unsigned != 0 }

func (k BasicKind) String() string {
	if !k.Valid() {
		return "BasicKind(" + strconv.Itoa(int(k)) + ")"
	}
	return basicTypes[k].Name
}
