package ast

import "strings"

// Qualifiers is the set of cv-qualifiers on a type. The bit order matches
// QualifierNames.
type Qualifiers uint8

const (
	Const Qualifiers = 1 << iota
	Restrict
	Volatile
	Mutex
	Atomic

	NoQualifiers Qualifiers = 0
	// Mask covers every qualifier bit.
	Mask = Const | Restrict | Volatile | Mutex | Atomic
)

var QualifierNames = [...]string{"const", "restrict", "volatile", "mutex", "_Atomic"}

func (q Qualifiers) Has(o Qualifiers) bool { return q&o == o }

func (q Qualifiers) IsConst() bool    { return q&Const != 0 }
func (q Qualifiers) IsRestrict() bool { return q&Restrict != 0 }
func (q Qualifiers) IsVolatile() bool { return q&Volatile != 0 }
func (q Qualifiers) IsMutex() bool    { return q&Mutex != 0 }
func (q Qualifiers) IsAtomic() bool   { return q&Atomic != 0 }

func (q Qualifiers) String() string {
	return bitNames(uint8(q), QualifierNames[:])
}

// StorageClasses is the set of storage-class specifiers on a declaration.
type StorageClasses uint8

const (
	Extern StorageClasses = 1 << iota
	Static
	Auto
	Register
	ThreadLocal
)

var StorageClassNames = [...]string{"extern", "static", "auto", "register", "_Thread_local"}

func (s StorageClasses) IsExtern() bool { return s&Extern != 0 }
func (s StorageClasses) IsStatic() bool { return s&Static != 0 }

func (s StorageClasses) String() string {
	return bitNames(uint8(s), StorageClassNames[:])
}

// FuncSpecifiers is the set of function specifiers on a declaration.
type FuncSpecifiers uint8

const (
	Inline FuncSpecifiers = 1 << iota
	Noreturn
	Fortran
)

var FuncSpecifierNames = [...]string{"inline", "_Noreturn", "fortran"}

func (f FuncSpecifiers) String() string {
	return bitNames(uint8(f), FuncSpecifierNames[:])
}

func bitNames(bits uint8, names []string) string {
	var parts []string
	for i, name := range names {
		if bits&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, " ")
}
