// Package ast holds the resolved declaration and type trees consumed by the
// type renderer and the name mangler. Trees are built upstream and treated
// as read-only here, except for the mangled name written back onto a
// declaration.
package ast

import (
	"strings"
)

// Node is implemented by every tree node the renderer and mangler accept.
type Node interface {
	String() string
	aNode()
}

type node struct{}

func (node) aNode() {}

func printVec[T Node](xs []T) string {
	if len(xs) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, x := range xs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(x.String())
	}
	return sb.String()
}
