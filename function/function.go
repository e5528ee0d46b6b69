/*
File    : kraber/function/function.go
*/

// Package function formats and inspects callable ast.Data values (Function
// and KraberFunction). A closure is just a case of the single tagged
// ast.Data rather than its own Go type, so there is no struct here to
// attach methods to; instead this package exposes the same
// display/inspection behavior as plain functions over ast.Data.
package function

import (
	"fmt"
	"strings"

	"github.com/intfract/kraber/ast"
)

// Describe renders a Function or KraberFunction the way the interpreter's
// bare-identifier print statement does when the named variable holds a
// callable: "<func(a, b)>" for a user function, "<kraberfunction>" for a
// built-in intrinsic. Any other Kind is rendered via Data.Display.
func Describe(d ast.Data) string {
	switch d.Kind {
	case ast.Function:
		return fmt.Sprintf("<func(%s)>", strings.Join(d.Params, ", "))
	case ast.KraberFunction:
		return "<kraberfunction>"
	default:
		return d.Display()
	}
}

// Arity returns the number of parameters a Function expects. It panics on
// a non-Function Data; callers only use it after confirming Kind via a
// type switch, the same discipline the interpreter applies before calling
// a function.
func Arity(d ast.Data) int {
	if d.Kind != ast.Function {
		panic("Arity called on non-Function Data")
	}
	return len(d.Params)
}
