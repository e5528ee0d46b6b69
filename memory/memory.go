/*
File    : kraber/memory/memory.go
*/

// Package memory implements the interpreter's only runtime store: a flat
// name-to-Variable mapping, snapshot-copied into every sub-interpreter
// frame (function call or loop body) and reconciled back into the caller
// on exit. There is no lexical parent pointer here, because closures in
// kraber are captured by full memory snapshot at call time rather than by
// scope reference.
package memory

import "github.com/intfract/kraber/ast"

// Variable is one binding: the current value together with its declared
// type, which an assignment must preserve.
type Variable struct {
	Value    ast.Data
	DataType ast.Data // a Type Data
}

// Memory maps identifier name to Variable. Each name has at most one
// binding (Set overwrites); insertion order is irrelevant to the
// language's semantics.
type Memory map[string]Variable

// New returns an empty Memory.
func New() Memory {
	return make(Memory)
}

// Get looks up a variable by name.
func (m Memory) Get(name string) (Variable, bool) {
	v, ok := m[name]
	return v, ok
}

// Set creates or overwrites a binding.
func (m Memory) Set(name string, v Variable) {
	m[name] = v
}

// Clone returns a shallow snapshot of m: a new map with the same
// Variable values. This is the copy every sub-interpreter frame receives
// on entry (function call, loop body), giving call-by-value parameter
// semantics without aliasing the caller's bindings.
func (m Memory) Clone() Memory {
	clone := make(Memory, len(m))
	for k, v := range m {
		clone[k] = v
	}
	return clone
}

// WithoutLocals returns a clone of m with every name in locals removed.
// This is how a caller reconciles a sub-interpreter's memory back into
// its own on frame exit: the sub-interpreter's Memory becomes the new
// caller Memory, minus whatever it declared locally.
func (m Memory) WithoutLocals(locals []string) Memory {
	clone := m.Clone()
	for _, name := range locals {
		delete(clone, name)
	}
	return clone
}
