/*
File    : kraber/memory/memory_test.go
*/
package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/intfract/kraber/ast"
)

func TestMemory_CloneIsIndependent(t *testing.T) {
	m := New()
	m.Set("x", Variable{Value: ast.NewInteger(1), DataType: ast.NewType("integer")})

	clone := m.Clone()
	clone.Set("x", Variable{Value: ast.NewInteger(2), DataType: ast.NewType("integer")})

	original, _ := m.Get("x")
	assert.Equal(t, int64(1), original.Value.IntegerValue)
}

func TestMemory_WithoutLocalsRemovesOnlyNamedKeys(t *testing.T) {
	m := New()
	m.Set("outer", Variable{Value: ast.NewInteger(1), DataType: ast.NewType("integer")})
	m.Set("inner", Variable{Value: ast.NewInteger(2), DataType: ast.NewType("integer")})

	reconciled := m.WithoutLocals([]string{"inner"})

	_, hasOuter := reconciled.Get("outer")
	_, hasInner := reconciled.Get("inner")
	assert.True(t, hasOuter)
	assert.False(t, hasInner)
}
