/*
File    : kraber/ast/ast_test.go
*/
package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_GetScope_NavigatesByIndexPath(t *testing.T) {
	tree := NewTree()
	decl := tree.Root.Insert(NewDeclare())
	decl.Insert(NewIdentifier("x"))
	decl.Insert(NewType("integer"))

	loop := tree.Root.Insert(NewWhile())
	guard := loop.Insert(NewExpression())
	guard.Insert(NewBoolean(true))

	require.Equal(t, Identifier, tree.GetScope(ScopePath{0, 0}).Data.Kind)
	require.Equal(t, Type, tree.GetScope(ScopePath{0, 1}).Data.Kind)
	require.Equal(t, Expression, tree.GetScope(ScopePath{1, 0}).Data.Kind)
	assert.Equal(t, "x", tree.GetScope(ScopePath{0, 0}).Data.Name)
}

func TestNode_Insert_AssignsSequentialIDs(t *testing.T) {
	tree := NewTree()
	a := tree.Root.Insert(NewText("a"))
	b := tree.Root.Insert(NewText("b"))
	assert.Equal(t, 0, a.ID)
	assert.Equal(t, 1, b.ID)
	assert.Len(t, tree.Root.Nodes, 2)
}

func TestScopePath_PushPopDoNotMutateReceiver(t *testing.T) {
	base := ScopePath{1, 2}
	pushed := base.Push(3)
	assert.Equal(t, ScopePath{1, 2, 3}, pushed)
	assert.Equal(t, ScopePath{1, 2}, base)

	popped := pushed.Pop()
	assert.Equal(t, ScopePath{1, 2}, popped)
}

func TestData_Display(t *testing.T) {
	assert.Equal(t, "42", NewWhole(42).Display())
	assert.Equal(t, "-3", NewInteger(-3).Display())
	assert.Equal(t, "hi", NewText("hi").Display())
	assert.Equal(t, "true", NewBoolean(true).Display())
	assert.Equal(t, "null", NewNull().Display())
}

func TestData_TypeName(t *testing.T) {
	assert.Equal(t, "whole", NewWhole(1).TypeName())
	assert.Equal(t, "integer", NewInteger(1).TypeName())
	assert.Equal(t, "float", NewFloat(1).TypeName())
	assert.Equal(t, "text", NewText("x").TypeName())
	assert.Equal(t, "boolean", NewBoolean(true).TypeName())
}

func TestData_IsNumeric(t *testing.T) {
	assert.True(t, NewWhole(1).IsNumeric())
	assert.True(t, NewInteger(1).IsNumeric())
	assert.True(t, NewFloat(1).IsNumeric())
	assert.False(t, NewText("x").IsNumeric())
	assert.False(t, NewBoolean(true).IsNumeric())
}
