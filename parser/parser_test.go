/*
File    : kraber/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intfract/kraber/ast"
	"github.com/intfract/kraber/lexer"
)

func mustParse(t *testing.T, source string) *ast.Tree {
	t.Helper()
	tree, err := Parse(lexer.Tokenize(source))
	require.NoError(t, err)
	return tree
}

func TestParse_Declare_HasIdentifierThenType(t *testing.T) {
	tree := mustParse(t, `declare x as integer`)
	require.Len(t, tree.Root.Nodes, 1)
	decl := tree.Root.Nodes[0]
	require.Equal(t, ast.Declare, decl.Data.Kind)
	require.Len(t, decl.Nodes, 2)
	assert.Equal(t, ast.Identifier, decl.Nodes[0].Data.Kind)
	assert.Equal(t, "x", decl.Nodes[0].Data.Name)
	assert.Equal(t, ast.Type, decl.Nodes[1].Data.Kind)
	assert.Equal(t, "integer", decl.Nodes[1].Data.Name)
}

func TestParse_DeclareList_NestsElementTypes(t *testing.T) {
	tree := mustParse(t, `declare l as list [ integer ]`)
	decl := tree.Root.Nodes[0]
	typeNode := decl.Nodes[1]
	require.Equal(t, "list", typeNode.Data.Name)
	require.Len(t, typeNode.Nodes, 1)
	assert.Equal(t, "integer", typeNode.Nodes[0].Data.Name)
}

func TestParse_Set_AssignsExpressionToIdentifier(t *testing.T) {
	tree := mustParse(t, `set x to 1`)
	assign := tree.Root.Nodes[0]
	require.Equal(t, ast.Assign, assign.Data.Kind)
	require.Len(t, assign.Nodes, 2)
	assert.Equal(t, "x", assign.Nodes[0].Data.Name)
	assert.Equal(t, ast.Whole, assign.Nodes[1].Data.Kind)
	assert.Equal(t, uint64(1), assign.Nodes[1].Data.WholeValue)
}

func TestParse_Set_CallExpressionNestsArguments(t *testing.T) {
	tree := mustParse(t, `set y to add(1 2 3)`)
	assign := tree.Root.Nodes[0]
	call := assign.Nodes[1]
	require.Equal(t, ast.Identifier, call.Data.Kind)
	require.Equal(t, "add", call.Data.Name)
	require.Len(t, call.Nodes, 3)
	assert.Equal(t, uint64(1), call.Nodes[0].Data.WholeValue)
	assert.Equal(t, uint64(3), call.Nodes[2].Data.WholeValue)
}

func TestParse_Set_FunctionLiteral(t *testing.T) {
	tree := mustParse(t, `set f to fun(a as integer b as integer) as integer { return add(a b) }`)
	assign := tree.Root.Nodes[0]
	container := assign.Nodes[1]
	require.Equal(t, ast.FunctionContainer, container.Data.Kind)
	assert.Equal(t, []string{"a", "b"}, container.Data.Params)
	require.Len(t, container.Data.ParamTypes, 2)
	assert.Equal(t, "integer", container.Data.ParamTypes[0].Name)
	require.Len(t, container.Data.ReturnTypes, 1)
	assert.Equal(t, "integer", container.Data.ReturnTypes[0].Name)

	require.Len(t, container.Nodes, 1)
	assert.Equal(t, ast.Return, container.Nodes[0].Data.Kind)
}

func TestParse_While_GuardThenBody(t *testing.T) {
	tree := mustParse(t, `while lt(i 3) { set i to add(i 1) }`)
	loop := tree.Root.Nodes[0]
	require.Equal(t, ast.While, loop.Data.Kind)
	require.True(t, len(loop.Nodes) >= 2)
	assert.Equal(t, ast.Expression, loop.Nodes[0].Data.Kind)
	guardCall := loop.Nodes[0].Nodes[0]
	assert.Equal(t, "lt", guardCall.Data.Name)

	body := loop.Nodes[1]
	assert.Equal(t, ast.Assign, body.Data.Kind)
}

func TestParse_While_EmptyGuardAndBodyParsesCleanly(t *testing.T) {
	tree := mustParse(t, `while { }`)
	loop := tree.Root.Nodes[0]
	require.Equal(t, ast.While, loop.Data.Kind)
	require.Len(t, loop.Nodes, 1)
	assert.Equal(t, ast.Expression, loop.Nodes[0].Data.Kind)
	assert.Empty(t, loop.Nodes[0].Nodes)
}

func TestParse_Return_WrapsExpression(t *testing.T) {
	tree := mustParse(t, `return add(a b)`)
	ret := tree.Root.Nodes[0]
	require.Equal(t, ast.Return, ret.Data.Kind)
	require.Len(t, ret.Nodes, 1)
	assert.Equal(t, "add", ret.Nodes[0].Data.Name)
}

func TestParse_BareTextAndIdentifier(t *testing.T) {
	tree := mustParse(t, `"hello" x`)
	require.Len(t, tree.Root.Nodes, 2)
	assert.Equal(t, ast.Text, tree.Root.Nodes[0].Data.Kind)
	assert.Equal(t, "hello", tree.Root.Nodes[0].Data.TextValue)
	assert.Equal(t, ast.Identifier, tree.Root.Nodes[1].Data.Kind)
}

func TestParse_Errors(t *testing.T) {
	cases := []string{
		`declare 1`,
		`declare x as 1`,
		`set 1 to 2`,
	}
	for _, src := range cases {
		_, err := Parse(lexer.Tokenize(src))
		assert.Error(t, err, "source: %q", src)
		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr)
	}
}
