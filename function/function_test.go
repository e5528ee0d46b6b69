/*
File    : kraber/function/function_test.go
*/
package function

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/intfract/kraber/ast"
)

func TestDescribe_Function(t *testing.T) {
	fn := ast.NewFunction([]string{"a", "b"}, nil, nil, nil)
	assert.Equal(t, "<func(a, b)>", Describe(fn))
}

func TestDescribe_KraberFunction(t *testing.T) {
	native := ast.NewKraberFunction(func(args []ast.Data) (ast.Data, error) {
		return ast.NewNull(), nil
	})
	assert.Equal(t, "<kraberfunction>", Describe(native))
}

func TestDescribe_FallsBackToDataDisplay(t *testing.T) {
	assert.Equal(t, ast.NewWhole(3).Display(), Describe(ast.NewWhole(3)))
}

func TestArity_CountsParams(t *testing.T) {
	fn := ast.NewFunction([]string{"a", "b", "c"}, nil, nil, nil)
	assert.Equal(t, 3, Arity(fn))
}

func TestArity_PanicsOnNonFunction(t *testing.T) {
	assert.Panics(t, func() {
		Arity(ast.NewWhole(1))
	})
}
