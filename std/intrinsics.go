/*
File    : kraber/std/intrinsics.go
*/

// Package std implements kraber's nine built-in intrinsics as
// ast.NativeBody values and seeds a fresh memory.Memory with them under
// Data::KraberFunction bindings. This is the language's entire standard
// library: there is no module system to import additional natives
// through, so the table here is the closed, final set of callables every
// program starts with.
package std

import (
	"math"
	"strings"

	"github.com/intfract/kraber/ast"
	"github.com/intfract/kraber/kerr"
	"github.com/intfract/kraber/memory"
)

// Names lists the intrinsics in the order they are seeded into a fresh
// Memory.
var Names = []string{"equal", "lt", "nand", "add", "multiply", "raise", "floor", "join", "push"}

// Seed populates mem with a KraberFunction binding for every intrinsic
// and returns mem for chaining.
func Seed(mem memory.Memory) memory.Memory {
	table := map[string]ast.NativeBody{
		"equal":    equal,
		"lt":       lt,
		"nand":     nand,
		"add":      add,
		"multiply": multiply,
		"raise":    raise,
		"floor":    floor,
		"join":     join,
		"push":     push,
	}
	for _, name := range Names {
		value := ast.NewKraberFunction(table[name])
		mem.Set(name, memory.Variable{Value: value, DataType: ast.NewType("kraberfunction")})
	}
	return mem
}

func numericArgs(name string, args []ast.Data) ([]float64, error) {
	values := make([]float64, len(args))
	for i, a := range args {
		if !a.IsNumeric() {
			return nil, kerr.NewArgError("%s: argument %d is not numeric (%s)", name, i, a.TypeName())
		}
		values[i] = a.AsFloat64()
	}
	return values, nil
}

// equal is true iff every adjacent pair of the (pairwise-coerced-to-
// float64) arguments is numerically equal.
func equal(args []ast.Data) (ast.Data, error) {
	values, err := numericArgs("equal", args)
	if err != nil {
		return ast.Data{}, err
	}
	for i := 1; i < len(values); i++ {
		if values[i-1] != values[i] {
			return ast.NewBoolean(false), nil
		}
	}
	return ast.NewBoolean(true), nil
}

func lt(args []ast.Data) (ast.Data, error) {
	if len(args) != 2 {
		return ast.Data{}, kerr.NewArgError("lt: expected 2 arguments, got %d", len(args))
	}
	values, err := numericArgs("lt", args)
	if err != nil {
		return ast.Data{}, err
	}
	return ast.NewBoolean(values[0] < values[1]), nil
}

func nand(args []ast.Data) (ast.Data, error) {
	if len(args) != 2 {
		return ast.Data{}, kerr.NewArgError("nand: expected 2 arguments, got %d", len(args))
	}
	if args[0].Kind != ast.Boolean || args[1].Kind != ast.Boolean {
		return ast.Data{}, kerr.NewArgError("nand: both arguments must be boolean")
	}
	return ast.NewBoolean(!(args[0].BooleanValue && args[1].BooleanValue)), nil
}

func add(args []ast.Data) (ast.Data, error) {
	values, err := numericArgs("add", args)
	if err != nil {
		return ast.Data{}, err
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return ast.NewFloat(sum), nil
}

// multiply repeats a leading Text argument by the truncated-unsigned
// product of the remaining numeric arguments; otherwise it returns the
// float product of all arguments.
func multiply(args []ast.Data) (ast.Data, error) {
	if len(args) == 0 {
		return ast.Data{}, kerr.NewArgError("multiply: expected at least 1 argument")
	}
	if args[0].Kind == ast.Text {
		values, err := numericArgs("multiply", args[1:])
		if err != nil {
			return ast.Data{}, err
		}
		product := 1.0
		for _, v := range values {
			product *= v
		}
		count := int(math.Trunc(product))
		if count < 0 {
			return ast.Data{}, kerr.NewArgError("multiply: negative repeat count")
		}
		return ast.NewText(strings.Repeat(args[0].TextValue, count)), nil
	}

	values, err := numericArgs("multiply", args)
	if err != nil {
		return ast.Data{}, err
	}
	product := 1.0
	for _, v := range values {
		product *= v
	}
	return ast.NewFloat(product), nil
}

func raise(args []ast.Data) (ast.Data, error) {
	if len(args) != 2 {
		return ast.Data{}, kerr.NewArgError("raise: expected 2 arguments, got %d", len(args))
	}
	values, err := numericArgs("raise", args)
	if err != nil {
		return ast.Data{}, err
	}
	return ast.NewFloat(math.Pow(values[0], values[1])), nil
}

func floor(args []ast.Data) (ast.Data, error) {
	if len(args) != 1 {
		return ast.Data{}, kerr.NewArgError("floor: expected 1 argument, got %d", len(args))
	}
	values, err := numericArgs("floor", args)
	if err != nil {
		return ast.Data{}, err
	}
	return ast.NewInteger(int64(math.Trunc(values[0]))), nil
}

func join(args []ast.Data) (ast.Data, error) {
	var b strings.Builder
	for i, a := range args {
		if a.Kind != ast.Text {
			return ast.Data{}, kerr.NewArgError("join: argument %d is not text (%s)", i, a.TypeName())
		}
		b.WriteString(a.TextValue)
	}
	return ast.NewText(b.String()), nil
}

// push returns a new List with x appended, leaving the original argument
// untouched — the caller only ever sees the returned value, so there is
// no mutation to guard against.
func push(args []ast.Data) (ast.Data, error) {
	if len(args) != 2 {
		return ast.Data{}, kerr.NewArgError("push: expected 2 arguments, got %d", len(args))
	}
	list, x := args[0], args[1]
	if list.Kind != ast.List {
		return ast.Data{}, kerr.NewArgError("push: first argument is not a list (%s)", list.TypeName())
	}
	allowed := false
	for _, t := range list.DataTypes {
		if t.Name == x.TypeName() {
			allowed = true
			break
		}
	}
	if !allowed {
		return ast.Data{}, kerr.NewArgError("push: %s is not in the list's declared element types", x.TypeName())
	}

	elements := make([]ast.Data, len(list.Elements)+1)
	copy(elements, list.Elements)
	elements[len(list.Elements)] = x
	return ast.NewList(list.DataTypes, elements), nil
}
