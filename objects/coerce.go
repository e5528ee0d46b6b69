/*
File    : kraber/objects/coerce.go
*/

// Package objects implements the numeric coercion lattice kraber applies
// during assignment: the constrained whole/integer/float conversion table
// that governs how a value may be reshaped to a variable's declared type.
package objects

import (
	"errors"
	"fmt"
	"math"

	"github.com/intfract/kraber/ast"
)

// ErrNegativeToWhole is returned when a negative integer or float would
// be cast to whole. Callers surface this as an ArgError per the language
// specification, not a TypeError.
var ErrNegativeToWhole = errors.New("cannot cast negative value to whole")

// ErrIncompatibleTypes is returned for any assignment between kinds that
// are neither identical nor connected by the coercion lattice (e.g. text
// into a float-declared variable). Callers surface this as a TypeError.
var ErrIncompatibleTypes = errors.New("incompatible types")

// Coerce converts value to the declared type named target, applying the
// whole/integer/float lattice when value's own kind does not already
// match target. Non-numeric values only succeed when their TypeName
// already equals target; list-to-list compatibility is checked by the
// caller (it additionally depends on the declared element-type union,
// which Coerce has no visibility into).
func Coerce(value ast.Data, target string) (ast.Data, error) {
	if value.TypeName() == target {
		return value, nil
	}

	if !value.IsNumeric() {
		return ast.Data{}, fmt.Errorf("%w: cannot assign %s to %s", ErrIncompatibleTypes, value.TypeName(), target)
	}

	switch target {
	case "whole":
		return toWhole(value)
	case "integer":
		return toInteger(value), nil
	case "float":
		return ast.NewFloat(value.AsFloat64()), nil
	default:
		return ast.Data{}, fmt.Errorf("%w: cannot assign %s to %s", ErrIncompatibleTypes, value.TypeName(), target)
	}
}

func toWhole(value ast.Data) (ast.Data, error) {
	switch value.Kind {
	case ast.Whole:
		return value, nil
	case ast.Integer:
		if value.IntegerValue < 0 {
			return ast.Data{}, fmt.Errorf("%w: %d", ErrNegativeToWhole, value.IntegerValue)
		}
		return ast.NewWhole(uint64(value.IntegerValue)), nil
	case ast.Float:
		if value.FloatValue < 0 {
			return ast.Data{}, fmt.Errorf("%w: %v", ErrNegativeToWhole, value.FloatValue)
		}
		return ast.NewWhole(uint64(math.Trunc(value.FloatValue))), nil
	default:
		return ast.Data{}, fmt.Errorf("%w: cannot assign %s to whole", ErrIncompatibleTypes, value.TypeName())
	}
}

func toInteger(value ast.Data) ast.Data {
	switch value.Kind {
	case ast.Whole:
		return ast.NewInteger(int64(value.WholeValue))
	case ast.Float:
		return ast.NewInteger(int64(math.Trunc(value.FloatValue)))
	default:
		return value
	}
}
