/*
File    : kraber/ast/data.go
*/

// Package ast defines the single tagged-variant domain ("Data") shared by
// AST node payloads and runtime values, together with the arena-style
// Node/Tree the parser builds and the interpreter walks.
//
// Every case of the value domain is represented as one struct carrying a
// Kind discriminant plus every case's payload fields; callers switch on
// Kind rather than type-asserting across a family of structs. A single
// tagged struct keeps construction, comparison, and serialization uniform
// across all eighteen kinds without a parallel hierarchy of Go types.
package ast

import "fmt"

// Kind discriminates which case of Data a value represents.
type Kind int

const (
	// Main marks the root of a Tree. It never appears as a runtime value.
	Main Kind = iota
	// Declare, Assign, While, Return and Expression are structural AST
	// node kinds; none of them carries a meaningful runtime value.
	Declare
	Assign
	While
	Return
	Expression

	// Whole, Integer, Float, Boolean, Text and Null are scalar literal /
	// runtime value kinds.
	Whole
	Integer
	Float
	Boolean
	Text
	Null

	// Identifier and Type are symbol kinds: a name reference and a type
	// name (with, for list types, nested Type children on the owning Node).
	Identifier
	Type

	// FunctionContainer is the AST-only function prototype produced by the
	// parser; its body lives as the owning Node's children, not in Data.
	FunctionContainer
	// Function is the runtime closure: a FunctionContainer captured
	// together with its body statement list.
	Function
	// KraberFunction is a built-in intrinsic: an opaque Go callable
	// invoked through the same call protocol as a user Function.
	KraberFunction

	// List is the aggregate runtime value: a declared element-type union
	// plus an ordered value sequence.
	List
)

// String names a Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case Main:
		return "Main"
	case Declare:
		return "Declare"
	case Assign:
		return "Assign"
	case While:
		return "While"
	case Return:
		return "Return"
	case Expression:
		return "Expression"
	case Whole:
		return "Whole"
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	case Boolean:
		return "Boolean"
	case Text:
		return "Text"
	case Null:
		return "Null"
	case Identifier:
		return "Identifier"
	case Type:
		return "Type"
	case FunctionContainer:
		return "FunctionContainer"
	case Function:
		return "Function"
	case KraberFunction:
		return "KraberFunction"
	case List:
		return "List"
	default:
		return "Unknown"
	}
}

// NativeBody is the signature every built-in intrinsic implements: it
// receives its already-evaluated argument vector and returns a result or
// an evaluation error (arity/type mismatches surface this way).
type NativeBody func(args []Data) (Data, error)

// Data is the unified AST-node-payload and runtime-value type. Only the
// fields relevant to Kind are meaningful; the zero value of every other
// field is simply unused.
type Data struct {
	Kind Kind

	// Scalar payloads.
	WholeValue   uint64
	IntegerValue int64
	FloatValue   float64
	BooleanValue bool
	TextValue    string

	// Identifier / Type payload. For Type{"list"} the parser records the
	// element-type union as Type children of the owning Node; the
	// interpreter copies it into DataTypes of the variable's declared type.
	Name string

	// Function / FunctionContainer payload.
	Params      []string
	ParamTypes  []Data // each a Type Data
	ReturnTypes []Data // each a Type Data; always length 1 per the grammar
	Body        []*Node

	// KraberFunction payload.
	Native NativeBody

	// List payload.
	DataTypes []Data // declared element-type union, each a Type Data
	Elements  []Data
}

// Convenience constructors — every AST/value case has exactly one shape,
// so these read like the Rust enum's variant constructors.

func NewMain() Data       { return Data{Kind: Main} }
func NewDeclare() Data    { return Data{Kind: Declare} }
func NewAssign() Data     { return Data{Kind: Assign} }
func NewWhile() Data      { return Data{Kind: While} }
func NewReturn() Data     { return Data{Kind: Return} }
func NewExpression() Data { return Data{Kind: Expression} }
func NewNull() Data       { return Data{Kind: Null} }

func NewWhole(v uint64) Data   { return Data{Kind: Whole, WholeValue: v} }
func NewInteger(v int64) Data  { return Data{Kind: Integer, IntegerValue: v} }
func NewFloat(v float64) Data  { return Data{Kind: Float, FloatValue: v} }
func NewBoolean(v bool) Data   { return Data{Kind: Boolean, BooleanValue: v} }
func NewText(v string) Data    { return Data{Kind: Text, TextValue: v} }
func NewIdentifier(n string) Data { return Data{Kind: Identifier, Name: n} }
func NewType(n string) Data    { return Data{Kind: Type, Name: n} }

func NewKraberFunction(body NativeBody) Data {
	return Data{Kind: KraberFunction, Native: body}
}

func NewFunctionContainer(params []string, paramTypes, returnTypes []Data) Data {
	return Data{Kind: FunctionContainer, Params: params, ParamTypes: paramTypes, ReturnTypes: returnTypes}
}

func NewFunction(params []string, paramTypes, returnTypes []Data, body []*Node) Data {
	return Data{Kind: Function, Params: params, ParamTypes: paramTypes, ReturnTypes: returnTypes, Body: body}
}

func NewList(dataTypes []Data, elements []Data) Data {
	return Data{Kind: List, DataTypes: dataTypes, Elements: elements}
}

// IsNumeric reports whether the value is one of the three numeric kinds
// the coercion lattice operates over.
func (d Data) IsNumeric() bool {
	return d.Kind == Whole || d.Kind == Integer || d.Kind == Float
}

// AsFloat64 returns the numeric value of a Whole/Integer/Float as a
// float64. It panics if called on a non-numeric Data; callers must check
// IsNumeric first (the coercion lattice and the intrinsics always do,
// surfacing a TypeError or ArgError instead of reaching this).
func (d Data) AsFloat64() float64 {
	switch d.Kind {
	case Whole:
		return float64(d.WholeValue)
	case Integer:
		return float64(d.IntegerValue)
	case Float:
		return d.FloatValue
	default:
		panic(fmt.Sprintf("AsFloat64 called on non-numeric Data (%s)", d.Kind))
	}
}

// TypeName returns the declared-type name a runtime value of this Kind
// satisfies, matching the type-name vocabulary used in Type{name} nodes.
// It is undefined (returns "") for structural kinds that never appear as
// a declared or runtime type.
func (d Data) TypeName() string {
	switch d.Kind {
	case Whole:
		return "whole"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Boolean:
		return "boolean"
	case Text:
		return "text"
	case Function:
		return "function"
	case KraberFunction:
		return "kraberfunction"
	case List:
		return "list"
	default:
		return ""
	}
}

// Display renders a runtime value the way the interpreter's bare-identifier
// print statement does: no quotes around text, no tag around numbers or
// booleans.
func (d Data) Display() string {
	switch d.Kind {
	case Whole:
		return fmt.Sprintf("%d", d.WholeValue)
	case Integer:
		return fmt.Sprintf("%d", d.IntegerValue)
	case Float:
		return fmt.Sprintf("%v", d.FloatValue)
	case Boolean:
		return fmt.Sprintf("%t", d.BooleanValue)
	case Text:
		return d.TextValue
	case Null:
		return "null"
	case Type:
		return d.Name
	case List:
		elems := make([]string, len(d.Elements))
		for i, e := range d.Elements {
			elems[i] = e.Display()
		}
		return fmt.Sprintf("%v", elems)
	case Function:
		return fmt.Sprintf("<function(%d params)>", len(d.Params))
	case KraberFunction:
		return "<kraberfunction>"
	default:
		return fmt.Sprintf("<%s>", d.Kind)
	}
}
