/*
File    : kraber/eval/interpreter.go
*/

// Package eval implements kraber's tree-walking Interpreter: the statement
// dispatcher, expression evaluator, assignment coercion, and the
// sub-interpreter spawn/reconcile discipline that gives function calls and
// while loops their call-by-value, block-scoped semantics. It walks the
// single tagged ast.Data/ast.Node model directly via a Kind switch, and
// owns a flat memory.Memory snapshot per frame rather than a parent-chain
// scope, since every call or loop iteration captures its caller's bindings
// by value.
package eval

import (
	"errors"
	"fmt"
	"io"

	"github.com/intfract/kraber/ast"
	"github.com/intfract/kraber/function"
	"github.com/intfract/kraber/memory"
	"github.com/intfract/kraber/objects"
	"github.com/intfract/kraber/std"
)

// Interpreter owns one frame's AST, Memory, and locals. A function call or
// a while-loop iteration spawns a fresh Interpreter sharing the same tree
// but holding its own memory snapshot; the caller reconciles that
// snapshot back into its own memory on exit, per the language's
// closure-by-snapshot design.
type Interpreter struct {
	tree   *ast.Tree
	mem    memory.Memory
	locals []string
	out    io.Writer
}

// New creates the top-level Interpreter for tree, seeding its memory with
// the built-in intrinsics and directing print statements to out.
func New(tree *ast.Tree, out io.Writer) *Interpreter {
	return &Interpreter{tree: tree, mem: std.Seed(memory.New()), out: out}
}

// NewWithMemory creates an Interpreter for tree that continues from an
// already-populated memory rather than seeding a fresh one. The REPL uses
// this to run each newly parsed fragment against the memory left behind
// by every fragment before it.
func NewWithMemory(tree *ast.Tree, mem memory.Memory, out io.Writer) *Interpreter {
	return &Interpreter{tree: tree, mem: mem, out: out}
}

// Memory exposes the interpreter's current bindings, e.g. for a caller
// that wants to print the final memory after a run completes.
func (in *Interpreter) Memory() memory.Memory {
	return in.mem
}

// Run executes every top-level statement of the tree in order.
func (in *Interpreter) Run() error {
	return in.execBlock(in.tree.Root.Nodes)
}

// execBlock runs nodes in order, stopping early the moment a statement
// reports it wants dispatch in this frame to stop — a Return always does,
// and a While does when one of its iterations propagated a return out of
// a nested frame.
func (in *Interpreter) execBlock(nodes []*ast.Node) error {
	for _, node := range nodes {
		stop, err := in.execStatement(node)
		if err != nil {
			return err
		}
		if stop {
			break
		}
	}
	return nil
}

func (in *Interpreter) execStatement(node *ast.Node) (bool, error) {
	switch node.Data.Kind {
	case ast.Declare:
		return false, in.execDeclare(node)
	case ast.Assign:
		return false, in.execAssign(node)
	case ast.While:
		return in.execWhile(node)
	case ast.Return:
		return true, in.execReturn(node)
	case ast.Text:
		fmt.Fprintln(in.out, node.Data.TextValue)
		return false, nil
	case ast.Identifier:
		return false, in.execBareIdentifier(node)
	default:
		return false, newTypeError("unexpected statement node %s", node.Data.Kind)
	}
}

func (in *Interpreter) execDeclare(node *ast.Node) error {
	identNode, typeNode := node.Nodes[0], node.Nodes[1]
	name := identNode.Data.Name
	typeData := typeNode.Data

	var value ast.Data
	if typeData.Name == "list" {
		elementTypes := make([]ast.Data, len(typeNode.Nodes))
		for i, child := range typeNode.Nodes {
			elementTypes[i] = child.Data
		}
		typeData.DataTypes = elementTypes
		value = ast.NewList(elementTypes, nil)
	} else {
		value = ast.NewNull()
	}

	in.mem.Set(name, memory.Variable{Value: value, DataType: typeData})
	in.locals = append(in.locals, name)
	return nil
}

func (in *Interpreter) execAssign(node *ast.Node) error {
	identNode, exprNode := node.Nodes[0], node.Nodes[1]
	name := identNode.Data.Name

	variable, ok := in.mem.Get(name)
	if !ok {
		return newNameError("undeclared variable %q", name)
	}

	value, err := in.evalExpressionNode(exprNode)
	if err != nil {
		return err
	}

	coerced, err := coerceForAssign(value, variable.DataType)
	if err != nil {
		return err
	}

	in.mem.Set(name, memory.Variable{Value: coerced, DataType: variable.DataType})
	return nil
}

func (in *Interpreter) execWhile(node *ast.Node) (bool, error) {
	guard := node.Nodes[0]
	body := node.Nodes[1:]
	if len(guard.Nodes) == 0 {
		return false, newTypeError("while guard has no expression")
	}

	for {
		cond, err := in.evalExpressionNode(guard.Nodes[0])
		if err != nil {
			return false, err
		}
		if cond.Kind != ast.Boolean {
			return false, newTypeError("while guard must evaluate to boolean, got %s", cond.Kind)
		}
		if !cond.BooleanValue {
			return false, nil
		}

		sub := &Interpreter{tree: in.tree, mem: in.mem.Clone(), out: in.out}
		if err := sub.execBlock(body); err != nil {
			return false, err
		}

		if ret, ok := sub.mem.Get("return"); ok && ret.Value.Kind != ast.Null {
			// A non-Null return slot means a nested Return unwound this
			// frame; adopt the raw sub-memory (not locals-filtered) so
			// the return value and the frame it belongs to keep
			// travelling upward together, and report that this frame
			// should also stop.
			in.mem = sub.mem
			return true, nil
		}
		in.mem = sub.mem.WithoutLocals(sub.locals)
	}
}

func (in *Interpreter) execReturn(node *ast.Node) error {
	value, err := in.evalExpressionNode(node.Nodes[0])
	if err != nil {
		return err
	}

	declared, ok := in.mem.Get("return")
	target := declared.DataType
	if !ok {
		target = ast.NewType(value.TypeName())
	}

	coerced, err := coerceForAssign(value, target)
	if err != nil {
		return err
	}
	in.mem.Set("return", memory.Variable{Value: coerced, DataType: target})
	return nil
}

func (in *Interpreter) execBareIdentifier(node *ast.Node) error {
	variable, ok := in.mem.Get(node.Data.Name)
	if !ok {
		return newNameError("undefined name %q", node.Data.Name)
	}
	if variable.Value.Kind == ast.KraberFunction {
		result, err := in.evalExpressionNode(node)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.out, result.Display())
		return nil
	}
	fmt.Fprintln(in.out, function.Describe(variable.Value))
	return nil
}

// evalExpressionNode evaluates a single expression-bearing node: a
// literal evaluates to itself, an Identifier resolves a lookup or a call,
// and a FunctionContainer materializes into a runtime Function closure
// over its own node's children.
func (in *Interpreter) evalExpressionNode(node *ast.Node) (ast.Data, error) {
	switch node.Data.Kind {
	case ast.Whole, ast.Integer, ast.Float, ast.Boolean, ast.Text, ast.Null:
		return node.Data, nil
	case ast.Identifier:
		return in.evalIdentifier(node)
	case ast.FunctionContainer:
		d := node.Data
		return ast.NewFunction(d.Params, d.ParamTypes, d.ReturnTypes, node.Nodes), nil
	default:
		return ast.Data{}, newTypeError("cannot evaluate %s as an expression", node.Data.Kind)
	}
}

func (in *Interpreter) evalIdentifier(node *ast.Node) (ast.Data, error) {
	variable, ok := in.mem.Get(node.Data.Name)
	if !ok {
		return ast.Data{}, newNameError("undefined name %q", node.Data.Name)
	}
	switch variable.Value.Kind {
	case ast.KraberFunction:
		args, err := in.evalArgs(node.Nodes)
		if err != nil {
			return ast.Data{}, err
		}
		return variable.Value.Native(args)
	case ast.Function:
		return in.callFunction(variable.Value, node.Nodes)
	default:
		return variable.Value, nil
	}
}

func (in *Interpreter) evalArgs(nodes []*ast.Node) ([]ast.Data, error) {
	args := make([]ast.Data, len(nodes))
	for i, n := range nodes {
		v, err := in.evalExpressionNode(n)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// callFunction spawns a sub-interpreter over fn's captured body, binding
// each parameter to its evaluated-and-coerced argument and seeding a
// "return" slot typed to the function's declared return type. The
// caller's memory is replaced by the sub-interpreter's memory with the
// sub-interpreter's own locals removed; the sub's "return" binding is not
// a declared local, so — matching the reconciliation rule literally — it
// is left behind in the caller's memory after the call returns.
func (in *Interpreter) callFunction(fn ast.Data, argNodes []*ast.Node) (ast.Data, error) {
	args, err := in.evalArgs(argNodes)
	if err != nil {
		return ast.Data{}, err
	}
	if arity := function.Arity(fn); len(args) != arity {
		return ast.Data{}, newArgError("function expects %d arguments, got %d", arity, len(args))
	}

	sub := &Interpreter{tree: in.tree, mem: in.mem.Clone(), out: in.out}
	for i, paramName := range fn.Params {
		paramType := fn.ParamTypes[i]
		coerced, err := coerceForAssign(args[i], paramType)
		if err != nil {
			return ast.Data{}, err
		}
		sub.mem.Set(paramName, memory.Variable{Value: coerced, DataType: paramType})
	}

	returnType := fn.ReturnTypes[0]
	sub.mem.Set("return", memory.Variable{Value: ast.NewNull(), DataType: returnType})

	if err := sub.execBlock(fn.Body); err != nil {
		return ast.Data{}, err
	}

	in.mem = sub.mem.WithoutLocals(sub.locals)
	result, _ := in.mem.Get("return")
	return result.Value, nil
}

// coerceForAssign applies the declared-type check an Assign, Return, or
// parameter binding all share: identity if the kinds already match, the
// numeric coercion lattice for numeric targets, and element-type-union
// equality for list targets.
func coerceForAssign(value ast.Data, declared ast.Data) (ast.Data, error) {
	target := declared.Name

	if target == "list" {
		if value.Kind != ast.List {
			return ast.Data{}, newTypeError("cannot assign %s to list", value.TypeName())
		}
		if !sameTypeUnion(value.DataTypes, declared.DataTypes) {
			return ast.Data{}, newTypeError("list element types do not match declared union")
		}
		return value, nil
	}

	if value.TypeName() == target {
		return value, nil
	}

	coerced, err := objects.Coerce(value, target)
	if err != nil {
		if errors.Is(err, objects.ErrNegativeToWhole) {
			return ast.Data{}, newArgError(err.Error())
		}
		return ast.Data{}, newTypeError(err.Error())
	}
	return coerced, nil
}

func sameTypeUnion(a, b []ast.Data) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name {
			return false
		}
	}
	return true
}
