/*
File    : kraber/parser/parser.go
*/

// Package parser implements kraber's recursive-descent, one-token-lookahead
// parser: it consumes a lexer.Token stream and assembles an ast.Tree under
// construction via a mutable scope path. There is no operator-precedence
// climbing or Pratt parsing here — kraber's grammar has no binary/unary
// expression forms — so statements and calls are built directly by a
// step()-driven cursor walking bracket-balanced sub-parses for while and
// function bodies.
package parser

import (
	"strconv"

	"github.com/intfract/kraber/ast"
	"github.com/intfract/kraber/lexer"
)

// Parser drives a single left-to-right pass over a token stream, mutating
// the AST under construction through an explicit ast.ScopePath rather than
// any package-level or receiver-owned scope stack.
type Parser struct {
	tokens []lexer.Token
	index  int
	token  lexer.Token
	end    bool
}

// New creates a Parser positioned at the first token. An empty token
// stream is valid and immediately reports end of input, producing an
// empty Tree.
func New(tokens []lexer.Token) *Parser {
	p := &Parser{tokens: tokens}
	if len(tokens) == 0 {
		p.end = true
		return p
	}
	p.token = tokens[0]
	return p
}

// Parse consumes the full token stream and returns the resulting Tree, or
// the first ParseError encountered.
func Parse(tokens []lexer.Token) (*ast.Tree, error) {
	return New(tokens).Parse()
}

// Parse runs the parser to completion.
func (p *Parser) Parse() (*ast.Tree, error) {
	tree := ast.NewTree()
	path := ast.ScopePath{}
	for !p.end {
		if err := p.buildTree(tree, &path); err != nil {
			return nil, err
		}
		p.step()
	}
	return tree, nil
}

func (p *Parser) step() {
	p.index++
	if p.index < len(p.tokens) {
		p.token = p.tokens[p.index]
	} else {
		p.end = true
	}
}

// rewind moves the cursor back by one token without re-triggering end,
// used after a bracket-balanced sub-parse so the outer loop's own step()
// advances normally onto whatever follows the closing bracket.
func (p *Parser) rewind() {
	p.index--
	p.token = p.tokens[p.index]
	p.end = false
}

func (p *Parser) hasNext() bool {
	return p.index+1 < len(p.tokens)
}

func (p *Parser) peek() lexer.Token {
	if !p.hasNext() {
		return lexer.Token{}
	}
	return p.tokens[p.index+1]
}

// buildTree dispatches on the current token's category, appending one
// statement-shaped fragment to the node addressed by path.
func (p *Parser) buildTree(tree *ast.Tree, path *ast.ScopePath) error {
	switch p.token.Category {
	case lexer.KEY:
		switch p.token.Value {
		case "declare":
			return p.parseDeclare(tree, path)
		case "set":
			return p.parseSet(tree, path)
		case "while":
			return p.parseWhile(tree, path)
		case "return":
			return p.parseReturn(tree, path)
		}
	case lexer.TXT:
		tree.GetScope(*path).Insert(ast.NewText(p.token.Value))
	case lexer.REF:
		// A bare identifier always becomes a childless Identifier node:
		// call arguments are only ever attached by buildExpression, and
		// buildExpression is never reached from here, so a top-level
		// "name(args)" statement parses as a zero-argument reference —
		// the interpreter calls it with an empty argument vector.
		tree.GetScope(*path).Insert(ast.NewIdentifier(p.token.Value))
	}
	return nil
}

func (p *Parser) parseDeclare(tree *ast.Tree, path *ast.ScopePath) error {
	p.step()
	if p.token.Category != lexer.REF {
		return newParseError("expected REF")
	}
	node := tree.GetScope(*path).Insert(ast.NewDeclare())
	node.Insert(ast.NewIdentifier(p.token.Value))
	p.step()
	if p.token.Value != "as" {
		return nil
	}
	p.step()
	if p.token.Category != lexer.TYP {
		return newParseError("expected TYP")
	}
	typeNode := node.Insert(ast.NewType(p.token.Value))
	if p.hasNext() && p.peek().Value == "[" {
		p.step() // '['
		p.step() // first element-type token, or ']'
		for !p.end && p.token.Value != "]" {
			if p.token.Category == lexer.TYP {
				typeNode.Insert(ast.NewType(p.token.Value))
			}
			p.step()
		}
	}
	return nil
}

func (p *Parser) parseSet(tree *ast.Tree, path *ast.ScopePath) error {
	p.step()
	if p.token.Category != lexer.REF {
		return newParseError("expected REF")
	}
	name := p.token.Value
	scopedNode := tree.GetScope(*path)
	*path = path.Push(len(scopedNode.Nodes))
	node := scopedNode.Insert(ast.NewAssign())
	node.Insert(ast.NewIdentifier(name))
	p.step()
	if p.token.Value != "to" {
		*path = path.Pop()
		return nil
	}
	p.step()
	if p.token.Category == lexer.FUN {
		return p.parseFunctionLiteral(tree, path, node)
	}
	*path = path.Pop()
	return p.buildExpression(node)
}

func (p *Parser) parseFunctionLiteral(tree *ast.Tree, path *ast.ScopePath, node *ast.Node) error {
	if !(p.hasNext() && p.peek().Value == "(") {
		*path = path.Pop()
		return nil
	}
	p.step() // '('

	var params []string
	var paramTypes []ast.Data
	counter := 1
	p.step()
	for !p.end && counter != 0 {
		switch {
		case p.token.Value == "(":
			counter++
		case p.token.Value == ")":
			counter--
		case p.token.Category == lexer.REF:
			params = append(params, p.token.Value)
			p.step()
			if p.token.Value == "as" {
				p.step()
				if p.token.Category != lexer.TYP {
					return newParseError("expected TYP")
				}
				paramTypes = append(paramTypes, ast.NewType(p.token.Value))
			}
		}
		p.step()
	}

	if p.token.Value != "as" {
		return newParseError("expected function return type")
	}
	p.step()
	if p.token.Category != lexer.TYP {
		return newParseError("expected TYP")
	}
	returnType := ast.NewType(p.token.Value)
	p.step()

	*path = path.Push(len(node.Nodes))
	node.Insert(ast.NewFunctionContainer(params, paramTypes, []ast.Data{returnType}))

	counter = 1
	p.step()
	for !p.end && counter != 0 {
		switch {
		case p.token.Value == "{":
			counter++
		case p.token.Value == "}":
			counter--
		default:
			if err := p.buildTree(tree, path); err != nil {
				return err
			}
		}
		p.step()
	}
	p.rewind()
	*path = path.Pop() // descope container
	*path = path.Pop() // descope assign
	return nil
}

func (p *Parser) parseWhile(tree *ast.Tree, path *ast.ScopePath) error {
	p.step()
	scopedNode := tree.GetScope(*path)
	*path = path.Push(len(scopedNode.Nodes))
	node := scopedNode.Insert(ast.NewWhile())
	guard := node.Insert(ast.NewExpression())

	if !p.hasNext() {
		return newParseError("loop is missing a body")
	}
	for !p.end && p.token.Category != lexer.BRC {
		if err := p.buildExpression(guard); err != nil {
			return err
		}
		p.step()
	}
	if p.token.Value != "{" {
		return newParseError("expected opening of loop body")
	}
	counter := 1
	p.step()
	for !p.end && counter != 0 {
		switch {
		case p.token.Value == "{":
			counter++
		case p.token.Value == "}":
			counter--
		default:
			if err := p.buildTree(tree, path); err != nil {
				return err
			}
		}
		p.step()
	}
	p.rewind()
	*path = path.Pop()
	return nil
}

func (p *Parser) parseReturn(tree *ast.Tree, path *ast.ScopePath) error {
	node := tree.GetScope(*path).Insert(ast.NewReturn())
	p.step()
	return p.buildExpression(node)
}

// buildExpression appends one literal or call-expression child to node,
// recursing into call argument lists via the same bracket-balance idiom
// buildTree uses for statement bodies.
func (p *Parser) buildExpression(node *ast.Node) error {
	switch p.token.Category {
	case lexer.WHL:
		v, err := strconv.ParseUint(p.token.Value, 10, 64)
		if err != nil {
			return newParseError("malformed whole literal %q", p.token.Value)
		}
		node.Insert(ast.NewWhole(v))
	case lexer.INT:
		v, err := strconv.ParseInt(p.token.Value, 10, 64)
		if err != nil {
			return newParseError("malformed integer literal %q", p.token.Value)
		}
		node.Insert(ast.NewInteger(v))
	case lexer.FLT:
		v, err := strconv.ParseFloat(p.token.Value, 64)
		if err != nil {
			return newParseError("malformed float literal %q", p.token.Value)
		}
		node.Insert(ast.NewFloat(v))
	case lexer.BLN:
		node.Insert(ast.NewBoolean(p.token.Value == "true"))
	case lexer.TXT:
		node.Insert(ast.NewText(p.token.Value))
	case lexer.REF:
		sub := node.Insert(ast.NewIdentifier(p.token.Value))
		if p.hasNext() && p.peek().Value == "(" {
			p.step() // '('
			counter := 1
			p.step()
			for !p.end && counter != 0 {
				switch {
				case p.token.Value == "(":
					counter++
				case p.token.Value == ")":
					counter--
				default:
					if err := p.buildExpression(sub); err != nil {
						return err
					}
				}
				p.step()
			}
			p.rewind()
		}
	default:
		return newParseError("expected expression but got %s", p.token)
	}
	return nil
}
