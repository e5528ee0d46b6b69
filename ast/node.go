/*
File    : kraber/ast/node.go
*/
package ast

// Node is one arena entry: a payload plus its ordered children. Children
// are append-only within a parse pass and a child's ID always equals its
// position at insertion time, so a ScopePath of indices is enough to
// relocate any node without pointer chasing.
type Node struct {
	ID    int
	Data  Data
	Nodes []*Node
}

// Insert appends a new child carrying d to n and returns the new child,
// which is the only place the parser ever writes into the tree.
func (n *Node) Insert(d Data) *Node {
	child := &Node{ID: len(n.Nodes), Data: d}
	n.Nodes = append(n.Nodes, child)
	return child
}

// ScopePath is an ordered sequence of child indices from the tree root,
// locating the node the parser is currently appending into.
type ScopePath []int

// Push returns a new ScopePath with idx appended, leaving the receiver
// untouched — callers hold the path as an explicit local value rather
// than mutating shared state, per the "parser global state" design note.
func (p ScopePath) Push(idx int) ScopePath {
	next := make(ScopePath, len(p)+1)
	copy(next, p)
	next[len(p)] = idx
	return next
}

// Pop returns the ScopePath with its last element removed. Calling Pop on
// an empty path returns an empty path.
func (p ScopePath) Pop() ScopePath {
	if len(p) == 0 {
		return p
	}
	return p[:len(p)-1]
}

// Tree owns the single root Node (Data.Kind == Main) that every parse
// builds into and every interpretation walks.
type Tree struct {
	Root *Node
}

// NewTree creates an empty Tree with a freshly minted Main root.
func NewTree() *Tree {
	return &Tree{Root: &Node{Data: NewMain()}}
}

// GetScope descends path from the root and returns the addressed node.
// The parser uses it to locate the container each new statement is
// appended to; the interpreter does not use it and walks node children
// directly.
func (t *Tree) GetScope(path ScopePath) *Node {
	node := t.Root
	for _, idx := range path {
		node = node.Nodes[idx]
	}
	return node
}
