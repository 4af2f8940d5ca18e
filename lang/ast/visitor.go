package ast

// VisitDirection indicates whether a call to Visit enters or exits a node.
type VisitDirection int

// The two visit directions.
const (
	VisitEnter VisitDirection = iota
	VisitExit
)

// Visitor defines the method to implement to walk a tree of Nodes with
// Walk. A node's children can be skipped by returning a nil visitor from
// the VisitEnter call.
type Visitor interface {
	Visit(n Node, dir VisitDirection) (w Visitor)
}

// VisitorFunc is a function that implements the Visitor interface.
type VisitorFunc func(n Node, dir VisitDirection) Visitor

// Visit implements the Visitor interface for VisitorFunc.
func (f VisitorFunc) Visit(n Node, dir VisitDirection) Visitor { return f(n, dir) }

// Walk visits node with Visitor v, entering before walking node's children
// (if v.Visit returned a non-nil Visitor for the enter call) and exiting
// once all children have been visited.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node, VisitEnter); v == nil {
		return
	}
	node.Walk(v)
	v.Visit(node, VisitExit)
}

// HasHole reports whether the tree rooted at n contains any Hole node.
// Holes are treated conservatively: a Hole nested in a loop body that
// happens to never run (because the search never proved the loop's entry
// cell is always zero) still counts, since proving that in general is
// undecidable and the search never needs to - it only emits a program once
// every hole in it has been expanded away.
func HasHole(n Node) bool {
	found := false
	var v VisitorFunc
	v = func(n Node, dir VisitDirection) Visitor {
		if found || dir == VisitExit {
			return nil
		}
		if _, ok := n.(*Hole); ok {
			found = true
			return nil
		}
		return v
	}
	Walk(v, n)
	return found
}
