// Package ast defines the partial-program AST searched by the driver: a
// tree of shared, immutable nodes that may contain unexpanded Hole
// positions. Every node is assigned a stable identity at construction by a
// Pool, so that two references to the same node are guaranteed to decompose
// identically, and so that a Loop can be recognized across re-entries
// without relying on any index into a flattened instruction stream.
package ast

import "fmt"

// ID is the stable identity assigned to a node when it is constructed. IDs
// are unique within a Pool and never reused.
type ID uint64

// Node is any node of the partial-program tree: *Empty, *Hole, *Seq or *Loop.
type Node interface {
	fmt.Formatter

	// ID returns the node's stable identity.
	ID() ID

	// MinLen returns the minimum length (in concrete instructions) any
	// instantiation of this node could have. It is computed once, at
	// construction, and cached.
	MinLen() int

	// Walk visits the node's children, if any, with v.
	Walk(v Visitor)
}

func format(f fmt.State, verb rune, n Node, label string) {
	if verb != 'v' && verb != 's' {
		fmt.Fprintf(f, "%%!%c(%T)", verb, n)
		return
	}
	fmt.Fprintf(f, "%s#%d", label, n.ID())
}
