// Package expand implements the Expander: given a search state whose
// cursor sits on a Hole, it produces one successor State per candidate
// replacement.
package expand

import (
	"github.com/6elphegor/bf-search/lang/ast"
	"github.com/6elphegor/bf-search/lang/interp"
)

// Children returns the fixed, order-independent set of candidate expansions
// for the Hole under s's cursor, enumerated in a fixed order (Empty, then
// each concrete op in >, <, +, -, ., then Loop) so that tie-breaking in the
// search frontier is reproducible. The ',' instruction is deliberately
// omitted: any branch that selected it would be pruned immediately by the
// interpreter, so the Expander never wastes a frontier slot on it.
//
// Because AST nodes are shared, Substitute only rebuilds the path from the
// root down to the Hole; every sibling subtree not on that path, including
// the seven fresh Hole children created here, is otherwise untouched.
func Children(pool *ast.Pool, s *interp.State) []*interp.State {
	candidates := []ast.Node{
		pool.Empty(),
		pool.Seq(ast.Right, pool.Hole()),
		pool.Seq(ast.Left, pool.Hole()),
		pool.Seq(ast.Inc, pool.Hole()),
		pool.Seq(ast.Dec, pool.Hole()),
		pool.Seq(ast.Output, pool.Hole()),
		pool.Loop(pool.Hole(), pool.Hole()),
	}

	children := make([]*interp.State, len(candidates))
	for i, c := range candidates {
		children[i] = s.Substitute(c)
	}
	return children
}
