// Package interp drives a single partial-program AST node forward one
// decision at a time. A State is owned by exactly one search-frontier entry
// at a time; Advance never mutates the State it is given, it only ever
// returns a new one, so a State popped off the frontier and discarded after
// branching leaves every sibling it produced fully independent.
package interp

import (
	"github.com/6elphegor/bf-search/lang/ast"
	"github.com/6elphegor/bf-search/lang/tape"
)

// frame records one step taken while descending from the root towards cur:
// either "this ancestor is a *ast.Seq, and we followed its Tail" or "this
// ancestor is a *ast.Loop, and we followed its Body (viaBody) or its Tail".
// The path of frames from the root to cur is what lets Substitute rebuild
// exactly that path - and nothing else - when a Hole is expanded.
type frame struct {
	seq     *ast.Seq
	loop    *ast.Loop
	viaBody bool
}

// loopEntry is one entry of the loop-return stack: the currently-open Loop
// together with the index into path of that Loop's own frame, so that
// closing or re-entering the loop can truncate path back to exactly that
// depth in O(1).
type loopEntry struct {
	loop    *ast.Loop
	pathIdx int
}

// State is everything needed to resume execution of one search node:
// instruction cursor, data pointer, tape, output so far, and step count. It
// also carries the ancestor path back to the root (needed only when the
// cursor is sitting on a Hole and must be expanded) and the loop-return
// stack (needed only to interpret ']').
type State struct {
	pool *ast.Pool
	root ast.Node
	cur  ast.Node

	path      []frame
	loopStack []loopEntry

	dp     int
	tp     *tape.Tape
	output []byte
	steps  uint64
	minLen int
}

// New returns the initial state for root, freshly constructed from pool.
func New(pool *ast.Pool, root ast.Node) *State {
	return &State{
		pool:   pool,
		root:   root,
		cur:    root,
		tp:     tape.New(),
		minLen: root.MinLen(),
	}
}

// Root returns the root of the partial program this state is executing.
func (s *State) Root() ast.Node { return s.root }

// MinLen returns the cached minimum length of Root.
func (s *State) MinLen() int { return s.minLen }

// Output returns the bytes emitted so far.
func (s *State) Output() []byte { return s.output }

// Steps returns the number of interpreter steps consumed so far.
func (s *State) Steps() uint64 { return s.steps }

// DataPointer returns the current data pointer.
func (s *State) DataPointer() int { return s.dp }

// Tape returns the current tape.
func (s *State) Tape() *tape.Tape { return s.tp }

// shallowClone copies every scalar field; slice fields are left pointing at
// the parent's backing arrays until the caller overwrites them via the
// append* helpers below, which always force a fresh backing array so
// siblings branching from the same parent never alias.
func (s *State) shallowClone() *State {
	c := *s
	return &c
}

func appendFrame(fs []frame, f frame) []frame {
	return append(fs[:len(fs):len(fs)], f)
}

func appendLoopEntry(es []loopEntry, e loopEntry) []loopEntry {
	return append(es[:len(es):len(es)], e)
}

func appendByte(bs []byte, b byte) []byte {
	return append(bs[:len(bs):len(bs)], b)
}

// Substitute replaces the Hole currently under the cursor with newLeaf,
// rebuilding every ancestor on the path from the root down to that Hole -
// and only that path - via pool, then returns the resulting State with the
// cursor positioned on newLeaf. It is a programming error to call Substitute
// when the cursor is not on a Hole; the Expander is the only caller.
func (s *State) Substitute(newLeaf ast.Node) *State {
	newRoot, newPath, newLoopStack := rebuild(s.pool, s.path, s.loopStack, newLeaf)

	c := s.shallowClone()
	c.root = newRoot
	c.cur = newLeaf
	c.path = newPath
	c.loopStack = newLoopStack
	c.minLen = newRoot.MinLen()
	return c
}

// rebuild reconstructs path[0:] bottom-up with newLeaf substituted in place
// of whatever used to be at the end of path, returning the new root and the
// path/loop-stack updated to reference the freshly built ancestors.
func rebuild(pool *ast.Pool, path []frame, loopStack []loopEntry, newLeaf ast.Node) (ast.Node, []frame, []loopEntry) {
	child := newLeaf
	newPath := make([]frame, len(path))
	rebuilt := make(map[ast.Node]ast.Node, len(path))

	for i := len(path) - 1; i >= 0; i-- {
		f := path[i]
		switch {
		case f.seq != nil:
			nn := pool.Seq(f.seq.Op, child)
			rebuilt[f.seq] = nn
			newPath[i] = frame{seq: nn}
			child = nn
		case f.loop != nil:
			var nn *ast.Loop
			if f.viaBody {
				nn = pool.Loop(child, f.loop.Tail)
			} else {
				nn = pool.Loop(f.loop.Body, child)
			}
			rebuilt[f.loop] = nn
			newPath[i] = frame{loop: nn, viaBody: f.viaBody}
			child = nn
		}
	}

	newLoopStack := make([]loopEntry, len(loopStack))
	for i, e := range loopStack {
		l := e.loop
		if nn, ok := rebuilt[e.loop]; ok {
			l = nn.(*ast.Loop)
		}
		newLoopStack[i] = loopEntry{loop: l, pathIdx: e.pathIdx}
	}

	return child, newPath, newLoopStack
}
