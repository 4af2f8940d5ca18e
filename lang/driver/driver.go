// Package driver implements the search driver (spec §4.F): the outer loop
// that repeatedly pops the highest-scored node from the frontier, advances
// it by one interpreter decision, and either expands it, re-scores and
// re-pushes it, or retires it as a prune or a solution. It is the one
// package that ties ast, tape, interp, expand and frontier together into a
// single best-first search over partial Brainfuck programs.
package driver

import (
	"github.com/6elphegor/bf-search/lang/ast"
	"github.com/6elphegor/bf-search/lang/expand"
	"github.com/6elphegor/bf-search/lang/frontier"
	"github.com/6elphegor/bf-search/lang/interp"
	"github.com/dolthub/swiss"
)

// Config holds the score weights and per-node step cap, all supplied by
// the CLI layer (see internal/maincmd).
type Config struct {
	// Beta is the score's program-size weight; must be strictly positive.
	Beta float64
	// Gamma is the score's execution-cost weight; must be strictly positive.
	Gamma float64
	// MaxSteps bounds how many interpreter steps a single search node (and
	// its whole ancestry back to the root) may consume before Advance
	// reports Diverged.
	MaxSteps uint64
}

// Solution is one fully-concrete program whose demonstrated output begins
// with the search target, as required by spec.md's glossary definition of
// "Solution".
type Solution struct {
	// Program is the solution's AST root. It is guaranteed hole-free.
	Program ast.Node
	// Text is Program rendered as Brainfuck source, also used as the
	// canonical form for distinct-solution deduplication.
	Text string
}

// Len returns the solution's length in concrete instructions: every
// character of Text is exactly one opcode, including '[' and ']'.
func (s *Solution) Len() int { return len(s.Text) }

// Driver runs the best-first search. One Driver owns one frontier and one
// node pool for the lifetime of a search; Next may be called repeatedly to
// pull successive, structurally distinct solutions in non-increasing score
// order, exactly as spec.md's interactive protocol (§6) requires.
type Driver struct {
	pool   *ast.Pool
	target []byte
	cfg    Config
	q      *frontier.Queue

	// seen holds the canonical text of every solution already emitted, so
	// that a structurally-equal program is never surfaced twice (§4.F,
	// "distinct-solution requirement"). A hash set is all this needs -
	// the same thin-wrapper-over-swiss.Map shape the teacher uses for
	// machine.Map, just keyed on the program text instead of a Value.
	seen *swiss.Map[string, struct{}]
}

// New returns a Driver seeded with a single root search node: the whole
// program is an unexpanded Hole.
func New(pool *ast.Pool, target []byte, cfg Config) *Driver {
	d := &Driver{
		pool:   pool,
		target: target,
		cfg:    cfg,
		q:      frontier.New(),
		seen:   swiss.NewMap[string, struct{}](16),
	}
	d.push(interp.New(pool, pool.Hole()))
	return d
}

// Len reports how many nodes currently sit in the frontier.
func (d *Driver) Len() int { return d.q.Len() }

func (d *Driver) push(s *interp.State) {
	correct := len(s.Output())
	score := frontier.Score(correct, s.MinLen(), s.Steps(), d.cfg.Beta, d.cfg.Gamma)
	d.q.Push(&frontier.Node{
		State:  s,
		Score:  score,
		MinLen: s.MinLen(),
		Steps:  s.Steps(),
	})
}

// emit records root's canonical text as seen and returns a Solution, or
// reports false if an identical program was already emitted earlier in
// this search.
func (d *Driver) emit(root ast.Node) (*Solution, bool) {
	text := ast.Program(root)
	if _, dup := d.seen.Get(text); dup {
		return nil, false
	}
	d.seen.Put(text, struct{}{})
	return &Solution{Program: root, Text: text}, true
}

// Next pops and advances frontier nodes, per spec §4.F's dispatch table,
// until it either produces a new, distinct Solution (ok == true) or
// exhausts the frontier (ok == false, meaning "no further solution
// found"). It may be called again after a true result to keep searching
// the same frontier for the next solution.
func (d *Driver) Next() (sol *Solution, ok bool) {
	for {
		n, more := d.q.Pop()
		if !more {
			return nil, false
		}
		s := n.State

		switch o := interp.Advance(s, d.cfg.MaxSteps).(type) {
		case interp.NeedsExpansion:
			for _, child := range expand.Children(d.pool, s) {
				d.push(child)
			}

		case interp.Emitted:
			pos := len(s.Output())
			if pos < len(d.target) && o.Byte != d.target[pos] {
				continue // mismatch: prune
			}
			if len(o.Next.Output()) >= len(d.target) && !ast.HasHole(o.Next.Root()) {
				if sol, ok := d.emit(o.Next.Root()); ok {
					return sol, true
				}
				continue // duplicate of an earlier solution: prune
			}
			d.push(o.Next)

		case interp.Stepped:
			d.push(o.Next)

		case interp.Halted:
			if len(s.Output()) != len(d.target) || ast.HasHole(s.Root()) {
				continue // premature halt, or a reachable hole elsewhere: prune
			}
			if sol, ok := d.emit(s.Root()); ok {
				return sol, true
			}

		case interp.Diverged, interp.Pruned:
			// per-node step cap exceeded, or an unsupported instruction was
			// selected; either way the node is simply dropped.
		}
	}
}
