// Package demo implements the result demo: re-running a fully concrete
// program, with no expansion machinery involved, to produce a demonstrably
// extrapolated output. It reuses lang/interp's Advance directly - a
// concrete program's cursor never lands on a Hole, so NeedsExpansion can
// never occur here.
package demo

import (
	"github.com/6elphegor/bf-search/lang/ast"
	"github.com/6elphegor/bf-search/lang/interp"
)

// Result is the outcome of running a concrete program to demonstrate its
// output.
type Result struct {
	Output []byte
	Steps  uint64
	Halted bool
}

// Run executes program (which must satisfy ast.HasHole(program) == false)
// until it has produced at least minOutputLen bytes, halts on its own, or
// exceeds stepCap, whichever happens first.
func Run(pool *ast.Pool, program ast.Node, stepCap uint64, minOutputLen int) Result {
	s := interp.New(pool, program)
	for {
		switch o := interp.Advance(s, stepCap).(type) {
		case interp.NeedsExpansion:
			panic("demo: Run called on a partial program containing a hole")
		case interp.Stepped:
			s = o.Next
		case interp.Emitted:
			s = o.Next
			if len(s.Output()) >= minOutputLen {
				return Result{Output: s.Output(), Steps: s.Steps(), Halted: false}
			}
		case interp.Halted:
			return Result{Output: s.Output(), Steps: s.Steps(), Halted: true}
		case interp.Diverged:
			return Result{Output: s.Output(), Steps: s.Steps(), Halted: false}
		case interp.Pruned:
			// Only the ',' instruction can prune, and the Expander never
			// produces it - a concrete program reaching here is a caller bug,
			// not a demo-time divergence, but the demo still has to return
			// something rather than panic on untrusted-but-concrete input.
			return Result{Output: s.Output(), Steps: s.Steps(), Halted: false}
		}
	}
}
