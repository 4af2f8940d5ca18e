package interp

import "github.com/6elphegor/bf-search/lang/ast"

// Advance drives s forward by exactly one decision: one opcode, one loop
// entry/exit check, or a Hole needing expansion. maxSteps bounds the total
// number of opcodes this state (and its whole ancestry back to the root of
// the search) may have executed; exceeding it yields Diverged instead of
// advancing.
func Advance(s *State, maxSteps uint64) Outcome {
	switch n := s.cur.(type) {
	case *ast.Hole:
		return NeedsExpansion{}

	case *ast.Empty:
		if len(s.loopStack) == 0 {
			return Halted{}
		}
		if s.steps+1 > maxSteps {
			return Diverged{}
		}
		return advanceLoopClose(s)

	case *ast.Seq:
		if n.Op == ast.Input {
			return Pruned{Reason: "input instruction is unsupported"}
		}
		if s.steps+1 > maxSteps {
			return Diverged{}
		}
		return advanceSeq(s, n)

	case *ast.Loop:
		if s.steps+1 > maxSteps {
			return Diverged{}
		}
		return advanceLoopEnter(s, n)
	}
	panic("interp: unreachable node kind")
}

func advanceSeq(s *State, n *ast.Seq) Outcome {
	next := s.shallowClone()
	next.steps = s.steps + 1
	next.path = appendFrame(s.path, frame{seq: n})
	next.cur = n.Tail

	switch n.Op {
	case ast.Right:
		next.dp = s.dp + 1
		return Stepped{Next: next}
	case ast.Left:
		next.dp = s.dp - 1
		return Stepped{Next: next}
	case ast.Inc:
		next.tp = s.tp.Set(s.dp, s.tp.Get(s.dp)+1)
		return Stepped{Next: next}
	case ast.Dec:
		next.tp = s.tp.Set(s.dp, s.tp.Get(s.dp)-1)
		return Stepped{Next: next}
	case ast.Output:
		b := s.tp.Get(s.dp)
		next.output = appendByte(s.output, b)
		return Emitted{Byte: b, Next: next}
	}
	panic("interp: unreachable instruction")
}

func advanceLoopEnter(s *State, n *ast.Loop) Outcome {
	next := s.shallowClone()
	next.steps = s.steps + 1

	if s.tp.Get(s.dp) != 0 {
		idx := len(s.path)
		next.path = appendFrame(s.path, frame{loop: n, viaBody: true})
		next.loopStack = appendLoopEntry(s.loopStack, loopEntry{loop: n, pathIdx: idx})
		next.cur = n.Body
	} else {
		next.path = appendFrame(s.path, frame{loop: n, viaBody: false})
		next.cur = n.Tail
	}
	return Stepped{Next: next}
}

func advanceLoopClose(s *State) Outcome {
	top := s.loopStack[len(s.loopStack)-1]

	next := s.shallowClone()
	next.steps = s.steps + 1

	if s.tp.Get(s.dp) != 0 {
		next.path = s.path[:top.pathIdx+1]
		next.cur = top.loop.Body
		// loopStack is unchanged: the loop is still open.
	} else {
		next.path = appendFrame(s.path[:top.pathIdx], frame{loop: top.loop, viaBody: false})
		next.loopStack = s.loopStack[:len(s.loopStack)-1]
		next.cur = top.loop.Tail
	}
	return Stepped{Next: next}
}
