package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer renders a fully-concrete partial program (one with no remaining
// Hole) as Brainfuck source text, the way ast.Printer in the teacher
// compiler renders a Chunk - a Visitor-driven walk over the tree writing
// directly to Output.
type Printer struct {
	// Output is the io.Writer to print to.
	Output io.Writer
}

// Print writes n's program text to p.Output. It returns an error if n
// contains a Hole; callers are expected to have already checked HasHole.
func (p *Printer) Print(n Node) error {
	pp := &printer{w: p.Output}
	Walk(pp, n)
	return pp.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) Visit(n Node, dir VisitDirection) Visitor {
	if p.err != nil {
		return nil
	}
	if dir == VisitExit {
		return nil
	}
	switch n := n.(type) {
	case *Empty:
		return nil
	case *Hole:
		p.err = fmt.Errorf("ast: cannot print partial program containing %v", n)
		return nil
	case *Seq:
		if _, err := io.WriteString(p.w, n.Op.String()); err != nil {
			p.err = err
			return nil
		}
		return p
	case *Loop:
		if _, err := io.WriteString(p.w, "["); err != nil {
			p.err = err
			return nil
		}
		// the closing bracket goes between Body and Tail, so the children
		// are walked here rather than by Walk.
		Walk(p, n.Body)
		if p.err == nil {
			if _, err := io.WriteString(p.w, "]"); err != nil {
				p.err = err
				return nil
			}
			Walk(p, n.Tail)
		}
		return nil
	}
	return nil
}

// Program renders n, which must be fully concrete (HasHole(n) == false), as
// Brainfuck source text. It panics if n contains a Hole, since callers are
// expected to check that invariant before calling - exactly as the search
// driver does before emitting a solution.
func Program(n Node) string {
	var sb strings.Builder
	p := Printer{Output: &sb}
	if err := p.Print(n); err != nil {
		panic(err)
	}
	return sb.String()
}
