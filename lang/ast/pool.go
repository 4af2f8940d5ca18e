package ast

import "sync/atomic"

// Pool assigns each newly constructed node a stable identity, unique within
// the Pool. Nodes are never mutated once constructed; sharing is achieved
// entirely by handing out the same *Seq/*Loop pointer to multiple parents,
// which the Pool itself never needs to know about - callers (the Expander
// and the interpreter's rebuild step) are the ones that reuse pointers.
type Pool struct {
	nextID atomic.Uint64
}

// NewPool returns a new, empty node pool. One Pool is shared for the
// lifetime of a single search.
func NewPool() *Pool {
	p := &Pool{}
	return p
}

func (p *Pool) id() ID { return ID(p.nextID.Add(1)) }

// sharedEmpty is the canonical Empty instance. Sharing it across every
// caller is an optimization, not a correctness requirement: Empty carries
// no data, so any number of distinct *Empty values would behave identically.
var sharedEmpty = &Empty{id: 0}

// Empty returns the canonical terminated-sequence node.
func (p *Pool) Empty() Node { return sharedEmpty }

// Hole returns a freshly identified, unexpanded node.
func (p *Pool) Hole() Node { return &Hole{id: p.id()} }

// Seq returns a node for the concrete instruction op followed by tail.
func (p *Pool) Seq(op Instr, tail Node) *Seq {
	return &Seq{id: p.id(), Op: op, Tail: tail, minLen: 1 + tail.MinLen()}
}

// Loop returns a node for "[body]" followed by tail.
func (p *Pool) Loop(body, tail Node) *Loop {
	return &Loop{id: p.id(), Body: body, Tail: tail, minLen: 2 + body.MinLen() + tail.MinLen()}
}
