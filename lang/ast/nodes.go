package ast

import "fmt"

// Instr is one of the five supported non-loop Brainfuck opcodes, plus the read-a-byte
// opcode which is representable for completeness of the grammar but never
// produced by the Expander: any search branch that selects it is pruned
// immediately by the interpreter.
type Instr byte

// The supported instructions. '[' and ']' are not members of Instr: a loop
// is its own node variant (Loop), not a Seq carrying one of these opcodes.
const (
	Right  Instr = '>'
	Left   Instr = '<'
	Inc    Instr = '+'
	Dec    Instr = '-'
	Output Instr = '.'
	Input  Instr = ',' // unsupported; always pruned
)

func (op Instr) String() string { return string(rune(op)) }

// Empty is the terminated sequence: length 0, no children.
type Empty struct{ id ID }

func (n *Empty) ID() ID      { return n.id }
func (n *Empty) MinLen() int { return 0 }
func (n *Empty) Walk(Visitor) {}
func (n *Empty) Format(f fmt.State, verb rune) { format(f, verb, n, "empty") }

// Hole is an unexpanded partial program; it contributes 0 to MinLen and
// stands for any instantiation the Expander can produce in its place.
type Hole struct{ id ID }

func (n *Hole) ID() ID      { return n.id }
func (n *Hole) MinLen() int { return 0 }
func (n *Hole) Walk(Visitor) {}
func (n *Hole) Format(f fmt.State, verb rune) { format(f, verb, n, "hole") }

// Seq is a concrete opcode followed by a tail partial program. Op is never
// Input in a tree produced by the Expander, but the field admits it so that
// the grammar stays total.
type Seq struct {
	id     ID
	Op     Instr
	Tail   Node
	minLen int
}

func (n *Seq) ID() ID      { return n.id }
func (n *Seq) MinLen() int { return n.minLen }
func (n *Seq) Walk(v Visitor) { Walk(v, n.Tail) }
func (n *Seq) Format(f fmt.State, verb rune) { format(f, verb, n, "seq "+n.Op.String()) }

// Loop is a concrete "[body]" followed by a tail partial program. The
// identity of the Loop node itself (ID) is what the interpreter records on
// its loop-return stack when it descends into Body, so that "]" can jump
// back to Body without any index into a flattened instruction stream.
type Loop struct {
	id     ID
	Body   Node
	Tail   Node
	minLen int
}

func (n *Loop) ID() ID      { return n.id }
func (n *Loop) MinLen() int { return n.minLen }
func (n *Loop) Walk(v Visitor) {
	Walk(v, n.Body)
	Walk(v, n.Tail)
}
func (n *Loop) Format(f fmt.State, verb rune) { format(f, verb, n, "loop") }
