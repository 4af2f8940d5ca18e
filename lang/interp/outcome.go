package interp

// Outcome is the result of one call to Advance.
type Outcome interface{ outcome() }

// NeedsExpansion means the cursor reached a Hole; the caller (the search
// driver, via the Expander) must produce one successor State per candidate
// expansion by calling State.Substitute on the state that produced this
// outcome.
type NeedsExpansion struct{}

// Emitted means one output byte was produced and Next has moved past the
// '.' instruction. The driver, not the interpreter, is responsible for
// comparing Byte against the search target.
type Emitted struct {
	Byte byte
	Next *State
}

// Stepped means one non-output instruction executed; Next reflects it.
type Stepped struct{ Next *State }

// Halted means the program reached Empty at the outermost level (no open
// loop to return to). No further progress is possible from the state that
// produced this outcome.
type Halted struct{}

// Diverged means the per-call step cap was exceeded.
type Diverged struct{}

// Pruned means an unsupported instruction was selected (the ',' opcode) or
// some other structural dead end was reached.
type Pruned struct{ Reason string }

func (NeedsExpansion) outcome() {}
func (Emitted) outcome()        {}
func (Stepped) outcome()        {}
func (Halted) outcome()         {}
func (Diverged) outcome()       {}
func (Pruned) outcome()         {}
