package demo_test

import (
	"testing"

	"github.com/6elphegor/bf-search/lang/ast"
	"github.com/6elphegor/bf-search/lang/demo"
	"github.com/stretchr/testify/require"
)

func TestRunHaltsAndReturnsOutput(t *testing.T) {
	p := ast.NewPool()
	prog := p.Seq(ast.Inc, p.Seq(ast.Output, p.Empty()))

	res := demo.Run(p, prog, 1000, 1)
	require.True(t, res.Halted)
	require.Equal(t, []byte{1}, res.Output)
}

func TestRunStopsAtMinOutputLenBeforeHalting(t *testing.T) {
	p := ast.NewPool()
	// a loop that emits the cell (always 1) forever
	prog := p.Seq(ast.Inc, p.Loop(p.Seq(ast.Output, p.Empty()), p.Empty()))
	// body never decrements, so this never halts on its own within any
	// reasonable cap; Run should still stop once it has 5 bytes.
	res := demo.Run(p, prog, 1_000_000, 5)
	require.Len(t, res.Output, 5)
	require.False(t, res.Halted)
}

func TestRunDivergesUnderStepCap(t *testing.T) {
	p := ast.NewPool()
	prog := p.Seq(ast.Inc, p.Loop(p.Empty(), p.Empty())) // infinite loop, no output
	res := demo.Run(p, prog, 10, 1)
	require.False(t, res.Halted)
}

func TestRunIsDeterministicAcrossCalls(t *testing.T) {
	p := ast.NewPool()
	prog := p.Seq(ast.Inc, p.Seq(ast.Inc, p.Seq(ast.Output, p.Empty())))

	a := demo.Run(p, prog, 1000, 1)
	b := demo.Run(p, prog, 1000, 1)
	require.Equal(t, a.Output, b.Output)
	require.Equal(t, a.Steps, b.Steps)
	require.Equal(t, a.Halted, b.Halted)
}
