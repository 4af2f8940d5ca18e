package ast_test

import (
	"testing"

	"github.com/6elphegor/bf-search/lang/ast"
	"github.com/stretchr/testify/require"
)

func TestMinLenStructural(t *testing.T) {
	p := ast.NewPool()

	require.Equal(t, 0, p.Empty().MinLen())
	require.Equal(t, 0, p.Hole().MinLen())

	seq := p.Seq(ast.Output, p.Empty())
	require.Equal(t, 1, seq.MinLen())

	loop := p.Loop(p.Hole(), p.Empty())
	require.Equal(t, 2, loop.MinLen())

	nested := p.Seq(ast.Inc, p.Loop(p.Seq(ast.Dec, p.Hole()), p.Hole()))
	require.Equal(t, 1+2+1, nested.MinLen())
}

func TestEmptyIsSharedCanonicalInstance(t *testing.T) {
	p := ast.NewPool()
	require.Same(t, p.Empty(), p.Empty())
}

func TestEveryNodeHasAUniqueID(t *testing.T) {
	p := ast.NewPool()
	a := p.Hole()
	b := p.Hole()
	require.NotEqual(t, a.ID(), b.ID())
}

func TestHasHole(t *testing.T) {
	p := ast.NewPool()
	require.False(t, ast.HasHole(p.Empty()))
	require.True(t, ast.HasHole(p.Hole()))

	concrete := p.Seq(ast.Output, p.Seq(ast.Inc, p.Empty()))
	require.False(t, ast.HasHole(concrete))

	withHoleInLoopBody := p.Loop(p.Hole(), p.Empty())
	require.True(t, ast.HasHole(withHoleInLoopBody))
}

func TestProgramRendersConcreteTree(t *testing.T) {
	p := ast.NewPool()
	prog := p.Seq(ast.Output, p.Loop(p.Seq(ast.Dec, p.Empty()), p.Empty()))
	require.Equal(t, ".[-]", ast.Program(prog))
}

func TestProgramPanicsOnHole(t *testing.T) {
	p := ast.NewPool()
	require.Panics(t, func() {
		ast.Program(p.Seq(ast.Output, p.Hole()))
	})
}

func TestSubtreeSharingAcrossParents(t *testing.T) {
	p := ast.NewPool()
	shared := p.Seq(ast.Inc, p.Empty())

	left := p.Seq(ast.Right, shared)
	right := p.Seq(ast.Left, shared)

	require.Same(t, left.Tail, right.Tail)
}
