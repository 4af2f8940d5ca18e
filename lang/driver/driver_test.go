package driver_test

import (
	"testing"

	"github.com/6elphegor/bf-search/lang/ast"
	"github.com/6elphegor/bf-search/lang/demo"
	"github.com/6elphegor/bf-search/lang/driver"
	"github.com/stretchr/testify/require"
)

func cfg() driver.Config {
	return driver.Config{Beta: 1, Gamma: 1, MaxSteps: 1_000_000}
}

func TestEmptyTargetSolvesImmediately(t *testing.T) {
	pool := ast.NewPool()
	d := driver.New(pool, nil, cfg())

	sol, ok := d.Next()
	require.True(t, ok)
	require.Equal(t, "", sol.Text)
	require.Equal(t, 0, sol.Len())
}

func TestSingleZeroByteTargetSolvedByDot(t *testing.T) {
	pool := ast.NewPool()
	d := driver.New(pool, []byte{0}, cfg())

	sol, ok := d.Next()
	require.True(t, ok)
	require.Equal(t, ".", sol.Text)
}

func TestFourByteRampTarget(t *testing.T) {
	pool := ast.NewPool()
	target := []byte{0, 1, 2, 3}
	d := driver.New(pool, target, cfg())

	sol, ok := d.Next()
	require.True(t, ok)

	out := demo.Run(pool, sol.Program, 1_000_000, len(target))
	require.GreaterOrEqual(t, len(out.Output), len(target))
	require.Equal(t, target, out.Output[:len(target)])
}

func TestWrapAroundTarget255Then0(t *testing.T) {
	pool := ast.NewPool()
	target := []byte{255, 0}
	d := driver.New(pool, target, cfg())

	sol, ok := d.Next()
	require.True(t, ok)

	out := demo.Run(pool, sol.Program, 1_000_000, len(target))
	require.Equal(t, target, out.Output[:len(target)])
}

func TestSuccessiveSolutionsAreDistinct(t *testing.T) {
	pool := ast.NewPool()
	d := driver.New(pool, []byte{0}, cfg())

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		sol, ok := d.Next()
		require.True(t, ok, "expected a %dth distinct solution", i+1)
		require.False(t, seen[sol.Text], "solution %q repeated", sol.Text)
		seen[sol.Text] = true
	}
}

func TestEverySolutionOutputMatchesTargetPrefix(t *testing.T) {
	pool := ast.NewPool()
	target := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	d := driver.New(pool, target, driver.Config{Beta: 1, Gamma: 1, MaxSteps: 5_000_000})

	sol, ok := d.Next()
	require.True(t, ok)

	out := demo.Run(pool, sol.Program, 5_000_000, len(target))
	require.GreaterOrEqual(t, len(out.Output), len(target))
	require.Equal(t, target, out.Output[:len(target)])
}

func TestExhaustedFrontierReportsFalse(t *testing.T) {
	pool := ast.NewPool()
	// A tiny step cap starves every node before it can ever reach a
	// one-byte target, so the frontier eventually runs dry.
	d := driver.New(pool, []byte{0}, driver.Config{Beta: 1, Gamma: 1, MaxSteps: 0})

	_, ok := d.Next()
	require.False(t, ok)
}
