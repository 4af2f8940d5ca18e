package maincmd_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/mna/mainer"
	"github.com/stretchr/testify/require"

	"github.com/6elphegor/bf-search/internal/maincmd"
)

func TestRunSearchPrintsHeaderAndFirstSolution(t *testing.T) {
	var out bytes.Buffer
	stdio := mainer.Stdio{
		Stdin:  strings.NewReader("q\n"),
		Stdout: &out,
	}

	err := maincmd.RunSearch(context.Background(), stdio, []byte{0}, maincmd.Config{
		Extra:     8,
		Beta:      1,
		Gamma:     1,
		MaxSteps:  1_000_000,
		DemoSteps: 1_000_000,
	})
	require.NoError(t, err)

	got := out.String()
	require.Contains(t, got, "target length: 1")
	require.Contains(t, got, "Solution #1 found:")
	require.Contains(t, got, "Program (Brainfuck):")
	require.Contains(t, got, "DEC :")
	require.Contains(t, got, "Interpreter steps during demo:")
}

func TestRunSearchQuitStopsAfterOneSolution(t *testing.T) {
	var out bytes.Buffer
	stdio := mainer.Stdio{
		Stdin:  strings.NewReader("q\n\n\n"),
		Stdout: &out,
	}

	err := maincmd.RunSearch(context.Background(), stdio, []byte{0}, maincmd.Config{
		Extra: 4, Beta: 1, Gamma: 1, MaxSteps: 1_000_000, DemoSteps: 1_000_000,
	})
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(out.String(), "Solution #"))
}

func TestRunSearchEmptyLineAdvancesToNextSolution(t *testing.T) {
	var out bytes.Buffer
	stdio := mainer.Stdio{
		Stdin:  strings.NewReader("\nq\n"),
		Stdout: &out,
	}

	err := maincmd.RunSearch(context.Background(), stdio, []byte{0}, maincmd.Config{
		Extra: 4, Beta: 1, Gamma: 1, MaxSteps: 1_000_000, DemoSteps: 1_000_000,
	})
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(out.String(), "Solution #"))
}

func TestRunSearchEOFOnStdinStops(t *testing.T) {
	var out bytes.Buffer
	stdio := mainer.Stdio{
		Stdin:  strings.NewReader(""),
		Stdout: &out,
	}

	err := maincmd.RunSearch(context.Background(), stdio, []byte{0}, maincmd.Config{
		Extra: 4, Beta: 1, Gamma: 1, MaxSteps: 1_000_000, DemoSteps: 1_000_000,
	})
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(out.String(), "Solution #"))
}
