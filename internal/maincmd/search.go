package maincmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mna/mainer"

	"github.com/6elphegor/bf-search/lang/ast"
	"github.com/6elphegor/bf-search/lang/demo"
	"github.com/6elphegor/bf-search/lang/driver"
)

// Config bundles the driver and demo parameters the CLI exposes as flags.
type Config struct {
	Extra     int
	Beta      float64
	Gamma     float64
	MaxSteps  uint64
	DemoSteps uint64
}

// RunSearch drives the best-first search for target, printing each
// distinct solution as it is found and waiting for the interactive
// protocol's response (empty line: next solution, 'q': quit) between
// them, per spec.md §6.
func RunSearch(ctx context.Context, stdio mainer.Stdio, target []byte, cfg Config) error {
	fmt.Fprintf(stdio.Stdout, "target length: %d\n", len(target))
	fmt.Fprintf(stdio.Stdout, "score = correct - %g*min_len - %g*log2(steps+1)\n", cfg.Beta, cfg.Gamma)

	pool := ast.NewPool()
	d := driver.New(pool, target, driver.Config{
		Beta:     cfg.Beta,
		Gamma:    cfg.Gamma,
		MaxSteps: cfg.MaxSteps,
	})

	in := bufio.NewScanner(stdio.Stdin)

	n := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		sol, ok := d.Next()
		if !ok {
			fmt.Fprintln(stdio.Stdout, "no (further) solution found")
			return nil
		}
		n++

		res := demo.Run(pool, sol.Program, cfg.DemoSteps, len(target)+cfg.Extra)
		printSolution(stdio.Stdout, n, sol, res, len(target)+cfg.Extra)

		fmt.Fprint(stdio.Stdout, "[Enter] next solution, [q] quit: ")
		if !in.Scan() {
			return nil
		}
		line := strings.ToLower(strings.TrimSpace(in.Text()))
		if line == "q" {
			return nil
		}
	}
}

// printSolution formats one solution block exactly as spec.md §6
// prescribes: header, instruction count, program text, a shown-output
// window of at most want bytes, the decimal byte values and the demo's
// step count/halted flag.
func printSolution(w io.Writer, n int, sol *driver.Solution, res demo.Result, want int) {
	fmt.Fprintf(w, "Solution #%d found:\n", n)
	fmt.Fprintf(w, "Program length (inst): %d\n", sol.Len())
	fmt.Fprintln(w, "Program (Brainfuck):")
	fmt.Fprintln(w, sol.Text)

	shown := len(res.Output)
	if shown > want {
		shown = want
	}
	fmt.Fprintf(w, "Output (first %d bytes shown):\n", shown)
	fmt.Fprint(w, "DEC :")
	for _, b := range res.Output[:shown] {
		fmt.Fprintf(w, " %d", b)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Interpreter steps during demo: %d (halted: %t)\n", res.Steps, res.Halted)
}
