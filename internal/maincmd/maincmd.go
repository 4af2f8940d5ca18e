// Package maincmd implements the bf-search command line: argument parsing
// (decimal/hex target bytes, numeric flags), the search loop's
// human-readable presentation, and the interactive "press Enter for next
// solution" loop. These are the external collaborators spec.md's §6
// describes as out of scope for the core; this package is where they live,
// built the way the teacher repo (mna/nenuphar) builds its own CLI: a
// mainer.Cmd driven by flag-tagged fields, stdio threaded explicitly for
// testability, and SIGINT cancellation via mainer.CancelOnSignal.
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mna/mainer"
)

const binName = "bf-search"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] [<byte>...]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] [<byte>...]
       %[1]s -h|--help
       %[1]s -V|--version

Searches for a short Brainfuck program whose output begins with the given
target byte sequence, printing successive distinct solutions on request.

Target bytes are given as one or more decimal values 0..255, either as
separate arguments or as comma/whitespace-delimited tokens inside a single
argument, e.g. '%[1]s 0 1 2 3' or '%[1]s "0,1,2,3"'. -x/--hex overrides this
with a hex-encoded target instead.

Valid flag options are:
       -x --hex <hex>            Hex-encoded target bytes (whitespace
                                 allowed between pairs). Must have an even
                                 number of nibbles.
       -e --extra <n>            Extra output bytes to display beyond the
                                 target during the demo run (default 64).
       -b --beta <f>             Score weight for program size (default
                                 1.0, must be positive).
       -g --gamma <f>            Score weight for execution cost (default
                                 1.0, must be positive).
       --max-steps <n>           Per-search-node interpreter step cap
                                 (default 1000000).
       --demo-steps <n>          Per-demo interpreter step cap (default
                                 1000000).
       -h --help                 Show this help and exit.
       -V --version              Print version and exit.

After each solution, press Enter for the next distinct solution, or enter
'q' to quit.

More information on the bf-search repository:
       https://github.com/6elphegor/bf-search
`, binName)
)

// Cmd is the program's mainer entry point: a struct of flag-tagged fields
// populated by mainer.Parser, mirroring the shape of the teacher's own
// maincmd.Cmd (BuildVersion/BuildDate placeholders, Validate then Main).
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"V,version"`

	Hex       string  `flag:"x,hex"`
	Extra     int     `flag:"e,extra"`
	Beta      float64 `flag:"b,beta"`
	Gamma     float64 `flag:"g,gamma"`
	MaxSteps  uint64  `flag:"max-steps"`
	DemoSteps uint64  `flag:"demo-steps"`

	args   []string
	target []byte
}

// NewCmd returns a Cmd with every flag's documented default already set,
// so that mainer.Parser only needs to overwrite the flags the user
// actually supplied.
func NewCmd(version, buildDate string) *Cmd {
	return &Cmd{
		BuildVersion: version,
		BuildDate:    buildDate,
		Extra:        64,
		Beta:         1.0,
		Gamma:        1.0,
		MaxSteps:     1_000_000,
		DemoSteps:    1_000_000,
	}
}

// SetArgs receives the positional arguments left over after flag parsing:
// the target bytes, when -x/--hex is not used.
func (c *Cmd) SetArgs(args []string) { c.args = args }

// Validate parses and range-checks every flag and positional argument,
// producing the resolved target byte sequence. It produces spec.md §7's
// "user-input error" kind, except for flags that fail to parse at all,
// which Main reports from mainer.Parser.
func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}

	var target []byte
	var err error
	if c.Hex != "" {
		target, err = parseHexTarget(c.Hex)
	} else {
		target, err = parseDecimalTarget(c.args)
	}
	if err != nil {
		return err
	}

	if c.Extra < 0 {
		return fmt.Errorf("--extra must be non-negative, got %d", c.Extra)
	}
	if c.Beta <= 0 {
		return fmt.Errorf("--beta must be a positive real, got %g", c.Beta)
	}
	if c.Gamma <= 0 {
		return fmt.Errorf("--gamma must be a positive real, got %g", c.Gamma)
	}
	if c.MaxSteps == 0 {
		return errors.New("--max-steps must be a positive integer")
	}
	if c.DemoSteps == 0 {
		return errors.New("--demo-steps must be a positive integer")
	}

	c.target = target
	return nil
}

func printError(stdio mainer.Stdio, err error) error {
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
	}
	return err
}

// Main runs the command: it parses args, handles -h/-V, and otherwise
// drives the interactive search loop until the user quits or the search
// is exhausted, per spec.md §6-7's exit code contract.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   false,
		EnvPrefix: "BF_SEARCH_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	if err := c.Validate(); err != nil {
		printError(stdio, fmt.Errorf("%w\n%s", err, shortUsage))
		return mainer.InvalidArgs
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := RunSearch(ctx, stdio, c.target, Config{
		Extra:     c.Extra,
		Beta:      c.Beta,
		Gamma:     c.Gamma,
		MaxSteps:  c.MaxSteps,
		DemoSteps: c.DemoSteps,
	}); err != nil {
		printError(stdio, err)
		return mainer.Failure
	}
	return mainer.Success
}
