package maincmd

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// parseDecimalTarget parses the positional target-byte arguments: decimal
// values 0..255, given either as separate arguments or as comma/whitespace
// delimited tokens inside a single argument, per spec.md §6.
func parseDecimalTarget(args []string) ([]byte, error) {
	var toks []string
	for _, a := range args {
		toks = append(toks, splitByteTokens(a)...)
	}

	out := make([]byte, 0, len(toks))
	for _, tok := range toks {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("invalid decimal target byte %q: %w", tok, err)
		}
		if n < 0 || n > 255 {
			return nil, fmt.Errorf("decimal target byte %d out of range 0..255", n)
		}
		out = append(out, byte(n))
	}
	return out, nil
}

func splitByteTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// parseHexTarget parses the -x/--hex target: a hex string with optional
// whitespace between byte pairs, required to have an even nibble count.
func parseHexTarget(s string) ([]byte, error) {
	clean := strings.Join(strings.Fields(s), "")
	if len(clean)%2 != 0 {
		return nil, fmt.Errorf("hex target %q has an odd number of nibbles", s)
	}
	b, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("invalid hex target %q: %w", s, err)
	}
	return b, nil
}
