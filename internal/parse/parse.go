// Package parse turns free-text variable assignments like
// "Q=100, W=40" into a variable store. It is plumbing for the CLI, TUI
// and HTTP layers; the dispatch core never parses text itself.
package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/physica/internal/vars"
)

// Assignments parses a comma- or semicolon-separated list of
// symbol=value pairs. Symbols keep their exact spelling (including
// unicode like "ΔU"); values are parsed as floats.
func Assignments(input string) (*vars.Store, error) {
	store := vars.New()
	tokens := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ';'
	})

	count := 0
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		sym, raw, found := strings.Cut(token, "=")
		if !found {
			return nil, fmt.Errorf("parse: %q is not a symbol=value assignment", token)
		}
		sym = strings.TrimSpace(sym)
		raw = strings.TrimSpace(raw)
		if sym == "" {
			return nil, fmt.Errorf("parse: assignment %q has no symbol", token)
		}
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("parse: %s: %q is not a number", sym, raw)
		}
		if err := store.Set(sym, val); err != nil {
			return nil, err
		}
		count++
	}
	if count == 0 {
		return nil, fmt.Errorf("parse: no assignments in %q", input)
	}
	return store, nil
}
