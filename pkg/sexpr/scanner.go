// Package sexpr extracts balanced parenthesized blocks from s-expression
// text. It is not a general s-expression parser: it only recognizes blocks
// that begin with a fixed literal start token and runs a depth counter to
// their matching close paren, treating the block body as opaque text.
package sexpr

import (
	"iter"
	"strings"
)

// Scanner extracts balanced blocks that begin with Token. The zero value
// with a non-empty Token is ready to use; a Scanner holds no state between
// scans, so the same Scanner may be reused across inputs.
type Scanner struct {
	// Token is the literal character sequence that opens a block,
	// including its leading paren (e.g. "(symbol ").
	Token string
}

// scan states. Token matching only happens while scanning; once inside a
// block only paren depth matters, so a textual occurrence of the token
// within a block's own content never starts a nested extraction.
const (
	stateScanning = iota
	stateInBlock
)

// Blocks returns a lazy sequence of extracted blocks in input order. Each
// block reproduces its source span verbatim, from the first character of
// the start token to the depth-balancing close paren, followed by one
// newline. The sequence is restartable: ranging over it twice yields the
// same blocks both times.
//
// A block whose parens never rebalance before the end of input is dropped.
// Malformed or non-UTF-8 input degrades to fewer (or zero) matches; Blocks
// cannot fail.
func (s Scanner) Blocks(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		var (
			state = stateScanning
			depth int
			buf   strings.Builder
		)
		for i := 0; i < len(text); {
			if state == stateScanning {
				if strings.HasPrefix(text[i:], s.Token) {
					state = stateInBlock
					depth = 1
					buf.WriteString(s.Token)
					i += len(s.Token)
					continue
				}
				i++
				continue
			}

			c := text[i]
			buf.WriteByte(c)
			switch c {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					buf.WriteByte('\n')
					if !yield(buf.String()) {
						return
					}
					buf.Reset()
					state = stateScanning
				}
			}
			i++
		}
		// Still in a block here means an unterminated trailing block:
		// depth never returned to zero, so the accumulated text is
		// discarded rather than emitted.
	}
}

// Extract collects every block from text into a slice. It is a convenience
// wrapper around Blocks for callers that do not need lazy iteration.
func (s Scanner) Extract(text string) []string {
	var blocks []string
	for block := range s.Blocks(text) {
		blocks = append(blocks, block)
	}
	return blocks
}
