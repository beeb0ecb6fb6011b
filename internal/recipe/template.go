package recipe

import (
	"fmt"
	"strings"
)

// Substitution replaces a literal placeholder token in a template
type Substitution struct {
	Token string
	Value string
}

// Substitute replaces every occurrence of each token in content.
// Tokens must not be prefixes of each other.
func Substitute(content string, subs []Substitution) string {
	pairs := make([]string, 0, len(subs)*2)
	for _, s := range subs {
		pairs = append(pairs, s.Token, s.Value)
	}
	return strings.NewReplacer(pairs...).Replace(content)
}

// SpliceAfter inserts line directly after the first line equal to anchor
func SpliceAfter(lines []string, anchor, line string) ([]string, error) {
	for i, l := range lines {
		if l == anchor {
			return InsertAt(lines, i+1, line), nil
		}
	}
	return nil, fmt.Errorf("%w: %w: %q", ErrContentFormat, ErrAnchorNotFound, anchor)
}

// InsertAt inserts line at index i. A negative index counts from the end of
// lines and is clamped to the start.
func InsertAt(lines []string, i int, line string) []string {
	if i < 0 {
		i = max(len(lines)+i, 0)
	}
	if i > len(lines) {
		i = len(lines)
	}

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:i]...)
	out = append(out, line)
	return append(out, lines[i:]...)
}
