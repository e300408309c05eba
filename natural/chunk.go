// SPDX-License-Identifier: MIT

package natural

import (
	"math/big"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

var chunkPattern = regexp.MustCompile(`[^0-9]+|[0-9]+(?:[.,][0-9]+)?(?:E-?[0-9]+)?`)

// chunk is either a textChunk or a numberChunk.
type chunk interface {
	text() string
}

type textChunk struct {
	trimmed string
	folded  string
}

func (c textChunk) text() string { return c.trimmed }

type numberChunk struct {
	raw   string
	value *big.Rat
}

func (c numberChunk) text() string { return c.raw }

// split cuts s into alternating text and number chunks.
func split(s string) []chunk {
	parts := chunkPattern.FindAllString(s, -1)
	out := make([]chunk, 0, len(parts))
	fold := cases.Fold()
	for _, p := range parts {
		if p[0] >= '0' && p[0] <= '9' {
			if v, ok := new(big.Rat).SetString(strings.Replace(p, ",", ".", 1)); ok {
				out = append(out, numberChunk{raw: p, value: v})
				continue
			}
		}
		trimmed := strings.TrimSpace(p)
		out = append(out, textChunk{trimmed: trimmed, folded: fold.String(trimmed)})
	}
	return out
}

// compareChunks returns the sign of a - b.
func compareChunks(a, b chunk) int {
	switch x := a.(type) {
	case textChunk:
		if y, ok := b.(textChunk); ok {
			return strings.Compare(x.folded, y.folded)
		}
	case numberChunk:
		if y, ok := b.(numberChunk); ok {
			return x.value.Cmp(y.value)
		}
	}
	return strings.Compare(a.text(), b.text())
}
