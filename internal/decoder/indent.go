package decoder

import "strings"

const indentUnit = "  "

// indentation tracks the block nesting depth of the current region.
type indentation struct {
	depth int
}

func (i *indentation) open() {
	i.depth++
}

// close decrements the depth, unmatched closes are absorbed at 0.
func (i *indentation) close() {
	if i.depth > 0 {
		i.depth--
	}
}

func (i *indentation) reset() {
	i.depth = 0
}

func (i indentation) render() string {
	return strings.Repeat(indentUnit, i.depth)
}
