package calcsheet

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Text renders the derivation as a plain-text calculation sheet. Each
// step prints its expression, substitution and value on aligned
// continuation lines under the symbol.
func (d Derivation) Text() string {
	var sb strings.Builder

	for bi, block := range d {
		if bi > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(block.Title + "\n")
		sb.WriteString(strings.Repeat("─", utf8.RuneCountInString(block.Title)) + "\n")

		for _, step := range block.Steps {
			fmt.Fprintf(&sb, "  %s = %s\n", step.Symbol, step.Expression)

			indent := strings.Repeat(" ", 2+utf8.RuneCountInString(step.Symbol))
			fmt.Fprintf(&sb, "%s = %s\n", indent, step.Substitution)
			fmt.Fprintf(&sb, "%s = %s\n", indent, FormatNumber(step.Value))
		}
	}

	return sb.String()
}
