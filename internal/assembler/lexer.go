package assembler

import (
	"fmt"
	"strings"
)

// Tokenize splits source into lines, skips blank and `//`-prefixed
// comment lines, and classifies every remaining line as an Origin,
// Label, or Instruction token. It collects every malformed line as an
// error (rather than stopping at the first one) so a single assemble
// call reports every tokenization problem at once.
func Tokenize(source string) ([]Token, []error) {
	var tokens []Token
	var errs []error

	lines := strings.Split(source, "\n")
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "//") {
			continue
		}

		parts := strings.Fields(line)
		first := parts[0]

		switch {
		case strings.EqualFold(first, "org"):
			tokens = append(tokens, Token{
				Kind:     KindOrigin,
				Line:     i,
				Operands: parts[1:],
			})

		case strings.HasSuffix(first, ":"):
			name := strings.TrimSuffix(first, ":")
			if name == "" {
				errs = append(errs, fmt.Errorf("line %d: empty label name", i))
				continue
			}
			tokens = append(tokens, Token{
				Kind: KindLabel,
				Line: i,
				Name: name,
			})

		default:
			operands := parseOperands(parts[1:])
			tokens = append(tokens, Token{
				Kind:     KindInstruction,
				Line:     i,
				Name:     first,
				Operands: operands,
			})
		}
	}

	return tokens, errs
}

// parseOperands joins the remaining whitespace-separated fields of an
// instruction line and splits them on commas, trimming each operand.
// Commas are optional separators: "v0, v1" and "v0 v1" both yield the
// same two operands.
func parseOperands(fields []string) []string {
	if len(fields) == 0 {
		return nil
	}
	joined := strings.Join(fields, " ")
	rawOperands := strings.FieldsFunc(joined, func(r rune) bool {
		return r == ',' || r == ' '
	})
	operands := make([]string, 0, len(rawOperands))
	for _, op := range rawOperands {
		op = strings.TrimSpace(op)
		if op != "" {
			operands = append(operands, op)
		}
	}
	return operands
}
