package assembler

import (
	"fmt"
	"strings"

	"github.com/coreyhulse/chipforge/internal/numeric"
)

// defaultOrigin is used when the source contains no `org` directive.
const defaultOrigin = 0x200

// resolveOrigin finds the single Origin token (if any), validates its
// argument, and returns the resulting origin address. Zero Origin
// tokens defaults to 0x200; more than one, or a malformed argument, is
// an error.
func resolveOrigin(tokens []Token) (uint16, error) {
	origin := uint16(defaultOrigin)
	found := false

	for _, tok := range tokens {
		if tok.Kind != KindOrigin {
			continue
		}
		if found {
			return 0, fmt.Errorf("line %d: duplicate org directive", tok.Line)
		}
		if len(tok.Operands) != 1 {
			return 0, fmt.Errorf("line %d: org takes exactly one argument", tok.Line)
		}
		addr, err := numeric.ParseEvenAddress(tok.Operands[0])
		if err != nil {
			return 0, fmt.Errorf("line %d: invalid org argument: %w", tok.Line, err)
		}
		origin = addr
		found = true
	}

	return origin, nil
}

// resolveLabels walks tokens in source order with a simulated PC
// starting at origin, binding each Label token to the current PC and
// advancing PC by 2 for every Instruction token. Redefining a label is
// an error; every definition and instruction in the source is still
// scanned so every duplicate is reported.
func resolveLabels(tokens []Token, origin uint16) (map[string]uint16, []error) {
	labels := make(map[string]uint16)
	var errs []error

	pc := origin
	for _, tok := range tokens {
		switch tok.Kind {
		case KindLabel:
			key := strings.ToLower(tok.Name)
			if _, exists := labels[key]; exists {
				errs = append(errs, fmt.Errorf("line %d: label %q already defined", tok.Line, tok.Name))
				continue
			}
			labels[key] = pc
		case KindInstruction:
			pc += 2
		}
	}

	return labels, errs
}
