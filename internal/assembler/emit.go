package assembler

import "fmt"

// emit dispatches one Instruction token to its opcode, given the
// already-resolved label table. The mnemonic is matched
// case-insensitively.
func emit(labels map[string]uint16, name string, args []string) (uint16, error) {
	switch toLowerASCII(name) {
	case "cls":
		return emitNoArgs(args, 0x00E0)
	case "ret":
		return emitNoArgs(args, 0x00EE)
	case "jmp":
		return emitJmp(labels, args)
	case "call":
		return emitCall(labels, args)
	case "se":
		return emitSkipImmediateOrRegister(args, 0x3000, 0x5000)
	case "sne":
		return emitSkipImmediateOrRegister(args, 0x4000, 0x9000)
	case "ld":
		return emitLd(args)
	case "add":
		return emitAdd(args)
	case "or":
		return emitAluRegister(args, 0x1)
	case "and":
		return emitAluRegister(args, 0x2)
	case "xor":
		return emitAluRegister(args, 0x3)
	case "sub":
		return emitAluRegister(args, 0x5)
	case "shr":
		return emitAluRegister(args, 0x6)
	case "subn":
		return emitAluRegister(args, 0x7)
	case "shl":
		return emitAluRegister(args, 0xE)
	case "drw":
		return emitDrw(args)
	case "rnd":
		return emitRnd(args)
	case "skp":
		return emitKeySkip(args, 0xE09E)
	case "sknp":
		return emitKeySkip(args, 0xE0A1)
	case "wkp":
		return emitFxOnRegister(args, 0x0A)
	default:
		return 0, fmt.Errorf("unknown instruction %q", name)
	}
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func emitNoArgs(args []string, opcode uint16) (uint16, error) {
	if len(args) != 0 {
		return 0, fmt.Errorf("expected no arguments, got %d", len(args))
	}
	return opcode, nil
}

func requireRegister(args []string, idx int) (uint8, error) {
	if idx >= len(args) {
		return 0, fmt.Errorf("missing register argument")
	}
	arg, err := classify(args[idx])
	if err != nil {
		return 0, err
	}
	if arg.Kind != ArgRegister {
		return 0, fmt.Errorf("expected register, got %q", args[idx])
	}
	return arg.Register, nil
}

func emitJmp(labels map[string]uint16, args []string) (uint16, error) {
	switch len(args) {
	case 1:
		addr, err := resolveAddress(labels, args[0])
		if err != nil {
			return 0, err
		}
		return 0x1000 | addr, nil
	case 2:
		reg, err := requireRegister(args, 0)
		if err != nil {
			return 0, err
		}
		if reg != 0 {
			return 0, fmt.Errorf("jmp with two arguments requires v0, got v%x", reg)
		}
		addr, err := resolveAddress(labels, args[1])
		if err != nil {
			return 0, err
		}
		return 0xB000 | addr, nil
	default:
		return 0, fmt.Errorf("jmp expects 1 or 2 arguments, got %d", len(args))
	}
}

func emitCall(labels map[string]uint16, args []string) (uint16, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("call expects 1 argument, got %d", len(args))
	}
	addr, err := resolveAddress(labels, args[0])
	if err != nil {
		return 0, err
	}
	return 0x2000 | addr, nil
}

// emitSkipImmediateOrRegister handles se/sne's two shapes: "Vx, nn"
// (immediateOp) and "Vx, Vy" (registerOp, low nibble forced to 0).
func emitSkipImmediateOrRegister(args []string, immediateOp, registerOp uint16) (uint16, error) {
	if len(args) != 2 {
		return 0, fmt.Errorf("expected 2 arguments, got %d", len(args))
	}
	x, err := requireRegister(args, 0)
	if err != nil {
		return 0, err
	}
	second, err := classify(args[1])
	if err != nil {
		return 0, err
	}
	switch second.Kind {
	case ArgRegister:
		return registerOp | uint16(x)<<8 | uint16(second.Register)<<4, nil
	case ArgNumber:
		if second.Number > 0xFF {
			return 0, fmt.Errorf("immediate %d out of range: must be <= 0xFF", second.Number)
		}
		return immediateOp | uint16(x)<<8 | second.Number, nil
	default:
		return 0, fmt.Errorf("expected register or immediate, got %q", args[1])
	}
}

// emitAluRegister handles the 8XYN family: or/and/xor/sub/subn/shr/shl
// all take two registers and differ only in their low nibble.
func emitAluRegister(args []string, n uint16) (uint16, error) {
	if len(args) != 2 {
		return 0, fmt.Errorf("expected 2 arguments, got %d", len(args))
	}
	x, err := requireRegister(args, 0)
	if err != nil {
		return 0, err
	}
	y, err := requireRegister(args, 1)
	if err != nil {
		return 0, err
	}
	return 0x8000 | uint16(x)<<8 | uint16(y)<<4 | n, nil
}

func emitLd(args []string) (uint16, error) {
	if len(args) != 2 {
		return 0, fmt.Errorf("ld expects 2 arguments, got %d", len(args))
	}
	first, err := classify(args[0])
	if err != nil {
		return 0, err
	}

	switch first.Kind {
	case ArgIndex:
		second, err := classify(args[1])
		if err != nil {
			return 0, err
		}
		switch second.Kind {
		case ArgNumber:
			if second.Number > 0x0FFF {
				return 0, fmt.Errorf("address %d out of range", second.Number)
			}
			return 0xA000 | second.Number, nil
		case ArgRegister:
			return 0xF000 | uint16(second.Register)<<8 | 0x55, nil
		default:
			return 0, fmt.Errorf("ld i expects a number or register, got %q", args[1])
		}

	case ArgSoundTimer:
		reg, err := requireRegister(args, 1)
		if err != nil {
			return 0, err
		}
		return 0xF000 | uint16(reg)<<8 | 0x18, nil

	case ArgDelayTimer:
		reg, err := requireRegister(args, 1)
		if err != nil {
			return 0, err
		}
		return 0xF000 | uint16(reg)<<8 | 0x15, nil

	case ArgFont:
		reg, err := requireRegister(args, 1)
		if err != nil {
			return 0, err
		}
		return 0xF000 | uint16(reg)<<8 | 0x29, nil

	case ArgBCD:
		reg, err := requireRegister(args, 1)
		if err != nil {
			return 0, err
		}
		return 0xF000 | uint16(reg)<<8 | 0x33, nil

	case ArgRegister:
		x := first.Register
		second, err := classify(args[1])
		if err != nil {
			return 0, err
		}
		switch second.Kind {
		case ArgDelayTimer:
			return 0xF000 | uint16(x)<<8 | 0x07, nil
		case ArgIndex:
			return 0xF000 | uint16(x)<<8 | 0x65, nil
		case ArgRegister:
			return 0x8000 | uint16(x)<<8 | uint16(second.Register)<<4, nil
		case ArgNumber:
			if second.Number > 0xFF {
				return 0, fmt.Errorf("immediate %d out of range: must be <= 0xFF", second.Number)
			}
			return 0x6000 | uint16(x)<<8 | second.Number, nil
		default:
			return 0, fmt.Errorf("ld vx expects dt, i, a register, or an immediate, got %q", args[1])
		}

	default:
		return 0, fmt.Errorf("invalid first operand for ld: %q", args[0])
	}
}

func emitAdd(args []string) (uint16, error) {
	if len(args) != 2 {
		return 0, fmt.Errorf("add expects 2 arguments, got %d", len(args))
	}
	first, err := classify(args[0])
	if err != nil {
		return 0, err
	}

	if first.Kind == ArgIndex {
		reg, err := requireRegister(args, 1)
		if err != nil {
			return 0, err
		}
		return 0xF000 | uint16(reg)<<8 | 0x1E, nil
	}

	if first.Kind != ArgRegister {
		return 0, fmt.Errorf("add expects i or a register as its first operand, got %q", args[0])
	}

	second, err := classify(args[1])
	if err != nil {
		return 0, err
	}
	switch second.Kind {
	case ArgRegister:
		return 0x8000 | uint16(first.Register)<<8 | uint16(second.Register)<<4 | 0x4, nil
	case ArgNumber:
		if second.Number > 0xFF {
			return 0, fmt.Errorf("immediate %d out of range: must be <= 0xFF", second.Number)
		}
		return 0x7000 | uint16(first.Register)<<8 | second.Number, nil
	default:
		return 0, fmt.Errorf("add vx expects a register or immediate, got %q", args[1])
	}
}

func emitDrw(args []string) (uint16, error) {
	if len(args) != 3 {
		return 0, fmt.Errorf("drw expects 3 arguments, got %d", len(args))
	}
	x, err := requireRegister(args, 0)
	if err != nil {
		return 0, err
	}
	y, err := requireRegister(args, 1)
	if err != nil {
		return 0, err
	}
	n, err := classify(args[2])
	if err != nil {
		return 0, err
	}
	if n.Kind != ArgNumber || n.Number > 0xF {
		return 0, fmt.Errorf("drw height must be a number <= 0xF, got %q", args[2])
	}
	return 0xD000 | uint16(x)<<8 | uint16(y)<<4 | n.Number, nil
}

func emitRnd(args []string) (uint16, error) {
	if len(args) != 2 {
		return 0, fmt.Errorf("rnd expects 2 arguments, got %d", len(args))
	}
	x, err := requireRegister(args, 0)
	if err != nil {
		return 0, err
	}
	nn, err := classify(args[1])
	if err != nil {
		return 0, err
	}
	if nn.Kind != ArgNumber || nn.Number > 0xFF {
		return 0, fmt.Errorf("rnd mask must be a number <= 0xFF, got %q", args[1])
	}
	return 0xC000 | uint16(x)<<8 | nn.Number, nil
}

func emitKeySkip(args []string, opcode uint16) (uint16, error) {
	x, err := requireRegister(args, 0)
	if err != nil {
		return 0, err
	}
	if len(args) != 1 {
		return 0, fmt.Errorf("expected 1 argument, got %d", len(args))
	}
	return opcode | uint16(x)<<8, nil
}

func emitFxOnRegister(args []string, low uint16) (uint16, error) {
	x, err := requireRegister(args, 0)
	if err != nil {
		return 0, err
	}
	if len(args) != 1 {
		return 0, fmt.Errorf("expected 1 argument, got %d", len(args))
	}
	return 0xF000 | uint16(x)<<8 | low, nil
}
