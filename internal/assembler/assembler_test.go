package assembler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssemble_SimpleProgram(t *testing.T) {
	source := `
		ld v0, 0x05
		ld v1, 0x0A
		add v0, v1
		jmp 0x200
	`

	out, err := Assemble(source)
	require.NoError(t, err)

	expected := []byte{
		0x60, 0x05,
		0x61, 0x0A,
		0x80, 0x14,
		0x12, 0x00,
	}
	// The image starts with origin (0x200) zero bytes of padding.
	require.Equal(t, append(make([]byte, 0x200), expected...), out)
}

func TestAssemble_LabelsResolveForwardAndBackward(t *testing.T) {
	source := `
		loop:
			ld v0, 0x01
			jmp loop
	`

	out, err := Assemble(source)
	require.NoError(t, err)

	expected := []byte{
		0x60, 0x01,
		0x12, 0x00, // jmp back to 0x200, where "loop" was bound
	}
	require.Equal(t, append(make([]byte, 0x200), expected...), out)
}

func TestAssemble_CallAndReturn(t *testing.T) {
	source := `
		call routine
		routine:
			ret
	`

	out, err := Assemble(source)
	require.NoError(t, err)

	expected := []byte{
		0x22, 0x02, // call 0x202
		0x00, 0xEE, // ret
	}
	require.Equal(t, append(make([]byte, 0x200), expected...), out)
}

func TestAssemble_OrgDirectiveShiftsOriginAndPadsOutput(t *testing.T) {
	source := `
		org 0x300
		cls
	`

	out, err := Assemble(source)
	require.NoError(t, err)

	require.Len(t, out, 0x300+2)
	require.Equal(t, []byte{0x00, 0xE0}, out[0x300:])
	for _, b := range out[:0x300] {
		require.Equal(t, byte(0), b)
	}
}

func TestAssemble_DuplicateOrgIsError(t *testing.T) {
	source := `
		org 0x300
		org 0x400
		cls
	`

	_, err := Assemble(source)
	require.Error(t, err)
}

func TestAssemble_DuplicateLabelIsError(t *testing.T) {
	source := `
		start:
			cls
		start:
			ret
	`

	_, err := Assemble(source)
	require.Error(t, err)
}

func TestAssemble_UnresolvedLabelIsError(t *testing.T) {
	_, err := Assemble("jmp nowhere")
	require.Error(t, err)
}

func TestAssemble_UnknownMnemonicIsError(t *testing.T) {
	_, err := Assemble("frobnicate v0")
	require.Error(t, err)
}

func TestAssemble_CommentsAndBlankLinesAreSkipped(t *testing.T) {
	source := "// a comment\n\n  cls  \n// another\n"

	out, err := Assemble(source)
	require.NoError(t, err)
	require.Equal(t, append(make([]byte, 0x200), 0x00, 0xE0), out)
}

func TestAssemble_EveryMnemonicEmitsExpectedOpcode(t *testing.T) {
	cases := []struct {
		name     string
		source   string
		expected uint16
	}{
		{"cls", "cls", 0x00E0},
		{"ret", "ret", 0x00EE},
		{"se imm", "se v1, 0x23", 0x3123},
		{"se reg", "se v1, v2", 0x5120},
		{"sne imm", "sne v1, 0x23", 0x4123},
		{"sne reg", "sne v1, v2", 0x9120},
		{"ld vx imm", "ld v3, 0x45", 0x6345},
		{"ld vx vy", "ld v3, v4", 0x8340},
		{"ld i", "ld i, 0x345", 0xA345},
		{"ld vx dt", "ld v3, dt", 0xF307},
		{"ld dt vx", "ld dt, v3", 0xF315},
		{"ld st vx", "ld st, v3", 0xF318},
		{"ld f vx", "ld f, v3", 0xF329},
		{"ld b vx", "ld b, v3", 0xF333},
		{"ld i vx (register dump)", "ld i, v3", 0xF355},
		{"ld vx i (register load)", "ld v3, i", 0xF365},
		{"add vx imm", "add v3, 0x10", 0x7310},
		{"add vx vy", "add v3, v4", 0x8344},
		{"add i vx", "add i, v3", 0xF31E},
		{"or", "or v1, v2", 0x8121},
		{"and", "and v1, v2", 0x8122},
		{"xor", "xor v1, v2", 0x8123},
		{"sub", "sub v1, v2", 0x8125},
		{"shr", "shr v1, v2", 0x8126},
		{"subn", "subn v1, v2", 0x8127},
		{"shl", "shl v1, v2", 0x812E},
		{"rnd", "rnd v1, 0x0F", 0xC10F},
		{"drw", "drw v1, v2, 0x5", 0xD125},
		{"skp", "skp v1", 0xE19E},
		{"sknp", "sknp v1", 0xE1A1},
		{"wkp", "wkp v1", 0xF10A},
		{"jmp v0-offset", "jmp v0, 0x345", 0xB345},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Assemble(tc.source)
			require.NoError(t, err)
			require.Len(t, out, 0x200+2)
			require.Equal(t, tc.expected, uint16(out[0x200])<<8|uint16(out[0x201]))
		})
	}
}

func TestAssemble_ImmediateOutOfRangeIsError(t *testing.T) {
	_, err := Assemble("ld v0, 0x100")
	require.Error(t, err)
}

func TestAssemble_AddressOutOfRangeIsError(t *testing.T) {
	_, err := Assemble("ld i, 0x1000")
	require.Error(t, err)
}

func TestAssemble_JmpWithTwoArgsRequiresV0(t *testing.T) {
	_, err := Assemble("jmp v1, 0x345")
	require.Error(t, err)
}

func TestAssemble_CommaAndSpaceSeparatedOperandsAreEquivalent(t *testing.T) {
	a, err := Assemble("add v1, v2")
	require.NoError(t, err)
	b, err := Assemble("add v1 v2")
	require.NoError(t, err)
	require.Equal(t, a, b)
}
