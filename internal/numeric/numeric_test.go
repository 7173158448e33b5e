package numeric

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAddress_AcceptsWithAndWithoutPrefix(t *testing.T) {
	a, err := ParseAddress("0x200")
	require.NoError(t, err)
	require.Equal(t, uint16(0x200), a)

	b, err := ParseAddress("200")
	require.NoError(t, err)
	require.Equal(t, uint16(0x200), b)
}

func TestParseAddress_RejectsOutOfRange(t *testing.T) {
	_, err := ParseAddress("0x1000")
	require.Error(t, err)
}

func TestParseEvenAddress_RejectsOdd(t *testing.T) {
	_, err := ParseEvenAddress("0x201")
	require.Error(t, err)

	addr, err := ParseEvenAddress("0x200")
	require.NoError(t, err)
	require.Equal(t, uint16(0x200), addr)
}

func TestParseByte_RejectsOutOfRange(t *testing.T) {
	_, err := ParseByte("0x100")
	require.Error(t, err)

	b, err := ParseByte("0xFF")
	require.NoError(t, err)
	require.Equal(t, uint8(0xFF), b)
}

func TestParseNibble_RejectsOutOfRange(t *testing.T) {
	_, err := ParseNibble("0x10")
	require.Error(t, err)

	n, err := ParseNibble("0xF")
	require.NoError(t, err)
	require.Equal(t, uint8(0xF), n)
}

func TestParseRegister_CaseInsensitive(t *testing.T) {
	reg, ok := ParseRegister("VA")
	require.True(t, ok)
	require.Equal(t, uint8(0xA), reg)

	_, ok = ParseRegister("x1")
	require.False(t, ok)
}
