package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculateChecksum(t *testing.T) {
	data := []byte("8=FIXT.1.1\x019=75\x0135=A\x0134=1\x0149=ROFX\x0152=20170417-18:29:09.599\x01" +
		"56=eco\x0198=0\x01108=20\x01141=Y\x011137=9\x01")

	require.Equal(t, 79, CalculateChecksum(data))
	require.Equal(t, 0, CalculateChecksum(nil))
	require.Equal(t, 163, CalculateChecksum([]byte("8=FIX.4.4\x019=5\x0135=0\x01")))
}

func TestFormatChecksum(t *testing.T) {
	tests := []struct {
		sum  int
		want string
	}{
		{0, "000"},
		{7, "007"},
		{79, "079"},
		{255, "255"},
		{256, "000"},
		{-1, "255"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, FormatChecksum(tt.sum))
	}

	require.Equal(t, []byte("10=079"), AppendChecksum([]byte("10="), 79))
}

func TestParseChecksum(t *testing.T) {
	n, ok := ParseChecksum([]byte("079"))
	require.True(t, ok)
	require.Equal(t, 79, n)

	for _, bad := range []string{"", "79", "0079", "2a5", "256"} {
		_, ok := ParseChecksum([]byte(bad))
		require.False(t, ok, bad)
	}
}
