package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aemr3/WTFIX/errs"
)

var heartbeat = []byte("8=FIX.4.4\x019=5\x0135=0\x0110=163\x01")

func TestIndexTag(t *testing.T) {
	value, start, end, err := IndexTag(8, heartbeat)
	require.NoError(t, err)
	require.Equal(t, []byte("FIX.4.4"), value)
	require.Equal(t, 0, start)
	require.Equal(t, 9, end)

	value, start, end, err = IndexTag(9, heartbeat)
	require.NoError(t, err)
	require.Equal(t, []byte("5"), value)
	require.Equal(t, 10, start)
	require.Equal(t, 13, end)
	require.Equal(t, []byte("9=5\x01"), heartbeat[start:end+1])
}

func TestIndexTag_AnchoredOnFieldBoundary(t *testing.T) {
	data := []byte("58=9=x\x0119=1\x019=2\x01")

	value, start, _, err := IndexTag(9, data)
	require.NoError(t, err)
	require.Equal(t, []byte("2"), value)
	require.Equal(t, 12, start)

	_, _, _, err = IndexTag(8, data)
	require.ErrorIs(t, err, errs.ErrTagNotFound)
}

func TestIndexTag_OffsetsMatchRIndexTag(t *testing.T) {
	for _, tag := range []int{8, 9, 35, 10} {
		fv, fs, fe, err := IndexTag(tag, heartbeat)
		require.NoError(t, err)
		rv, rs, re, err := RIndexTag(tag, heartbeat)
		require.NoError(t, err)

		require.Equal(t, fv, rv)
		require.Equal(t, fs, rs)
		require.Equal(t, fe, re)
		require.NotEqual(t, byte(0x01), heartbeat[fs], "tag %d", tag)
	}
}

func TestIndexTag_Unterminated(t *testing.T) {
	data := []byte("35=0\x0158=abc")

	value, start, end, err := IndexTag(58, data)
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), value)
	require.Equal(t, 5, start)
	require.Equal(t, len(data), end)
}

func TestIndexTag_ValueIsClipped(t *testing.T) {
	value, _, _, err := IndexTag(35, heartbeat)
	require.NoError(t, err)

	_ = append(value, 'X')
	require.Equal(t, byte(0x01), heartbeat[18])
}

func TestRIndexTag(t *testing.T) {
	value, start, end, err := RIndexTag(10, heartbeat)
	require.NoError(t, err)
	require.Equal(t, []byte("163"), value)
	require.Equal(t, 19, start)
	require.Equal(t, 25, end)

	value, start, _, err = RIndexTag(8, heartbeat)
	require.NoError(t, err)
	require.Equal(t, []byte("FIX.4.4"), value)
	require.Equal(t, 0, start)

	data := []byte("216=a\x01216=b\x01")
	value, start, _, err = RIndexTag(216, data)
	require.NoError(t, err)
	require.Equal(t, []byte("b"), value)
	require.Equal(t, 6, start)

	_, _, _, err = RIndexTag(123, heartbeat)
	require.ErrorIs(t, err, errs.ErrTagNotFound)
}

func TestAppendField(t *testing.T) {
	out := AppendField(nil, 35, "A")
	require.Equal(t, []byte("35=A\x01"), out)
	require.Equal(t, len(out), FieldLen(35, "A"))
	require.Equal(t, 10, FieldLen(1137, "9999"))
}

func TestParseTag(t *testing.T) {
	tag, ok := ParseTag([]byte("1137"))
	require.True(t, ok)
	require.Equal(t, 1137, tag)

	for _, bad := range []string{"", "0", "-1", "3a", "12345678901"} {
		_, ok := ParseTag([]byte(bad))
		require.False(t, ok, bad)
	}

	n, ok := ParseUint([]byte("0"))
	require.True(t, ok)
	require.Equal(t, 0, n)

	_, ok = ParseUint([]byte("-2"))
	require.False(t, ok)
}
