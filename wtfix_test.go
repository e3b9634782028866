package wtfix

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aemr3/WTFIX/encoding"
	"github.com/aemr3/WTFIX/errs"
	"github.com/aemr3/WTFIX/field"
	"github.com/aemr3/WTFIX/format"
	"github.com/aemr3/WTFIX/protocol"
	"github.com/aemr3/WTFIX/wire"
)

const heartbeat = "8=FIX.4.4\x019=5\x0135=0\x0110=163\x01"

// frameOf wraps body with FIX.4.4 framing and a valid CheckSum.
func frameOf(body string) []byte {
	head := "8=FIX.4.4\x019=" + strconv.Itoa(len(body)) + "\x01" + body

	return []byte(head + "10=" + encoding.FormatChecksum(encoding.CalculateChecksum([]byte(head))) + "\x01")
}

// TestEncodeDecode verifies a message built with the facade survives the wire
func TestEncodeDecode(t *testing.T) {
	m, err := NewMessage(
		field.MustNew(protocol.TagMsgType, protocol.MsgTypeLogon),
		field.MustNew(protocol.TagMsgSeqNum, 1),
		field.MustNew(protocol.TagHeartBtInt, 30),
	)
	require.NoError(t, err)

	frame, err := Encode(m)
	require.NoError(t, err)

	decoded, err := Decode(frame)
	require.NoError(t, err)
	require.Equal(t, "Logon", decoded.Name())

	seq, ok := decoded.SeqNum()
	require.True(t, ok)
	require.Equal(t, 1, seq)
	require.Equal(t, "30", decoded.GetOr(protocol.TagHeartBtInt, ""))
}

// TestNewMessage_StandardGroups verifies the standard templates are applied
func TestNewMessage_StandardGroups(t *testing.T) {
	m, err := NewMessage(
		field.MustNew(protocol.TagMsgType, protocol.MsgTypeMarketDataRequest),
		field.MustNew(protocol.TagNoMDEntryTypes, 2),
		field.MustNew(protocol.TagMDEntryType, "0"),
		field.MustNew(protocol.TagMDEntryType, "1"),
	)
	require.NoError(t, err)
	require.Equal(t, format.StorageOrdered, m.Storage())

	g, err := m.Group(protocol.TagNoMDEntryTypes)
	require.NoError(t, err)
	require.Equal(t, 2, g.Size())

	_, err = NewMessage(
		field.MustNew(protocol.TagMsgType, protocol.MsgTypeMarketDataRequest),
		field.MustNew(protocol.TagNoMDEntryTypes, 3),
		field.MustNew(protocol.TagMDEntryType, "0"),
	)
	require.ErrorIs(t, err, errs.ErrInvalidGroup)
}

// TestDecode_OptionalGroupMembers verifies ordinary traffic whose groups omit optional
// members decodes with the default codec
func TestDecode_OptionalGroupMembers(t *testing.T) {
	order, err := Decode(frameOf("35=D\x0134=7\x0149=SENDER\x0156=TARGET\x0111=ord1\x01" +
		"453=2\x01448=P1\x01447=D\x01452=1\x01448=P2\x01447=D\x01452=3\x01"))
	require.NoError(t, err)
	require.Equal(t, "NewOrderSingle", order.Name())
	require.Equal(t, format.StorageList, order.Storage())
	require.Equal(t, "2", order.GetOr(protocol.TagNoPartyIDs, ""))

	snapshot, err := Decode(frameOf("35=W\x0134=8\x0155=EURUSD\x01268=2\x01" +
		"269=0\x01270=1.0874\x01271=1000000\x01272=20240301\x01" +
		"269=1\x01270=1.0876\x01271=500000\x01"))
	require.NoError(t, err)
	require.Equal(t, "MarketDataSnapshotFullRefresh", snapshot.Name())

	frame, err := Encode(snapshot)
	require.NoError(t, err)
	require.Contains(t, string(frame), "272=20240301\x01269=1\x01")
}

// TestDecodeRaw verifies the raw path keeps the body encoded
func TestDecodeRaw(t *testing.T) {
	raw, err := DecodeRaw([]byte(heartbeat))
	require.NoError(t, err)
	require.Equal(t, []byte("35=0\x01"), raw.Body())

	_, err = Decode([]byte("8=FIX.4.4\x019=6\x0135=0\x0110=163\x01"))
	require.ErrorIs(t, err, errs.ErrValidation)
}

// TestNewCodec verifies options reach the codec
func TestNewCodec(t *testing.T) {
	codec, err := NewCodec(wire.WithBeginString("FIX.4.2"))
	require.NoError(t, err)
	require.Equal(t, "FIX.4.2", codec.BeginString())

	_, err = NewCodec(wire.WithMaxFrameSize(0))
	require.ErrorIs(t, err, errs.ErrValidation)

	require.Equal(t, protocol.DefaultBeginString, DefaultCodec().BeginString())
}

// TestArchive verifies frames written through the facade can be read back
func TestArchive(t *testing.T) {
	for _, ct := range []format.CompressionType{format.CompressionS2, format.CompressionLZ4} {
		w, err := NewArchiveWriter(ct)
		require.NoError(t, err)
		require.NoError(t, w.Add([]byte(heartbeat)))

		data, err := w.Finish()
		require.NoError(t, err)

		r, err := OpenArchive(data)
		require.NoError(t, err)
		require.Equal(t, ct, r.Compression())
		require.Equal(t, 1, r.Len())

		frame, err := r.Frame(0)
		require.NoError(t, err)
		require.Equal(t, heartbeat, string(frame))
	}

	w, err := NewArchiveWriter()
	require.NoError(t, err)
	data, err := w.Finish()
	require.NoError(t, err)

	r, err := OpenArchive(data)
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, r.Compression())
}
