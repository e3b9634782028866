package wire

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aemr3/WTFIX/encoding"
	"github.com/aemr3/WTFIX/errs"
	"github.com/aemr3/WTFIX/field"
	"github.com/aemr3/WTFIX/format"
	"github.com/aemr3/WTFIX/message"
	"github.com/aemr3/WTFIX/protocol"
	"github.com/aemr3/WTFIX/template"
)

const (
	heartbeat = "8=FIX.4.4\x019=5\x0135=0\x0110=163\x01"
	order     = "8=FIX.4.4\x019=82\x0135=D\x0134=7\x0149=SENDER\x0156=TARGET\x0111=ord1\x01" +
		"453=2\x01448=P1\x01447=D\x01452=1\x01448=P2\x01447=D\x01452=3\x0110=221\x01"
)

var parties = template.MustNewRegistry(map[int][]int{453: {448, 447, 452}})

// frame wraps body with a correct header and trailer.
func frame(body string) string {
	head := fmt.Sprintf("8=FIX.4.4\x019=%d\x01", len(body))
	sum := encoding.CalculateChecksum([]byte(head + body))

	return head + body + "10=" + encoding.FormatChecksum(sum) + "\x01"
}

type recorder struct {
	decoded  []string
	encoded  []string
	rejected []string
}

func (r *recorder) FrameDecoded(msgType string, _ int) { r.decoded = append(r.decoded, msgType) }
func (r *recorder) FrameEncoded(msgType string, _ int) { r.encoded = append(r.encoded, msgType) }
func (r *recorder) FrameRejected(reason string)        { r.rejected = append(r.rejected, reason) }

func TestNewCodec(t *testing.T) {
	c, err := NewCodec()
	require.NoError(t, err)
	assert.Equal(t, protocol.DefaultBeginString, c.BeginString())
	assert.Equal(t, DefaultMaxFrameSize, c.MaxFrameSize())
	assert.Equal(t, 0, c.Templates().Len())

	_, err = NewCodec(WithBeginString(""))
	require.ErrorIs(t, err, errs.ErrValidation)

	_, err = NewCodec(WithMaxFrameSize(0))
	require.ErrorIs(t, err, errs.ErrValidation)

	c = MustNewCodec(WithBeginString("FIXT.1.1"), WithTemplates(parties))
	assert.Equal(t, "FIXT.1.1", c.BeginString())
	assert.True(t, c.Templates().Equal(parties))

	assert.Panics(t, func() { MustNewCodec(WithBeginString("")) })
}

func TestDecodeRaw(t *testing.T) {
	c := MustNewCodec()

	raw, err := c.DecodeRaw([]byte(heartbeat))
	require.NoError(t, err)

	assert.Equal(t, "FIX.4.4", raw.BeginString())
	assert.Equal(t, 5, raw.BodyLength())
	assert.Equal(t, "163", raw.CheckSum())
	assert.Equal(t, []byte("35=0\x01"), raw.Body())
	assert.Equal(t, format.StorageRaw, raw.Storage())

	msgType, ok := raw.Type()
	require.True(t, ok)
	assert.Equal(t, "0", msgType)

	_, ok = raw.SeqNum()
	assert.False(t, ok)
}

func TestDecodeRaw_HeaderFields(t *testing.T) {
	c := MustNewCodec()

	raw, err := c.DecodeRaw([]byte(order))
	require.NoError(t, err)

	seq, ok := raw.SeqNum()
	require.True(t, ok)
	assert.Equal(t, 7, seq)
	assert.Equal(t, []int{8, 9, 35, 34, 10}, raw.Tags())
	assert.Equal(t, 82, raw.BodyLength())
}

func TestDecodeRaw_EmptyBody(t *testing.T) {
	c := MustNewCodec()

	_, err := c.DecodeRaw([]byte(frame("")))
	require.ErrorIs(t, err, errs.ErrValidation)
	assert.NotErrorIs(t, err, errs.ErrMalformedFrame)
}

func TestDecodeRaw_Errors(t *testing.T) {
	tests := []struct {
		name  string
		frame string
		want  error
	}{
		{"empty", "", errs.ErrMalformedFrame},
		{"no begin string", "9=5\x0135=0\x0110=163\x01", errs.ErrMalformedFrame},
		{"begin string not first", "35=0\x018=FIX.4.4\x019=5\x0110=163\x01", errs.ErrMalformedFrame},
		{"empty begin string", "8=\x019=5\x0135=0\x0110=163\x01", errs.ErrMalformedFrame},
		{"body length not second", "8=FIX.4.4\x0135=0\x019=5\x0110=163\x01", errs.ErrMalformedFrame},
		{"non-numeric body length", "8=FIX.4.4\x019=x\x0135=0\x0110=163\x01", errs.ErrMalformedFrame},
		{"no checksum", "8=FIX.4.4\x019=5\x0135=0\x01", errs.ErrMalformedFrame},
		{"checksum not last", heartbeat + "58=x\x01", errs.ErrMalformedFrame},
		{"unterminated checksum", strings.TrimSuffix(heartbeat, "\x01"), errs.ErrMalformedFrame},
		{"body too short", "8=FIX.4.4\x019=6\x0135=0\x0110=164\x01", errs.ErrBodyLengthMismatch},
		{"body too long", "8=FIX.4.4\x019=4\x0135=0\x0110=162\x01", errs.ErrBodyLengthMismatch},
		{"wrong checksum", "8=FIX.4.4\x019=5\x0135=0\x0110=000\x01", errs.ErrChecksumMismatch},
		{"checksum not digits", "8=FIX.4.4\x019=5\x0135=0\x0110=abc\x01", errs.ErrMalformedFrame},
		{"no msg type", frame("34=1\x01"), errs.ErrValidation},
		{"bad seq num", frame("35=0\x0134=x\x01"), errs.ErrMalformedFrame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			c := MustNewCodec(WithObserver(rec))

			_, err := c.DecodeRaw([]byte(tt.frame))
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, errs.ErrValidation)
			assert.Equal(t, []string{RejectReason(err)}, rec.rejected)
			assert.Empty(t, rec.decoded)
		})
	}
}

func TestDecodeRaw_SkipChecksum(t *testing.T) {
	c := MustNewCodec(WithValidateChecksum(false))

	raw, err := c.DecodeRaw([]byte("8=FIX.4.4\x019=5\x0135=0\x0110=000\x01"))
	require.NoError(t, err)
	assert.Equal(t, "000", raw.CheckSum())
}

func TestDecodeRaw_CopiesBody(t *testing.T) {
	c := MustNewCodec()

	buf := []byte(heartbeat)
	raw, err := c.DecodeRaw(buf)
	require.NoError(t, err)

	copy(buf, bytes.Repeat([]byte{'x'}, len(buf)))
	assert.Equal(t, []byte("35=0\x01"), raw.Body())
}

func TestParse(t *testing.T) {
	c := MustNewCodec(WithTemplates(parties))

	m, err := c.Decode([]byte(order))
	require.NoError(t, err)
	require.IsType(t, &message.OptimizedMessage{}, m)

	assert.Equal(t, []int{8, 9, 35, 34, 49, 56, 11, 453, 10}, m.Tags())
	assert.Equal(t, "D", m.GetOr(protocol.TagMsgType, ""))
	assert.Equal(t, "221", m.GetOr(protocol.TagCheckSum, ""))

	sender, ok := m.SenderID()
	require.True(t, ok)
	assert.Equal(t, "SENDER", sender)

	g, err := m.Group(453)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Size())

	second, ok := g.Instance(1)
	require.True(t, ok)
	assert.Equal(t, "P2", second.GetOr(448, ""))
	assert.Equal(t, "3", second.GetOr(452, ""))
}

func TestParse_KeepsGroupCounterText(t *testing.T) {
	c := MustNewCodec(WithTemplates(parties))
	in := frame("35=D\x0134=1\x01453=02\x01448=P1\x01447=D\x01452=1\x01448=P2\x01447=D\x01452=3\x01")

	m, err := c.Decode([]byte(in))
	require.NoError(t, err)

	g, err := m.Group(453)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Size())
	assert.Equal(t, "02", g.Value())

	out, err := c.Encode(m)
	require.NoError(t, err)
	assert.Equal(t, in, string(out))
}

func TestParse_WithoutTemplates(t *testing.T) {
	c := MustNewCodec()

	m, err := c.Decode([]byte(order))
	require.NoError(t, err)
	require.IsType(t, &message.GenericMessage{}, m)
	assert.Len(t, m.Tags(), 15)
}

func TestParse_DuplicateTags(t *testing.T) {
	c := MustNewCodec()

	m, err := c.Decode([]byte(frame("35=0\x0158=a\x0158=b\x01")))
	require.NoError(t, err)
	require.IsType(t, &message.GenericMessage{}, m)
	assert.Equal(t, format.StorageList, m.Storage())
	assert.Equal(t, "a", m.GetOr(58, ""))
}

func TestParse_InvalidGroup(t *testing.T) {
	rec := &recorder{}
	c := MustNewCodec(WithTemplates(parties), WithObserver(rec))

	_, err := c.Decode([]byte(frame("35=D\x01453=2\x01448=P1\x01447=D\x01452=1\x01")))
	require.ErrorIs(t, err, errs.ErrInvalidGroup)
	assert.Equal(t, []string{ReasonInvalidGroup}, rec.rejected)
}

func TestParse_MalformedField(t *testing.T) {
	c := MustNewCodec()

	_, err := c.Decode([]byte(frame("35=0\x01junk\x01")))
	require.ErrorIs(t, err, errs.ErrMalformedField)
}

func TestParseFields(t *testing.T) {
	fields, err := ParseFields([]byte("35=0\x0158=a=b\x0134=1"))
	require.NoError(t, err)
	assert.Equal(t, []field.Field{
		{Tag: 35, Value: "0"},
		{Tag: 58, Value: "a=b"},
		{Tag: 34, Value: "1"},
	}, fields)

	fields, err = ParseFields(nil)
	require.NoError(t, err)
	assert.Empty(t, fields)

	_, err = ParseFields([]byte("35=0\x01\x01"))
	require.ErrorIs(t, err, errs.ErrMalformedField)
}

func TestEncode(t *testing.T) {
	rec := &recorder{}
	c := MustNewCodec(WithObserver(rec))

	out, err := c.Encode(message.NewGeneric(field.MustNew(protocol.TagMsgType, "0")))
	require.NoError(t, err)
	assert.Equal(t, heartbeat, string(out))
	assert.Equal(t, []string{"0"}, rec.encoded)
}

func TestEncode_MsgTypeFirst(t *testing.T) {
	c := MustNewCodec()

	m := message.NewGeneric(
		field.MustNew(protocol.TagMsgSeqNum, 1),
		field.MustNew(protocol.TagMsgType, "A"),
		field.MustNew(protocol.TagHeartBtInt, 30),
	)

	out, err := c.Encode(m)
	require.NoError(t, err)
	assert.Equal(t, frame("35=A\x0134=1\x01108=30\x01"), string(out))
}

func TestEncode_RecomputesFraming(t *testing.T) {
	c := MustNewCodec()

	m := message.NewGeneric(
		field.MustNew(protocol.TagBeginString, "FIX.4.2"),
		field.MustNew(protocol.TagBodyLength, 999),
		field.MustNew(protocol.TagMsgType, "0"),
		field.MustNew(protocol.TagCheckSum, "000"),
	)

	out, err := c.Encode(m)
	require.NoError(t, err)

	want := "8=FIX.4.2\x019=5\x0135=0\x0110=" +
		encoding.FormatChecksum(encoding.CalculateChecksum([]byte("8=FIX.4.2\x019=5\x0135=0\x01"))) + "\x01"
	assert.Equal(t, want, string(out))

	_, err = c.DecodeRaw(out)
	require.NoError(t, err)
}

func TestEncode_DefaultBeginString(t *testing.T) {
	c := MustNewCodec(WithBeginString("FIXT.1.1"))

	out, err := c.Encode(message.NewGeneric(field.MustNew(protocol.TagMsgType, "0")))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "8=FIXT.1.1\x019=5\x01"))
}

func TestEncode_MissingMsgType(t *testing.T) {
	c := MustNewCodec()

	_, err := c.Encode(message.NewGeneric(field.MustNew(protocol.TagAccount, "a")))
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestEncode_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"templates", []Option{WithTemplates(parties)}},
		{"no templates", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := MustNewCodec(tt.opts...)

			m, err := c.Decode([]byte(order))
			require.NoError(t, err)

			out, err := c.Encode(m)
			require.NoError(t, err)
			assert.Equal(t, order, string(out))
		})
	}
}

func TestEncode_Raw(t *testing.T) {
	c := MustNewCodec()

	raw, err := c.DecodeRaw([]byte(order))
	require.NoError(t, err)

	out, err := c.Encode(raw)
	require.NoError(t, err)
	assert.Equal(t, order, string(out))
}

func TestEncode_RawAfterSet(t *testing.T) {
	c := MustNewCodec()

	raw, err := c.DecodeRaw([]byte(order))
	require.NoError(t, err)
	require.NoError(t, raw.SetSeqNum(99))

	out, err := c.Encode(raw)
	require.NoError(t, err)
	assert.Contains(t, string(out), "\x0134=99\x01")
	assert.NotContains(t, string(out), "\x0134=7\x01")

	again, err := c.DecodeRaw(out)
	require.NoError(t, err)
	assert.True(t, raw.Equal(again), "header matches the emitted frame")

	seq, ok := again.SeqNum()
	require.True(t, ok)
	assert.Equal(t, 99, seq)
}

func TestAppendEncode(t *testing.T) {
	c := MustNewCodec()
	m := message.NewGeneric(field.MustNew(protocol.TagMsgType, "0"))

	out, err := c.AppendEncode([]byte(heartbeat), m)
	require.NoError(t, err)
	assert.Equal(t, heartbeat+heartbeat, string(out))
}

func TestRejectReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{errs.ErrBodyLengthMismatch, ReasonBodyLength},
		{fmt.Errorf("wrapped: %w", errs.ErrChecksumMismatch), ReasonChecksum},
		{errs.ErrMalformedFrame, ReasonMalformed},
		{errs.ErrMalformedField, ReasonMalformed},
		{errs.ErrIncompleteFrame, ReasonMalformed},
		{errs.ErrInvalidGroup, ReasonInvalidGroup},
		{errs.ErrValidation, ReasonMissingMsgType},
		{errors.New("boom"), ReasonOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RejectReason(tt.err), tt.err.Error())
	}
}
