package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aemr3/WTFIX/errs"
)

func TestDefaultDirectory(t *testing.T) {
	name, err := NameFor(TagMsgType)
	require.NoError(t, err)
	require.Equal(t, "MsgType", name)

	tag, err := ResolveName("NoPartyIDs")
	require.NoError(t, err)
	require.Equal(t, TagNoPartyIDs, tag)

	kind, err := TypeName(MsgTypeLogon)
	require.NoError(t, err)
	require.Equal(t, "Logon", kind)
}

func TestDefaultDirectory_BacksPackageLookups(t *testing.T) {
	var d Directory = FIX44

	for _, tag := range []int{TagBeginString, TagMsgType, TagNoPartyIDs} {
		want, err := d.NameFor(tag)
		require.NoError(t, err)

		got, err := NameFor(tag)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	want, err := d.TypeName(MsgTypeLogon)
	require.NoError(t, err)
	got, err := TypeName(MsgTypeLogon)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestDefaultDirectory_Unknown(t *testing.T) {
	_, err := NameFor(999999)
	require.ErrorIs(t, err, errs.ErrUnknownTag)

	_, err = ResolveName("NotATag")
	require.ErrorIs(t, err, errs.ErrUnknownTag)

	_, err = TypeName("ZZZ")
	require.ErrorIs(t, err, errs.ErrUnknownType)
}

func TestDefaultDirectory_Bijective(t *testing.T) {
	for tag, name := range tagNames {
		got, err := ResolveName(name)
		require.NoError(t, err, name)
		require.Equal(t, tag, got, name)
	}
}

func TestStaticDirectory_CopiesTables(t *testing.T) {
	tags := map[int]string{5001: "VenueFlag"}
	types := map[string]string{"U1": "VenueNotice"}
	d := NewStaticDirectory(tags, types)

	tags[5001] = "Changed"
	delete(types, "U1")

	name, err := d.NameFor(5001)
	require.NoError(t, err)
	require.Equal(t, "VenueFlag", name)

	tag, err := d.TagFor("VenueFlag")
	require.NoError(t, err)
	require.Equal(t, 5001, tag)

	kind, err := d.TypeName("U1")
	require.NoError(t, err)
	require.Equal(t, "VenueNotice", kind)

	_, err = d.NameFor(TagMsgType)
	require.ErrorIs(t, err, errs.ErrUnknownTag)
}

func TestDisplayName(t *testing.T) {
	require.Equal(t, "HeartBtInt", DisplayName(TagHeartBtInt))
	require.Equal(t, "777777", DisplayName(777777))
}

func TestIsFramingTag(t *testing.T) {
	for _, tag := range []int{TagBeginString, TagBodyLength, TagCheckSum} {
		require.True(t, IsFramingTag(tag), tag)
	}
	require.False(t, IsFramingTag(TagMsgType))
	require.False(t, IsFramingTag(TagMsgSeqNum))
}
