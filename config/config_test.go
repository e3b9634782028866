package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aemr3/WTFIX/errs"
	"github.com/aemr3/WTFIX/format"
	"github.com/aemr3/WTFIX/wire"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "FIX.4.4", s.BeginString)
	require.Equal(t, 30, s.HeartbeatTime)
	require.Equal(t, "UTC", s.TimeZone)
	require.True(t, s.Codec.ValidateChecksum)
	require.Equal(t, wire.DefaultMaxFrameSize, s.Codec.MaxFrameSize)
	require.Equal(t, "info", s.Log.Level)
	require.True(t, s.StandardTemplates)

	ct, err := s.Compression()
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, ct)

	reg, err := s.Registry()
	require.NoError(t, err)
	require.True(t, reg.IsCounterTag(215))
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("WTFIX_SENDER_COMP_ID", "J_TRADER")
	t.Setenv("WTFIX_HEARTBEAT_TIME", "15")
	t.Setenv("WTFIX_ARCHIVE_COMPRESSION", "lz4")
	t.Setenv("WTFIX_LOG_LEVEL", "debug")

	s, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "J_TRADER", s.SenderCompID)
	require.Equal(t, 15, s.HeartbeatTime)
	require.Equal(t, "debug", s.Log.Level)

	ct, err := s.Compression()
	require.NoError(t, err)
	require.Equal(t, format.CompressionLZ4, ct)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, "wtfix.yaml", `
begin_string: FIX.4.2
host: 13.84.152.44
port: 35850
sender_comp_id: J_TRADER
target_comp_id: market_data
time_zone: Africa/Johannesburg
standard_templates: false
group_templates:
  "453": [448, 447, 452]
archive:
  compression: s2
`)

	s, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "FIX.4.2", s.BeginString)
	require.Equal(t, 35850, s.Port)
	require.Equal(t, "market_data", s.TargetCompID)
	require.Equal(t, "Africa/Johannesburg", s.TimeZone)

	reg, err := s.Registry()
	require.NoError(t, err)
	require.Equal(t, []int{453}, reg.Counters())

	members, ok := reg.Template(453)
	require.True(t, ok)
	require.Equal(t, []int{448, 447, 452}, members)

	opts, err := s.CodecOptions(nil)
	require.NoError(t, err)

	codec, err := wire.NewCodec(opts...)
	require.NoError(t, err)
	require.Equal(t, "FIX.4.2", codec.BeginString())
	require.True(t, codec.Templates().IsCounterTag(453))
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty begin string", "begin_string: \"\"\n"},
		{"heartbeat", "heartbeat_time: 0\n"},
		{"port", "port: 70000\n"},
		{"time zone", "time_zone: Mars/Olympus\n"},
		{"compression", "archive:\n  compression: brotli\n"},
		{"negative log size", "log:\n  max_size: -1\n"},
		{"log level", "log:\n  level: loud\n"},
		{"template key", "group_templates:\n  abc: [1]\n"},
		{"template members", "group_templates:\n  \"453\": []\n"},
		{"frame size", "codec:\n  max_frame_size: 10\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "wtfix.yaml", tt.content))
			require.ErrorIs(t, err, errs.ErrValidation)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestLoader_Reload(t *testing.T) {
	path := writeFile(t, "wtfix.toml", "sender_comp_id = \"A\"\n")

	l, err := NewLoader(path)
	require.NoError(t, err)
	require.Equal(t, "A", l.Settings().SenderCompID)

	require.NoError(t, os.WriteFile(path, []byte("sender_comp_id = \"B\"\n"), 0o600))
	s, err := l.Reload()
	require.NoError(t, err)
	require.Equal(t, "B", s.SenderCompID)
	require.Equal(t, "B", l.Settings().SenderCompID)

	require.NoError(t, os.WriteFile(path, []byte("heartbeat_time = -1\n"), 0o600))
	_, err = l.Reload()
	require.ErrorIs(t, err, errs.ErrValidation)
	require.Equal(t, "B", l.Settings().SenderCompID)
}

func TestLoader_Watch(t *testing.T) {
	path := writeFile(t, "wtfix.json", `{"sender_comp_id": "A"}`)

	l, err := NewLoader(path)
	require.NoError(t, err)

	var reloads atomic.Int32
	l.Watch(func(_ *Settings, err error) {
		if err == nil {
			reloads.Add(1)
		}
	})

	require.NoError(t, os.WriteFile(path, []byte(`{"sender_comp_id": "B"}`), 0o600))

	require.Eventually(t, func() bool {
		return l.Settings().SenderCompID == "B"
	}, 5*time.Second, 20*time.Millisecond)
	require.Positive(t, reloads.Load())
}
