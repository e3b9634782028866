// Package config loads WTFIX settings from defaults, an optional file and the
// environment.
//
// Values are resolved in this order, later sources winning:
//
//  1. built-in defaults (FIX.4.4, 30 second heartbeat, ...)
//  2. a yaml, toml or json file, when a path is given
//  3. WTFIX_ prefixed environment variables, with "." replaced by "_"
//     (WTFIX_SENDER_COMP_ID, WTFIX_ARCHIVE_COMPRESSION, WTFIX_LOG_LEVEL)
//
// Settings are validated with go-playground/validator after every load.
package config

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync"
	_ "time/tzdata" // embedded zoneinfo for the timezone validator

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/aemr3/WTFIX/errs"
	"github.com/aemr3/WTFIX/format"
	"github.com/aemr3/WTFIX/logging"
	"github.com/aemr3/WTFIX/protocol"
	"github.com/aemr3/WTFIX/template"
	"github.com/aemr3/WTFIX/wire"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "WTFIX"

// Settings is the complete configuration.
type Settings struct {
	BeginString   string `mapstructure:"begin_string"   validate:"required"`
	HeartbeatTime int    `mapstructure:"heartbeat_time" validate:"min=1"`
	SenderCompID  string `mapstructure:"sender_comp_id"`
	TargetCompID  string `mapstructure:"target_comp_id"`
	Host          string `mapstructure:"host"`
	Port          int    `mapstructure:"port"           validate:"min=0,max=65535"`
	Username      string `mapstructure:"username"`
	Password      string `mapstructure:"password"`
	Debug         bool   `mapstructure:"debug"`
	TimeZone      string `mapstructure:"time_zone"      validate:"required,timezone"`

	Codec   CodecSettings   `mapstructure:"codec"`
	Archive ArchiveSettings `mapstructure:"archive"`
	Log     logging.Config  `mapstructure:"log"`

	// GroupTemplates maps a counter tag to its member tags, e.g. "453": [448, 447, 452].
	GroupTemplates map[string][]int `mapstructure:"group_templates"`
	// StandardTemplates includes template.Standard() under GroupTemplates.
	StandardTemplates bool `mapstructure:"standard_templates"`
}

// CodecSettings configures the frame codec.
type CodecSettings struct {
	ValidateChecksum bool `mapstructure:"validate_checksum"`
	MaxFrameSize     int  `mapstructure:"max_frame_size" validate:"min=64"`
}

// ArchiveSettings configures frame archives.
type ArchiveSettings struct {
	// Compression is none, zstd, s2 or lz4.
	Compression string `mapstructure:"compression"`
}

// defaults mirror a typical FIX 4.4 client session.
var defaults = map[string]any{
	"begin_string":            protocol.DefaultBeginString,
	"heartbeat_time":          30,
	"sender_comp_id":          "",
	"target_comp_id":          "",
	"host":                    "",
	"port":                    0,
	"username":                "",
	"password":                "",
	"debug":                   false,
	"time_zone":               "UTC",
	"codec.validate_checksum": true,
	"codec.max_frame_size":    wire.DefaultMaxFrameSize,
	"archive.compression":     "zstd",
	"log.level":               "info",
	"log.format":              "json",
	"log.module":              "wtfix",
	"log.file":                "",
	"log.max_size":            100,
	"log.max_backups":         3,
	"log.max_age":             28,
	"log.compress":            false,
	"group_templates":         map[string][]int{},
	"standard_templates":      true,
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Loader reads settings and keeps the latest valid copy.
type Loader struct {
	v    *viper.Viper
	path string

	mu      sync.RWMutex
	current *Settings
}

// NewLoader creates a loader and performs the first load. An empty path uses defaults
// and the environment only.
func NewLoader(path string) (*Loader, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config error: %w", err)
		}
	}

	l := &Loader{v: v, path: path}
	s, err := l.decode()
	if err != nil {
		return nil, err
	}
	l.current = s

	return l, nil
}

// Load is NewLoader followed by Settings.
func Load(path string) (*Settings, error) {
	l, err := NewLoader(path)
	if err != nil {
		return nil, err
	}

	return l.Settings(), nil
}

func (l *Loader) decode() (*Settings, error) {
	s := &Settings{}
	if err := l.v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("unmarshal config error: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Settings returns the latest valid settings. The value must not be modified.
func (l *Loader) Settings() *Settings {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.current
}

// Reload re-reads the file and swaps in the result when it is valid.
func (l *Loader) Reload() (*Settings, error) {
	if l.path != "" {
		if err := l.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config error: %w", err)
		}
	}

	s, err := l.decode()
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.current = s
	l.mu.Unlock()

	return s, nil
}

// Watch reloads the settings whenever the file changes and calls onChange with the
// outcome. Invalid files leave the current settings in place. Watch is a no-op without
// a file.
func (l *Loader) Watch(onChange func(*Settings, error)) {
	if l.path == "" {
		return
	}

	l.v.OnConfigChange(func(event fsnotify.Event) {
		if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
			return
		}

		slog.Info("detecting config change", slog.String("file", event.Name))
		s, err := l.decode()
		if err != nil {
			slog.Error("reload config failed", slog.Any("error", err))
		} else {
			l.mu.Lock()
			l.current = s
			l.mu.Unlock()
		}
		if onChange != nil {
			onChange(s, err)
		}
	})
	l.v.WatchConfig()
}

// Validate checks field constraints and the group templates.
func (s *Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: config validation failed: %w", errs.ErrValidation, err)
	}
	if _, err := s.Registry(); err != nil {
		return err
	}
	if _, err := s.Compression(); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrValidation, err)
	}

	return nil
}

// Registry builds the group template registry.
func (s *Settings) Registry() (*template.Registry, error) {
	custom, err := s.templates()
	if err != nil {
		return nil, err
	}

	reg := template.MustNewRegistry(nil)
	if s.StandardTemplates {
		reg = template.Standard()
	}
	if err := reg.Add(custom); err != nil {
		return nil, err
	}

	return reg, nil
}

func (s *Settings) templates() (map[int][]int, error) {
	out := make(map[int][]int, len(s.GroupTemplates))
	for _, key := range slices.Sorted(maps.Keys(s.GroupTemplates)) {
		counter, err := strconv.Atoi(key)
		if err != nil || counter <= 0 {
			return nil, fmt.Errorf("%w: group template key %q is not a tag number", errs.ErrValidation, key)
		}
		out[counter] = s.GroupTemplates[key]
	}

	return out, nil
}

// Compression parses the archive compression.
func (s *Settings) Compression() (format.CompressionType, error) {
	return format.ParseCompression(s.Archive.Compression)
}

// CodecOptions returns the wire options described by the settings. The logger may be
// nil.
func (s *Settings) CodecOptions(logger *slog.Logger) ([]wire.Option, error) {
	reg, err := s.Registry()
	if err != nil {
		return nil, err
	}

	return []wire.Option{
		wire.WithBeginString(s.BeginString),
		wire.WithTemplates(reg),
		wire.WithValidateChecksum(s.Codec.ValidateChecksum),
		wire.WithMaxFrameSize(s.Codec.MaxFrameSize),
		wire.WithLogger(logger),
	}, nil
}
