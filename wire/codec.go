package wire

import (
	"fmt"
	"log/slog"

	"github.com/aemr3/WTFIX/errs"
	"github.com/aemr3/WTFIX/internal/options"
	"github.com/aemr3/WTFIX/protocol"
	"github.com/aemr3/WTFIX/template"
)

// DefaultMaxFrameSize bounds the frames accepted by SplitFrames and Scanner.
const DefaultMaxFrameSize = 1024 * 1024

// Config holds Codec settings.
type Config struct {
	beginString      string
	templates        *template.Registry
	observer         Observer
	logger           *slog.Logger
	validateChecksum bool
	maxFrameSize     int
}

// Option configures a Codec.
type Option = options.Option[*Config]

// WithBeginString sets the BeginString written for messages that carry none.
func WithBeginString(beginString string) Option {
	return options.New(func(c *Config) error {
		if beginString == "" {
			return fmt.Errorf("%w: empty BeginString", errs.ErrValidation)
		}
		c.beginString = beginString

		return nil
	})
}

// WithTemplates sets the group templates used by Parse. The codec keeps a snapshot.
func WithTemplates(reg *template.Registry) Option {
	return options.NoError(func(c *Config) {
		c.templates = reg.Clone()
	})
}

// WithObserver registers an observer for decode, encode and rejection events.
func WithObserver(o Observer) Option {
	return options.NoError(func(c *Config) {
		if o == nil {
			o = NopObserver{}
		}
		c.observer = o
	})
}

// WithLogger sets the logger used to report rejected frames at debug level.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *Config) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// WithValidateChecksum enables or disables CheckSum verification on decode. It is
// enabled by default.
func WithValidateChecksum(validate bool) Option {
	return options.NoError(func(c *Config) {
		c.validateChecksum = validate
	})
}

// WithMaxFrameSize bounds the frame size accepted by stream splitting.
func WithMaxFrameSize(n int) Option {
	return options.New(func(c *Config) error {
		if n <= 0 {
			return fmt.Errorf("%w: max frame size must be positive, got %d", errs.ErrValidation, n)
		}
		c.maxFrameSize = n

		return nil
	})
}

// Codec decodes and encodes frames. It is immutable after construction and safe for
// concurrent use.
type Codec struct {
	cfg Config
}

// NewCodec creates a codec. Without options it writes protocol.DefaultBeginString,
// verifies checksums and parses without group templates.
func NewCodec(opts ...Option) (*Codec, error) {
	cfg := Config{
		beginString:      protocol.DefaultBeginString,
		templates:        template.MustNewRegistry(nil),
		observer:         NopObserver{},
		logger:           slog.New(slog.DiscardHandler),
		validateChecksum: true,
		maxFrameSize:     DefaultMaxFrameSize,
	}

	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Codec{cfg: cfg}, nil
}

// MustNewCodec is NewCodec that panics on error.
func MustNewCodec(opts ...Option) *Codec {
	c, err := NewCodec(opts...)
	if err != nil {
		panic(err)
	}

	return c
}

// BeginString returns the default BeginString.
func (c *Codec) BeginString() string {
	return c.cfg.beginString
}

// Templates returns a snapshot of the codec's group templates.
func (c *Codec) Templates() *template.Registry {
	return c.cfg.templates.Clone()
}

// MaxFrameSize returns the largest frame accepted from streams.
func (c *Codec) MaxFrameSize() int {
	return c.cfg.maxFrameSize
}

func (c *Codec) reject(err error, frame []byte) error {
	reason := RejectReason(err)
	c.cfg.observer.FrameRejected(reason)
	c.cfg.logger.Debug("frame rejected",
		slog.String("reason", reason),
		slog.Int("size", len(frame)),
		slog.Any("error", err),
	)

	return err
}
