// Command fixdump decodes a stream of FIX frames and prints one line per message.
//
// Frames are read from a file or stdin. Each valid frame is printed and, when an archive
// path is given, added to a compressed archive written at the end:
//
//	fixdump -i session.log --delimiter '|' --archive session.wtfa --compression zstd
//	fixdump -c config.yaml --format raw --skip-invalid --metrics < capture.bin
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/aemr3/WTFIX/archive"
	"github.com/aemr3/WTFIX/config"
	"github.com/aemr3/WTFIX/format"
	"github.com/aemr3/WTFIX/logging"
	"github.com/aemr3/WTFIX/message"
	"github.com/aemr3/WTFIX/metrics"
	"github.com/aemr3/WTFIX/protocol"
	"github.com/aemr3/WTFIX/wire"
)

const (
	formatNamed = "named"
	formatPlain = "plain"
	formatRaw   = "raw"
)

type options struct {
	config      string
	input       string
	format      string
	delimiter   string
	archive     string
	compression string
	logLevel    string
	skipInvalid bool
	metrics     bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)

		return 2
	}

	if err := dump(opts, stdin, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "fixdump: %v\n", err)

		return 1
	}

	return 0
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}

	fs := pflag.NewFlagSet("fixdump", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.config, "config", "c", "", "settings file (yaml, toml or json)")
	fs.StringVarP(&opts.input, "input", "i", "-", "input file, - for stdin")
	fs.StringVarP(&opts.format, "format", "f", formatNamed, "output format: named, plain or raw")
	fs.StringVarP(&opts.delimiter, "delimiter", "d", "", "single byte used instead of SOH in the input, e.g. '|'")
	fs.StringVarP(&opts.archive, "archive", "a", "", "write valid frames to this archive file")
	fs.StringVar(&opts.compression, "compression", "", "archive compression: none, zstd, s2 or lz4 (default from settings)")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level override")
	fs.BoolVar(&opts.skipInvalid, "skip-invalid", false, "skip frames that fail validation instead of stopping")
	fs.BoolVar(&opts.metrics, "metrics", false, "print frame counters when done")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	switch opts.format {
	case formatNamed, formatPlain, formatRaw:
	default:
		return nil, fmt.Errorf("invalid format %q", opts.format)
	}
	if len(opts.delimiter) > 1 {
		return nil, fmt.Errorf("delimiter must be a single byte, got %q", opts.delimiter)
	}

	return opts, nil
}

func dump(opts *options, stdin io.Reader, stdout, stderr io.Writer) error {
	settings, err := config.Load(opts.config)
	if err != nil {
		return err
	}

	logCfg := settings.Log
	logCfg.Module = "fixdump"
	if opts.logLevel != "" {
		logCfg.Level = opts.logLevel
	}
	var logger *logging.Logger
	if logCfg.File != "" {
		logger = logging.New(logCfg)
	} else {
		logger = logging.NewWithWriter(logCfg, stderr)
	}
	defer logger.Close()

	collector := metrics.New("wtfix")
	codecOpts, err := settings.CodecOptions(logger.Logger)
	if err != nil {
		return err
	}
	codec, err := wire.NewCodec(append(codecOpts, wire.WithObserver(collector))...)
	if err != nil {
		return err
	}

	var aw *archive.Writer
	if opts.archive != "" {
		aw, err = newArchiveWriter(opts, settings, codecOpts, logger)
		if err != nil {
			return err
		}
	}

	in, err := openInput(opts, stdin)
	if err != nil {
		return err
	}
	defer in.Close()

	r := io.Reader(in)
	if opts.delimiter != "" {
		data, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		r = bytes.NewReader(bytes.ReplaceAll(data, []byte(opts.delimiter), []byte{protocol.SOH}))
	}

	sc := wire.NewScanner(r, codec)
	if opts.skipInvalid {
		sc.SkipInvalid()
	}

	count, unparsed := 0, 0
	for sc.Scan() {
		line, err := render(opts.format, sc)
		if err != nil {
			if !opts.skipInvalid {
				return fmt.Errorf("frame %d: %w", count+sc.Skipped()+unparsed+1, err)
			}
			logger.Warn("frame not parsed", "seq_num", sc.Raw().GetOr(protocol.TagMsgSeqNum, ""), "error", err)
			unparsed++

			continue
		}
		if _, err := fmt.Fprintln(stdout, line); err != nil {
			return err
		}
		if aw != nil {
			if err := aw.Add(sc.Frame()); err != nil {
				return err
			}
		}
		count++
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("frame %d: %w", count+sc.Skipped()+unparsed+1, err)
	}

	logger.Info("input processed", "frames", count, "skipped", sc.Skipped(), "unparsed", unparsed)

	if aw != nil {
		if err := writeArchive(opts.archive, aw); err != nil {
			return err
		}
		stats := aw.Stats()
		logger.Info("archive written", "path", opts.archive, "frames", aw.Len(),
			"compression", stats.Algorithm.String(), "savings", stats.SpaceSavings())
	}

	if opts.metrics {
		return printCounts(stdout, collector)
	}

	return nil
}

// newArchiveWriter validates with its own codec so archived frames are not counted
// twice by the collector.
func newArchiveWriter(opts *options, settings *config.Settings, codecOpts []wire.Option, logger *logging.Logger) (*archive.Writer, error) {
	ct, err := settings.Compression()
	if opts.compression != "" {
		ct, err = format.ParseCompression(opts.compression)
	}
	if err != nil {
		return nil, err
	}

	codec, err := wire.NewCodec(codecOpts...)
	if err != nil {
		return nil, err
	}

	return archive.NewWriter(
		archive.WithCompression(ct),
		archive.WithCodec(codec),
		archive.WithLogger(logger.Logger),
	)
}

func openInput(opts *options, stdin io.Reader) (io.ReadCloser, error) {
	if opts.input == "-" {
		return io.NopCloser(stdin), nil
	}

	f, err := os.Open(opts.input)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	return f, nil
}

// render formats the current frame. Raw output shows SOH as '|'.
func render(outFormat string, sc *wire.Scanner) (string, error) {
	if outFormat == formatRaw {
		return string(bytes.ReplaceAll(sc.Frame(), []byte{protocol.SOH}, []byte{'|'})), nil
	}

	m, err := sc.Message()
	if err != nil {
		return "", err
	}

	return describe(m, outFormat), nil
}

func describe(m message.Message, outFormat string) string {
	if outFormat == formatPlain {
		return m.String()
	}

	return m.Named()
}

func writeArchive(path string, aw *archive.Writer) error {
	data, err := aw.Finish()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write archive: %w", err)
	}

	return nil
}

func printCounts(w io.Writer, collector *metrics.Collector) error {
	counts, err := collector.Counts()
	if err != nil {
		return err
	}

	for _, c := range counts {
		if _, err := fmt.Fprintf(w, "%s{%s} %g\n", c.Metric, c.Label, c.Value); err != nil {
			return err
		}
	}

	return nil
}
