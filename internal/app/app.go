/*
Package app contains the huffstat command line application.
*/
package app

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	huffman "github.com/chronos-tachyon/huffstat"
	"github.com/chronos-tachyon/huffstat/internal/config"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"
)

// Version is the application version, set at build time.
var Version = "0.1.0-dev"

// Exit codes returned by ExitCode.
const (
	ExitOK        = 0
	ExitUsage     = 1
	ExitInvariant = 2
)

var (
	errArgCount    = errors.New("expected exactly one source path")
	errEmptySource = errors.New("source is empty")
)

var flags = []cli.Flag{
	cli.StringFlag{
		Name:  "config, c",
		Usage: "path to a YAML configuration file",
	},
	cli.IntFlag{
		Name:  "top, n",
		Value: config.DefaultTopSymbols,
		Usage: "number of most frequent symbols to list (0 lists all)",
	},
	cli.UintFlag{
		Name:  "width, w",
		Value: config.DefaultFixedWidth,
		Usage: "bits per uncompressed symbol used as the baseline",
	},
	cli.StringFlag{
		Name:  "encoding, e",
		Value: config.EncodingBytes,
		Usage: "how to split the source into symbols: bytes, latin1, cp1252 or utf8",
	},
	cli.BoolFlag{
		Name:  "canonical",
		Usage: "report canonical codes (same lengths, same statistics)",
	},
	cli.BoolFlag{
		Name:  "debug, d",
		Usage: "enable debug logging (overrides configuration)",
	},
}

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "huffstat\nVersion: %s\nGoVersion: %s\n",
		Version,
		runtime.Version(),
	)
}

// New creates a huffstat instance of [cli.App].
func New() *cli.App {
	return newApp(nil)
}

// newApp creates the application.  A nil log makes every run build its own
// logger from the configuration.
func newApp(log *zap.Logger) *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "huffstat"
	ctl.Version = Version
	ctl.Usage = "Report Huffman codes and compression statistics for a file"
	ctl.ArgsUsage = "<source>"
	ctl.ErrWriter = os.Stderr
	ctl.Flags = flags
	ctl.Action = func(c *cli.Context) error {
		return analyzeFile(c, log)
	}
	return ctl
}

// ExitCode maps an error returned by the application to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, huffman.ErrInvariantViolation):
		return ExitInvariant
	default:
		return ExitUsage
	}
}

// getConfig loads the configuration file (if any) and applies flags that
// were explicitly set on top of it.
func getConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		cfg, err = config.LoadFile(path)
		if err != nil {
			return config.Config{}, err
		}
	}
	if c.IsSet("top") {
		cfg.TopSymbols = c.Int("top")
	}
	if c.IsSet("width") {
		cfg.FixedWidth = c.Uint("width")
	}
	if c.IsSet("encoding") {
		cfg.Encoding = c.String("encoding")
	}
	if c.IsSet("canonical") {
		cfg.Canonical = c.Bool("canonical")
	}
	return cfg, cfg.Validate()
}

func analyzeFile(c *cli.Context, log *zap.Logger) error {
	if c.NArg() != 1 {
		return fmt.Errorf("%w, got %d", errArgCount, c.NArg())
	}
	path := c.Args().First()

	cfg, err := getConfig(c)
	if err != nil {
		return err
	}

	if log == nil {
		log, err = newLogger(c.Bool("debug"), cfg)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read source: %w", err)
	}
	if len(data) == 0 {
		return fmt.Errorf("%s: %w", path, errEmptySource)
	}
	log.Debug("read source", zap.String("path", path), zap.Int("bytes", len(data)))

	symbols, err := toSymbols(data, cfg.Encoding)
	if err != nil {
		return err
	}

	res, err := huffman.Compute(symbols, cfg.FixedWidth)
	if err != nil {
		log.Error("pipeline failed", zap.String("path", path), zap.Error(err))
		return err
	}
	codes := res.Codes
	if cfg.Canonical {
		codes = codes.Canonical()
	}
	log.Debug("built code",
		zap.Uint64("symbols", res.Report.TotalSymbols),
		zap.Int("distinct", res.Report.DistinctSymbols),
		zap.Int("depth", res.Tree.Depth()),
		zap.Bool("canonical", cfg.Canonical))

	return writeReport(c.App.Writer, reportParams{
		Path:    path,
		Table:   res.Table,
		Codes:   codes,
		Report:  res.Report,
		TopSize: cfg.TopSymbols,
	})
}

// toSymbols splits raw source bytes into symbols per the configured encoding.
func toSymbols(data []byte, encoding string) ([]huffman.Symbol, error) {
	switch encoding {
	case config.EncodingBytes:
		return huffman.SymbolsFromBytes(data), nil
	case config.EncodingLatin1:
		return decodeCharmap(charmap.ISO8859_1, data)
	case config.EncodingCP1252:
		return decodeCharmap(charmap.Windows1252, data)
	case config.EncodingUTF8:
		return huffman.SymbolsFromString(string(data)), nil
	}
	return nil, fmt.Errorf("unsupported encoding %q", encoding)
}

func decodeCharmap(cm *charmap.Charmap, data []byte) ([]huffman.Symbol, error) {
	decoded, err := cm.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode source as %s: %w", cm, err)
	}
	return huffman.SymbolsFromString(string(decoded)), nil
}
