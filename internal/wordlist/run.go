package wordlist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"wordsieve/internal/config"
	"wordsieve/internal/fileutil"
	"wordsieve/internal/logging"
	"wordsieve/internal/textenc"
)

// Options describes one filter run.
type Options struct {
	InputPath  string
	OutputPath string
	Cutoff     int64
	ASCIIOnly  bool
	Encoding   textenc.Encoding
}

// OptionsFromConfig builds run options from a validated configuration.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	if cfg == nil {
		return Options{}, errors.New("config is required")
	}
	enc, err := textenc.Lookup(cfg.Input.Encoding)
	if err != nil {
		return Options{}, fmt.Errorf("input.encoding: %w", err)
	}
	return Options{
		InputPath:  cfg.Input.Path,
		OutputPath: cfg.Output.Path,
		Cutoff:     cfg.Filter.Cutoff,
		ASCIIOnly:  cfg.Filter.ASCIIOnly,
		Encoding:   enc,
	}, nil
}

// Run filters the wordlist at opts.InputPath and writes accepted words to
// opts.OutputPath, creating or truncating it. The output is opened only after
// the input has been read completely. A zero-value Encoding means UTF-8.
func Run(ctx context.Context, opts Options, logger *slog.Logger) (Summary, error) {
	logger = logging.NewComponentLogger(logger, "wordlist")
	start := time.Now()

	filter := Filter{Cutoff: opts.Cutoff, ASCIIOnly: opts.ASCIIOnly}

	logger.Debug("reading wordlist",
		logging.String(logging.FieldPath, opts.InputPath),
		logging.Int64("cutoff", opts.Cutoff),
		logging.Bool("ascii_only", opts.ASCIIOnly),
		logging.String("encoding", encodingName(opts.Encoding)),
	)

	var (
		words   []string
		summary Summary
	)
	err := fileutil.WithReader(opts.InputPath, func(r io.Reader) error {
		var err error
		words, summary, err = filter.Apply(ctx, opts.Encoding.NewReader(r))
		return err
	})
	if err != nil {
		attrs := []any{logging.String(logging.FieldPath, opts.InputPath), logging.Error(err)}
		var lineErr *LineError
		if errors.As(err, &lineErr) {
			attrs = append(attrs, logging.Int(logging.FieldLine, lineErr.Line))
		}
		logger.Debug("wordlist read failed", attrs...)
		return summary, fmt.Errorf("read wordlist: %w", err)
	}

	logger.Debug("writing wordlist",
		logging.String(logging.FieldPath, opts.OutputPath),
		logging.Int("words", len(words)),
	)

	err = fileutil.WithWriter(opts.OutputPath, func(w io.Writer) error {
		enc := opts.Encoding.NewWriter(w)
		if err := WriteWords(enc, words); err != nil {
			_ = enc.Close()
			return err
		}
		return enc.Close()
	})
	if err != nil {
		logger.Debug("wordlist write failed",
			logging.String(logging.FieldPath, opts.OutputPath),
			logging.Error(err),
		)
		return summary, fmt.Errorf("write wordlist: %w", err)
	}

	logger.Info("wordlist filtered",
		logging.String(logging.FieldEventType, "filter_complete"),
		logging.Int("lines", summary.Lines),
		logging.Int("accepted", summary.Accepted),
		logging.Int("below_cutoff", summary.BelowCutoff),
		logging.Int("rejected", summary.Rejected),
		logging.Duration("elapsed", time.Since(start)),
	)
	return summary, nil
}

func encodingName(enc textenc.Encoding) string {
	if enc.Name == "" {
		return "utf-8"
	}
	return enc.Name
}
