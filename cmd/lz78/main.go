// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lz78/lz78/cmd/lz78

// Command lz78 is the external CLI collaborator for the lz78 package: it
// owns argument parsing, file opening, and the EAGAIN retry loop that the
// engine package deliberately stays out of (see the package's design notes
// on why ErrWouldBlock is surfaced to the caller instead of retried
// internally).
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/go-lz78/lz78"
	"github.com/go-lz78/lz78/fdio"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lz78: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		inputPath  string
		outputPath string
		decompress bool
		bufSize    string
		dictSize   string
		configPath string
		verbose    bool
	)

	flagSet := pflag.NewFlagSet("lz78", pflag.ContinueOnError)
	flagSet.StringVarP(&inputPath, "input", "i", "-", "input source (\"-\" for stdin)")
	flagSet.StringVarP(&outputPath, "output", "o", "-", "output destination (\"-\" for stdout)")
	flagSet.BoolVarP(&decompress, "decompress", "d", false, "decompress instead of compress")
	flagSet.StringVarP(&bufSize, "buffer", "b", "", "compressed-output buffer size, compress mode only, e.g. 64K, 1M (default 1M)")
	flagSet.StringVarP(&dictSize, "dict", "a", "", "dictionary size, compress mode only (default 4096)")
	flagSet.StringVar(&configPath, "config", "", "optional YAML file with default buffer/dict sizes")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log EAGAIN retries (dictionary swaps are not logged)")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := loadDefaults(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if bufSize != "" {
		cfg.BufCapacityBits = uint32(lz78.ParseSize(bufSize)) * 8
	}
	if dictSize != "" {
		cfg.DictSize = uint32(lz78.ParseSize(dictSize))
	}

	var logger *slog.Logger
	if verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	src, closeSrc, err := openInput(inputPath)
	if err != nil {
		return err
	}
	defer closeSrc()

	dst, closeDst, err := openOutput(outputPath)
	if err != nil {
		return err
	}
	defer closeDst()

	if decompress {
		return runDecompress(dst, src, logger)
	}
	return runCompress(dst, src, cfg, logger)
}

func openInput(path string) (io.Reader, func() error, error) {
	if path == "-" {
		f, err := fdio.NewStdin()
		if err != nil {
			return nil, nil, fmt.Errorf("open stdin: %w", err)
		}
		return f, func() error { return nil }, nil
	}
	f, err := fdio.Open(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("open input %s: %w", path, err)
	}
	return f, f.Close, nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "-" {
		f, err := fdio.NewStdout()
		if err != nil {
			return nil, nil, fmt.Errorf("open stdout: %w", err)
		}
		return f, func() error { return nil }, nil
	}
	f, err := fdio.Open(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open output %s: %w", path, err)
	}
	return f, f.Close, nil
}

func runCompress(dst io.Writer, src io.Reader, cfg lz78.Config, logger *slog.Logger) error {
	eng := lz78.NewCompressEngine(cfg)
	return retryUntilDone(logger, func() error { return eng.Compress(dst, src) })
}

func runDecompress(dst io.Writer, src io.Reader, logger *slog.Logger) error {
	eng := lz78.NewDecompressEngine()
	return retryUntilDone(logger, func() error { return eng.Decompress(dst, src) })
}

// retryUntilDone is the EAGAIN retry loop the engine package deliberately
// does not implement itself: it calls step repeatedly, backing off briefly
// each time step reports ErrWouldBlock, until step reports nil or a real
// error.
func retryUntilDone(logger *slog.Logger, step func() error) error {
	backoff := time.Millisecond
	const maxBackoff = 50 * time.Millisecond

	for {
		err := step()
		if err == nil {
			return nil
		}
		if !errors.Is(err, lz78.ErrWouldBlock) {
			return err
		}
		if logger != nil {
			logger.Debug("would block, retrying", "backoff", backoff)
		}
		time.Sleep(backoff)
		if backoff < maxBackoff {
			backoff *= 2
		}
	}
}
