// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"prompt-scan/internal/config"
	"prompt-scan/internal/detector"
	textfmt "prompt-scan/internal/formatters/text"
	"prompt-scan/internal/help"
	"prompt-scan/internal/loaders"
	pdfload "prompt-scan/internal/loaders/pdf"
	wordload "prompt-scan/internal/loaders/word"
	"prompt-scan/internal/report"
	"prompt-scan/internal/scanner"
	"prompt-scan/internal/version"
)

func main() {
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	quiet := flag.Bool("quiet", false, "Suppress save notices (useful for scripts and CI/CD)")
	showHelp := flag.Bool("help", false, "Show help information")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Usage = printUsage
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		return
	}
	if *showHelp {
		help.ShowHelp(*noColor)
		return
	}

	files := flag.Args()
	if len(files) == 0 {
		printUsage()
		os.Exit(1)
	}

	cfg := config.LoadConfigOrDefault(*configFile)
	if cfg.Defaults.Debug {
		*debug = true
	}
	if cfg.Defaults.NoColor {
		*noColor = true
	}
	if cfg.Defaults.Quiet {
		*quiet = true
	}

	// Auto-detect non-interactive environment
	if !isTerminal(os.Stderr) || os.Getenv("CI") != "" {
		*noColor = true
	}

	logger := newLogger(*debug, *noColor)

	patterns := detector.DefaultPatterns()
	if len(cfg.Patterns.Additional) > 0 {
		patterns = patterns.Extend(cfg.Patterns.Additional...)
		logger.Debug().Int("patterns", patterns.Len()).Msg("pattern set extended from config")
	}

	formatter := textfmt.NewFormatter(*noColor)
	writer := report.NewWriter(cfg.Output.Directory)

	// Files are processed strictly in order; a failed file is reported and
	// excluded from export and consolidation, and the run continues.
	var order []string
	results := make(map[string]*detector.ScanResult)

	for _, path := range files {
		result, err := scanFile(path, patterns, logger)
		if err != nil {
			logger.Error().Str("file", path).Err(err).Msg("failed to process file")
			continue
		}

		order = append(order, path)
		results[path] = result

		if err := formatter.Print(os.Stdout, path, result); err != nil {
			logger.Error().Str("file", path).Err(err).Msg("failed to print results")
		}

		csvPath, xlsxPath, err := writer.WriteFileReports(path, result)
		if err != nil {
			logger.Error().Str("file", path).Err(err).Msg("failed to write reports")
			continue
		}
		if !*quiet {
			formatter.SavedNotice(os.Stdout, csvPath, xlsxPath)
		}
	}

	if len(order) > 1 {
		csvPath, xlsxPath, err := writer.WriteConsolidated(order, results)
		if err != nil {
			logger.Error().Err(err).Msg("failed to write consolidated reports")
			return
		}
		if !*quiet {
			formatter.ConsolidatedNotice(os.Stdout, csvPath, xlsxPath)
		}
	}
}

// scanFile loads and scans a single document. Every error path here is
// per-file: the caller logs it and moves on to the next input.
func scanFile(path string, patterns *detector.PatternSet, logger zerolog.Logger) (*detector.ScanResult, error) {
	kind, err := loaders.Detect(path)
	if err != nil {
		return nil, err
	}

	switch kind {
	case loaders.KindPDF:
		doc, err := pdfload.Open(path, logger)
		if err != nil {
			return nil, err
		}
		return scanner.ScanPDF(doc, patterns), nil
	case loaders.KindWord:
		doc, err := wordload.Open(path)
		if err != nil {
			return nil, err
		}
		return scanner.ScanWord(doc, patterns), nil
	default:
		return nil, &loaders.UnsupportedFileTypeError{Path: path}
	}
}

func newLogger(debug, noColor bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: noColor}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: prompt-scan [options] <file1.pdf|file1.docx> [file2.pdf|file2.docx] ...")
	fmt.Fprintln(os.Stderr, "Run 'prompt-scan -help' for details.")
}

// isTerminal checks if the given file is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
