// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"

	"prompt-scan/internal/detector"
)

// ShowHelp prints the full usage screen.
func ShowHelp(noColor bool) {
	if noColor {
		color.NoColor = true
	}

	title := color.New(color.FgWhite, color.Bold)
	subtitle := color.New(color.FgCyan, color.Bold)

	title.Println("prompt-scan - Prompt-injection scanner for PDF and Word documents")
	fmt.Println()
	fmt.Println("Scans document text, metadata and embedded scripts for phrases that")
	fmt.Println("resemble prompt-injection attempts, and surfaces text rendered invisible")
	fmt.Println("(white on white) or abnormally small.")
	fmt.Println()

	subtitle.Println("USAGE")
	fmt.Println("  prompt-scan [options] <file.pdf|file.docx> [more files...]")
	fmt.Println()

	subtitle.Println("OPTIONS")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  -config string\tPath to configuration file (YAML)")
	fmt.Fprintln(w, "  -debug\tEnable debug logging")
	fmt.Fprintln(w, "  -no-color\tDisable colored output")
	fmt.Fprintln(w, "  -quiet\tSuppress save notices")
	fmt.Fprintln(w, "  -version\tShow version information")
	fmt.Fprintln(w, "  -help\tShow this help")
	w.Flush()
	fmt.Println()

	subtitle.Println("OUTPUTS")
	fmt.Println("  For each input X.ext: X_results.csv and X_results.xlsx next to the input,")
	fmt.Println("  plus the full result printed to stdout. With two or more inputs, a")
	fmt.Println("  consolidated_results.csv/.xlsx pair is written to the working directory.")
	fmt.Println()

	subtitle.Println("BUILT-IN PATTERNS")
	for _, phrase := range detector.DefaultPatterns().Phrases() {
		fmt.Printf("  - %s\n", phrase)
	}
	fmt.Println()

	subtitle.Println("EXAMPLES")
	fmt.Println("  prompt-scan invoice.pdf")
	fmt.Println("  prompt-scan report.docx contract.pdf")
	fmt.Println("  prompt-scan -config scan.yaml -debug suspicious.pdf")
}
