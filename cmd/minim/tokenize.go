package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minim/internal/diagfmt"
	"minim/internal/driver"
	"minim/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.minim",
	Short: "Tokenize a minim source file",
	Long:  `Tokenize breaks a minim source file into its token stream`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	fileSet := source.NewFileSet()
	result, err := driver.TokenizePath(fileSet, args[0], maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		diagfmt.Pretty(os.Stderr, result.Bag, fileSet, diagfmt.PrettyOpts{
			Color: useColor(cmd, os.Stderr),
		})
	}

	switch format {
	case "pretty":
		diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, fileSet)
		return nil
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
