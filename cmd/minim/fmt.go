package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minim/internal/diagfmt"
	"minim/internal/driver"
	"minim/internal/format"
	"minim/internal/source"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] file.minim",
	Short: "Print the canonical form of a minim source file",
	Long: `Fmt parses a file and prints it back in canonical layout. With
--annotate every identifier use is suffixed with the type of the
declaration it resolved to.`,
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().Bool("annotate", false, "annotate identifiers with resolved types")
}

func runFmt(cmd *cobra.Command, args []string) error {
	annotate, err := cmd.Flags().GetBool("annotate")
	if err != nil {
		return fmt.Errorf("failed to get annotate flag: %w", err)
	}

	fileSet := source.NewFileSet()
	res := driver.CheckPath(fileSet, args[0], maxDiagnostics(cmd))

	if res.Bag.HasErrors() || res.Bag.HasWarnings() {
		diagfmt.Pretty(os.Stderr, res.Bag, fileSet, diagfmt.PrettyOpts{
			Color: useColor(cmd, os.Stderr),
		})
	}
	if !res.Program.IsValid() {
		cmd.SilenceUsage = true
		return fmt.Errorf("cannot format %s: parse failed", args[0])
	}

	opts := format.Options{}
	if annotate {
		opts.Annotate = true
		opts.Table = res.Table
	}
	out := format.Unparse(res.Builder, res.Strings, res.Program, opts)
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
