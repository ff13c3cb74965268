package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minim/internal/diagfmt"
	"minim/internal/driver"
	"minim/internal/project"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.minim...]",
	Short: "Parse and name-check minim source files",
	Long: `Check runs the front end over the given files: lexing, parsing, and
name resolution. With no arguments it looks for a minim.toml manifest in the
current directory or any parent and checks the sources it lists.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().Bool("no-cache", false, "disable the on-disk diagnostics cache")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}

	maxDiag := maxDiagnostics(cmd)
	paths := args
	if len(paths) == 0 {
		paths, jobs, maxDiag, noCache, err = sourcesFromManifest(jobs, maxDiag, noCache)
		if err != nil {
			return err
		}
	}
	if len(paths) == 0 {
		return fmt.Errorf("no source files to check")
	}

	var cache *driver.DiskCache
	if !noCache {
		// A cache that fails to open only costs us re-checking.
		cache, _ = driver.OpenDiskCache("minim")
	}

	fileSet, results, err := driver.CheckFiles(cmd.Context(), paths, driver.CheckOptions{
		MaxDiagnostics: maxDiag,
		Jobs:           jobs,
		Cache:          cache,
	})
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	merged := driver.MergeBags(results, maxDiag)
	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}

	switch format {
	case "pretty":
		diagfmt.Pretty(os.Stderr, merged, fileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			PathMode:  pathMode,
			ShowNotes: withNotes,
		})
	case "json":
		if err := diagfmt.JSON(os.Stdout, merged, fileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			Max:              maxDiag,
			IncludeNotes:     withNotes,
		}); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if showTimings, _ := cmd.Root().PersistentFlags().GetBool("timings"); showTimings {
		for i := range results {
			if len(results[i].Timing.Phases) == 0 {
				continue
			}
			fmt.Fprintf(os.Stderr, "%s:\n%s", results[i].Path, results[i].Timing.Summary())
		}
	}

	if merged.HasErrors() {
		cmd.SilenceUsage = true
		return fmt.Errorf("check found errors in %d file(s)", countBroken(results))
	}
	return nil
}

// sourcesFromManifest resolves check inputs from the nearest minim.toml.
// Manifest settings fill in whatever the flags left at their defaults.
func sourcesFromManifest(jobs, maxDiag int, noCache bool) ([]string, int, int, bool, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, jobs, maxDiag, noCache, err
	}
	manifestPath, ok, err := project.FindManifest(cwd)
	if err != nil {
		return nil, jobs, maxDiag, noCache, err
	}
	if !ok {
		return nil, jobs, maxDiag, noCache, fmt.Errorf("no files given and no %s found", project.ManifestName)
	}
	m, err := project.Load(manifestPath)
	if err != nil {
		return nil, jobs, maxDiag, noCache, err
	}
	paths, err := m.SourcePaths(manifestPath)
	if err != nil {
		return nil, jobs, maxDiag, noCache, err
	}
	if jobs == 0 && m.Check.Jobs > 0 {
		jobs = m.Check.Jobs
	}
	if m.Check.MaxDiagnostics > 0 {
		maxDiag = m.Check.MaxDiagnostics
	}
	if m.Check.NoCache {
		noCache = true
	}
	return paths, jobs, maxDiag, noCache, nil
}

func countBroken(results []driver.CheckResult) int {
	n := 0
	for i := range results {
		if !results[i].Clean() {
			n++
		}
	}
	return n
}
