package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/swanandpatil9195/culit/internal/diagfmt"
	"github.com/swanandpatil9195/culit/internal/driver"
)

var expandCmd = &cobra.Command{
	Use:   "expand [flags] <file|dir>",
	Short: "Rewrite custom-suffixed literals into handler calls",
	Long: `Expand rewrites every literal with a custom suffix into a call of the
corresponding handler macro under crate::custom_literal. Files without
custom suffixes come out byte-identical.`,
	Args: cobra.ExactArgs(1),
	RunE: runExpand,
}

func init() {
	expandCmd.Flags().Bool("attr", false, "only expand items annotated with #[culit]")
	expandCmd.Flags().Bool("c-strings", false, "enable expansion of custom-suffixed c-string literals")
	expandCmd.Flags().StringP("output", "o", "", "output file (single-file mode; default stdout)")
	expandCmd.Flags().String("out-dir", "", "output directory (directory mode; default <file>.out next to each source)")
	expandCmd.Flags().String("ext", ".rs", "input file extension (directory mode)")
	expandCmd.Flags().String("ui", "auto", "progress UI in directory mode (auto|on|off)")
	expandCmd.Flags().Int("jobs", 0, "parallel workers in directory mode (0 = number of CPUs)")
}

func runExpand(cmd *cobra.Command, args []string) error {
	target := args[0]

	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	opts, err := expandOptions(cmd, target)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return runExpandDir(cmd, target, opts)
	}
	return runExpandFile(cmd, target, opts)
}

// expandOptions merges manifest settings with command-line flags; flags win
// when set explicitly.
func expandOptions(cmd *cobra.Command, target string) (driver.ExpandOptions, error) {
	opts := driver.ExpandOptions{}

	startDir := target
	if info, err := os.Stat(target); err == nil && !info.IsDir() {
		startDir = filepath.Dir(target)
	}
	manifest, found, err := loadProjectManifest(startDir)
	if err != nil {
		return opts, err
	}
	if found {
		opts.CStrings = manifest.Config.Capabilities.CStrings
		if manifest.Config.Diagnostics.Max > 0 {
			opts.MaxDiagnostics = manifest.Config.Diagnostics.Max
		}
	}

	if cmd.Flags().Changed("c-strings") {
		opts.CStrings, _ = cmd.Flags().GetBool("c-strings")
	}
	if cmd.Root().PersistentFlags().Changed("max-diagnostics") || opts.MaxDiagnostics == 0 {
		opts.MaxDiagnostics, _ = cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	}
	opts.AttrScoped, _ = cmd.Flags().GetBool("attr")

	return opts, nil
}

func runExpandFile(cmd *cobra.Command, path string, opts driver.ExpandOptions) error {
	result, err := driver.Expand(path, opts)
	if err != nil {
		return fmt.Errorf("expansion failed: %w", err)
	}

	printDiagnostics(cmd, result)

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		if _, err := os.Stdout.WriteString(result.Output); err != nil {
			return err
		}
	} else if err := os.WriteFile(output, []byte(result.Output), 0o644); err != nil {
		return err
	}

	if result.Bag.HasErrors() {
		return fmt.Errorf("expansion produced %d diagnostics", result.Bag.Len())
	}
	return nil
}

func runExpandDir(cmd *cobra.Command, dir string, opts driver.ExpandOptions) error {
	ext, _ := cmd.Flags().GetString("ext")
	outDir, _ := cmd.Flags().GetString("out-dir")
	jobs, _ := cmd.Flags().GetInt("jobs")
	uiFlag, _ := cmd.Flags().GetString("ui")

	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	dirOpts := driver.ExpandDirOptions{
		ExpandOptions: opts,
		Ext:           ext,
		OutDir:        outDir,
		Jobs:          jobs,
	}

	var results []driver.ExpandDirResult
	if shouldUseTUI(mode) {
		files, err := driver.ListFiles(dir, ext)
		if err != nil {
			return err
		}
		results, err = runExpandDirWithUI(context.Background(), "expanding "+dir, dir, files, dirOpts)
		if err != nil {
			return err
		}
	} else {
		results, err = driver.ExpandDir(context.Background(), dir, dirOpts)
		if err != nil {
			return err
		}
	}

	failed := 0
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
			continue
		}
		if r.Result != nil && r.Result.Bag.Len() > 0 {
			printDiagnostics(cmd, r.Result)
		}
		if r.Result != nil && r.Result.Bag.HasErrors() {
			failed++
			continue
		}
		if !quiet {
			fmt.Fprintf(os.Stderr, "%s -> %s\n", r.Path, r.OutPath)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

func printDiagnostics(cmd *cobra.Command, result *driver.ExpandResult) {
	if result.Bag.Len() == 0 {
		return
	}
	result.Bag.Sort()
	diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		Context:   1,
		ShowNotes: true,
	})
}
