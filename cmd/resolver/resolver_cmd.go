package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/LegacyCodeHQ/jardeps/classindex"
	"github.com/LegacyCodeHQ/jardeps/imports"
	"github.com/LegacyCodeHQ/jardeps/internal/logging"
	"github.com/LegacyCodeHQ/jardeps/report"
	"github.com/LegacyCodeHQ/jardeps/resolution"
	"github.com/spf13/cobra"
)

type resolverOptions struct {
	outputFormat    string
	excludePrefixes []string
	verbose         bool
	quiet           bool
}

// NewCommand returns a new resolver command instance.
func NewCommand() *cobra.Command {
	opts := &resolverOptions{
		outputFormat:    report.OutputFormatText.String(),
		excludePrefixes: imports.DefaultExcludedPrefixes(),
	}

	cmd := &cobra.Command{
		Use:   "resolver <java_src_folder> <jars_file_dat> [sortByFilename:true|false]",
		Short: "List the jars a Java source tree needs and the imports no jar provides.",
		Long: `Walk a Java source folder, match the import lines of every .java file and
look each one up in an index written by the indexer.

Prints the jars that provide at least one import, then the source files whose
imports were not found in any jar. Pass true as the third argument to order
jars by file name instead of full path.

Examples:
  resolver ./src scan.dat
  resolver ./src scan.dat true
  resolver ./src scan.dat --exclude-prefix java. --exclude-prefix javax.
  resolver ./src scan.dat -f dot`,
		Version: version,
		Args:    validateArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			sortByFileName := len(args) == 3 && parseBool(args[2])
			return runResolver(cmd, opts, args[0], args[1], sortByFileName)
		},
	}

	cmd.Flags().StringVarP(
		&opts.outputFormat,
		"format",
		"f",
		opts.outputFormat,
		fmt.Sprintf("Output format (%s)", report.SupportedFormatList()))
	cmd.Flags().StringSliceVar(
		&opts.excludePrefixes,
		"exclude-prefix",
		opts.excludePrefixes,
		"Import prefixes to skip (repeatable)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print every matched import")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress progress output")

	return cmd
}

func validateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(2, 3)(cmd, args); err != nil {
		return err
	}

	info, err := os.Stat(args[0])
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%s is not a directory", args[0])
	}

	info, err = os.Stat(args[1])
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a file", args[1])
	}
	return nil
}

// parseBool accepts "true" in any case; everything else is false.
func parseBool(value string) bool {
	return strings.EqualFold(value, "true")
}

func runResolver(cmd *cobra.Command, opts *resolverOptions, srcFolder, indexFile string, sortByFileName bool) error {
	formatter, err := report.NewFormatter(opts.outputFormat)
	if err != nil {
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), logging.Options{Verbose: opts.verbose, Quiet: opts.quiet})

	idx, err := classindex.Load(indexFile)
	if err != nil {
		return fmt.Errorf("failed to load class index: %w", err)
	}

	filter := imports.NewPrefixFilter(opts.excludePrefixes)
	result, err := resolution.NewResolver(idx, filter, logger).ResolveTree(srcFolder)
	if err != nil {
		return fmt.Errorf("failed to resolve imports in %s: %w", srcFolder, err)
	}

	output, err := formatter.Format(result, report.FormatOptions{SortByFileName: sortByFileName})
	if err != nil {
		return fmt.Errorf("failed to format report: %w", err)
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), output)
	return err
}
