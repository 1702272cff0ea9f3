package main

import (
	"fmt"
	"os"

	"github.com/LegacyCodeHQ/jardeps/classindex"
	"github.com/LegacyCodeHQ/jardeps/internal/logging"
	"github.com/spf13/cobra"
)

type indexerOptions struct {
	verbose bool
	quiet   bool
}

// NewCommand returns a new indexer command instance.
func NewCommand() *cobra.Command {
	opts := &indexerOptions{}

	cmd := &cobra.Command{
		Use:   "indexer <jars_folder> <result_file_to_save>",
		Short: "Index the classes provided by every jar under a folder.",
		Long: `Walk a folder recursively, list the .class entries of every .jar found and
save a class name to jar path index for use by the resolver.

Examples:
  indexer /opt/jars scan.dat
  indexer -q ./lib jars.dat`,
		Version: version,
		Args:    validateArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runIndexer(cmd, opts, args[0], args[1])
		},
	}

	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print debug progress output")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress progress output")

	return cmd
}

func validateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(2)(cmd, args); err != nil {
		return err
	}

	info, err := os.Stat(args[0])
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%s is not a directory", args[0])
	}
	return nil
}

func runIndexer(cmd *cobra.Command, opts *indexerOptions, jarsFolder, resultFile string) error {
	logger := logging.New(cmd.ErrOrStderr(), logging.Options{Verbose: opts.verbose, Quiet: opts.quiet})

	idx, err := classindex.NewIndexer(logger).IndexTree(jarsFolder)
	if err != nil {
		return fmt.Errorf("failed to index %s: %w", jarsFolder, err)
	}

	logger.Info().Msgf("Saving file %s...", resultFile)
	if err := classindex.Save(resultFile, idx); err != nil {
		return fmt.Errorf("failed to save class index: %w", err)
	}

	return nil
}
