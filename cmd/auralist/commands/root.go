// Package commands wires the auralist CLI: playlist generation, similarity
// queries, mood-cluster discovery, and feature extraction.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/nkapur/auralist/logging"
)

// NewRootCommand builds the auralist command tree.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "auralist",
		Short:         "Offline music recommendations from audio feature vectors",
		Long:          "Auralist recommends and sequences songs for a local music library by comparing precomputed audio-feature vectors. No network, no accounts: a feature CSV in, an M3U playlist out.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to a YAML config file with defaults")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored log output")

	cmd.AddCommand(NewGenerateCommand())
	cmd.AddCommand(NewSimilarCommand())
	cmd.AddCommand(NewMoodsCommand())
	cmd.AddCommand(NewExtractCommand())

	return cmd
}

// loggerFromFlags builds the logger every command injects into the engine.
func loggerFromFlags(cmd *cobra.Command) logging.Logger {
	noColor, _ := cmd.Flags().GetBool("no-color")
	verbose, _ := cmd.Flags().GetBool("verbose")

	var logger logging.Logger
	if noColor {
		logger = logging.NewDefaultLoggerNoColor()
	} else {
		logger = logging.NewDefaultLogger()
	}
	if verbose {
		logger.SetLevel(logging.DebugLevel)
	}
	return logger
}

// configFromFlags loads the layered config named by --config.
func configFromFlags(cmd *cobra.Command) (*Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return LoadConfig(path)
}
