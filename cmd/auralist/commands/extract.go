package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nkapur/auralist/extract"
)

// NewExtractCommand creates the feature extraction command.
func NewExtractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <music-dir>",
		Short: "Extract audio features from a music directory into a CSV catalog",
		Long:  "Walks a directory of audio files (mp3, wav, flac, ogg, m4a, aac), decodes each through ffmpeg and writes one feature row per file. The resulting CSV is the catalog the other commands consume.",
		Args:  cobra.ExactArgs(1),
		RunE:  runExtractCommand,
	}

	cmd.Flags().StringP("output", "o", "audio_features.csv", "Output CSV path")
	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing output file")

	return cmd
}

func runExtractCommand(cmd *cobra.Command, args []string) error {
	logger := loggerFromFlags(cmd)

	output, _ := cmd.Flags().GetString("output")
	force, _ := cmd.Flags().GetBool("force")

	written, err := extract.ProcessDirectory(cmd.Context(), args[0], output, force, logger)
	if err != nil {
		color.Red("Feature extraction failed: %v", err)
		return err
	}

	color.Green("Extracted features for %d files to %s", written, output)
	return nil
}
