package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nkapur/auralist/classify"
	"github.com/nkapur/auralist/recommend"
)

// NewSimilarCommand creates the similarity query command.
func NewSimilarCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "similar <features.csv> <song>",
		Short: "List the songs most similar to a reference song",
		Args:  cobra.ExactArgs(2),
		RunE:  runSimilarCommand,
	}

	cmd.Flags().IntP("count", "n", 5, "Number of similar songs to list")
	cmd.Flags().String("genre", "", "Only list songs with this derived genre")
	cmd.Flags().String("mood", "", "Only list songs with a compatible derived mood")

	return cmd
}

func runSimilarCommand(cmd *cobra.Command, args []string) error {
	cfg, err := configFromFlags(cmd)
	if err != nil {
		return err
	}
	logger := loggerFromFlags(cmd)

	featuresFile, song := args[0], args[1]

	engine, err := recommend.New(featuresFile, cfg.EngineConfig(), logger)
	if err != nil {
		color.Red("Failed to load feature catalog: %v", err)
		return err
	}

	n, _ := cmd.Flags().GetInt("count")
	genre, _ := cmd.Flags().GetString("genre")
	mood, _ := cmd.Flags().GetString("mood")

	row, ok := engine.Resolve(song)
	if !ok {
		color.Yellow("Song not found in catalog: %s", song)
		return nil
	}

	results := engine.SimilarTo(row, n, classify.Label(genre), classify.Label(mood))
	if len(results) == 0 {
		color.Yellow("No similar songs matched the filters")
		return nil
	}

	color.Cyan("Songs similar to %s:", engine.PathAt(row))
	for i, path := range results {
		fmt.Printf("%2d. %s\n", i+1, path)
	}
	return nil
}
