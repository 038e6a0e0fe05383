package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nkapur/auralist/recommend"
)

// NewMoodsCommand creates the mood-cluster discovery command.
func NewMoodsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moods <features.csv>",
		Short: "Discover mood clusters across the whole catalog",
		Args:  cobra.ExactArgs(1),
		RunE:  runMoodsCommand,
	}

	cmd.Flags().IntP("clusters", "k", 4, "Number of mood clusters to form")
	cmd.Flags().Int("examples", 3, "Example songs to print per cluster")

	return cmd
}

func runMoodsCommand(cmd *cobra.Command, args []string) error {
	cfg, err := configFromFlags(cmd)
	if err != nil {
		return err
	}
	logger := loggerFromFlags(cmd)

	engine, err := recommend.New(args[0], cfg.EngineConfig(), logger)
	if err != nil {
		color.Red("Failed to load feature catalog: %v", err)
		return err
	}

	k, _ := cmd.Flags().GetInt("clusters")
	examples, _ := cmd.Flags().GetInt("examples")

	moodClusters, err := engine.DiscoverMoodClusters(k)
	if err != nil {
		color.Red("Clustering failed: %v", err)
		return err
	}

	for i, cluster := range moodClusters {
		color.Cyan("Cluster %d: %s (%d songs, energy %.2f, valence %.2f)",
			i+1, cluster.DominantMood, len(cluster.Paths), cluster.MeanEnergy, cluster.MeanValence)
		for j, path := range cluster.Paths {
			if j == examples {
				fmt.Printf("    ... and %d more\n", len(cluster.Paths)-examples)
				break
			}
			fmt.Printf("    %s\n", path)
		}
	}
	return nil
}
