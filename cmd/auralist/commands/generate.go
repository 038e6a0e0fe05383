package commands

import (
	"fmt"
	"math/rand"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nkapur/auralist/classify"
	"github.com/nkapur/auralist/playlist"
	"github.com/nkapur/auralist/recommend"
)

// NewGenerateCommand creates the playlist generation command.
func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <features.csv> <output.m3u> <seed-song>...",
		Short: "Grow seed songs into an M3U playlist",
		Args:  cobra.MinimumNArgs(3),
		RunE:  runGenerateCommand,
	}

	cmd.Flags().Int("max-songs", 0, "Maximum number of songs in the playlist (0 = config default)")
	cmd.Flags().Bool("no-shuffle", false, "Keep playlist order deterministic")
	cmd.Flags().Bool("static", false, "Disable dynamic growth; playlist is exactly the seeds")
	cmd.Flags().String("genre", "", "Only add songs with this derived genre")
	cmd.Flags().String("mood", "", "Only add songs with a compatible derived mood")
	cmd.Flags().String("name", "", "Playlist display name")
	cmd.Flags().Int64("seed", 0, "Random seed for reproducible shuffling (0 = non-deterministic)")

	return cmd
}

func runGenerateCommand(cmd *cobra.Command, args []string) error {
	cfg, err := configFromFlags(cmd)
	if err != nil {
		return err
	}
	logger := loggerFromFlags(cmd)

	featuresFile, outputFile, seeds := args[0], args[1], args[2:]

	engine, err := recommend.New(featuresFile, cfg.EngineConfig(), logger)
	if err != nil {
		color.Red("Failed to load feature catalog: %v", err)
		return err
	}

	maxSongs, _ := cmd.Flags().GetInt("max-songs")
	if maxSongs < 1 {
		maxSongs = cfg.MaxSongs
	}
	noShuffle, _ := cmd.Flags().GetBool("no-shuffle")
	static, _ := cmd.Flags().GetBool("static")
	genre, _ := cmd.Flags().GetString("genre")
	mood, _ := cmd.Flags().GetString("mood")
	name, _ := cmd.Flags().GetString("name")
	randSeed, _ := cmd.Flags().GetInt64("seed")

	shuffle := cfg.Shuffle && !noShuffle
	dynamic := cfg.Dynamic && !static

	opts := playlist.Options{
		MaxSongs: maxSongs,
		Shuffle:  shuffle,
		Dynamic:  dynamic,
		Genre:    classify.Label(genre),
		Mood:     classify.Label(mood),
		Name:     name,
	}

	builderOpts := []playlist.BuilderOption{
		playlist.WithProgress(func(progress float64, status string) {
			fmt.Printf("\r%3.0f%% - %s", progress*100, status)
			if progress >= 1 {
				fmt.Println()
			}
		}),
	}
	if randSeed != 0 {
		builderOpts = append(builderOpts, playlist.WithRand(rand.New(rand.NewSource(randSeed))))
	}

	if err := playlist.Generate(engine, seeds, outputFile, opts, logger, builderOpts...); err != nil {
		fmt.Println()
		color.Red("Playlist generation failed: %v", err)
		return err
	}

	fmt.Println()
	color.Green("Playlist saved to %s", outputFile)
	return nil
}
