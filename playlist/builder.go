package playlist

import (
	"fmt"
	"math/rand"

	"github.com/nkapur/auralist/classify"
	"github.com/nkapur/auralist/logging"
	"github.com/nkapur/auralist/recommend"
)

// Growth constants: each round takes the last few playlist songs as anchors
// and asks for a handful of similar songs per anchor, mirroring how a
// listener would chain "more like this" from what just played.
const (
	growthAnchors    = 3
	similarPerAnchor = 3
)

// ProgressFunc receives coarse progress milestones during a build, once per
// growth round. It is advisory only; its execution never aborts the build.
type ProgressFunc func(progress float64, status string)

// Options controls a single build request.
type Options struct {
	// MaxSongs bounds the playlist length. Values < 1 fall back to
	// DefaultMaxSongs.
	MaxSongs int

	// Shuffle randomizes order. For dynamic builds only the seed segment is
	// shuffled: the grown tail keeps discovery order, which encodes the
	// similarity chain it came from.
	Shuffle bool

	// Dynamic grows the playlist beyond the seeds via similarity lookups.
	// When false the playlist is exactly the resolved seeds, truncated.
	Dynamic bool

	// Genre keeps grown songs whose derived genre matches.
	Genre classify.Label

	// Mood keeps grown songs whose derived mood is compatible.
	Mood classify.Label

	// Name is the playlist display name written to the M3U header.
	Name string
}

// DefaultMaxSongs bounds playlists when the caller does not say otherwise.
const DefaultMaxSongs = 20

// Builder expands seed songs into playlists using a recommendation engine.
type Builder struct {
	engine   *recommend.Engine
	logger   logging.Logger
	rng      *rand.Rand
	progress ProgressFunc
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithRand fixes the random source used for shuffling, so callers (and tests)
// can get reproducible output. Without it shuffling uses the process-global
// source.
func WithRand(rng *rand.Rand) BuilderOption {
	return func(b *Builder) { b.rng = rng }
}

// WithProgress registers an advisory progress callback.
func WithProgress(fn ProgressFunc) BuilderOption {
	return func(b *Builder) { b.progress = fn }
}

// NewBuilder creates a playlist builder on top of an engine.
func NewBuilder(engine *recommend.Engine, logger logging.Logger, opts ...BuilderOption) *Builder {
	b := &Builder{
		engine: engine,
		logger: logging.Or(logger).WithFields(logging.Fields{
			"component": "playlist_builder",
		}),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build expands seeds into a playlist per opts. Unresolvable seeds are
// dropped with a warning; when none resolve the build fails with
// ErrNoValidSeeds. A dynamic build stops growing when the bound is reached,
// the catalog is exhausted, or a round adds nothing new.
func (b *Builder) Build(seeds []string, opts Options) (*Playlist, error) {
	maxSongs := opts.MaxSongs
	if maxSongs < 1 {
		maxSongs = DefaultMaxSongs
	}

	resolved, seen := b.resolveSeeds(seeds)
	if len(resolved) == 0 {
		b.logger.Error(ErrNoValidSeeds, "Playlist build failed", logging.Fields{
			"requested_seeds": len(seeds),
		})
		return nil, ErrNoValidSeeds
	}

	list := make([]string, len(resolved))
	copy(list, resolved)

	if opts.Dynamic {
		list = b.grow(list, seen, maxSongs, opts)
	}

	if opts.Shuffle {
		if opts.Dynamic {
			// Seeds-first semantics: only the seed segment is shuffled so the
			// discovered tail keeps its similarity-chain order.
			b.shuffle(list[:len(resolved)])
		} else {
			b.shuffle(list)
		}
	}

	if len(list) > maxSongs {
		list = list[:maxSongs]
	}

	b.logger.Info("Playlist built", logging.Fields{
		"seeds": len(resolved),
		"songs": len(list),
	})

	return &Playlist{Name: opts.Name, Paths: list}, nil
}

// resolveSeeds maps seed references onto canonical catalog paths, dropping
// misses and duplicates.
func (b *Builder) resolveSeeds(seeds []string) ([]string, map[string]bool) {
	seen := make(map[string]bool)
	var resolved []string
	for _, seed := range seeds {
		row, ok := b.engine.Resolve(seed)
		if !ok {
			b.logger.Warn("Seed song not found in catalog, dropping", logging.Fields{
				"song": seed,
			})
			continue
		}
		path := b.engine.PathAt(row)
		if seen[path] {
			continue
		}
		seen[path] = true
		resolved = append(resolved, path)
	}
	return resolved, seen
}

// grow repeatedly queries the engine from the most recently added songs and
// appends fresh candidates until the playlist is full, the catalog runs out,
// or a round makes no progress.
func (b *Builder) grow(list []string, seen map[string]bool, maxSongs int, opts Options) []string {
	catalogSize := b.engine.Size()
	round := 0

	for len(list) < maxSongs && len(list) < catalogSize {
		anchors := list[len(list)-min(growthAnchors, len(list)):]

		var fresh []string
		for _, anchor := range anchors {
			similar := b.engine.FindSimilar(anchor, similarPerAnchor,
				recommend.WithGenre(opts.Genre), recommend.WithMood(opts.Mood))
			for _, path := range similar {
				if seen[path] {
					continue
				}
				seen[path] = true
				fresh = append(fresh, path)
			}
			if len(list)+len(fresh) >= maxSongs {
				break
			}
		}

		if len(fresh) == 0 {
			break
		}
		if room := maxSongs - len(list); len(fresh) > room {
			fresh = fresh[:room]
		}
		list = append(list, fresh...)

		round++
		b.reportProgress(float64(len(list))/float64(maxSongs), round, len(list))
	}

	return list
}

func (b *Builder) reportProgress(progress float64, round, songs int) {
	if b.progress == nil {
		return
	}
	if progress > 1 {
		progress = 1
	}
	b.progress(progress, fmt.Sprintf("growth round %d: %d songs", round, songs))
}

func (b *Builder) shuffle(paths []string) {
	swap := func(i, j int) { paths[i], paths[j] = paths[j], paths[i] }
	if b.rng != nil {
		b.rng.Shuffle(len(paths), swap)
		return
	}
	rand.Shuffle(len(paths), swap)
}
