package playlist

import (
	"github.com/nkapur/auralist/logging"
	"github.com/nkapur/auralist/recommend"
)

// Generate builds a playlist from seeds and writes it to dest in one call.
// This is the call interface the player UI and CLI consume: seed songs in,
// playlist file out.
func Generate(engine *recommend.Engine, seeds []string, dest string, opts Options, logger logging.Logger, builderOpts ...BuilderOption) error {
	built, err := NewBuilder(engine, logger, builderOpts...).Build(seeds, opts)
	if err != nil {
		return err
	}
	return Write(built, dest, logger)
}
