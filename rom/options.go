package rom

import (
	"fmt"

	"github.com/nesutil/chrsplice/internal/options"
	"github.com/nesutil/chrsplice/internal/pool"
)

// config holds the tunables shared by the copy-based operations.
type config struct {
	chunkSize int
}

// Option configures an extract or replace operation.
type Option = options.Option[*config]

func newConfig(opts ...Option) (config, error) {
	cfg := config{chunkSize: pool.ChunkDefaultSize}
	if err := options.Apply(&cfg, opts...); err != nil {
		return config{}, err
	}

	return cfg, nil
}

// WithChunkSize sets the size of the pooled buffer used for bounded copies.
//
// Larger chunks mean fewer reads on large images at the cost of a larger
// transient buffer. The default is pool.ChunkDefaultSize.
//
// Returns an error if size is not positive.
func WithChunkSize(size int) Option {
	return options.New(func(cfg *config) error {
		if size <= 0 {
			return fmt.Errorf("chunk size must be positive, got %d", size)
		}
		cfg.chunkSize = size

		return nil
	})
}
