package rom

import (
	"fmt"
	"io"

	"github.com/nesutil/chrsplice/errs"
	"github.com/nesutil/chrsplice/internal/pool"
)

// Extract parses src and copies its CHR region to dst.
//
// For a headered image, exactly Layout.CHRSize bytes are copied starting at
// Layout.CHROffset; on success the source is left positioned at the end of
// the CHR region. For a raw payload the entire input is copied through
// unchanged and the source is left at end of stream. The source is never
// written to.
//
// Parameters:
//   - src: Seekable image source; must not be nil
//   - dst: Sink receiving the CHR bytes; must not be nil
//   - opts: Optional tuning (see WithChunkSize)
//
// Returns:
//   - int64: Number of bytes written to dst
//   - error: Parse errors, errs.ErrMissingHandle, or errs.ErrUnexpectedEOF
//
// On error the bytes already streamed to dst must be discarded by the caller.
func Extract(src io.ReadSeeker, dst io.Writer, opts ...Option) (int64, error) {
	lay, err := Parse(src)
	if err != nil {
		return 0, err
	}

	return ExtractLayout(src, lay, dst, opts...)
}

// ExtractLayout copies the CHR region described by lay from src to dst.
//
// It performs the copy half of Extract for callers that already hold a
// Layout from Parse, avoiding a second header pass.
func ExtractLayout(src io.ReadSeeker, lay Layout, dst io.Writer, opts ...Option) (int64, error) {
	if src == nil {
		return 0, fmt.Errorf("%w: source reader", errs.ErrMissingHandle)
	}
	if dst == nil {
		return 0, fmt.Errorf("%w: destination writer", errs.ErrMissingHandle)
	}

	cfg, err := newConfig(opts...)
	if err != nil {
		return 0, err
	}

	if _, err := src.Seek(lay.CHROffset, io.SeekStart); err != nil {
		return 0, fmt.Errorf("seek to CHR region: %w", err)
	}

	buf, release := pool.GetChunk(cfg.chunkSize)
	defer release()

	return copyExact(dst, src, lay.CHRSize, buf[:cfg.chunkSize])
}
