package rom

import (
	"fmt"
	"io"

	"github.com/nesutil/chrsplice/errs"
	"github.com/nesutil/chrsplice/internal/pool"
)

// Replace parses src and writes a full image to dst with the CHR region
// substituted by the bytes read from chr.
//
// The replacement reader is materialized fully in memory before any output
// is written: the splice is only valid when the replacement length equals
// the existing region length exactly, and that check must precede the first
// output byte. Callers that already hold the bytes should use ReplaceBytes.
//
// The source image is never mutated; the output is always a fresh stream.
// On success the source is left at end of stream.
//
// Parameters:
//   - src: Seekable image source; must not be nil
//   - chr: Replacement CHR data; must not be nil
//   - dst: Sink receiving the reassembled image; must not be nil
//
// Returns:
//   - int64: Number of bytes written to dst
//   - error: Parse errors, errs.ErrNotHeadered, errs.ErrCHRSizeMismatch,
//     errs.ErrMissingHandle, or errs.ErrUnexpectedEOF
//
// On error the bytes already streamed to dst must be discarded by the caller.
func Replace(src io.ReadSeeker, chr io.Reader, dst io.Writer, opts ...Option) (int64, error) {
	if chr == nil {
		return 0, fmt.Errorf("%w: replacement reader", errs.ErrMissingHandle)
	}

	data, err := io.ReadAll(chr)
	if err != nil {
		return 0, fmt.Errorf("read replacement: %w", err)
	}

	return ReplaceBytes(src, data, dst, opts...)
}

// ReplaceBytes is Replace with the replacement already in memory.
func ReplaceBytes(src io.ReadSeeker, chr []byte, dst io.Writer, opts ...Option) (int64, error) {
	lay, err := Parse(src)
	if err != nil {
		return 0, err
	}

	return ReplaceLayout(src, lay, chr, dst, opts...)
}

// ReplaceLayout splices chr into the image described by lay, writing the
// reassembled image to dst.
//
// Reassembly order: bytes [0, CHROffset) from src verbatim, then chr, then
// the remainder [CHROffset+CHRSize, TotalSize) from src verbatim. The
// remainder may be empty.
func ReplaceLayout(src io.ReadSeeker, lay Layout, chr []byte, dst io.Writer, opts ...Option) (int64, error) {
	if src == nil {
		return 0, fmt.Errorf("%w: source reader", errs.ErrMissingHandle)
	}
	if dst == nil {
		return 0, fmt.Errorf("%w: destination writer", errs.ErrMissingHandle)
	}

	if !lay.Headered {
		return 0, errs.ErrNotHeadered
	}

	if int64(len(chr)) != lay.CHRSize {
		return 0, fmt.Errorf("%w: got %d bytes, region is %d",
			errs.ErrCHRSizeMismatch, len(chr), lay.CHRSize)
	}

	cfg, err := newConfig(opts...)
	if err != nil {
		return 0, err
	}

	buf, release := pool.GetChunk(cfg.chunkSize)
	defer release()
	buf = buf[:cfg.chunkSize]

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("rewind source: %w", err)
	}

	var written int64

	// Header, trainer and PRG ROM, byte for byte.
	n, err := copyExact(dst, src, lay.CHROffset, buf)
	written += n
	if err != nil {
		return written, err
	}

	// The new CHR region.
	nw, err := dst.Write(chr)
	written += int64(nw)
	if err != nil {
		return written, fmt.Errorf("write replacement: %w", err)
	}
	if nw < len(chr) {
		return written, fmt.Errorf("write replacement: %w", io.ErrShortWrite)
	}

	// Skip the old region, then carry over whatever trails it. Zero trailing
	// bytes is valid.
	if _, err := src.Seek(lay.remainderOffset(), io.SeekStart); err != nil {
		return written, fmt.Errorf("seek past CHR region: %w", err)
	}

	n, err = copyExact(dst, src, lay.TotalSize-lay.remainderOffset(), buf)
	written += n
	if err != nil {
		return written, err
	}

	return written, nil
}
