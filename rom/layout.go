package rom

import (
	"errors"
	"fmt"
	"io"

	"github.com/nesutil/chrsplice/errs"
	"github.com/nesutil/chrsplice/ines"
)

// Layout describes where the CHR region sits within a source image. It is
// derived fresh by Parse on every operation and never cached.
type Layout struct {
	// Header is the parsed iNES header. Only meaningful when Headered is true.
	Header ines.Header
	// CHROffset is the byte offset of the CHR region. Zero for raw payloads.
	CHROffset int64
	// CHRSize is the CHR region length in bytes. For raw payloads this is
	// the whole input.
	CHRSize int64
	// TotalSize is the total length of the source image in bytes.
	TotalSize int64
	// Headered reports whether the source starts with the iNES signature.
	// When false the entire input is treated as a raw CHR payload.
	Headered bool
}

// remainderOffset returns the offset of the first byte after the CHR region.
func (l Layout) remainderOffset() int64 {
	return l.CHROffset + l.CHRSize
}

// Parse reads the header of src and derives the CHR region geometry.
//
// The source is measured by seeking to its end, then rewound and probed for
// the 16-byte iNES header. On return the source is positioned immediately
// after the header block (or at the start, for raw payloads).
//
// Parameters:
//   - src: Seekable image source; must not be nil
//
// Returns:
//   - Layout: CHR region geometry; Headered=false means raw payload
//   - error: errs.ErrMissingHandle, errs.ErrHeaderTooShort,
//     errs.ErrNoCHRData, or errs.ErrImageTooSmall
func Parse(src io.ReadSeeker) (Layout, error) {
	if src == nil {
		return Layout{}, fmt.Errorf("%w: source reader", errs.ErrMissingHandle)
	}

	total, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return Layout{}, fmt.Errorf("measure source: %w", err)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return Layout{}, fmt.Errorf("rewind source: %w", err)
	}

	if total < ines.HeaderSize {
		return Layout{}, errs.ErrHeaderTooShort
	}

	var buf [ines.HeaderSize]byte
	if _, err := io.ReadFull(src, buf[:]); err != nil {
		return Layout{}, fmt.Errorf("read header: %w", err)
	}

	header, err := ines.ParseHeader(buf[:])
	if errors.Is(err, errs.ErrBadMagic) {
		// Raw CHR payload: the whole input is the region.
		if _, err := src.Seek(0, io.SeekStart); err != nil {
			return Layout{}, fmt.Errorf("rewind source: %w", err)
		}

		return Layout{
			Headered:  false,
			CHROffset: 0,
			CHRSize:   total,
			TotalSize: total,
		}, nil
	}
	if err != nil {
		return Layout{}, err
	}

	if header.CHRBanks == 0 {
		return Layout{}, errs.ErrNoCHRData
	}

	lay := Layout{
		Header:    header,
		Headered:  true,
		CHROffset: header.CHROffset(),
		CHRSize:   header.CHRSize(),
		TotalSize: total,
	}

	if lay.remainderOffset() > total {
		return Layout{}, fmt.Errorf("%w: need %d bytes, have %d",
			errs.ErrImageTooSmall, lay.remainderOffset(), total)
	}

	return lay, nil
}
