package rom

import (
	"io"

	"github.com/nesutil/chrsplice/ines"
	"github.com/nesutil/chrsplice/internal/hash"
)

// Info summarizes an image without modifying it.
type Info struct {
	// Headered reports whether the source carries an iNES header.
	Headered bool
	// Mapper is the iNES mapper number. Zero for raw payloads.
	Mapper uint8
	// Mirroring is the declared nametable mirroring. Only meaningful for
	// headered images.
	Mirroring ines.Mirroring
	// HasTrainer reports whether a 512-byte trainer block is present.
	HasTrainer bool
	// HasBattery reports whether battery-backed PRG RAM is declared.
	HasBattery bool
	// PRGSize is the PRG ROM size in bytes. Zero for raw payloads.
	PRGSize int64
	// CHROffset is the byte offset of the CHR region.
	CHROffset int64
	// CHRSize is the CHR region length in bytes.
	CHRSize int64
	// TotalSize is the total image length in bytes.
	TotalSize int64
	// CHRDigest is the xxHash64 of the CHR region (of the whole input for a
	// raw payload). Two images with equal digests carry the same tile data
	// with near certainty, so the digest is a cheap change detector.
	CHRDigest uint64
}

// Stat parses src and returns read-only diagnostics about it, including a
// digest of the CHR region computed by streaming it through xxHash64.
//
// Parameters:
//   - src: Seekable image source; must not be nil
//
// Returns:
//   - Info: Image summary
//   - error: The same errors as Parse and Extract
func Stat(src io.ReadSeeker) (Info, error) {
	lay, err := Parse(src)
	if err != nil {
		return Info{}, err
	}

	digest := hash.New()
	if _, err := ExtractLayout(src, lay, digest); err != nil {
		return Info{}, err
	}

	info := Info{
		Headered:  lay.Headered,
		CHROffset: lay.CHROffset,
		CHRSize:   lay.CHRSize,
		TotalSize: lay.TotalSize,
		CHRDigest: digest.Sum64(),
	}

	if lay.Headered {
		info.Mapper = lay.Header.Mapper()
		info.Mirroring = lay.Header.Mirroring()
		info.HasTrainer = lay.Header.HasTrainer()
		info.HasBattery = lay.Header.HasBattery()
		info.PRGSize = lay.Header.PRGSize()
	}

	return info, nil
}
