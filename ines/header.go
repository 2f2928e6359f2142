package ines

import (
	"github.com/nesutil/chrsplice/errs"
)

// Mirroring identifies the nametable mirroring declared in flags 6.
type Mirroring uint8

const (
	MirrorHorizontal Mirroring = iota // horizontal mirroring (vertical arrangement)
	MirrorVertical                    // vertical mirroring (horizontal arrangement)
	MirrorFourScreen                  // four-screen VRAM, mirroring bit ignored
)

// String returns the conventional name of the mirroring mode.
func (m Mirroring) String() string {
	switch m {
	case MirrorHorizontal:
		return "horizontal"
	case MirrorVertical:
		return "vertical"
	case MirrorFourScreen:
		return "four-screen"
	default:
		return "unknown"
	}
}

// Header represents the fixed-size iNES header at the start of an image.
type Header struct {
	// PRGBanks is the PRG ROM size in 16 KiB units.
	PRGBanks uint8 // byte offset 4
	// CHRBanks is the CHR ROM size in 8 KiB units. Zero means the cartridge
	// uses CHR RAM and the image carries no CHR data.
	CHRBanks uint8 // byte offset 5
	// Flags6 is a packed field: mirroring, battery, trainer, four-screen
	// and the mapper number's low nibble.
	Flags6 uint8 // byte offset 6
	// Flags7 carries the mapper number's high nibble in its upper bits.
	Flags7 uint8 // byte offset 7
	// Tail holds bytes 8-15 verbatim. This package does not interpret them,
	// but preserves them so Bytes reproduces the header exactly.
	Tail [8]byte // byte offset 8-15
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (at least 16 bytes)
//
// Returns:
//   - error: errs.ErrHeaderTooShort if fewer than 16 bytes are supplied,
//     errs.ErrBadMagic if the signature does not match
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrHeaderTooShort
	}

	if !HasMagic(data) {
		return errs.ErrBadMagic
	}

	h.PRGBanks = data[prgBanksOffset]
	h.CHRBanks = data[chrBanksOffset]
	h.Flags6 = data[flags6Offset]
	h.Flags7 = data[flags7Offset]
	copy(h.Tail[:], data[8:HeaderSize])

	return nil
}

// Bytes serializes the Header into a 16-byte slice.
//
// The result reproduces the parsed input exactly: magic, the four field
// bytes, and the preserved tail bytes.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	copy(b[0:4], Magic[:])
	b[prgBanksOffset] = h.PRGBanks
	b[chrBanksOffset] = h.CHRBanks
	b[flags6Offset] = h.Flags6
	b[flags7Offset] = h.Flags7
	copy(b[8:HeaderSize], h.Tail[:])

	return b
}

// HasTrainer returns whether a 512-byte trainer block follows the header.
func (h Header) HasTrainer() bool {
	return (h.Flags6 & FlagTrainer) != 0
}

// HasBattery returns whether the cartridge declares battery-backed PRG RAM.
func (h Header) HasBattery() bool {
	return (h.Flags6 & FlagBattery) != 0
}

// Mirroring returns the declared nametable mirroring mode.
func (h Header) Mirroring() Mirroring {
	if (h.Flags6 & FlagFourScreen) != 0 {
		return MirrorFourScreen
	}
	if (h.Flags6 & FlagMirrorVertical) != 0 {
		return MirrorVertical
	}

	return MirrorHorizontal
}

// Mapper returns the mapper number assembled from the nibbles in flags 6
// and flags 7.
func (h Header) Mapper() uint8 {
	return (h.Flags7 & MapperHighMask) | (h.Flags6&MapperLowMask)>>4
}

// PRGSize returns the PRG ROM size in bytes.
func (h Header) PRGSize() int64 {
	return int64(h.PRGBanks) * PRGBankSize
}

// CHRSize returns the CHR ROM size in bytes. Zero means CHR RAM.
func (h Header) CHRSize() int64 {
	return int64(h.CHRBanks) * CHRBankSize
}

// CHROffset returns the byte offset of the CHR region within the image:
// the header, the trainer when present, then the whole PRG ROM.
func (h Header) CHROffset() int64 {
	offset := int64(HeaderSize)
	if h.HasTrainer() {
		offset += TrainerSize
	}

	return offset + h.PRGSize()
}

// ParseHeader parses a Header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (at least 16 bytes)
//
// Returns:
//   - Header: Parsed header struct
//   - error: errs.ErrHeaderTooShort or errs.ErrBadMagic
func ParseHeader(data []byte) (Header, error) {
	h := Header{}
	if err := h.Parse(data); err != nil {
		return Header{}, err
	}

	return h, nil
}
