package ines

const (
	// HeaderSize is the fixed size of the iNES header in bytes.
	HeaderSize = 16

	// TrainerSize is the fixed size of the optional trainer block that
	// follows the header when FlagTrainer is set.
	TrainerSize = 512

	// PRGBankSize is the unit of the PRG ROM size field (header byte 4).
	PRGBankSize = 16 * 1024

	// CHRBankSize is the unit of the CHR ROM size field (header byte 5).
	CHRBankSize = 8 * 1024
)

// Field positions within the 16-byte header.
const (
	prgBanksOffset = 4 // PRG ROM size in 16 KiB units
	chrBanksOffset = 5 // CHR ROM size in 8 KiB units
	flags6Offset   = 6 // mirroring, battery, trainer, four-screen, mapper low nibble
	flags7Offset   = 7 // mapper high nibble
)

// Flags 6 bit masks (header byte 6).
const (
	FlagMirrorVertical = 0x01 // Mask for mirroring bit: 0=horizontal, 1=vertical
	FlagBattery        = 0x02 // Mask for battery-backed PRG RAM bit
	FlagTrainer        = 0x04 // Mask for 512-byte trainer bit
	FlagFourScreen     = 0x08 // Mask for four-screen VRAM bit
	MapperLowMask      = 0xF0 // Mask for mapper number low nibble (bits 4-7)
)

// Flags 7 bit masks (header byte 7).
const (
	MapperHighMask = 0xF0 // Mask for mapper number high nibble (bits 4-7)
)

// Magic is the 4-byte signature at the start of every headered image:
// the ASCII letters "NES" followed by the MS-DOS end-of-file byte.
var Magic = [4]byte{'N', 'E', 'S', 0x1A}

// HasMagic reports whether data begins with the iNES signature.
func HasMagic(data []byte) bool {
	if len(data) < len(Magic) {
		return false
	}

	return data[0] == Magic[0] && data[1] == Magic[1] && data[2] == Magic[2] && data[3] == Magic[3]
}
