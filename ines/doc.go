// Package ines defines the binary layout of the iNES cartridge image format.
//
// This package provides the foundational constants and the fixed-size Header
// type that define the physical layout of an iNES image. It handles byte-level
// parsing and serialization of the 16-byte header, and derives the position of
// the CHR region from the parsed fields. It never reads past the header.
//
// # Image Structure
//
// An iNES image consists of a fixed header followed by variable-size blocks:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (16 bytes, fixed)                                │
//	│  - Magic (4 bytes): "NES" + 0x1A                        │
//	│  - PRG ROM size (1 byte): units of 16 KiB               │
//	│  - CHR ROM size (1 byte): units of 8 KiB                │
//	│  - Flags 6 (1 byte): mirroring, battery, trainer,       │
//	│    four-screen, mapper low nibble                       │
//	│  - Flags 7 (1 byte): mapper high nibble                 │
//	│  - Bytes 8-15: unused by this package                   │
//	├─────────────────────────────────────────────────────────┤
//	│ Trainer (512 bytes, only when flags 6 bit 2 is set)     │
//	├─────────────────────────────────────────────────────────┤
//	│ PRG ROM (PRG banks × 16 KiB)                            │
//	├─────────────────────────────────────────────────────────┤
//	│ CHR ROM (CHR banks × 8 KiB)                             │
//	├─────────────────────────────────────────────────────────┤
//	│ Remainder (variable, may be empty)                      │
//	│  - PlayChoice data or other trailing bytes; preserved   │
//	│    verbatim by splicing, never interpreted              │
//	└─────────────────────────────────────────────────────────┘
//
// A CHR ROM size of zero is a distinct state: the cartridge uses CHR RAM and
// the image contains no CHR bytes at all.
//
// Inputs that do not start with the magic signature are not headered images;
// the rom package treats them as raw CHR payloads.
package ines
