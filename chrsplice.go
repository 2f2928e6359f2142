// Package chrsplice extracts and re-inserts the CHR ROM region (graphics
// tile data) of iNES cartridge images, round-tripping every other byte of
// the image losslessly.
//
// The package locates the CHR region from the 16-byte iNES header, validates
// the declared layout against the actual image size, and performs an exact
// byte splice: extraction copies the region out verbatim, replacement
// reassembles a full image around a caller-supplied region of identical
// length. Pixel and plane semantics of the tile data are deliberately out of
// scope; chrsplice moves bytes, it does not interpret them.
//
// # Image Layout
//
//	┌──────────────────────────────────────────────┐
//	│ Header (16 bytes): magic "NES\x1a", PRG/CHR  │
//	│ bank counts, flags                           │
//	├──────────────────────────────────────────────┤
//	│ Trainer (512 bytes, optional)                │
//	├──────────────────────────────────────────────┤
//	│ PRG ROM (16 KiB × PRG banks)                 │
//	├──────────────────────────────────────────────┤
//	│ CHR ROM (8 KiB × CHR banks)  ← the region    │
//	├──────────────────────────────────────────────┤
//	│ Remainder (preserved verbatim, may be empty) │
//	└──────────────────────────────────────────────┘
//
// Inputs without the magic signature are treated as raw CHR payloads:
// extraction passes them through unchanged, and replacement is refused
// because a headerless payload has no splice point.
//
// # Basic Usage
//
// Extracting CHR data:
//
//	import "github.com/nesutil/chrsplice"
//
//	src, _ := os.Open("game.nes")
//	defer src.Close()
//
//	var chr bytes.Buffer
//	if _, err := chrsplice.ExtractRegion(src, &chr); err != nil {
//	    log.Fatal(err)
//	}
//
// Splicing edited CHR data back in:
//
//	out, _ := os.Create("game-edited.nes")
//	defer out.Close()
//
//	if _, err := chrsplice.ReplaceRegionBytes(src, chr.Bytes(), out); err != nil {
//	    log.Fatal(err)
//	}
//
// # Package Structure
//
// This package provides thin wrappers around the rom package, which holds
// the operational API (Parse, Extract, Replace, Stat). The ines package
// defines the header layout, and errs defines the sentinel errors every
// operation reports.
package chrsplice

import (
	"io"

	"github.com/nesutil/chrsplice/rom"
)

// ExtractRegion copies the CHR region of src to dst.
//
// For a raw (headerless) payload the whole input is copied through
// unchanged. See rom.Extract for the full contract.
func ExtractRegion(src io.ReadSeeker, dst io.Writer, opts ...rom.Option) (int64, error) {
	return rom.Extract(src, dst, opts...)
}

// ReplaceRegion writes a full image to dst with the CHR region of src
// replaced by the bytes read from chr.
//
// The replacement must be exactly as long as the existing region; chr is
// buffered in memory to verify that before any output is written. See
// rom.Replace for the full contract.
func ReplaceRegion(src io.ReadSeeker, chr io.Reader, dst io.Writer, opts ...rom.Option) (int64, error) {
	return rom.Replace(src, chr, dst, opts...)
}

// ReplaceRegionBytes is ReplaceRegion with the replacement already in memory.
func ReplaceRegionBytes(src io.ReadSeeker, chr []byte, dst io.Writer, opts ...rom.Option) (int64, error) {
	return rom.ReplaceBytes(src, chr, dst, opts...)
}

// Stat returns read-only diagnostics about src, including an xxHash64
// digest of its CHR region. See rom.Stat.
func Stat(src io.ReadSeeker) (rom.Info, error) {
	return rom.Stat(src)
}
