// Package rom provides the operational layer over iNES images: locating the
// CHR region, extracting it, and splicing a replacement back in.
//
// # Core Operations
//
//   - Parse: probes an io.ReadSeeker, validates the header-declared layout
//     and returns the geometry of the CHR region.
//   - Extract / ExtractLayout: copies the CHR region (or, for a raw payload,
//     the whole input) to a sink.
//   - Replace / ReplaceBytes / ReplaceLayout: reassembles a full image with
//     the CHR region substituted, preserving every other byte verbatim.
//   - Stat: read-only diagnostics, including an xxHash64 digest of the CHR
//     region for change detection.
//
// # Sources and Sinks
//
// Sources must be io.ReadSeeker: locating the CHR region requires random
// access. A caller holding a non-seekable stream must buffer it (for example
// into a bytes.Reader) before calling into this package. Sinks are plain
// io.Writer values. The package never opens or closes handles; both ends are
// owned by the caller.
//
// All operations are single-pass and stateless. Nothing is cached between
// calls, so a source may be re-parsed at any time, and distinct operations
// may run concurrently as long as they do not share a reader or writer.
//
// # Raw Payloads
//
// An input that does not start with the iNES signature is treated as a raw
// CHR payload. Extract copies it through unchanged; Replace fails with
// errs.ErrNotHeadered, because without a header there is no defined splice
// point. Replacing a raw payload wholesale is an ordinary copy the caller
// performs directly.
//
// # Failure Semantics
//
// Errors are sentinel values from the errs package, wrapped with context;
// test them with errors.Is. No operation retries, and no partial output is
// valid: sinks are streamed, so on error the bytes already written must be
// discarded by the caller.
package rom
