// Package errs defines the sentinel errors returned by chrsplice packages.
//
// All errors are plain sentinel values so callers can test for specific
// failure conditions with errors.Is, even when the error has been wrapped
// with additional context by the operation that produced it.
package errs

import "errors"

var (
	// ErrHeaderTooShort indicates the input ended before the full 16-byte
	// iNES header could be read.
	ErrHeaderTooShort = errors.New("image shorter than iNES header")

	// ErrBadMagic indicates the first four bytes are not the iNES signature.
	// The rom package translates this condition into raw-payload mode rather
	// than surfacing it from Parse.
	ErrBadMagic = errors.New("missing iNES magic signature")

	// ErrNoCHRData indicates a headered image whose CHR bank count is zero.
	// Such cartridges use CHR RAM; the image contains no CHR bytes to
	// extract or replace.
	ErrNoCHRData = errors.New("cartridge uses CHR RAM, image has no CHR data")

	// ErrImageTooSmall indicates the header-declared CHR region extends past
	// the end of the image.
	ErrImageTooSmall = errors.New("image smaller than header-declared layout")

	// ErrNotHeadered indicates a replace was attempted on a raw CHR payload.
	// A raw payload has no header and therefore no defined splice point.
	ErrNotHeadered = errors.New("raw payload has no iNES header to splice into")

	// ErrCHRSizeMismatch indicates the replacement data length does not
	// equal the existing CHR region length. The header's CHR bank count is
	// never rewritten, so the region cannot grow or shrink.
	ErrCHRSizeMismatch = errors.New("replacement length does not match CHR region")

	// ErrUnexpectedEOF indicates a bounded copy obtained fewer bytes than
	// the layout requires. A short read is always a failure, never a valid
	// end of region.
	ErrUnexpectedEOF = errors.New("unexpected end of image data")

	// ErrMissingHandle indicates a required source reader or destination
	// writer was nil.
	ErrMissingHandle = errors.New("missing source or destination handle")
)
