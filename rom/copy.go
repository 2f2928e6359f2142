package rom

import (
	"errors"
	"fmt"
	"io"

	"github.com/nesutil/chrsplice/errs"
)

// copyExact copies exactly n bytes from src to dst through buf.
//
// A read that ends before n bytes have been transferred is always an error:
// the caller has already validated the layout, so missing bytes mean the
// source lied about its size or was truncated mid-operation. Reported as
// errs.ErrUnexpectedEOF with the shortfall.
func copyExact(dst io.Writer, src io.Reader, n int64, buf []byte) (int64, error) {
	var written int64
	for written < n {
		chunk := int64(len(buf))
		if remaining := n - written; remaining < chunk {
			chunk = remaining
		}

		nr, err := io.ReadFull(src, buf[:chunk])
		if nr > 0 {
			nw, werr := dst.Write(buf[:nr])
			written += int64(nw)
			if werr != nil {
				return written, fmt.Errorf("write output: %w", werr)
			}
			if nw < nr {
				return written, fmt.Errorf("write output: %w", io.ErrShortWrite)
			}
		}

		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return written, fmt.Errorf("%w: got %d of %d bytes",
				errs.ErrUnexpectedEOF, written, n)
		}
		if err != nil {
			return written, fmt.Errorf("read source: %w", err)
		}
	}

	return written, nil
}
