package rom

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nesutil/chrsplice/errs"
	"github.com/nesutil/chrsplice/ines"
)

func TestReplace(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		img := buildImage(2, 1, 0, nil)
		replacement := pattern(8192, 0xC3)

		var rebuilt bytes.Buffer
		n, err := ReplaceBytes(bytes.NewReader(img), replacement, &rebuilt)
		require.NoError(t, err)
		require.Equal(t, int64(len(img)), n)
		require.Equal(t, len(img), rebuilt.Len())

		// Extracting from the rebuilt image returns exactly the replacement.
		var out bytes.Buffer
		_, err = Extract(bytes.NewReader(rebuilt.Bytes()), &out)
		require.NoError(t, err)
		require.Equal(t, replacement, out.Bytes())

		// Everything outside the region is untouched.
		lay, err := Parse(bytes.NewReader(img))
		require.NoError(t, err)
		require.Equal(t, img[:lay.CHROffset], rebuilt.Bytes()[:lay.CHROffset])
	})

	t.Run("Identity replace", func(t *testing.T) {
		img := buildImage(1, 2, ines.FlagTrainer, pattern(64, 0x99))

		var chr bytes.Buffer
		_, err := Extract(bytes.NewReader(img), &chr)
		require.NoError(t, err)

		var rebuilt bytes.Buffer
		_, err = ReplaceBytes(bytes.NewReader(img), chr.Bytes(), &rebuilt)
		require.NoError(t, err)
		require.Equal(t, img, rebuilt.Bytes())
	})

	t.Run("Remainder preserved", func(t *testing.T) {
		trailer := pattern(300, 0x99)
		img := buildImage(1, 1, 0, trailer)
		replacement := pattern(8192, 0xC3)

		var rebuilt bytes.Buffer
		_, err := ReplaceBytes(bytes.NewReader(img), replacement, &rebuilt)
		require.NoError(t, err)
		require.Equal(t, trailer, rebuilt.Bytes()[rebuilt.Len()-len(trailer):])
	})

	t.Run("Empty remainder is valid", func(t *testing.T) {
		img := buildImage(1, 1, 0, nil)

		var rebuilt bytes.Buffer
		n, err := ReplaceBytes(bytes.NewReader(img), pattern(8192, 0xC3), &rebuilt)
		require.NoError(t, err)
		require.Equal(t, int64(len(img)), n)
	})

	t.Run("Non-seekable replacement reader", func(t *testing.T) {
		img := buildImage(1, 1, 0, nil)
		replacement := pattern(8192, 0xC3)

		// bytes.Buffer is a plain io.Reader; Replace must materialize it to
		// learn its length before splicing.
		var rebuilt bytes.Buffer
		_, err := Replace(bytes.NewReader(img), bytes.NewBuffer(replacement), &rebuilt)
		require.NoError(t, err)

		var out bytes.Buffer
		_, err = Extract(bytes.NewReader(rebuilt.Bytes()), &out)
		require.NoError(t, err)
		require.Equal(t, replacement, out.Bytes())
	})

	t.Run("Size mismatch produces no output", func(t *testing.T) {
		img := buildImage(1, 1, 0, nil)

		var rebuilt bytes.Buffer
		_, err := ReplaceBytes(bytes.NewReader(img), pattern(8191, 0xC3), &rebuilt)
		require.ErrorIs(t, err, errs.ErrCHRSizeMismatch)
		require.Zero(t, rebuilt.Len())

		_, err = ReplaceBytes(bytes.NewReader(img), pattern(8193, 0xC3), &rebuilt)
		require.ErrorIs(t, err, errs.ErrCHRSizeMismatch)
		require.Zero(t, rebuilt.Len())
	})

	t.Run("Raw payload refused", func(t *testing.T) {
		raw := pattern(4096, 0x55)

		var rebuilt bytes.Buffer
		_, err := ReplaceBytes(bytes.NewReader(raw), pattern(4096, 0xC3), &rebuilt)
		require.ErrorIs(t, err, errs.ErrNotHeadered)
		require.Zero(t, rebuilt.Len())
	})

	t.Run("Zero CHR", func(t *testing.T) {
		img := buildImage(1, 0, 0, nil)

		var rebuilt bytes.Buffer
		_, err := ReplaceBytes(bytes.NewReader(img), nil, &rebuilt)
		require.ErrorIs(t, err, errs.ErrNoCHRData)
	})

	t.Run("Nil handles", func(t *testing.T) {
		img := buildImage(1, 1, 0, nil)

		_, err := Replace(bytes.NewReader(img), nil, &bytes.Buffer{})
		require.ErrorIs(t, err, errs.ErrMissingHandle)

		_, err = ReplaceBytes(bytes.NewReader(img), pattern(8192, 0xC3), nil)
		require.ErrorIs(t, err, errs.ErrMissingHandle)

		_, err = ReplaceBytes(nil, pattern(8192, 0xC3), &bytes.Buffer{})
		require.ErrorIs(t, err, errs.ErrMissingHandle)
	})

	t.Run("Source left intact", func(t *testing.T) {
		img := buildImage(1, 1, 0, nil)
		orig := append([]byte{}, img...)

		var rebuilt bytes.Buffer
		_, err := ReplaceBytes(bytes.NewReader(img), pattern(8192, 0xC3), &rebuilt)
		require.NoError(t, err)
		require.Equal(t, orig, img)
	})
}

func BenchmarkReplace(b *testing.B) {
	img := buildImage(8, 16, 0, nil)
	src := bytes.NewReader(img)
	replacement := pattern(16*ines.CHRBankSize, 0xC3)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var out bytes.Buffer
		out.Grow(len(img))
		if _, err := ReplaceBytes(src, replacement, &out); err != nil {
			b.Fatal(err)
		}
	}
}
