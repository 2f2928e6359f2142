package rom

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nesutil/chrsplice/errs"
	"github.com/nesutil/chrsplice/ines"
)

func TestExtract(t *testing.T) {
	t.Run("Headered image", func(t *testing.T) {
		img := buildImage(2, 1, 0, nil)
		lay, err := Parse(bytes.NewReader(img))
		require.NoError(t, err)

		var out bytes.Buffer
		n, err := Extract(bytes.NewReader(img), &out)
		require.NoError(t, err)
		require.Equal(t, int64(8192), n)
		require.Equal(t, chrOf(img, lay), out.Bytes())
	})

	t.Run("Trainer image", func(t *testing.T) {
		img := buildImage(1, 2, ines.FlagTrainer, nil)
		lay, err := Parse(bytes.NewReader(img))
		require.NoError(t, err)

		var out bytes.Buffer
		n, err := Extract(bytes.NewReader(img), &out)
		require.NoError(t, err)
		require.Equal(t, lay.CHRSize, n)
		require.Equal(t, chrOf(img, lay), out.Bytes())
	})

	t.Run("Trailing remainder not extracted", func(t *testing.T) {
		img := buildImage(1, 1, 0, pattern(100, 0x77))
		lay, err := Parse(bytes.NewReader(img))
		require.NoError(t, err)

		var out bytes.Buffer
		_, err = Extract(bytes.NewReader(img), &out)
		require.NoError(t, err)
		require.Equal(t, chrOf(img, lay), out.Bytes())
		require.Equal(t, lay.CHRSize, int64(out.Len()))
	})

	t.Run("Raw payload passes through", func(t *testing.T) {
		raw := pattern(4096, 0x55)

		var out bytes.Buffer
		n, err := Extract(bytes.NewReader(raw), &out)
		require.NoError(t, err)
		require.Equal(t, int64(len(raw)), n)
		require.Equal(t, raw, out.Bytes())
	})

	t.Run("Zero CHR", func(t *testing.T) {
		img := buildImage(1, 0, 0, nil)

		var out bytes.Buffer
		_, err := Extract(bytes.NewReader(img), &out)
		require.ErrorIs(t, err, errs.ErrNoCHRData)
		require.Zero(t, out.Len())
	})

	t.Run("Truncated image fails before any copy", func(t *testing.T) {
		img := buildImage(2, 1, 0, nil)

		var out bytes.Buffer
		_, err := Extract(bytes.NewReader(img[:len(img)-10]), &out)
		require.ErrorIs(t, err, errs.ErrImageTooSmall)
		require.Zero(t, out.Len())
	})

	t.Run("Nil destination", func(t *testing.T) {
		img := buildImage(1, 1, 0, nil)

		_, err := Extract(bytes.NewReader(img), nil)
		require.ErrorIs(t, err, errs.ErrMissingHandle)
	})
}

func TestExtractLayout_ShortSource(t *testing.T) {
	// A layout that lies about the region size must surface as an
	// unexpected EOF, not as a silent short region.
	img := buildImage(1, 1, 0, nil)
	lay, err := Parse(bytes.NewReader(img))
	require.NoError(t, err)
	lay.CHRSize += 4096

	var out bytes.Buffer
	_, err = ExtractLayout(bytes.NewReader(img), lay, &out)
	require.ErrorIs(t, err, errs.ErrUnexpectedEOF)
}

func BenchmarkExtract(b *testing.B) {
	img := buildImage(8, 16, 0, nil)
	src := bytes.NewReader(img)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var out bytes.Buffer
		out.Grow(16 * ines.CHRBankSize)
		if _, err := Extract(src, &out); err != nil {
			b.Fatal(err)
		}
	}
}
