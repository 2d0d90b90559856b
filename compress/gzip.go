package compress

import (
	"bytes"
	"errors"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/arloliu/spz/errs"
	"github.com/arloliu/spz/internal/pool"
)

// DefaultMaxDecompressedBytes bounds the size of a decompressed SPZ
// payload absent an explicit caller-supplied limit. A gzip stream's
// declared size is attacker-controlled, so decompression always enforces
// a cap rather than trusting it; 2 GiB comfortably covers any real splat
// while still bounding a hostile or corrupt input.
const DefaultMaxDecompressedBytes = 2 << 30 // 2 GiB

// GzipCodec implements Codec using a single RFC 1952 gzip member, the
// sole compression envelope the SPZ format supports.
//
// It is backed by klauspost/compress/gzip, a byte-for-byte compatible,
// allocation-lighter drop-in for the standard library's compress/gzip.
type GzipCodec struct {
	// MaxDecompressedBytes bounds how much memory Decompress will commit
	// to, regardless of what the compressed stream claims. Zero means
	// DefaultMaxDecompressedBytes.
	MaxDecompressedBytes int
}

var _ Codec = GzipCodec{}

// NewGzipCodec creates a GzipCodec with the given decompression cap. A
// non-positive maxDecompressedBytes selects DefaultMaxDecompressedBytes.
func NewGzipCodec(maxDecompressedBytes int) GzipCodec {
	if maxDecompressedBytes <= 0 {
		maxDecompressedBytes = DefaultMaxDecompressedBytes
	}

	return GzipCodec{MaxDecompressedBytes: maxDecompressedBytes}
}

// Compress wraps data in a single gzip member at the library's default
// compression level, for reproducible output across runs.
func (c GzipCodec) Compress(data []byte) ([]byte, error) {
	buf := pool.GetEnvelopeBuffer()
	defer pool.PutEnvelopeBuffer(buf)
	buf.Reset()

	w, err := gzip.NewWriterLevel(buf, gzip.DefaultCompression)
	if err != nil {
		return nil, err
	}

	if _, err := w.Write(data); err != nil {
		return nil, errs.ErrCorruptedEnvelope
	}

	if err := w.Close(); err != nil {
		return nil, errs.ErrCorruptedEnvelope
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// Decompress unwraps a single gzip member, refusing to allocate more than
// MaxDecompressedBytes regardless of what the stream header claims.
func (c GzipCodec) Decompress(data []byte) ([]byte, error) {
	limit := c.MaxDecompressedBytes
	if limit <= 0 {
		limit = DefaultMaxDecompressedBytes
	}

	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errs.ErrCorruptedEnvelope
	}
	defer gr.Close()

	limited := io.LimitReader(gr, int64(limit)+1)

	decoded, err := io.ReadAll(limited)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, gzip.ErrChecksum) || errors.Is(err, gzip.ErrHeader) {
			return nil, errs.ErrCorruptedEnvelope
		}

		return nil, errs.ErrCorruptedEnvelope
	}

	if len(decoded) > limit {
		return nil, errs.ErrDecompressionTooLarge
	}

	return decoded, nil
}

// DecompressPrefix decompresses only the first n bytes of the wrapped
// stream and stops, for header-only inspection that must not pay the
// cost of decoding the full payload. If the stream is shorter than n
// bytes once decompressed, it returns ErrLengthMismatch.
func (c GzipCodec) DecompressPrefix(data []byte, n int) ([]byte, error) {
	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errs.ErrCorruptedEnvelope
	}
	defer gr.Close()

	out := make([]byte, n)
	read, err := io.ReadFull(gr, out)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, errs.ErrLengthMismatch
		}

		return nil, errs.ErrCorruptedEnvelope
	}

	return out[:read], nil
}
