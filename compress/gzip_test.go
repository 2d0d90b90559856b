package compress

import (
	"testing"

	"github.com/arloliu/spz/errs"
	"github.com/stretchr/testify/require"
)

func TestGzipCodec_RoundTrip(t *testing.T) {
	codec := NewGzipCodec(0)
	original := []byte("the quick brown fox jumps over the lazy dog, repeated many times. ")

	compressed, err := codec.Compress(original)
	require.NoError(t, err)
	require.NotEmpty(t, compressed)

	decoded, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, original, decoded)
}

func TestGzipCodec_EmptyPayload(t *testing.T) {
	codec := NewGzipCodec(0)

	compressed, err := codec.Compress(nil)
	require.NoError(t, err)

	decoded, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestGzipCodec_CorruptedStream(t *testing.T) {
	codec := NewGzipCodec(0)
	compressed, err := codec.Compress([]byte("some payload data"))
	require.NoError(t, err)

	// Flip a byte deep in the compressed body to break the CRC/deflate stream.
	corrupted := append([]byte(nil), compressed...)
	corrupted[len(corrupted)-3] ^= 0xFF

	_, err = codec.Decompress(corrupted)
	require.ErrorIs(t, err, errs.ErrCorruptedEnvelope)
}

func TestGzipCodec_TruncatedStream(t *testing.T) {
	codec := NewGzipCodec(0)
	compressed, err := codec.Compress([]byte("payload that is long enough to truncate meaningfully"))
	require.NoError(t, err)

	truncated := compressed[:len(compressed)-4]

	_, err = codec.Decompress(truncated)
	require.ErrorIs(t, err, errs.ErrCorruptedEnvelope)
}

func TestGzipCodec_DecompressionTooLarge(t *testing.T) {
	codec := NewGzipCodec(8)
	compressed, err := codec.Compress([]byte("this payload is definitely longer than eight bytes"))
	require.NoError(t, err)

	_, err = codec.Decompress(compressed)
	require.ErrorIs(t, err, errs.ErrDecompressionTooLarge)
}

func TestGzipCodec_DecompressPrefix(t *testing.T) {
	codec := NewGzipCodec(0)
	payload := []byte("0123456789ABCDEFGHIJ")
	compressed, err := codec.Compress(payload)
	require.NoError(t, err)

	prefix, err := codec.DecompressPrefix(compressed, 10)
	require.NoError(t, err)
	require.Equal(t, payload[:10], prefix)
}

func TestGzipCodec_DecompressPrefixTooShort(t *testing.T) {
	codec := NewGzipCodec(0)
	compressed, err := codec.Compress([]byte("tiny"))
	require.NoError(t, err)

	_, err = codec.DecompressPrefix(compressed, 16)
	require.ErrorIs(t, err, errs.ErrLengthMismatch)
}

func TestGzipCodec_BadGzipHeader(t *testing.T) {
	codec := NewGzipCodec(0)

	_, err := codec.Decompress([]byte{0x00, 0x01, 0x02, 0x03})
	require.ErrorIs(t, err, errs.ErrCorruptedEnvelope)
}
