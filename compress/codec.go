// Package compress implements the SPZ compression envelope: the entire
// on-disk payload (header plus attribute blocks) is wrapped in a single
// RFC 1952 gzip member.
package compress

// Compressor compresses a byte slice.
type Compressor interface {
	// Compress returns a newly allocated compressed copy of data. The
	// input slice is never modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte slice previously produced by a
// matching Compressor.
type Decompressor interface {
	// Decompress returns a newly allocated decompressed copy of data.
	// Implementations must bound the amount of memory they allocate
	// regardless of what the compressed stream claims about its own
	// size, since that size is attacker-controlled input.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression for one algorithm.
type Codec interface {
	Compressor
	Decompressor
}
