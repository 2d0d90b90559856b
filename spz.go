// Package spz is the top-level entry point for reading and writing SPZ
// (Splat Zip) point cloud files: it re-exports the splat façade's load,
// save, and coordinate-conversion operations so most callers never need
// to import the section/compress/encoding/coord subpackages directly.
package spz

import (
	"github.com/arloliu/spz/compress"
	"github.com/arloliu/spz/coord"
	"github.com/arloliu/spz/section"
	"github.com/arloliu/spz/splat"
)

// Re-exported coordinate systems, so callers can write spz.RUB instead of
// reaching into the coord subpackage for the common case.
const (
	Unspecified = coord.Unspecified
	LDB         = coord.LDB
	RDB         = coord.RDB
	LUB         = coord.LUB
	RUB         = coord.RUB
	LDF         = coord.LDF
	RDF         = coord.RDF
	LUF         = coord.LUF
	RUF         = coord.RUF
)

// CoordinateSystem names one of the eight axis conventions a splat's
// geometry can be expressed in.
type CoordinateSystem = coord.System

// Splat is a fully decoded SPZ point cloud.
type Splat = splat.Splat

// PackReport carries per-attribute quantization saturation counts.
type PackReport = splat.PackReport

// Header is the fixed 16-byte SPZ file header.
type Header = section.Header

// Load reads and decodes an SPZ file from path, converting its geometry
// into target's coordinate convention.
func Load(path string, target CoordinateSystem) (*Splat, error) {
	return splat.Load(path, target)
}

// FromBytes decodes an in-memory gzip-wrapped SPZ payload.
func FromBytes(data []byte, target CoordinateSystem) (*Splat, error) {
	return splat.FromBytes(data, target)
}

// HeaderFromFile decodes only the 16-byte header of an SPZ file at path,
// without reading or decoding its attribute blocks.
func HeaderFromFile(path string) (Header, error) {
	return splat.HeaderFromFile(path)
}

// HeaderFromBytes decodes only the 16-byte header of an in-memory
// gzip-wrapped SPZ payload.
func HeaderFromBytes(data []byte) (Header, error) {
	return splat.HeaderFromBytes(data)
}

// NewGzipCodec builds the gzip compression envelope codec used by
// FromBytesWithCodec and ToBytesReport, with an explicit decompressed-size
// budget. A non-positive limit selects the package default (2 GiB).
func NewGzipCodec(maxDecompressedBytes int) compress.GzipCodec {
	return compress.NewGzipCodec(maxDecompressedBytes)
}
