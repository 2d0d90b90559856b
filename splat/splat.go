// Package splat implements the top-level splat façade: the in-memory
// representation of a decoded point cloud, and the load/save/convert
// operations that compose the section, compress, encoding, and coord
// packages into the on-disk SPZ format.
package splat

import (
	"os"

	"github.com/arloliu/spz/compress"
	"github.com/arloliu/spz/coord"
	"github.com/arloliu/spz/encoding"
	"github.com/arloliu/spz/errs"
	"github.com/arloliu/spz/internal/pool"
	"github.com/arloliu/spz/section"
)

// Splat is a fully decoded point cloud: every attribute array is
// flattened (3 components per point for positions/scales,
// 4 for rotations, 1 for alphas, 3 for colors, and
// encoding.SHCoeffCount(ShDegree)*3 for spherical harmonics).
type Splat struct {
	NumPoints      uint32
	ShDegree       uint8
	FractionalBits uint8
	Antialiased    bool
	Version        uint32

	Positions          []float32
	Scales             []float32
	Rotations          []float32
	Alphas             []float32
	Colors             []float32
	SphericalHarmonics []float32
}

// PackReport counts, per attribute, how many quantized components
// saturated against their encoding's representable range during ToBytes.
// A non-zero count is not an error; it means the source data exceeded
// what the u8/i24 quantization can represent losslessly.
type PackReport struct {
	PositionsSaturated int
	ScalesSaturated    int
	RotationsSaturated int
	AlphasSaturated    int
	ColorsSaturated    int
	SHSaturated        int
}

// Any reports whether any attribute saturated.
func (r PackReport) Any() bool {
	return r.PositionsSaturated > 0 || r.ScalesSaturated > 0 || r.RotationsSaturated > 0 ||
		r.AlphasSaturated > 0 || r.ColorsSaturated > 0 || r.SHSaturated > 0
}

// CheckSizes validates that every attribute array's length is exactly
// what NumPoints and ShDegree imply.
func (s *Splat) CheckSizes() error {
	n := int(s.NumPoints)
	shCount := encoding.SHCoeffCount(s.ShDegree) * 3 * n

	switch {
	case len(s.Positions) != 3*n:
	case len(s.Scales) != 3*n:
	case len(s.Rotations) != 4*n:
	case len(s.Alphas) != n:
	case len(s.Colors) != 3*n:
	case len(s.SphericalHarmonics) != shCount:
	default:
		return nil
	}

	return errs.ErrInconsistentSizes
}

// ToBytes serializes the splat to a gzip-wrapped SPZ payload, first
// converting its positions, rotations, and spherical harmonics from
// "from" into the on-disk reference system (coord.RUB), since SPZ files
// always store RUB-convention data.
func (s *Splat) ToBytes(from coord.System) ([]byte, error) {
	b, _, err := s.ToBytesReport(from, compress.NewGzipCodec(0))

	return b, err
}

// ToBytesReport is ToBytes plus the per-attribute saturation counts
// accumulated while quantizing.
func (s *Splat) ToBytesReport(from coord.System, codec compress.Codec) ([]byte, PackReport, error) {
	if err := s.CheckSizes(); err != nil {
		return nil, PackReport{}, err
	}

	positions := append([]float32(nil), s.Positions...)
	rotations := append([]float32(nil), s.Rotations...)
	sh := append([]float32(nil), s.SphericalHarmonics...)

	if from != coord.RUB {
		tr, err := coord.NewTransform(from, coord.RUB)
		if err != nil {
			return nil, PackReport{}, err
		}

		tr.ApplyPositions(positions)
		tr.ApplyRotations(rotations)
		if err := tr.ApplySH(sh, s.ShDegree); err != nil {
			return nil, PackReport{}, err
		}
	}

	header := section.NewHeader(s.Version, s.NumPoints, s.ShDegree, s.FractionalBits, s.Antialiased)

	var report PackReport
	buf := pool.GetSplatBuffer()
	defer pool.PutSplatBuffer(buf)
	buf.Reset()
	buf.MustWrite(header.Bytes())

	posBytes, sat := encoding.EncodePositions(positions, s.FractionalBits)
	report.PositionsSaturated = sat
	buf.MustWrite(posBytes)

	scaleBytes, sat := encoding.EncodeScales(s.Scales)
	report.ScalesSaturated = sat
	buf.MustWrite(scaleBytes)

	var rotBytes []byte
	if s.Version == section.Version2 {
		rotBytes, sat = encoding.EncodeRotationsV2(rotations)
	} else {
		rotBytes, sat = encoding.EncodeRotationsV3(rotations)
	}
	report.RotationsSaturated = sat
	buf.MustWrite(rotBytes)

	alphaBytes, sat := encoding.EncodeAlphas(s.Alphas)
	report.AlphasSaturated = sat
	buf.MustWrite(alphaBytes)

	colorBytes, sat := encoding.EncodeColors(s.Colors)
	report.ColorsSaturated = sat
	buf.MustWrite(colorBytes)

	shBytes, sat := encoding.EncodeSH(sh, s.ShDegree)
	report.SHSaturated = sat
	buf.MustWrite(shBytes)

	compressed, err := codec.Compress(buf.Bytes())
	if err != nil {
		return nil, PackReport{}, err
	}

	return compressed, report, nil
}

// Save writes the splat's gzip-wrapped SPZ encoding to path.
func (s *Splat) Save(path string, from coord.System) error {
	data, err := s.ToBytes(from)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errs.WrapIo("save", err)
	}

	return nil
}

// FromBytes decodes a gzip-wrapped SPZ payload and converts its
// positions, rotations, and spherical harmonics from the on-disk RUB
// convention into target.
func FromBytes(data []byte, target coord.System) (*Splat, error) {
	return FromBytesWithCodec(data, target, compress.NewGzipCodec(0))
}

// FromBytesWithCodec is FromBytes with an explicit decompression codec,
// for callers that need a non-default decompressed-size limit.
func FromBytesWithCodec(data []byte, target coord.System, codec compress.Decompressor) (*Splat, error) {
	payload, err := codec.Decompress(data)
	if err != nil {
		return nil, err
	}

	header, err := section.ParseHeader(payload)
	if err != nil {
		return nil, err
	}

	body := payload[section.HeaderSize:]
	n := int(header.NumPoints)

	rotBytesPerPoint := encoding.RotationV3BytesPerPoint
	if header.Version == section.Version2 {
		rotBytesPerPoint = encoding.RotationV2BytesPerPoint
	}

	shCoeffs := encoding.SHCoeffCount(header.ShDegree)
	shLen := n * shCoeffs * 3

	expected := n*encoding.PositionBytesPerPoint + n*encoding.ScaleBytesPerPoint +
		n*rotBytesPerPoint + n + n*3 + shLen
	if len(body) != expected {
		return nil, errs.ErrLengthMismatch
	}

	off := 0
	take := func(size int) []byte {
		chunk := body[off : off+size]
		off += size

		return chunk
	}

	positions, err := encoding.DecodePositions(take(n*encoding.PositionBytesPerPoint), n, header.FractionalBits)
	if err != nil {
		return nil, err
	}

	scales, err := encoding.DecodeScales(take(n*encoding.ScaleBytesPerPoint), n)
	if err != nil {
		return nil, err
	}

	var rotations []float32
	if header.Version == section.Version2 {
		rotations, err = encoding.DecodeRotationsV2(take(n*rotBytesPerPoint), n)
	} else {
		rotations, err = encoding.DecodeRotationsV3(take(n*rotBytesPerPoint), n)
	}
	if err != nil {
		return nil, err
	}

	alphas, err := encoding.DecodeAlphas(take(n), n)
	if err != nil {
		return nil, err
	}

	colors, err := encoding.DecodeColors(take(n*3), n)
	if err != nil {
		return nil, err
	}

	sh, err := encoding.DecodeSH(take(shLen), n, header.ShDegree)
	if err != nil {
		return nil, err
	}

	if target != coord.RUB {
		tr, err := coord.NewTransform(coord.RUB, target)
		if err != nil {
			return nil, err
		}

		tr.ApplyPositions(positions)
		tr.ApplyRotations(rotations)
		if err := tr.ApplySH(sh, header.ShDegree); err != nil {
			return nil, err
		}
	}

	return &Splat{
		NumPoints:          header.NumPoints,
		ShDegree:           header.ShDegree,
		FractionalBits:     header.FractionalBits,
		Antialiased:        header.Flags.HasAntialiased(),
		Version:            header.Version,
		Positions:          positions,
		Scales:             scales,
		Rotations:          rotations,
		Alphas:             alphas,
		Colors:             colors,
		SphericalHarmonics: sh,
	}, nil
}

// Load reads and decodes an SPZ file from path.
func Load(path string, target coord.System) (*Splat, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.WrapIo("load", err)
	}

	return FromBytes(data, target)
}

// ConvertCoordinates rewrites the splat's positions, rotations, and
// spherical harmonics in place from one coordinate system to another.
func (s *Splat) ConvertCoordinates(from, to coord.System) error {
	tr, err := coord.NewTransform(from, to)
	if err != nil {
		return err
	}

	if tr.IsIdentity() {
		return nil
	}

	tr.ApplyPositions(s.Positions)
	tr.ApplyRotations(s.Rotations)

	return tr.ApplySH(s.SphericalHarmonics, s.ShDegree)
}

// Rotate180AboutX is the RUB<->RDF shortcut many splat pipelines use to
// flip a model right-side-up without a full coordinate system rename.
func (s *Splat) Rotate180AboutX() error {
	return s.ConvertCoordinates(coord.RUB, coord.RDF)
}
