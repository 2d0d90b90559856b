// Package encoding implements the six SPZ attribute quantization codecs:
// positions, scales, rotations, alphas, colors, and spherical harmonics.
//
// Every codec in this package is a pure function pair, EncodeX/DecodeX,
// rather than a stateful builder: every SPZ attribute block has a size
// fully determined up front by the header's num_points and sh_degree
// fields, so there is nothing to accumulate across calls. This mirrors
// the quantize/dequantize pure-function style used by other fixed-block
// binary codecs (e.g. WebP's per-macroblock coefficient quantizer).
//
// Encoders report a saturation count alongside their output bytes:
// clamping out-of-range floats is not an error, only something callers
// may want to know about.
package encoding
