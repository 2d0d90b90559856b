package splat

import (
	"math"
	"os"
	"sort"

	"github.com/arloliu/spz/compress"
	"github.com/arloliu/spz/errs"
	"github.com/arloliu/spz/section"
)

// HeaderFromBytes decodes only the SPZ header from a gzip-wrapped
// payload, stopping as soon as the first section.HeaderSize decompressed
// bytes are available rather than paying for the full attribute decode.
func HeaderFromBytes(data []byte) (section.Header, error) {
	codec := compress.NewGzipCodec(0)

	raw, err := codec.DecompressPrefix(data, section.HeaderSize)
	if err != nil {
		return section.Header{}, err
	}

	return section.ParseHeader(raw)
}

// HeaderFromFile is HeaderFromBytes reading its input from path.
func HeaderFromFile(path string) (section.Header, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return section.Header{}, errs.WrapIo("load", err)
	}

	return HeaderFromBytes(data)
}

// BoundingBox returns the per-axis (min, max) of the splat's positions.
// It returns an error if the splat has no points.
func (s *Splat) BoundingBox() (min, max [3]float32, err error) {
	if s.NumPoints == 0 || len(s.Positions) == 0 {
		return min, max, errs.ErrInconsistentSizes
	}

	min = [3]float32{s.Positions[0], s.Positions[1], s.Positions[2]}
	max = min

	for i := 0; i+2 < len(s.Positions); i += 3 {
		for axis := 0; axis < 3; axis++ {
			v := s.Positions[i+axis]
			if v < min[axis] {
				min[axis] = v
			}
			if v > max[axis] {
				max[axis] = v
			}
		}
	}

	return min, max, nil
}

// MedianVolume returns the median, across all points, of the ellipsoid
// volume implied by a point's scale triple (scales are stored in log
// space, so volume = exp(sx)*exp(sy)*exp(sz)). It runs in O(n) via
// quickselect rather than a full O(n log n) sort.
func (s *Splat) MedianVolume() (float32, error) {
	n := int(s.NumPoints)
	if n == 0 || len(s.Scales) != 3*n {
		return 0, errs.ErrInconsistentSizes
	}

	volumes := make([]float32, n)
	for i := 0; i < n; i++ {
		sx, sy, sz := s.Scales[3*i], s.Scales[3*i+1], s.Scales[3*i+2]
		volumes[i] = float32(math.Exp(float64(sx))) * float32(math.Exp(float64(sy))) * float32(math.Exp(float64(sz)))
	}

	return quickselectMedian(volumes), nil
}

// quickselectMedian returns the median of data via Lomuto-partition
// quickselect, leaving data reordered. For even-length input it averages
// the two middle elements.
func quickselectMedian(data []float32) float32 {
	n := len(data)
	if n == 1 {
		return data[0]
	}

	lo := quickselect(data, n/2)
	if n%2 == 1 {
		return lo
	}

	hi := quickselect(data[:n/2], n/2-1)

	return (lo + hi) / 2
}

// quickselect returns the k-th smallest element of data (0-indexed).
func quickselect(data []float32, k int) float32 {
	lo, hi := 0, len(data)-1
	for lo < hi {
		p := partition(data, lo, hi)
		switch {
		case k < p:
			hi = p - 1
		case k > p:
			lo = p + 1
		default:
			return data[p]
		}
	}

	return data[lo]
}

func partition(data []float32, lo, hi int) int {
	pivot := data[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if data[j] < pivot {
			data[i], data[j] = data[j], data[i]
			i++
		}
	}
	data[i], data[hi] = data[hi], data[i]

	return i
}

// sortedCopy is used only by tests to cross-check quickselectMedian
// against a reference sort.
func sortedCopy(data []float32) []float32 {
	out := append([]float32(nil), data...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
