package freq

import (
	"fmt"
	"math"

	"github.com/GannaSameh/atlas/pkg/atlas/internalerr"
)

// Bin is one equal-width histogram bucket. Every bin is half-open
// [Lo, Hi) except the last, which also includes Hi.
type Bin struct {
	Lo    float64 `json:"lo"`
	Hi    float64 `json:"hi"`
	Count int     `json:"count"`
}

// Histogram buckets values into bins equal-width bins spanning their
// minimum and maximum. When all values are equal the range is widened by
// half a unit on each side.
func Histogram(values []int, bins int) ([]Bin, error) {
	if bins <= 0 {
		return nil, fmt.Errorf("histogram: bins %d: %w", bins, internalerr.ErrInvalidInput)
	}
	if len(values) == 0 {
		return []Bin{}, nil
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	start, end := float64(lo), float64(hi)
	if lo == hi {
		start -= 0.5
		end += 0.5
	}

	width := (end - start) / float64(bins)
	out := make([]Bin, bins)
	for i := range out {
		out[i].Lo = start + float64(i)*width
		out[i].Hi = start + float64(i+1)*width
	}
	out[bins-1].Hi = end

	for _, v := range values {
		i := int(math.Floor((float64(v) - start) / width))
		if i >= bins {
			i = bins - 1
		}
		if i < 0 {
			i = 0
		}
		out[i].Count++
	}
	return out, nil
}
