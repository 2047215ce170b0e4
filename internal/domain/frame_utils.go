package domain

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var ErrInvalidFrame = errors.New("invalid frame")

// Luminance returns the Rec. 601 luma of every pixel, in buffer order.
func (f *FrameBuffer) Luminance() []float64 {
	luma := make([]float64, len(f.Pixels))
	for i, p := range f.Pixels {
		c := UnpackColor(p)
		luma[i] = 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	}
	return luma
}

// Stats computes mean, standard deviation and range of the frame luminance.
func (f *FrameBuffer) Stats() (FrameStats, error) {
	if f == nil || len(f.Pixels) == 0 {
		return FrameStats{}, ErrInvalidFrame
	}
	luma := f.Luminance()
	mean, std := stat.MeanStdDev(luma, nil)
	if len(luma) == 1 {
		std = 0
	}
	return FrameStats{
		Mean:   mean,
		StdDev: std,
		Min:    floats.Min(luma),
		Max:    floats.Max(luma),
	}, nil
}

// Hist calculates the luminance histogram of the frame over n equal bins.
// Bins holds the lower edge of every bin.
func (f *FrameBuffer) Hist(n int) (Histogram, error) {
	if f == nil || len(f.Pixels) == 0 || n < 1 {
		return Histogram{}, ErrInvalidFrame
	}

	luma := f.Luminance()
	sort.Float64s(luma)

	lo, hi := luma[0], luma[len(luma)-1]
	if hi <= lo {
		hi = lo + 1
	}
	dividers := floats.Span(make([]float64, n+1), lo, hi)
	// последний разделитель исключающий, сдвигаем чтобы max попал в последний бин
	dividers[n] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, dividers, luma, nil)
	vals := make([]int, n)
	for i, c := range counts {
		vals[i] = int(c)
	}

	return Histogram{
		Bins: dividers[:n],
		Vals: vals,
		Len:  n,
	}, nil
}

// Diff counts the pixels that differ between two frames of equal size.
func (f *FrameBuffer) Diff(other *FrameBuffer) (int, error) {
	if f == nil || other == nil || f.Width != other.Width || f.Height != other.Height ||
		len(f.Pixels) != len(other.Pixels) {
		return 0, ErrInvalidFrame
	}
	count := 0
	for i, p := range f.Pixels {
		if p != other.Pixels[i] {
			count++
		}
	}
	return count, nil
}
