package fractal

import (
	"fmt"
	"math"

	"julia-render/internal/domain"
)

// MaxLanes is the widest row segment the wide kernel evaluates per call.
const MaxLanes = 8

// Lanes holds one float64 per lane.
type Lanes [MaxLanes]float64

// EscapeWide iterates the orbits of pixels (x, y) ... (x+n-1, y) in
// lockstep. Lanes whose column is outside the image start inactive and
// keep a zero sum.
//
// Every iteration steps all n lanes, then commits the result only on lanes
// whose bit is set in the active mask. A lane's bit is cleared once its
// orbit leaves the bailout circle; the loop ends when the mask is empty or
// after IterationLimit steps.
func EscapeWide(x, y, width, height int, params domain.FractalParams, smooth *Lanes, iterations *[MaxLanes]int, n int) {
	var zr, zi Lanes
	var mask uint8

	_, im := MapPoint(0, y, width, height)
	for i := 0; i < n; i++ {
		smooth[i] = 0
		iterations[i] = 0
		if x+i < width {
			zr[i], _ = MapPoint(x+i, y, width, height)
			zi[i] = im
			mask |= 1 << i
		}
	}

	var nr, ni, mag2, negMag, e Lanes
	for step := 0; step < IterationLimit && mask != 0; step++ {
		for i := 0; i < n; i++ {
			nr[i], ni[i], mag2[i] = quadStep(zr[i], zi[i], params.CReal, params.CImaginary)
			negMag[i] = -math.Sqrt(mag2[i])
		}
		expLanes(&e, &negMag, n)

		var next uint8
		for i := 0; i < n; i++ {
			active := mask >> i & 1
			on := float64(active)
			smooth[i] += on * e[i]
			zr[i] = blend(active, nr[i], zr[i])
			zi[i] = blend(active, ni[i], zi[i])
			iterations[i] += int(active)
			next |= active & inside(mag2[i]) << i
		}
		mask = next
	}
}

// EvaluateWide returns the colors of n consecutive pixels starting at
// (x, y). n must be between 1 and MaxLanes; 4 and 8 are the widths the
// renderer uses.
func EvaluateWide(x, y, width, height int, params domain.FractalParams, n int) []domain.Color {
	dst := make([]domain.Color, n)
	EvaluateWideInto(dst, x, y, width, height, params)
	return dst
}

// EvaluateWideInto is EvaluateWide writing into dst; len(dst) is the lane count.
func EvaluateWideInto(dst []domain.Color, x, y, width, height int, params domain.FractalParams) {
	n := len(dst)
	if n < 1 || n > MaxLanes {
		panic(fmt.Sprintf("fractal: lane count %d out of range [1, %d]", n, MaxLanes))
	}

	var smooth Lanes
	var iterations [MaxLanes]int
	EscapeWide(x, y, width, height, params, &smooth, &iterations, n)
	for i := range dst {
		dst[i] = Shade(smooth[i])
	}
}

// blend selects a when the mask bit is 1 and b otherwise.
func blend(bit uint8, a, b float64) float64 {
	if bit != 0 {
		return a
	}
	return b
}

func inside(mag2 float64) uint8 {
	if mag2 < radius2 {
		return 1
	}
	return 0
}
