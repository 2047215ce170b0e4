// Package fractal evaluates the quadratic Julia map per pixel and turns the
// smoothed escape time into a color.
//
// Two kernels are provided. Evaluate works on one pixel at a time.
// EvaluateWide works on a row segment of 4 or 8 pixels in lockstep, with a
// per-lane active mask standing in for the early exit of the scalar loop.
// Both produce the same color for the same pixel, up to one channel step
// caused by the polynomial exp used in the wide kernel.
//
// The kernels run once per pixel and take no logger; callers log per strip.
package fractal

import (
	"math"

	"julia-render/internal/domain"
)

const (
	// IterationLimit bounds the orbit length of every pixel.
	IterationLimit = 1000
	// Radius of the viewing window and of the bailout circle.
	Radius  = 1.5
	radius2 = Radius * Radius
	// smoothScale stretches the normalised smooth sum over the hue wheel.
	smoothScale = 10.0
	// saturationBias is added to the value to get the HSB saturation.
	saturationBias = 0.2
)

// MapPoint maps pixel (x, y) of a width×height image into the window
// [-1.5, 1.5]×[-1.5, 1.5].
func MapPoint(x, y, width, height int) (re, im float64) {
	return -Radius + 2*Radius*span(x, width), -Radius + 2*Radius*span(y, height)
}

// span returns v/n, treating non-positive n as 1.
func span(v, n int) float64 {
	if n < 1 {
		n = 1
	}
	return float64(v) / float64(n)
}

// quadStep advances z to z^2 + c and returns the new squared magnitude.
// The explicit conversions stop the compiler from fusing multiply-adds, so
// the scalar and the wide kernel follow bit-identical orbits.
func quadStep(zr, zi, cr, ci float64) (nr, ni, mag2 float64) {
	nr = float64(zr*zr) - float64(zi*zi) + cr
	ni = float64(2*zr*zi) + ci
	mag2 = float64(nr*nr) + float64(ni*ni)
	return nr, ni, mag2
}

// Escape iterates the orbit of (x, y) and returns the smooth sum together
// with the number of iterations performed.
func Escape(x, y, width, height int, params domain.FractalParams) (smooth float64, iterations int) {
	zr, zi := MapPoint(x, y, width, height)
	for iterations < IterationLimit {
		var mag2 float64
		zr, zi, mag2 = quadStep(zr, zi, params.CReal, params.CImaginary)
		iterations++
		smooth += math.Exp(-math.Sqrt(mag2))
		if mag2 >= radius2 {
			break
		}
	}
	return smooth, iterations
}

// Evaluate returns the color of pixel (x, y).
func Evaluate(x, y, width, height int, params domain.FractalParams) domain.Color {
	smooth, _ := Escape(x, y, width, height, params)
	return Shade(smooth)
}

// Shade maps an accumulated smooth sum to its color.
func Shade(smooth float64) domain.Color {
	value := smooth / IterationLimit * smoothScale
	return HSBToRGB(value, value+saturationBias, value)
}
