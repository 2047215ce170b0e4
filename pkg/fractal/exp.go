package fractal

import "math"

// Coefficients of the Cephes exp polynomial on [-ln2/2, ln2/2].
const (
	expP0 = 1.9875691500e-4
	expP1 = 1.3981999507e-3
	expP2 = 8.3334519073e-3
	expP3 = 4.1665795894e-2
	expP4 = 1.6666665459e-1
	expP5 = 5.0000001201e-1

	// ln2 split in a high part exact in few bits and a low correction
	expC1 = 0.693359375
	expC2 = -2.12194440e-4

	expHi = 709.0
	expLo = -708.0
)

// expApprox computes exp(x) as 2^n * exp(g) with |g| <= ln2/2 and exp(g)
// taken from a degree-5 polynomial. Relative error stays around 1e-7.
func expApprox(x float64) float64 {
	x = math.Max(expLo, math.Min(expHi, x))
	n := math.Floor(x*math.Log2E + 0.5)
	g := x - n*expC1 - n*expC2
	return math.Ldexp(expPoly(g), int(n))
}

func expPoly(g float64) float64 {
	p := expP0
	p = p*g + expP1
	p = p*g + expP2
	p = p*g + expP3
	p = p*g + expP4
	p = p*g + expP5
	return p*g*g + g + 1
}

// expLanes computes exp for the first n lanes of src, one stage at a time
// across all lanes.
func expLanes(dst, src *Lanes, n int) {
	var k, g Lanes
	for i := 0; i < n; i++ {
		x := math.Max(expLo, math.Min(expHi, src[i]))
		k[i] = math.Floor(x*math.Log2E + 0.5)
		g[i] = x - k[i]*expC1 - k[i]*expC2
	}
	for i := 0; i < n; i++ {
		dst[i] = expPoly(g[i])
	}
	for i := 0; i < n; i++ {
		dst[i] = math.Ldexp(dst[i], int(k[i]))
	}
}
