package fractal

import (
	"math"
	"math/rand/v2"

	"julia-render/internal/domain"
)

// seedModulus is the distance from the origin of the classic
// c = 0.7885·e^{ia} family, whose Julia sets stay connected and detailed
// for every angle.
const seedModulus = 0.7885

// ParamsFromSeed derives a fractal constant from seed. The same seed
// always yields the same constant.
func ParamsFromSeed(seed uint64) domain.FractalParams {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	angle := rng.Float64() * 2 * math.Pi
	return domain.FractalParams{
		CReal:      seedModulus * math.Cos(angle),
		CImaginary: seedModulus * math.Sin(angle),
	}
}
