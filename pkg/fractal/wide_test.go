package fractal

import (
	"fmt"
	"math"
	"testing"

	"julia-render/internal/domain"
)

func TestExpApprox(t *testing.T) {
	for x := -40.0; x <= 5; x += 0.01 {
		got, want := expApprox(x), math.Exp(x)
		if rel := math.Abs(got-want) / want; rel > 1e-6 {
			t.Fatalf("expApprox(%v) = %v, want %v (relative error %v)", x, got, want, rel)
		}
	}
	if got := expApprox(0); got != 1 {
		t.Errorf("expApprox(0) = %v, want 1", got)
	}
}

func TestExpLanesMatchesScalar(t *testing.T) {
	src := Lanes{0, -0.1, -0.7, -1.5, -2.25, -3, -8.75, -20}
	var dst Lanes
	expLanes(&dst, &src, MaxLanes)
	for i := range src {
		if want := expApprox(src[i]); dst[i] != want {
			t.Errorf("lane %d: expLanes = %v, expApprox = %v", i, dst[i], want)
		}
	}
}

func TestEscapeWide_MatchesScalarPerLane(t *testing.T) {
	params := []domain.FractalParams{
		{CReal: -0.4, CImaginary: 0.6},
		{CReal: -0.8, CImaginary: 0.156},
		{CReal: 0.285, CImaginary: 0.01},
	}
	const width, height = 64, 48

	for _, p := range params {
		for _, n := range []int{4, 8} {
			t.Run(fmt.Sprintf("c=%v%+vi/lanes=%d", p.CReal, p.CImaginary, n), func(t *testing.T) {
				var smooth Lanes
				var iterations [MaxLanes]int
				for y := 0; y < height; y++ {
					for x := 0; x < width; x += n {
						EscapeWide(x, y, width, height, p, &smooth, &iterations, n)
						for i := 0; i < n; i++ {
							wantSmooth, wantIter := Escape(x+i, y, width, height, p)
							if iterations[i] != wantIter {
								t.Fatalf("pixel (%d, %d): %d iterations, scalar %d", x+i, y, iterations[i], wantIter)
							}
							if rel := math.Abs(smooth[i]-wantSmooth) / wantSmooth; rel > 1e-6 {
								t.Fatalf("pixel (%d, %d): smooth %v, scalar %v", x+i, y, smooth[i], wantSmooth)
							}
						}
					}
				}
			})
		}
	}
}

func TestEvaluateWide_ColorsWithinOneStep(t *testing.T) {
	const width, height = 96, 64
	for _, n := range []int{4, 8} {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x += n {
				got := EvaluateWide(x, y, width, height, testParams, n)
				if len(got) != n {
					t.Fatalf("EvaluateWide returned %d colors, want %d", len(got), n)
				}
				for i, c := range got {
					want := Evaluate(x+i, y, width, height, testParams)
					if diff(c.R, want.R) > 1 || diff(c.G, want.G) > 1 || diff(c.B, want.B) > 1 {
						t.Fatalf("lanes=%d pixel (%d, %d): wide %+v, scalar %+v", n, x+i, y, c, want)
					}
				}
			}
		}
	}
}

func TestEscapeWide_LanesPastEdgeStayInactive(t *testing.T) {
	var smooth Lanes
	var iterations [MaxLanes]int
	// columns 6 and 7 exist, 8..13 do not
	EscapeWide(6, 3, 8, 8, testParams, &smooth, &iterations, MaxLanes)
	for i := 2; i < MaxLanes; i++ {
		if iterations[i] != 0 || smooth[i] != 0 {
			t.Errorf("lane %d past the edge: %d iterations, smooth %v", i, iterations[i], smooth[i])
		}
	}
	for i := 0; i < 2; i++ {
		if iterations[i] == 0 {
			t.Errorf("lane %d inside the image never iterated", i)
		}
	}
}

func TestEscapeWide_FixedPointRunsToLimit(t *testing.T) {
	var smooth Lanes
	var iterations [MaxLanes]int
	// pixel (50, 50) sits on the fixed point z = 0 in lane 0
	EscapeWide(50, 50, 100, 100, domain.FractalParams{}, &smooth, &iterations, 4)
	if iterations[0] != IterationLimit || smooth[0] != IterationLimit {
		t.Errorf("lane 0: %d iterations, smooth %v; want %d, %d",
			iterations[0], smooth[0], IterationLimit, IterationLimit)
	}
}

func TestEvaluateWideInto_PanicsOnBadLaneCount(t *testing.T) {
	for _, n := range []int{0, MaxLanes + 1} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("no panic for %d lanes", n)
				}
			}()
			EvaluateWideInto(make([]domain.Color, n), 0, 0, 8, 8, testParams)
		})
	}
}
