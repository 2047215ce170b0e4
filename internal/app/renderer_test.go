package app

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"julia-render/internal/domain"
	"julia-render/pkg/fractal"

	"go.uber.org/zap/zaptest"
)

var juliaParams = domain.FractalParams{CReal: -0.4, CImaginary: 0.6}

func TestRender_FourByFour(t *testing.T) {
	r := NewFractalRenderer(zaptest.NewLogger(t))
	frame, err := r.Render(domain.RenderOptions{
		Width: 4, Height: 4, StripSize: 2, Workers: 2, Lanes: 1, Params: juliaParams,
	})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	for y := range 4 {
		for x := range 4 {
			want := fractal.Evaluate(x, y, 4, 4, juliaParams).Pack()
			if got := frame.Pixels[y*4+x]; got != want {
				t.Errorf("pixel (%d, %d) = %#06x, want %#06x", x, y, got, want)
			}
		}
	}
}

func TestRender_IndependentOfScheduling(t *testing.T) {
	const width, height = 37, 29
	r := NewFractalRenderer(zaptest.NewLogger(t))

	for _, lanes := range []int{1, 4, 8} {
		reference, err := r.Render(domain.RenderOptions{
			Width: width, Height: height, StripSize: height, Workers: 1, Lanes: lanes, Params: juliaParams,
		})
		if err != nil {
			t.Fatalf("reference render error: %v", err)
		}

		for _, workers := range []int{2, 3, 8} {
			for _, strip := range []int{1, 4, 7} {
				t.Run(fmt.Sprintf("lanes=%d/workers=%d/strip=%d", lanes, workers, strip), func(t *testing.T) {
					frame, err := r.Render(domain.RenderOptions{
						Width: width, Height: height, StripSize: strip, Workers: workers, Lanes: lanes, Params: juliaParams,
					})
					if err != nil {
						t.Fatalf("Render error: %v", err)
					}
					if !slices.Equal(frame.Pixels, reference.Pixels) {
						n, _ := frame.Diff(reference)
						t.Errorf("%d pixels differ from the single-worker render", n)
					}
				})
			}
		}
	}
}

func TestRender_WideMatchesScalar(t *testing.T) {
	// width 37 leaves a partial group that goes through the scalar kernel
	r := NewFractalRenderer(zaptest.NewLogger(t))
	opts := domain.RenderOptions{Width: 37, Height: 21, StripSize: 5, Workers: 4, Lanes: 1, Params: juliaParams}

	scalar, err := r.Render(opts)
	if err != nil {
		t.Fatal(err)
	}
	for _, lanes := range []int{4, 8} {
		opts.Lanes = lanes
		wide, err := r.Render(opts)
		if err != nil {
			t.Fatal(err)
		}
		for i := range scalar.Pixels {
			a, b := domain.UnpackColor(scalar.Pixels[i]), domain.UnpackColor(wide.Pixels[i])
			if absDiff(a.R, b.R) > 1 || absDiff(a.G, b.G) > 1 || absDiff(a.B, b.B) > 1 {
				t.Fatalf("lanes=%d pixel %d: wide %+v, scalar %+v", lanes, i, b, a)
			}
		}
	}
}

func TestRender_RejectsInvalidOptions(t *testing.T) {
	valid := domain.RenderOptions{Width: 8, Height: 8, StripSize: 2, Workers: 2, Lanes: 4, Params: juliaParams}
	tests := []struct {
		name   string
		modify func(*domain.RenderOptions)
		want   []error
	}{
		{"zero width", func(o *domain.RenderOptions) { o.Width = 0 }, []error{domain.ErrInvalidDimensions}},
		{"zero height", func(o *domain.RenderOptions) { o.Height = 0 }, []error{domain.ErrInvalidDimensions}},
		{"zero strip size", func(o *domain.RenderOptions) { o.StripSize = 0 }, []error{domain.ErrInvalidStripSize}},
		{"zero workers", func(o *domain.RenderOptions) { o.Workers = 0 }, []error{domain.ErrInvalidWorkers}},
		{"lane width 3", func(o *domain.RenderOptions) { o.Lanes = 3 }, []error{domain.ErrInvalidLanes}},
		{"everything zero", func(o *domain.RenderOptions) { *o = domain.RenderOptions{} }, []error{
			domain.ErrInvalidDimensions, domain.ErrInvalidStripSize, domain.ErrInvalidWorkers, domain.ErrInvalidLanes,
		}},
	}

	r := NewFractalRenderer(zaptest.NewLogger(t))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid
			tt.modify(&opts)
			frame, err := r.Render(opts)
			if frame != nil {
				t.Error("Render returned a frame for invalid options")
			}
			for _, want := range tt.want {
				if !errors.Is(err, want) {
					t.Errorf("error %v does not wrap %v", err, want)
				}
			}
		})
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
