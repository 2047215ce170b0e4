package app

import (
	"fmt"

	"julia-render/internal/domain"
	"julia-render/pkg/fractal"

	"go.uber.org/zap"
)

// renderWorker claims strips and fills them in the shared frame. Two
// workers never hold the same strip, so their writes never overlap.
type renderWorker struct {
	id     int
	logger *zap.Logger
	source domain.StripSource
	frame  *domain.FrameBuffer
	params domain.FractalParams
	lanes  int
}

type workerReport struct {
	Strips int
	Pixels int
}

func (w *renderWorker) run() workerReport {
	var report workerReport
	group := make([]domain.Color, w.lanes)

	for {
		strip, ok := w.source.Claim()
		if !ok {
			return report
		}

		w.logger.Debug("Rendering strip",
			zap.Int("worker", w.id),
			zap.Int("y_start", strip.YStart),
			zap.Int("y_end", strip.YEnd))

		for y := strip.YStart; y <= strip.YEnd; y++ {
			report.Pixels += w.renderRow(y, group)
		}
		report.Strips++
	}
}

// renderRow fills row y and returns the number of pixels written. Groups
// of lanes go through the wide kernel; the pixels of a trailing partial
// group go through the scalar one.
func (w *renderWorker) renderRow(y int, group []domain.Color) int {
	width, height := w.frame.Width, w.frame.Height
	x := 0

	if w.lanes > 1 {
		for ; x+w.lanes <= width; x += w.lanes {
			fractal.EvaluateWideInto(group, x, y, width, height, w.params)
			for i, c := range group {
				w.store(y*width+x+i, c)
			}
		}
	}
	for ; x < width; x++ {
		w.store(y*width+x, fractal.Evaluate(x, y, width, height, w.params))
	}
	return width
}

func (w *renderWorker) store(index int, c domain.Color) {
	if index < 0 || index >= len(w.frame.Pixels) {
		panic(fmt.Sprintf("render worker %d: pixel index %d outside frame of %d pixels",
			w.id, index, len(w.frame.Pixels)))
	}
	w.frame.Pixels[index] = c.Pack()
}
