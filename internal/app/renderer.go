package app

import (
	"fmt"
	"time"

	"julia-render/internal/domain"
	"julia-render/pkg/workqueue"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type FractalRenderer struct {
	logger *zap.Logger
}

func NewFractalRenderer(logger *zap.Logger) *FractalRenderer {
	return &FractalRenderer{logger: logger}
}

// Render computes one frame. It returns only after every worker has
// finished; nothing of the frame is visible before that.
func (r *FractalRenderer) Render(opts domain.RenderOptions) (*domain.FrameBuffer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	strips, err := workqueue.Partition(opts.Height, opts.StripSize)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	frame := domain.NewFrameBuffer(opts.Width, opts.Height)
	dispatcher := workqueue.NewDispatcher(strips)

	r.logger.Info("Starting render",
		zap.Int("width", opts.Width),
		zap.Int("height", opts.Height),
		zap.Int("strips", len(strips)),
		zap.Int("workers", opts.Workers),
		zap.Int("lanes", opts.Lanes),
		zap.Float64("c_real", opts.Params.CReal),
		zap.Float64("c_imaginary", opts.Params.CImaginary))

	start := time.Now()

	// Strips, frame and params are complete here; the go statements below
	// order these writes before anything the workers read.
	reports := make([]workerReport, opts.Workers)
	var g errgroup.Group
	for i := range opts.Workers {
		w := &renderWorker{
			id:     i,
			logger: r.logger,
			source: dispatcher,
			frame:  frame,
			params: opts.Params,
			lanes:  opts.Lanes,
		}
		g.Go(func() error {
			reports[i] = w.run()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	for i, rep := range reports {
		r.logger.Debug("Worker finished",
			zap.Int("worker", i),
			zap.Int("strips", rep.Strips),
			zap.Int("pixels", rep.Pixels))
	}
	r.logger.Info("Render completed", zap.Duration("elapsed", time.Since(start)))

	return frame, nil
}

var _ domain.Renderer = (*FractalRenderer)(nil)
