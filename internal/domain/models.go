package domain

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// Config представляет конфигурацию рендера
type Config struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	StripSize     int     `yaml:"strip_size"`
	Workers       int     `yaml:"workers"`
	Lanes         int     `yaml:"lanes"`
	CReal         float64 `yaml:"c_real"`
	CImaginary    float64 `yaml:"c_imaginary"`
	Seed          uint64  `yaml:"seed"`
	Output        string  `yaml:"output"`
	Baseline      string  `yaml:"baseline"`
	HistogramFile string  `yaml:"histogram_file"`
	HistogramBins int     `yaml:"histogram_bins"`
	LogLevel      string  `yaml:"log_level"`
	LogFile       string  `yaml:"log_file"`
}

// RenderOptions returns the part of the config the renderer consumes.
func (c *Config) RenderOptions() RenderOptions {
	return RenderOptions{
		Width:     c.Width,
		Height:    c.Height,
		StripSize: c.StripSize,
		Workers:   c.Workers,
		Lanes:     c.Lanes,
		Params:    FractalParams{CReal: c.CReal, CImaginary: c.CImaginary},
	}
}

// RenderOptions описывает один проход рендера
type RenderOptions struct {
	Width, Height int
	StripSize     int
	Workers       int
	// Lanes is 1 for the scalar kernel, 4 or 8 for the wide one.
	Lanes  int
	Params FractalParams
}

// Validate reports every invalid field at once.
func (o RenderOptions) Validate() error {
	var err error
	if o.Width <= 0 || o.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, o.Width, o.Height))
	}
	if o.StripSize <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: %d", ErrInvalidStripSize, o.StripSize))
	}
	if o.Workers <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: %d", ErrInvalidWorkers, o.Workers))
	}
	switch o.Lanes {
	case 1, 4, 8:
	default:
		err = multierr.Append(err, fmt.Errorf("%w: %d", ErrInvalidLanes, o.Lanes))
	}
	return err
}

// FractalParams - постоянный член квадратичного отображения
type FractalParams struct {
	CReal      float64
	CImaginary float64
}

// Strip is an inclusive range of rows rendered as one unit of work.
type Strip struct {
	YStart, YEnd int
}

// Rows returns the number of rows covered by the strip.
func (s Strip) Rows() int {
	return s.YEnd - s.YStart + 1
}

// Color - 8-битные каналы одного пикселя
type Color struct {
	R, G, B uint8
}

// Pack packs the channels as (r<<16)|(g<<8)|b.
func (c Color) Pack() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// UnpackColor is the inverse of Color.Pack.
func UnpackColor(p uint32) Color {
	return Color{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p)}
}

// FrameBuffer представляет готовое изображение, строки сверху вниз
type FrameBuffer struct {
	Width, Height int
	Pixels        []uint32
}

func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]uint32, width*height),
	}
}

// At returns the color at column x of row y.
func (f *FrameBuffer) At(x, y int) Color {
	return UnpackColor(f.Pixels[y*f.Width+x])
}

type Histogram struct {
	Bins []float64
	Vals []int
	Len  int
}

// FrameStats summarises the luminance of a frame.
type FrameStats struct {
	Mean, StdDev float64
	Min, Max     float64
}

var (
	ErrInvalidDimensions = errors.New("invalid image dimensions")
	ErrInvalidStripSize  = errors.New("invalid strip size")
	ErrInvalidWorkers    = errors.New("invalid number of workers")
	ErrInvalidLanes      = errors.New("invalid lane width")
	ErrInvalidFileFormat = errors.New("invalid file format")
)
