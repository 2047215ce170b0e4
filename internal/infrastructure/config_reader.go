package infrastructure

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"julia-render/internal/domain"
	"julia-render/pkg/fractal"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Default fractal constant used when neither c nor a seed is configured.
const (
	defaultCReal      = -0.4
	defaultCImaginary = 0.6
)

// constantKeys records which parts of c the file sets, so an explicit
// c_real: 0, c_imaginary: 0 is kept.
type constantKeys struct {
	CReal      *float64 `yaml:"c_real"`
	CImaginary *float64 `yaml:"c_imaginary"`
}

type YAMLConfigReader struct {
	logger *zap.Logger
	flags  *flag.FlagSet
}

// NewYAMLConfigReader creates a reader. Flags explicitly set on flags
// (see RegisterFlags) override the file; flags may be nil.
func NewYAMLConfigReader(logger *zap.Logger, flags *flag.FlagSet) *YAMLConfigReader {
	return &YAMLConfigReader{logger: logger, flags: flags}
}

// RegisterFlags defines the command-line overrides on fs.
func RegisterFlags(fs *flag.FlagSet) {
	fs.Int("width", 0, "Image width in pixels")
	fs.Int("height", 0, "Image height in pixels")
	fs.Int("strip-size", 0, "Rows per work unit")
	fs.Int("workers", 0, "Number of workers")
	fs.Int("lanes", 0, "Pixels per kernel call: 1, 4 or 8")
	fs.Uint64("seed", 0, "Derive the fractal constant from this seed")
	fs.String("output", "", "Output bitmap")
	fs.String("log-level", "", "Log level")
}

// ReadConfig loads path (an empty path means no file), applies command-line
// overrides and fills defaults.
func (r *YAMLConfigReader) ReadConfig(path string) (*domain.Config, error) {
	var config domain.Config
	var cSet bool

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		var keys constantKeys
		if err := yaml.Unmarshal(data, &keys); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		cSet = keys.CReal != nil || keys.CImaginary != nil
	}

	// Применяем аргументы командной строки
	if r.applyCommandLineFlags(&config) {
		cSet = false
	}

	// Устанавливаем значения по умолчанию
	r.setDefaults(&config, cSet)

	r.logger.Debug("Config loaded", zap.String("path", path), zap.Any("config", config))
	return &config, nil
}

// applyCommandLineFlags reports whether -seed was given, which replaces
// any c from the file.
func (r *YAMLConfigReader) applyCommandLineFlags(config *domain.Config) (seeded bool) {
	if r.flags == nil {
		return false
	}
	r.flags.Visit(func(f *flag.Flag) {
		value := f.Value.(flag.Getter).Get()
		switch f.Name {
		case "width":
			config.Width = value.(int)
		case "height":
			config.Height = value.(int)
		case "strip-size":
			config.StripSize = value.(int)
		case "workers":
			config.Workers = value.(int)
		case "lanes":
			config.Lanes = value.(int)
		case "seed":
			config.Seed = value.(uint64)
			// флаг seed важнее константы из файла
			config.CReal, config.CImaginary = 0, 0
			seeded = true
		case "output":
			config.Output = value.(string)
		case "log-level":
			config.LogLevel = value.(string)
		}
	})
	return seeded
}

func (r *YAMLConfigReader) setDefaults(config *domain.Config, cSet bool) {
	if config.Width == 0 {
		config.Width = 900
	}
	if config.Height == 0 {
		config.Height = 600
	}
	if config.StripSize == 0 {
		config.StripSize = 16
	}
	if config.Workers == 0 {
		config.Workers = max(1, runtime.NumCPU()-1)
	}
	if config.Lanes == 0 {
		config.Lanes = fractal.MaxLanes
	}
	if !cSet {
		if config.Seed != 0 {
			p := fractal.ParamsFromSeed(config.Seed)
			config.CReal, config.CImaginary = p.CReal, p.CImaginary
			r.logger.Info("Fractal constant derived from seed",
				zap.Uint64("seed", config.Seed),
				zap.Float64("c_real", p.CReal),
				zap.Float64("c_imaginary", p.CImaginary))
		} else {
			config.CReal, config.CImaginary = defaultCReal, defaultCImaginary
		}
	}
	if config.Output == "" {
		config.Output = "paper.bmp"
	}
	if config.HistogramBins == 0 {
		config.HistogramBins = 16
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
}
