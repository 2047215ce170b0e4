package main

import (
	"flag"

	"julia-render/internal/app"
	"julia-render/internal/domain"
	"julia-render/internal/infrastructure"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	infrastructure.RegisterFlags(flag.CommandLine)
	flag.Parse()

	// Инициализация логгера
	logger := initLogger("info")

	// Чтение конфигурации
	configReader := infrastructure.NewYAMLConfigReader(logger, flag.CommandLine)
	config, err := configReader.ReadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to read config", zap.Error(err))
	}

	// Обновляем уровень логирования
	_ = logger.Sync()
	logger = initLogger(config.LogLevel, config.LogFile)
	defer logger.Sync()

	// Инициализация компонентов
	renderer := app.NewFractalRenderer(logger)
	fileWriter := infrastructure.NewBMPFileWriter(logger)
	fileReader := infrastructure.NewBMPFileReader(logger)

	frame, err := renderer.Render(config.RenderOptions())
	if err != nil {
		logger.Fatal("Render failed", zap.Error(err))
	}

	if err := fileWriter.WriteFrame(config.Output, frame); err != nil {
		logger.Fatal("Failed to write image", zap.String("file", config.Output), zap.Error(err))
	}
	logger.Info("Successfully written image", zap.String("file", config.Output))

	if stats, err := frame.Stats(); err == nil {
		logger.Info("Frame luminance",
			zap.Float64("mean", stats.Mean),
			zap.Float64("stddev", stats.StdDev),
			zap.Float64("min", stats.Min),
			zap.Float64("max", stats.Max))
	}

	if config.HistogramFile != "" {
		writeHistogram(logger, fileWriter, frame, config)
	}

	if config.Baseline != "" {
		compareBaseline(logger, fileReader, frame, config.Baseline)
	}
}

func writeHistogram(logger *zap.Logger, w *infrastructure.BMPFileWriter, frame *domain.FrameBuffer, config *domain.Config) {
	hist, err := frame.Hist(config.HistogramBins)
	if err != nil {
		logger.Error("Failed to build histogram", zap.Error(err))
		return
	}
	if err := w.WriteHistogram(config.HistogramFile, &hist); err != nil {
		logger.Error("Failed to write histogram",
			zap.String("file", config.HistogramFile),
			zap.Error(err))
		return
	}
	logger.Info("Successfully written histogram", zap.String("file", config.HistogramFile))
}

// compareBaseline checks the frame against an earlier render of the same
// configuration; any difference means the render is not deterministic.
func compareBaseline(logger *zap.Logger, r domain.FrameReader, frame *domain.FrameBuffer, path string) {
	baseline, err := r.ReadFrame(path)
	if err != nil {
		logger.Error("Failed to read baseline", zap.String("file", path), zap.Error(err))
		return
	}
	mismatched, err := frame.Diff(baseline)
	if err != nil {
		logger.Error("Baseline has a different size",
			zap.String("file", path),
			zap.Int("width", baseline.Width),
			zap.Int("height", baseline.Height))
		return
	}
	if mismatched > 0 {
		logger.Warn("Frame differs from baseline",
			zap.String("file", path),
			zap.Int("pixels", mismatched))
		return
	}
	logger.Info("Frame matches baseline", zap.String("file", path))
}

// initLogger initializes the logger with the specified level and log file name.
func initLogger(level string, logfileName ...string) *zap.Logger {
	config := zap.NewProductionConfig()

	switch level {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	outputPath := []string{"stderr"}
	for _, item := range logfileName {
		if item != "" {
			outputPath = append(outputPath, item)
		}
	}

	config.OutputPaths = outputPath
	config.ErrorOutputPaths = outputPath
	config.EncoderConfig.TimeKey = "t"
	config.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	config.DisableCaller = false

	logger, err := config.Build()
	if err != nil {
		return zap.NewExample()
	}
	return logger
}
