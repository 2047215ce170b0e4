package domain

// FrameReader интерфейс для чтения сохранённых кадров
type FrameReader interface {
	ReadFrame(filename string) (*FrameBuffer, error)
}

// FrameWriter интерфейс для записи результатов
type FrameWriter interface {
	WriteFrame(filename string, frame *FrameBuffer) error
}

// ConfigReader интерфейс для чтения конфигурации
type ConfigReader interface {
	ReadConfig(path string) (*Config, error)
}
