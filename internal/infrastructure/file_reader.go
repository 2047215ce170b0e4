package infrastructure

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"julia-render/internal/domain"

	"go.uber.org/zap"
)

// BMPFileReader reads back bitmaps produced by BMPFileWriter.
type BMPFileReader struct {
	logger *zap.Logger
}

func NewBMPFileReader(logger *zap.Logger) *BMPFileReader {
	return &BMPFileReader{logger: logger}
}

func (r *BMPFileReader) ReadFrame(filename string) (*domain.FrameBuffer, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}

	reader := bufio.NewReader(file)

	var header bitmapHeader
	if err := binary.Read(reader, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidFileFormat, err)
	}
	if header.FileType != bitmapFileType || header.BitsPerPixel != bitmapDepth ||
		header.Compression != 0 || header.Width <= 0 || header.Height == 0 ||
		header.BitmapOffset < bitmapHeaderSize {
		return nil, domain.ErrInvalidFileFormat
	}

	// отрицательная высота означает строки сверху вниз
	bottomUp := header.Height > 0
	width, height := int(header.Width), int(header.Height)
	if !bottomUp {
		height = -height
	}

	// размер из заголовка должен совпадать с файлом до выделения памяти
	pixelBytes := uint64(width) * uint64(height) * 4
	if header.SizeOfBitmap != 0 && uint64(header.SizeOfBitmap) != pixelBytes {
		return nil, fmt.Errorf("%w: header declares %d pixel bytes for %dx%d",
			domain.ErrInvalidFileFormat, header.SizeOfBitmap, width, height)
	}
	if uint64(header.BitmapOffset)+pixelBytes > uint64(info.Size()) {
		return nil, fmt.Errorf("%w: %dx%d pixels do not fit in %d bytes",
			domain.ErrInvalidFileFormat, width, height, info.Size())
	}

	if _, err := io.CopyN(io.Discard, reader, int64(header.BitmapOffset-bitmapHeaderSize)); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidFileFormat, err)
	}

	frame := domain.NewFrameBuffer(width, height)
	for i := range height {
		y := i
		if bottomUp {
			y = height - 1 - i
		}
		row := frame.Pixels[y*width : (y+1)*width]
		if err := binary.Read(reader, binary.LittleEndian, row); err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", domain.ErrInvalidFileFormat, y, err)
		}
	}
	// старший байт (альфа) не используется
	for i := range frame.Pixels {
		frame.Pixels[i] &= 0x00FFFFFF
	}

	r.logger.Debug("Bitmap read",
		zap.String("file", filename),
		zap.Int("width", width),
		zap.Int("height", height))
	return frame, nil
}

var _ domain.FrameReader = (*BMPFileReader)(nil)
