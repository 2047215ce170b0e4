package infrastructure

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"go.uber.org/zap"

	"julia-render/internal/domain"
)

// BMPFileWriter writes frames as uncompressed 32-bit bitmaps.
type BMPFileWriter struct {
	logger *zap.Logger
}

func NewBMPFileWriter(logger *zap.Logger) *BMPFileWriter {
	return &BMPFileWriter{logger: logger}
}

// WriteFrame stores frame in filename. Rows go bottom-up as the format
// expects, so row 0 of the frame is the top of the picture.
func (w *BMPFileWriter) WriteFrame(filename string, frame *domain.FrameBuffer) (err error) {
	if frame == nil {
		return domain.ErrInvalidFrame
	}
	pixelBytes, err := bitmapPixelBytes(frame.Width, frame.Height)
	if err != nil {
		return err
	}
	if len(frame.Pixels) != frame.Width*frame.Height {
		return domain.ErrInvalidFrame
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	writer := bufio.NewWriter(file)

	if err := binary.Write(writer, binary.LittleEndian, newBitmapHeader(frame.Width, frame.Height, pixelBytes)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for y := frame.Height - 1; y >= 0; y-- {
		row := frame.Pixels[y*frame.Width : (y+1)*frame.Width]
		if err := binary.Write(writer, binary.LittleEndian, row); err != nil {
			return fmt.Errorf("write row %d: %w", y, err)
		}
	}

	if err := writer.Flush(); err != nil {
		return err
	}
	w.logger.Debug("Bitmap written",
		zap.String("file", filename),
		zap.Int("width", frame.Width),
		zap.Int("height", frame.Height))
	return nil
}

// WriteHistogram writes a histogram as two tab-separated columns.
func (w *BMPFileWriter) WriteHistogram(filename string, hist *domain.Histogram) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	writer := bufio.NewWriter(file)

	fmt.Fprintf(writer, "%s\t%s\n", "Luma", "Count")
	for i := range hist.Len {
		fmt.Fprintf(writer, "%.2f\t%10d\n", hist.Bins[i], hist.Vals[i])
	}

	return writer.Flush()
}

var _ domain.FrameWriter = (*BMPFileWriter)(nil)
