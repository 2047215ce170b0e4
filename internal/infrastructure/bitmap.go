package infrastructure

import (
	"fmt"
	"math"

	"julia-render/internal/domain"
)

// bitmapHeader is the file header followed by the BITMAPINFOHEADER,
// 54 bytes with no padding when written little-endian.
type bitmapHeader struct {
	FileType        uint16
	FileSize        uint32
	Reserved1       uint16
	Reserved2       uint16
	BitmapOffset    uint32
	Size            uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitsPerPixel    uint16
	Compression     uint32
	SizeOfBitmap    uint32
	HorzResolution  int32
	VertResolution  int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

const (
	bitmapFileType   = 0x4D42 // "BM"
	bitmapHeaderSize = 54
	bitmapInfoSize   = bitmapHeaderSize - 14
	bitmapDepth      = 32
)

// bitmapPixelBytes returns the size of the pixel array, or ErrInvalidFrame
// when the file would not fit the 32-bit size fields of the header.
func bitmapPixelBytes(width, height int) (uint32, error) {
	if width <= 0 || height <= 0 || width > math.MaxInt32 || height > math.MaxInt32 {
		return 0, domain.ErrInvalidFrame
	}
	size := uint64(width) * uint64(height) * 4
	if size > math.MaxUint32-bitmapHeaderSize {
		return 0, fmt.Errorf("%w: %dx%d exceeds the bitmap size limit", domain.ErrInvalidFrame, width, height)
	}
	return uint32(size), nil
}

func newBitmapHeader(width, height int, pixelBytes uint32) bitmapHeader {
	return bitmapHeader{
		FileType:     bitmapFileType,
		FileSize:     bitmapHeaderSize + pixelBytes,
		BitmapOffset: bitmapHeaderSize,
		Size:         bitmapInfoSize,
		Width:        int32(width),
		Height:       int32(height),
		Planes:       1,
		BitsPerPixel: bitmapDepth,
		SizeOfBitmap: pixelBytes,
	}
}
