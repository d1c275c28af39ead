package misc

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an output encoding for a grayscale pixel buffer.
type Format int

const (
	PNG Format = iota
	JPEG
	BMP
	TIFF
	PGM
	PGMZstd
)

func (f Format) String() string {
	return []string{
		"PNG", "JPEG", "BMP", "TIFF", "PGM", "PGM+zstd",
	}[f]
}

// FormatFromPath picks the encoding from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".pgm.zst") {
		return PGMZstd, nil
	}

	switch filepath.Ext(lower) {
	case ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	case ".pgm":
		return PGM, nil
	}
	return 0, fmt.Errorf("no image format for file %s", path)
}

// GrayImage wraps pixels, one byte per pixel in row-major order, as an image without copying them.
func GrayImage(pixels []byte, width uint, height uint) (*image.Gray, error) {
	if uint(len(pixels)) != width*height {
		return nil, fmt.Errorf("have %d pixels for a %dx%d image", len(pixels), width, height)
	}
	return &image.Gray{
		Pix:    pixels,
		Stride: int(width),
		Rect:   image.Rect(0, 0, int(width), int(height)),
	}, nil
}

// EncodeGray writes the grayscale pixel buffer to w in the given format.
func EncodeGray(w io.Writer, format Format, pixels []byte, width uint, height uint) error {
	img, err := GrayImage(pixels, width, height)
	if err != nil {
		return err
	}

	switch format {
	case PNG:
		return png.Encode(w, img)
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case PGM:
		return encodePGM(w, img)
	case PGMZstd:
		encoder, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
		if err != nil {
			return err
		}
		if err = encodePGM(encoder, img); err != nil {
			encoder.Close()
			return err
		}
		return encoder.Close()
	}
	return errors.New("unknown image format")
}

// SaveGray encodes the pixel buffer in the format implied by path and writes it there.
func SaveGray(path string, pixels []byte, width uint, height uint) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	var buffer bytes.Buffer
	if err = EncodeGray(&buffer, format, pixels, width, height); err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}
	_, err = WriteFile(path, buffer.Bytes())
	return err
}

// Binary netpbm graymap, maxval 255.
func encodePGM(w io.Writer, img *image.Gray) error {
	bw := bufio.NewWriter(w)
	bounds := img.Bounds()
	if _, err := fmt.Fprintf(bw, "P5\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return err
	}
	for y := 0; y < bounds.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+bounds.Dx()]
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}
