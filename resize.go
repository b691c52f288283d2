package asciiart

import (
	"fmt"
	"image"
	"image/draw"
	"strings"

	"github.com/nfnt/resize"
	xdraw "golang.org/x/image/draw"
)

// DefaultMaxWidth bounds the preprocessed image width in pixels
const DefaultMaxWidth = 300

// Resample selects the interpolation used when downscaling
type Resample int

const (
	// ResampleLanczos uses a Lanczos3 kernel
	ResampleLanczos Resample = iota
	// ResampleBicubic uses a bicubic kernel
	ResampleBicubic
	// ResampleBilinear uses bilinear interpolation
	ResampleBilinear
	// ResampleNearest uses nearest-neighbor sampling
	ResampleNearest
	// ResampleCatmullRom uses the Catmull-Rom kernel from x/image/draw
	ResampleCatmullRom
)

var resampleNames = map[Resample]string{
	ResampleLanczos:    "lanczos",
	ResampleBicubic:    "bicubic",
	ResampleBilinear:   "bilinear",
	ResampleNearest:    "nearest",
	ResampleCatmullRom: "catmullrom",
}

func (r Resample) String() string {
	if name, ok := resampleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Resample(%d)", int(r))
}

// ParseResample looks up a resampling filter by name
func ParseResample(name string) (Resample, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for r, n := range resampleNames {
		if n == name {
			return r, nil
		}
	}
	return ResampleLanczos, fmt.Errorf("%w: unknown resample filter %q", ErrInvalidOption, name)
}

// ResizeToWidth downscales img to maxWidth pixels wide when it is wider,
// keeping the aspect ratio with a truncated height of at least 1. Narrower
// images are returned as is.
func ResizeToWidth(img *image.Gray, maxWidth int, filter Resample) *image.Gray {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()

	if maxWidth <= 0 || srcW <= maxWidth {
		return img
	}

	height := max(1, int(float64(srcH)*float64(maxWidth)/float64(srcW)))

	return ResizeImage(img, uint(maxWidth), uint(height), filter)
}

// ResizeImage resizes img to exactly width x height
func ResizeImage(img *image.Gray, width, height uint, filter Resample) *image.Gray {
	bounds := img.Bounds()

	// Skip resize if already correct size
	if uint(bounds.Dx()) == width && uint(bounds.Dy()) == height {
		return img
	}

	if filter == ResampleCatmullRom {
		dst := image.NewGray(image.Rect(0, 0, int(width), int(height)))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
		return dst
	}

	var interp resize.InterpolationFunction
	switch filter {
	case ResampleBicubic:
		interp = resize.Bicubic
	case ResampleBilinear:
		interp = resize.Bilinear
	case ResampleNearest:
		interp = resize.NearestNeighbor
	default:
		interp = resize.Lanczos3
	}

	return toGray(resize.Resize(width, height, img, interp))
}

// toGray returns img as *image.Gray, converting when needed
func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
