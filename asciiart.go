package asciiart

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultColumns is the requested output width when none is configured
const DefaultColumns = 100

// Image represents a source image with a fluent API for configuring its conversion
type Image struct {
	source image.Image
	reader io.Reader
	path   string

	// Configuration
	columns  int
	scale    float64
	level    Level
	enhance  bool
	gamma    float64
	maxWidth int
	resample Resample
	strict   bool
}

// New creates a new Image from an image.Image
func New(img image.Image) *Image {
	if img == nil {
		return nil
	}
	i := defaults()
	i.source = img
	return i
}

// Open creates a new Image from a file path. The file is read on conversion.
func Open(path string) (*Image, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}
	i := defaults()
	i.path = path
	return i, nil
}

// From creates a new Image from an io.Reader
func From(r io.Reader) *Image {
	if r == nil {
		return nil
	}
	i := defaults()
	i.reader = r
	return i
}

func defaults() *Image {
	return &Image{
		columns:  DefaultColumns,
		scale:    DefaultScale,
		level:    LevelMedium,
		gamma:    DefaultGamma,
		maxWidth: DefaultMaxWidth,
		resample: ResampleLanczos,
	}
}

// Columns sets the requested number of characters per row
func (i *Image) Columns(n int) *Image {
	i.columns = n
	return i
}

// Scale sets the tile height to width ratio
func (i *Image) Scale(s float64) *Image {
	i.scale = s
	return i
}

// Levels selects the density ramp
func (i *Image) Levels(l Level) *Image {
	i.level = l
	return i
}

// Enhance enables the contrast, brightness and sharpness pass
func (i *Image) Enhance(e bool) *Image {
	i.enhance = e
	return i
}

// Gamma sets the gamma correction exponent; 1 disables it
func (i *Image) Gamma(g float64) *Image {
	i.gamma = g
	return i
}

// MaxWidth sets the width the image is downscaled to before tiling
func (i *Image) MaxWidth(w int) *Image {
	i.maxWidth = w
	return i
}

// Resample sets the downscaling filter
func (i *Image) Resample(r Resample) *Image {
	i.resample = r
	return i
}

// Strict disables clamping the column count to the image width
func (i *Image) Strict(s bool) *Image {
	i.strict = s
	return i
}

// Preprocess loads the image and returns the grayscale image that gets tiled
func (i *Image) Preprocess() (*image.Gray, error) {
	if err := i.validate(); err != nil {
		return nil, err
	}

	img, err := i.loadImage()
	if err != nil {
		return nil, err
	}

	gray := Grayscale(img)
	if i.enhance {
		gray = Enhance(gray)
	}
	gray = Gamma(gray, i.gamma)

	return ResizeToWidth(gray, i.maxWidth, i.resample), nil
}

// Convert runs the full pipeline and returns the resulting canvas. When the
// image is too small for the requested resolution the error is a *SizeError.
func (i *Image) Convert() (*Canvas, error) {
	gray, err := i.Preprocess()
	if err != nil {
		return nil, err
	}

	b := gray.Bounds()
	grid, err := NewGrid(b.Dx(), b.Dy(), i.columns, i.scale, i.strict)
	if err != nil {
		return nil, err
	}

	values := grid.Sample(gray)
	Normalize(values)

	return &Canvas{
		Grid: grid,
		Rows: MapRows(values, grid.Columns, i.level.Ramp()),
	}, nil
}

// Render returns the ASCII art as a newline terminated string
func (i *Image) Render() (string, error) {
	canvas, err := i.Convert()
	if err != nil {
		return "", err
	}
	return canvas.String(), nil
}

// Print writes the ASCII art to stdout
func (i *Image) Print() error {
	canvas, err := i.Convert()
	if err != nil {
		return err
	}
	_, err = canvas.WriteTo(os.Stdout)
	return err
}

// WriteFile converts the image and writes the result to path. Nothing is
// written if the conversion fails.
func (i *Image) WriteFile(path string) error {
	canvas, err := i.Convert()
	if err != nil {
		return err
	}
	return canvas.WriteFile(path)
}

func (i *Image) validate() error {
	switch {
	case i.columns <= 0:
		return fmt.Errorf("%w: columns must be positive, got %d", ErrInvalidOption, i.columns)
	case i.scale <= 0:
		return fmt.Errorf("%w: scale must be positive, got %g", ErrInvalidOption, i.scale)
	case i.gamma <= 0:
		return fmt.Errorf("%w: gamma must be positive, got %g", ErrInvalidOption, i.gamma)
	case i.maxWidth <= 0:
		return fmt.Errorf("%w: max width must be positive, got %d", ErrInvalidOption, i.maxWidth)
	}
	return nil
}

// loadImage loads the image from the configured source
func (i *Image) loadImage() (image.Image, error) {
	if i.source != nil {
		return i.source, nil
	}

	if i.path != "" {
		file, err := os.Open(i.path)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		defer file.Close()

		img, _, err := image.Decode(file)
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}

		i.source = img
		return img, nil
	}

	if i.reader != nil {
		img, _, err := image.Decode(i.reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}

		i.source = img
		return img, nil
	}

	return nil, ErrNoSource
}

// Convenience functions for quick conversion

// Render converts an image with default settings
func Render(img image.Image) (string, error) {
	if img == nil {
		return "", fmt.Errorf("image cannot be nil")
	}
	return New(img).Render()
}

// RenderFile converts an image file with default settings
func RenderFile(path string) (string, error) {
	img, err := Open(path)
	if err != nil {
		return "", err
	}
	return img.Render()
}
