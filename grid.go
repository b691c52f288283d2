package asciiart

import (
	"fmt"
	"image"
)

// DefaultScale compensates for monospace cells being roughly twice as tall as wide
const DefaultScale = 2.2

// Grid describes how an image is partitioned into character tiles
type Grid struct {
	Width      int     // image width in pixels
	Height     int     // image height in pixels
	Columns    int     // tiles per row
	Rows       int     // tiles per column
	TileWidth  float64 // tile width in pixels
	TileHeight float64 // tile height in pixels
}

// NewGrid computes the tile layout for a width x height image. Unless strict
// is set, columns are clamped to the image width. A layout needing more
// tiles than pixels in either direction, or tiles narrower or shorter than
// one pixel, returns a *SizeError.
func NewGrid(width, height, columns int, scale float64, strict bool) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, fmt.Errorf("%w: image has zero dimension (%dx%d)", ErrInvalidOption, width, height)
	}
	if columns <= 0 {
		return Grid{}, fmt.Errorf("%w: columns must be positive, got %d", ErrInvalidOption, columns)
	}
	if scale <= 0 {
		return Grid{}, fmt.Errorf("%w: scale must be positive, got %g", ErrInvalidOption, scale)
	}

	if !strict {
		columns = min(columns, width)
	}

	tw := float64(width) / float64(columns)
	th := tw * scale
	rows := max(1, int(float64(height)/th))

	g := Grid{
		Width:      width,
		Height:     height,
		Columns:    columns,
		Rows:       rows,
		TileWidth:  tw,
		TileHeight: th,
	}

	if columns > width || rows > height {
		return g, &SizeError{Grid: g}
	}

	// every tile but the last in each direction spans trunc(tile size)
	// pixels at the origin, so sub-pixel tiles leave empty rows or columns
	if (columns > 1 && int(tw) < 1) || (rows > 1 && int(th) < 1) {
		return g, &SizeError{Grid: g}
	}

	return g, nil
}

// Len returns the number of tiles
func (g Grid) Len() int {
	return g.Columns * g.Rows
}

// Bounds returns the pixel rectangle of tile (x, y). Edges are truncated and
// the last column and row are stretched to the image edge.
func (g Grid) Bounds(x, y int) image.Rectangle {
	x0 := int(float64(x) * g.TileWidth)
	x1 := int(float64(x+1) * g.TileWidth)
	if x == g.Columns-1 {
		x1 = g.Width
	}

	y0 := int(float64(y) * g.TileHeight)
	y1 := int(float64(y+1) * g.TileHeight)
	if y == g.Rows-1 {
		y1 = g.Height
	}

	return image.Rect(x0, y0, x1, y1)
}

// Sample returns the mean intensity of every tile in row-major order. Means
// are truncated to integers. img must have the grid's dimensions.
func (g Grid) Sample(img *image.Gray) []int {
	values := make([]int, 0, g.Len())
	origin := img.Bounds().Min

	for y := range g.Rows {
		for x := range g.Columns {
			r := g.Bounds(x, y).Add(origin)
			values = append(values, meanGray(img, r))
		}
	}

	return values
}

// meanGray averages the pixels of img inside r. NewGrid never produces an
// empty tile; an empty r only occurs for a Grid that does not match img.
func meanGray(img *image.Gray, r image.Rectangle) int {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return 0
	}

	var sum int
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := img.Pix[img.PixOffset(r.Min.X, y):img.PixOffset(r.Max.X, y)]
		for _, p := range row {
			sum += int(p)
		}
	}

	return sum / (r.Dx() * r.Dy())
}
