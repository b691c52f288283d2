/*
Package asciiart converts raster images into plain text ASCII art.

The image is reduced to 8-bit grayscale, optionally enhanced and gamma
corrected, downscaled to a bounded width and then split into a grid of tiles.
Each tile's mean luminance is stretched across the full 0-255 range and mapped
onto a character from a density ramp, darkest characters first.

It supports all image formats that Go's standard image package supports (PNG,
JPEG, GIF) plus BMP, TIFF and WebP.

Main features:

  - Three density ramps (coarse, medium and fine)
  - Aspect correction for tall monospace character cells
  - Optional contrast, brightness and sharpness enhancement
  - Gamma correction
  - Selectable resampling filters for the downscale step
  - Fluent API for easy configuration

Basic Usage:

	// Simple one-liner
	art, err := asciiart.RenderFile("image.png")
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Print(art)

Fluent API:

	img, err := asciiart.Open("image.png")
	if err != nil {
	    log.Fatal(err)
	}

	err = img.Columns(120).
	    Scale(2.2).
	    Levels(asciiart.LevelFine).
	    Enhance(true).
	    Gamma(1.2).
	    WriteFile("output.txt")

Size Errors:

	canvas, err := img.Convert()
	var serr *asciiart.SizeError
	if errors.As(err, &serr) {
	    fmt.Printf("need %dx%d tiles, image is only %dx%d\n",
	        serr.Grid.Columns, serr.Grid.Rows, serr.Grid.Width, serr.Grid.Height)
	}
*/
package asciiart
