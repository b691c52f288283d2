package asciiart

import (
	"errors"
	"fmt"
)

var (
	// ErrImageTooSmall is returned when the requested resolution needs more
	// columns or rows than the preprocessed image has pixels
	ErrImageTooSmall = errors.New("image too small for requested resolution")
	// ErrInvalidOption is returned for out of range conversion settings
	ErrInvalidOption = errors.New("invalid option")
	// ErrNoSource is returned when an Image has nothing to decode
	ErrNoSource = errors.New("no image source configured")
)

// SizeError reports a grid that does not fit the preprocessed image
type SizeError struct {
	Grid Grid
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%s: %dx%d tiles on a %dx%d image",
		ErrImageTooSmall, e.Grid.Columns, e.Grid.Rows, e.Grid.Width, e.Grid.Height)
}

func (e *SizeError) Unwrap() error {
	return ErrImageTooSmall
}
