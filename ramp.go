package asciiart

import "fmt"

// Density ramps ordered from darkest (most ink) to lightest
const (
	RampCoarse = "@%#*+=-:. "
	RampMedium = "@&#*+=~-:,. "
	RampLong   = "$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~i!lI;:,\\\"^`\". "
)

// Level selects one of the density ramps
type Level int

const (
	// LevelCoarse uses the 10 character ramp
	LevelCoarse Level = iota
	// LevelMedium uses the 12 character ramp
	LevelMedium
	// LevelFine uses the long ramp
	LevelFine
)

// ParseLevel converts the numeric CLI value into a Level
func ParseLevel(n int) (Level, error) {
	l := Level(n)
	switch l {
	case LevelCoarse, LevelMedium, LevelFine:
		return l, nil
	default:
		return LevelMedium, fmt.Errorf("%w: levels must be 0, 1 or 2, got %d", ErrInvalidOption, n)
	}
}

// Ramp returns the characters used for the level. Unknown levels fall back to
// the medium ramp.
func (l Level) Ramp() string {
	switch l {
	case LevelCoarse:
		return RampCoarse
	case LevelFine:
		return RampLong
	default:
		return RampMedium
	}
}

func (l Level) String() string {
	switch l {
	case LevelCoarse:
		return "coarse"
	case LevelMedium:
		return "medium"
	case LevelFine:
		return "fine"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// RampIndex returns the ramp position for luminance v. The division truncates
// so a value landing exactly on a boundary stays on the lower index.
func RampIndex(v, rampLen int) int {
	if rampLen <= 0 {
		return 0
	}
	if v < 0 {
		v = 0
	}
	return min(v*(rampLen-1)/255, rampLen-1)
}

// MapLuminance returns the ramp character for a normalized luminance value
func MapLuminance(v int, ramp string) byte {
	return ramp[RampIndex(v, len(ramp))]
}

// MapRows turns row-major luminance values into canvas rows of cols characters
func MapRows(values []int, cols int, ramp string) []string {
	if cols <= 0 {
		return nil
	}
	rows := make([]string, 0, len(values)/cols)
	buf := make([]byte, cols)
	for start := 0; start+cols <= len(values); start += cols {
		for x, v := range values[start : start+cols] {
			buf[x] = MapLuminance(v, ramp)
		}
		rows = append(rows, string(buf))
	}
	return rows
}
