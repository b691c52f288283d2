package asciiart

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformGray(width, height int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

func uniformRGBA(width, height int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestGrayscale(t *testing.T) {
	tests := []struct {
		name string
		in   color.RGBA
		want uint8
	}{
		{name: "white", in: color.RGBA{255, 255, 255, 255}, want: 255},
		{name: "black", in: color.RGBA{0, 0, 0, 255}, want: 0},
		{name: "red", in: color.RGBA{255, 0, 0, 255}, want: 76},
		{name: "green", in: color.RGBA{0, 255, 0, 255}, want: 150},
		{name: "blue", in: color.RGBA{0, 0, 255, 255}, want: 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gray := Grayscale(uniformRGBA(4, 3, tt.in))
			require.Equal(t, image.Rect(0, 0, 4, 3), gray.Bounds())
			assert.InDelta(t, tt.want, gray.GrayAt(2, 1).Y, 1)
		})
	}
}

func TestGamma(t *testing.T) {
	src := uniformGray(3, 3, 128)
	assert.Same(t, src, Gamma(src, 1))

	// 255 * (128/255)^(1/1.2) = 143.58
	out := Gamma(src, DefaultGamma)
	assert.Equal(t, uint8(143), out.GrayAt(1, 1).Y)
	assert.Equal(t, uint8(128), src.GrayAt(1, 1).Y, "source must not change")

	assert.Equal(t, uint8(0), Gamma(uniformGray(2, 2, 0), DefaultGamma).GrayAt(0, 0).Y)
	assert.Equal(t, uint8(255), Gamma(uniformGray(2, 2, 255), DefaultGamma).GrayAt(0, 0).Y)
}

func TestGammaTableTruncates(t *testing.T) {
	lut := gammaTable(2.0)
	// 255 * sqrt(100/255) = 159.69
	assert.InDelta(t, 159.0/255, lut[100], 1e-6)
	for i := 1; i < len(lut); i++ {
		assert.GreaterOrEqual(t, lut[i], lut[i-1])
	}
}

func TestAdjustBrightness(t *testing.T) {
	out := AdjustBrightness(uniformGray(4, 4, 100), EnhanceBrightness)
	assert.Equal(t, uint8(105), out.GrayAt(0, 0).Y)

	out = AdjustBrightness(uniformGray(4, 4, 250), 2)
	assert.Equal(t, uint8(255), out.GrayAt(0, 0).Y)
}

func TestAdjustContrast(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 1))
	img.Pix[0], img.Pix[1] = 100, 200

	// mean 150: 150 + 1.3*(100-150) = 85, 150 + 1.3*(200-150) = 215
	out := AdjustContrast(img, EnhanceContrast)
	assert.InDelta(t, 85, out.GrayAt(0, 0).Y, 1)
	assert.InDelta(t, 215, out.GrayAt(1, 0).Y, 1)

	flat := AdjustContrast(uniformGray(3, 3, 90), EnhanceContrast)
	assert.Equal(t, uint8(90), flat.GrayAt(1, 1).Y)
}

func TestSharpnessKernel(t *testing.T) {
	kernel := sharpnessKernel(EnhanceSharpness)
	require.Len(t, kernel, 9)

	var sum float32
	for _, w := range kernel {
		sum += w
	}
	assert.InDelta(t, 1, sum, 1e-5)
	assert.Greater(t, kernel[4], float32(1))
	assert.Less(t, kernel[0], float32(0))

	identity := sharpnessKernel(1)
	assert.InDelta(t, 1, identity[4], 1e-6)
	assert.InDelta(t, 0, identity[0], 1e-6)
}

func TestAdjustSharpness(t *testing.T) {
	flat := AdjustSharpness(uniformGray(5, 5, 77), EnhanceSharpness)
	assert.Equal(t, uint8(77), flat.GrayAt(2, 2).Y)

	// a bright dot gets brighter against a dark background
	img := uniformGray(5, 5, 50)
	img.SetGray(2, 2, color.Gray{Y: 150})
	out := AdjustSharpness(img, 2)
	assert.Greater(t, out.GrayAt(2, 2).Y, uint8(150))
	assert.Less(t, out.GrayAt(1, 2).Y, uint8(50))
}

func TestAdjustSharpnessKeepsBorder(t *testing.T) {
	img := uniformGray(5, 4, 50)
	img.SetGray(0, 1, color.Gray{Y: 150})
	img.SetGray(1, 1, color.Gray{Y: 150})
	img.SetGray(4, 3, color.Gray{Y: 200})

	out := AdjustSharpness(img, 2)

	for y := range 4 {
		for x := range 5 {
			if y == 0 || y == 3 || x == 0 || x == 4 {
				assert.Equal(t, img.GrayAt(x, y).Y, out.GrayAt(x, y).Y, "border pixel (%d,%d)", x, y)
			}
		}
	}
	// interior pixels are still sharpened
	assert.Greater(t, out.GrayAt(1, 1).Y, uint8(150))
}

func TestEnhance(t *testing.T) {
	out := Enhance(uniformGray(6, 6, 100))
	require.Equal(t, image.Rect(0, 0, 6, 6), out.Bounds())
	assert.Equal(t, uint8(105), out.GrayAt(3, 3).Y)
}
