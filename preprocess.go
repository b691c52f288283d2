package asciiart

import (
	"image"
	"math"

	"github.com/disintegration/gift"
)

// Enhancement factors applied by Enhance
const (
	EnhanceContrast   = 1.3
	EnhanceBrightness = 1.05
	EnhanceSharpness  = 1.2
)

// DefaultGamma is the gamma used when none is configured
const DefaultGamma = 1.2

// smoothKernel is the 3x3 smoothing filter sharpness is blended against
var smoothKernel = [9]float32{
	1, 1, 1,
	1, 5, 1,
	1, 1, 1,
}

const smoothKernelWeight = 13

// filterGray runs filters over src on the calling goroutine and stores the
// result in a new 8-bit grayscale image
func filterGray(src image.Image, filters ...gift.Filter) *image.Gray {
	g := gift.New(filters...)
	g.SetParallelization(false)

	dst := image.NewGray(g.Bounds(src.Bounds()))
	g.Draw(dst, src)

	return dst
}

// Grayscale converts img to single channel luminance (0.299R + 0.587G + 0.114B)
func Grayscale(img image.Image) *image.Gray {
	return filterGray(img, gift.Grayscale())
}

// Enhance applies contrast, brightness and sharpness adjustments in that
// order. Each pass is quantized back to 8 bits before the next one runs.
func Enhance(img *image.Gray) *image.Gray {
	img = AdjustContrast(img, EnhanceContrast)
	img = AdjustBrightness(img, EnhanceBrightness)
	return AdjustSharpness(img, EnhanceSharpness)
}

// AdjustContrast scales every pixel's distance from the mean intensity by factor
func AdjustContrast(img *image.Gray, factor float64) *image.Gray {
	mean := float32(math.Round(meanIntensity(img))) / 255
	f := float32(factor)

	return filterGray(img, gift.ColorFunc(func(r0, g0, b0, a0 float32) (r, g, b, a float32) {
		v := mean + f*(r0-mean)
		return v, v, v, a0
	}))
}

// AdjustBrightness multiplies every pixel by factor
func AdjustBrightness(img *image.Gray, factor float64) *image.Gray {
	f := float32(factor)

	return filterGray(img, gift.ColorFunc(func(r0, g0, b0, a0 float32) (r, g, b, a float32) {
		v := r0 * f
		return v, v, v, a0
	}))
}

// AdjustSharpness blends img with its smoothed version. A factor of 1 returns
// img unchanged, larger values sharpen. The 1 pixel border is not filtered.
func AdjustSharpness(img *image.Gray, factor float64) *image.Gray {
	out := filterGray(img, gift.Convolution(sharpnessKernel(float32(factor)), false, false, false, 0))
	copyBorder(out, img)
	return out
}

// copyBorder copies the outermost rows and columns of src into dst. Both
// images must have the same size.
func copyBorder(dst, src *image.Gray) {
	sb, db := src.Bounds(), dst.Bounds()
	w, h := sb.Dx(), sb.Dy()

	cp := func(x, y int) {
		dst.Pix[dst.PixOffset(db.Min.X+x, db.Min.Y+y)] = src.Pix[src.PixOffset(sb.Min.X+x, sb.Min.Y+y)]
	}

	for x := range w {
		cp(x, 0)
		cp(x, h-1)
	}
	for y := range h {
		cp(0, y)
		cp(w-1, y)
	}
}

// sharpnessKernel folds smooth + factor*(identity - smooth) into one kernel
func sharpnessKernel(factor float32) []float32 {
	kernel := make([]float32, len(smoothKernel))
	for i, w := range smoothKernel {
		kernel[i] = (1 - factor) * w / smoothKernelWeight
	}
	kernel[len(kernel)/2] += factor
	return kernel
}

// Gamma applies out = 255 * (in/255)^(1/gamma), truncating to 8 bits. A gamma
// of 1 returns img unchanged.
func Gamma(img *image.Gray, gamma float64) *image.Gray {
	if gamma == 1 {
		return img
	}

	lut := gammaTable(gamma)

	return filterGray(img, gift.ColorFunc(func(r0, g0, b0, a0 float32) (r, g, b, a float32) {
		v := lut[int(math.Round(float64(r0)*255))]
		return v, v, v, a0
	}))
}

// gammaTable maps each 8-bit input to its truncated output, scaled to [0, 1]
func gammaTable(gamma float64) [256]float32 {
	var lut [256]float32
	e := 1 / gamma
	for i := range lut {
		out := math.Floor(255 * math.Pow(float64(i)/255, e))
		lut[i] = float32(min(max(out, 0), 255) / 255)
	}
	return lut
}

// meanIntensity returns the average pixel value of img
func meanIntensity(img *image.Gray) float64 {
	b := img.Bounds()
	if b.Empty() {
		return 0
	}

	var sum int
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for _, p := range img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)] {
			sum += int(p)
		}
	}

	return float64(sum) / float64(b.Dx()*b.Dy())
}
