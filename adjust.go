package asciigif

import (
	"image"

	"github.com/disintegration/imaging"
)

// Adjustments are optional tone corrections applied to a resized frame before
// it is reduced to luminance. The zero value changes nothing.
type Adjustments struct {
	// Gamma = 1.0 gives the original image. Less than 1.0 darkens, greater lightens.
	// Zero means unset.
	Gamma float64
	// Brightness in the range (-100, 100). 0 gives the original image.
	Brightness float64
	// Contrast in the range (-100, 100). 0 gives the original image.
	Contrast float64
	// Sharpen sigma. 0 gives the original image.
	Sharpen float64
	// SigmoidMidpoint must be between 0 and 1. Only used when SigmoidFactor is set.
	SigmoidMidpoint float64
	// SigmoidFactor greater than 0 increases contrast, less than 0 decreases it.
	SigmoidFactor float64
	// Invert swaps dark and light.
	Invert bool
}

func (a Adjustments) enabled() bool {
	return a != Adjustments{} && a != Adjustments{Gamma: 1.0}
}

// Apply runs the configured adjustments over img, in the same order the
// dotmatrix tool applies them.
func (a Adjustments) Apply(img image.Image) image.Image {
	if !a.enabled() {
		return img
	}
	if a.Gamma != 0 && a.Gamma != 1.0 {
		img = imaging.AdjustGamma(img, a.Gamma)
	}
	if a.Brightness != 0 {
		img = imaging.AdjustBrightness(img, a.Brightness)
	}
	if a.Sharpen != 0 {
		img = imaging.Sharpen(img, a.Sharpen)
	}
	if a.Contrast != 0 {
		img = imaging.AdjustContrast(img, a.Contrast)
	}
	if a.SigmoidFactor != 0 {
		img = imaging.AdjustSigmoid(img, a.SigmoidMidpoint, a.SigmoidFactor)
	}
	if a.Invert {
		img = imaging.Invert(img)
	}
	return img
}
