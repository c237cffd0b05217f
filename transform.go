package asciigif

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// cellAspect compensates for terminal cells being roughly twice as tall as
// they are wide.
const cellAspect = 0.5

// TargetSize returns the output grid for a srcW x srcH frame rendered scaleWidth
// columns wide. The height is truncated, so it may be 0 for wide sources or
// small widths; callers treat a zero dimension as an empty frame.
func TargetSize(srcW, srcH, scaleWidth int) (w, h int) {
	if srcW <= 0 || srcH <= 0 || scaleWidth <= 0 {
		return 0, 0
	}
	aspect := float32(srcH) / float32(srcW)
	return scaleWidth, int(float32(scaleWidth) * aspect * cellAspect)
}

// Filter resizes img to exactly w x h. Both dimensions are positive.
type Filter func(img image.Image, w, h int) image.Image

func imagingFilter(f imaging.ResampleFilter) Filter {
	return func(img image.Image, w, h int) image.Image {
		return imaging.Resize(img, w, h, f)
	}
}

func resizeFilter(interp resize.InterpolationFunction) Filter {
	return func(img image.Image, w, h int) image.Image {
		return resize.Resize(uint(w), uint(h), img, interp)
	}
}

// DefaultFilter is the name of the filter used when none is configured. Box
// averages every source pixel under a cell.
const DefaultFilter = "box"

var filters = map[string]Filter{
	"box":      imagingFilter(imaging.Box),
	"lanczos":  imagingFilter(imaging.Lanczos),
	"nearest":  resizeFilter(resize.NearestNeighbor),
	"bilinear": resizeFilter(resize.Bilinear),
	"bicubic":  resizeFilter(resize.Bicubic),
}

// LookupFilter returns the named resampling filter.
func LookupFilter(name string) (Filter, error) {
	f, ok := filters[name]
	if !ok {
		return nil, fmt.Errorf("asciigif: unknown filter %q (want one of %v)", name, FilterNames())
	}
	return f, nil
}

// FilterNames lists the registered filter names in sorted order.
func FilterNames() []string {
	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resize scales img to exactly w x h with f, ignoring the source aspect ratio.
// A zero dimension yields an empty image without touching f.
func Resize(img image.Image, w, h int, f Filter) image.Image {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	return f(img, w, h)
}

// Luminance reduces img to one 8 bit brightness sample per pixel. Alpha is
// ignored, so transparent regions take the brightness of their color channels.
func Luminance(img image.Image) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	// An image's bounds do not necessarily start at (0, 0), so the two loops start
	// at bounds.Min.Y and bounds.Min.X.
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := gray.Pix[(y-bounds.Min.Y)*gray.Stride:]
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			row[x-bounds.Min.X] = grayscale(c.R, c.G, c.B)
		}
	}
	return gray
}

// Rec. 709 luma in fixed point: 0.2126 R + 0.7152 G + 0.0722 B. The weights sum
// to 10000 so white maps to exactly 255.
func grayscale(r, g, b uint8) uint8 {
	return uint8((2126*uint32(r) + 7152*uint32(g) + 722*uint32(b) + 5000) / 10000)
}
