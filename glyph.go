package asciigif

import (
	"image"
	"strings"
)

// Ramp orders glyphs from densest (brightness 0) to lightest (brightness 255).
// GlyphIndex depends on it holding exactly ten glyphs.
const Ramp = "@%#*+=-:. "

// GlyphIndex maps a brightness sample onto an index into Ramp. The mapping is
// monotonic: 0 maps to 0 and 255 maps to len(Ramp)-1.
func GlyphIndex(b uint8) int {
	return int(b) * (len(Ramp) - 1) / 255
}

// Glyph returns the Ramp character for a brightness sample.
func Glyph(b uint8) byte {
	return Ramp[GlyphIndex(b)]
}

/*
EncodeFrame renders a luminance grid as text. Rows are separated by '\n' and
the last row is not terminated, so a w x h grid yields h lines of w glyphs. An
empty grid renders as the empty string.

For example a 4x2 all-white grid renders as:
	"    \n    "
*/
func EncodeFrame(gray *image.Gray) string {
	bounds := gray.Bounds()
	if bounds.Empty() {
		return ""
	}

	var sb strings.Builder
	sb.Grow(bounds.Dy()*(bounds.Dx()+1) - 1)
	// Looping over Y first and X second walks Pix in memory order.
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		if y > bounds.Min.Y {
			sb.WriteByte('\n')
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			sb.WriteByte(Glyph(gray.GrayAt(x, y).Y))
		}
	}
	return sb.String()
}
