package asciigif

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeError reports input that could not be decoded as an animated GIF.
type DecodeError struct {
	Cause string
	Err   error
}

func (e *DecodeError) Error() string {
	return "asciigif: decode: " + e.Cause
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

var errNoFrames = errors.New("gif contains no frames")

/*
Decode decodes data as a GIF and returns one RGBA image per frame, in order.

Frames are composited onto a canvas the size of the GIF's logical screen so
that each returned image is what a viewer would show at that point in the
animation. Disposal methods are respected. The returned images never share
pixel memory.

Buffers holding another registered image format (png, jpeg, bmp, tiff, webp)
are rejected with a DecodeError naming that format.
*/
func Decode(data []byte) ([]*image.RGBA, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Cause: err.Error(), Err: err}
	}
	if format != "gif" {
		return nil, &DecodeError{Cause: fmt.Sprintf("unsupported format %q", format)}
	}

	giff, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Cause: err.Error(), Err: err}
	}
	if len(giff.Image) == 0 {
		return nil, &DecodeError{Cause: errNoFrames.Error(), Err: errNoFrames}
	}
	return composite(giff), nil
}

func composite(giff *gif.GIF) []*image.RGBA {
	screen := image.NewRGBA(canvasBounds(giff))
	frames := make([]*image.RGBA, 0, len(giff.Image))

	for i, frame := range giff.Image {
		var previous *image.RGBA
		disposal := disposalAt(giff, i)
		if disposal == gif.DisposalPrevious {
			previous = cloneRGBA(screen)
		}

		draw.Draw(screen, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		frames = append(frames, cloneRGBA(screen))

		switch disposal {
		// Dispose previous essentially means draw then undo
		case gif.DisposalPrevious:
			screen = previous
		// Dispose background clears what was just drawn back to transparent
		case gif.DisposalBackground:
			draw.Draw(screen, frame.Bounds(), image.Transparent, image.ZP, draw.Src)
		}
	}
	return frames
}

// canvasBounds uses the logical screen size, falling back to the union of the
// frame bounds for files that leave it empty.
func canvasBounds(giff *gif.GIF) image.Rectangle {
	rect := image.Rect(0, 0, giff.Config.Width, giff.Config.Height)
	if !rect.Empty() {
		return rect
	}
	for _, frame := range giff.Image {
		rect = rect.Union(frame.Bounds())
	}
	return rect
}

func disposalAt(giff *gif.GIF, i int) byte {
	if i < len(giff.Disposal) {
		return giff.Disposal[i]
	}
	return 0
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Rect)
	copy(dst.Pix, src.Pix)
	return dst
}
