/*
Package asciigif converts animated GIFs into frames of text.

Each frame is resized to a caller chosen number of columns, squashed
vertically to make up for tall terminal cells, reduced to luminance and
mapped onto a ten glyph ramp running from '@' (dark) to ' ' (light):

	frames, err := asciigif.Convert(data, 80)

Frames come back in the order they appear in the GIF.
*/
package asciigif

import (
	"errors"
	"image"
)

type Option func(c *Converter) error

// WithFilter selects the resampling filter by name. See FilterNames.
func WithFilter(name string) Option {
	return func(c *Converter) error {
		f, err := LookupFilter(name)
		if err != nil {
			return err
		}
		c.filter = f
		return nil
	}
}

// WithWorkers spreads frame conversion over n goroutines. Output order does
// not depend on n.
func WithWorkers(n int) Option {
	return func(c *Converter) error {
		if n < 1 {
			return errors.New("asciigif: workers must be at least 1")
		}
		c.workers = n
		return nil
	}
}

// WithAdjustments applies tone adjustments to every resized frame.
func WithAdjustments(adj Adjustments) Option {
	return func(c *Converter) error {
		c.adjust = adj
		return nil
	}
}

// If used, colors are inverted.
func WithInvertedColors() Option {
	return func(c *Converter) error {
		c.adjust.Invert = true
		return nil
	}
}

type Converter struct {
	filter  Filter      // Resampling filter
	workers int         // Frames converted concurrently
	adjust  Adjustments // Tone adjustments
}

func NewConverter(opts ...Option) (*Converter, error) {
	c := Converter{
		filter:  filters[DefaultFilter],
		workers: 1,
	}
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

var defaultConverter, _ = NewConverter()

// Convert renders every frame of a GIF scaleWidth columns wide using the
// default box filter and no adjustments.
func Convert(data []byte, scaleWidth int) ([]string, error) {
	return defaultConverter.Convert(data, scaleWidth)
}

/*
Convert decodes data and renders each frame as text scaleWidth columns wide.

The frame height is floor(scaleWidth * srcHeight / srcWidth * 0.5). When
either dimension comes out as 0 the frame is the empty string; it is still
present in the result so len(frames) always equals the GIF's frame count.

Any decode failure returns a *DecodeError and no frames.
*/
func (c *Converter) Convert(data []byte, scaleWidth int) ([]string, error) {
	defer reportPanic()

	frames, err := Decode(data)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(frames))
	forEachOrdered(len(frames), c.workers, func(i int) {
		out[i] = c.convertFrame(frames[i], scaleWidth)
	})
	return out, nil
}

func (c *Converter) convertFrame(frame image.Image, scaleWidth int) string {
	bounds := frame.Bounds()
	w, h := TargetSize(bounds.Dx(), bounds.Dy(), scaleWidth)
	if w == 0 || h == 0 {
		return ""
	}
	resized := Resize(frame, w, h, c.filter)
	resized = c.adjust.Apply(resized)
	return EncodeFrame(Luminance(resized))
}
