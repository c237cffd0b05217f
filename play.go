package asciigif

import (
	"context"
	"io"
	"strings"
	"time"
)

// DefaultInterval is the time each frame stays on screen. GIF delays are not
// consulted.
const DefaultInterval = 100 * time.Millisecond

type PlayerOpt func(p *Player)

// WithInterval sets how long each frame is shown.
func WithInterval(d time.Duration) PlayerOpt {
	return func(p *Player) {
		p.interval = d
	}
}

// WithLoops plays the animation n times. 0, the default, loops until the
// context is done.
func WithLoops(n int) PlayerOpt {
	return func(p *Player) {
		p.loops = n
	}
}

type Player struct {
	w        io.Writer
	t        Terminal
	interval time.Duration
	loops    int
}

// NewPlayer provides a Player. If t is nil, an Xterm writing to w is used.
func NewPlayer(w io.Writer, t Terminal, opts ...PlayerOpt) *Player {
	if t == nil {
		t = &Xterm{
			Writer: w,
		}
	}
	p := Player{
		w:        w,
		t:        t,
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(&p)
	}
	if p.interval <= 0 {
		p.interval = DefaultInterval
	}
	return &p
}

/*
Play draws frames one after another in the same place on screen. Terminal
codes are used to reposition the cursor at the top of each frame, so frames
should all have the same height. The last frame drawn is left on screen.

Play returns ctx.Err() if the context is done before the animation finishes.
*/
func (p *Player) Play(ctx context.Context, frames []string) error {
	if len(frames) == 0 {
		return nil
	}

	p.t.ShowCursor(false)
	defer p.t.ShowCursor(true)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for c := 0; p.loops == 0 || c < p.loops; c++ {
		for i, frame := range frames {
			if c > 0 || i > 0 {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-ticker.C:
				}
				p.t.ResetCursor(strings.Count(frames[prevIndex(i, len(frames))], "\n") + 1)
			}
			if _, err := io.WriteString(p.w, frame+"\n"); err != nil {
				return err
			}
		}
	}

	// Keep the last frame up for its full interval.
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-ticker.C:
	}
	return nil
}

func prevIndex(i, n int) int {
	if i == 0 {
		return n - 1
	}
	return i - 1
}
