package main

import (
	"time"

	"github.com/kevin-cantwell/asciigif"
)

// flagSource is the part of *cli.Context that resolve reads.
type flagSource interface {
	IsSet(name string) bool
	Int(name string) int
	String(name string) string
	Float64(name string) float64
	Bool(name string) bool
	Duration(name string) time.Duration
}

type settings struct {
	width    int
	filter   string
	workers  int
	adjust   asciigif.Adjustments
	play     bool
	interval time.Duration
	loops    int
}

// resolve merges flags over the config file. A flag wins when it was given
// explicitly; otherwise a non-zero config value wins over the flag default.
func resolve(f flagSource, cfg *Config) settings {
	s := settings{
		width:    f.Int("width"),
		filter:   f.String("filter"),
		workers:  f.Int("workers"),
		play:     f.Bool("play") || cfg.Play.Enabled,
		interval: f.Duration("interval"),
		loops:    f.Int("loops"),
		adjust: asciigif.Adjustments{
			Gamma:           f.Float64("gamma"),
			Brightness:      f.Float64("brightness"),
			Contrast:        f.Float64("contrast"),
			Sharpen:         f.Float64("sharpen"),
			SigmoidMidpoint: f.Float64("sigmoid-midpoint"),
			SigmoidFactor:   f.Float64("sigmoid-factor"),
			Invert:          f.Bool("invert") || cfg.Adjust.Invert,
		},
	}

	intFrom := func(name string, dst *int, v int) {
		if !f.IsSet(name) && v != 0 {
			*dst = v
		}
	}
	floatFrom := func(name string, dst *float64, v float64) {
		if !f.IsSet(name) && v != 0 {
			*dst = v
		}
	}

	intFrom("width", &s.width, cfg.Width)
	intFrom("workers", &s.workers, cfg.Workers)
	intFrom("loops", &s.loops, cfg.Play.Loops)
	if !f.IsSet("filter") && cfg.Filter != "" {
		s.filter = cfg.Filter
	}
	if d := cfg.interval(); !f.IsSet("interval") && d != 0 {
		s.interval = d
	}
	floatFrom("gamma", &s.adjust.Gamma, cfg.Adjust.Gamma)
	floatFrom("brightness", &s.adjust.Brightness, cfg.Adjust.Brightness)
	floatFrom("contrast", &s.adjust.Contrast, cfg.Adjust.Contrast)
	floatFrom("sharpen", &s.adjust.Sharpen, cfg.Adjust.Sharpen)
	floatFrom("sigmoid-midpoint", &s.adjust.SigmoidMidpoint, cfg.Adjust.SigmoidMidpoint)
	floatFrom("sigmoid-factor", &s.adjust.SigmoidFactor, cfg.Adjust.SigmoidFactor)
	return s
}
