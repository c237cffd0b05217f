package main

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/codegangsta/cli"
	"github.com/kevin-cantwell/asciigif"
)

func main() {
	asciigif.InitPanicHook()

	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "asciigif"
	app.Usage = "A command-line tool for rendering animated gifs as ascii art."
	app.UsageText = "1) asciigif [options] [file|url]\n" +
		/*      */ "   2) asciigif [options] < [file]"
	app.Author = "Kevin Cantwell"
	app.Email = "kevin.cantwell@gmail.com"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config,c",
			Usage: "`FILE` is a YAML file providing defaults for any of these options.",
		},
		cli.IntFlag{
			Name:  "width,w",
			Usage: "`WIDTH` in columns of each frame. Defaults to the terminal width, or 80.",
		},
		cli.StringFlag{
			Name:  "filter,f",
			Usage: "Resampling `FILTER`, one of " + strings.Join(asciigif.FilterNames(), ", ") + ".",
			Value: asciigif.DefaultFilter,
		},
		cli.IntFlag{
			Name:  "workers",
			Usage: "Number of frames to convert concurrently.",
			Value: 1,
		},
		cli.Float64Flag{
			Name:  "gamma,g",
			Usage: "`GAMMA` = 1.0 gives the original image. GAMMA less than 1.0 darkens the image and GAMMA greater than 1.0 lightens it.",
			Value: 1.0,
		},
		cli.Float64Flag{
			Name:  "brightness,b",
			Usage: "`BRIGHTNESS` = 0 gives the original image. BRIGHTNESS = -100 gives solid black image. BRIGHTNESS = 100 gives solid white image.",
		},
		cli.Float64Flag{
			Name:  "contrast",
			Usage: "`CONTRAST` = 0 gives the original image. CONTRAST = -100 gives solid grey image. CONTRAST = 100 gives maximum contrast.",
		},
		cli.Float64Flag{
			Name:  "sharpen,s",
			Usage: "`SHARPEN` = 0 gives the original image. SHARPEN greater than 0 sharpens the image.",
		},
		cli.Float64Flag{
			Name:  "sigmoid-midpoint",
			Usage: "`MIDPOINT` of contrast that must be between 0 and 1.",
			Value: 0.5,
		},
		cli.Float64Flag{
			Name:  "sigmoid-factor",
			Usage: "`FACTOR` = 0 gives the original image. FACTOR greater than 0 increases contrast. FACTOR less than 0 decreases contrast.",
		},
		cli.BoolFlag{
			Name:  "invert,i",
			Usage: "Inverts the image.",
		},
		cli.BoolFlag{
			Name:  "play,p",
			Usage: "Animates the gif in the terminal. CTRL-C to quit.",
		},
		cli.DurationFlag{
			Name:  "interval",
			Usage: "How long each frame is shown when playing.",
			Value: asciigif.DefaultInterval,
		},
		cli.IntFlag{
			Name:  "loops",
			Usage: "Number of times to play the animation. 0 loops forever.",
		},
		cli.BoolFlag{
			Name:  "verbose,v",
			Usage: "Logs progress to stderr.",
		},
	}
	app.Action = func(c *cli.Context) error {
		if !c.Bool("verbose") {
			log.SetOutput(ioutil.Discard)
		}

		cfg, err := readConfig(c.String("config"))
		if err != nil {
			exit(err.Error(), 1)
		}
		s := resolve(c, cfg)
		if s.width == 0 {
			s.width = terminalWidth(os.Stdout)
		}
		log.Printf("settings: %+v", s)

		data, err := readInput(c.Args().First(), os.Stdin)
		if err != nil {
			exit(err.Error(), 1)
		}

		conv, err := asciigif.NewConverter(
			asciigif.WithFilter(s.filter),
			asciigif.WithWorkers(s.workers),
			asciigif.WithAdjustments(s.adjust),
		)
		if err != nil {
			exit(err.Error(), 1)
		}

		start := time.Now()
		frames, err := conv.Convert(data, s.width)
		if err != nil {
			exit(err.Error(), 1)
		}
		log.Printf("converted %d frames in %s", len(frames), time.Since(start))

		if s.play && isTerminal(os.Stdout) {
			player := asciigif.NewPlayer(os.Stdout, nil,
				asciigif.WithInterval(s.interval),
				asciigif.WithLoops(s.loops),
			)
			if err := player.Play(interruptContext(), frames); err != nil && err != context.Canceled {
				exit(err.Error(), 1)
			}
			return nil
		}
		if s.play {
			log.Printf("stdout is not a terminal, printing frames instead of playing")
		}
		if err := printFrames(os.Stdout, frames); err != nil {
			exit(err.Error(), 1)
		}
		return nil
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// printFrames writes each frame followed by a blank line.
func printFrames(w io.Writer, frames []string) error {
	for _, frame := range frames {
		if _, err := io.WriteString(w, frame+"\n\n"); err != nil {
			return err
		}
	}
	return nil
}

// interruptContext is cancelled on SIGINT or SIGTERM so the player can restore
// the cursor before the process exits.
func interruptContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		// Stop notifying this channel
		signal.Stop(signals)
		cancel()
	}()
	return ctx
}

func exit(msg string, code int) {
	fmt.Println(msg)
	os.Exit(code)
}
