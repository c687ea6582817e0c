package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"git.lost.host/meutraa/lanes/internal/audio"
	"git.lost.host/meutraa/lanes/internal/config"
	"git.lost.host/meutraa/lanes/internal/input"
	"git.lost.host/meutraa/lanes/internal/render"
)

func main() {
	c, err := config.Parse(os.Args[1:])
	if nil != err {
		config.NewApp(&c).FatalUsage("%v\n", err)
	}

	if err := run(c); nil != err {
		log.Fatalln(err)
	}
}

// redirectLog sends the log to the configured file while the terminal is in
// use by the game. The returned function restores stderr.
func redirectLog(file string) (func(), error) {
	if file == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if nil != err {
		return nil, fmt.Errorf("unable to open log file: %w", err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}, nil
}

func run(c config.Config) error {
	restoreLog, err := redirectLog(c.LogFile)
	if nil != err {
		return err
	}
	defer restoreLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	keys := input.NewKeyMap(c.Keys)
	var program *Program

	switch c.Backend {
	case config.BackendTcell:
		surface, err := render.OpenScreenSurface(c.Width, c.Height)
		if nil != err {
			return err
		}
		defer surface.Deinit()
		program = NewProgram(c, surface, nil)
		program.Source = &input.ScreenSource{
			Screen:   surface.Screen,
			Keys:     keys,
			Geometry: program.Renderer.Geometry,
		}
	default:
		surface, err := render.OpenANSISurface(c.Width, c.Height)
		if nil != err {
			return err
		}
		defer func() {
			// Restore the terminal state
			if err := surface.Deinit(); nil != err {
				log.Println("unable to restore terminal", err)
			}
		}()
		program = NewProgram(c, surface, &input.KeyboardSource{Keys: keys})
	}

	if c.Sound {
		clicker := &audio.Clicker{}
		if err := clicker.Init(); nil != err {
			// Non-fatal, the game runs without sound
			log.Println("unable to initialise audio", err)
		} else {
			program.Clicker = clicker
		}
	}

	return program.Run(ctx)
}
