package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"showroom/internal/config"
	"showroom/internal/env"
	"showroom/internal/frameloop"
	"showroom/internal/graphics"
	"showroom/internal/logger"
	"showroom/internal/showroom"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file (default $"+config.EnvConfig+" or "+config.DefaultPath+")")
	variant := flag.String("variant", "", "room or gallery; overrides the config file")
	envFile := flag.String("env", ".env", "dotenv file loaded before the config")
	flag.Parse()

	if _, err := env.Load(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "showroom: %v\n", err)
		return 1
	}
	path := *configPath
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.Load(path)
	if err == nil && *variant != "" {
		cfg.Variant = *variant
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "showroom: %v\n", err)
		return 1
	}

	log := logger.New(cfg.Log.Path)
	log.SetEcho(os.Stderr)
	log.Logf("variant %s, input %s", cfg.Variant, cfg.Input.Device)

	win := graphics.Open(cfg.Window)
	defer win.Close()
	if !win.Ready() {
		log.Log("window could not be created")
		return 1
	}

	s := showroom.New(cfg, log)
	defer s.Close()
	w, h, _ := win.Size()
	s.Resize(w, h)
	// A failed init is already logged and shown in the status label; keep the window up.
	_ = s.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	input := graphics.Input{}
	update := func(dt float32) {
		if w, h, resized := win.Size(); resized {
			s.Resize(w, h)
		}
		s.Update(input, dt)
		win.SetCursor(s.Cursor())
	}

	var loop frameloop.Loop
	err = loop.Run(ctx, win, update, s.Draw)
	switch {
	case err == nil:
		log.Logf("window closed after %d frames", loop.Frames())
	case errors.Is(err, context.Canceled):
		log.Logf("interrupted after %d frames", loop.Frames())
	default:
		log.Logf("frame loop: %v", err)
		return 1
	}
	return 0
}
