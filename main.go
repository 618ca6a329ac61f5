package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"gridsnake/internal/config"
	"gridsnake/internal/game"
	"gridsnake/internal/sim"
	"gridsnake/internal/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		envFile  = flag.String("env", "", "settings file to load instead of ./.env")
		seed     = flag.Uint64("seed", 0, "random seed (0 seeds from the clock)")
		scale    = flag.Int("scale", config.DefaultScale, "initial window scale")
		mute     = flag.Bool("mute", false, "disable sound")
		terminal = flag.Bool("term", false, "play in the terminal")
	)
	flag.Parse()

	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}
	s, err := config.Load(files...)
	if err != nil {
		return err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			s.Seed = *seed
		case "scale":
			s.Scale = *scale
		case "mute":
			s.Mute = *mute
		case "term":
			s.Terminal = *terminal
		}
	})
	if s.Scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", s.Scale)
	}
	if s.Seed == 0 {
		s.Seed = uint64(time.Now().UnixNano())
	}

	logger, closeLog, err := newLogger(s)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Printf("seed %d", s.Seed)

	runner, err := sim.NewRunner(sim.DefaultConfig(), s.Seed, logger)
	if err != nil {
		return err
	}
	if s.Terminal {
		return term.Run(runner, logger)
	}
	return game.RunDesktop(runner, s, logger)
}

// newLogger writes to stderr for the window host. The terminal host owns the
// screen, so it logs to SNAKE_LOG or nowhere.
func newLogger(s config.Settings) (*log.Logger, func(), error) {
	const flags = log.LstdFlags | log.Lmicroseconds
	if s.LogFile != "" {
		f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return log.New(f, "snake: ", flags), func() { f.Close() }, nil
	}
	if s.Terminal {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	return log.New(os.Stderr, "snake: ", flags), func() {}, nil
}
