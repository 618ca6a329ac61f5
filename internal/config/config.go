// Package config loads runtime settings from .env files and the process
// environment. Environment variables win over file values.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvSeed     = "SNAKE_SEED"
	EnvScale    = "SNAKE_SCALE"
	EnvMute     = "SNAKE_MUTE"
	EnvTerminal = "SNAKE_TERMINAL"
	EnvLog      = "SNAKE_LOG"
)

const DefaultScale = 2

type Settings struct {
	Seed     uint64 // 0 means seed from the clock
	Scale    int    // initial window size as a multiple of the raster
	Mute     bool
	Terminal bool   // run in the terminal instead of a window
	LogFile  string // empty means the host default
}

func Defaults() Settings {
	return Settings{Scale: DefaultScale}
}

// Load reads settings. With no files it reads ./.env when present; named
// files must exist.
func Load(files ...string) (Settings, error) {
	vals, err := readFiles(files)
	if err != nil {
		return Settings{}, err
	}
	return parse(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vals[key]
		return v, ok
	})
}

func readFiles(files []string) (map[string]string, error) {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		files = []string{".env"}
	}
	vals, err := godotenv.Read(files...)
	if err != nil {
		return nil, fmt.Errorf("read env files: %w", err)
	}
	return vals, nil
}

func parse(lookup func(string) (string, bool)) (Settings, error) {
	s := Defaults()

	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		s.Seed = seed
	}
	if v, ok := lookup(EnvScale); ok && v != "" {
		scale, err := strconv.Atoi(v)
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %w", EnvScale, err)
		}
		if scale < 1 {
			return Settings{}, fmt.Errorf("%s: scale %d must be at least 1", EnvScale, scale)
		}
		s.Scale = scale
	}
	var err error
	if s.Mute, err = parseBool(lookup, EnvMute); err != nil {
		return Settings{}, err
	}
	if s.Terminal, err = parseBool(lookup, EnvTerminal); err != nil {
		return Settings{}, err
	}
	if v, ok := lookup(EnvLog); ok {
		s.LogFile = v
	}
	return s, nil
}

func parseBool(lookup func(string) (string, bool), key string) (bool, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
