package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"walk3d/internal/assets"
	"walk3d/internal/config"
	"walk3d/internal/game"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the walk3d YAML config")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	cfg, err := config.Load(*configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("Config: %s not found, using defaults", *configPath)
		cfg = config.Default()
	case err != nil:
		log.Fatal(err)
	}

	g := game.New(cfg, *configPath, assets.ModelLoader{})
	if err := g.Run(); err != nil {
		log.Fatal(err)
	}
}
