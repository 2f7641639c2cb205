package main

import (
	"log"
	"os"
	"path/filepath"

	"coasterpaint/internal/coaster"
	"coasterpaint/internal/config"
	"coasterpaint/internal/paint"
	"coasterpaint/internal/viewer"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	ensureRuntimeCWD()

	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")

	if logger, err := cfg.NewLogger(os.Stderr); err != nil {
		log.Printf("Warning: %v", err)
	} else if logger != nil {
		paint.SetLogger(logger)
	}

	style, ok := coaster.Lookup(cfg.Viewer.Ride)
	if !ok {
		log.Fatalf("unknown ride %q in config.yaml", cfg.Viewer.Ride)
	}

	v, err := viewer.New(cfg, style, filepath.Join("assets", "sprites"))
	if err != nil {
		log.Fatal(err)
	}
	defer v.Close()

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(v); err != nil {
		log.Print(err)
	}
}

// ensureRuntimeCWD moves to the executable's directory when config.yaml is
// not in the working directory.
func ensureRuntimeCWD() {
	if _, err := os.Stat("config.yaml"); err == nil {
		return
	}
	exe, err := os.Executable()
	if err != nil {
		return
	}
	_ = os.Chdir(filepath.Dir(exe))
}
