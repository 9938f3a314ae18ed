package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/leterax/go-walkabout/internal/logging"
	"github.com/leterax/go-walkabout/pkg/config"
	"github.com/leterax/go-walkabout/pkg/render"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to a YAML config file (empty for built-in defaults)")
	width := flag.Int("width", 0, "Window width (overrides config)")
	height := flag.Int("height", 0, "Window height (overrides config)")
	vsync := flag.Bool("vsync", true, "Wait for vertical sync (overrides config)")
	speed := flag.Float64("speed", 0, "Movement per frame (overrides config)")
	sensitivity := flag.Float64("sensitivity", 0, "Look radians per dragged pixel (overrides config)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	printConfig := flag.Bool("print-config", false, "Print the effective config as YAML and exit")
	flag.Parse()

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		log.Fatalf("Invalid log level %q: %v", *logLevel, err)
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	// Flags given explicitly win over the file
	var overrides config.Overrides
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			overrides.Width = width
		case "height":
			overrides.Height = height
		case "vsync":
			overrides.VSync = vsync
		case "speed":
			overrides.MoveSpeed = speed
		case "sensitivity":
			overrides.LookSensitivity = sensitivity
		}
	})
	if err := overrides.Apply(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if *printConfig {
		out, err := cfg.Marshal()
		if err != nil {
			log.Fatalf("Failed to print config: %v", err)
		}
		fmt.Print(string(out))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Initialize the renderer
	renderer, err := render.NewRenderer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}

	renderer.Run(ctx)
}
