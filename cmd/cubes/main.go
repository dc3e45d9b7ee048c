package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"orbit-cubes/core"
	"orbit-cubes/internal/opengl"
	"orbit-cubes/io"
	"orbit-cubes/platform"
	"orbit-cubes/renderer"
	"orbit-cubes/scene"
)

// debugEvery is how many frames pass between debug state dumps.
const debugEvery = 600

type options struct {
	configPath string
	width      int
	height     int
	seed       int64
	logLevel   string
	exportGLTF string
	exportOBJ  string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "TOML config file")
	flag.IntVar(&opts.width, "width", 0, "window width (overrides config)")
	flag.IntVar(&opts.height, "height", 0, "window height (overrides config)")
	flag.Int64Var(&opts.seed, "seed", 0, "jitter offset seed, 0 = from clock (overrides config)")
	flag.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	flag.StringVar(&opts.exportGLTF, "export-gltf", "", "write the startup frame to this .glb file and exit")
	flag.StringVar(&opts.exportOBJ, "export-obj", "", "write the startup frame to this .obj file and exit")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "orbit-cubes: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(opts options) (core.Config, error) {
	cfg := core.DefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = core.LoadConfig(opts.configPath); err != nil {
			return cfg, err
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Window.Width = opts.width
		case "height":
			cfg.Window.Height = opts.height
		case "seed":
			cfg.Seed = opts.seed
		case "log-level":
			cfg.LogLevel = opts.logLevel
		}
	})
	return cfg, cfg.Validate()
}

func run(opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	level, _ := core.ParseLogLevel(cfg.LogLevel)
	logger := core.NewLogger(level)
	slog.SetDefault(logger)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	state := scene.NewState(rand.New(rand.NewSource(seed)))
	logger.Debug("jitter offset", "seed", seed, "offset", state.JitterOffset)

	sc := scene.NewScene()
	sc.ClearColor = cfg.ClearColor

	if opts.exportGLTF != "" || opts.exportOBJ != "" {
		return export(opts, sc, state, cfg.Window, logger)
	}

	fmt.Println("Starting orbit cubes...")

	window, err := platform.NewWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	backend, err := opengl.NewBackend(logger)
	if err != nil {
		return err
	}
	defer backend.Destroy()

	renderEngine, err := renderer.NewRenderEngine(backend, sc, logger)
	if err != nil {
		var shaderErr *renderer.ShaderError
		if errors.As(err, &shaderErr) {
			logger.Error("shader setup failed", "stage", shaderErr.Stage, "log", shaderErr.Err)
		}
		return err
	}
	defer renderEngine.Destroy()

	window.OnKeyDown(func(key rune) {
		if state.KeyDown(key) {
			logger.Debug("key", "key", string(key),
				"spin", state.Spin, "orbit", state.Orbit, "jitter", state.Jitter)
		}
	})
	printControls()

	width, height := window.GetFramebufferSize()
	backend.SetViewport(width, height)

	frameCount := 0
	fpsCounter := 0
	displayFPS := 0
	fpsLastTime := time.Now()
	for !window.ShouldClose() {
		window.PollEvents()

		frame := renderer.BuildFrame(sc, state, width, height)
		renderEngine.Draw(frame)
		window.SwapBuffers()

		frameCount++
		fpsCounter++
		if now := time.Now(); now.Sub(fpsLastTime) >= time.Second {
			displayFPS = fpsCounter
			window.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Window.Title, displayFPS))
			fpsCounter = 0
			fpsLastTime = now
		}
		if frameCount%debugEvery == 0 {
			objects, triangles := renderEngine.DrawStats()
			logger.Debug("frame",
				"n", frameCount, "fps", displayFPS, "objects", objects, "triangles", triangles,
				"spin", state.Spin, "orbit", state.Orbit, "jitter", state.Jitter)
		}
	}
	logger.Info("window closed", "frames", frameCount)
	return nil
}

// export writes the startup frame without opening a window.
func export(opts options, sc *scene.Scene, state *scene.State, wc core.WindowConfig, logger *slog.Logger) error {
	frame := renderer.BuildFrame(sc, state, wc.Width, wc.Height)
	if opts.exportGLTF != "" {
		if err := io.ExportGLTF(opts.exportGLTF, sc, frame); err != nil {
			return err
		}
		logger.Info("exported glTF", "path", opts.exportGLTF)
	}
	if opts.exportOBJ != "" {
		if err := io.ExportOBJ(opts.exportOBJ, sc, frame); err != nil {
			return err
		}
		logger.Info("exported OBJ", "path", opts.exportOBJ)
	}
	return nil
}

func printControls() {
	fmt.Println("Controls:")
	for i := 0; i < len(scene.KeyBindings); i += 2 {
		up, down := scene.KeyBindings[i], scene.KeyBindings[i+1]
		fmt.Printf("  %c / %c  %s +%d / -%d deg\n",
			up.Key, down.Key, up.Counter, scene.AngleStep, scene.AngleStep)
	}
	fmt.Println("  Esc    quit")
	fmt.Println(strings.Repeat("-", 32))
}
