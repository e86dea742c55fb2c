package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/lixenwraith/drumkit/audio"
	"github.com/lixenwraith/drumkit/config"
	"github.com/lixenwraith/drumkit/constant"
	"github.com/lixenwraith/drumkit/engine"
	"github.com/lixenwraith/drumkit/kit"
	"github.com/lixenwraith/drumkit/render"
	"github.com/lixenwraith/drumkit/scene"
	"github.com/lixenwraith/drumkit/strike"
	"github.com/lixenwraith/drumkit/terminal"
)

var (
	configFlag = pflag.StringP("config", "c", "drumkit.toml", "Path to the TOML settings file")
	debugFlag  = pflag.Bool("debug", false, "Write debug logs to logs/drumkit.log")
	soundsFlag = pflag.StringP("sounds", "s", "", "Directory holding the sample files")
	muteFlag   = pflag.BoolP("mute", "m", false, "Start with sound off")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the kit crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mDRUMKIT CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	pflag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag, pflag.CommandLine.Changed("config"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *soundsFlag != "" {
		cfg.SoundsDir = *soundsFlag
	}
	if *muteFlag {
		cfg.Muted = true
	}

	if err := run(cfg, slog.Default()); err != nil {
		slog.Error("drumkit stopped", "error", err)
		fmt.Fprintf(os.Stderr, "drumkit: %v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

// run wires the kit and serves the event loop until quit
// The terminal is restored before run returns
func run(cfg config.Config, log *slog.Logger) error {
	legendRows := 0
	if cfg.Legend {
		legendRows = constant.LegendRows
	}

	platform, err := terminal.Open(legendRows)
	if err != nil {
		return fmt.Errorf("%w: %v", engine.ErrNoRenderer, err)
	}
	defer platform.Fini()

	// Scene and kit
	sc := scene.New()
	reg, err := kit.Build(scene.DefaultFactory{}, sc, kit.DefaultLayout(), log)
	if err != nil {
		return fmt.Errorf("build kit: %w", err)
	}

	cam := scene.NewPerspectiveCamera(constant.CameraFOV, 1, constant.CameraNear, constant.CameraFar)
	cam.SetPosition(constant.CameraPosition)
	cam.LookAt(constant.CameraTarget)

	renderer := render.NewTerminalRenderer(platform.Screen())

	// Audio is best-effort; without a device the kit still animates
	sounds := audio.NewSoundManager(os.DirFS(cfg.SoundsDir), cfg.Playback(), log)
	if err := sounds.Initialize(); err != nil {
		log.Warn("audio unavailable, continuing without sound", "error", err)
	}
	defer sounds.Cleanup()

	trigger := audio.NewTrigger(sounds, "")
	for _, p := range reg.Pads() {
		if name, ok := trigger.Path(p.Key); ok {
			// Decode failures are logged once and the pad stays silent
			_ = sounds.Preload(name)
		}
	}

	keys, err := cfg.KeyTable()
	if err != nil {
		return err
	}

	sched := engine.NewLoopScheduler(constant.TaskChannelSize)
	defer sched.Stop()

	ectx := engine.Context{
		Scene:         sc,
		Camera:        cam,
		Renderer:      renderer,
		Registry:      reg,
		Container:     platform.Viewport(),
		Window:        platform.Window(),
		Scheduler:     sched,
		Sound:         trigger,
		Striker:       strike.NewAnimator(sched, engine.NewTimeProvider(), log),
		Muter:         sounds,
		Keys:          keys,
		FrameInterval: cfg.FrameInterval(),
		Log:           log,
	}
	if cfg.Legend {
		items := make([]render.LegendItem, 0, reg.Len())
		for _, p := range reg.Pads() {
			items = append(items, render.LegendItem{Key: p.Key, Label: p.Name})
		}
		legend := render.NewLegend(items)
		renderer.SetLegend(legend)
		ectx.Legend = legend
	}

	router, err := engine.NewRouter(ectx)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = router.Run(ctx, platform.Events(ctx), sched.Tasks())
	log.Info("drumkit exiting", "strikes", router.Strikes())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
