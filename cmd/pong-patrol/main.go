package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pong-patrol/audio"
	"github.com/lixenwraith/pong-patrol/config"
	"github.com/lixenwraith/pong-patrol/engine"
	"github.com/lixenwraith/pong-patrol/game"
	"github.com/lixenwraith/pong-patrol/input"
	"github.com/lixenwraith/pong-patrol/physics"
	"github.com/lixenwraith/pong-patrol/render"
)

var (
	configFlag      = flag.String("config", "", "TOML config file (default "+config.DefaultPath+" if present)")
	debugFlag       = flag.Bool("debug", false, "Write a debug log to "+logDir+"/"+logFileName)
	fpsFlag         = flag.Int("fps", 0, "Frame rate override")
	printConfigFlag = flag.Bool("print-config", false, "Print the effective configuration as TOML and exit")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(config.Options{Path: *configFlag, Required: *configFlag != ""})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *fpsFlag > 0 {
		cfg.Game.FPS = *fpsFlag
	}
	if *printConfigFlag {
		if err := cfg.Write(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write configuration: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logFile := setupLogging(*debugFlag || cfg.Game.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		log.Printf("fatal: %v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	roster, err := cfg.Roster()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPONG-PATROL CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))

	// Non-fatal, game can run without sound
	sound := audio.NewSoundManager(cfg.SoundConfig())
	if err := sound.Initialize(); err != nil {
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
	} else {
		defer sound.Cleanup()
	}

	renderer := render.NewRenderer(screen)
	machine := input.NewMachine(screen.Size())

	physicsCfg := cfg.PhysicsWorld()
	orchestrator := game.NewOrchestrator(game.Deps{
		Audio:  sound,
		Cursor: renderer,
		Roster: roster,
		NewWorld: func() engine.PhysicsWorld {
			return physics.NewWorld(physicsCfg)
		},
	})

	return loop(screen, orchestrator, renderer, machine, cfg.FrameInterval())
}

// loop multiplexes terminal events and frame ticks on the main goroutine
func loop(screen tcell.Screen, o *game.Orchestrator, renderer *render.Renderer, machine *input.Machine, interval time.Duration) error {
	frameTicker := time.NewTicker(interval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, 256)
	go func() {
		// Panic recovery for input polling goroutine to ensure terminal cleanup
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			intent := machine.Process(ev)
			if intent == nil {
				continue
			}
			switch intent.Type {
			case input.IntentQuit:
				return nil
			case input.IntentStart:
				o.Start()
			case input.IntentResize:
				renderer.Resize()
				screen.Sync()
			}

		case now := <-frameTicker.C:
			delta := now.Sub(last).Seconds()
			last = now

			frame := engine.Frame{
				Delta:    delta,
				Pointer:  machine.Pointer(),
				Viewport: renderer.Viewport(),
			}
			if err := o.Tick(frame); err != nil {
				return err
			}
			renderer.Draw(o.Scene())
		}
	}
}
