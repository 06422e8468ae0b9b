package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vault-crawler/audio"
	"github.com/lixenwraith/vault-crawler/config"
	"github.com/lixenwraith/vault-crawler/constant"
	"github.com/lixenwraith/vault-crawler/input"
	"github.com/lixenwraith/vault-crawler/render"
	"github.com/lixenwraith/vault-crawler/scene"
)

func main() {
	cfgPath := flag.String("config", "vault-crawler.yaml", "path to config file")
	logPath := flag.String("log", "", "log file path, stderr when empty")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logrus.WithError(err).Fatal("loading config")
	}
	setupLogging(cfg, *logPath)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logrus.WithField("seed", seed).Info("starting")

	var sounds audio.Sink = audio.NopSink{}
	var engine *audio.Engine
	if cfg.Volume > 0 {
		engine, err = audio.NewEngine(cfg.Volume)
		if err != nil {
			// The game runs fine without sound.
			logrus.WithError(err).Warn("audio unavailable")
		} else {
			sounds = engine
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logrus.WithError(err).Fatal("creating screen")
	}
	if err := screen.Init(); err != nil {
		logrus.WithError(err).Fatal("initializing screen")
	}
	defer screen.Fini()
	screen.HideCursor()

	if err := run(cfg, screen, rng, sounds, engine); err != nil {
		screen.Fini()
		logrus.WithError(err).Fatal("game loop")
	}
}

func setupLogging(cfg config.Config, logPath string) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			logrus.WithError(err).Warn("cannot open log file, using stderr")
			return
		}
		logrus.SetOutput(f)
	}
}

func run(cfg config.Config, screen tcell.Screen, rng *rand.Rand, sounds audio.Sink, engine *audio.Engine) error {
	director := scene.NewDirector(cfg.ScreenWidth, cfg.ScreenHeight, rng, sounds)
	renderer := render.NewRenderer(screen, cfg.ScreenWidth, cfg.ScreenHeight)
	machine := input.NewMachine()
	volume := cfg.Volume

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(time.Second / constant.DesiredFPS)
	defer ticker.Stop()
	defer close(quit)

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				renderer.Resize()
				screen.Sync()
			default:
				machine.HandleEvent(ev)
			}
		case <-ticker.C:
			in := machine.Drain()
			if in.VolumeDelta != 0 && engine != nil {
				volume = clampVolume(volume + float64(in.VolumeDelta)*0.1)
				engine.SetVolume(volume)
			}
			if err := director.Update(in); err != nil {
				return err
			}
			if director.Quit {
				return nil
			}
			renderer.RenderFrame(director)
		}
	}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
