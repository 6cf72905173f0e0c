package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/cbodonnell/flappy/client/game"
	"github.com/cbodonnell/flappy/client/resources"
	"github.com/cbodonnell/flappy/client/scenes"
	"github.com/cbodonnell/flappy/client/sounds"
	"github.com/cbodonnell/flappy/pkg/config"
	"github.com/cbodonnell/flappy/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	logLevel := flag.String("log-level", "", "Log level (overrides the config file)")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *debug {
		cfg.Debug = true
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", logger.Level())

	audioContext := audio.NewContext(cfg.Audio.SampleRate)
	resourceManager := resources.NewManager(os.DirFS(cfg.Assets.BasePath), audioContext)

	sprites, err := game.LoadSprites(resourceManager, cfg.Assets)
	if err != nil {
		panic(fmt.Sprintf("Failed to load sprites: %v", err))
	}
	players, err := game.LoadSounds(resourceManager, cfg.Assets.Sounds)
	if err != nil {
		panic(fmt.Sprintf("Failed to load sounds: %v", err))
	}
	soundBank := sounds.NewBank(sounds.NewBankOptions{
		Players: players,
		Volume:  cfg.Audio.Volume,
		Muted:   cfg.Audio.Muted,
	})
	if err := soundBank.Validate(sounds.Flap, sounds.Hit, sounds.Fall, sounds.Point); err != nil {
		panic(fmt.Sprintf("Failed to validate sounds: %v", err))
	}

	playScene, err := scenes.NewPlayScene(scenes.NewPlaySceneOptions{
		Config:  cfg,
		Sprites: sprites,
		Sounds:  soundBank,
		Rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create play scene: %v", err))
	}

	g, err := game.NewGame(game.NewGameOptions{
		Debug:        cfg.Debug,
		Scene:        playScene,
		Muter:        soundBank,
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(cfg.Window.Width*cfg.Window.Scale, cfg.Window.Height*cfg.Window.Scale)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowClosingHandled(true)

	log.Info("Starting %s at %d TPS", cfg.Window.Title, cfg.TPS)
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
	log.Info("Game closed")
}
