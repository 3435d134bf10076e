package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/KirkDiggler/greed/internal/common/clock"
	"github.com/KirkDiggler/greed/internal/common/uuid"
	"github.com/KirkDiggler/greed/internal/config"
	"github.com/KirkDiggler/greed/internal/dice"
	"github.com/KirkDiggler/greed/internal/handlers/cli"
	"github.com/KirkDiggler/greed/internal/repositories/game"
	"github.com/KirkDiggler/greed/internal/scoring"
	gameService "github.com/KirkDiggler/greed/internal/services/game"
	"github.com/KirkDiggler/greed/internal/services/messaging"
)

type CLI struct {
	Players  []string `short:"p" help:"Player names in turn order (prompted for when fewer than two)"`
	Seed     int64    `help:"Seed for random dice rolls (0 seeds from the clock)"`
	Random   bool     `help:"Always roll random dice instead of asking"`
	Config   string   `help:"Path to an HCL config file" default:"greed.hcl" type:"path"`
	EnvFile  string   `help:"Path to a .env file" default:".env" type:"path"`
	LogLevel string   `help:"Log level (debug, info, warn, error)"`
}

func main() {
	var c CLI
	kong.Parse(&c,
		kong.Name("greed"),
		kong.Description("Play the dice game Greed at the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	cfg, err := c.load()
	if err != nil {
		log.Fatal("Invalid configuration", "error", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "greed",
		Level:           cfg.Level(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The first signal cancels the game; a second one kills the process
	go func() {
		<-ctx.Done()
		stop()
	}()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("Game failed", "error", err)
	}
}

// load layers the config sources: flags over environment over file over defaults
func (c *CLI) load() (*config.Config, error) {
	if err := config.LoadDotEnv(c.EnvFile); err != nil {
		return nil, err
	}

	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", c.Config, err)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if len(c.Players) > 0 {
		cfg.Players = c.Players
	}
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	if c.Random {
		cfg.AutoRoll = true
	}
	if c.LogLevel != "" {
		cfg.LogLevel = c.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	gameRepo, err := game.NewMemory(&game.Config{
		Capacity: 1,
	})
	if err != nil {
		return fmt.Errorf("failed to create game repository: %w", err)
	}

	gameSvc, err := gameService.New(&gameService.Config{
		GameRepo:      gameRepo,
		DiceRoller:    dice.New(&dice.Config{Seed: cfg.Seed}),
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Scorer:        scoring.Standard(),
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	// Commentary draws from its own roller so it never shifts a seeded game's dice
	messagingSvc, err := messaging.New(&messaging.Config{
		Roller: dice.New(&dice.Config{Seed: cfg.Seed}),
	})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	table, err := cli.New(&cli.Config{
		GameService: gameSvc,
		In:          os.Stdin,
		Out:         os.Stdout,
		PlayerNames: cfg.Players,
		AutoRoll:    cfg.AutoRoll,
		Messaging:   messagingSvc,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	logger.Debug("Starting table", "players", cfg.Players, "seed", cfg.Seed, "auto_roll", cfg.AutoRoll)

	err = table.Run(ctx)
	if err != nil && ctx.Err() != nil {
		logger.Info("Game interrupted")
		return nil
	}
	return err
}
