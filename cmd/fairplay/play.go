package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lox/fairplay/internal/config"
	"github.com/lox/fairplay/internal/game"
	"github.com/lox/fairplay/internal/moveset"
	"github.com/lox/fairplay/internal/tui"
)

// PlayCmd runs a single round against the computer.
type PlayCmd struct {
	Moves   []string `arg:"" optional:"" help:"Odd number (at least 3) of distinct move names"`
	TUI     bool     `help:"Use the interactive full-screen interface"`
	Timeout int      `help:"Seconds to wait for a move, 0 waits forever (overrides config)" default:"-1"`
}

func (c *PlayCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	logger := setupLogger(cli.Debug, cfg.UI.LogLevel)

	stdio := game.NewStdIO(os.Stdin, os.Stdout)

	names := c.Moves
	if len(names) == 0 {
		names = cfg.Game.Moves
	}
	if len(names) == 0 {
		if err := stdio.WriteLine("Enter moves separated by spaces:"); err != nil {
			return err
		}
		line, err := stdio.ReadLine()
		if err != nil {
			return fmt.Errorf("read moves: %w", err)
		}
		names = strings.Fields(line)
	}

	set, err := moveset.New(names)
	if err != nil {
		return err
	}

	if c.TUI {
		result, err := tui.Run(set, logger)
		if err != nil {
			return err
		}
		if result.State == game.Aborted {
			logger.Debug("round aborted by player")
		}
		return nil
	}

	timeout := cfg.Game.TimeoutSeconds
	if c.Timeout >= 0 {
		timeout = c.Timeout
	}
	policy := game.Reprompt
	if cfg.Game.InvalidInput == config.PolicyAbort {
		policy = game.Abort
	}

	controller := game.NewController(set, stdio, game.Options{
		Logger:       logger,
		Timeout:      time.Duration(timeout) * time.Second,
		InvalidInput: policy,
	})

	_, err = controller.Play()
	if err != nil {
		// A timed-out wait is a clean abort, not a failure
		if errors.Is(err, game.ErrTimeout) {
			logger.Warn("round aborted: no move within timeout", "timeout_seconds", timeout)
			return nil
		}
		return err
	}
	return nil
}
