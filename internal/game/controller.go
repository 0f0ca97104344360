// Package game runs a single provably-fair round: commit to the computer's
// move, prompt the player, then reveal and resolve.
package game

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/fairplay/internal/commitment"
	"github.com/lox/fairplay/internal/moveset"
	"github.com/lox/fairplay/internal/table"
)

// State tracks the round through its lifecycle.
type State int

const (
	Idle State = iota
	Committed
	AwaitingPlayerMove
	Resolved
	Done
	Aborted
)

// String returns a short name for logging.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Committed:
		return "committed"
	case AwaitingPlayerMove:
		return "awaiting-player-move"
	case Resolved:
		return "resolved"
	case Done:
		return "done"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// InvalidInputPolicy decides what a bad selection does to the round.
type InvalidInputPolicy int

const (
	// Reprompt reports the error and asks again. The default.
	Reprompt InvalidInputPolicy = iota
	// Abort reports the error and ends the round without a reveal.
	Abort
)

// Player input tokens besides the 1-based move indices.
const (
	exitToken = "0"
	helpToken = "?"
)

// ErrTimeout is returned when the optional input timeout fires before the
// player makes a selection. The commitment is never revealed on timeout.
var ErrTimeout = errors.New("timed out waiting for player input")

// Options configures a Controller. The zero value gives an untimed round
// with the reprompt policy and crypto/rand move selection.
type Options struct {
	Logger *log.Logger
	// Clock drives the input timeout. Defaults to the real clock; tests
	// inject a quartz mock.
	Clock quartz.Clock
	// Timeout bounds the wait for each input line. 0 blocks forever.
	Timeout time.Duration
	// InvalidInput selects the bad-selection policy.
	InvalidInput InvalidInputPolicy
	// Source overrides the computer's move selection for deterministic
	// tests.
	Source moveset.IntSource
}

// Result is everything a finished round reports. On an abort only State is
// meaningful: nothing was revealed.
type Result struct {
	State        State
	PlayerMove   string
	ComputerMove string
	Outcome      moveset.Outcome
	Commitment   commitment.Commitment
}

// Controller orchestrates one round over an injected LineIO. Each process
// invocation plays at most one round; controllers are not reusable.
type Controller struct {
	set     *moveset.MoveSet
	io      LineIO
	logger  *log.Logger
	clock   quartz.Clock
	timeout time.Duration
	policy  InvalidInputPolicy
	source  moveset.IntSource
	state   State
}

// NewController creates a round controller for the given move set.
func NewController(set *moveset.MoveSet, lineIO LineIO, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := opts.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Controller{
		set:     set,
		io:      lineIO,
		logger:  logger.WithPrefix("round"),
		clock:   clock,
		timeout: opts.Timeout,
		policy:  opts.InvalidInput,
		source:  opts.Source,
		state:   Idle,
	}
}

// State returns the controller's current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Play runs the round to completion: pick and commit the computer's move,
// prompt until a valid selection (or exit/abort), then reveal the key and
// resolve. The key and the computer's move stay hidden until the player
// has chosen.
func (c *Controller) Play() (Result, error) {
	if c.state != Idle {
		return Result{}, fmt.Errorf("round already played (state %s)", c.state)
	}

	computerMove, err := c.pickComputerMove()
	if err != nil {
		c.state = Aborted
		return Result{State: Aborted}, err
	}
	com, err := commitment.Commit(computerMove)
	if err != nil {
		c.state = Aborted
		return Result{State: Aborted}, err
	}
	c.state = Committed
	c.logger.Debug("committed to move", "tag", com.Tag.String())

	if err := c.writeMenu(com.Tag); err != nil {
		c.state = Aborted
		return Result{State: Aborted}, err
	}

	c.state = AwaitingPlayerMove
	playerMove, aborted, err := c.awaitPlayerMove()
	if err != nil || aborted {
		c.state = Aborted
		return Result{State: Aborted}, err
	}

	c.state = Resolved
	outcome := c.set.DetermineWinner(playerMove, computerMove)
	c.logger.Debug("resolved round",
		"player", playerMove, "computer", computerMove, "outcome", outcome.String())

	if err := c.writeReveal(playerMove, computerMove, com, outcome); err != nil {
		return Result{State: Resolved}, err
	}

	c.state = Done
	return Result{
		State:        Done,
		PlayerMove:   playerMove,
		ComputerMove: computerMove,
		Outcome:      outcome,
		Commitment:   com,
	}, nil
}

func (c *Controller) pickComputerMove() (string, error) {
	if c.source != nil {
		return c.set.PickWith(c.source)
	}
	return c.set.Pick()
}

// writeMenu presents the available moves, the exit and help options, and
// the commitment tag. Only the tag is exposed at this point.
func (c *Controller) writeMenu(tag commitment.Tag) error {
	lines := []string{"Available moves:"}
	for i, move := range c.set.Moves() {
		lines = append(lines, fmt.Sprintf("%d - %s", i+1, move))
	}
	lines = append(lines,
		"0 - exit",
		"? - help",
		"HMAC: "+tag.String(),
	)
	for _, line := range lines {
		if err := c.io.WriteLine(line); err != nil {
			return err
		}
	}
	return nil
}

// awaitPlayerMove prompts until the player picks a valid move, exits, or
// the policy aborts the round. Help redisplays the results table and never
// consumes the turn.
func (c *Controller) awaitPlayerMove() (move string, aborted bool, err error) {
	for {
		if err := c.io.WriteLine("Enter your move:"); err != nil {
			return "", false, err
		}

		line, err := c.readLine()
		if err != nil {
			if errors.Is(err, ErrTimeout) {
				c.logger.Warn("input timed out", "timeout", c.timeout)
				if werr := c.io.WriteLine("Timed out waiting for a move"); werr != nil {
					return "", false, werr
				}
			}
			return "", false, err
		}

		switch line = strings.TrimSpace(line); line {
		case exitToken:
			c.logger.Debug("player exited before choosing")
			return "", true, nil
		case helpToken:
			help := strings.TrimRight(table.Build(c.set).Format(), "\n")
			if err := c.io.WriteLine(help); err != nil {
				return "", false, err
			}
			continue
		}

		n, convErr := strconv.Atoi(line)
		if convErr != nil || n < 1 || n > c.set.Len() {
			msg := fmt.Sprintf("Invalid selection %q: enter a number between 1 and %d, 0 to exit or ? for help",
				line, c.set.Len())
			if err := c.io.WriteLine(msg); err != nil {
				return "", false, err
			}
			if c.policy == Abort {
				c.logger.Debug("aborting on invalid selection", "input", line)
				return "", true, nil
			}
			continue
		}

		return c.set.Move(n - 1), false, nil
	}
}

// writeReveal reports the round: player move, then the key, computer move,
// a recomputed tag over the player's move, and the outcome literal.
func (c *Controller) writeReveal(playerMove, computerMove string, com commitment.Commitment, outcome moveset.Outcome) error {
	lines := []string{
		"Your move: " + playerMove,
		"HMAC key: " + com.Key.String(),
		"Computer move: " + computerMove,
		"HMAC: " + commitment.ComputeTag(com.Key, playerMove).String(),
		outcome.String(),
	}
	for _, line := range lines {
		if err := c.io.WriteLine(line); err != nil {
			return err
		}
	}
	return nil
}

// readLine reads one input line, bounded by the configured timeout. With
// no timeout it blocks indefinitely, which is acceptable for interactive
// play.
func (c *Controller) readLine() (string, error) {
	if c.timeout <= 0 {
		return c.io.ReadLine()
	}

	type read struct {
		line string
		err  error
	}
	lines := make(chan read, 1)
	go func() {
		line, err := c.io.ReadLine()
		lines <- read{line: line, err: err}
	}()

	expired := make(chan struct{})
	timer := c.clock.AfterFunc(c.timeout, func() {
		close(expired)
	})
	defer timer.Stop()

	select {
	case r := <-lines:
		return r.line, r.err
	case <-expired:
		return "", ErrTimeout
	}
}
