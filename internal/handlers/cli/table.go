package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/greed/internal/ledger"
	"github.com/KirkDiggler/greed/internal/scoring"
	"github.com/KirkDiggler/greed/internal/services/game"
	"github.com/KirkDiggler/greed/internal/services/messaging"
	"github.com/charmbracelet/log"
)

// errQuit is returned by prompts when the input is exhausted
var errQuit = errors.New("quit")

// line is one line of console input, or the error that ended the input
type line struct {
	text string
	err  error
}

// Config holds the configuration for the table
type Config struct {
	// GameService runs the game
	GameService game.Service

	// In and Out are the console
	In  io.Reader
	Out io.Writer

	// PlayerNames skips the roster prompts when it has at least two names
	PlayerNames []string

	// AutoRoll rolls every turn at random without asking
	AutoRoll bool

	// Messaging adds commentary after turns and rounds (optional)
	Messaging messaging.Service

	// Logger receives table events (optional)
	Logger *log.Logger
}

// Table plays Greed at a terminal. It collects names and dice, re-prompting
// on bad input, and renders the standings after every round.
type Table struct {
	gameService game.Service
	messaging   messaging.Service
	scanner     *bufio.Scanner
	lines       <-chan line
	out         io.Writer
	styles      styles
	rules       scoring.Rules
	playerNames []string
	autoRoll    bool
	logger      *log.Logger
}

// New creates a new table
func New(cfg *Config) (*Table, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.In == nil || cfg.Out == nil {
		return nil, errors.New("input and output cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Table{
		gameService: cfg.GameService,
		messaging:   cfg.Messaging,
		scanner:     bufio.NewScanner(cfg.In),
		out:         cfg.Out,
		styles:      newStyles(cfg.Out),
		rules:       scoring.Standard(),
		playerNames: cfg.PlayerNames,
		autoRoll:    cfg.AutoRoll,
		logger:      logger,
	}, nil
}

// Run plays one game until the players quit, the input runs out or ctx is
// cancelled. A cancelled context interrupts a pending prompt and Run returns
// ctx.Err() without ending the game. Run must not be called twice.
func (t *Table) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	t.lines = t.readLines(done)

	t.renderIntro()

	names := t.playerNames
	if len(names) < ledger.MinPlayers {
		var err error
		names, err = t.promptPlayers(ctx)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
	}

	created, err := t.gameService.CreateGame(ctx, &game.CreateGameInput{
		PlayerNames: names,
	})
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	gameID := created.Game.ID
	t.logger.Debug("Table opened", "game_id", gameID, "players", created.PlayerNames)

	for {
		err := t.playRound(ctx, gameID, created.PlayerNames)
		if errors.Is(err, errQuit) {
			break
		}
		if err != nil {
			return err
		}

		round, err := t.gameService.EndRound(ctx, &game.EndRoundInput{GameID: gameID})
		if err != nil {
			return fmt.Errorf("failed to end round: %w", err)
		}
		fmt.Fprintf(t.out, "Round %d has finished!\n", round.CompletedRound)
		t.renderLeaderboard(round.Leaderboard)
		t.commentOnRound(ctx, round.CompletedRound, round.Leaderboard)

		more, err := t.promptContinue(ctx)
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}

	ended, err := t.gameService.EndGame(ctx, &game.EndGameInput{GameID: gameID})
	if err != nil {
		return fmt.Errorf("failed to end game: %w", err)
	}
	t.renderWinners(ended.Winners)
	t.commentOnGameOver(ctx, ended.Winners, ended.FinalLeaderboard)

	return nil
}

// playRound gives every player one turn
func (t *Table) playRound(ctx context.Context, gameID string, names []string) error {
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintf(t.out, "It is %s's turn!\n", name)

		random := t.autoRoll
		if !random {
			choice, err := t.promptChoice(ctx)
			if err != nil {
				return err
			}
			random = choice == "2"
		}

		if random {
			rolled, err := t.gameService.RollTurn(ctx, &game.RollTurnInput{
				GameID:     gameID,
				PlayerName: name,
			})
			if err != nil {
				return fmt.Errorf("failed to roll for %s: %w", name, err)
			}
			t.renderTurn(rolled.Turn)
			t.commentOnTurn(ctx, rolled.Turn)
			continue
		}

		faces, err := t.promptDice(ctx)
		if err != nil {
			return err
		}

		recorded, err := t.gameService.RecordTurn(ctx, &game.RecordTurnInput{
			GameID:     gameID,
			PlayerName: name,
			Dice:       faces,
		})
		if err != nil {
			return fmt.Errorf("failed to record turn for %s: %w", name, err)
		}
		t.renderTurn(recorded.Turn)
		t.commentOnTurn(ctx, recorded.Turn)
	}

	return nil
}

// promptPlayers asks for the number of players and a unique name for each
func (t *Table) promptPlayers(ctx context.Context) ([]string, error) {
	count, err := t.promptInt(ctx, "How many players will be playing? (input an integer): ")
	if err != nil {
		return nil, err
	}
	for count < ledger.MinPlayers {
		t.renderError(fmt.Sprintf("Please answer with %d or more players.", ledger.MinPlayers))
		count, err = t.promptInt(ctx, "How many players will be playing? (input an integer): ")
		if err != nil {
			return nil, err
		}
	}

	names := make([]string, 0, count)
	seen := make(map[string]bool, count)
	for i := 0; i < count; i++ {
		prompt := fmt.Sprintf("What is the name of player %d? ", i+1)
		name, err := t.prompt(ctx, prompt)
		if err != nil {
			return nil, err
		}
		for name == "" || seen[name] {
			t.renderError("Please answer with a name that doesn't already exist.")
			name, err = t.prompt(ctx, prompt)
			if err != nil {
				return nil, err
			}
		}
		seen[name] = true
		names = append(names, name)
	}

	return names, nil
}

// promptChoice asks whether to enter dice by hand (1) or roll them (2)
func (t *Table) promptChoice(ctx context.Context) (string, error) {
	fmt.Fprintln(t.out, "Would you like to input your own dice values or generate random values?")
	choice, err := t.prompt(ctx, "Press (1) to manually input values or (2) to generate random values: ")
	if err != nil {
		return "", err
	}
	for choice != "1" && choice != "2" {
		t.renderError("Please answer with a (1) or (2)")
		choice, err = t.prompt(ctx, "")
		if err != nil {
			return "", err
		}
	}
	return choice, nil
}

// promptDice reads one face per die, re-prompting for faces that aren't on the die
func (t *Table) promptDice(ctx context.Context) ([]int, error) {
	faces := make([]int, 0, t.rules.DiceCount)
	for i := 0; i < t.rules.DiceCount; i++ {
		prompt := fmt.Sprintf("Dice %d value: ", i+1)
		face, err := t.promptInt(ctx, prompt)
		if err != nil {
			return nil, err
		}
		for face < 1 || face > scoring.Sides {
			t.renderError(fmt.Sprintf("A roll of %d is not possible! Please input a valid value.", face))
			face, err = t.promptInt(ctx, prompt)
			if err != nil {
				return nil, err
			}
		}
		faces = append(faces, face)
	}

	if err := t.rules.Validate(faces); err != nil {
		return nil, err
	}

	return faces, nil
}

// promptContinue returns false when the players enter q or the input runs out
func (t *Table) promptContinue(ctx context.Context) (bool, error) {
	fmt.Fprintln(t.out, "Would you like to play another round?")
	fmt.Fprintln(t.out, "Enter (q) to quit game")
	answer, err := t.prompt(ctx, "Enter any other input to continue ")
	fmt.Fprintln(t.out)
	if errors.Is(err, errQuit) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) != "q", nil
}

// promptInt re-prompts until the answer is an integer
func (t *Table) promptInt(ctx context.Context, prompt string) (int, error) {
	for {
		answer, err := t.prompt(ctx, prompt)
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(answer)
		if err == nil {
			return value, nil
		}
		t.renderError(fmt.Sprintf("%q is not a number.", answer))
	}
}

// prompt writes the prompt and waits for one trimmed line or ctx
func (t *Table) prompt(ctx context.Context, prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(t.out, prompt)
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-t.lines:
		if !ok {
			return "", errQuit
		}
		if l.err != nil {
			return "", l.err
		}
		return strings.TrimSpace(l.text), nil
	}
}

// readLines scans the input on its own goroutine so a blocked read never
// holds up cancellation. The goroutine stops once done is closed and a
// pending read returns.
func (t *Table) readLines(done <-chan struct{}) <-chan line {
	lines := make(chan line)
	go func() {
		defer close(lines)
		for t.scanner.Scan() {
			select {
			case lines <- line{text: t.scanner.Text()}:
			case <-done:
				return
			}
		}
		if err := t.scanner.Err(); err != nil {
			select {
			case lines <- line{err: fmt.Errorf("failed to read input: %w", err)}:
			case <-done:
			}
		}
	}()
	return lines
}
