package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe4x4/internal/apperror"
	"github.com/rocketscienceinc/tictactoe4x4/internal/entity"
	"github.com/rocketscienceinc/tictactoe4x4/internal/syncclient"
)

const help = `commands:
  <0-15> | move <0-15>        place a mark
  new                         start a new game
  mode single|multi           switch game mode
  difficulty easy|hard        switch opponent strength
  refresh                     reload the board
  quit                        exit`

var errQuit = errors.New("quit")

type repl struct {
	client *syncclient.SyncClient
	in     io.Reader

	mu  sync.Mutex
	out io.Writer
}

func newREPL(client *syncclient.SyncClient, in io.Reader, out io.Writer) *repl {
	return &repl{client: client, in: in, out: out}
}

// run reads commands until quit, EOF or ctx cancellation. Network failures are printed and
// the loop continues.
func (that *repl) run(ctx context.Context) error {
	if err := that.client.Refresh(ctx); err != nil {
		that.printf("could not load game: %v\n", err)
	}

	that.render(that.client.View())
	that.printf("%s\n", help)

	scanner := bufio.NewScanner(that.in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		err := that.exec(ctx, strings.Fields(scanner.Text()))
		switch {
		case errors.Is(err, errQuit):
			return nil
		case err != nil:
			that.printf("error: %v\n", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}

func (that *repl) exec(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "quit", "exit":
		return errQuit
	case "help":
		that.printf("%s\n", help)
		return nil
	case "new":
		if err := that.client.StartNewGame(ctx); err != nil {
			return err
		}
	case "refresh":
		if err := that.client.Refresh(ctx); err != nil {
			return err
		}
	case "mode":
		if err := that.setMode(args); err != nil {
			return err
		}
	case "difficulty":
		if err := that.setDifficulty(args); err != nil {
			return err
		}
	case "move":
		if len(args) != 2 {
			return errors.New("usage: move <0-15>")
		}

		return that.move(ctx, args[1])
	default:
		return that.move(ctx, args[0])
	}

	that.render(that.client.View())

	return nil
}

func (that *repl) move(ctx context.Context, arg string) error {
	position, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("unknown command %q", arg)
	}

	result, err := that.client.SubmitMove(ctx, position)
	if !result.Accepted && result.Reason != "" {
		that.printf("move %d rejected: %s\n", position, result.Reason)
	}

	that.render(that.client.View())

	return err
}

func (that *repl) setMode(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: mode single|multi")
	}

	mode, err := entity.ParseMode(args[1])
	if err != nil {
		return err
	}

	return that.describeLocked(that.client.SetMode(mode))
}

func (that *repl) setDifficulty(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: difficulty easy|hard")
	}

	difficulty, err := entity.ParseDifficulty(args[1])
	if err != nil {
		return err
	}

	return that.describeLocked(that.client.SetDifficulty(difficulty))
}

func (that *repl) describeLocked(err error) error {
	if errors.Is(err, apperror.ErrGameAlreadyOver) {
		return fmt.Errorf("%w: start a new game first", err)
	}

	return err
}

func (that *repl) render(view entity.ViewModel) {
	that.printf("\n%s\n%s\n", view.Board.String(), status(view, that.client.Mode(), that.client.Difficulty()))
}

func (that *repl) printf(format string, args ...any) {
	that.mu.Lock()
	defer that.mu.Unlock()

	fmt.Fprintf(that.out, format, args...)
}

func status(view entity.ViewModel, mode entity.Mode, difficulty entity.Difficulty) string {
	switch {
	case view.ID == "":
		return "no game loaded"
	case view.Winner != entity.Empty && view.WinningLine != nil:
		return fmt.Sprintf("%s wins on %v", view.Winner, *view.WinningLine)
	case view.Draw:
		return "draw"
	default:
		return fmt.Sprintf("%s to move (%s, %s)", view.Turn, mode, difficulty)
	}
}
