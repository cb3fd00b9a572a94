// Package console runs the snake game as a line-oriented text session: it
// prints the board, reads one command per line and applies it.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/games/snake"
)

// commands maps the accepted input lines to directions. Matching is exact
// and case-sensitive.
var commands = map[string]snake.Direction{
	"up":    snake.DirUp,
	"down":  snake.DirDown,
	"left":  snake.DirLeft,
	"right": snake.DirRight,
}

// ParseCommand maps an input line to a direction.
func ParseCommand(line string) (snake.Direction, bool) {
	dir, ok := commands[line]
	return dir, ok
}

// Result describes how a console session ended.
type Result struct {
	SessionID string
	Status    snake.Status // StatePlaying when input ran out before the game ended
	Cause     snake.Cause
	Turns     int
}

// Finished reports whether the game reached a terminal state.
func (r Result) Finished() bool {
	return r.Status.Terminal()
}

// Game drives one board from a line reader.
type Game struct {
	board   *snake.Board
	cfg     config.Config
	in      *bufio.Reader
	out     *bufio.Writer
	logger  *log.Logger
	waitKey func() error
	session string
}

// Option customizes a Game.
type Option func(*Game)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithKeyWait sets the function called after the final message.
func WithKeyWait(fn func() error) Option {
	return func(g *Game) { g.waitKey = fn }
}

// WithSessionID overrides the generated session ID.
func WithSessionID(id string) Option {
	return func(g *Game) { g.session = id }
}

// New creates a console game over an existing board.
func New(board *snake.Board, in io.Reader, out io.Writer, cfg config.Config, opts ...Option) *Game {
	g := &Game{
		board:   board,
		cfg:     cfg,
		in:      bufio.NewReader(in),
		out:     bufio.NewWriter(out),
		logger:  log.New(io.Discard),
		waitKey: func() error { return nil },
		session: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SessionID returns the ID this game is recorded under.
func (g *Game) SessionID() string {
	return g.session
}

// Run plays until the game ends, the input is exhausted or ctx is done.
func (g *Game) Run(ctx context.Context) (Result, error) {
	g.logger.Info("game started", "session", g.session)

	fmt.Fprintln(g.out, g.cfg.Messages.Intro)
	for {
		if err := ctx.Err(); err != nil {
			return g.result(), err
		}

		Render(g.out, g.board.Snapshot().Grid, g.cfg.Symbols)
		fmt.Fprintln(g.out)
		if g.board.Status().Terminal() {
			break
		}

		fmt.Fprintln(g.out, g.cfg.Messages.Prompt)
		if err := g.out.Flush(); err != nil {
			return g.result(), fmt.Errorf("console: write board: %w", err)
		}

		line, err := g.readLine()
		if errors.Is(err, io.EOF) {
			g.logger.Info("input closed", "session", g.session, "turn", g.board.Turn())
			return g.result(), nil
		}
		if err != nil {
			return g.result(), fmt.Errorf("console: read command: %w", err)
		}

		dir, ok := ParseCommand(line)
		if !ok {
			g.logger.Debug("ignored command", "input", truncate(line, 32), "len", len(line))
			continue
		}

		outcome := g.board.ApplyMove(dir)
		g.logger.Debug("turn",
			"turn", g.board.Turn(),
			"dir", dir,
			"head", g.board.Head(),
			"grew", outcome.Grew,
			"status", outcome.Status,
		)
	}

	msg := g.cfg.Messages.Lose
	if g.board.Won() {
		msg = g.cfg.Messages.Win
	}
	fmt.Fprintln(g.out, msg)
	fmt.Fprintln(g.out, g.cfg.Messages.PressKey)
	if err := g.out.Flush(); err != nil {
		return g.result(), fmt.Errorf("console: write result: %w", err)
	}

	res := g.result()
	g.logger.Info("game over",
		"session", res.SessionID,
		"status", res.Status,
		"cause", res.Cause,
		"turns", res.Turns,
	)

	if err := g.waitKey(); err != nil {
		return res, fmt.Errorf("console: wait for key: %w", err)
	}
	return res, nil
}

// readLine returns the next input line without its line ending. Lines of any
// length are accepted. A final line without a newline is still returned.
func (g *Game) readLine() (string, error) {
	line, err := g.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func (g *Game) result() Result {
	return Result{
		SessionID: g.session,
		Status:    g.board.Status(),
		Cause:     g.board.Cause(),
		Turns:     g.board.Turn(),
	}
}

// Render writes the grid one row per line, cells separated by a space.
func Render(w io.Writer, grid snake.Grid, sym config.Symbols) {
	glyphs := map[snake.CellState]string{
		snake.Empty:         sym.Floor,
		snake.SnakeOccupied: sym.Snake,
		snake.Food:          sym.Food,
	}

	row := make([]string, snake.Size)
	for y := 0; y < snake.Size; y++ {
		for x := 0; x < snake.Size; x++ {
			row[x] = glyphs[grid[y][x]]
		}
		fmt.Fprintln(w, strings.Join(row, " "))
	}
}

// TerminalKeyWait returns a key wait that reads one raw keystroke from f.
// If f is not a terminal it returns immediately.
func TerminalKeyWait(f *os.File) func() error {
	return func() error {
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			return nil
		}

		state, err := term.MakeRaw(fd)
		if err != nil {
			return err
		}
		defer term.Restore(fd, state) //nolint:errcheck // Best-effort restore

		var buf [1]byte
		_, err = f.Read(buf[:])
		return err
	}
}
