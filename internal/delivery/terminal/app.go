// Package terminal runs the quiz in a terminal, reading single key presses in raw mode.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/aliskhannn/netquiz/internal/domain/entities"
	"github.com/aliskhannn/netquiz/internal/service"
)

const clearScreen = "\033[2J\033[H"

// App is a single-session terminal front-end.
type App struct {
	quiz   *service.QuizService
	in     io.Reader
	out    io.Writer
	logger *zap.Logger

	sess *entities.Session
}

func NewApp(quiz *service.QuizService, in io.Reader, out io.Writer, logger *zap.Logger) *App {
	return &App{
		quiz:   quiz,
		in:     in,
		out:    out,
		logger: logger,
	}
}

// Run mounts a session and processes input until quit, end of input or ctx cancellation.
func (a *App) Run(ctx context.Context) error {
	a.sess = a.quiz.Start()
	a.logger.Info("terminal session mounted", zap.Int("pool_size", a.quiz.PoolSize()))

	if f, ok := a.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return a.runRaw(ctx, int(f.Fd()))
	}
	return a.runLines(ctx)
}

// step applies key to the session. It reports whether the user asked to quit.
func (a *App) step(key string) (quit bool) {
	var action service.Action
	switch key {
	case "":
		return false
	case keyQuit:
		return true
	case keyRestart:
		if a.quiz.Restart(a.sess) {
			action = service.ActionRestart
		}
	default:
		action = a.quiz.HandleKey(a.sess, key)
	}

	if action != service.ActionNone {
		v := a.quiz.View(a.sess)
		a.logger.Debug("quiz session updated",
			zap.Stringer("action", action),
			zap.Int("cursor", v.Cursor),
			zap.Int("score", v.Score),
			zap.Int("answered", v.Answered),
		)
	}

	return false
}

func (a *App) runRaw(ctx context.Context, fd int) error {
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		a.logger.Warn("raw mode unavailable, falling back to line input", zap.Error(err))
		return a.runLines(ctx)
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	r := renderer{color: true}
	keys := make(chan string)
	errs := make(chan error, 1)

	go func() {
		buf := make([]byte, 64)
		for {
			n, err := a.in.Read(buf)
			if err != nil {
				errs <- err
				return
			}
			for _, key := range decodeKeys(buf[:n]) {
				select {
				case keys <- key:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	for {
		// Raw mode disables output post-processing, so lines need an explicit carriage return.
		a.draw(clearScreen + strings.Join(r.lines(a.quiz.View(a.sess)), "\r\n") + "\r\n")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errs:
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("read terminal input: %w", err)
		case key := <-keys:
			if a.step(key) {
				a.draw("\r\n")
				a.printSummary("\r\n")
				return nil
			}
		}
	}
}

func (a *App) runLines(ctx context.Context) error {
	r := renderer{}
	scanner := bufio.NewScanner(a.in)

	for {
		a.draw(strings.Join(r.lines(a.quiz.View(a.sess)), "\n") + "\n> ")

		if err := ctx.Err(); err != nil {
			return err
		}
		if !scanner.Scan() {
			a.draw("\n")
			a.printSummary("\n")
			return scanner.Err()
		}
		if a.step(decodeLine(scanner.Text())) {
			a.printSummary("\n")
			return nil
		}
	}
}

func (a *App) draw(s string) {
	if _, err := io.WriteString(a.out, s); err != nil {
		a.logger.Error("failed to write screen", zap.Error(err))
	}
}

func (a *App) printSummary(eol string) {
	v := a.quiz.View(a.sess)
	a.draw(fmt.Sprintf("You answered %d of %d correctly (%d%%).%s", v.Score, v.Answered, v.Accuracy, eol))
}
