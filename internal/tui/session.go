// Package tui is the interactive console: a line-driven loop over the
// dashboard, list, detail and calendar screens.
package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/khrees2412/talentdesk/internal/repository"
	"github.com/khrees2412/talentdesk/internal/router"
	"github.com/khrees2412/talentdesk/internal/ui"
	"github.com/khrees2412/talentdesk/internal/view"
)

// errQuit ends the session.
var errQuit = errors.New("quit")

// Session holds one interactive run.
type Session struct {
	in    *bufio.Reader
	out   io.Writer
	repos *repository.Set
	notes *view.Notifier
	log   *slog.Logger
	now   func() time.Time
}

// Option customises a Session.
type Option func(*Session)

// WithClock fixes the time used for the dashboard and calendar.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func New(in io.Reader, out io.Writer, repos *repository.Set, notes *view.Notifier, logger *slog.Logger, opts ...Option) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	if notes == nil {
		notes = view.NewNotifier()
	}
	s := &Session{
		in:    bufio.NewReader(in),
		out:   out,
		repos: repos,
		notes: notes,
		log:   logger,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run starts at path and follows navigation until the user quits or input ends.
func (s *Session) Run(ctx context.Context, path string) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		route, err := router.Resolve(path)
		if err != nil {
			s.notes.Error(fmt.Sprintf("%s: %s", err, path))
			path = router.PathDashboard
			continue
		}

		var next string
		switch route.Screen {
		case router.ScreenDashboard:
			next, err = s.dashboard(ctx)
		case router.ScreenUsers:
			next, err = s.users(ctx)
		case router.ScreenJobs:
			next, err = s.jobs(ctx)
		case router.ScreenInterview:
			next, err = s.interview(ctx)
		case router.ScreenUserDetail:
			next, err = s.userDetail(ctx, route.ID)
		case router.ScreenJobDetail:
			next, err = s.jobDetail(ctx, route.ID)
		}
		if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		path = next
	}
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Session) println(args ...any) {
	fmt.Fprintln(s.out, args...)
}

// header prints the screen title followed by any live notifications.
func (s *Session) header(title string) {
	s.println("\n" + strings.Repeat("=", 60))
	s.println(ui.Title(title))
	if notes := ui.Notifications(s.notes.Active()); notes != "" {
		s.println(notes)
	}
}

// prompt reads one trimmed line.
func (s *Session) prompt(label string) (string, error) {
	s.printf("%s", label)
	line, err := s.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptMultiline reads lines until a lone "." or EOF.
func (s *Session) promptMultiline(label string) (string, error) {
	s.printf("%s (finish with a line containing only '.')\n", label)
	var lines []string
	for {
		line, err := s.in.ReadString('\n')
		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed == "." {
			break
		}
		if trimmed != "" || err == nil {
			lines = append(lines, trimmed)
		}
		if err != nil {
			if errors.Is(err, io.EOF) && len(lines) > 0 {
				break
			}
			return "", err
		}
	}
	return strings.Join(lines, "\n"), nil
}

// command splits "d 3" into verb and argument.
func command(input string) (verb, arg string) {
	verb, arg, _ = strings.Cut(strings.TrimSpace(input), " ")
	return strings.ToLower(verb), strings.TrimSpace(arg)
}

// pick converts a 1-based row number into an index.
func pick(arg string, n int) (int, bool) {
	i, err := strconv.Atoi(arg)
	if err != nil || i < 1 || i > n {
		return 0, false
	}
	return i - 1, true
}

func (s *Session) confirm(question string) (bool, error) {
	answer, err := s.prompt(question + " [y/N] ")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes"), nil
}
