package vocab

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const DefaultPrompt = "(autocomplete) "

type Config struct {
	// Written before every line is read. Defaults to [DefaultPrompt]; set HidePrompt to disable.
	Prompt       string
	HidePrompt   bool
	DisplayStyle DisplayStyle
	Logger       *slog.Logger
}

// Session is a line-oriented command interpreter over a [Store]: the read-eval-print loop of the interactive CLI.
type Session struct {
	store  *Store
	out    io.Writer
	config Config
	logger *slog.Logger
}

func NewSession(store *Store, out io.Writer, config Config) *Session {
	if config.Prompt == "" {
		config.Prompt = DefaultPrompt
	}
	if config.DisplayStyle == "" {
		config.DisplayStyle = DisplayIndent
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		store:  store,
		out:    out,
		config: config,
		logger: logger.With("component", "vocab-session"),
	}
}

// Reads commands from in until end of input, the "quit" command, or ctx is cancelled. Mistakes in individual commands are reported to the output and do not end the session.
//
// Lines are read on a separate goroutine, so cancellation does not wait for the next line. If ctx is cancelled while a read is blocked, that goroutine is left behind until the read returns.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !s.config.HidePrompt {
			fmt.Fprint(s.out, s.config.Prompt)
		}
		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("reading commands: %w", err)
				}
				return nil
			}
			line = l
		}
		err := s.Execute(ctx, line)
		if err == nil {
			continue
		}
		if errors.Is(err, ErrQuit) {
			return nil
		}
		s.report(err)
	}
}

func (s *Session) report(err error) {
	var usage *UsageError
	switch {
	case errors.Is(err, ErrUnknownCommand):
		fmt.Fprintln(s.out, "Invalid command")
	case errors.As(err, &usage):
		fmt.Fprintln(s.out, usage.Message)
	default:
		s.logger.Debug("command failed", "err", err)
		fmt.Fprintf(s.out, "error: %s\n", err)
	}
}

// Parses and executes a single command line, writing any output. Blank lines are ignored.
//
// Returns [ErrQuit] for the "quit" command, an error wrapping [ErrUnknownCommand] for unrecognized commands, and a [*UsageError] when arguments are missing.
func (s *Session) Execute(ctx context.Context, line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}
	name, args := tokens[0], tokens[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	commandsExecuted.WithLabelValues(name).Inc()
	s.logger.Debug("executing command", "command", name, "args", len(args))
	return cmd.run(ctx, s, args)
}
