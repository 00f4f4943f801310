package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mgnsk/revolver"
)

// Session executes commands against a revolver.
type Session struct {
	// Strict makes Run stop at the first failing command.
	Strict bool

	ring   *revolver.Revolver[string]
	logger *slog.Logger
	out    io.Writer
}

// NewSession creates a session writing command results to out.
// The revolver is seeded with values.
func NewSession(out io.Writer, logger *slog.Logger, values ...string) *Session {
	if logger == nil {
		logger = slog.Default()
	}

	return &Session{
		ring:   revolver.New(values...),
		logger: logger,
		out:    out,
	}
}

// Revolver returns the revolver the session operates on.
func (s *Session) Revolver() *revolver.Revolver[string] {
	return s.ring
}

// Exec executes a single command and returns its textual result.
func (s *Session) Exec(cmd Command) (string, error) {
	r := s.ring

	switch cmd.Op {
	case "":
		return "", nil

	case OpInsert:
		for _, v := range cmd.Args {
			r.Insert(v)
		}
		return r.String(), nil

	case OpRemove:
		if v, ok := r.Remove(); ok {
			return v, nil
		}
		return "", nil

	case OpClear:
		r.Clear()
		return r.String(), nil

	case OpCurrent:
		if v, ok := r.Current(); ok {
			return v, nil
		}
		return "", nil

	case OpSet:
		if err := r.SetCurrent(cmd.Args[0]); err != nil {
			return "", fmt.Errorf("%s: %w", cmd.Op, err)
		}
		return r.String(), nil

	case OpNext, OpPrev:
		n := 1
		if len(cmd.Args) > 0 {
			v, err := strconv.Atoi(cmd.Args[0])
			if err != nil {
				return "", fmt.Errorf("%s: %w: %w", cmd.Op, ErrArgs, err)
			}
			n = v
		}
		if cmd.Op == OpPrev {
			n = -n
		}
		r.Move(n)
		return s.current(), nil

	case OpFirst:
		r.First()
		return s.current(), nil

	case OpLast:
		r.Last()
		return s.current(), nil

	case OpIsFirst:
		return strconv.FormatBool(r.IsFirst()), nil

	case OpIsLast:
		return strconv.FormatBool(r.IsLast()), nil

	case OpEmpty:
		return strconv.FormatBool(r.IsEmpty()), nil

	case OpLen:
		return strconv.Itoa(r.Len()), nil

	case OpShow:
		return r.String(), nil

	case OpUpper:
		r.Map(strings.ToUpper)
		return r.String(), nil

	case OpLower:
		r.Map(strings.ToLower)
		return r.String(), nil

	case OpReverse:
		r.Map(reverse)
		return r.String(), nil

	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Op)
	}
}

// ExecLine parses and executes a command line.
func (s *Session) ExecLine(line string) (string, error) {
	cmd, err := Parse(line)
	if err != nil {
		return "", err
	}

	return s.Exec(cmd)
}

// Run executes commands read from in, one per line, and writes each result to the
// session output. Failing commands are logged and skipped unless the session is strict.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)

	for lineno := 1; scanner.Scan(); lineno++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.runLine(lineno, scanner.Text()); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading commands: %w", err)
	}

	return nil
}

// RunScript seeds the session with the script values and executes its commands.
func (s *Session) RunScript(ctx context.Context, script *Script) error {
	if script.Strict {
		s.Strict = true
	}

	for _, v := range script.Values {
		s.ring.Insert(v)
	}

	for i, line := range script.Commands {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.runLine(i+1, line); err != nil {
			return err
		}
	}

	return nil
}

func (s *Session) runLine(lineno int, line string) error {
	cmd, err := Parse(line)
	if err == nil && cmd.IsZero() {
		return nil
	}

	var result string
	if err == nil {
		result, err = s.Exec(cmd)
	}

	if err != nil {
		if s.Strict {
			return fmt.Errorf("line %d: %w", lineno, err)
		}

		s.logger.Warn("command failed", "line", lineno, "error", err)

		return nil
	}

	s.logger.Debug("command executed", "line", lineno, "command", cmd.String(), "len", s.ring.Len())

	if _, err := fmt.Fprintln(s.out, result); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}

	return nil
}

func (s *Session) current() string {
	v, _ := s.ring.Current()
	return v
}

func reverse(v string) string {
	runes := []rune(v)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
