/*
Package shell implements a line oriented command interpreter for a string revolver.
*/
package shell

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownCommand indicates an unsupported command.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrArgs indicates a command was given invalid arguments.
	ErrArgs = errors.New("invalid arguments")
)

// Command operations.
const (
	OpInsert  = "insert"
	OpRemove  = "remove"
	OpClear   = "clear"
	OpCurrent = "current"
	OpSet     = "set"
	OpNext    = "next"
	OpPrev    = "prev"
	OpFirst   = "first"
	OpLast    = "last"
	OpIsFirst = "isfirst"
	OpIsLast  = "islast"
	OpEmpty   = "empty"
	OpLen     = "len"
	OpShow    = "show"
	OpUpper   = "upper"
	OpLower   = "lower"
	OpReverse = "reverse"
)

// arity is the allowed argument count for each op. max < 0 means unbounded.
var arity = map[string]struct{ min, max int }{
	OpInsert:  {1, -1},
	OpRemove:  {0, 0},
	OpClear:   {0, 0},
	OpCurrent: {0, 0},
	OpSet:     {1, 1},
	OpNext:    {0, 1},
	OpPrev:    {0, 1},
	OpFirst:   {0, 0},
	OpLast:    {0, 0},
	OpIsFirst: {0, 0},
	OpIsLast:  {0, 0},
	OpEmpty:   {0, 0},
	OpLen:     {0, 0},
	OpShow:    {0, 0},
	OpUpper:   {0, 0},
	OpLower:   {0, 0},
	OpReverse: {0, 0},
}

// Command is a parsed command line.
type Command struct {
	Op   string
	Args []string
}

// IsZero reports whether c is a blank or comment line.
func (c Command) IsZero() bool {
	return c.Op == ""
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Op}, c.Args...), " ")
}

// Parse parses a command line. Blank lines and lines starting with '#'
// parse to the zero Command.
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Command{}, nil
	}

	fields := strings.Fields(line)
	cmd := Command{
		Op:   strings.ToLower(fields[0]),
		Args: fields[1:],
	}

	a, ok := arity[cmd.Op]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}

	if n := len(cmd.Args); n < a.min || (a.max >= 0 && n > a.max) {
		return Command{}, fmt.Errorf("%s: %w: got %d", cmd.Op, ErrArgs, n)
	}

	return cmd, nil
}
