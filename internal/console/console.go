// Package console implements the interactive prompt for goGoStyleBot. Plain lines are run through a Styler and
// printed; lines starting with a dot are console commands
package console

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/anmitsu/go-shlex"
	"github.com/chzyer/readline"

	"awesome-dragon.science/go/goGoStyleBot/pkg/format/styler"
	"awesome-dragon.science/go/goGoStyleBot/pkg/log"
)

const cmdPrefix = "."

// LineReader is the subset of *readline.Instance the console needs
type LineReader interface {
	Readline() (string, error)
}

// Callback is a console command implementation. args holds the shell split arguments after the command name, line
// holds the full, unsplit line
type Callback func(c *Console, args []string, line string)

type command struct {
	name     string
	help     string
	callback Callback
}

// Console reads lines, restyles them, and writes the result out
type Console struct {
	styler   *styler.Styler
	log      *log.Logger
	out      io.Writer
	commands map[string]command
	started  time.Time
	quit     bool
}

// New creates a Console that writes to out
func New(s *styler.Styler, out io.Writer, logger *log.Logger) *Console {
	c := &Console{
		styler:   s,
		log:      logger,
		out:      out,
		commands: make(map[string]command),
		started:  time.Now(),
	}

	c.addDefaultCommands()

	return c
}

// AddCommand adds a console command. Names are case insensitive and may not contain spaces
func (c *Console) AddCommand(name, help string, callback Callback) error {
	name = strings.ToLower(name)
	if name == "" || strings.ContainsAny(name, " \t") {
		return fmt.Errorf("invalid command name %q", name)
	}

	if _, exists := c.commands[name]; exists {
		return fmt.Errorf("command %q already exists", name)
	}

	c.commands[name] = command{name: name, help: help, callback: callback}

	return nil
}

func (c *Console) commandNames() []string {
	out := make([]string, 0, len(c.commands))
	for name := range c.commands {
		out = append(out, name)
	}

	sort.Strings(out)

	return out
}

// Printf writes a formatted line to the console's output
func (c *Console) Printf(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(c.out, format+"\n", args...); err != nil {
		c.log.Warnf("could not write to console: %s", err)
	}
}

// Stop makes Run return after the current line
func (c *Console) Stop() { c.quit = true }

// HandleLine processes a single line of input. It returns false once the console has been asked to stop
func (c *Console) HandleLine(line string) bool {
	if strings.TrimSpace(line) == "" {
		return !c.quit
	}

	if !strings.HasPrefix(line, cmdPrefix) {
		c.Printf("%s", c.styler.Transform(line))
		return !c.quit
	}

	split, err := shlex.Split(line[len(cmdPrefix):], true)
	if err != nil {
		c.log.Debugf("could not shell split %q (%s), splitting on whitespace", line, err)
		split = strings.Fields(line[len(cmdPrefix):])
	}

	if len(split) == 0 {
		return !c.quit
	}

	name := strings.ToLower(split[0])

	cmd, ok := c.commands[name]
	if !ok {
		c.Printf("unknown command %q, try %shelp", name, cmdPrefix)
		return !c.quit
	}

	c.log.Debugf("firing command %q (original line %q)", name, line)
	cmd.callback(c, split[1:], line)

	return !c.quit
}

// Run reads lines from r until it is closed, interrupted, or the quit command is used
func (c *Console) Run(r LineReader) error {
	for {
		line, err := r.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return nil
		} else if err != nil {
			return fmt.Errorf("could not read line: %w", err)
		}

		if !c.HandleLine(line) {
			return nil
		}
	}
}
