// goGoStyleBot restyles inline /style "text" commands.
//
// With no --filter it starts an interactive console. --filter irc reads raw client IRC lines on stdin and writes them,
// restyled, to stdout, so it can sit between a client and a server. --filter text does the same for plain lines.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/spf13/pflag"

	"awesome-dragon.science/go/goGoStyleBot/internal/config"
	"awesome-dragon.science/go/goGoStyleBot/internal/console"
	"awesome-dragon.science/go/goGoStyleBot/internal/filter"
	"awesome-dragon.science/go/goGoStyleBot/internal/irc"
	"awesome-dragon.science/go/goGoStyleBot/pkg/format/styler"
	"awesome-dragon.science/go/goGoStyleBot/pkg/glyph"
	"awesome-dragon.science/go/goGoStyleBot/pkg/log"
)

var (
	configPath = pflag.StringP("config", "c", "./config.toml", "Sets the configuration file to use")
	filterMode = pflag.StringP("filter", "f", "", "run as a stdin to stdout filter. One of 'irc' or 'text'")
	replace    = pflag.StringP("mode", "m", "", "overrides the configured replace mode ('first' or 'splice')")
	verbose    = pflag.BoolP("verbose", "v", false, "log everything, including every substitution")
)

func main() {
	pflag.Parse()

	conf, err := config.GetConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %s\n", err)
		os.Exit(1)
	}

	if *replace != "" {
		if err := conf.SetReplaceMode(*replace); err != nil {
			fmt.Fprintf(os.Stderr, "invalid --mode: %s\n", err)
			os.Exit(1)
		}
	}

	level := conf.LogLevel()
	if *verbose {
		level = log.TRACE
	}

	switch *filterMode {
	case "":
		runConsole(conf, level)
	case "irc", "text":
		runFilter(conf, level, *filterMode)
	default:
		fmt.Fprintf(os.Stderr, "unknown filter %q\n", *filterMode)
		os.Exit(1)
	}
}

func newStyler(conf *config.Config, l *log.Logger) *styler.Styler {
	return styler.New(glyph.NewMapper(nil), conf.ReplaceMode(), l.Clone().SetPrefix("STYLER"), conf.DisabledStyles()...)
}

func runFilter(conf *config.Config, level int, mode string) {
	l := log.New(conf.LogFlags(), os.Stderr, "MAIN", level)
	s := newStyler(conf, l)

	var (
		fn  filter.LineFunc
		eol = "\n"
	)

	if mode == "irc" {
		fn = irc.NewFilter(s, l.Clone().SetPrefix("IRC")).FilterLine
		eol = "\r\n"
	} else {
		fn = filter.Text(s.Transform)
	}

	l.Infof("filtering %s lines from stdin (replace mode %s)", mode, s.Mode())

	if err := filter.Run(os.Stdin, os.Stdout, eol, fn, l.Clone().SetPrefix("FILTER")); err != nil {
		l.Critf("filter stopped: %s", err)
	}
}

func runConsole(conf *config.Config, level int) {
	rl, err := readline.New(conf.Console.Prompt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not start console: %s\n", err)
		os.Exit(1)
	}

	defer rl.Close()

	l := log.New(conf.LogFlags(), rl.Stderr(), "MAIN", level)

	if conf.OriginalPath != "" {
		l.Debugf("using config %q", conf.OriginalPath)
	}

	c := console.New(newStyler(conf, l), rl.Stdout(), l.Clone().SetPrefix("CONSOLE"))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		l.Infof("Caught signal: %s", sig)
		rl.Close()
	}()

	c.Printf(`Type a message, eg: hello /cursive "world". .help lists commands`)

	if err := c.Run(rl); err != nil {
		l.Warnf("console stopped: %s", err)
	}
}
