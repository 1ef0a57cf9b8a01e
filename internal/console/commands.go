package console

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/process"

	"awesome-dragon.science/go/goGoStyleBot/pkg/format/styler"
	"awesome-dragon.science/go/goGoStyleBot/pkg/util"
)

const previewText = "The quick brown fox 123"

func (c *Console) addDefaultCommands() {
	for _, cmd := range []command{
		{"help", "prints this help, or help for a given command", cmdHelp},
		{"styles", "lists the available styles with a preview of each", cmdStyles},
		{"preview", "preview <style> <text> applies a single style to the rest of the line, as written", cmdPreview},
		{"mode", "mode [first|splice] shows or sets how commands are replaced", cmdMode},
		{"stats", "shows how much work has been done", cmdStats},
		{"quit", "exits the console", func(c *Console, _ []string, _ string) { c.Stop() }},
	} {
		if err := c.AddCommand(cmd.name, cmd.help, cmd.callback); err != nil {
			panic(err)
		}
	}
}

func cmdHelp(c *Console, args []string, _ string) {
	if len(args) == 0 {
		for _, line := range util.JoinToMaxLength(c.commandNames(), ", ", 60) {
			c.Printf("Available commands are: %s", line)
		}

		c.Printf(`Anything else is restyled, eg: hello /cursive "world"`)

		return
	}

	name := strings.ToLower(strings.TrimPrefix(args[0], cmdPrefix))
	if cmd, ok := c.commands[name]; ok {
		c.Printf("%s: %s", name, cmd.help)
		return
	}

	c.Printf("unknown command %q", name)
}

func cmdStyles(c *Console, _ []string, _ string) {
	for _, s := range c.styler.Enabled() {
		c.Printf("%-8s %s", s, c.styler.Preview(s, previewText))
	}
}

func cmdPreview(c *Console, args []string, line string) {
	if len(args) < 2 {
		c.Printf("usage: preview <style> <text>")
		return
	}

	style, ok := c.styler.Lookup(args[0])
	if !ok {
		c.Printf("unknown style %q", args[0])
		return
	}

	c.Printf("%s", c.styler.Preview(style, util.WordEol(line, 2)))
}

func cmdMode(c *Console, args []string, _ string) {
	want := util.IdxOrEmpty(args, 0)
	if want == "" {
		c.Printf("replace mode is %s", c.styler.Mode())
		return
	}

	mode, err := styler.ParseReplaceMode(want)
	if err != nil {
		c.Printf("%s", err)
		return
	}

	c.styler.SetMode(mode)
	c.Printf("replace mode set to %s", mode)
}

func cmdStats(c *Console, _ []string, _ string) {
	st := c.styler.Stats()
	c.Printf(
		"%s messages, %s commands found, %s styled. %s in, %s out",
		humanize.Comma(int64(st.Messages)),
		humanize.Comma(int64(st.Matched)),
		humanize.Comma(int64(st.Replaced)),
		humanize.IBytes(st.BytesIn),
		humanize.IBytes(st.BytesOut),
	)
	c.Printf("started %s", humanize.Time(c.started))
	c.Printf("%s", processStatus())
}

// processStatus describes the CPU and memory use of this process
func processStatus() string {
	ps, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return fmt.Sprintf("could not get process info: %s", err)
	}

	out := strings.Builder{}
	out.WriteString("CPU usage: ")

	if cpu, err := ps.CPUPercent(); err != nil {
		out.WriteString("Error ")
	} else {
		out.WriteString(fmt.Sprintf("%.2f%% ", cpu))
	}

	out.WriteString("Memory usage: ")

	if m, err := ps.MemoryInfo(); err != nil {
		out.WriteString("Error")
	} else {
		out.WriteString(humanize.IBytes(m.RSS))
	}

	if m, err := ps.MemoryPercent(); err == nil {
		out.WriteString(fmt.Sprintf(" (%.2f%%)", m))
	}

	return out.String()
}
