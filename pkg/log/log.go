// Package log implements a small levelled logger. Lines look like
//    [15:04:05.000] [INFO ] [PREFIX] message
package log

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Flags that change the layout of log lines
const (
	FTimestamp = 1 << iota
	FShowFile
)

// Log levels
const (
	TRACE = 10 * iota
	DEBUG
	INFO
	WARN
	ERROR
	CRIT
	PANIC
)

var levelNames = map[int]string{
	TRACE: "TRACE",
	DEBUG: "DEBUG",
	INFO:  "INFO ",
	WARN:  "WARN ",
	ERROR: "ERROR",
	CRIT:  "CRIT ",
	PANIC: "PANIC",
}

func levelToString(level int) string {
	if s, ok := levelNames[level]; ok {
		return s
	}

	return "?????"
}

// ParseLevel converts a level name such as "info" or "WARN" to its level constant
func ParseLevel(name string) (int, error) {
	want := strings.ToUpper(strings.TrimSpace(name))
	for level, n := range levelNames {
		if strings.TrimSpace(n) == want {
			return level, nil
		}
	}

	return 0, fmt.Errorf("unknown log level %q", name)
}

// Logger is a level based logging engine
type Logger struct {
	flags    int
	output   io.Writer
	prefix   string
	wMutex   *sync.Mutex
	minLevel int
}

// New creates a new logger with the set options
func New(flags int, output io.Writer, prefix string, minLevel int) *Logger {
	return &Logger{flags: flags, output: output, prefix: prefix, minLevel: minLevel, wMutex: new(sync.Mutex)}
}

// Flags returns the flags currently set on the Logger
func (l *Logger) Flags() int { return l.flags }

// SetFlags sets the flags on the Logger and returns it for chaining
func (l *Logger) SetFlags(flags int) *Logger {
	l.flags = flags
	return l
}

// Prefix returns the prefix added to every line
func (l *Logger) Prefix() string { return l.prefix }

// SetPrefix sets the prefix on the Logger and returns it for chaining
func (l *Logger) SetPrefix(prefix string) *Logger {
	l.prefix = prefix
	return l
}

// MinLevel returns the lowest level that will be written
func (l *Logger) MinLevel() int { return l.minLevel }

// SetMinLevel sets the lowest level that will be written and returns the Logger for chaining
func (l *Logger) SetMinLevel(level int) *Logger {
	l.minLevel = level
	return l
}

// Clone returns a copy of the Logger. The copy shares its output, and the lock guarding it, with the original
func (l *Logger) Clone() *Logger {
	out := *l
	return &out
}

func shortenFilename(filename string) string {
	if idx := strings.LastIndexByte(filename, '/'); idx > 0 {
		return filename[idx+1:]
	}

	return filename
}

func writeBracketed(b *strings.Builder, s string) {
	b.WriteByte('[')
	b.WriteString(s)
	b.WriteString("] ")
}

func (l *Logger) writeOut(msg string, level int) {
	if level < l.minLevel {
		return
	}

	outStr := strings.Builder{}
	if l.flags&FTimestamp != 0 {
		writeBracketed(&outStr, time.Now().Format("15:04:05.000"))
	}

	writeBracketed(&outStr, levelToString(level))

	if l.flags&FShowFile != 0 {
		loc := "???"
		if _, file, line, ok := runtime.Caller(2); ok {
			loc = shortenFilename(file) + ":" + strconv.Itoa(line)
		}

		writeBracketed(&outStr, loc)
	}

	if l.prefix != "" {
		writeBracketed(&outStr, l.prefix)
	}

	outStr.WriteString(strings.TrimRight(msg, "\r\n"))
	outStr.WriteByte('\n')

	l.wMutex.Lock()
	defer l.wMutex.Unlock()
	_, _ = io.WriteString(l.output, outStr.String())
}

// Trace logs the passed arguments, formatted with fmt.Sprint, at TRACE
func (l *Logger) Trace(args ...interface{}) { l.writeOut(fmt.Sprint(args...), TRACE) }

// Tracef logs the passed arguments, formatted with fmt.Sprintf, at TRACE
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.writeOut(fmt.Sprintf(format, args...), TRACE)
}

// Debug logs the passed arguments, formatted with fmt.Sprint, at DEBUG
func (l *Logger) Debug(args ...interface{}) { l.writeOut(fmt.Sprint(args...), DEBUG) }

// Debugf logs the passed arguments, formatted with fmt.Sprintf, at DEBUG
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.writeOut(fmt.Sprintf(format, args...), DEBUG)
}

// Info logs the passed arguments, formatted with fmt.Sprint, at INFO
func (l *Logger) Info(args ...interface{}) { l.writeOut(fmt.Sprint(args...), INFO) }

// Infof logs the passed arguments, formatted with fmt.Sprintf, at INFO
func (l *Logger) Infof(format string, args ...interface{}) {
	l.writeOut(fmt.Sprintf(format, args...), INFO)
}

// Warn logs the passed arguments, formatted with fmt.Sprint, at WARN
func (l *Logger) Warn(args ...interface{}) { l.writeOut(fmt.Sprint(args...), WARN) }

// Warnf logs the passed arguments, formatted with fmt.Sprintf, at WARN
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.writeOut(fmt.Sprintf(format, args...), WARN)
}

// Error logs the passed arguments, formatted with fmt.Sprint, at ERROR
func (l *Logger) Error(args ...interface{}) { l.writeOut(fmt.Sprint(args...), ERROR) }

// Errorf logs the passed arguments, formatted with fmt.Sprintf, at ERROR
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.writeOut(fmt.Sprintf(format, args...), ERROR)
}

// Crit logs the passed arguments at CRIT and then exits with status 1
func (l *Logger) Crit(args ...interface{}) {
	l.writeOut(fmt.Sprint(args...), CRIT)
	os.Exit(1)
}

// Critf logs the passed arguments, formatted with fmt.Sprintf, at CRIT and then exits with status 1
func (l *Logger) Critf(format string, args ...interface{}) {
	l.writeOut(fmt.Sprintf(format, args...), CRIT)
	os.Exit(1)
}

// Panic logs the passed arguments at PANIC and then panics with the same message
func (l *Logger) Panic(args ...interface{}) {
	msg := fmt.Sprint(args...)
	l.writeOut(msg, PANIC)
	panic(msg)
}

// Panicf logs the passed arguments, formatted with fmt.Sprintf, at PANIC and then panics with the same message
func (l *Logger) Panicf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.writeOut(msg, PANIC)
	panic(msg)
}
