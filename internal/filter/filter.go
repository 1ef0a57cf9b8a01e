// Package filter runs a line based transform over a stream
package filter

import (
	"bufio"
	"fmt"
	"io"

	"awesome-dragon.science/go/goGoStyleBot/pkg/log"
)

// LineFunc transforms one line, without its line ending. If it returns an error alongside a line, the line is still
// written
type LineFunc func(line string) (string, error)

// maxScanBuf caps the length of a single input line
const maxScanBuf = 1024 * 1024

// Run reads lines from r, passes them through fn, and writes the results to w, each followed by eol. It returns once
// r is exhausted. Errors from fn are logged and never stop the stream
func Run(r io.Reader, w io.Writer, eol string, fn LineFunc, logger *log.Logger) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxScanBuf)

	out := bufio.NewWriter(w)

	var count int

	for scanner.Scan() {
		count++

		res, err := fn(scanner.Text())
		if err != nil {
			logger.Warnf("line %d: %s", count, err)
		}

		if _, err := io.WriteString(out, res+eol); err != nil {
			return fmt.Errorf("could not write line %d: %w", count, err)
		}

		// Flush per line, the other end is likely waiting on it
		if err := out.Flush(); err != nil {
			return fmt.Errorf("could not flush line %d: %w", count, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("could not read input: %w", err)
	}

	logger.Debugf("filtered %d lines", count)

	return nil
}

// Text wraps a plain transform, such as Styler.Transform, as a LineFunc
func Text(fn func(string) string) LineFunc {
	return func(line string) (string, error) { return fn(line), nil }
}
