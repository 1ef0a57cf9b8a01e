package log

import (
	"bytes"
	"io"
	stdlog "log"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"trace", TRACE, false},
		{"INFO", INFO, false},
		{" warn ", WARN, false},
		{"Panic", PANIC, false},
		{"loud", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %t", tt.in, err, tt.wantErr)
			}

			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestLogger_writeOut(t *testing.T) {
	tests := []struct {
		name   string
		flags  int
		prefix string
		min    int
		log    func(l *Logger)
		want   string
	}{
		{"plain", 0, "", TRACE, func(l *Logger) { l.Info("test") }, "[INFO ] test\n"},
		{"prefix", 0, "STYLER", TRACE, func(l *Logger) { l.Warnf("%d things", 3) }, "[WARN ] [STYLER] 3 things\n"},
		{"filtered", 0, "", INFO, func(l *Logger) { l.Debug("hidden") }, ""},
		{"trailing newline", 0, "", TRACE, func(l *Logger) { l.Error("line\r\n") }, "[ERROR] line\n"},
		{"show file", FShowFile, "", TRACE, func(l *Logger) { l.Trace("here") }, "[TRACE] [log_test.go:"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			tt.log(New(tt.flags, buf, tt.prefix, tt.min))

			if !strings.HasPrefix(buf.String(), tt.want) || (tt.want == "" && buf.Len() != 0) {
				t.Errorf("log output = %q, want prefix %q", buf.String(), tt.want)
			}
		})
	}
}

func TestLogger_Timestamp(t *testing.T) {
	buf := &bytes.Buffer{}
	New(FTimestamp, buf, "", TRACE).Info("x")

	// [15:04:05.000] is 14 characters
	if out := buf.String(); len(out) < 15 || out[0] != '[' || out[13] != ']' {
		t.Errorf("expected a timestamp, got %q", out)
	}
}

func TestLogger_Clone(t *testing.T) {
	buf := &bytes.Buffer{}
	l := New(0, buf, "ONE", TRACE)
	c := l.Clone().SetPrefix("TWO")

	l.Info("a")
	c.Info("b")

	if want := "[INFO ] [ONE] a\n[INFO ] [TWO] b\n"; buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestLogger_Panic(t *testing.T) {
	buf := &bytes.Buffer{}

	defer func() {
		if r := recover(); r != "boom 1" {
			t.Errorf("recovered %v, want %q", r, "boom 1")
		}

		if !strings.Contains(buf.String(), "[PANIC] boom 1") {
			t.Errorf("panic was not logged: %q", buf.String())
		}
	}()

	New(0, buf, "", TRACE).Panicf("boom %d", 1)
}

func BenchmarkLogger_Info(b *testing.B) {
	l := New(FTimestamp, io.Discard, "test", 0)
	for i := 0; i < b.N; i++ {
		l.Info("test")
	}
}

func BenchmarkStdlogger(b *testing.B) {
	l := stdlog.New(io.Discard, "test", stdlog.Ltime)
	for i := 0; i < b.N; i++ {
		l.Print("test")
	}
}
