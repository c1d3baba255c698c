package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/vvka-141/rfconn/pkg/rfconn"
)

var (
	_ rfconn.Logger = (*ConsoleLogger)(nil)
	_ rfconn.Logger = (*NullLogger)(nil)
	_ rfconn.Logger = (*LogrusLogger)(nil)
)

func TestConsoleLogger_DefaultsToStderr(t *testing.T) {
	// Capture stderr
	old := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	logger := NewConsoleLogger(true)
	logger.Verbose("test message: %s", "value")

	w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	output := buf.String()

	expected := "[VERBOSE] test message: value\n"
	if output != expected {
		t.Errorf("Expected %q, got %q", expected, output)
	}
}

func TestConsoleLogger_Verbose_WhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false)
	logger.Verbose("test message: %s", "value")

	if buf.String() != "" {
		t.Errorf("Expected no output, got %q", buf.String())
	}
}

func TestConsoleLogger_Levels(t *testing.T) {
	tests := []struct {
		name     string
		log      func(l *ConsoleLogger)
		expected string
	}{
		{"info", func(l *ConsoleLogger) { l.Info("connected to %s", "bmc") }, "connected to bmc\n"},
		{"warn", func(l *ConsoleLogger) { l.Warn("attempt %d failed", 1) }, "[WARN] attempt 1 failed\n"},
		{"error", func(l *ConsoleLogger) { l.Error("failed: %v", "boom") }, "[ERROR] failed: boom\n"},
		{"verbose", func(l *ConsoleLogger) { l.Verbose("trace") }, "[VERBOSE] trace\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewConsoleLoggerTo(&buf, true))
			if buf.String() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, buf.String())
			}
		})
	}
}

func TestConsoleLogger_NoArgs_PercentLiteral(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false)
	logger.Info("100% done")

	if buf.String() != "100% done\n" {
		t.Errorf("Expected literal percent, got %q", buf.String())
	}
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func TestConsoleLogger_ConcurrentWrites(t *testing.T) {
	out := &lockedBuffer{}
	logger := NewConsoleLoggerTo(out, true)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("%s", fmt.Sprintf("line %d", id))
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(out.buf.String()), "\n")
	if len(lines) != 10 {
		t.Errorf("Expected 10 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "line ") {
			t.Errorf("Interleaved output: %q", line)
		}
	}
}

func TestNullLogger(t *testing.T) {
	logger := NewNullLogger()
	logger.Verbose("x")
	logger.Info("x")
	logger.Warn("x")
	logger.Error("x")
}
