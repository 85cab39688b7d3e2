package shared

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLogger(t *testing.T) {
	t.Run("NewLogger", func(t *testing.T) {
		t.Run("With Writer", func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf)

			logger.Info("hello")
			if !strings.Contains(buf.String(), "hello") {
				t.Errorf("expected log output, got %q", buf.String())
			}
		})

		t.Run("Nil Writer Defaults To Stderr", func(t *testing.T) {
			if NewLogger(nil) == nil {
				t.Error("expected a logger")
			}
		})
	})

	t.Run("NewFileLogger", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "app.log")

		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if logger == nil {
			t.Fatal("expected a logger")
		}

		logger.Info("to file")
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected log file to exist: %v", err)
		}
	})

	t.Run("WithLogger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)
		child := WithLogger(logger, "component", "test")

		child.Info("tagged")
		if !strings.Contains(buf.String(), "component") {
			t.Errorf("expected key-value in output, got %q", buf.String())
		}
	})

	t.Run("SetLogLevel", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)

		SetLogLevel(logger, log.ErrorLevel)
		logger.Info("suppressed")
		if strings.Contains(buf.String(), "suppressed") {
			t.Error("expected info line to be suppressed at error level")
		}

		logger.Error("surfaced")
		if !strings.Contains(buf.String(), "surfaced") {
			t.Error("expected error line to pass")
		}
	})
}

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()

	if a == "" || b == "" {
		t.Error("expected non-empty IDs")
	}
	if a == b {
		t.Error("expected distinct IDs")
	}
	if len(a) != 36 {
		t.Errorf("expected UUID string length 36, got %d", len(a))
	}
}
