package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/msto63/lanpy/pkg/core/config"
	lplog "github.com/msto63/lanpy/pkg/core/log"
)

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("tokenize")

	if cfg.Name != "tokenize" {
		t.Errorf("Name = %v, want tokenize", cfg.Name)
	}
	if cfg.Level != "warn" {
		t.Errorf("Level = %v, want warn", cfg.Level)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
}

func TestFromConfig(t *testing.T) {
	tests := []struct {
		name       string
		in         config.LogConfig
		wantLevel  string
		wantFormat string
	}{
		{"empty keeps defaults", config.LogConfig{}, "warn", "text"},
		{"explicit values", config.LogConfig{Level: "debug", Format: "json"}, "debug", "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromConfig("run", tt.in)
			if got.Level != tt.wantLevel || got.Format != tt.wantFormat {
				t.Errorf("FromConfig() = %+v", got)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Name:   "run",
		Level:  "debug",
		Format: "json",
		Output: &buf,
	})

	if logger.GetLevel() != lplog.LevelDebug {
		t.Errorf("level = %v, want debug", logger.GetLevel())
	}

	logger.Debug("statement executed")

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if data["logger"] != "run" {
		t.Errorf("logger = %v, want run", data["logger"])
	}
}

func TestNewLogger_Fallbacks(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: "loud", Format: "xml", Output: &buf})

	if logger.GetLevel() != lplog.DefaultLevel() {
		t.Errorf("level = %v, want default", logger.GetLevel())
	}

	logger.Warn("careful")
	if !strings.Contains(buf.String(), "careful") || strings.HasPrefix(buf.String(), "{") {
		t.Errorf("expected text output, got %q", buf.String())
	}
}

func TestNewLogger_AdditionalOutputs(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:             "info",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
	})

	logger.Info("tokenize completed")

	if primary.Len() == 0 || primary.String() != extra.String() {
		t.Errorf("outputs differ: %q vs %q", primary.String(), extra.String())
	}
}
