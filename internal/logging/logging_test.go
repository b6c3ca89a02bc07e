package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"DEBUG", DebugLevel},
		{"debug", DebugLevel},
		{"  DEBUG  ", DebugLevel},
		{"INFO", InfoLevel},
		{"info", InfoLevel},
		{"WARN", WarnLevel},
		{"warn", WarnLevel},
		{"WARNING", WarnLevel},
		{"warning", WarnLevel},
		{"ERROR", ErrorLevel},
		{"error", ErrorLevel},
		{"FATAL", FatalLevel},
		{"fatal", FatalLevel},
		{"unknown", InfoLevel},
		{"", InfoLevel},
		{"INVALID", InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseLevel(tt.input)
			if result != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestInit(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{
		Level:  InfoLevel,
		Output: &buf,
		Pretty: false,
	})

	Info().Msg("test message")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("expected output to contain 'test message', got %s", output)
	}
	if !strings.Contains(output, "info") {
		t.Errorf("expected output to contain 'info' level, got %s", output)
	}
}

func TestInitWithPrettyOutput(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{
		Level:  InfoLevel,
		Output: &buf,
		Pretty: true,
	})

	Info().Msg("pretty test")

	output := buf.String()
	if !strings.Contains(output, "pretty test") {
		t.Errorf("expected output to contain 'pretty test', got %s", output)
	}
}

func TestLogLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{
		Level:  WarnLevel,
		Output: &buf,
		Pretty: false,
	})

	// These should NOT appear (below WarnLevel)
	Debug().Msg("debug message")
	Info().Msg("info message")

	// These should appear
	Warn().Msg("warn message")
	Error().Msg("error message")

	output := buf.String()

	if strings.Contains(output, "debug message") {
		t.Error("debug message should not appear when level is Warn")
	}
	if strings.Contains(output, "info message") {
		t.Error("info message should not appear when level is Warn")
	}
	if !strings.Contains(output, "warn message") {
		t.Error("warn message should appear when level is Warn")
	}
	if !strings.Contains(output, "error message") {
		t.Error("error message should appear when level is Warn")
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{
		Level:  InfoLevel,
		Output: &buf,
	})

	child := With().Str("component", "session").Logger()
	child.Info().Msg("child message")

	output := buf.String()
	if !strings.Contains(output, `"component":"session"`) {
		t.Errorf("expected output to carry the child field, got %s", output)
	}
}
