package logging

import (
	"log/slog"
	"testing"
)

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"unset defaults to info", "", slog.LevelInfo},
		{"debug", "debug", slog.LevelDebug},
		{"upper case", "WARN", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"garbage defaults to info", "loud", slog.LevelInfo},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tc.value)
			if got := levelFromEnv(); got != tc.want {
				t.Errorf("levelFromEnv() = %v, want %v", got, tc.want)
			}
		})
	}
}
