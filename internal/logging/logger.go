package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// InitLogger installs the tint handler as the process-wide default. The
// level comes from LOG_LEVEL (debug|info|warn|error), defaulting to info.
func InitLogger() {
	handler := tint.NewHandler(os.Stdout, &tint.Options{
		Level:      levelFromEnv(),
		TimeFormat: time.Kitchen,
		AddSource:  true,
	})

	slog.SetDefault(slog.New(handler))
}

func levelFromEnv() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(os.Getenv("LOG_LEVEL"))); err != nil {
		return slog.LevelInfo
	}
	return level
}
