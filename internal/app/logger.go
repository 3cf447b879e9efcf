package app

import (
	"log/slog"
	"os"

	"campus-delivery/internal/logx"
)

// NewLogger builds the process-wide JSON logger.
func NewLogger() logx.Logger {
	base := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	return logx.NewSlogAdapter(base)
}
