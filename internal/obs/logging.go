// Package obs содержит утилиты наблюдаемости (структурные логи).
package obs

import (
	"log/slog"
	"os"
)

// Logger глобальный структурный логгер сервиса
var Logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
