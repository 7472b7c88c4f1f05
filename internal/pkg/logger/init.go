package logger

import (
	"SocialNetwork/internal/api/config"
	"io"
	log "log/slog"
	"os"
	"strings"
)

// LogWriter gin 访问日志的输出目标
var LogWriter io.Writer = os.Stdout

// InitLogger 按配置构建默认 slog，所有 Handler 都包一层 ContextHandler 以携带 trace_id
func InitLogger(cfg config.LogConfig) {
	log.SetDefault(NewLogger(os.Stdout, cfg))
}

func NewLogger(w io.Writer, cfg config.LogConfig) *log.Logger {
	opts := &log.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var h log.Handler
	if strings.EqualFold(cfg.Format, "text") {
		h = log.NewTextHandler(w, opts)
	} else {
		h = log.NewJSONHandler(w, opts)
	}

	LogWriter = w
	return log.New(&ContextHandler{h})
}

// ParseLevel 未识别的级别按 info 处理
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.LevelDebug
	case "warn", "warning":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}
