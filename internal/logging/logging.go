// Package logging configures the leveled logging sink shared by the
// fetcher components: a console writer at the configured level and an
// append-mode log file capturing DEBUG and above.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"deepsrt/fetcher/internal/config"
)

// Setup builds a logger from the log configuration. The logger itself is set
// to DEBUG and routing happens in per-sink hooks, so the file sink can stay
// more detailed than the console. A log file that cannot be opened is
// reported on the console and skipped.
func Setup(cfg config.LogConfig) (*log.Logger, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}

	logger := log.New()
	logger.SetLevel(log.DebugLevel)
	logger.SetOutput(io.Discard)

	formatter := &ZonedFormatter{Location: loc}
	logger.AddHook(&writerHook{
		writer:    os.Stdout,
		formatter: formatter,
		minLevel:  ParseLevel(cfg.Level),
	})

	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Errorf("Cannot open log file %s for writing: %v", cfg.File, err)
		} else {
			logger.AddHook(&writerHook{
				writer:    file,
				formatter: formatter,
				minLevel:  log.DebugLevel,
			})
		}
	}

	return logger, nil
}

// ParseLevel maps a config level string to a logrus level, defaulting to INFO.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// writerHook routes entries at or above minLevel to one writer.
type writerHook struct {
	writer    io.Writer
	formatter log.Formatter
	minLevel  log.Level
}

func (h *writerHook) Levels() []log.Level {
	return log.AllLevels[:h.minLevel+1]
}

func (h *writerHook) Fire(entry *log.Entry) error {
	line, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.writer.Write(line)
	return err
}
