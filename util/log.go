package util

import (
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// NewLogger 带时间戳的 JSON 日志，level 为空时使用 info
func NewLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if level = strings.TrimSpace(level); level != "" {
		var err error
		lvl, err = zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return zerolog.Nop(), errors.Wrapf(err, "parse log level %q", level)
		}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// Trace 记录一段操作的耗时，用法：defer util.Trace(log, "convert")()
func Trace(log zerolog.Logger, msg string) func() {
	start := time.Now()
	log.Debug().Str("op", msg).Msg("start")
	return func() {
		log.Info().Str("op", msg).Int64("elapsed", time.Since(start).Milliseconds()).Msg("done")
	}
}
