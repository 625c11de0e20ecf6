// Package logging builds the zerolog logger used by the hosts.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/plus3/oxide/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger configured by cfg. Without a log file it writes to
// stderr. The returned closer releases the log file, if one was opened.
func New(cfg config.Config, stderr io.Writer) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), nil, eris.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}

	var (
		out    io.Writer = stderr
		closer io.Closer = nopCloser{}
	)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, eris.Wrapf(err, "failed to open log file %s", cfg.LogFile)
		}
		out, closer = f, f
	}

	if !cfg.LogJSON {
		out = zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    cfg.LogFile != "",
			TimeFormat: time.TimeOnly,
		}
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return logger, closer, nil
}
