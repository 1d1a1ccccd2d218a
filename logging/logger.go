package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// Auto installs the default slog logger. Logs go to stderr unless path is
// set, in which case they are appended to that file without colors.
func Auto(path string) io.Closer {
	w, err := getWriter(path)
	if err != nil {
		log.Fatalln(err)
	}

	slog.SetDefault(New(w, path != ""))
	slog.SetLogLoggerLevel(level())

	return w
}

func level() slog.Level {
	if !debug {
		return slog.LevelInfo
	}

	return slog.LevelDebug
}

func New(w io.Writer, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		AddSource:   true,
		Level:       level(),
		ReplaceAttr: nil,
		TimeFormat:  time.Kitchen,
		NoColor:     noColor || !debug,
	}))
}

func getWriter(path string) (io.WriteCloser, error) {
	if path != "" {
		return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	}

	return struct {
		io.Writer
		io.Closer
	}{
		os.Stderr,
		io.NopCloser(nil),
	}, nil
}
