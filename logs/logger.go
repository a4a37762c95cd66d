package logs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

type Logger = *slog.Logger

// Writer receives terminal log output.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}

func (Module) Logger(
	writer Writer,
) Logger {
	terminal := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	})
	handlers := []slog.Handler{terminal}

	// systemd sets JOURNAL_STREAM for units whose output goes to the journal
	if os.Getenv("JOURNAL_STREAM") != "" {
		journal, err := slogjournal.NewHandler(&slogjournal.Options{
			Level: level,
			ReplaceGroup: func(key string) string {
				return journalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = journalKey(a.Key)
				return a
			},
		})
		if err != nil {
			record := slog.NewRecord(time.Now(), slog.LevelWarn, "systemd journal handler", 0)
			record.Add("error", err)
			_ = terminal.Handle(context.Background(), record)
		} else {
			handlers = []slog.Handler{journal}
		}
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	})
}

// journalKey maps an attribute key to the upper case form journald accepts.
func journalKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		}
		return '_'
	}, key)
}
