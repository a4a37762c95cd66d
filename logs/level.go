package logs

import (
	"log/slog"

	"github.com/erhanbaris/karamel-sub001/cmds"
)

var (
	level = new(slog.LevelVar)
	// set by a -log-* flag
	levelFromFlag bool
)

func init() {
	level.Set(slog.LevelWarn)
	for name, l := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		cmds.Define("-log-"+name, cmds.Func(func() {
			level.Set(l)
			levelFromFlag = true
		}).Desc("set log level to "+name))
	}
}

// SetLevel parses a level name like "debug" or "WARN".
func SetLevel(name string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return err
	}
	level.Set(l)
	return nil
}

func Level() slog.Level {
	return level.Level()
}

// LevelFromFlag reports whether a -log-* flag chose the level.
func LevelFromFlag() bool {
	return levelFromFlag
}
