package karamelconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/erhanbaris/karamel-sub001/configs"
	"github.com/erhanbaris/karamel-sub001/logs"
	"github.com/erhanbaris/karamel-sub001/modes"
)

//go:embed schema.cue
var Schema string

// searchPaths lists existing files named one of filenames, most specific
// directory first.
func searchPaths(filenames ...string) (paths []string) {
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {
	if mode.Hermetic() {
		return configs.NewLoader(nil, Schema)
	}
	paths := searchPaths("karamel.cue", ".karamel.cue")
	if len(paths) > 0 {
		logger.Info("config file", "paths", paths)
	}
	return configs.NewLoader(paths, Schema)
}
