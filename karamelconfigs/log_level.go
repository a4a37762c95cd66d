package karamelconfigs

import (
	"github.com/erhanbaris/karamel-sub001/configs"
	"github.com/erhanbaris/karamel-sub001/logs"
)

// ApplyLogLevel sets the process log level from log_level unless a flag
// already chose one.
type ApplyLogLevel func() error

func (Module) ApplyLogLevel(
	loader configs.Loader,
) ApplyLogLevel {
	return func() error {
		name := configs.First[string](loader, "log_level")
		if name == "" || logs.LevelFromFlag() {
			return nil
		}
		return logs.SetLevel(name)
	}
}
