package karamel

import (
	"github.com/erhanbaris/karamel-sub001/builtins"
	"github.com/erhanbaris/karamel-sub001/debugs"
	"github.com/erhanbaris/karamel-sub001/karamelconfigs"
	"github.com/erhanbaris/karamel-sub001/logs"
	"github.com/reusee/dscope"
	"github.com/reusee/e5"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs karamelconfigs.Module
	Debugs  debugs.Module
}

// Natives is the builtin registry programs compile and run against.
type Natives = *builtins.Registry

func (Module) Natives(
	disabled karamelconfigs.DisabledBuiltins,
) Natives {
	if len(disabled) == 0 {
		return builtins.Default()
	}
	return builtins.Default().Without(disabled...)
}
