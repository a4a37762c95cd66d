package karamelconfigs

import (
	"github.com/erhanbaris/karamel-sub001/cmds"
	"github.com/erhanbaris/karamel-sub001/configs"
	"github.com/erhanbaris/karamel-sub001/karamelvm"
	"github.com/erhanbaris/karamel-sub001/vars"
)

// MaxCallDepth bounds the number of live call frames.
type MaxCallDepth int

var _ configs.Configurable = MaxCallDepth(0)

func (MaxCallDepth) ConfigName() string {
	return "max_call_depth"
}

var maxCallDepthFlag = cmds.Var[int]("-max-call-depth")

func (Module) MaxCallDepth(
	loader configs.Loader,
) MaxCallDepth {
	return MaxCallDepth(vars.FirstNonZero(
		*maxCallDepthFlag,
		configs.First[int](loader, "max_call_depth"),
		karamelvm.DefaultMaxCallDepth,
	))
}
