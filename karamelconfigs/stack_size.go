package karamelconfigs

import (
	"github.com/erhanbaris/karamel-sub001/cmds"
	"github.com/erhanbaris/karamel-sub001/configs"
	"github.com/erhanbaris/karamel-sub001/karamelvm"
	"github.com/erhanbaris/karamel-sub001/vars"
)

// StackSize is the initial operand stack capacity.
type StackSize int

var _ configs.Configurable = StackSize(0)

func (StackSize) ConfigName() string {
	return "stack_size"
}

var stackSizeFlag = cmds.Var[int]("-stack-size")

func (Module) StackSize(
	loader configs.Loader,
) StackSize {
	return StackSize(vars.FirstNonZero(
		*stackSizeFlag,
		configs.First[int](loader, "stack_size"),
		karamelvm.DefaultStackSize,
	))
}
