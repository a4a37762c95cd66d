package karamelconfigs

import (
	"github.com/erhanbaris/karamel-sub001/cmds"
	"github.com/erhanbaris/karamel-sub001/configs"
)

// DumpOpcodes prints the opcode listing before running.
type DumpOpcodes bool

var _ configs.Configurable = DumpOpcodes(false)

func (DumpOpcodes) ConfigName() string {
	return "dump_opcodes"
}

var dumpFlag = cmds.Switch("-dump")

func (Module) DumpOpcodes(
	loader configs.Loader,
) DumpOpcodes {
	return DumpOpcodes(*dumpFlag || configs.First[bool](loader, "dump_opcodes"))
}
