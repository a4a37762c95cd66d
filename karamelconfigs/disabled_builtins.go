package karamelconfigs

import (
	"slices"

	"github.com/erhanbaris/karamel-sub001/cmds"
	"github.com/erhanbaris/karamel-sub001/configs"
)

// DisabledBuiltins names builtins removed from the registry. Every config
// file contributes.
type DisabledBuiltins []string

var _ configs.Configurable = DisabledBuiltins(nil)

func (DisabledBuiltins) ConfigName() string {
	return "disabled_builtins"
}

var disableFlags = cmds.Collect[string]("-disable")

func (Module) DisabledBuiltins(
	loader configs.Loader,
) DisabledBuiltins {
	ret := slices.Clone(*disableFlags)
	for names := range configs.All[[]string](loader, "disabled_builtins") {
		ret = append(ret, names...)
	}
	slices.Sort(ret)
	return slices.Compact(ret)
}
