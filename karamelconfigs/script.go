package karamelconfigs

import (
	"fmt"
	"os"
	"slices"

	"github.com/erhanbaris/karamel-sub001/builtins"
	"github.com/erhanbaris/karamel-sub001/compiler"
	"github.com/erhanbaris/karamel-sub001/configs"
	"github.com/erhanbaris/karamel-sub001/karamelvm"
	"github.com/erhanbaris/karamel-sub001/modes"
	"github.com/erhanbaris/karamel-sub001/primitives"
	"github.com/reusee/dscope"
	"github.com/reusee/e5"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

// ScriptFork runs every karamel.k or .karamel.k found in /etc, the user
// config dir and the working directory, in that order. Top-level variables
// named after a Configurable type override its provider, so a script in the
// working directory shadows one in /etc. Hermetic modes run nothing.
func ScriptFork(scope dscope.Scope) (dscope.Scope, error) {
	if dscope.Get[modes.Mode](scope).Hermetic() {
		return scope, nil
	}
	paths := searchPaths("karamel.k", ".karamel.k")
	slices.Reverse(paths)
	return ForkScripts(scope, paths)
}

func ForkScripts(scope dscope.Scope, paths []string) (dscope.Scope, error) {
	for _, path := range paths {
		values, err := RunScript(path)
		if err != nil {
			return scope, err
		}
		scope, err = configs.ScriptFork(scope, values)
		if err != nil {
			return scope, wrap(fmt.Errorf("script %s: %w", path, err))
		}
	}
	return scope, nil
}

// RunScript executes a configuration script and returns its top-level
// variables. Scripts cannot read stdin.
func RunScript(path string) (map[string]primitives.Primitive, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, wrap(err)
	}
	registry := builtins.Default().Without("io.readline")
	unit := compiler.NewContext(registry)
	if err := compiler.CompileString(string(content), unit); err != nil {
		return nil, wrap(fmt.Errorf("script %s: %w", path, err))
	}
	vm := karamelvm.New(unit, registry,
		karamelvm.WithOutput(os.Stderr),
	)
	if err := vm.Execute(); err != nil {
		return nil, wrap(fmt.Errorf("script %s: %w", path, err))
	}
	return unit.Storages[0].Values(), nil
}
