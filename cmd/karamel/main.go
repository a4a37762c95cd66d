package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/erhanbaris/karamel-sub001/cmds"
	"github.com/erhanbaris/karamel-sub001/compiler"
	"github.com/erhanbaris/karamel-sub001/errs"
	"github.com/erhanbaris/karamel-sub001/karamel"
	"github.com/erhanbaris/karamel-sub001/karamelconfigs"
	"github.com/erhanbaris/karamel-sub001/logs"
	"github.com/erhanbaris/karamel-sub001/modes"
	"github.com/erhanbaris/karamel-sub001/vars"
	"github.com/reusee/dscope"
	"golang.org/x/term"
)

var (
	runPath    = cmds.Var[string]("run")
	evalSource = cmds.Var[string]("eval")
	replMode   = cmds.Switch("repl")
	buildPath  = cmds.Var[string]("-build")
	imagePath  = cmds.Var[string]("-image")
	tapFlag    = cmds.Switch("-tap")
)

func init() {
	cmds.Define("version", cmds.Func(func(verbose *bool) {
		fmt.Printf("karamel image v%d\n", compiler.ImageVersion)
		if vars.DerefOrZero(verbose) {
			fmt.Printf("log level %v\n", logs.Level())
		}
	}).Desc("print the image format version"))
}

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		exit(err)
	}
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)
	scope, err := karamelconfigs.ScriptFork(scope)
	if err != nil {
		exit(err)
	}

	scope.Call(func(
		applyLogLevel karamelconfigs.ApplyLogLevel,
		execute karamel.Execute,
		compile karamel.Compile,
		run karamel.Run,
		loadImage karamel.LoadImage,
		tapResult karamel.TapResult,
	) {
		if err := applyLogLevel(); err != nil {
			exit(err)
		}

		if *replMode {
			runREPL(ctx, execute)
			return
		}

		var source string
		var unit *compiler.Context
		if *imagePath != "" {
			data, err := os.ReadFile(*imagePath)
			if err != nil {
				exit(err)
			}
			unit, err = loadImage(data)
			if err != nil {
				exit(err)
			}

		} else {
			source, err = readSource()
			if err != nil {
				exit(err)
			}
			unit, err = compile(ctx, source)
			if err != nil {
				report(source, err)
				os.Exit(1)
			}
			if *buildPath != "" {
				data, err := compiler.MarshalImage(unit)
				if err != nil {
					exit(err)
				}
				if err := os.WriteFile(*buildPath, data, 0644); err != nil {
					exit(err)
				}
				return
			}
		}

		result := run(ctx, unit,
			karamel.WithOutput(os.Stdout),
			karamel.WithInput(os.Stdin),
		)
		if *tapFlag {
			tapResult(ctx, result)
		}
		if result.Err != nil {
			report(source, result.Err)
			os.Exit(1)
		}
	})
}

// readSource takes the program from run, eval or a piped stdin.
func readSource() (string, error) {
	switch {
	case *runPath != "":
		content, err := os.ReadFile(*runPath)
		return string(content), err
	case *evalSource != "":
		return *evalSource, nil
	case !term.IsTerminal(int(os.Stdin.Fd())):
		content, err := io.ReadAll(os.Stdin)
		return string(content), err
	}
	cmds.PrintUsage()
	os.Exit(2)
	return "", nil
}

func report(source string, err error) {
	var e *errs.Error
	if errors.As(err, &e) {
		fmt.Fprint(os.Stderr, e.Pretty(source))
		return
	}
	fmt.Fprintln(os.Stderr, err)
}

func exit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
