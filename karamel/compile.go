package karamel

import (
	"context"
	"io"
	"os"

	"github.com/erhanbaris/karamel-sub001/compiler"
	"github.com/erhanbaris/karamel-sub001/karamelconfigs"
	"github.com/erhanbaris/karamel-sub001/logs"
)

// DumpWriter receives opcode listings when DumpOpcodes is set.
type DumpWriter io.Writer

func (Module) DumpWriter() DumpWriter {
	return os.Stderr
}

type Compile func(ctx context.Context, source string) (*compiler.Context, error)

func (Module) Compile(
	logger logs.Logger,
	newSpan logs.NewSpan,
	natives Natives,
	dump karamelconfigs.DumpOpcodes,
	dumpWriter DumpWriter,
) Compile {
	return func(ctx context.Context, source string) (*compiler.Context, error) {
		ctx, _ = newSpan(ctx, "")
		unit := compiler.NewContext(natives)
		if err := compiler.CompileString(source, unit); err != nil {
			logger.DebugContext(ctx, "compile failed", "error", err)
			return nil, logs.WrapSpan(ctx, err)
		}
		logger.DebugContext(ctx, "compiled",
			"opcodes", len(unit.Opcodes),
			"storages", len(unit.Storages),
			"functions", len(unit.Functions),
		)
		if dump {
			if err := unit.Dump(dumpWriter); err != nil {
				return nil, wrap(err)
			}
		}
		return unit, nil
	}
}

// LoadImage decodes a compiled image against the current builtins.
type LoadImage func(data []byte) (*compiler.Context, error)

func (Module) LoadImage(
	natives Natives,
) LoadImage {
	return func(data []byte) (*compiler.Context, error) {
		return compiler.UnmarshalImage(data, natives)
	}
}
