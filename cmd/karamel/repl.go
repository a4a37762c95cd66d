package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/erhanbaris/karamel-sub001/errs"
	"github.com/erhanbaris/karamel-sub001/karamel"
	"github.com/erhanbaris/karamel-sub001/primitives"
)

// session replays accepted blocks on every evaluation and shows only what
// the new block added.
type session struct {
	execute karamel.Execute
	history []string
	shown   int
	depth   int
}

// eval runs block after the accepted history. A failing block is dropped.
func (s *session) eval(ctx context.Context, block string, out io.Writer) error {
	source := strings.Join(append(s.history[:len(s.history):len(s.history)], block), "\n")
	result := s.execute(ctx, source, karamel.WithInput(strings.NewReader("")))
	if result.Err != nil {
		var e *errs.Error
		if errors.As(result.Err, &e) {
			return fmt.Errorf("%s", strings.TrimRight(e.Pretty(source), "\n"))
		}
		return result.Err
	}
	s.history = append(s.history, block)

	if len(result.Output) > s.shown {
		io.WriteString(out, result.Output[s.shown:])
		s.shown = len(result.Output)
	}
	if len(result.Stack) > s.depth {
		fmt.Fprintln(out, primitives.Quote(result.Top()))
	}
	s.depth = len(result.Stack)
	return nil
}

// needsMore reports whether line opens an indented block.
func needsMore(line string) bool {
	return strings.HasSuffix(strings.TrimSpace(line), ":")
}

func runREPL(ctx context.Context, execute karamel.Execute) {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".karamel_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()

	s := &session{
		execute: execute,
	}
	var block []string
	for {
		if len(block) > 0 {
			rl.SetPrompt(". ")
		} else {
			rl.SetPrompt("> ")
		}
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}

		if len(block) > 0 {
			// an empty line closes the block
			if strings.TrimSpace(line) != "" {
				block = append(block, line)
				continue
			}
		} else {
			if strings.TrimSpace(line) == "" {
				continue
			}
			block = append(block, line)
			if needsMore(line) {
				continue
			}
		}

		if err := s.eval(ctx, strings.Join(block, "\n"), os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		block = block[:0]
	}
}
