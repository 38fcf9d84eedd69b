package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/langkit/scalaparse/dialect"
)

// runReplLoop is an interactive REPL modeled on the teacher pack's own REPL
// command (duhaifeng-light-lang, cmd/light/repl.go): readline for
// history/line-editing and brace-depth tracking to let a multi-line
// definition span several prompts. Each brace-balanced input is parsed on
// its own with the "source" entry point; a `@` line gets no special
// treatment (parser.ParseAmmonite is not used here).
func runReplLoop(d dialect.Dialect) error {
	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".scalaparse_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "scala> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("readline init failed: %w", err)
	}
	defer rl.Close()

	fmt.Fprintln(rl.Stdout(), "scalaparse REPL (type 'exit' or Ctrl+D to quit; each brace-balanced input is parsed on its own)")

	var accumulated strings.Builder
	braceDepth := 0

	for {
		if braceDepth > 0 {
			rl.SetPrompt("   | ")
		} else {
			rl.SetPrompt("scala> ")
		}

		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if braceDepth > 0 {
					accumulated.Reset()
					braceDepth = 0
					continue
				}
				continue
			}
			if err == io.EOF {
				fmt.Fprintln(rl.Stdout())
			}
			break
		}

		if braceDepth == 0 && strings.TrimSpace(line) == "exit" {
			break
		}

		braceDepth += strings.Count(line, "{") - strings.Count(line, "}")
		accumulated.WriteString(line)
		accumulated.WriteString("\n")

		if braceDepth > 0 {
			continue
		}
		braceDepth = 0

		src := accumulated.String()
		accumulated.Reset()
		if strings.TrimSpace(src) == "" {
			continue
		}

		result, sink := parseEntry("source", src, "<repl>", d)
		if sink.HasErrors() {
			for _, diag := range sink.Errors() {
				fmt.Fprintf(rl.Stderr(), "%s\n", diag.String())
			}
			continue
		}
		dumpNode(rl.Stdout(), result, 0)
	}
	return nil
}
