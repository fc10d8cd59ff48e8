// Released under an MIT license. See LICENSE.

// Package ui provides an interactive prompt for purisp.
package ui

import (
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/purisp/purisp/internal/system/history"
)

const prompt = "purisp> "

// Evaluator is the interface for things that want to process lines of input.
type Evaluator interface {
	Evaluate(line string)
}

// Run prompts for lines and sends each non-blank line to the Evaluator until
// the user signals the end of input. Names are offered as completions.
func Run(e Evaluator, names []string) error {
	cli := liner.NewLiner()
	defer cli.Close()

	if err := history.Load(cli.ReadHistory); err != nil {
		println("Error reading history: " + err.Error())
	}

	cli.SetCtrlCAborts(true)
	cli.SetTabCompletionStyle(liner.TabPrints)
	cli.SetWordCompleter(completer(names))

	for {
		line, err := cli.Prompt(prompt)

		switch err {
		case nil:
		case liner.ErrPromptAborted:
			continue
		case io.EOF:
			os.Stdout.Write([]byte("exit\n"))

			return history.Save(cli.WriteHistory)
		default:
			return err
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		cli.AppendHistory(line)

		e.Evaluate(line)
	}
}

// The cursor position passed by liner counts runes, not bytes.
func completer(names []string) liner.WordCompleter {
	return func(line string, pos int) (string, []string, string) {
		r := []rune(line)

		head := string(r[:pos])
		tail := string(r[pos:])

		start := strings.LastIndexAny(head, " \t()") + 1
		word := head[start:]

		completions := []string{}
		for _, name := range names {
			if strings.HasPrefix(name, word) {
				completions = append(completions, name)
			}
		}

		return head[:start], completions, tail
	}
}
