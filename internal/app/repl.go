package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"aocctl/internal/console"
	"aocctl/pkg/logging"
)

const historyFileName = ".aocctl_history"

// errExit is returned by a command that ends the session.
var errExit = errors.New("exit")

// REPL is the line console used with --no-tui. It drives the same shell as
// the TUI with synchronous solving, so every command prints settled answers.
type REPL struct {
	shell *console.Shell
	out   io.Writer
	rl    *readline.Instance

	// readLine reads one line of multi-line input; set by Run.
	readLine func() (string, error)
}

// NewREPL creates a REPL over shell that prints to out.
func NewREPL(shell *console.Shell, out io.Writer) *REPL {
	return &REPL{
		shell: shell,
		out:   out,
	}
}

// Run starts the REPL
func (r *REPL) Run(ctx context.Context) error {
	config := &readline.Config{
		Prompt:          r.prompt(),
		HistoryFile:     filepath.Join(os.TempDir(), historyFileName),
		AutoComplete:    r.createCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	}

	rl, err := readline.NewEx(config)
	if err != nil {
		return fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()
	r.rl = rl
	r.readLine = rl.Readline

	fmt.Fprintln(r.out, "Puzzle console. Type 'help' for available commands. Use TAB for completion.")
	r.printPage()

	for {
		select {
		case <-ctx.Done():
			logging.Info("CLI", "REPL shutting down...")
			return nil
		default:
		}

		rl.SetPrompt(r.prompt())
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				continue
			}
		} else if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out, "Merry Christmas!")
			return nil
		} else if err != nil {
			return fmt.Errorf("readline error: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		if err := r.executeCommand(input); err != nil {
			if errors.Is(err, errExit) {
				fmt.Fprintln(r.out, "Merry Christmas!")
				return nil
			}
			fmt.Fprintf(r.out, "Error: %v\n", err)
		}
	}
}

// prompt shows the selected page, e.g. "Day 05> ".
func (r *REPL) prompt() string {
	return r.shell.Selected() + "> "
}

func (r *REPL) createCompleter() *readline.PrefixCompleter {
	titles := readline.PcItemDynamic(func(string) []string {
		return r.shell.Catalog().Titles()
	})
	return readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("pages"),
		readline.PcItem("select", titles),
		readline.PcItem("next"),
		readline.PcItem("prev"),
		readline.PcItem("show"),
		readline.PcItem("answers"),
		readline.PcItem("load"),
		readline.PcItem("input"),
		readline.PcItem("paste"),
		readline.PcItem("copy"),
		readline.PcItem("clear"),
		readline.PcItem("exit"),
	)
}

// filterInput drops Ctrl+Z so the console cannot be suspended mid-line.
func filterInput(r rune) (rune, bool) {
	if r == readline.CharCtrlZ {
		return r, false
	}
	return r, true
}
