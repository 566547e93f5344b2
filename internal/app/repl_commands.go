package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/chzyer/readline"

	"aocctl/internal/catalog"
	"aocctl/internal/console"
	"aocctl/internal/input"
)

// For mocking in tests
var (
	readFile          = input.ReadFile
	clipboardReadAll  = clipboard.ReadAll
	clipboardWriteAll = clipboard.WriteAll
)

// inputTerminator ends multi-line input entered with the input command.
const inputTerminator = "."

// executeCommand parses and executes a command
func (r *REPL) executeCommand(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}

	command := strings.ToLower(parts[0])
	args := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), parts[0]))

	switch command {
	case "help", "?":
		r.showHelp()
		return nil

	case "pages", "list":
		r.listPages()
		return nil

	case "select":
		if args == "" {
			return fmt.Errorf("usage: select <page title>")
		}
		r.shell.Select(args)
		r.printPage()
		return nil

	case "next":
		r.shell.Move(1)
		r.printPage()
		return nil

	case "prev":
		r.shell.Move(-1)
		r.printPage()
		return nil

	case "show":
		r.printPage()
		return nil

	case "answers":
		sess, err := r.session()
		if err != nil {
			return err
		}
		r.printAnswers(sess)
		return nil

	case "load":
		if args == "" {
			return fmt.Errorf("usage: load <file>")
		}
		return r.handleLoad(args)

	case "input":
		return r.handleInput()

	case "paste":
		return r.handlePaste()

	case "copy":
		sess, err := r.session()
		if err != nil {
			return err
		}
		if err := clipboardWriteAll(console.FormatAnswers(sess.Outcomes())); err != nil {
			return fmt.Errorf("clipboard unavailable: %w", err)
		}
		fmt.Fprintln(r.out, "Answers copied to clipboard")
		return nil

	case "clear":
		sess, err := r.session()
		if err != nil {
			return err
		}
		sess.SetText("")
		r.printAnswers(sess)
		return nil

	case "exit", "quit":
		return errExit

	default:
		return fmt.Errorf("unknown command: %s. Type 'help' for available commands", command)
	}
}

// showHelp displays available commands
func (r *REPL) showHelp() {
	fmt.Fprintln(r.out, "Available commands:")
	fmt.Fprintln(r.out, "  help, ?              - Show this help message")
	fmt.Fprintln(r.out, "  pages                - List all pages")
	fmt.Fprintln(r.out, "  select <title>       - Select a page by title")
	fmt.Fprintln(r.out, "  next, prev           - Select the next or previous page")
	fmt.Fprintln(r.out, "  show                 - Show the selected page")
	fmt.Fprintln(r.out, "  answers              - Show the answers of the selected page")
	fmt.Fprintln(r.out, "  load <file>          - Use a file as puzzle input")
	fmt.Fprintln(r.out, "  input                - Type puzzle input, end with a line containing only '.'")
	fmt.Fprintln(r.out, "  paste                - Use the clipboard as puzzle input")
	fmt.Fprintln(r.out, "  copy                 - Copy the answers to the clipboard")
	fmt.Fprintln(r.out, "  clear                - Clear the puzzle input")
	fmt.Fprintln(r.out, "  exit, quit           - Exit the console")
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Keyboard shortcuts:")
	fmt.Fprintln(r.out, "  TAB                  - Auto-complete commands and page titles")
	fmt.Fprintln(r.out, "  ↑/↓ (arrow keys)     - Navigate command history")
	fmt.Fprintln(r.out, "  Ctrl+R               - Search command history")
	fmt.Fprintln(r.out, "  Ctrl+D               - Exit")
}

func (r *REPL) listPages() {
	selected := r.shell.Selected()
	for _, title := range r.shell.Catalog().Titles() {
		marker := " "
		if title == selected {
			marker = "*"
		}
		fmt.Fprintf(r.out, "%s %s\n", marker, title)
	}
}

// session returns the selected page's session.
func (r *REPL) session() (*console.Session, error) {
	sess, ok := r.shell.CurrentSession()
	if !ok {
		return nil, fmt.Errorf("no puzzle on page %q", r.shell.Selected())
	}
	return sess, nil
}

func (r *REPL) printPage() {
	switch content := r.shell.View().(type) {
	case catalog.DayContent:
		fmt.Fprintln(r.out, content.Heading())
		if content.PuzzleLink != "" {
			fmt.Fprintf(r.out, "Puzzle:   %s\n", content.PuzzleLink)
		}
		if content.CodeLink != "" {
			fmt.Fprintf(r.out, "Solution: %s\n", content.CodeLink)
		}
		if sess, ok := r.shell.CurrentSession(); ok {
			text := sess.Input.Text()
			if text == "" {
				fmt.Fprintln(r.out, "Input:    none, use load, input or paste")
			} else {
				fmt.Fprintf(r.out, "Input:    %d lines, %d bytes\n", strings.Count(text, "\n")+1, len(text))
			}
			r.printAnswers(sess)
		}
		if content.Description != "" {
			fmt.Fprintln(r.out)
			fmt.Fprintln(r.out, strings.TrimSpace(content.Description))
		}
	default:
		fmt.Fprintf(r.out, "Day 404: %q\n404 - TBC\n", r.shell.Selected())
	}
}

func (r *REPL) printAnswers(sess *console.Session) {
	fmt.Fprintln(r.out, console.FormatAnswers(sess.Outcomes()))
}

func (r *REPL) handleLoad(path string) error {
	sess, err := r.session()
	if err != nil {
		return err
	}
	if err := sess.Upload(func() (string, error) { return readFile(path) }); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Loaded %s\n", path)
	r.printAnswers(sess)
	return nil
}

func (r *REPL) handlePaste() error {
	sess, err := r.session()
	if err != nil {
		return err
	}
	text, err := clipboardReadAll()
	if err != nil {
		return fmt.Errorf("clipboard unavailable: %w", err)
	}
	if text == "" {
		return fmt.Errorf("clipboard is empty")
	}
	if err := sess.Upload(func() (string, error) { return text, nil }); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Pasted %d bytes\n", len(text))
	r.printAnswers(sess)
	return nil
}

// handleInput reads lines until the terminator or EOF and solves them.
func (r *REPL) handleInput() error {
	sess, err := r.session()
	if err != nil {
		return err
	}
	if r.readLine == nil {
		return fmt.Errorf("input needs an interactive console")
	}
	if r.rl != nil {
		r.rl.SetPrompt("... ")
		defer r.rl.SetPrompt(r.prompt())
	}

	fmt.Fprintf(r.out, "Enter input for %s, finish with a line containing only %q\n", sess.Title, inputTerminator)
	var lines []string
	for {
		line, err := r.readLine()
		if errors.Is(err, readline.ErrInterrupt) {
			return fmt.Errorf("input cancelled, %s unchanged", sess.Title)
		}
		if err != nil || line == inputTerminator {
			break
		}
		lines = append(lines, line)
	}
	sess.SetText(input.Normalize(strings.Join(lines, "\n")))
	r.printAnswers(sess)
	return nil
}
