package model

import (
	"context"
	"os"

	"aocctl/internal/catalog"
	"aocctl/internal/console"
	"aocctl/internal/solve"
	"aocctl/pkg/logging"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options configures InitializeModel.
type Options struct {
	Year        int
	DefaultPage string
	DarkMode    bool
	// StartDir is where the upload picker opens; the working directory when
	// empty.
	StartDir string
}

// InitializeModel builds the model and the console shell it drives. Solves
// triggered by input changes are dispatched as commands.
func InitializeModel(
	cat *catalog.Catalog,
	engine solve.Engine,
	opts Options,
	logChannel <-chan logging.LogEntry,
) *Model {
	editor := textarea.New()
	editor.Placeholder = "Type or paste your puzzle input..."
	editor.ShowLineNumbers = true
	editor.CharLimit = 0
	editor.MaxHeight = MaxEditorLines

	picker := filepicker.New()
	picker.CurrentDirectory = opts.StartDir
	if picker.CurrentDirectory == "" {
		if wd, err := os.Getwd(); err == nil {
			picker.CurrentDirectory = wd
		}
	}
	picker.FileAllowed = true
	picker.DirAllowed = false
	picker.AutoHeight = false

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

	ctx, cancel := context.WithCancel(context.Background())

	m := &Model{
		CurrentAppMode: ModeMain,
		LastAppMode:    ModeMain,
		DarkMode:       opts.DarkMode,
		Year:           opts.Year,
		Editor:         editor,
		Picker:         picker,
		PageViewport:   viewport.New(0, 0),
		LogViewport:    viewport.New(0, 0),
		Spinner:        s,
		Help:           help.New(),
		Keys:           DefaultKeyMap(),
		ActivityLog:    []string{},
		LogChannel:     logChannel,
		ctx:            ctx,
		cancel:         cancel,
	}
	m.Shell = console.New(cat, engine,
		console.WithDispatcher(m.Dispatch),
		console.WithDefaultPage(opts.DefaultPage),
	)
	return m
}

// Init returns the startup commands: the log listener, the spinner and the
// picker's first directory read.
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.LogChannel != nil {
		cmds = append(cmds, ListenForLogEntriesCmd(m.LogChannel))
	}
	cmds = append(cmds, m.Spinner.Tick, m.Picker.Init())
	return tea.Batch(cmds...)
}
