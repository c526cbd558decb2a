package app

import (
	"fmt"
	"io"

	"github.com/wahlandcase/draftrel/internal/models"

	tea "github.com/charmbracelet/bubbletea"
)

// Model is the confirmation screen shown before a release is created
type Model struct {
	request   models.ReleaseRequest
	buildFile string
	dryRun    bool

	confirmSelection int // 0=Yes, 1=No
	confirmed        bool
	done             bool

	width  int
	height int
}

// New creates a confirmation model for req
func New(req models.ReleaseRequest, buildFile string, dryRun bool) Model {
	return Model{
		request:   req,
		buildFile: buildFile,
		dryRun:    dryRun,
		width:     80,
		height:    24,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Confirmed reports whether the user chose to create the release
func (m Model) Confirmed() bool {
	return m.confirmed
}

// Confirm shows the confirmation screen and blocks until the user answers
func Confirm(req models.ReleaseRequest, buildFile string, dryRun bool, in io.Reader, out io.Writer) (bool, error) {
	p := tea.NewProgram(New(req, buildFile, dryRun), tea.WithInput(in), tea.WithOutput(out))

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("error running program: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return false, fmt.Errorf("unexpected model type %T", final)
	}
	return m.Confirmed(), nil
}
