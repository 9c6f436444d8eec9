package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/payslip-drive/internal/adapters/driving/tui/components/activity"
	"github.com/custodia-labs/payslip-drive/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/payslip-drive/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/payslip-drive/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/payslip-drive/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/payslip-drive/internal/adapters/driving/tui/styles"
)

// rows taken by everything except the activity log.
const chromeHeight = 11

// App is the TUI model. Each stage runs inside a tea.Cmd and reports back
// with a message; the triggering action is disabled until it does.
type App struct {
	ports *Ports
	ctx   context.Context

	styles  *styles.Styles
	keys    *keymap.KeyMap
	input   *input.PathInput
	log     *activity.Log
	bar     *status.Bar
	spinner spinner.Model

	state     status.State
	splitDone bool
	pending   int

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the TUI application.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:   ports,
		ctx:     context.Background(),
		styles:  s,
		keys:    km,
		input:   input.NewPathInput(s),
		log:     activity.NewLog(s),
		bar:     status.NewBar(s, km),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(s.Spinner)),
		state:   status.StateReady,
	}, nil
}

// WithContext sets the context passed to the services.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// WithPath pre-fills the path field.
func (a *App) WithPath(path string) *App {
	a.input.SetValue(path)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.input.Init(),
		tea.SetWindowTitle("Payslip Drive"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case spinner.TickMsg:
		if !a.state.Busy() {
			return a, nil
		}
		a.spinner, cmd = a.spinner.Update(msg)
		a.bar.SetSpinner(a.spinner.View())
		return a, cmd

	case messages.SplitFinished:
		return a, a.finishSplit(msg)

	case messages.PendingCounted:
		a.askUpload(msg)
		return a, nil

	case messages.UploadFinished:
		return a, a.finishUpload(msg)
	}

	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, a.keys.Quit) {
		return tea.Quit
	}

	switch {
	case a.state == status.StateConfirm:
		switch {
		case key.Matches(msg, a.keys.Confirm):
			return a.startUpload()
		case key.Matches(msg, a.keys.Deny):
			a.log.Append(activity.LevelWarning, "Upload cancelled.")
			a.setState(status.StateReady)
			return a.input.Focus()
		}
		return nil

	case a.state.Busy():
		a.scroll(msg)
		return nil
	}

	switch {
	case key.Matches(msg, a.keys.Split):
		return a.startSplit()
	case key.Matches(msg, a.keys.Upload):
		return a.requestUpload()
	case key.Matches(msg, a.keys.ClearLog):
		a.log.Clear()
		return nil
	case a.scroll(msg):
		return nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return cmd
}

func (a *App) scroll(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, a.keys.ScrollUp):
		a.log.ScrollUp()
	case key.Matches(msg, a.keys.ScrollDown):
		a.log.ScrollDown()
	default:
		return false
	}
	return true
}

func (a *App) startSplit() tea.Cmd {
	path := a.input.Path()
	if path == "" {
		a.fail("Choose a PDF file first.")
		return nil
	}

	a.setState(status.StateSplitting)
	a.input.Blur()
	a.log.Append(activity.LevelInfo, fmt.Sprintf("Splitting %s...", path))

	splitter, ctx := a.ports.Splitter, a.ctx
	return tea.Batch(a.spinner.Tick, func() tea.Msg {
		report, err := splitter.Split(ctx, path)
		return messages.SplitFinished{Path: path, Report: report, Err: err}
	})
}

func (a *App) finishSplit(msg messages.SplitFinished) tea.Cmd {
	a.setState(status.StateReady)
	if msg.Report != nil {
		a.log.Append(level(msg.Succeeded()), msg.Report.Summary())
	} else if msg.Err != nil {
		a.log.Append(activity.LevelError, msg.Err.Error())
	}

	if msg.Succeeded() {
		a.splitDone = true
	} else {
		a.fail("split failed")
	}
	return a.input.Focus()
}

func (a *App) requestUpload() tea.Cmd {
	if !a.splitDone {
		a.fail("Split a document before uploading.")
		return nil
	}
	uploader := a.ports.Uploader
	return func() tea.Msg {
		names, err := uploader.Pending()
		return messages.PendingCounted{Count: len(names), Err: err}
	}
}

func (a *App) askUpload(msg messages.PendingCounted) {
	if a.state.Busy() {
		return
	}
	if msg.Err != nil {
		a.log.Append(activity.LevelError, msg.Err.Error())
		a.fail("cannot list payslips")
		return
	}
	a.pending = msg.Count
	a.input.Blur()
	a.setState(status.StateConfirm)
	a.bar.SetMessage(fmt.Sprintf("Upload %d files to Google Drive? (y/n)", msg.Count))
}

func (a *App) startUpload() tea.Cmd {
	a.setState(status.StateUploading)
	a.log.Append(activity.LevelInfo, fmt.Sprintf("Uploading %d files...", a.pending))

	uploader, ctx := a.ports.Uploader, a.ctx
	return tea.Batch(a.spinner.Tick, func() tea.Msg {
		report, err := uploader.Upload(ctx)
		return messages.UploadFinished{Report: report, Err: err}
	})
}

func (a *App) finishUpload(msg messages.UploadFinished) tea.Cmd {
	a.setState(status.StateReady)
	if msg.Report != nil {
		a.log.Append(level(msg.Succeeded()), msg.Report.Summary())
	} else if msg.Err != nil {
		a.log.Append(activity.LevelError, msg.Err.Error())
	}
	if !msg.Succeeded() {
		a.fail("upload failed")
	}
	return a.input.Focus()
}

func (a *App) setState(s status.State) {
	a.state = s
	a.bar.SetState(s)
}

// fail puts the model and the status bar in the error state with message.
func (a *App) fail(message string) {
	a.state = status.StateError
	a.bar.SetState(status.StateError)
	a.bar.SetMessage(message)
}

func level(ok bool) activity.Level {
	if ok {
		return activity.LevelSuccess
	}
	return activity.LevelError
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		a.styles.Title.Render("Payslip Drive"),
		a.styles.Muted.Render("Split a payroll PDF into one payslip per employee, then upload them to Google Drive."),
	)

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		a.button("Split", !a.state.Busy() && a.state != status.StateConfirm),
		a.button("Upload", a.UploadEnabled()),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		a.input.View(),
		"",
		buttons,
		"",
		a.log.View(),
		a.bar.View(),
	)
}

func (a *App) button(label string, enabled bool) string {
	if enabled {
		return a.styles.Button.Render(label)
	}
	return a.styles.ButtonDisabled.Render(label)
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.input.SetWidth(width)
	a.bar.SetWidth(width)
	a.log.SetSize(width, height-chromeHeight)
}

// State returns what the application is doing.
func (a *App) State() status.State {
	return a.state
}

// UploadEnabled reports whether the Upload action can run.
func (a *App) UploadEnabled() bool {
	return a.splitDone && !a.state.Busy() && a.state != status.StateConfirm
}

// LogContent returns the activity log text.
func (a *App) LogContent() string {
	return a.log.Content()
}

// StatusMessage returns the status bar message.
func (a *App) StatusMessage() string {
	return a.bar.Message()
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}
