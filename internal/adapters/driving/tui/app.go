package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/rtftitles/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/rtftitles/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/rtftitles/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/rtftitles/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/rtftitles/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/rtftitles/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/rtftitles/internal/core/domain"
)

// chromeHeight is the number of lines used by everything except the list:
// title, bordered input, spacer and status bar.
const chromeHeight = 7

// App is the TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for service calls.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	input  *input.SearchInput
	list   *list.RecordList
	status *status.Bar

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
// The initial scope is usually the configured search.scope setting.
func NewApp(ports *Ports, scope domain.FieldScope) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: s,
		keymap: km,
		input:  input.NewSearchInput(s, scope),
		list:   list.NewRecordList(s),
		status: status.NewBar(s, km),
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model. It starts with the full listing.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("rtftitles"),
		a.input.Init(),
		a.listAllCmd(),
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
		return a.handleKey(msg)

	case messages.SearchCompleted:
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		a.err = nil
		a.list.SetRecords(msg.Records)
		a.status.SetState(status.StateResults)
		a.status.SetResultCount(len(msg.Records))
		a.status.SetMessage(fmt.Sprintf("%s contains %q", msg.Scope.Description(), msg.Term))
		return a, nil

	case messages.RecordsLoaded:
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		a.err = nil
		a.list.SetRecords(msg.Records)
		a.status.SetState(status.StateResults)
		a.status.SetResultCount(len(msg.Records))
		a.status.SetMessage("all records")
		return a, nil
	}

	// Forward other messages (cursor blink) to the input
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	k := msg.String()

	switch {
	case keymap.Matches(k, a.keymap.Quit):
		return a, tea.Quit

	case keymap.Matches(k, a.keymap.Search):
		return a, a.searchCmd(a.input.Value(), a.input.Scope())

	case keymap.Matches(k, a.keymap.NextScope):
		scope := a.input.CycleScope()
		if strings.TrimSpace(a.input.Value()) == "" {
			return a, nil
		}
		return a, a.searchCmd(a.input.Value(), scope)

	case keymap.Matches(k, a.keymap.ShowAll):
		return a, a.listAllCmd()

	case keymap.Matches(k, a.keymap.Up), keymap.Matches(k, a.keymap.Down):
		a.list, cmd = a.list.Update(msg)
		return a, cmd
	}

	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) setError(err error) {
	a.err = err
	a.status.SetState(status.StateError)
	a.status.SetMessage(err.Error())
}

// searchCmd runs a scoped search off the update loop.
func (a *App) searchCmd(term string, scope domain.FieldScope) tea.Cmd {
	a.status.SetState(status.StateSearching)
	ctx, query := a.ctx, a.ports.Query
	return func() tea.Msg {
		records, err := query.Search(ctx, term, scope)
		return messages.SearchCompleted{Term: term, Scope: scope, Records: records, Err: err}
	}
}

// listAllCmd loads every record off the update loop.
func (a *App) listAllCmd() tea.Cmd {
	a.status.SetState(status.StateSearching)
	ctx, query := a.ctx, a.ports.Query
	return func() tea.Msg {
		records, err := query.ListAll(ctx)
		return messages.RecordsLoaded{Records: records, Err: err}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.styles.Title.Render("rtftitles"),
		a.input.View(),
		"",
		a.list.View(),
		"",
		a.status.View(),
	)
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// Query returns the current input value.
func (a *App) Query() string {
	return a.input.Value()
}

// Scope returns the active field scope.
func (a *App) Scope() domain.FieldScope {
	return a.input.Scope()
}

// Records returns the records currently shown.
func (a *App) Records() []domain.DocumentRecord {
	return a.list.Records()
}

// SelectedIndex returns the selected row.
func (a *App) SelectedIndex() int {
	return a.list.Selected()
}

// StatusState returns the status bar state.
func (a *App) StatusState() status.State {
	return a.status.State()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been sized.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.input.SetWidth(width)
	a.list.SetDimensions(width, height-chromeHeight)
	a.status.SetWidth(width)
}
