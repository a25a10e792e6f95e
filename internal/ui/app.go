package ui

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/holocron/internal/labels"
	"github.com/five82/holocron/internal/paging"
	"github.com/five82/holocron/internal/prefs"
	"github.com/five82/holocron/internal/state"
	"github.com/five82/holocron/internal/swapi"
)

var errNoRepository = errors.New("no repository configured")

// View represents the current active view.
type View int

const (
	ViewCollection View = iota
	ViewDetail
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Repository swapi.Repository
	Collection *state.Collection
	Detail     *state.Detail
	Labels     labels.Set
	ThemeName  string
	PrefsPath  string
	Logger     *slog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	repo       swapi.Repository
	collection *state.Collection
	detail     *state.Detail
	prefsPath  string
	log        *slog.Logger

	// UI state
	theme       Theme
	labels      labels.Set
	keys        keyMap
	currentView View
	width       int
	height      int
	showHelp    bool

	// Collection widgets
	search  textinput.Model
	table   table.Model
	pager   paginator.Model
	spinner spinner.Model

	// Detail widgets
	fields   []textinput.Model
	fieldIdx int
	notice   string

	help help.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	coll := opts.Collection
	if coll == nil {
		coll = state.NewCollection()
	}
	detail := opts.Detail
	if detail == nil {
		detail = state.NewDetail()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	set := opts.Labels
	if set.Fields == nil {
		set = labels.Supported[0]
	}

	m := Model{
		ctx:         ctx,
		repo:        opts.Repository,
		collection:  coll,
		detail:      detail,
		prefsPath:   opts.PrefsPath,
		log:         logger.With("component", "ui"),
		theme:       GetTheme(opts.ThemeName),
		labels:      set,
		keys:        newKeyMap(set),
		currentView: ViewCollection,
		help:        help.New(),
	}

	m.search = textinput.New()
	m.search.CharLimit = 64
	m.spinner = spinner.New(spinner.WithSpinner(spinner.Dot))
	m.pager = paginator.New()
	m.pager.Type = paginator.Dots
	m.table = table.New(table.WithFocused(true), table.WithHeight(paging.DefaultPerPage+2))
	m.fields = make([]textinput.Model, len(swapi.EditableFields))
	for i := range m.fields {
		m.fields[i] = textinput.New()
		m.fields[i].CharLimit = 64
	}
	m.applyLabels()
	m.applyTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.requestList(m.collection.Request()),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeTable()
		return m, nil

	case listLoadedMsg:
		if !m.collection.Apply(state.ListOutcome(msg)) {
			m.log.Debug("stale list outcome discarded", slog.Uint64("seq", msg.Seq))
			return m, nil
		}
		if msg.Err != nil {
			m.log.Warn("list fetch failed", slog.Any("error", msg.Err))
		}
		m.syncTable()
		if m.height > 0 {
			m.resizeTable()
		}
		return m, nil

	case detailLoadedMsg:
		if !m.detail.Apply(state.DetailOutcome(msg)) {
			m.log.Debug("stale detail outcome discarded", slog.Uint64("seq", msg.Seq))
			return m, nil
		}
		if msg.Err != nil {
			m.log.Warn("detail fetch failed", slog.Any("error", msg.Err))
		}
		m.syncFields()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}
	switch m.currentView {
	case ViewDetail:
		return m.renderDetail()
	default:
		return m.renderCollection()
	}
}

// handleKey routes keyboard input. Text inputs get first refusal so typing
// "q" into the search bar does not quit.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.search.Focused() {
		return m.handleSearchKey(msg)
	}
	if m.currentView == ViewDetail && m.detail.Snapshot().IsEditing {
		return m.handleEditKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyTheme()
		m.savePrefs()
		return m, nil
	case key.Matches(msg, m.keys.CycleLanguage):
		m.labels = labels.Next(m.labels)
		m.applyLabels()
		m.syncTable()
		m.savePrefs()
		return m, nil
	}

	switch m.currentView {
	case ViewDetail:
		return m.handleDetailKey(msg)
	default:
		return m.handleCollectionKey(msg)
	}
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, Language: m.labels.Code()}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.log.Warn("save prefs failed", slog.Any("error", err))
	}
}

// applyLabels pushes the current label set into widgets that cache text.
func (m *Model) applyLabels() {
	m.keys = newKeyMap(m.labels)
	m.search.Prompt = m.labels.SearchPrompt
	m.search.Placeholder = m.labels.SearchPlaceholder
	for i, field := range swapi.EditableFields {
		m.fields[i].Prompt = ""
		m.fields[i].Placeholder = m.labels.Field(field)
	}
	m.table.SetColumns(m.columns())
}

func (m *Model) applyTheme() {
	m.table.SetStyles(m.theme.TableStyles())
	styles := m.theme.Styles()
	m.spinner.Style = styles.AccentText
	m.pager.ActiveDot = styles.AccentText.Render("•")
	m.pager.InactiveDot = styles.FaintText.Render("•")
}

// Messages

type listLoadedMsg state.ListOutcome

type detailLoadedMsg state.DetailOutcome

// Commands

// requestList performs a ticket the collection already issued.
func (m Model) requestList(t state.ListTicket) tea.Cmd {
	ctx, repo, logger := m.ctx, m.repo, m.log
	logger.Debug("list requested", slog.Uint64("seq", t.Seq), slog.Int("page", t.Page), slog.String("search", t.Search))
	return func() tea.Msg {
		if repo == nil {
			return listLoadedMsg{Seq: t.Seq, Err: errNoRepository}
		}
		return listLoadedMsg(state.FetchList(ctx, repo, t))
	}
}

// requestDetail performs a ticket the detail container already issued.
func (m Model) requestDetail(t state.DetailTicket) tea.Cmd {
	ctx, repo, logger := m.ctx, m.repo, m.log
	logger.Debug("detail requested", slog.Uint64("seq", t.Seq), slog.String("id", t.ID))
	return func() tea.Msg {
		if repo == nil {
			return detailLoadedMsg{Seq: t.Seq, Err: errNoRepository}
		}
		return detailLoadedMsg(state.FetchDetail(ctx, repo, t))
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
