// Package board implements the teacher-facing leaderboard component:
// an Elm-style model that loads student records for the teacher's
// class-sections, applies the filter/sort pipeline, and renders the
// derived view as ranked, badge-colored cards.
package board

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/classboard/pkg/roster"
)

// fetchFailedMessage is the single user-facing fetch error. The loader
// reports it once per failure and never retries on its own.
const fetchFailedMessage = "Failed to load student data"

// Fetcher retrieves student records for a set of class-sections.
type Fetcher interface {
	QueryStudents(ctx context.Context, sections []string) ([]roster.Student, error)
}

// Notifier receives user-facing error messages, fire-and-forget.
type Notifier func(message string)

// FetchEvent describes one completed fetch, for diagnostics.
type FetchEvent struct {
	Duration time.Duration
	Records  int
	Err      error
}

// Options configures a leaderboard model.
type Options struct {
	Fetcher   Fetcher
	TeacherID string   // shown in the title bar; does not constrain the query
	Sections  []string // class-sections this teacher may view
	Theme     *BoardTheme
	Notify    Notifier         // optional external notification sink
	Observe   func(FetchEvent) // optional diagnostics hook
}

// filterField identifies which filter dimension the input bar edits.
type filterField int

const (
	fieldNone filterField = iota
	fieldNamePrefix
	fieldNameSuffix
	fieldMinPercent
	fieldMaxPercent
)

func (f filterField) label() string {
	switch f {
	case fieldNamePrefix:
		return "name prefix"
	case fieldNameSuffix:
		return "name suffix"
	case fieldMinPercent:
		return "min %"
	case fieldMaxPercent:
		return "max %"
	default:
		return ""
	}
}

type studentsMsg struct {
	seq     int
	records []roster.Student
	elapsed time.Duration
}

type fetchErrMsg struct {
	seq     int
	err     error
	elapsed time.Duration
}

// Model is the leaderboard component state. The loaded record set, the
// filter set, and the sort config are its only pipeline inputs; the
// derived view is rebuilt exactly when one of them changes.
type Model struct {
	ctx     context.Context
	fetcher Fetcher
	notify  Notifier
	observe func(FetchEvent)
	theme   *CompiledTheme

	teacherID string
	sections  []string

	students []roster.Student
	filters  roster.FilterSet
	sortCfg  roster.SortConfig
	view     []roster.Student

	loading  bool
	fetchSeq int // guards against a stale fetch overwriting fresher state
	notice   string

	spinner  spinner.Model
	input    textinput.Model
	editing  filterField
	classIdx int // index into sections for the class filter; -1 = all

	width int
}

// New creates a leaderboard model. The initial fetch command is issued
// by Init; with an empty section list no fetch ever happens and the
// derived view stays empty.
func New(ctx context.Context, opts Options) Model {
	theme := opts.Theme
	if theme == nil {
		theme = DefaultBoardTheme()
	}
	compiled := theme.Compile()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))

	ti := textinput.New()
	ti.CharLimit = 32
	ti.Width = 24

	return Model{
		ctx:       ctx,
		fetcher:   opts.Fetcher,
		notify:    opts.Notify,
		observe:   opts.Observe,
		theme:     compiled,
		teacherID: opts.TeacherID,
		sections:  opts.Sections,
		sortCfg:   roster.DefaultSort(),
		loading:   len(opts.Sections) > 0,
		fetchSeq:  1,
		spinner:   sp,
		input:     ti,
		classIdx:  -1,
		width:     80,
	}
}

// Init issues the first fetch. An empty class-section set skips the
// fetch entirely and resolves loading without error.
func (m Model) Init() tea.Cmd {
	if len(m.sections) == 0 {
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.fetchCmd(m.fetchSeq))
}

// fetchCmd queries the store asynchronously. The sequence number pins
// the result to the fetch that requested it, so overlapping fetches
// cannot race: only the most recently issued one may land.
func (m Model) fetchCmd(seq int) tea.Cmd {
	ctx, fetcher, sections := m.ctx, m.fetcher, m.sections
	return func() tea.Msg {
		started := time.Now()
		records, err := fetcher.QueryStudents(ctx, sections)
		if err != nil {
			return fetchErrMsg{seq: seq, err: err, elapsed: time.Since(started)}
		}
		return studentsMsg{seq: seq, records: records, elapsed: time.Since(started)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case studentsMsg:
		if msg.seq != m.fetchSeq {
			return m, nil // stale fetch, drop
		}
		m.loading = false
		m.students = msg.records
		m.emit(FetchEvent{Duration: msg.elapsed, Records: len(msg.records)})
		m.rebuildView()
		return m, nil

	case fetchErrMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}
		// Prior records stay untouched; only the loading flag clears.
		m.loading = false
		m.notice = fetchFailedMessage
		if m.notify != nil {
			m.notify(fetchFailedMessage)
		}
		m.emit(FetchEvent{Duration: msg.elapsed, Err: msg.err})
		return m, nil

	case tea.KeyMsg:
		if m.editing != fieldNone {
			return m.updateFilterInput(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "s":
		m.sortCfg = roster.SortConfig{Key: nextSortKey(m.sortCfg.Key), Descending: m.sortCfg.Descending}
		m.rebuildView()
	case "d":
		m.sortCfg = roster.SortConfig{Key: m.sortCfg.Key, Descending: !m.sortCfg.Descending}
		m.rebuildView()
	case "c":
		m.cycleClassFilter()
		m.rebuildView()
	case "x":
		m.filters = roster.FilterSet{}
		m.classIdx = -1
		m.rebuildView()
	case "r":
		m.fetchSeq++
		m.loading = true
		m.notice = ""
		return m, tea.Batch(m.spinner.Tick, m.fetchCmd(m.fetchSeq))
	case "/":
		return m.startFilterInput(fieldNamePrefix)
	case "\\":
		return m.startFilterInput(fieldNameSuffix)
	case "[":
		return m.startFilterInput(fieldMinPercent)
	case "]":
		return m.startFilterInput(fieldMaxPercent)
	}
	return m, nil
}

func (m Model) startFilterInput(field filterField) (tea.Model, tea.Cmd) {
	m.editing = field
	m.input.Placeholder = field.label()
	m.input.Reset()
	m.input.Focus()
	return m, textinput.Blink
}

func (m Model) updateFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		m.applyFilterInput()
		return m, nil
	case "esc":
		m.editing = fieldNone
		m.input.Blur()
		m.input.Reset()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// applyFilterInput merges the edited field into the filter set. An
// empty value clears that dimension; unspecified dimensions retain
// their prior values.
func (m *Model) applyFilterInput() {
	value := strings.TrimSpace(m.input.Value())
	switch m.editing {
	case fieldNamePrefix:
		if value == "" {
			m.filters.NamePrefix = nil
		} else {
			m.filters = m.filters.Merge(roster.FilterSet{NamePrefix: roster.String(strings.ToUpper(value))})
		}
	case fieldNameSuffix:
		if value == "" {
			m.filters.NameSuffix = nil
		} else {
			m.filters = m.filters.Merge(roster.FilterSet{NameSuffix: roster.String(strings.ToUpper(value))})
		}
	case fieldMinPercent, fieldMaxPercent:
		m.applyBound(value)
	}
	m.editing = fieldNone
	m.input.Blur()
	m.input.Reset()
	m.rebuildView()
}

func (m *Model) applyBound(value string) {
	unset := value == ""
	var bound float64
	if !unset {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			m.notice = "Not a percentage: " + value
			return
		}
		bound = parsed
	}
	if m.editing == fieldMinPercent {
		if unset {
			m.filters.MinPercentage = nil
		} else {
			m.filters = m.filters.Merge(roster.FilterSet{MinPercentage: roster.Float(bound)})
		}
		return
	}
	if unset {
		m.filters.MaxPercentage = nil
	} else {
		m.filters = m.filters.Merge(roster.FilterSet{MaxPercentage: roster.Float(bound)})
	}
}

// cycleClassFilter steps all → sections[0] → ... → sections[n-1] → all.
func (m *Model) cycleClassFilter() {
	m.classIdx++
	if m.classIdx >= len(m.sections) {
		m.classIdx = -1
	}
	if m.classIdx < 0 {
		m.filters.ClassSection = nil
		return
	}
	m.filters = m.filters.Merge(roster.FilterSet{ClassSection: roster.String(m.sections[m.classIdx])})
}

// rebuildView recomputes the derived view. Called only when one of the
// pipeline's three inputs changed; ticks and resizes reuse the cached
// view.
func (m *Model) rebuildView() {
	m.view = roster.BuildView(m.students, m.filters, m.sortCfg)
}

func (m Model) emit(ev FetchEvent) {
	if m.observe != nil {
		m.observe(ev)
	}
}

func nextSortKey(key roster.SortKey) roster.SortKey {
	switch key {
	case roster.SortByPercentage:
		return roster.SortByName
	case roster.SortByName:
		return roster.SortByAdmission
	default:
		return roster.SortByPercentage
	}
}

// View accessors for callers and tests.

// DerivedView returns the current filtered-and-sorted view.
func (m Model) DerivedView() []roster.Student { return m.view }

// Loading reports whether a fetch is in flight.
func (m Model) Loading() bool { return m.loading }

// Notice returns the current user-facing notice, empty when none.
func (m Model) Notice() string { return m.notice }

// Filters returns the active filter set.
func (m Model) Filters() roster.FilterSet { return m.filters }

// Sort returns the active sort configuration.
func (m Model) Sort() roster.SortConfig { return m.sortCfg }
