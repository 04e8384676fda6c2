package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/typetick/typetick/internal/corpus"
	"github.com/typetick/typetick/internal/model"
	"github.com/typetick/typetick/internal/stats"
	"github.com/typetick/typetick/internal/timer"
)

// TickMsg is posted by the timer callback to trigger a re-render. The
// elapsed value itself is read from the clock at render time, so a lost
// or coalesced message only delays the header by one tick.
type TickMsg struct{}

type runState int

const (
	stateIdle runState = iota
	stateRunning
	stateFinished
	stateStopped
)

// Model implements the Bubble Tea typing UI.
type Model struct {
	corpus *corpus.Corpus
	clock  *timer.Timer
	theme  Theme
	notify func()

	width  int
	height int

	quote  corpus.Quote
	phrase []rune
	typed  []rune
	stat   stats.Stats
	state  runState

	rounds      []model.RoundResult
	showSummary bool
	summary     viewport.Model
}

// NewModel constructs a typing UI model around a loaded corpus and a
// stopped clock.
func NewModel(corp *corpus.Corpus, clock *timer.Timer, theme Theme) *Model {
	return &Model{
		corpus:  corp,
		clock:   clock,
		theme:   theme,
		summary: viewport.New(0, 0),
	}
}

// SetNotify installs the tick callback handed to the clock on every
// restart. It runs on the timer goroutine and must not block.
func (m *Model) SetNotify(fn func()) {
	m.notify = fn
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	m.restart()
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeSummary()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.stop()
		return m, tea.Quit
	case tea.KeyEsc:
		m.toggleSummary()
		return m, nil
	case tea.KeyEnter:
		if m.state == stateFinished {
			m.restart()
		}
		return m, nil
	}

	if m.showSummary {
		var cmd tea.Cmd
		m.summary, cmd = m.summary.Update(msg)
		return m, cmd
	}

	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete:
		m.handleBackspace()
	case tea.KeySpace:
		m.handleRunes([]rune{' '})
	case tea.KeyRunes:
		m.handleRunes(msg.Runes)
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.state == stateIdle || len(m.phrase) == 0 {
		return ""
	}
	header := renderHeader(m.stat, m.clock.Ticks(), m.width, m.theme)
	if m.showSummary {
		return header + "\n\n" + m.summary.View() + "\n" + m.theme.Footer.Render(summaryHint)
	}

	styled := styleRunes(m.phrase, m.typed, m.theme, m.state == stateRunning)
	body := hardWrap(styled, m.width)
	if m.height > 0 {
		row, _ := cursorPosition(len(m.typed), m.width)
		body = visibleBody(body, row, max(m.height-5, 1))
	}

	parts := []string{header, "", body, ""}
	if m.quote.Author != "" || m.quote.Title != "" {
		parts = append(parts, m.theme.Footer.Render(fmt.Sprintf("%s, %s", m.quote.Author, m.quote.Title)))
	}
	parts = append(parts, m.theme.Footer.Render(m.hint()))
	return strings.Join(parts, "\n")
}

func (m *Model) hint() string {
	if m.state == stateFinished {
		return "enter new round · esc summary · ctrl+c quit"
	}
	return "ctrl+c quit"
}

func (m *Model) restart() {
	m.clock.Stop()
	m.typed = nil
	m.stat = stats.Stats{}
	m.quote = m.corpus.Random()
	m.phrase = []rune(m.quote.Text)
	m.state = stateRunning
	m.showSummary = false
	m.clock.Start(m.notify)
}

func (m *Model) stop() {
	m.clock.Stop()
	m.state = stateStopped
}

func (m *Model) handleBackspace() {
	if m.state != stateRunning {
		return
	}
	if len(m.typed) > 0 {
		m.typed = m.typed[:len(m.typed)-1]
	}
	m.afterInput()
}

func (m *Model) handleRunes(runes []rune) {
	if m.state != stateRunning {
		return
	}
	for _, r := range runes {
		if r < ' ' || r > '~' {
			continue
		}
		m.typed = append(m.typed, r)
	}
	m.afterInput()
}

// afterInput recomputes the derived statistics from the last elapsed
// snapshot and checks the win condition.
func (m *Model) afterInput() {
	m.stat = stats.Compute(m.typed, m.clock.Ticks())
	m.checkWin()
}

// checkWin freezes the round on an exact match. The clock is stopped and
// joined; the round stays finished until an explicit restart.
func (m *Model) checkWin() {
	if string(m.typed) != string(m.phrase) {
		return
	}
	m.clock.Stop()
	m.state = stateFinished
	m.stat = stats.Compute(m.typed, m.clock.Ticks())
	m.rounds = append(m.rounds, model.RoundResult{
		Author:  m.quote.Author,
		Title:   m.quote.Title,
		Chars:   len(m.typed),
		Words:   stats.Words(m.typed),
		WPM:     m.stat.WPM,
		CPS:     m.stat.CPS,
		Ticks:   m.clock.Ticks(),
		EndedAt: time.Now(),
	})
	m.refreshSummary()
}
