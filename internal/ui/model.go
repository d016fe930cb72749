// Package ui implements the single task screen on top of Bubble Tea.
//
// The screen is a form (title, description, submit) above a scrollable
// list of task cards, with a dark mode switch at the top. It holds no task
// state of its own: every change goes through service.Service and the
// screen re-renders when the store reports an event.
package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"taskzord/internal/config"
	"taskzord/internal/service"
	"taskzord/internal/store"
)

const (
	titlePlaceholder       = "Tarefa"
	descriptionPlaceholder = "Descrição"
	submitLabel            = "Adicionar"
	noticeText             = "Preencha todos os campos"
	failureText            = "Ocorreu um erro"
	bannerText             = "TaskZord"
)

type focus int

const (
	focusSwitch focus = iota
	focusTitle
	focusDescription
	focusSubmit
	focusList
	focusCount
)

// Model is the Bubble Tea model of the task screen.
type Model struct {
	ctx         context.Context
	svc         service.Service
	events      *eventQueue
	unsubscribe func()

	settings config.Settings
	width    int
	dark     bool
	styles   styles

	focus focus
	title textinput.Model
	desc  textinput.Model
	list  viewport.Model

	tasks  []service.TaskView
	cursor int

	// notice is the blocking validation message; empty when hidden.
	notice string
	status string
}

// New builds the screen over svc. The model subscribes to store events
// until Close is called.
func New(ctx context.Context, svc service.Service, settings config.Settings, dark bool) *Model {
	m := &Model{
		ctx:      ctx,
		svc:      svc,
		events:   &eventQueue{},
		settings: settings,
		width:    settings.Width,
		dark:     dark,
		title:    newInput(titlePlaceholder),
		desc:     newInput(descriptionPlaceholder),
		list:     viewport.New(settings.Width, settings.ListHeight),
	}
	m.unsubscribe = svc.Subscribe(m.events.push)
	m.applyTheme()
	m.setFocus(focusTitle)
	m.refresh()
	return m
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 256
	return ti
}

// Close stops listening to store events.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	default:
		var c1, c2 tea.Cmd
		m.title, c1 = m.title.Update(msg)
		m.desc, c2 = m.desc.Update(msg)
		cmd = tea.Batch(c1, c2)
	}

	if focusCmd := m.applyEvents(); focusCmd != nil {
		cmd = tea.Batch(cmd, focusCmd)
	}
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		return tea.Quit
	}

	// The notice blocks the screen until acknowledged.
	if m.notice != "" {
		switch key {
		case "enter", "esc", " ":
			m.notice = ""
		}
		return nil
	}

	switch key {
	case "tab":
		return m.setFocus((m.focus + 1) % focusCount)
	case "shift+tab":
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	}

	switch m.focus {
	case focusSwitch:
		switch key {
		case " ", "enter":
			m.toggleDark()
		case "q":
			return tea.Quit
		}
	case focusTitle:
		if key == "enter" {
			return m.setFocus(focusDescription)
		}
		var cmd tea.Cmd
		m.title, cmd = m.title.Update(msg)
		return cmd
	case focusDescription:
		if key == "enter" {
			m.submit()
			return nil
		}
		var cmd tea.Cmd
		m.desc, cmd = m.desc.Update(msg)
		return cmd
	case focusSubmit:
		switch key {
		case " ", "enter":
			m.submit()
		case "q":
			return tea.Quit
		}
	case focusList:
		return m.handleListKey(key)
	}
	return nil
}

func (m *Model) handleListKey(key string) tea.Cmd {
	switch key {
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "pgup":
		m.list.SetYOffset(m.list.YOffset - m.list.Height/2)
	case "pgdown":
		m.list.SetYOffset(m.list.YOffset + m.list.Height/2)
	case "c":
		if t, ok := m.selected(); ok {
			m.report(m.svc.ConfirmTask(m.ctx, t.ID))
		}
	case "d", "delete", "backspace":
		if t, ok := m.selected(); ok {
			m.report(m.svc.DeleteTask(m.ctx, t.ID))
		}
	case "q":
		return tea.Quit
	}
	return nil
}

// submit sends the form to the store. Field reset happens on FormReset.
func (m *Model) submit() {
	_, err := m.svc.CreateTask(m.ctx, m.title.Value(), m.desc.Value())
	if errors.Is(err, store.ErrValidation) {
		m.notice = noticeText
		return
	}
	m.report(err)
}

func (m *Model) report(err error) {
	if err != nil {
		m.status = failureText + ": " + err.Error()
		return
	}
	m.status = ""
}

// applyEvents drains pending store events and re-renders if any arrived.
func (m *Model) applyEvents() tea.Cmd {
	events := m.events.drain()
	if len(events) == 0 {
		return nil
	}

	var cmd tea.Cmd
	created := 0
	for _, e := range events {
		switch e.Kind {
		case store.TaskCreated:
			created = e.Task.ID
		case store.FormReset:
			m.title.Reset()
			m.desc.Reset()
			cmd = m.setFocus(focusSubmit)
		}
	}

	m.refresh()
	if created != 0 {
		for i, t := range m.tasks {
			if t.ID == created {
				m.cursor = i
			}
		}
		m.renderList()
	}
	return cmd
}

// refresh reloads the task list from the service.
func (m *Model) refresh() {
	tasks, err := m.svc.ListTasks(m.ctx)
	if err != nil {
		m.status = failureText + ": " + err.Error()
		return
	}
	m.tasks = tasks
	m.cursor = clampCursor(m.cursor, len(m.tasks))
	m.renderList()
}

// setFocus moves keyboard focus. Text fields are only focused while
// selected so stray keys never reach them.
func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.title.Blur()
	m.desc.Blur()
	m.renderList()
	switch f {
	case focusTitle:
		return m.title.Focus()
	case focusDescription:
		return m.desc.Focus()
	}
	return nil
}

func (m *Model) moveCursor(delta int) {
	m.cursor = clampCursor(m.cursor+delta, len(m.tasks))
	m.renderList()
}

func (m *Model) selected() (service.TaskView, bool) {
	if len(m.tasks) == 0 {
		return service.TaskView{}, false
	}
	return m.tasks[m.cursor], true
}

func (m *Model) toggleDark() {
	m.dark = !m.dark
	m.applyTheme()
}

func (m *Model) applyTheme() {
	theme := ThemeLight
	if m.dark {
		theme = ThemeDark
	}
	m.styles = newStyles(theme, m.width)
	for _, ti := range []*textinput.Model{&m.title, &m.desc} {
		ti.PlaceholderStyle = m.styles.muted
		ti.TextStyle = m.styles.text
		ti.Width = m.width - 6
	}
	m.renderList()
}

func (m *Model) resize(width, height int) {
	m.width = m.settings.Width
	if width > 0 && width < m.width {
		m.width = width
	}
	m.list.Width = m.width
	m.list.Height = m.settings.ListHeight
	if avail := height - formHeight; avail > 0 && avail < m.list.Height {
		m.list.Height = avail
	}
	m.applyTheme()
}

// Dark reports whether the dark palette is active.
func (m *Model) Dark() bool { return m.dark }

func clampCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
