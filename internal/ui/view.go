package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskzord/internal/service"
)

// formHeight is the number of rows above the list: switch, banner, two
// bordered inputs, the button and the gaps between them.
const formHeight = 13

const (
	switchOff  = "○──"
	switchOn   = "──●"
	confirmBtn = "✔"
	deleteBtn  = "✖"
	helpLine   = "tab foco • espaço alterna • c confirma • d apaga • ctrl+c sai"
)

// View implements tea.Model.
func (m *Model) View() string {
	s := m.styles
	sections := []string{
		m.viewSwitch(),
		s.banner.Render(bannerText),
		"",
		m.viewInput(m.title.View(), m.focus == focusTitle),
		m.viewInput(m.desc.View(), m.focus == focusDescription),
		m.viewButton(),
		"",
		m.list.View(),
	}
	if m.status != "" {
		sections = append(sections, s.delete.Render(m.status))
	}
	sections = append(sections, s.muted.Render(helpLine))

	screen := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.notice != "" {
		screen = lipgloss.JoinVertical(lipgloss.Left, s.notice.Render(m.notice+"\n\nOK"), screen)
	}
	return s.body.Render(screen)
}

func (m *Model) viewSwitch() string {
	label := switchOff
	if m.dark {
		label = switchOn
	}
	if m.focus == focusSwitch {
		return m.styles.focused.Render(label)
	}
	return m.styles.text.Render(label)
}

func (m *Model) viewInput(field string, focused bool) string {
	if focused {
		return m.styles.inputFocused.Render(field)
	}
	return m.styles.input.Render(field)
}

func (m *Model) viewButton() string {
	if m.focus == focusSubmit {
		return m.styles.buttonFocused.Render(submitLabel)
	}
	return m.styles.button.Render(submitLabel)
}

// renderList rebuilds the viewport content and keeps the cursor card in view.
func (m *Model) renderList() {
	if len(m.tasks) == 0 {
		m.list.SetContent("")
		m.list.SetYOffset(0)
		return
	}

	var b strings.Builder
	top, bottom := 0, 0
	for i, t := range m.tasks {
		card := m.renderCard(t, i == m.cursor && m.focus == focusList)
		h := lipgloss.Height(card)
		if i == m.cursor {
			bottom = top + h
		} else if i < m.cursor {
			top += h
		}
		b.WriteString(card)
		if i < len(m.tasks)-1 {
			b.WriteByte('\n')
		}
	}
	m.list.SetContent(b.String())

	switch {
	case top < m.list.YOffset:
		m.list.SetYOffset(top)
	case bottom > m.list.YOffset+m.list.Height:
		m.list.SetYOffset(bottom - m.list.Height)
	}
}

func (m *Model) renderCard(t service.TaskView, selected bool) string {
	s := m.styles
	buttons := s.confirm.Render(confirmBtn) + " " + s.delete.Render(deleteBtn)

	textWidth := m.width - 4 - lipgloss.Width(buttons) - 1
	if textWidth < 1 {
		textWidth = 1
	}
	text := s.text
	if selected {
		text = s.focused
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		text.Width(textWidth).Render(t.Title),
		s.text.Width(textWidth).Render(t.Description),
	)
	row := lipgloss.JoinHorizontal(lipgloss.Center, body, " ", buttons)

	card := s.card
	if t.Confirmed {
		card = s.cardConfirmed
	}
	if selected {
		card = card.BorderStyle(lipgloss.ThickBorder())
	}
	return card.Render(row)
}
