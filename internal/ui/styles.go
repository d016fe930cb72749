package ui

import "github.com/charmbracelet/lipgloss"

// Theme is the palette of one display mode.
type Theme struct {
	Background  lipgloss.Color
	Text        lipgloss.Color
	Placeholder lipgloss.Color
	Border      lipgloss.Color
}

var (
	// ThemeLight is the default palette: dark text on white.
	ThemeLight = Theme{
		Background:  lipgloss.Color("#ffffff"),
		Text:        lipgloss.Color("#000000"),
		Placeholder: lipgloss.Color("#cccccc"),
		Border:      lipgloss.Color("#cccccc"),
	}

	// ThemeDark is light text on near-black.
	ThemeDark = Theme{
		Background:  lipgloss.Color("#121212"),
		Text:        lipgloss.Color("#ffffff"),
		Placeholder: lipgloss.Color("#999999"),
		Border:      lipgloss.Color("#cccccc"),
	}
)

const (
	colorConfirm = lipgloss.Color("#008000")
	colorDelete  = lipgloss.Color("#ff0000")
	colorButton  = lipgloss.Color("#6750a4")
	colorWhite   = lipgloss.Color("#ffffff")
)

type styles struct {
	body          lipgloss.Style
	text          lipgloss.Style
	muted         lipgloss.Style
	banner        lipgloss.Style
	input         lipgloss.Style
	inputFocused  lipgloss.Style
	button        lipgloss.Style
	buttonFocused lipgloss.Style
	card          lipgloss.Style
	cardConfirmed lipgloss.Style
	confirm       lipgloss.Style
	delete        lipgloss.Style
	notice        lipgloss.Style
	focused       lipgloss.Style
}

func newStyles(t Theme, width int) styles {
	text := lipgloss.NewStyle().Foreground(t.Text)
	input := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Width(width - 2)
	card := lipgloss.NewStyle().
		Border(cardBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Width(width - 2)
	button := lipgloss.NewStyle().
		Foreground(colorWhite).
		Background(colorButton).
		Padding(0, 2).
		MarginLeft(max(0, (width-lipgloss.Width(submitLabel)-4)/2))

	return styles{
		body:          lipgloss.NewStyle().Background(t.Background).Foreground(t.Text).Width(width),
		text:          text,
		muted:         lipgloss.NewStyle().Foreground(t.Placeholder),
		banner:        text.Bold(true).Width(width).Align(lipgloss.Center),
		input:         input,
		inputFocused:  input.BorderForeground(t.Text),
		button:        button,
		buttonFocused: button.Bold(true).Underline(true),
		card:          card,
		cardConfirmed: card.BorderForeground(colorConfirm),
		confirm:       lipgloss.NewStyle().Foreground(colorConfirm),
		delete:        lipgloss.NewStyle().Foreground(colorDelete),
		notice: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorDelete).
			Foreground(t.Text).
			Padding(1, 2).
			Width(width - 2).
			Align(lipgloss.Center),
		focused: text.Bold(true).Underline(true),
	}
}

// cardBorder is a rounded border with a heavy left edge.
func cardBorder() lipgloss.Border {
	b := lipgloss.RoundedBorder()
	b.Left = "┃"
	return b
}
