package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/deadlyhood/carbonlog/internal/entry"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type historyModel struct {
	items      []entry.Entry
	scroll     int // first visible row (0-indexed offset into items)
	termWidth  int
	termHeight int
}

func (m historyModel) visibleLines() int {
	// Reserve lines for: title(1) + blank(1) + footer(2)
	available := m.termHeight - 4
	if available < 1 {
		return 1
	}
	if available > len(m.items) {
		return len(m.items)
	}
	return available
}

func (m historyModel) maxScroll() int {
	max := len(m.items) - m.visibleLines()
	if max < 0 {
		return 0
	}
	return max
}

// clampScroll ensures the scroll offset is within valid bounds.
func (m historyModel) clampScroll() historyModel {
	if m.scroll > m.maxScroll() {
		m.scroll = m.maxScroll()
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
	return m
}

func (m historyModel) Init() tea.Cmd {
	return nil
}

func (m historyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m = m.clampScroll()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "down", "j":
			m.scroll++
			m = m.clampScroll()
		case "up", "k":
			m.scroll--
			m = m.clampScroll()
		case "pgdown":
			m.scroll += m.visibleLines()
			m = m.clampScroll()
		case "pgup":
			m.scroll -= m.visibleLines()
			m = m.clampScroll()
		}
	}
	return m, nil
}

func (m historyModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("--- History (%d entries) ---", len(m.items))))
	b.WriteString("\n")

	end := m.scroll + m.visibleLines()
	if end > len(m.items) {
		end = len(m.items)
	}
	for _, e := range m.items[m.scroll:end] {
		b.WriteString(historyLine(e))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("↑/↓ scroll  |  pgup/pgdn page  |  q quit"))
	b.WriteString("\n")

	return b.String()
}

func runHistoryView(cmd *cobra.Command, items []entry.Entry) error {
	out := cmd.OutOrStdout()

	// Non-TTY fallback: print the rows directly
	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		return printStaticHistory(out, items)
	}

	m := historyModel{
		items:      items,
		termWidth:  120,
		termHeight: 40,
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(out))
	_, err := p.Run()
	return err
}
