package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/metgallery/pkg/gallery"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	filterPromptStyle = lipgloss.NewStyle().Foreground(colorCyan)
)

// =============================================================================
// ArtistListModel - Interactive artist selection with live filtering
// =============================================================================

// ArtistListModel is the bubbletea model of the artist browser. Typing
// narrows the list; enter picks the highlighted artist.
type ArtistListModel struct {
	Catalog  *gallery.Catalog
	Filter   string
	Names    []string // Catalog filtered by Filter
	Cursor   int
	Offset   int
	Height   int
	Selected string
}

// NewArtistListModel creates a browser over catalog.
func NewArtistListModel(catalog *gallery.Catalog) ArtistListModel {
	return ArtistListModel{
		Catalog: catalog,
		Names:   catalog.Names(),
		Height:  15,
	}
}

func (m ArtistListModel) Init() tea.Cmd {
	return nil
}

func (m ArtistListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEsc:
			if m.Filter == "" {
				return m, tea.Quit
			}
			m.setFilter("")
		case tea.KeyUp:
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case tea.KeyDown:
			if m.Cursor < len(m.Names)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case tea.KeyBackspace:
			if r := []rune(m.Filter); len(r) > 0 {
				m.setFilter(string(r[:len(r)-1]))
			}
		case tea.KeyRunes, tea.KeySpace:
			m.setFilter(m.Filter + string(msg.Runes))
		case tea.KeyEnter:
			if len(m.Names) == 0 {
				return m, nil
			}
			m.Selected = m.Names[m.Cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
	}
	return m, nil
}

func (m *ArtistListModel) setFilter(f string) {
	m.Filter = f
	m.Names = m.Catalog.Filter(f)
	m.Cursor = 0
	m.Offset = 0
}

func (m ArtistListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Artists"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("type to filter  ↑/↓ navigate  ⏎ show works  esc clear/quit"))
	b.WriteString("\n\n")
	b.WriteString(filterPromptStyle.Render("filter › ") + listNormalStyle.Render(m.Filter) + listDimStyle.Render("▏"))
	b.WriteString("\n\n")

	if len(m.Names) == 0 {
		b.WriteString(listDimStyle.Render("  no artists match"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Names))
	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, m.Names[i]})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d] of %d sampled", m.Cursor+1, len(m.Names), m.Catalog.Len())))

	return b.String()
}

// =============================================================================
// browse command
// =============================================================================

// browseCommand creates the interactive "browse" command.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Pick an artist interactively and show their works",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			env, err := c.newGallery(ctx)
			if err != nil {
				return err
			}
			defer env.Close()

			catalog, err := c.loadCatalog(ctx, env)
			if err != nil {
				return err
			}

			final, err := tea.NewProgram(NewArtistListModel(catalog), tea.WithContext(ctx)).Run()
			if err != nil {
				return err
			}
			m, ok := final.(ArtistListModel)
			if !ok || m.Selected == "" {
				return nil
			}
			return c.runWorks(ctx, env, m.Selected, 1)
		},
	}
}
