package cli

import (
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/metgallery/pkg/gallery"
)

func testArtistModel() ArtistListModel {
	catalog := gallery.NewCatalog()
	catalog.Add("Claude Monet", "Édouard Manet", "Mary Cassatt", "Vincent van Gogh")
	return NewArtistListModel(catalog)
}

func press(m ArtistListModel, msgs ...tea.Msg) (ArtistListModel, tea.Cmd) {
	var cmd tea.Cmd
	var model tea.Model = m
	for _, msg := range msgs {
		model, cmd = model.Update(msg)
	}
	return model.(ArtistListModel), cmd
}

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestArtistListModel_LiveFilter(t *testing.T) {
	m, _ := press(testArtistModel(), typed("ma"))
	want := []string{"Mary Cassatt", "Édouard Manet"}
	if !slices.Equal(m.Names, want) {
		t.Errorf("Names = %q, want %q", m.Names, want)
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.Filter != "m" || len(m.Names) != 3 {
		t.Errorf("after backspace: filter %q, %d names", m.Filter, len(m.Names))
	}

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Filter != "" || len(m.Names) != 4 || cmd != nil {
		t.Errorf("esc should clear the filter first: %q %d", m.Filter, len(m.Names))
	}

	_, cmd = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Error("esc on an empty filter should quit")
	}
}

func TestArtistListModel_Select(t *testing.T) {
	m, cmd := press(testArtistModel(),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if m.Selected != "Mary Cassatt" {
		t.Errorf("Selected = %q, want %q", m.Selected, "Mary Cassatt")
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestArtistListModel_EnterWithNoMatches(t *testing.T) {
	m, cmd := press(testArtistModel(), typed("zzz"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected != "" || cmd != nil {
		t.Errorf("nothing should be selected, got %q", m.Selected)
	}
	if !strings.Contains(m.View(), "no artists match") {
		t.Error("view should say nothing matches")
	}
}

func TestArtistListModel_Scrolls(t *testing.T) {
	m := testArtistModel()
	m, _ = press(m, tea.WindowSizeMsg{Height: 10})
	if m.Height != 5 {
		t.Fatalf("Height = %d, want 5", m.Height)
	}
	m.Height = 2
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	if m.Cursor != 2 || m.Offset != 1 {
		t.Errorf("cursor %d offset %d, want 2 and 1", m.Cursor, m.Offset)
	}

	view := m.View()
	if !strings.Contains(view, "Mary Cassatt") || strings.Contains(view, "Claude Monet") {
		t.Errorf("view should show the scrolled window:\n%s", view)
	}
}
