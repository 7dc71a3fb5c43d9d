package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	apperr "github.com/matzehuels/metgallery/pkg/errors"
	"github.com/matzehuels/metgallery/pkg/gallery"
	"github.com/matzehuels/metgallery/pkg/integrations/met"
)

// stdout receives all command output. Tests replace it.
var stdout io.Writer = os.Stdout

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleLink for URLs.
	StyleLink = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleArtworkTitle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	styleArtist       = lipgloss.NewStyle().Foreground(colorCyan)
	styleCommand      = lipgloss.NewStyle().Foreground(colorBlue)
	styleKey          = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconBullet  = "•"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(format string, args ...any) {
	fmt.Fprintln(stdout, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	fmt.Fprintln(stdout, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	fmt.Fprintln(stdout, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	fmt.Fprintln(stdout, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line.
func printDetail(format string, args ...any) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printKeyValue(key, value string) {
	if value == "" {
		return
	}
	fmt.Fprintln(stdout, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Fprintln(stdout, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

func printNewline() {
	fmt.Fprintln(stdout)
}

// =============================================================================
// Artworks
// =============================================================================

// printArtwork prints a one-card summary: title, artist and date, image link.
func printArtwork(obj *met.Object) {
	title := obj.Title
	if title == "" {
		title = "Untitled"
	}
	fmt.Fprintln(stdout, styleArtworkTitle.Render(title)+" "+StyleDim.Render(fmt.Sprintf("#%d", obj.ObjectID)))

	var byline []string
	if obj.ArtistDisplayName != "" {
		byline = append(byline, styleArtist.Render(obj.ArtistDisplayName))
	}
	if obj.ObjectDate != "" {
		byline = append(byline, StyleDim.Render(obj.ObjectDate))
	}
	if len(byline) > 0 {
		fmt.Fprintln(stdout, "  "+strings.Join(byline, StyleDim.Render(" · ")))
	}
	fmt.Fprintln(stdout, "  "+StyleLink.Render(obj.Thumbnail()))
}

// printArtworkDetail prints every displayed field of a record.
func printArtworkDetail(obj *met.Object) {
	fmt.Fprintln(stdout, StyleTitle.Render(obj.Title))
	printKeyValue("Artist", obj.ArtistDisplayName)
	printKeyValue("Date", obj.ObjectDate)
	printKeyValue("Culture", obj.Culture)
	printKeyValue("Medium", obj.Medium)
	printKeyValue("Dimensions", obj.Dimensions)
	printKeyValue("Department", obj.Department)
	printKeyValue("Image", obj.PrimaryImage)
	printKeyValue("Wikidata", obj.ObjectWikidataURL)
	printKeyValue("Page", obj.ObjectURL)
}

func printArtworks(objs []*met.Object) {
	for i, obj := range objs {
		if i > 0 {
			printNewline()
		}
		printArtwork(obj)
	}
}

// printPage prints a page of results with a position footer.
func printPage(p *gallery.Page) {
	printArtworks(p.Artworks)
	printNewline()
	shown := len(p.Artworks)
	footer := fmt.Sprintf("page %d · %d shown · %d total", p.Index+1, shown, p.Total)
	if p.HasMore {
		footer += " · more available"
	}
	fmt.Fprintln(stdout, StyleDim.Render(footer))
}

// printNames prints a bulleted list.
func printNames(names []string) {
	for _, n := range names {
		fmt.Fprintln(stdout, StyleDim.Render(iconBullet)+" "+StyleValue.Render(n))
	}
}

// FormatError renders err for the terminal, using the user-facing message
// of structured errors.
func FormatError(err error) string {
	return styleIconError.Render(iconError) + " " + apperr.UserMessage(err)
}
