// Package theme turns a preference into terminal styles for the CLI.
package theme

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/learnhub/internal/preference"
)

// Palette holds the colors of one theme.
type Palette struct {
	Name       preference.Preference
	Background string
	Surface    string
	Text       string
	Muted      string
	Accent     string
	Success    string
	Warning    string
	Danger     string
}

var palettes = map[preference.Preference]Palette{
	preference.Dark: {
		Name:       preference.Dark,
		Background: "#1e1e2e",
		Surface:    "#313244",
		Text:       "#cdd6f4",
		Muted:      "#7f849c",
		Accent:     "#89b4fa",
		Success:    "#a6e3a1",
		Warning:    "#f9e2af",
		Danger:     "#f38ba8",
	},
	preference.Light: {
		Name:       preference.Light,
		Background: "#eff1f5",
		Surface:    "#dce0e8",
		Text:       "#4c4f69",
		Muted:      "#8c8fa1",
		Accent:     "#1e66f5",
		Success:    "#40a02b",
		Warning:    "#df8e1d",
		Danger:     "#d20f39",
	},
}

// PaletteFor returns the palette of p, or of the fallback for unknown values.
func PaletteFor(p preference.Preference) Palette {
	if pal, ok := palettes[p]; ok {
		return pal
	}
	return palettes[preference.Fallback]
}

// Styles are the pre-built lipgloss styles of a palette.
type Styles struct {
	Name    preference.Preference
	Banner  lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style
}

func (p Palette) Styles() Styles {
	return Styles{
		Name: p.Name,
		Banner: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Surface)).
			Foreground(lipgloss.Color(p.Text)).
			Padding(0, 1),
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Text)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),
		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Accent)).
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Success)),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Warning)),
		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Danger)).
			Bold(true),
	}
}

// Presenter is the live preview. Apply swaps the active styles and, when a
// writer is set, prints a one-line banner in the new theme.
type Presenter struct {
	mu     sync.RWMutex
	styles Styles
	out    io.Writer
}

func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{
		styles: PaletteFor(preference.Fallback).Styles(),
		out:    out,
	}
}

func (p *Presenter) Apply(pref preference.Preference) {
	s := PaletteFor(pref).Styles()

	p.mu.Lock()
	p.styles = s
	out := p.out
	p.mu.Unlock()

	if out != nil {
		fmt.Fprintln(out, s.Banner.Render(fmt.Sprintf("theme: %s", s.Name)))
	}
}

// Styles returns the active styles.
func (p *Presenter) Styles() Styles {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.styles
}

// Current is the theme last applied.
func (p *Presenter) Current() preference.Preference {
	return p.Styles().Name
}
