package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verigate/coqgen/features"
	"github.com/verigate/coqgen/generate"
	"github.com/verigate/coqgen/signature"
	"github.com/verigate/coqgen/vernac"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	onStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	offStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// previewModel renders the generated vernacular for the loaded signature and
// regenerates it as features are toggled. Generation is pure and fast, so
// every toggle reruns the whole pipeline synchronously.
type previewModel struct {
	input    string
	raw      signature.Raw
	requires []string

	enabled map[features.Feature]bool
	genErr  error

	vp    viewport.Model
	ready bool
}

func newPreviewModel(input string, raw signature.Raw, settings []features.Setting, requires []string) (*previewModel, error) {
	cfg, _, err := features.New(settings)
	if err != nil {
		return nil, err
	}
	m := &previewModel{
		input:    input,
		raw:      raw,
		requires: requires,
		enabled:  make(map[features.Feature]bool, 5),
	}
	for _, f := range features.All() {
		m.enabled[f] = cfg.Enabled(f)
	}
	return m, nil
}

func (m *previewModel) Init() tea.Cmd {
	return nil
}

// regenerate reruns normalization and generation against the current toggles.
// An invalid combination (freespec without interface) or a generation failure
// is kept as genErr and shown in place of the output.
func (m *previewModel) regenerate() {
	settings := make([]features.Setting, 0, 5)
	for _, f := range features.All() {
		settings = append(settings, features.Setting{Feature: f, Enabled: m.enabled[f]})
	}
	cfg, _, err := features.New(settings)
	if err != nil {
		m.genErr = err
		m.vp.SetContent(errStyle.Render(fmt.Sprintf("Error: %v", err)))
		return
	}

	mod, err := signature.Normalize(m.raw, cfg)
	if err == nil {
		var sentences []vernac.Sentence
		sentences, err = generate.Generate(mod, cfg, m.requires)
		if err == nil {
			m.genErr = nil
			m.vp.SetContent(vernac.Render(sentences))
			return
		}
	}
	m.genErr = err
	m.vp.SetContent(errStyle.Render(fmt.Sprintf("Error: %v", err)))
}

func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "1", "2", "3", "4", "5":
			f := features.All()[key[0]-'1']
			m.enabled[f] = !m.enabled[f]
			m.regenerate()
			return m, nil
		}

	case tea.WindowSizeMsg:
		// Two header lines, one help line.
		h := msg.Height - 3
		if h < 1 {
			h = 1
		}
		if !m.ready {
			m.vp = viewport.New(msg.Width, h)
			m.ready = true
			m.regenerate()
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = h
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *previewModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("coqgen"))
	b.WriteString(" ")
	b.WriteString(m.input)
	b.WriteString("\n")

	for i, f := range features.All() {
		if i > 0 {
			b.WriteString("  ")
		}
		label := fmt.Sprintf("[%d] %s", i+1, f)
		if m.enabled[f] {
			b.WriteString(onStyle.Render(label))
		} else {
			b.WriteString(offStyle.Render(label))
		}
	}
	b.WriteString("\n")

	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("1-5 toggle feature • ↑/↓ scroll • q quit"))
	return b.String()
}

func runInteractive(input string, raw signature.Raw, settings []features.Setting, requires []string) error {
	model, err := newPreviewModel(input, raw, settings, requires)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
