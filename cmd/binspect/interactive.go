package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	schemaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectSchema modelState = iota
	stateInputHex
	stateShowResult
)

type interactiveModel struct {
	err      error
	schemas  []schema
	input    textinput.Model
	dump     string
	result   string
	selected int
	state    modelState
}

func newInteractiveModel(schemas []schema) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "hex bytes, or empty for the schema's sample"
	ti.Prompt = "bytes: "
	ti.Width = 60
	return &interactiveModel{
		schemas: schemas,
		input:   ti,
		state:   stateSelectSchema,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state == stateSelectSchema {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectSchema && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectSchema && m.selected < len(m.schemas)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectSchema:
				m.input.SetValue("")
				m.input.Focus()
				m.state = stateInputHex

			case stateInputHex:
				m.decodeInput()
				m.state = stateShowResult

			case stateShowResult:
				m.state = stateSelectSchema
				m.result = ""
				m.dump = ""
				m.err = nil
			}

		case "esc":
			switch m.state {
			case stateInputHex:
				m.state = stateSelectSchema
			case stateShowResult:
				m.state = stateSelectSchema
				m.result = ""
				m.dump = ""
				m.err = nil
			}
		}
	}

	if m.state == stateInputHex {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) decodeInput() {
	m.err = nil
	s := m.schemas[m.selected]

	var data []byte
	raw := strings.ReplaceAll(strings.TrimSpace(m.input.Value()), " ", "")
	if raw == "" {
		out, err := s.sample()
		if err != nil {
			m.err = err
			return
		}
		data = out
	} else {
		out, err := hex.DecodeString(raw)
		if err != nil {
			m.err = fmt.Errorf("parse hex: %w", err)
			return
		}
		data = out
	}

	m.dump = hexDump(data)
	rendered, err := s.decode(data)
	if err != nil {
		m.err = err
		return
	}
	m.result = rendered
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("binspect"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectSchema:
		b.WriteString("Select a schema:\n\n")
		for i, s := range m.schemas {
			line := schemaStyle.Render(s.name) + "  " + descStyle.Render(s.description)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + s.name))
				b.WriteString("  " + descStyle.Render(s.description))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose • q quit"))

	case stateInputHex:
		s := m.schemas[m.selected]
		b.WriteString(fmt.Sprintf("Decoding with %s\n\n", schemaStyle.Render(s.name)))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter decode • esc back"))

	case stateShowResult:
		s := m.schemas[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", schemaStyle.Render(s.name)))
		if m.dump != "" {
			b.WriteString(helpStyle.Render(m.dump))
			b.WriteString("\n")
		}
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func runInteractive(schemas []schema) error {
	p := tea.NewProgram(newInteractiveModel(schemas), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
