package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shixiongfei/luaffi/ctype"
	"github.com/shixiongfei/luaffi/marshal"
	"github.com/shixiongfei/luaffi/native"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	classStyle = lipgloss.NewStyle().
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
	stateSelectTag modelState = iota
	stateInputValue
	stateShowResult
)

type interactiveModel struct {
	err      error
	m        *marshal.Marshaller
	arena    *native.Arena
	result   string
	tags     []ctype.Tag
	input    textinput.Model
	selected int
	state    modelState
}

type probeMsg struct {
	err    error
	result string
}

func newInteractiveModel(m *marshal.Marshaller) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = `nil, true, 42, 3.5, "text", 0x1000`
	ti.Prompt = "value: "
	ti.Width = 40

	return &interactiveModel{
		m:     m,
		arena: native.NewArena(0),
		tags:  m.Registry().Tags(),
		input: ti,
		state: stateSelectTag,
	}
}

func (im *interactiveModel) Init() tea.Cmd {
	return nil
}

func (im *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return im, im.quit()

		case "q":
			if im.state != stateInputValue {
				return im, im.quit()
			}

		case "up", "k":
			if im.state == stateSelectTag && im.selected > 0 {
				im.selected--
			}

		case "down", "j":
			if im.state == stateSelectTag && im.selected < len(im.tags)-1 {
				im.selected++
			}

		case "enter":
			switch im.state {
			case stateSelectTag:
				im.state = stateInputValue
				im.input.SetValue("")
				return im, im.input.Focus()

			case stateInputValue:
				return im, im.runProbe

			case stateShowResult:
				im.reset()
			}
			return im, nil

		case "esc":
			if im.state != stateSelectTag {
				im.reset()
			}
			return im, nil
		}

	case probeMsg:
		im.result = msg.result
		im.err = msg.err
		im.state = stateShowResult
		im.input.Blur()
		return im, nil
	}

	if im.state == stateInputValue {
		var cmd tea.Cmd
		im.input, cmd = im.input.Update(msg)
		return im, cmd
	}
	return im, nil
}

func (im *interactiveModel) reset() {
	im.state = stateSelectTag
	im.result = ""
	im.err = nil
	im.input.Blur()
}

func (im *interactiveModel) quit() tea.Cmd {
	_ = im.arena.Close()
	return tea.Quit
}

func (im *interactiveModel) runProbe() tea.Msg {
	v, err := parseLiteral(im.input.Value())
	if err != nil {
		return probeMsg{err: err}
	}
	res, err := probe(im.m, im.arena, im.tags[im.selected], v)
	if err != nil {
		return probeMsg{err: err}
	}
	return probeMsg{result: res.String()}
}

func (im *interactiveModel) View() string {
	var b strings.Builder

	caps := im.m.Registry().Capabilities()
	b.WriteString(titleStyle.Render("FFI Probe"))
	b.WriteString(fmt.Sprintf(" %d-bit integers, %s floats\n\n", caps.IntegerBits, caps.FloatFormat))

	switch im.state {
	case stateSelectTag:
		b.WriteString("Select a native type:\n\n")
		for i, t := range im.tags {
			if i == im.selected {
				b.WriteString(selectedStyle.Render("> " + formatTag(t)))
			} else {
				b.WriteString("  " + formatTag(t))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose • q quit"))

	case stateInputValue:
		t := im.tags[im.selected]
		b.WriteString(fmt.Sprintf("Marshal into %s\n\n", tagStyle.Render(t.String())))
		b.WriteString(im.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter marshal • esc back"))

	case stateShowResult:
		t := im.tags[im.selected]
		b.WriteString(fmt.Sprintf("Result for %s:\n\n", tagStyle.Render(t.String())))
		if im.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", im.err)))
		} else {
			b.WriteString(resultStyle.Render(strings.TrimRight(im.result, "\n")))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func formatTag(t ctype.Tag) string {
	return tagStyle.Render(fmt.Sprintf("%-8s", t)) + " " +
		classStyle.Render(fmt.Sprintf("%s, %d bytes", t.Class(), t.Width()))
}

func runInteractive(m *marshal.Marshaller) error {
	p := tea.NewProgram(newInteractiveModel(m), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
