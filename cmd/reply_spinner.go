package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type replyDoneMsg struct {
	reply string
}

type replySpinnerModel struct {
	spinner spinner.Model
	label   string
	handle  tea.Cmd
	reply   string
	done    bool
}

func newReplySpinnerModel(label string, handle tea.Cmd) replySpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return replySpinnerModel{
		spinner: s,
		label:   label,
		handle:  handle,
	}
}

func (m replySpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.handle)
}

func (m replySpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case replyDoneMsg:
		m.done = true
		m.reply = msg.reply
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m replySpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

func runReplySpinner(ctx context.Context, output io.Writer, handle func(context.Context) string) (string, error) {
	handleCmd := func() tea.Msg {
		return replyDoneMsg{reply: handle(ctx)}
	}

	p := tea.NewProgram(
		newReplySpinnerModel("Thinking...", handleCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(replySpinnerModel)
	if !ok {
		return "", fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.reply, nil
}
