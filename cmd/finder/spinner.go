package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/jose-valero/cr-tournament-finder/internal/domain"
)

type searchDoneMsg struct {
	rep domain.Report
	err error
}

// searchModel muestra un spinner mientras corre el ciclo; el crawl tarda decenas de segundos.
type searchModel struct {
	spinner spinner.Model
	label   string
	run     func() (domain.Report, error)
	cancel  context.CancelFunc

	rep  domain.Report
	err  error
	done bool
}

func newSearchModel(label string, cancel context.CancelFunc, run func() (domain.Report, error)) searchModel {
	return searchModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		label:   label,
		run:     run,
		cancel:  cancel,
	}
}

func (m searchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.search)
}

func (m searchModel) search() tea.Msg {
	rep, err := m.run()
	return searchDoneMsg{rep: rep, err: err}
}

func (m searchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchDoneMsg:
		m.rep, m.err, m.done = msg.rep, msg.err, true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancel()
			m.err, m.done = context.Canceled, true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m searchModel) View() string {
	switch {
	case !m.done:
		return fmt.Sprintf("%s %s\n", m.spinner.View(), m.label)
	case m.err != nil:
		return fmt.Sprintf("❌ %s\n", m.label)
	default:
		return fmt.Sprintf("✔ %s\n", m.label)
	}
}

// runWithSpinner usa el spinner solo si stderr es una terminal.
func runWithSpinner(ctx context.Context, label string, run func(context.Context) (domain.Report, error)) (domain.Report, error) {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		return run(ctx)
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := newSearchModel(label, cancel, func() (domain.Report, error) { return run(ctx) })
	final, err := tea.NewProgram(m, tea.WithOutput(os.Stderr)).Run()
	if err != nil {
		return domain.Report{}, err
	}
	fm := final.(searchModel)
	return fm.rep, fm.err
}
