// Package menu presents disambiguation lists and transient notifications
// on a terminal.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/danlite/as3pkg/internal/classpath"
)

// Terminal is an interactive menu driven by Bubble Tea
type Terminal struct {
	In    io.Reader
	Out   io.Writer
	Title string
}

// NewTerminal creates an interactive menu reading keys from in and drawing to out
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{In: in, Out: out, Title: "Choose a package"}
}

// Choose runs the menu until the user picks an entry or dismisses it
func (t *Terminal) Choose(ctx context.Context, items []string) (int, bool, error) {
	p := tea.NewProgram(NewModel(t.Title, items),
		tea.WithContext(ctx),
		tea.WithInput(t.In),
		tea.WithOutput(t.Out),
	)

	finalModel, err := p.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, tea.ErrProgramKilled) {
			return -1, false, ctxErr
		}
		return -1, false, fmt.Errorf("menu: %w", err)
	}

	m, ok := finalModel.(Model)
	if !ok {
		return -1, false, errors.New("menu: unexpected model type")
	}
	if m.Cancelled() || m.Chosen() < 0 {
		return -1, false, nil
	}
	return m.Chosen(), true, nil
}

// Nth picks the Nth (1-based) selectable candidate without interaction,
// skipping the separator the same way List numbers entries. A number with
// no matching entry counts as a dismissal.
type Nth struct {
	N int
}

func (p Nth) Choose(_ context.Context, items []string) (int, bool, error) {
	idx := nthSelectable(items, p.N)
	if idx < 0 {
		return -1, false, nil
	}
	return idx, true, nil
}

// List prints the candidates, numbered for use with --pick, and dismisses.
// It stands in for the interactive menu when there is no terminal.
type List struct {
	W io.Writer
}

func (l List) Choose(_ context.Context, items []string) (int, bool, error) {
	n := 0
	for _, item := range items {
		if item == classpath.Separator {
			fmt.Fprintln(l.W, "   "+classpath.Separator)
			continue
		}
		n++
		fmt.Fprintf(l.W, "%2d %s\n", n, item)
	}
	return -1, false, nil
}

var tooltipStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

// Tooltip writes notifications as a single styled line
type Tooltip struct {
	W io.Writer
}

func (t Tooltip) Notify(msg string) {
	fmt.Fprintln(t.W, tooltipStyle.Render(msg))
}
