// ABOUTME: Runs the history picker program over the history file
// ABOUTME: Renders on stderr so the selection is the only thing on stdout

package histsearch

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/pi-hooks-go/internal/history"
)

// Run loads history entries and runs the interactive picker.
// Returns the selected prompt and true when the user confirmed one.
func Run(historyPath string, limits history.Limits) (string, bool, error) {
	entries := history.Entries(historyPath, limits)

	model := NewModel(entries)
	p := tea.NewProgram(model, tea.WithOutput(os.Stderr))

	final, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("running history picker: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return "", false, fmt.Errorf("unexpected final model %T", final)
	}
	choice, confirmed := m.Choice()
	return choice, confirmed, nil
}
