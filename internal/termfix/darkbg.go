// ABOUTME: Forces lipgloss to assume a dark background before bubbletea initializes
// ABOUTME: Import with _ ahead of any package that pulls in bubbletea

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// Setting the background explicitly stops lipgloss from probing the
	// terminal with OSC 10/11 queries. bubbletea's init() calls
	// lipgloss.HasDarkBackground(), and the sync.Once behind the probe is
	// skipped once explicitBackgroundColor is set.
	//
	// This package must not import bubbletea, directly or transitively,
	// so init ordering guarantees this runs before the probe could fire.
	lipgloss.SetHasDarkBackground(true)
}
