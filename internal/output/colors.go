package output

import "github.com/charmbracelet/lipgloss"

// Series listing colors, by index into the 16-colour ANSI palette
var (
	appliedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	currentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	unappliedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// ColorApplied styles an applied patch
func ColorApplied(text string) string {
	return appliedStyle.Render(text)
}

// ColorCurrent styles the current patch
func ColorCurrent(text string) string {
	return currentStyle.Render(text)
}

// ColorUnapplied styles an unapplied patch
func ColorUnapplied(text string) string {
	return unappliedStyle.Render(text)
}
