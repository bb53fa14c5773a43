package internal

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)
)

// isTerminal checks if the writer is a terminal
func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// writeMarked prints message behind a styled mark on terminals and behind
// plainPrefix elsewhere
func writeMarked(w io.Writer, style lipgloss.Style, mark, plainPrefix, message string) {
	if isTerminal(w) {
		_, _ = fmt.Fprintf(w, "%s %s\n", style.Render(mark), message)
		return
	}
	_, _ = fmt.Fprintf(w, "%s%s\n", plainPrefix, message)
}

// PrintSuccess prints a success message
func PrintSuccess(w io.Writer, message string) {
	writeMarked(w, successStyle, "✓", "", message)
}

// PrintWarning prints a warning message
func PrintWarning(w io.Writer, message string) {
	writeMarked(w, warningStyle, "⚠", "WARNING: ", message)
}
