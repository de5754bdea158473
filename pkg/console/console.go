// Package console prints the human-readable progress lines of the CLI.
// Colours are chosen by the renderer for the target writer, so output
// piped to a file or captured in tests is plain text.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorInfo    = lipgloss.Color("#3B82F6")
	colorMuted   = lipgloss.Color("#6B7280")
	colorPrimary = lipgloss.Color("#7C3AED")
)

// Printer writes styled lines to w.
type Printer struct {
	w       io.Writer
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	info    lipgloss.Style
	muted   lipgloss.Style
	primary lipgloss.Style
}

// New returns a Printer for w.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		success: r.NewStyle().Foreground(colorSuccess).Bold(true),
		warning: r.NewStyle().Foreground(colorWarning).Bold(true),
		failure: r.NewStyle().Foreground(colorError).Bold(true),
		info:    r.NewStyle().Foreground(colorInfo),
		muted:   r.NewStyle().Foreground(colorMuted),
		primary: r.NewStyle().Foreground(colorPrimary).Bold(true),
	}
}

func (p *Printer) line(icon lipgloss.Style, glyph, format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", icon.Render(glyph), fmt.Sprintf(format, args...))
}

// Success prints a success message.
func (p *Printer) Success(format string, args ...any) { p.line(p.success, "✓", format, args...) }

// Warning prints a warning message.
func (p *Printer) Warning(format string, args ...any) { p.line(p.warning, "⚠", format, args...) }

// Error prints an error message.
func (p *Printer) Error(format string, args ...any) { p.line(p.failure, "✗", format, args...) }

// Info prints an info message.
func (p *Printer) Info(format string, args ...any) { p.line(p.info, "ℹ", format, args...) }

// Skip prints a line for something that was left as it was.
func (p *Printer) Skip(format string, args ...any) { p.line(p.muted, "○", format, args...) }

// Muted prints a dimmed message.
func (p *Printer) Muted(format string, args ...any) {
	fmt.Fprintln(p.w, p.muted.Render(fmt.Sprintf(format, args...)))
}

// Section prints an underlined header.
func (p *Printer) Section(title string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.primary.Render(title))
	fmt.Fprintln(p.w, p.muted.Render(strings.Repeat("═", lipgloss.Width(title))))
}

// KeyValue prints an indented "key: value" pair.
func (p *Printer) KeyValue(key string, value any) {
	fmt.Fprintf(p.w, "  %s %v\n", p.muted.Render(key+":"), value)
}

// Item prints an indented bullet.
func (p *Printer) Item(format string, args ...any) {
	fmt.Fprintf(p.w, "    %s %s\n", p.muted.Render("•"), fmt.Sprintf(format, args...))
}

// StatusIcon returns a coloured icon for a status word.
func (p *Printer) StatusIcon(status string) string {
	switch status {
	case "applied", "success", "created", "ready":
		return p.success.Render("✓")
	case "pending", "existing", "skipped":
		return p.warning.Render("○")
	case "failed", "not_ready":
		return p.failure.Render("✗")
	default:
		return p.muted.Render("•")
	}
}
