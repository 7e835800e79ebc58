package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PrettyLogger writes styled, human-oriented lines such as the entry listing
// printed by validate. It is not leveled and ignores Configure.
type PrettyLogger struct {
	writer io.Writer
	styles prettyStyles
}

type prettyStyles struct {
	success lipgloss.Style
	info    lipgloss.Style
	warning lipgloss.Style
	key     lipgloss.Style
	value   lipgloss.Style
	path    lipgloss.Style
	code    lipgloss.Style
}

func defaultPrettyStyles() prettyStyles {
	return prettyStyles{
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		info:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		key:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		value:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		path:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Italic(true),
		code:    lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	}
}

// NewPrettyLogger returns a PrettyLogger writing to stderr.
func NewPrettyLogger() *PrettyLogger {
	return &PrettyLogger{
		writer: os.Stderr,
		styles: defaultPrettyStyles(),
	}
}

// WithWriter redirects output to w.
func (p *PrettyLogger) WithWriter(w io.Writer) *PrettyLogger {
	p.writer = w
	return p
}

func (p *PrettyLogger) Success(message string) {
	fmt.Fprintf(p.writer, "%s\n", p.styles.success.Render("✓ "+message))
}

func (p *PrettyLogger) InfoPretty(message string) {
	fmt.Fprintf(p.writer, "%s\n", p.styles.info.Render(message))
}

func (p *PrettyLogger) WarnPretty(message string) {
	fmt.Fprintf(p.writer, "%s\n", p.styles.warning.Render("⚠ "+message))
}

// Field prints "key: value".
func (p *PrettyLogger) Field(key string, value interface{}) {
	fmt.Fprintf(p.writer, "%s: %s\n", p.styles.key.Render(key), p.styles.value.Render(fmt.Sprint(value)))
}

// Path prints "label: path".
func (p *PrettyLogger) Path(label, path string) {
	fmt.Fprintf(p.writer, "%s: %s\n", p.styles.key.Render(label), p.styles.path.Render(path))
}

// Code prints content indented by four spaces, one output line per input line.
func (p *PrettyLogger) Code(content string) {
	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.writer, "    %s\n", p.styles.code.Render(line))
	}
}
