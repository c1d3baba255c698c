package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Field is one labelled line of output.
type Field struct {
	Label string
	Value string
}

// Renderer writes titles, field lists and status lines to out.
type Renderer struct {
	out    io.Writer
	styled bool
}

// NewRenderer creates a Renderer. Styling is applied only in ModeStyled.
func NewRenderer(out io.Writer, mode Mode) *Renderer {
	return &Renderer{out: out, styled: mode == ModeStyled}
}

// Title writes a heading line.
func (r *Renderer) Title(title string) {
	if r.styled {
		title = TitleStyle.Render(title)
	}
	fmt.Fprintln(r.out, title)
}

// Fields writes label/value pairs with aligned values. Empty values render
// as "-".
func (r *Renderer) Fields(fields []Field) {
	width := 0
	for _, f := range fields {
		if len(f.Label) > width {
			width = len(f.Label)
		}
	}

	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		label := fmt.Sprintf("%-*s", width+1, f.Label+":")
		value := f.Value
		if value == "" {
			value = "-"
		}
		if r.styled {
			label = LabelStyle.Render(label)
			value = ValueStyle.Render(value)
		}
		lines = append(lines, label+" "+value)
	}

	body := strings.Join(lines, "\n")
	if r.styled {
		body = BoxStyle.Render(body)
	}
	fmt.Fprintln(r.out, body)
}

// List writes a bulleted entry with an indented, muted description.
func (r *Renderer) List(item, description string) {
	if r.styled {
		item = lipgloss.JoinHorizontal(lipgloss.Top, SymbolBullet+" ", item)
		description = MutedStyle.Render(description)
	} else {
		item = SymbolBullet + " " + item
	}
	fmt.Fprintln(r.out, item)
	if description != "" {
		fmt.Fprintln(r.out, "    "+description)
	}
}

// Success writes a success status line.
func (r *Renderer) Success(format string, args ...interface{}) {
	msg := SymbolCheck + " " + fmt.Sprintf(format, args...)
	if r.styled {
		msg = SuccessStyle.Render(msg)
	}
	fmt.Fprintln(r.out, msg)
}

// Failure writes a failure status line.
func (r *Renderer) Failure(format string, args ...interface{}) {
	msg := SymbolCross + " " + fmt.Sprintf(format, args...)
	if r.styled {
		msg = ErrorStyle.Render(msg)
	}
	fmt.Fprintln(r.out, msg)
}
