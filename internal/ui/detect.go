// Package ui renders command output, with lipgloss styling when a human is
// reading the terminal and plain text otherwise.
package ui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents how output is rendered.
type Mode int

const (
	// ModePlain is used for pipes, files, CI and scripts.
	ModePlain Mode = iota
	// ModeStyled is used when stdout is a terminal.
	ModeStyled
)

// DetectMode determines whether output should be styled.
//
// Returns ModePlain if:
//   - RFCONN_NO_STYLE=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//   - stdout is not a terminal
//
// Returns ModeStyled otherwise.
func DetectMode() Mode {
	if os.Getenv("RFCONN_NO_STYLE") == "1" {
		return ModePlain
	}
	if os.Getenv("CI") != "" {
		return ModePlain
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModePlain
	}

	return ModeStyled
}
