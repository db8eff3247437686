// Package main provides UI utilities for the legal engine CLI.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// UI prints user-facing output. In JSON mode decorative output is suppressed
// so the command's JSON payload stays parseable.
type UI struct {
	jsonMode bool
}

func NewUI(jsonMode bool) *UI {
	return &UI{jsonMode: jsonMode}
}

// Success prints a green success line.
func (ui *UI) Success(format string, args ...any) {
	if ui.jsonMode {
		return
	}
	color.New(color.FgGreen).Printf("✓ %s\n", fmt.Sprintf(format, args...))
}

// Error prints a red error line.
func (ui *UI) Error(format string, args ...any) {
	if ui.jsonMode {
		return
	}
	color.New(color.FgRed).Printf("✗ %s\n", fmt.Sprintf(format, args...))
}

// Info prints a cyan informational line.
func (ui *UI) Info(format string, args ...any) {
	if ui.jsonMode {
		return
	}
	color.New(color.FgCyan).Printf("ℹ %s\n", fmt.Sprintf(format, args...))
}

// Header prints a bold section header.
func (ui *UI) Header(text string) {
	if ui.jsonMode {
		return
	}
	color.New(color.FgCyan, color.Bold).Printf("\n%s\n%s\n", text, strings.Repeat("─", len([]rune(text))))
}

// Answer renders an engine answer: light markdown styling for headings and
// bold runs, plain text otherwise.
func (ui *UI) Answer(category, text string) {
	if ui.jsonMode {
		return
	}
	color.New(color.FgYellow, color.Bold).Printf("\n[%s]\n", category)
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "#"):
			color.New(color.FgMagenta, color.Bold).Println(strings.TrimLeft(trimmed, "# "))
		case strings.HasPrefix(trimmed, "**") && strings.HasSuffix(trimmed, "**"):
			color.New(color.Bold).Println(strings.Trim(trimmed, "*"))
		default:
			fmt.Println(line)
		}
	}
}
