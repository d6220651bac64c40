// Package ui prints the CLI's status lines. Color is applied when the
// terminal supports it and suppressed otherwise.
package ui

import (
	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	bold   = color.New(color.Bold)

	// Blue is exported for commands that print free-form status text.
	Blue = color.New(color.FgBlue)
)

// Success reports a completed operation, prefixed with a green check.
func Success(format string, args ...any) {
	green.Printf("✓ "+format+"\n", args...)
}

// Error reports a failed operation, prefixed with a red cross.
func Error(format string, args ...any) {
	red.Printf("✗ "+format+"\n", args...)
}

// Warning flags something that deserves attention but does not stop the
// operation.
func Warning(format string, args ...any) {
	yellow.Printf("⚠ "+format+"\n", args...)
}

// Info prints a plain informational line.
func Info(format string, args ...any) {
	Blue.Printf(format+"\n", args...)
}

// Header prints a section heading in bold.
func Header(format string, args ...any) {
	bold.Printf(format+"\n", args...)
}
