package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, fn func()) string {
	t.Helper()

	old := color.Output
	var buf bytes.Buffer
	color.Output = &buf
	t.Cleanup(func() { color.Output = old })

	fn()
	return buf.String()
}

func TestSuccess(t *testing.T) {
	out := capture(t, func() { Success("compiled %d servers", 2) })
	require.True(t, strings.Contains(out, "compiled 2 servers"))
	assert.True(t, strings.HasPrefix(stripANSI(out), "✓ "))
}

func TestError(t *testing.T) {
	out := capture(t, func() { Error("bad config") })
	assert.Contains(t, out, "bad config")
	assert.Contains(t, stripANSI(out), "✗")
}

func TestWarning(t *testing.T) {
	out := capture(t, func() { Warning("no servers defined") })
	assert.Contains(t, out, "no servers defined")
	assert.Contains(t, stripANSI(out), "⚠")
}

func TestInfo(t *testing.T) {
	out := capture(t, func() { Info("loading %s", "stevedore.yml") })
	assert.Contains(t, out, "loading stevedore.yml")
}

func TestHeader(t *testing.T) {
	out := capture(t, func() { Header("Servers") })
	assert.Contains(t, out, "Servers")
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && r == 'm':
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}
