package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnosticLevels(t *testing.T) {
	tests := []struct {
		level    DiagnosticLevel
		expected []string
		hidden   []string
	}{
		{DiagnosticSilent, nil, []string{"[ERROR]", "[WARN]", "[INFO]", "[VERBOSE]", "[DEBUG]"}},
		{DiagnosticError, []string{"[ERROR] e"}, []string{"[WARN]", "[INFO]"}},
		{DiagnosticWarn, []string{"[ERROR] e", "[WARN] w"}, []string{"[INFO]"}},
		{DiagnosticInfo, []string{"[WARN] w", "[INFO] i"}, []string{"[VERBOSE]"}},
		{DiagnosticVerbose, []string{"[INFO] i", "[VERBOSE] v"}, []string{"[DEBUG]"}},
		{DiagnosticDebug, []string{"[VERBOSE] v", "[DEBUG] d"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			d := NewBufferedDiagnostics(tt.level, &buf)

			d.Error("e")
			d.Warn("w")
			d.Info("i")
			d.Verbose("v")
			d.Debug("d")

			for _, line := range tt.expected {
				assert.Contains(t, buf.String(), line)
			}
			for _, line := range tt.hidden {
				assert.NotContains(t, buf.String(), line)
			}
			assert.Equal(t, tt.level, d.Level())
		})
	}
}

func TestDiagnosticPhases(t *testing.T) {
	var buf bytes.Buffer
	d := NewBufferedDiagnostics(DiagnosticInfo, &buf)

	d.Header("generating API document")
	d.RootPath("/work")
	d.PhaseHeader("Reading declarations")
	d.PhaseItem("/work/types/*.d.ts")
	d.PhaseProgress("Writing /work/doc/api.md")
	d.PhaseProgress("Rendering")
	d.GenerationComplete("/work/doc/api.md")

	expected := "dtsdoc: generating API document\n" +
		"Project Root: /work\n\n" +
		"Reading declarations:\n" +
		"✓ /work/types/*.d.ts\n" +
		"✏ Writing /work/doc/api.md\n" +
		"- Rendering\n" +
		"\ndtsdoc: API document written to /work/doc/api.md\n"
	assert.Equal(t, expected, buf.String())
}

func TestDiagnosticSummarySortsKeys(t *testing.T) {
	var buf bytes.Buffer
	d := NewBufferedDiagnostics(DiagnosticInfo, &buf)

	d.Summary("Run", map[string]interface{}{"type aliases": 1, "interfaces": 2, "locations": 1})
	assert.Equal(t, "\nRun\n   interfaces: 2\n   locations: 1\n   type aliases: 1\n\n", buf.String())

	buf.Reset()
	NewBufferedDiagnostics(DiagnosticWarn, &buf).Summary("Run", map[string]interface{}{"a": 1})
	assert.Empty(t, buf.String())
}

func TestSetOutputSplitsErrors(t *testing.T) {
	var out, errOut bytes.Buffer
	d := NewBufferedDiagnostics(DiagnosticInfo, &out)
	d.SetOutput(&out, &errOut)

	d.Error("broken")
	d.Warn("careful")

	assert.Equal(t, "[ERROR] broken\n", errOut.String())
	assert.Equal(t, "[WARN] careful\n", out.String())
}
