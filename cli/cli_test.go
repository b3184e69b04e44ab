package cli

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"integral"
	"integral/config"
	"integral/quad"
)

func TestReadN(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		retries  int
	}{
		{"valid", "10\n", 10, 0},
		{"with spaces", "  25  \n", 25, 0},
		{"minimum", "4\n", 4, 0},
		{"no trailing newline", "12", 12, 0},
		{"not a number then valid", "abc\n8\n", 8, 1},
		{"too small then valid", "3\n0\n-5\n6\n", 6, 3},
		{"float then valid", "2.5\n100\n", 100, 1},
		{"maximum", "1000\n", 1000, 0},
		{"too large then valid", "2000000000\n1001\n50\n", 50, 2},
		{"overflow then valid", "99999999999999999999\n8\n", 8, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			p := NewPrompter(strings.NewReader(tt.input), out)
			n, err := p.ReadN("n: ", 4, 1000)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n)
			assert.Equal(t, tt.retries+1, strings.Count(out.String(), "n: "))
		})
	}
}

func TestReadNEOF(t *testing.T) {
	p := NewPrompter(strings.NewReader("abc\n"), io.Discard)
	_, err := p.ReadN("n: ", 4, 1000)
	assert.ErrorIs(t, err, io.EOF)

	out := &bytes.Buffer{}
	_, err = NewPrompter(strings.NewReader("2000000000\n"), out).ReadN("n: ", 4, 1000)
	assert.ErrorIs(t, err, io.EOF)
	assert.Contains(t, out.String(), "n must be at most 1000")
}

func TestReadMode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected quad.Mode
	}{
		{"left", "left\n", quad.Left},
		{"upper case", "RIGHT\n", quad.Right},
		{"empty defaults to mid", "\n", quad.Mid},
		{"invalid then valid", "diagonal\nleft\n", quad.Left},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			p := NewPrompter(strings.NewReader(tt.input), out)
			mode, err := p.ReadMode("mode: ")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}

	out := &bytes.Buffer{}
	_, err := NewPrompter(strings.NewReader("diagonal\n"), out).ReadMode("mode: ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Contains(t, out.String(), "mode must be one of left, mid, right")
}

func newMenu(t *testing.T, input string) (*Menu, *bytes.Buffer) {
	t.Helper()
	cfg := config.Default()
	cfg.Output.Dir = t.TempDir()
	cfg.Chart.DPI = 30
	cfg.Chart.Width, cfg.Chart.Height = 5, 2.5
	cfg.Chart.CurveSamples = 40
	cfg.Output.Formats = []string{"png"}
	out := &bytes.Buffer{}
	wb, err := integral.New(cfg, out)
	require.NoError(t, err)
	return NewMenu(wb, strings.NewReader(input), out), out
}

func TestMenuExit(t *testing.T) {
	m, out := newMenu(t, "8\n")
	require.NoError(t, m.Run())
	assert.Contains(t, out.String(), "8. Exit")
	assert.Contains(t, out.String(), "Goodbye")
}

func TestMenuEOF(t *testing.T) {
	m, out := newMenu(t, "")
	require.NoError(t, m.Run())
	assert.Contains(t, out.String(), "Goodbye")

	m, _ = newMenu(t, "1\n10\n")
	assert.NoError(t, m.Run(), "EOF in the middle of an action ends the menu")
}

func TestMenuConvergenceFiles(t *testing.T) {
	m, _ := newMenu(t, "4\n37\nq\n")
	require.NoError(t, m.Run())
	out := m.wb.Config.Output
	assert.FileExists(t, filepath.Join(out.PNGDir(), "trapezoid_convergence.png"))
	assert.FileExists(t, filepath.Join(out.ResultsDir(), "convergence_trapezoid.csv"))
	assert.NoFileExists(t, filepath.Join(out.PDFDir(), "trapezoid_convergence.pdf"))
}

func TestMenuActions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"rectangles default mode", "1\n10\n\nq\n", []string{"Rectangles (mid)", "h = 0.690000", "CONVERGENCE ANALYSIS: Rectangles (mid)", "Time ms"}},
		{"rectangles retry", "1\n2\n10\nup\nright\nq\n", []string{"n must be at least 4", "Rectangles (right)"}},
		{"visualization", "2\n5\nleft\nq\n", []string{"Saved:", "rectangles_left_n5.png"}},
		{"models", "3\nq\n", []string{"RECTANGLE METHOD RESULTS WITH AI MODELS", "rectangles_modes_n1000.png", "rectangles_convergence_left.png", "REFERENCE MODELS", "TinyLLaMA"}},
		{"trapezoid", "4\n100\nq\n", []string{"Trapezoid O(h^2)", "CONVERGENCE ANALYSIS: Trapezoid O(h^2)"}},
		{"trapezoid merges n", "4\n37\nq\n", []string{"\n    37 | ", "\n    20 | ", "Empirical order"}},
		{"n too large", "4\n2000000000\n100\nq\n", []string{"n must be at most 100000", "CONVERGENCE ANALYSIS: Trapezoid O(h^2)"}},
		{"simpson odd", "5\n11\nq\n", []string{"using n = 12", "\n    12 | ", "CONVERGENCE ANALYSIS: Simpson O(h^4)"}},
		{"exact", "6\nq\n", []string{"167.33024720"}},
		{"compare", "7\n20\nq\n", []string{"COMPARISON OF METHODS (n = 20)"}},
		{"invalid option then exit", "9\n8\n", []string{"invalid option"}},
		{"continue then exit", "6\n\n8\n", []string{"ANALYTIC SOLUTION"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, out := newMenu(t, tt.input)
			require.NoError(t, m.Run())
			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}
