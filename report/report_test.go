package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"integral/analysis"
	"integral/energy"
	"integral/quad"
)

var bounds = energy.DefaultBounds

func exact() float64 { return energy.ExactIntegral(bounds) }

func TestExact(t *testing.T) {
	c, err := analysis.Compare(energy.Energy, bounds, exact(), 1000)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Exact(&buf, c))
	out := buf.String()
	for _, want := range []string{
		"F(1.1) = 7.46207280",
		"F(8) = 174.79232000",
		"= 167.33024720",
		"(n = 1000)",
		"Trapezoid O(h^2):",
		"Simpson O(h^4):",
		"rel error 0.000090%",
		"rel error 0.000000%",
	} {
		assert.Contains(t, out, want)
	}
}

func TestMethodSimpsonAdjusted(t *testing.T) {
	res, err := quad.SimpsonRule.Apply(energy.Energy, bounds.A, bounds.B, 11)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Method(&buf, bounds, res, exact(), time.Millisecond))
	out := buf.String()
	assert.Contains(t, out, "n = 11 is odd")
	assert.Contains(t, out, "using n = 12")
	assert.Contains(t, out, "h = 0.575000")
	assert.NotContains(t, out, "Mode:")
}

func TestMethodRectangle(t *testing.T) {
	res, err := quad.RectangleLeft.Apply(energy.Energy, bounds.A, bounds.B, 10)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Method(&buf, bounds, res, exact(), 0))
	out := buf.String()
	assert.Contains(t, out, "Rectangles (left)")
	assert.Contains(t, out, "Mode:           left")
	assert.Contains(t, out, "h = 0.690000")
	assert.NotContains(t, out, "odd")
}

func TestConvergenceTable(t *testing.T) {
	rep, err := analysis.Analyze(quad.TrapezoidRule, energy.Energy, bounds, exact(), analysis.DefaultNValues)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Convergence(&buf, rep))
	out := buf.String()
	lines := strings.Split(out, "\n")

	var first string
	for _, l := range lines {
		if strings.HasPrefix(strings.TrimSpace(l), "10 |") {
			first = l
			break
		}
	}
	require.NotEmpty(t, first)
	assert.Contains(t, first, "---")
	assert.Contains(t, out, "Empirical order: 2.00 (theoretical 2)")
	assert.Contains(t, out, "Time ms")
}

func TestConvergenceElapsed(t *testing.T) {
	rep := analysis.Report{
		Method: quad.TrapezoidRule,
		Bounds: bounds,
		Exact:  exact(),
		Rows:   []analysis.Row{{N: 10, Used: 10, Value: 167, Elapsed: 1500 * time.Microsecond}},
	}
	var buf bytes.Buffer
	require.NoError(t, Convergence(&buf, rep))
	assert.Contains(t, buf.String(), "|     1.5000 |")
}

func TestGridTable(t *testing.T) {
	g, err := analysis.RectangleGrid(energy.Energy, bounds, exact(), quad.Modes, analysis.GridN)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Grid(&buf, g, energy.Models()))
	out := buf.String()
	assert.Contains(t, out, "RECTANGLE METHOD RESULTS WITH AI MODELS")
	assert.Contains(t, out, "Exact integral: 167.33024720")
	assert.Contains(t, out, "Mistral-7B")
	for _, want := range []string{
		"    left |     10 |     144.38514781",
		"     mid |    100 |     167.32268163",
		"   right |   1000 |     167.57493753",
	} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, string(analysis.UltraHigh))
}

func TestComparisonTable(t *testing.T) {
	c, err := analysis.Compare(energy.Energy, bounds, exact(), 11)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Comparison(&buf, c))
	out := buf.String()
	for _, m := range quad.Methods {
		assert.Contains(t, out, m.Label())
	}
	assert.Contains(t, out, "Simpson O(h^4) n=12")
	assert.Contains(t, out, "Best rectangle method: Rectangles (mid)")
	assert.Contains(t, out, "Most accurate: Simpson O(h^4)")
	assert.Contains(t, out, "Gauss-Legendre (64 nodes)")
}

func TestModels(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Models(&buf, energy.Models()))
	out := buf.String()
	assert.Contains(t, out, "TinyLLaMA")
	assert.Contains(t, out, "Models evaluated: 5")
	assert.Contains(t, out, "Total energy: 74.90 Wh")
	assert.Contains(t, out, "Most efficient: TinyLLaMA")

	buf.Reset()
	require.NoError(t, Models(&buf, nil))
	assert.NotContains(t, buf.String(), "Models evaluated")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteError(t *testing.T) {
	assert.Error(t, Models(failWriter{}, energy.Models()))
}
