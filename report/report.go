package report

import (
	"fmt"
	"io"
	"math"
	"time"

	"integral/analysis"
	"integral/energy"
	"integral/export"
	"integral/quad"
)

// Exact 解析解报告：F(a)、F(b)、Z，以及 c.N 下梯形法与 Simpson 法的校验
func Exact(w io.Writer, c analysis.Comparison) error {
	p := &printer{w: w}
	b := c.Bounds
	p.title("ANALYTIC SOLUTION: FUNDAMENTAL THEOREM OF CALCULUS")
	p.line(energy.Formula())
	p.line(energy.PrimitiveFormula())
	p.line("")
	p.printf("F(%g) = %.8f\n", b.A, energy.Antiderivative(b.A))
	p.printf("F(%g) = %.8f\n", b.B, energy.Antiderivative(b.B))
	p.line(Styles.Box.Render(Styles.Bold.Render(fmt.Sprintf("Z = F(%g) - F(%g) = %.8f %s", b.B, b.A, c.Exact, energy.Unit))))
	p.line("")
	p.header("Validation with numerical methods (n = %d)", c.N)
	for _, m := range []quad.Method{quad.TrapezoidRule, quad.SimpsonRule} {
		e, ok := c.Get(m)
		if !ok {
			continue
		}
		p.printf("%-18s %.8f  abs error %.2e  rel error %.6f%%\n", e.Method.Label()+":", e.Value, e.AbsError, e.RelError)
	}
	return p.err
}

// Method 单一方法在单个 n 下的结果
func Method(w io.Writer, b energy.Bounds, res quad.Result, exact float64, elapsed time.Duration) error {
	p := &printer{w: w}
	p.title(res.Method.Label())
	if res.Adjusted {
		p.line(Styles.Warning.Render(fmt.Sprintf("n = %d is odd, Simpson's rule requires an even n: using n = %d", res.N, res.Used)))
	}
	p.printf("Interval:       %s\n", b)
	p.printf("Subintervals:   n = %d\n", res.Used)
	p.printf("Width:          h = %.6f\n", b.Step(res.Used))
	if mode, ok := res.Method.Mode(); ok {
		p.printf("Mode:           %s\n", mode)
	}
	p.printf("Approximation:  %.10f %s\n", res.Value, energy.Unit)
	p.printf("Exact:          %.10f %s\n", exact, energy.Unit)
	p.printf("Abs error:      %.2e\n", analysis.AbsoluteError(res.Value, exact))
	rel := analysis.RelativeError(res.Value, exact)
	p.printf("Rel error:      %.6f%% (%s)\n", rel, analysis.Classify(rel))
	p.line(Styles.Muted.Render("Elapsed:        " + elapsed.String()))
	return p.err
}

// Convergence 收敛表，首行细分误差为 ---
func Convergence(w io.Writer, rep analysis.Report) error {
	p := &printer{w: w}
	p.title(fmt.Sprintf("CONVERGENCE ANALYSIS: %s", rep.Method.Label()))
	p.printf("Exact value: %.10f %s on %s\n\n", rep.Exact, energy.Unit, rep.Bounds)
	p.header("%6s | %18s | %12s | %14s | %10s | %s", "n", "Integral", "Abs error", "Refinement %", "Time ms", "Precision")
	for _, r := range rep.Rows {
		refinement := "---"
		if r.HasRefinement {
			refinement = fmt.Sprintf("%.8f", r.Refinement)
		}
		p.printf("%6d | %18.10f | %12.2e | %14s | %10.4f | %s\n", r.Used, r.Value, r.AbsError, refinement, milliseconds(r.Elapsed), precision(r.Precision))
	}
	p.rule()
	if order := rep.MeanOrder(); !math.IsNaN(order) {
		p.printf("Empirical order: %.2f (theoretical %d)\n", order, rep.Order())
	}
	return p.err
}

// Comparison 同一 n 下五种方法的对比表
func Comparison(w io.Writer, c analysis.Comparison) error {
	p := &printer{w: w}
	p.title(fmt.Sprintf("COMPARISON OF METHODS (n = %d)", c.N))
	p.header("%-20s | %18s | %12s | %12s | %s", "Method", "Integral", "Abs error", "Rel error %", "Precision")
	p.printf("%-20s | %18.10f | %12s | %12s | %s\n", "Exact", c.Exact, "---", "---", "---")
	for _, e := range c.Entries {
		name := e.Method.Label()
		if e.Adjusted {
			name = fmt.Sprintf("%s n=%d", name, e.Used)
		}
		p.printf("%-20s | %18.10f | %12.2e | %12.6f | %s\n", name, e.Value, e.AbsError, e.RelError, precision(e.Precision))
	}
	p.rule()
	p.printf("Gauss-Legendre (%d nodes): %.10f\n", quad.ReferenceNodes, c.Reference)
	if len(c.Entries) > 0 {
		rect := c.BestRectangle()
		best := c.Best()
		p.printf("Best rectangle method: %s (error: %.4f%%)\n", rect.Method.Label(), rect.RelError)
		p.line(Styles.Success.Render(fmt.Sprintf("Most accurate: %s (error: %.6f%%)", best.Method.Label(), best.RelError)))
	}
	return p.err
}

// Grid 矩形法在各模式与 n 下的结果表，附参考模型列表
func Grid(w io.Writer, g analysis.Grid, ms []energy.Model) error {
	p := &printer{w: w}
	p.title("RECTANGLE METHOD RESULTS WITH AI MODELS")
	p.printf("Exact integral: %.8f %s\n", g.Exact, energy.Unit)
	p.printf("Interval: %s\n", g.Bounds)
	if len(ms) > 0 {
		p.line("")
		p.header("Models evaluated")
		for _, m := range ms {
			p.printf("  %-12s %4.1fB parameters, %5.1f Wh measured\n", m.Name, m.Params, m.Energy)
		}
	}
	p.line("")
	p.header("%8s | %6s | %16s | %12s | %12s | %s", "Mode", "n", "Approx. area", "Abs error", "Rel error %", "Precision")
	for i, mode := range g.Modes {
		if i > 0 {
			p.rule()
		}
		for _, c := range g.ByMode(mode) {
			p.printf("%8s | %6d | %16.8f | %12.2e | %12.6f | %s\n", c.Mode, c.N, c.Value, c.AbsError, c.RelError, precision(c.Precision))
		}
	}
	p.rule()
	return p.err
}

// Models 参考模型表与统计
func Models(w io.Writer, ms []energy.Model) error {
	p := &printer{w: w}
	p.title("REFERENCE MODELS")
	p.header("%-12s | %6s | %8s | %9s | %9s | %10s", "Model", "Params", "Tok/s", "Energy Wh", "E(N) Wh", "Tok/Wh")
	for _, m := range ms {
		p.printf("%-12s | %6.1f | %8.1f | %9.1f | %9.2f | %10.2f\n", m.Name, m.Params, m.TokensPerSec, m.Energy, m.Predicted(), m.Efficiency())
	}
	p.rule()
	if len(ms) == 0 {
		return p.err
	}
	s := export.Summarize(ms)
	p.printf("Models evaluated: %d\n", s.Count)
	p.printf("Total energy: %.2f Wh\n", s.TotalEnergy)
	p.printf("Mean energy: %.2f ± %.2f Wh\n", s.MeanEnergy, s.StdEnergy)
	p.printf("Most efficient: %s (%.2f tokens/Wh)\n", s.MostEfficient.Name, s.MostEfficient.Efficiency())
	p.printf("Least efficient: %s (%.2f tokens/Wh)\n", s.LeastEfficient.Name, s.LeastEfficient.Efficiency())
	p.printf("Size-energy correlation: %.4f\n", s.Correlation)
	return p.err
}

func milliseconds(d time.Duration) float64 { return float64(d) / float64(time.Millisecond) }

func precision(pr analysis.Precision) string {
	switch pr {
	case analysis.UltraHigh, analysis.VeryHigh:
		return Styles.Success.Render(string(pr))
	case analysis.Low:
		return Styles.Warning.Render(string(pr))
	}
	return string(pr)
}
