package chart

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"integral/analysis"
	"integral/config"
	"integral/energy"
	"integral/maths"
	"integral/quad"
)

// Figure 一张输出图，Plots 按行列排列子图
type Figure struct {
	Name  string
	Plots [][]*plot.Plot
}

// ConvergenceFigure 单一方法的收敛图：近似值随 n 变化，以及双对数误差与 O(h^k) 参考线
func ConvergenceFigure(rep analysis.Report, pal config.Palette) (Figure, error) {
	if len(rep.Rows) == 0 {
		return Figure{}, fmt.Errorf("convergence figure: empty report for %s", rep.Method)
	}
	c := methodColor(pal, rep.Method)
	values := make(plotter.XYs, len(rep.Rows))
	errs := make(plotter.XYs, len(rep.Rows))
	for i, row := range rep.Rows {
		values[i] = plotter.XY{X: float64(row.Used), Y: row.Value}
		errs[i] = plotter.XY{X: float64(row.Used), Y: positive(row.AbsError)}
	}

	left := newPlot("Integral convergence", "Subintervals (n)", "Integral value ("+energy.Unit+")")
	line, points, err := plotter.NewLinePoints(values)
	if err != nil {
		return Figure{}, err
	}
	line.LineStyle.Color, line.LineStyle.Width = c, vg.Points(2)
	points.GlyphStyle.Color, points.GlyphStyle.Shape = c, draw.CircleGlyph{}
	exact := plotter.NewFunction(func(float64) float64 { return rep.Exact })
	exact.XMin, exact.XMax = values[0].X, values[len(values)-1].X
	exact.LineStyle.Color, exact.LineStyle.Width = pal.Color("exact"), vg.Points(2)
	exact.LineStyle.Dashes = dashed()
	left.Add(line, points, exact)
	left.Legend.Add(rep.Method.Label(), line, points)
	left.Legend.Add("Exact integral", exact)
	left.Y.Tick.Marker = limitedTicker(8, "%.3f")

	right := newPlot("Error convergence (log-log)", "Subintervals (n)", "Absolute error")
	setLogLog(right)
	eline, epoints, err := plotter.NewLinePoints(errs)
	if err != nil {
		return Figure{}, err
	}
	eline.LineStyle.Color, eline.LineStyle.Width = c, vg.Points(2)
	epoints.GlyphStyle.Color, epoints.GlyphStyle.Shape = c, draw.CircleGlyph{}
	ref, err := referenceLine(errs, rep.Order())
	if err != nil {
		return Figure{}, err
	}
	right.Add(eline, epoints, ref)
	right.Legend.Add("Absolute error", eline, epoints)
	right.Legend.Add(fmt.Sprintf("Reference O(h^%d)", rep.Order()), ref)

	return Figure{Name: rep.Method.String() + "_convergence", Plots: [][]*plot.Plot{{left, right}}}, nil
}

// referenceLine 过首个误差点、斜率为 -order 的参考线
func referenceLine(errs plotter.XYs, order int) (*plotter.Line, error) {
	first, last := errs[0], errs[len(errs)-1]
	pts := plotter.XYs{
		{X: first.X, Y: first.Y},
		{X: last.X, Y: positive(first.Y * math.Pow(first.X/last.X, float64(order)))},
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Width = vg.Points(1.5)
	l.LineStyle.Dashes = dashed()
	return l, nil
}

// AreaFigure 能耗曲线下的面积与原函数 F(N)
func AreaFigure(b energy.Bounds, exact float64, samples int, pal config.Palette) (Figure, error) {
	xs := maths.Span(b.A, b.B, samples)

	left := newPlot("Energy function E(N) with area under the curve", "Model parameters (billions)", "Energy consumption (Wh)")
	area := make(plotter.XYs, 0, len(xs)+2)
	area = append(area, plotter.XY{X: b.A, Y: 0})
	for _, x := range xs {
		area = append(area, plotter.XY{X: x, Y: energy.Energy(x)})
	}
	area = append(area, plotter.XY{X: b.B, Y: 0})
	poly, err := plotter.NewPolygon(area)
	if err != nil {
		return Figure{}, err
	}
	poly.Color = translucent(pal.Color("curve"), 64)
	poly.LineStyle.Width = 0
	curve := curveFunction(b, samples, pal)
	left.Add(poly, curve)
	left.Legend.Add(fmt.Sprintf("Area = %.4f %s", exact, energy.Unit), poly)
	left.Legend.Add("E(N)", curve)
	left.Legend.Left = true
	left.Y.Min = 0

	right := newPlot("Antiderivative F(N)", "Model parameters (billions)", "F(N)")
	prim := plotter.NewFunction(energy.Antiderivative)
	prim.XMin, prim.XMax, prim.Samples = b.A, b.B, samples
	prim.LineStyle.Color, prim.LineStyle.Width = pal.Color("primitive"), vg.Points(2.5)
	fa, fb := energy.Antiderivative(b.A), energy.Antiderivative(b.B)
	ends, err := plotter.NewScatter(plotter.XYs{{X: b.A, Y: fa}, {X: b.B, Y: fb}})
	if err != nil {
		return Figure{}, err
	}
	ends.GlyphStyle.Color, ends.GlyphStyle.Radius = pal.Color("accent"), vg.Points(4)
	ends.GlyphStyle.Shape = draw.CircleGlyph{}
	diff, err := plotter.NewLine(plotter.XYs{{X: b.B, Y: fa}, {X: b.B, Y: fb}})
	if err != nil {
		return Figure{}, err
	}
	diff.LineStyle.Color, diff.LineStyle.Dashes = pal.Color("curve"), dashed()
	right.Add(prim, ends, diff)
	right.Legend.Add("F(N)", prim)
	right.Legend.Add(fmt.Sprintf("F(%g) = %.4f, F(%g) = %.4f", b.A, fa, b.B, fb), ends)
	right.Legend.Add(fmt.Sprintf("Z = F(b) - F(a) = %.4f", fb-fa), diff)
	right.Legend.Left = true

	return Figure{Name: "antiderivative_area", Plots: [][]*plot.Plot{{left, right}}}, nil
}

// RectanglesFigure 能耗曲线下的 n 个矩形，叠加参考模型的实测能耗
func RectanglesFigure(b energy.Bounds, n int, mode quad.Mode, samples int, pal config.Palette, models []energy.Model) (Figure, error) {
	p, _, err := rectanglesPlot(fmt.Sprintf("Riemann sum (%s), n = %d", mode, n), b, n, mode, samples, pal, models)
	if err != nil {
		return Figure{}, err
	}
	return Figure{Name: fmt.Sprintf("rectangles_%s_n%d", mode, n), Plots: [][]*plot.Plot{{p}}}, nil
}

// ModeConvergenceFigure 同一模式下不同 n 的矩形，一行一个 n
func ModeConvergenceFigure(b energy.Bounds, exact float64, mode quad.Mode, ns []int, samples int, pal config.Palette, models []energy.Model) (Figure, error) {
	if len(ns) == 0 {
		return Figure{}, fmt.Errorf("%w: empty n list", quad.ErrInvalidCount)
	}
	row := make([]*plot.Plot, 0, len(ns))
	for _, n := range ns {
		p, approx, err := rectanglesPlot("", b, n, mode, samples, pal, models)
		if err != nil {
			return Figure{}, err
		}
		p.Title.Text = fmt.Sprintf("%s, n = %d, error %.3f%%", mode, n, analysis.RelativeError(approx, exact))
		row = append(row, p)
	}
	return Figure{Name: "rectangles_convergence_" + mode.String(), Plots: [][]*plot.Plot{row}}, nil
}

// ModesFigure 同一 n 下三种模式的矩形对比
func ModesFigure(b energy.Bounds, exact float64, n int, samples int, pal config.Palette, models []energy.Model) (Figure, error) {
	row := make([]*plot.Plot, 0, len(quad.Modes))
	for _, mode := range quad.Modes {
		p, approx, err := rectanglesPlot("", b, n, mode, samples, pal, models)
		if err != nil {
			return Figure{}, err
		}
		p.Title.Text = fmt.Sprintf("%s, n = %d, error %.3f%%", mode, n, analysis.RelativeError(approx, exact))
		row = append(row, p)
	}
	return Figure{Name: fmt.Sprintf("rectangles_modes_n%d", n), Plots: [][]*plot.Plot{row}}, nil
}

// rectanglesPlot 单个矩形子图，返回子图与近似值
func rectanglesPlot(title string, b energy.Bounds, n int, mode quad.Mode, samples int, pal config.Palette, models []energy.Model) (*plot.Plot, float64, error) {
	xs, heights, err := quad.RectangleHeights(energy.Energy, b.A, b.B, n, mode)
	if err != nil {
		return nil, 0, err
	}
	m, err := quad.RectangleMethod(mode)
	if err != nil {
		return nil, 0, err
	}
	h := b.Step(n)
	approx := h * maths.Sum(heights)
	c := methodColor(pal, m)
	p := newPlot(title, "Model parameters (billions)", "Energy consumption (Wh)")
	for i, x := range xs {
		rect, err := plotter.NewPolygon(plotter.XYs{
			{X: x, Y: 0}, {X: x + h, Y: 0}, {X: x + h, Y: heights[i]}, {X: x, Y: heights[i]},
		})
		if err != nil {
			return nil, 0, err
		}
		rect.Color = translucent(c, 90)
		rect.LineStyle.Color, rect.LineStyle.Width = c, vg.Points(0.5)
		p.Add(rect)
		if i == 0 {
			p.Legend.Add(fmt.Sprintf("Rectangles: %.6f %s", approx, energy.Unit), rect)
		}
	}
	curve := curveFunction(b, samples, pal)
	p.Add(curve)
	p.Legend.Add("E(N)", curve)
	if len(models) > 0 {
		pts := make(plotter.XYs, len(models))
		for i, md := range models {
			pts[i] = plotter.XY{X: md.Params, Y: md.Energy}
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, 0, err
		}
		sc.GlyphStyle.Color, sc.GlyphStyle.Radius = pal.Color("exact"), vg.Points(4)
		sc.GlyphStyle.Shape = draw.PyramidGlyph{}
		p.Add(sc)
		p.Legend.Add("Measured models", sc)
	}
	p.Legend.Left = true
	p.Y.Min = 0
	return p, approx, nil
}

// MethodsFigure 全部方法误差的双对数对比
func MethodsFigure(reps []analysis.Report, pal config.Palette) (Figure, error) {
	if len(reps) == 0 {
		return Figure{}, fmt.Errorf("methods figure: no reports")
	}
	p := newPlot("Numerical methods comparison", "Subintervals (n)", "Absolute error")
	setLogLog(p)
	for _, rep := range reps {
		errs := make(plotter.XYs, len(rep.Rows))
		for i, row := range rep.Rows {
			errs[i] = plotter.XY{X: float64(row.Used), Y: positive(row.AbsError)}
		}
		line, points, err := plotter.NewLinePoints(errs)
		if err != nil {
			return Figure{}, err
		}
		c := methodColor(pal, rep.Method)
		line.LineStyle.Color, line.LineStyle.Width = c, vg.Points(2)
		points.GlyphStyle.Color, points.GlyphStyle.Shape = c, draw.CircleGlyph{}
		p.Add(line, points)
		p.Legend.Add(rep.Method.Label(), line, points)
	}
	p.Legend.Top = false
	p.Legend.Left = true
	return Figure{Name: "methods_comparison", Plots: [][]*plot.Plot{{p}}}, nil
}

func curveFunction(b energy.Bounds, samples int, pal config.Palette) *plotter.Function {
	fn := plotter.NewFunction(energy.Energy)
	fn.XMin, fn.XMax, fn.Samples = b.A, b.B, samples
	fn.LineStyle.Color, fn.LineStyle.Width = pal.Color("curve"), vg.Points(2.5)
	return fn
}
