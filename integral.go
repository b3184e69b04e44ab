// Package integral 能耗曲线 E(N) 的定积分工作台
//
// Workbench 把配置、求积公式、误差分析与报告/图表/导出串在一起，
// 命令行与交互菜单都只通过它工作。
package integral

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"integral/analysis"
	"integral/chart"
	"integral/config"
	"integral/energy"
	"integral/export"
	"integral/quad"
	"integral/report"
)

// RectangleChartN charts 命令为每种模式绘制的矩形数
var RectangleChartN = []int{10, 100}

// Workbench 积分工作台
type Workbench struct {
	Config config.Config
	Out    io.Writer // 报告输出

	exact  float64
	saver  *chart.Saver
	writer *export.Writer
}

// New 校验配置并初始化，精确值只计算一次
func New(cfg config.Config, out io.Writer) (*Workbench, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if out == nil {
		out = os.Stdout
	}
	return &Workbench{
		Config: cfg,
		Out:    out,
		exact:  energy.ExactIntegral(cfg.Bounds),
		saver:  chart.NewSaver(cfg),
		writer: export.New(cfg.Output.ResultsDir()),
	}, nil
}

// Exact 区间上的精确积分
func (wb *Workbench) Exact() float64 { return wb.exact }

// Bounds 积分区间
func (wb *Workbench) Bounds() energy.Bounds { return wb.Config.Bounds }

// ExactReport 输出解析解与 ValidationN 下的数值校验
func (wb *Workbench) ExactReport() error {
	c, err := analysis.Compare(energy.Energy, wb.Bounds(), wb.exact, wb.Config.ValidationN)
	if err != nil {
		return err
	}
	return report.Exact(wb.Out, c)
}

// Run 以单一方法求积并输出报告
func (wb *Workbench) Run(m quad.Method, n int) (quad.Result, error) {
	b := wb.Bounds()
	start := time.Now()
	res, err := m.Apply(energy.Energy, b.A, b.B, n)
	if err != nil {
		return quad.Result{}, err
	}
	elapsed := time.Since(start)
	slog.Debug("quadrature", slog.String("method", m.String()), slog.Int("n", res.Used), slog.Float64("value", res.Value))
	return res, report.Method(wb.Out, b, res, wb.exact, elapsed)
}

// Compare 同一 n 下对比全部方法，并写出对比表
func (wb *Workbench) Compare(n int) (analysis.Comparison, error) {
	c, err := analysis.Compare(energy.Energy, wb.Bounds(), wb.exact, n)
	if err != nil {
		return analysis.Comparison{}, err
	}
	if err := report.Comparison(wb.Out, c); err != nil {
		return c, err
	}
	if _, err := wb.writer.Comparison(c); err != nil {
		return c, err
	}
	return c, nil
}

// Converge 单一方法的收敛分析：输出收敛表，写出 CSV 与收敛图
// extra 中的 n 并入配置的 n 序列
func (wb *Workbench) Converge(m quad.Method, extra ...int) (analysis.Report, error) {
	ns := analysis.MergeN(wb.Config.NValues, extra...)
	rep, err := analysis.Analyze(m, energy.Energy, wb.Bounds(), wb.exact, ns)
	if err != nil {
		return analysis.Report{}, err
	}
	if err := report.Convergence(wb.Out, rep); err != nil {
		return rep, err
	}
	if _, err := wb.writer.Convergence(rep); err != nil {
		return rep, err
	}
	fig, err := chart.ConvergenceFigure(rep, wb.Config.Chart.Palette)
	if err != nil {
		return rep, err
	}
	_, err = wb.saver.Save(fig)
	return rep, err
}

// Rectangles 绘制 n 个矩形的可视化图
func (wb *Workbench) Rectangles(n int, mode quad.Mode) ([]string, error) {
	fig, err := chart.RectanglesFigure(wb.Bounds(), n, mode, wb.Config.Chart.CurveSamples, wb.Config.Chart.Palette, energy.Models())
	if err != nil {
		return nil, err
	}
	return wb.saver.Save(fig)
}

// ModelComparison 矩形法在每个模式与 analysis.GridN 下的结果表，
// 写出对照 CSV、每个模式的收敛图与每个 n 的模式对比图
func (wb *Workbench) ModelComparison() ([]string, error) {
	cfg := wb.Config
	b := wb.Bounds()
	ms := energy.Models()
	if mb, err := energy.ModelBounds(ms); err == nil && mb != b {
		slog.Warn("integration bounds differ from the model range", slog.String("bounds", b.String()), slog.String("models", mb.String()))
	}
	g, err := analysis.RectangleGrid(energy.Energy, b, wb.exact, quad.Modes, analysis.GridN)
	if err != nil {
		return nil, err
	}
	if err := report.Grid(wb.Out, g, ms); err != nil {
		return nil, err
	}
	path, err := wb.writer.Grid(g)
	if err != nil {
		return nil, err
	}
	files := []string{path}

	figs := make([]func() (chart.Figure, error), 0, len(g.Modes)+len(g.Ns))
	for _, mode := range g.Modes {
		figs = append(figs, func() (chart.Figure, error) {
			return chart.ModeConvergenceFigure(b, wb.exact, mode, g.Ns, cfg.Chart.CurveSamples, cfg.Chart.Palette, ms)
		})
	}
	for _, n := range g.Ns {
		figs = append(figs, func() (chart.Figure, error) {
			return chart.ModesFigure(b, wb.exact, n, cfg.Chart.CurveSamples, cfg.Chart.Palette, ms)
		})
	}
	for _, build := range figs {
		fig, err := build()
		if err != nil {
			return files, err
		}
		paths, err := wb.saver.Save(fig)
		files = append(files, paths...)
		if err != nil {
			return files, err
		}
	}
	return files, nil
}

// Models 输出参考模型表并写出统计
func (wb *Workbench) Models() error {
	ms := energy.Models()
	if err := report.Models(wb.Out, ms); err != nil {
		return err
	}
	_, err := wb.writer.ModelStatistics(ms)
	return err
}

// Charts 生成全部图表、网页、CSV 与运行记录，返回写出的文件
func (wb *Workbench) Charts() ([]string, error) {
	cfg := wb.Config
	b := wb.Bounds()
	c, reps, err := wb.analyzeAll()
	if err != nil {
		return nil, err
	}

	var files []string
	save := func(fig chart.Figure, err error) error {
		if err != nil {
			return err
		}
		paths, err := wb.saver.Save(fig)
		files = append(files, paths...)
		return err
	}
	keep := func(path string, err error) error {
		if err == nil {
			files = append(files, path)
		}
		return err
	}

	for _, rep := range reps {
		if err := save(chart.ConvergenceFigure(rep, cfg.Chart.Palette)); err != nil {
			return files, err
		}
		if err := keep(wb.writer.Convergence(rep)); err != nil {
			return files, err
		}
	}
	if err := save(chart.MethodsFigure(reps, cfg.Chart.Palette)); err != nil {
		return files, err
	}
	if err := save(chart.AreaFigure(b, wb.exact, cfg.Chart.CurveSamples, cfg.Chart.Palette)); err != nil {
		return files, err
	}
	for _, mode := range quad.Modes {
		for _, n := range RectangleChartN {
			paths, err := wb.Rectangles(n, mode)
			files = append(files, paths...)
			if err != nil {
				return files, err
			}
		}
	}

	comparison, err := analysis.Compare(energy.Energy, b, wb.exact, cfg.ValidationN)
	if err != nil {
		return files, err
	}
	if err := keep(wb.writer.Comparison(comparison)); err != nil {
		return files, err
	}
	if err := keep(wb.writer.ModelStatistics(energy.Models())); err != nil {
		return files, err
	}
	if err := keep(wb.writer.Record(&c.Record)); err != nil {
		return files, err
	}
	if err := keep(wb.html(c)); err != nil {
		return files, err
	}
	slog.Info("charts generated", slog.Int("files", len(files)), slog.String("dir", cfg.Output.Dir))
	return files, nil
}

// Page 收敛网页，可直接挂到 http 服务上
func (wb *Workbench) Page() (*chart.Charts, error) {
	c, _, err := wb.analyzeAll()
	return c, err
}

// analyzeAll 对全部方法做收敛分析并记录
func (wb *Workbench) analyzeAll() (*chart.Charts, []analysis.Report, error) {
	cfg := wb.Config
	c := &chart.Charts{}
	c.Init(cfg.Bounds, wb.exact, cfg.NValues, cfg.Chart.CurveSamples)
	reps := make([]analysis.Report, 0, len(quad.Methods))
	for _, m := range quad.Methods {
		rep, err := analysis.Analyze(m, energy.Energy, cfg.Bounds, wb.exact, cfg.NValues)
		if err != nil {
			return nil, nil, err
		}
		reps = append(reps, rep)
		c.Update(rep)
	}
	return c, reps, nil
}

// html 写出 convergence.html
func (wb *Workbench) html(c *chart.Charts) (string, error) {
	dir := wb.Config.Output.HTMLDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create the html directory: %w", err)
	}
	path := filepath.Join(dir, "convergence.html")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := c.Render(f); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to render %s: %w", path, err)
	}
	return path, f.Close()
}
