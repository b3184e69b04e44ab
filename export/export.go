// Package export 把收敛表、方法对比与模型统计写成 CSV，把运行记录写成 JSON
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"integral/analysis"
	"integral/chart"
	"integral/quad"
)

// Writer 结果目录写出器
type Writer struct {
	Dir string
}

// New 创建写出器
func New(dir string) *Writer { return &Writer{Dir: dir} }

// Convergence 写出 convergence_<method>.csv
func (w *Writer) Convergence(rep analysis.Report) (string, error) {
	header := []string{"n", "used_n", "integral", "abs_error", "rel_error_pct", "refinement_pct", "empirical_order", "precision", "elapsed_ms"}
	orders := rep.Orders()
	rows := make([][]string, len(rep.Rows))
	for i, r := range rep.Rows {
		refinement, order := "", ""
		if r.HasRefinement {
			refinement = formatFloat(r.Refinement)
			order = formatFloat(orders[i-1])
		}
		rows[i] = []string{
			strconv.Itoa(r.N), strconv.Itoa(r.Used),
			formatFloat(r.Value), formatFloat(r.AbsError), formatFloat(r.RelError),
			refinement, order, string(r.Precision),
			formatFloat(float64(r.Elapsed) / float64(time.Millisecond)),
		}
	}
	return w.csv("convergence_"+rep.Method.String()+".csv", header, rows)
}

// Comparison 写出 comparison_n<n>.csv，首行为精确值
func (w *Writer) Comparison(c analysis.Comparison) (string, error) {
	header := []string{"method", "used_n", "integral", "abs_error", "rel_error_pct", "precision"}
	rows := make([][]string, 0, len(c.Entries)+2)
	rows = append(rows, []string{"exact", "", formatFloat(c.Exact), "0", "0", ""})
	for _, e := range c.Entries {
		rows = append(rows, []string{
			e.Method.String(), strconv.Itoa(e.Used),
			formatFloat(e.Value), formatFloat(e.AbsError), formatFloat(e.RelError), string(e.Precision),
		})
	}
	rows = append(rows, []string{
		"gauss-legendre", strconv.Itoa(quad.ReferenceNodes), formatFloat(c.Reference),
		formatFloat(analysis.AbsoluteError(c.Reference, c.Exact)),
		formatFloat(analysis.RelativeError(c.Reference, c.Exact)), "",
	})
	return w.csv(fmt.Sprintf("comparison_n%d.csv", c.N), header, rows)
}

// Grid 写出 rectangles_grid.csv，每个模式与 n 一行
func (w *Writer) Grid(g analysis.Grid) (string, error) {
	header := []string{"mode", "n", "integral", "abs_error", "rel_error_pct", "precision"}
	rows := make([][]string, len(g.Cells))
	for i, c := range g.Cells {
		rows[i] = []string{
			c.Mode.String(), strconv.Itoa(c.N),
			formatFloat(c.Value), formatFloat(c.AbsError), formatFloat(c.RelError), string(c.Precision),
		}
	}
	return w.csv("rectangles_grid.csv", header, rows)
}

// Record 写出 run.json
func (w *Writer) Record(rec *chart.Record) (string, error) {
	return w.file("run.json", rec.Render)
}

func (w *Writer) csv(name string, header []string, rows [][]string) (string, error) {
	return w.file(name, func(out io.Writer) error {
		cw := csv.NewWriter(out)
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("csv: cannot write header: %w", err)
		}
		if err := cw.WriteAll(rows); err != nil {
			return fmt.Errorf("csv: cannot write rows: %w", err)
		}
		return nil
	})
}

func (w *Writer) file(name string, render func(io.Writer) error) (string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create the results directory: %w", err)
	}
	path := filepath.Join(w.Dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	slog.Info("results saved", slog.String("path", path))
	return path, nil
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
