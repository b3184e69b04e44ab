package chart

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"

	"integral/config"
)

// Saver 按配置把图写入 PNG 与 PDF 目录
type Saver struct {
	Output config.Output
	Chart  config.Chart
}

// NewSaver 创建保存器
func NewSaver(cfg config.Config) *Saver {
	return &Saver{Output: cfg.Output, Chart: cfg.Chart}
}

// Save 保存图片，返回写出的文件路径
func (s *Saver) Save(fig Figure) ([]string, error) {
	if len(fig.Plots) == 0 || len(fig.Plots[0]) == 0 {
		return nil, fmt.Errorf("figure %q has no plots", fig.Name)
	}
	var paths []string
	if s.Output.Wants("png") {
		path := filepath.Join(s.Output.PNGDir(), fig.Name+".png")
		if err := s.write(path, fig, s.png); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	if s.Output.Wants("pdf") {
		path := filepath.Join(s.Output.PDFDir(), fig.Name+".pdf")
		if err := s.write(path, fig, s.pdf); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	slog.Info("figure saved", slog.String("name", fig.Name), slog.Any("paths", paths))
	return paths, nil
}

func (s *Saver) size() (vg.Length, vg.Length) {
	return vg.Length(s.Chart.Width) * vg.Inch, vg.Length(s.Chart.Height) * vg.Inch
}

func (s *Saver) write(path string, fig Figure, encode func(io.Writer, Figure) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create the output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := encode(f, fig); err != nil {
		f.Close()
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	return f.Close()
}

func (s *Saver) png(w io.Writer, fig Figure) error {
	width, height := s.size()
	img := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(s.Chart.DPI))
	drawTiles(draw.New(img), fig.Plots)
	_, err := vgimg.PngCanvas{Canvas: img}.WriteTo(w)
	return err
}

func (s *Saver) pdf(w io.Writer, fig Figure) error {
	width, height := s.size()
	c := vgpdf.New(width, height)
	drawTiles(draw.New(c), fig.Plots)
	_, err := c.WriteTo(w)
	return err
}

// drawTiles 按网格对齐并绘制子图
func drawTiles(dc draw.Canvas, plots [][]*plot.Plot) {
	tiles := draw.Tiles{
		Rows:      len(plots),
		Cols:      len(plots[0]),
		PadX:      vg.Points(24),
		PadY:      vg.Points(24),
		PadTop:    vg.Points(8),
		PadBottom: vg.Points(8),
		PadLeft:   vg.Points(8),
		PadRight:  vg.Points(8),
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j, p := range plots[i] {
			if p != nil {
				p.Draw(canvases[i][j])
			}
		}
	}
}
