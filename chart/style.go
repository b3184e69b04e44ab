package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"integral/config"
	"integral/quad"
)

// logFloor 对数坐标下零误差的替代值
const logFloor = 1e-16

// stylePlot 统一字体与坐标轴样式
func stylePlot(p *plot.Plot) {
	p.Title.TextStyle.Font.Size = vg.Points(13)
	p.Title.Padding = vg.Points(8)

	p.X.Label.TextStyle.Font.Size = vg.Points(11)
	p.Y.Label.TextStyle.Font.Size = vg.Points(11)
	p.X.Label.Padding = vg.Points(6)
	p.Y.Label.Padding = vg.Points(6)

	p.X.Tick.Label.Font.Size = vg.Points(9)
	p.Y.Tick.Label.Font.Size = vg.Points(9)

	p.Legend.TextStyle.Font.Size = vg.Points(9)
	p.Legend.Top = true

	grid := plotter.NewGrid()
	grid.Vertical.Color = color.Gray{Y: 210}
	grid.Horizontal.Color = color.Gray{Y: 210}
	grid.Vertical.Dashes = []vg.Length{vg.Points(1), vg.Points(2)}
	grid.Horizontal.Dashes = []vg.Length{vg.Points(1), vg.Points(2)}
	p.Add(grid)
}

// newPlot 创建带标题和坐标轴标签的图
func newPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	stylePlot(p)
	return p
}

// setLogLog 双对数坐标
func setLogLog(p *plot.Plot) {
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
}

// limitedTicker 线性坐标下限制刻度数量
func limitedTicker(maxLabels int, labelFmt string) plot.Ticker {
	if maxLabels < 2 {
		maxLabels = 2
	}
	return plot.TickerFunc(func(min, max float64) []plot.Tick {
		if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
			return nil
		}
		if min == max {
			return []plot.Tick{{Value: min, Label: fmt.Sprintf(labelFmt, min)}}
		}
		step := (max - min) / float64(maxLabels-1)
		ticks := make([]plot.Tick, 0, maxLabels)
		for i := 0; i < maxLabels; i++ {
			v := min + float64(i)*step
			ticks = append(ticks, plot.Tick{Value: v, Label: fmt.Sprintf(labelFmt, v)})
		}
		return ticks
	})
}

// methodColor 方法对应的调色板颜色
func methodColor(pal config.Palette, m quad.Method) color.RGBA {
	switch m {
	case quad.RectangleLeft:
		return pal.Color("left")
	case quad.RectangleMid:
		return pal.Color("mid")
	case quad.RectangleRight:
		return pal.Color("right")
	case quad.TrapezoidRule:
		return pal.Color("trapezoid")
	case quad.SimpsonRule:
		return pal.Color("simpson")
	}
	return pal.Color("accent")
}

// translucent 半透明填充色
func translucent(c color.RGBA, alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

func dashed() []vg.Length { return []vg.Length{vg.Points(6), vg.Points(4)} }

// positive 对数坐标要求正值
func positive(v float64) float64 {
	if v <= 0 || math.IsNaN(v) {
		return logFloor
	}
	return v
}
