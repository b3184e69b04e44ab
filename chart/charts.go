package chart

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Charts 收敛曲线网页
type Charts struct {
	Record
}

func lineOptions(title, subtitle, yName, yType string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Energy integral",
			Theme:     types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "n",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  yName,
			Type:  yType,
			Scale: opts.Bool(true),
		}),
		charts.WithAnimation(true),
	}
}

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	if len(c.Methods) == 0 {
		return fmt.Errorf("charts: no convergence data recorded")
	}
	xs := make([]string, len(c.N))
	for i, n := range c.N {
		xs[i] = fmt.Sprint(n)
	}

	lineV := charts.NewLine()
	lineV.SetGlobalOptions(lineOptions("Integral convergence",
		fmt.Sprintf("Exact Z = %.8f on %s", c.Exact, c.Bounds), "Value", "value")...)
	lineV.SetXAxis(xs)

	lineE := charts.NewLine()
	lineE.SetGlobalOptions(lineOptions("Absolute error", "log scale", "|error|", "log")...)
	lineE.SetXAxis(xs)

	for i, name := range c.Methods {
		values := make([]opts.LineData, len(c.N))
		errs := make([]opts.LineData, len(c.N))
		for j := range c.N {
			values[j] = opts.LineData{Value: c.Value[i][j]}
			errs[j] = opts.LineData{Value: positive(c.AbsError[i][j])}
		}
		lineV.AddSeries(name, values)
		lineE.AddSeries(name, errs)
	}
	exact := make([]opts.LineData, len(c.N))
	for j := range exact {
		exact[j] = opts.LineData{Value: c.Exact}
	}
	lineV.AddSeries("Exact", exact, charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"}))

	// 能耗曲线
	lineC := charts.NewLine()
	lineC.SetGlobalOptions(lineOptions("Energy function E(N)", c.Formula, "Wh", "value")...)
	lineC.SetGlobalOptions(charts.WithXAxisOpts(opts.XAxis{Name: "N (billions)"}))
	labels := make([]string, len(c.Curve))
	curve := make([]opts.LineData, len(c.Curve))
	for i, p := range c.Curve {
		labels[i] = fmt.Sprintf("%.3f", p[0])
		curve[i] = opts.LineData{Value: p[1]}
	}
	lineC.SetXAxis(labels)
	lineC.AddSeries("E(N)", curve,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), ShowSymbol: opts.Bool(false)}),
		charts.WithAreaStyleOpts(opts.AreaStyle{Color: "#C6282840"}),
	)

	page := components.NewPage()
	page.PageTitle = "Energy integral " + c.RunID
	page.AddCharts(
		lineV,
		lineE,
		lineC,
	)
	return page.Render(w)
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	if err := c.Render(w); err != nil {
		slog.Error("render charts", slog.Any("err", err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
