package export

import (
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"integral/energy"
)

// Stat 单列描述统计
type Stat struct {
	Column string
	Count  int
	Mean   float64
	Std    float64 // 样本标准差，少于两个样本时为 NaN
	Min    float64
	Max    float64
}

var modelColumns = []struct {
	name string
	get  func(energy.Model) float64
}{
	{"params_b", func(m energy.Model) float64 { return m.Params }},
	{"tokens_per_sec", func(m energy.Model) float64 { return m.TokensPerSec }},
	{"latency_s", func(m energy.Model) float64 { return m.Latency }},
	{"gpu_power_w", func(m energy.Model) float64 { return m.GPUPower }},
	{"ram_gib", func(m energy.Model) float64 { return m.RAM }},
	{"vram_gib", func(m energy.Model) float64 { return m.VRAM }},
	{"energy_total_wh", func(m energy.Model) float64 { return m.Energy }},
	{"efficiency_tokens_per_wh", energy.Model.Efficiency},
	{"predicted_wh", energy.Model.Predicted},
}

// Statistics 模型表每个数值列的统计量
func Statistics(ms []energy.Model) []Stat {
	out := make([]Stat, 0, len(modelColumns))
	if len(ms) == 0 {
		return out
	}
	xs := make([]float64, len(ms))
	for _, col := range modelColumns {
		for i, m := range ms {
			xs[i] = col.get(m)
		}
		mean, std := stat.MeanStdDev(xs, nil)
		out = append(out, Stat{
			Column: col.name,
			Count:  len(xs),
			Mean:   mean,
			Std:    std,
			Min:    floats.Min(xs),
			Max:    floats.Max(xs),
		})
	}
	return out
}

// ModelStatistics 写出 model_statistics.csv
func (w *Writer) ModelStatistics(ms []energy.Model) (string, error) {
	header := []string{"column", "count", "mean", "std", "min", "max"}
	stats := Statistics(ms)
	rows := make([][]string, len(stats))
	for i, s := range stats {
		rows[i] = []string{
			s.Column, strconv.Itoa(s.Count),
			formatFloat(s.Mean), formatFloat(s.Std), formatFloat(s.Min), formatFloat(s.Max),
		}
	}
	return w.csv("model_statistics.csv", header, rows)
}

// Summary 模型表摘要
type Summary struct {
	Count          int
	TotalEnergy    float64
	MeanEnergy     float64
	StdEnergy      float64
	MostEfficient  energy.Model
	LeastEfficient energy.Model
	MeanEfficiency float64
	Correlation    float64 // 参数量与能耗的皮尔逊相关系数
}

// Summarize 计算模型表摘要，ms 为空时返回零值
func Summarize(ms []energy.Model) Summary {
	if len(ms) == 0 {
		return Summary{}
	}
	params := make([]float64, len(ms))
	wh := make([]float64, len(ms))
	eff := make([]float64, len(ms))
	for i, m := range ms {
		params[i], wh[i], eff[i] = m.Params, m.Energy, m.Efficiency()
	}
	s := Summary{
		Count:          len(ms),
		TotalEnergy:    floats.Sum(wh),
		MostEfficient:  ms[floats.MaxIdx(eff)],
		LeastEfficient: ms[floats.MinIdx(eff)],
		MeanEfficiency: stat.Mean(eff, nil),
		Correlation:    stat.Correlation(params, wh, nil),
	}
	s.MeanEnergy, s.StdEnergy = stat.MeanStdDev(wh, nil)
	return s
}
