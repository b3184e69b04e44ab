package chart

import (
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"integral/analysis"
	"integral/energy"
	"integral/maths"
)

// Record 一次运行的收敛数据
type Record struct {
	RunID    string        `json:"run_id"`
	Created  time.Time     `json:"created"`
	Bounds   energy.Bounds `json:"bounds"`
	Exact    float64       `json:"exact"`
	Formula  string        `json:"formula"`
	N        []int         `json:"n"`         // 子区间数列
	Methods  []string      `json:"methods"`   // 方法列表
	Value    [][]float64   `json:"value"`     // 近似值列，按方法
	AbsError [][]float64   `json:"abs_error"` // 绝对误差列，按方法
	Curve    [][2]float64  `json:"curve"`     // E(N) 采样点
}

// Init 初始化
func (list *Record) Init(b energy.Bounds, exact float64, ns []int, samples int) {
	list.RunID = uuid.NewString()
	list.Created = time.Now().UTC()
	list.Bounds = b
	list.Exact = exact
	list.Formula = energy.Formula()
	list.N = append([]int(nil), ns...)
	list.Methods, list.Value, list.AbsError = nil, nil, nil
	xs := maths.Span(b.A, b.B, samples)
	list.Curve = make([][2]float64, len(xs))
	for i, x := range xs {
		list.Curve[i] = [2]float64{x, energy.Energy(x)}
	}
}

// Update 记录一种方法的收敛结果，n 序列以 Init 时为准
func (list *Record) Update(rep analysis.Report) {
	value := make([]float64, len(list.N))
	abs := make([]float64, len(list.N))
	for i, n := range list.N {
		row, ok := rep.Find(n)
		if !ok {
			slog.Warn("missing convergence row", slog.String("method", rep.Method.String()), slog.Int("n", n))
			continue
		}
		value[i], abs[i] = row.Value, row.AbsError
	}
	list.Methods = append(list.Methods, rep.Method.Label())
	list.Value = append(list.Value, value)
	list.AbsError = append(list.AbsError, abs)
}

// Render 格式和输出内容
func (list *Record) Render(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}
