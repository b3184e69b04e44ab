package analysis

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"integral/energy"
	"integral/maths"
	"integral/quad"
)

// Row 收敛表中的一行
type Row struct {
	N             int           // 请求的子区间数
	Used          int           // 实际使用的子区间数
	Value         float64       // 近似值
	AbsError      float64       // 绝对误差
	RelError      float64       // 相对精确值的误差（%）
	Refinement    float64       // 与上一行的细分误差（%）
	HasRefinement bool          // 第一行没有细分误差
	Precision     Precision     // 精度等级
	Elapsed       time.Duration // 计算耗时
}

// Report 单一方法的收敛报告
type Report struct {
	Method quad.Method
	Bounds energy.Bounds
	Exact  float64 // 精确值，每个区间只计算一次
	Rows   []Row
}

// Analyze 对序列中的每个 n 求积，并与固定精确值比较
func Analyze(m quad.Method, f maths.Func, b energy.Bounds, exact float64, ns []int) (Report, error) {
	if err := b.Validate(); err != nil {
		return Report{}, err
	}
	if err := ValidateN(ns); err != nil {
		return Report{}, err
	}
	rep := Report{Method: m, Bounds: b, Exact: exact, Rows: make([]Row, 0, len(ns))}
	for i, n := range ns {
		start := time.Now()
		res, err := m.Apply(f, b.A, b.B, n)
		if err != nil {
			return Report{}, fmt.Errorf("analyze n=%d: %w", n, err)
		}
		row := Row{
			N:        n,
			Used:     res.Used,
			Value:    res.Value,
			AbsError: AbsoluteError(res.Value, exact),
			RelError: RelativeError(res.Value, exact),
			Elapsed:  time.Since(start),
		}
		row.Precision = Classify(row.RelError)
		if i > 0 {
			row.Refinement = RefinementError(rep.Rows[i-1].Value, res.Value)
			row.HasRefinement = true
		}
		rep.Rows = append(rep.Rows, row)
	}
	return rep, nil
}

// Order 理论收敛阶
func (r Report) Order() int { return r.Method.Order() }

// Orders 相邻两行间的经验收敛阶 p = ln(e_i/e_{i+1}) / ln(n_{i+1}/n_i)
// 误差为 0 或 n 未增加时该项为 NaN
func (r Report) Orders() []float64 {
	if len(r.Rows) < 2 {
		return nil
	}
	ps := make([]float64, len(r.Rows)-1)
	for i := range ps {
		a, b := r.Rows[i], r.Rows[i+1]
		if a.AbsError <= 0 || b.AbsError <= 0 || b.Used <= a.Used {
			ps[i] = math.NaN()
			continue
		}
		ps[i] = math.Log(a.AbsError/b.AbsError) / math.Log(float64(b.Used)/float64(a.Used))
	}
	return ps
}

// MeanOrder 有限经验阶的平均值，没有可用值时为 NaN
func (r Report) MeanOrder() float64 {
	var ps []float64
	for _, p := range r.Orders() {
		if !math.IsNaN(p) && !math.IsInf(p, 0) {
			ps = append(ps, p)
		}
	}
	if len(ps) == 0 {
		return math.NaN()
	}
	return stat.Mean(ps, nil)
}

// Find 查找请求 n 对应的行
func (r Report) Find(n int) (Row, bool) {
	for _, row := range r.Rows {
		if row.N == n {
			return row, true
		}
	}
	return Row{}, false
}

// Ns 请求的 n 序列
func (r Report) Ns() []int {
	ns := make([]int, len(r.Rows))
	for i, row := range r.Rows {
		ns[i] = row.N
	}
	return ns
}
