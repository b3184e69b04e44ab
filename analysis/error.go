// Package analysis 计算求积误差、收敛阶与精度等级
package analysis

import "math"

// AbsoluteError |approx - exact|
func AbsoluteError(approx, exact float64) float64 { return math.Abs(approx - exact) }

// RelativeError |approx - exact| / |exact| · 100，exact 为 0 时返回 +Inf
func RelativeError(approx, exact float64) float64 {
	if exact == 0 {
		return math.Inf(1)
	}
	return math.Abs(approx-exact) / math.Abs(exact) * 100
}

// RefinementError 相邻两次细分之间的相对误差 |i1 - i2| / |i2| · 100
// i2 为 0 时返回 +Inf 作为哨兵值
func RefinementError(i1, i2 float64) float64 {
	if i2 == 0 {
		return math.Inf(1)
	}
	return math.Abs(i1-i2) / math.Abs(i2) * 100
}
