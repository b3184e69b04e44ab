package maths

import (
	"gonum.org/v1/gonum/floats"
)

// Span 返回区间 [a, b] 上 n 等分的 n+1 个采样点（包含两端点）
func Span(a, b float64, n int) []float64 {
	if n < 1 {
		panic("maths: span needs at least one subinterval")
	}
	xs := make([]float64, n+1)
	floats.Span(xs, a, b)
	// 端点取精确值，避免累积舍入
	xs[0], xs[n] = a, b
	return xs
}

// Offsets 返回 a+(i+offset)*h, i∈[0,n) 的采样点
// offset 为 0 时为左端点，0.5 为中点，1 为右端点
func Offsets(a, h float64, n int, offset float64) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = a + (float64(i)+offset)*h
	}
	return xs
}

// Apply 逐元素求值
func Apply(f Func, xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return ys
}

// Sum 求和
func Sum(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return floats.Sum(xs)
}

// StridedSum 从 start 开始以 stride 为步长求和，不含 end 位置
func StridedSum(xs []float64, start, end, stride int) (sum float64) {
	for i := start; i < end && i < len(xs); i += stride {
		sum += xs[i]
	}
	return sum
}
