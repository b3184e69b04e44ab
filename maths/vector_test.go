package maths

import (
	"math"
	"testing"
)

// TestSpan 测试等分采样点，包括端点与步长
func TestSpan(t *testing.T) {
	xs := Span(1.1, 8.0, 10)
	if len(xs) != 11 {
		t.Fatalf("采样点数不正确: 期望 11, 实际 %d", len(xs))
	}
	if xs[0] != 1.1 || xs[10] != 8.0 {
		t.Errorf("端点不精确: 实际 [%v, %v]", xs[0], xs[10])
	}
	h := (8.0 - 1.1) / 10
	for i := 1; i < len(xs); i++ {
		if math.Abs(xs[i]-xs[i-1]-h) > 1e-12 {
			t.Errorf("第 %d 步长不正确: 期望 %v, 实际 %v", i, h, xs[i]-xs[i-1])
		}
	}
}

// TestSpanPanics 测试子区间数非法时 panic
func TestSpanPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("n = 0 时应 panic")
		}
	}()
	Span(0, 1, 0)
}

// TestOffsets 测试左端点、中点、右端点采样
func TestOffsets(t *testing.T) {
	left := Offsets(0, 0.5, 4, 0)
	mid := Offsets(0, 0.5, 4, 0.5)
	right := Offsets(0, 0.5, 4, 1)
	expected := [][]float64{
		{0, 0.5, 1, 1.5},
		{0.25, 0.75, 1.25, 1.75},
		{0.5, 1, 1.5, 2},
	}
	for i, got := range [][]float64{left, mid, right} {
		for j := range got {
			if got[j] != expected[i][j] {
				t.Errorf("Offsets 用例 %d 下标 %d 不正确: 期望 %v, 实际 %v", i, j, expected[i][j], got[j])
			}
		}
	}
}

// TestSums 测试求和与跨步求和
func TestSums(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5, 6, 7}
	if Sum(xs) != 28 {
		t.Errorf("求和不正确: 期望 28, 实际 %f", Sum(xs))
	}
	if Sum(nil) != 0 {
		t.Errorf("空切片求和不正确: 期望 0, 实际 %f", Sum(nil))
	}
	// 奇数下标内点 1,3,5
	if s := StridedSum(xs, 1, 6, 2); s != 2+4+6 {
		t.Errorf("奇数下标求和不正确: 期望 12, 实际 %f", s)
	}
	// 偶数下标内点 2,4
	if s := StridedSum(xs, 2, 6, 2); s != 3+5 {
		t.Errorf("偶数下标求和不正确: 期望 8, 实际 %f", s)
	}
	ys := Apply(func(x float64) float64 { return x * x }, []float64{1, 2, 3})
	if ys[0] != 1 || ys[1] != 4 || ys[2] != 9 {
		t.Errorf("Apply 不正确: 实际 %v", ys)
	}
}
