package quad

import (
	"fmt"

	"integral/maths"
)

// Rectangle 矩形法（黎曼和）
// h = (b-a)/n，按 mode 在每个子区间取样，结果为 h·Σf
func Rectangle(f maths.Func, a, b float64, n int, mode Mode) (float64, error) {
	_, heights, err := RectangleHeights(f, a, b, n, mode)
	if err != nil {
		return 0, err
	}
	return (b - a) / float64(n) * maths.Sum(heights), nil
}

// RectangleHeights 返回每个矩形的左边界和高度，供绘图使用
func RectangleHeights(f maths.Func, a, b float64, n int, mode Mode) (xs, heights []float64, err error) {
	if err := CheckCount(n); err != nil {
		return nil, nil, err
	}
	offset, err := mode.Offset()
	if err != nil {
		return nil, nil, err
	}
	h := (b - a) / float64(n)
	heights = maths.Apply(f, maths.Offsets(a, h, n, offset))
	return maths.Offsets(a, h, n, 0), heights, nil
}

// Trapezoid 梯形法 h/2·(f0 + 2Σf_i + fn)
func Trapezoid(f maths.Func, a, b float64, n int) (float64, error) {
	if err := CheckCount(n); err != nil {
		return 0, err
	}
	h := (b - a) / float64(n)
	y := maths.Apply(f, maths.Span(a, b, n))
	return h / 2 * (y[0] + 2*maths.StridedSum(y, 1, n, 1) + y[n]), nil
}

// Simpson Simpson 1/3 法 h/3·(f0 + 4Σ奇 + 2Σ偶 + fn)
// n 为奇数时自动加一，返回实际使用的 n
func Simpson(f maths.Func, a, b float64, n int) (value float64, used int, err error) {
	if err := CheckCount(n); err != nil {
		return 0, n, err
	}
	used = EvenCount(n)
	h := (b - a) / float64(used)
	y := maths.Apply(f, maths.Span(a, b, used))
	odd := maths.StridedSum(y, 1, used, 2)
	even := maths.StridedSum(y, 2, used, 2)
	return h / 3 * (y[0] + 4*odd + 2*even + y[used]), used, nil
}

// CheckCount 校验 1 ≤ n ≤ MaxCount
func CheckCount(n int) error {
	if n < 1 || n > MaxCount {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, n)
	}
	return nil
}

// EvenCount Simpson 法所需的偶数子区间数
// MaxCount 为偶数，合法 n 加一后不会溢出
func EvenCount(n int) int {
	if n%2 != 0 {
		return n + 1
	}
	return n
}
