// Package energy 定义能耗曲线 E(N)、其原函数以及积分区间
package energy

import (
	"errors"
	"fmt"
	"math"

	"integral/maths"
)

// 能耗多项式系数 E(N) = C4*N^4 + C3*N^3 + C2*N^2 + C1*N + C0
const (
	C4 = 0.0842
	C3 = -1.2156
	C2 = 6.8934
	C1 = -12.456
	C0 = 11.234
)

// Unit 积分结果单位
const Unit = "Wh·B"

var (
	curve     = maths.MustParsePolynomial("11.234", "-12.456", "6.8934", "-1.2156", "0.0842")
	primitive = curve.Integrate()
)

// Energy 能耗函数 E(N)，N 为模型参数量（十亿），结果单位 Wh
func Energy(n float64) float64 {
	return C4*n*n*n*n + C3*n*n*n + C2*n*n + C1*n + C0
}

// EnergySlice 逐元素求值
func EnergySlice(ns []float64) []float64 { return maths.Apply(Energy, ns) }

// Antiderivative 原函数 F(N)，逐项积分且 F(0) = 0
func Antiderivative(n float64) float64 {
	return C4/5*n*n*n*n*n + C3/4*n*n*n*n + C2/3*n*n*n + C1/2*n*n + C0*n
}

// ExactIntegral 由微积分基本定理计算 F(b) - F(a)
func ExactIntegral(b Bounds) float64 {
	return Antiderivative(b.B) - Antiderivative(b.A)
}

// Polynomial 返回 E 的精确系数多项式
func Polynomial() *maths.Polynomial { return curve }

// Primitive 返回 E 的形式原函数
func Primitive() *maths.Polynomial { return primitive }

// Formula 返回 E(N) 的文本表示
func Formula() string { return "E(N) = " + curve.Format("N") }

// PrimitiveFormula 返回 F(N) 的文本表示
func PrimitiveFormula() string { return "F(N) = " + primitive.Format("N") }

// ErrInvalidBounds 积分区间非法
var ErrInvalidBounds = errors.New("invalid integration bounds")

// Bounds 积分区间 [A, B]，A < B
type Bounds struct {
	A float64 `yaml:"a" json:"a"`
	B float64 `yaml:"b" json:"b"`
}

// DefaultBounds TinyLLaMA 1.1B 到 LLaMA-3 8B
var DefaultBounds = Bounds{A: 1.1, B: 8.0}

// NewBounds 创建并校验区间
func NewBounds(a, b float64) (Bounds, error) {
	bd := Bounds{A: a, B: b}
	return bd, bd.Validate()
}

// Validate 校验区间有限且 A < B
func (b Bounds) Validate() error {
	if math.IsNaN(b.A) || math.IsNaN(b.B) || math.IsInf(b.A, 0) || math.IsInf(b.B, 0) {
		return fmt.Errorf("%w: non-finite limit [%v, %v]", ErrInvalidBounds, b.A, b.B)
	}
	if b.A >= b.B {
		return fmt.Errorf("%w: a=%v must be less than b=%v", ErrInvalidBounds, b.A, b.B)
	}
	return nil
}

// Width 区间长度
func (b Bounds) Width() float64 { return b.B - b.A }

// Step n 等分步长
func (b Bounds) Step(n int) float64 { return b.Width() / float64(n) }

func (b Bounds) String() string { return fmt.Sprintf("[%g, %g]", b.A, b.B) }
