package maths

import (
	"math"
	"math/big"
	"testing"
)

// TestPolynomialEval 测试 Horner 求值
func TestPolynomialEval(t *testing.T) {
	// 2x^2 - 3x + 1
	p := NewPolynomial(1, -3, 2)
	if p.Degree() != 2 {
		t.Errorf("次数不正确: 期望 2, 实际 %d", p.Degree())
	}
	cases := map[float64]float64{0: 1, 1: 0, 2: 3, -1: 6}
	for x, want := range cases {
		if got := p.Eval(x); got != want {
			t.Errorf("p(%v) 不正确: 期望 %v, 实际 %v", x, want, got)
		}
	}
	ys := p.EvalSlice([]float64{0, 1, 2})
	if ys[0] != 1 || ys[1] != 0 || ys[2] != 3 {
		t.Errorf("EvalSlice 不正确: 实际 %v", ys)
	}
}

// TestPolynomialIntegrateDerivative 测试形式积分与求导互逆
func TestPolynomialIntegrateDerivative(t *testing.T) {
	p := MustParsePolynomial("11.234", "-12.456", "6.8934", "-1.2156", "0.0842")
	f := p.Integrate()
	if f.Degree() != 5 {
		t.Fatalf("原函数次数不正确: 期望 5, 实际 %d", f.Degree())
	}
	if f.Coeff(0).Sign() != 0 {
		t.Errorf("积分常数不正确: 期望 0, 实际 %s", f.Coeff(0).RatString())
	}
	// 0.0842/5 = 0.01684
	if f.Coeff(5).Cmp(big.NewRat(1684, 100000)) != 0 {
		t.Errorf("x^5 系数不正确: 期望 0.01684, 实际 %s", f.Coeff(5).FloatString(8))
	}
	if !f.Derivative().Equal(p) {
		t.Errorf("原函数求导未还原多项式: 实际 %s, 期望 %s", f.Derivative(), p)
	}
	// 浮点构造同样满足
	q := NewPolynomial(0.3, 0.7, -1.9)
	if !q.Integrate().Derivative().Equal(q) {
		t.Errorf("浮点系数往返不一致")
	}
}

// TestPolynomialDefinite 测试定积分
func TestPolynomialDefinite(t *testing.T) {
	// ∫0..3 x^2 dx = 9
	p := NewPolynomial(0, 0, 1)
	if got := p.Definite(0, 3); math.Abs(got-9) > 1e-12 {
		t.Errorf("定积分不正确: 期望 9, 实际 %v", got)
	}
}

// TestPolynomialEdgeCases 测试零多项式、常数与非法系数
func TestPolynomialEdgeCases(t *testing.T) {
	zero := NewPolynomial(0, 0)
	if zero.Degree() != -1 {
		t.Errorf("零多项式次数不正确: 期望 -1, 实际 %d", zero.Degree())
	}
	if zero.String() != "0" {
		t.Errorf("零多项式格式不正确: 期望 \"0\", 实际 %q", zero.String())
	}
	if c := NewPolynomial(5).Derivative(); c.Degree() != -1 {
		t.Errorf("常数的导数应为零多项式")
	}
	if _, err := ParsePolynomial("1", "abc"); err == nil {
		t.Errorf("非法系数应返回错误")
	}
	if NewPolynomial(1, 2).Equal(NewPolynomial(1, 2, 3)) {
		t.Errorf("不同次数的多项式不应相等")
	}
}

// TestPolynomialFormat 测试格式化输出
func TestPolynomialFormat(t *testing.T) {
	p := MustParsePolynomial("11.234", "-12.456", "6.8934", "-1.2156", "0.0842")
	want := "0.0842*N^4 - 1.2156*N^3 + 6.8934*N^2 - 12.456*N + 11.234"
	if got := p.Format("N"); got != want {
		t.Errorf("格式不正确: 期望 %q, 实际 %q", want, got)
	}
	wantF := "0.01684*N^5 - 0.3039*N^4 + 2.2978*N^3 - 6.228*N^2 + 11.234*N"
	if got := p.Integrate().Format("N"); got != wantF {
		t.Errorf("格式不正确: 期望 %q, 实际 %q", wantF, got)
	}
	if got := NewPolynomial(-1, 0, 1).String(); got != "1*x^2 - 1" {
		t.Errorf("格式不正确: 期望 \"1*x^2 - 1\", 实际 %q", got)
	}
}
