package energy

import (
	"errors"
	"math"
	"testing"
)

const exactReference = 167.3302472016

// TestEnergy 测试能耗函数取值
func TestEnergy(t *testing.T) {
	if got := Energy(0); got != C0 {
		t.Errorf("E(0) 不正确: 期望 %v, 实际 %v", C0, got)
	}
	// E(1) = 系数和
	want := C4 + C3 + C2 + C1 + C0
	if got := Energy(1); math.Abs(got-want) > 1e-12 {
		t.Errorf("E(1) 不正确: 期望 %v, 实际 %v", want, got)
	}
	xs := []float64{1.1, 3.8, 8.0}
	ys := EnergySlice(xs)
	for i, x := range xs {
		if ys[i] != Energy(x) {
			t.Errorf("EnergySlice[%d] 不正确: 期望 %v, 实际 %v", i, Energy(x), ys[i])
		}
		if math.Abs(Polynomial().Eval(x)-Energy(x)) > 1e-9 {
			t.Errorf("Polynomial().Eval(%v) 与 Energy 不一致", x)
		}
		if math.Abs(Primitive().Eval(x)-Antiderivative(x)) > 1e-9 {
			t.Errorf("Primitive().Eval(%v) 与 Antiderivative 不一致", x)
		}
	}
}

// TestExactIntegral 测试默认区间上的精确积分
func TestExactIntegral(t *testing.T) {
	z := ExactIntegral(DefaultBounds)
	if math.Abs(z-exactReference)/exactReference > 1e-9 {
		t.Errorf("精确积分不正确: 期望 %.10f, 实际 %.10f", exactReference, z)
	}
	if math.Abs(Antiderivative(1.1)-7.4620727984) > 1e-8 {
		t.Errorf("F(1.1) 不正确: 期望 7.4620727984, 实际 %.10f", Antiderivative(1.1))
	}
	if math.Abs(Antiderivative(8.0)-174.79232) > 1e-8 {
		t.Errorf("F(8.0) 不正确: 期望 174.79232, 实际 %.10f", Antiderivative(8.0))
	}
}

// TestPrimitiveRoundTrip 原函数形式求导逐系数还原 E
func TestPrimitiveRoundTrip(t *testing.T) {
	if !Primitive().Derivative().Equal(Polynomial()) {
		t.Errorf("d/dN F(N) 未还原 E(N): 实际 %s, 期望 %s", Primitive().Derivative().Format("N"), Polynomial().Format("N"))
	}
	if Primitive().Coeff(0).Sign() != 0 {
		t.Errorf("F(0) 应为 0")
	}
	if Formula() != "E(N) = 0.0842*N^4 - 1.2156*N^3 + 6.8934*N^2 - 12.456*N + 11.234" {
		t.Errorf("公式不正确: 实际 %q", Formula())
	}
}

// TestBounds 测试区间校验
func TestBounds(t *testing.T) {
	if _, err := NewBounds(1.1, 8.0); err != nil {
		t.Errorf("意外错误 %v", err)
	}
	for _, c := range [][2]float64{{8, 1.1}, {2, 2}, {math.NaN(), 1}, {0, math.Inf(1)}} {
		if _, err := NewBounds(c[0], c[1]); !errors.Is(err, ErrInvalidBounds) {
			t.Errorf("NewBounds(%v, %v): 期望 ErrInvalidBounds, 实际 %v", c[0], c[1], err)
		}
	}
	b := DefaultBounds
	if math.Abs(b.Step(10)-0.69) > 1e-12 {
		t.Errorf("Step(10) 不正确: 期望 0.69, 实际 %v", b.Step(10))
	}
	if b.String() != "[1.1, 8]" {
		t.Errorf("String 不正确: 实际 %q", b.String())
	}
}

// TestModels 测试参考模型表
func TestModels(t *testing.T) {
	ms := Models()
	if len(ms) != 5 {
		t.Fatalf("模型数不正确: 期望 5, 实际 %d", len(ms))
	}
	if ms[0].Name != "TinyLLaMA" || ms[4].Name != "LLaMA-3 8B" {
		t.Errorf("模型未按参数量排序: 实际 %s ... %s", ms[0].Name, ms[4].Name)
	}
	b, err := ModelBounds(ms)
	if err != nil || b != DefaultBounds {
		t.Errorf("ModelBounds 不正确: 期望 %v, 实际 %v (%v)", DefaultBounds, b, err)
	}
	// 38.9*600/11.7
	if e := ms[0].Efficiency(); math.Abs(e-1994.8717948717949) > 1e-9 {
		t.Errorf("Efficiency 不正确: 实际 %v", e)
	}
	if _, err := ModelBounds(nil); !errors.Is(err, ErrInvalidBounds) {
		t.Errorf("空模型表应返回 ErrInvalidBounds")
	}
}
