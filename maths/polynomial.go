package maths

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Polynomial 精确系数多项式
// 系数按升幂存储：coeffs[k] 为 x^k 的系数，使用 big.Rat 保证形式积分/求导无舍入
type Polynomial struct {
	coeffs []*big.Rat // 精确系数
	fs     []float64  // 求值用浮点系数
}

// NewPolynomial 由浮点系数（升幂）创建多项式
func NewPolynomial(coeffs ...float64) *Polynomial {
	rs := make([]*big.Rat, len(coeffs))
	for i, c := range coeffs {
		rs[i] = new(big.Rat).SetFloat64(c)
	}
	return newPolynomial(rs)
}

// ParsePolynomial 由十进制字符串系数（升幂）创建多项式，系数按十进制精确保存
func ParsePolynomial(coeffs ...string) (*Polynomial, error) {
	rs := make([]*big.Rat, len(coeffs))
	for i, c := range coeffs {
		r, ok := new(big.Rat).SetString(strings.TrimSpace(c))
		if !ok {
			return nil, fmt.Errorf("invalid coefficient %q at degree %d", c, i)
		}
		rs[i] = r
	}
	return newPolynomial(rs), nil
}

// MustParsePolynomial 同 ParsePolynomial，解析失败时 panic
func MustParsePolynomial(coeffs ...string) *Polynomial {
	p, err := ParsePolynomial(coeffs...)
	if err != nil {
		panic(err)
	}
	return p
}

func newPolynomial(rs []*big.Rat) *Polynomial {
	// 去除高次零系数
	n := len(rs)
	for n > 0 && rs[n-1].Sign() == 0 {
		n--
	}
	p := &Polynomial{coeffs: rs[:n], fs: make([]float64, n)}
	for i, r := range p.coeffs {
		p.fs[i], _ = r.Float64()
	}
	return p
}

// Degree 多项式次数，零多项式返回 -1
func (p *Polynomial) Degree() int { return len(p.coeffs) - 1 }

// Coeff 返回 x^k 系数的副本
func (p *Polynomial) Coeff(k int) *big.Rat {
	if k < 0 || k >= len(p.coeffs) {
		return new(big.Rat)
	}
	return new(big.Rat).Set(p.coeffs[k])
}

// Float64s 返回浮点系数（升幂）
func (p *Polynomial) Float64s() []float64 { return append([]float64{}, p.fs...) }

// Eval 使用 Horner 法求值
func (p *Polynomial) Eval(x float64) float64 {
	var y float64
	for k := len(p.fs) - 1; k >= 0; k-- {
		y = y*x + p.fs[k]
	}
	return y
}

// EvalSlice 逐元素求值
func (p *Polynomial) EvalSlice(xs []float64) []float64 { return Apply(p.Eval, xs) }

// Integrate 逐项形式积分 x^k → x^(k+1)/(k+1)，积分常数取 0
func (p *Polynomial) Integrate() *Polynomial {
	rs := make([]*big.Rat, len(p.coeffs)+1)
	rs[0] = new(big.Rat)
	for k, c := range p.coeffs {
		rs[k+1] = new(big.Rat).Quo(c, big.NewRat(int64(k+1), 1))
	}
	return newPolynomial(rs)
}

// Derivative 逐项形式求导
func (p *Polynomial) Derivative() *Polynomial {
	if len(p.coeffs) < 2 {
		return newPolynomial(nil)
	}
	rs := make([]*big.Rat, len(p.coeffs)-1)
	for k := 1; k < len(p.coeffs); k++ {
		rs[k-1] = new(big.Rat).Mul(p.coeffs[k], big.NewRat(int64(k), 1))
	}
	return newPolynomial(rs)
}

// Definite 定积分 F(b) - F(a)
func (p *Polynomial) Definite(a, b float64) float64 {
	f := p.Integrate()
	return f.Eval(b) - f.Eval(a)
}

// Equal 逐系数精确比较
func (p *Polynomial) Equal(q *Polynomial) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if p.coeffs[i].Cmp(q.coeffs[i]) != 0 {
			return false
		}
	}
	return true
}

// String 以 x 为变量格式化
func (p *Polynomial) String() string { return p.Format("x") }

// Format 以指定变量名按降幂格式化，如 0.0842*N^4 - 1.2156*N^3 + 11.234
func (p *Polynomial) Format(v string) string {
	if len(p.fs) == 0 {
		return "0"
	}
	var sb strings.Builder
	for k := len(p.fs) - 1; k >= 0; k-- {
		c := p.fs[k]
		if c == 0 {
			continue
		}
		if sb.Len() == 0 {
			if c < 0 {
				sb.WriteString("-")
			}
		} else if c < 0 {
			sb.WriteString(" - ")
		} else {
			sb.WriteString(" + ")
		}
		abs := c
		if abs < 0 {
			abs = -abs
		}
		sb.WriteString(strconv.FormatFloat(abs, 'g', -1, 64))
		switch k {
		case 0:
		case 1:
			sb.WriteString("*" + v)
		default:
			sb.WriteString("*" + v + "^" + strconv.Itoa(k))
		}
	}
	return sb.String()
}
