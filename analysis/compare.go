package analysis

import (
	"fmt"

	"integral/energy"
	"integral/maths"
	"integral/quad"
)

// Entry 对比表中一种方法的结果
type Entry struct {
	Method   quad.Method
	Used     int
	Adjusted bool
	Value    float64
	AbsError float64
	RelError float64
	Precision
}

// Comparison 同一 n 下全部方法的对比
type Comparison struct {
	N         int
	Bounds    energy.Bounds
	Exact     float64
	Reference float64 // Gauss-Legendre 参考值
	Entries   []Entry
}

// Compare 以相同 n 运行全部五种方法
func Compare(f maths.Func, b energy.Bounds, exact float64, n int) (Comparison, error) {
	if err := b.Validate(); err != nil {
		return Comparison{}, err
	}
	c := Comparison{
		N:         n,
		Bounds:    b,
		Exact:     exact,
		Reference: quad.Reference(f, b.A, b.B),
		Entries:   make([]Entry, 0, len(quad.Methods)),
	}
	for _, m := range quad.Methods {
		res, err := m.Apply(f, b.A, b.B, n)
		if err != nil {
			return Comparison{}, fmt.Errorf("compare n=%d: %w", n, err)
		}
		e := Entry{
			Method:   m,
			Used:     res.Used,
			Adjusted: res.Adjusted,
			Value:    res.Value,
			AbsError: AbsoluteError(res.Value, exact),
			RelError: RelativeError(res.Value, exact),
		}
		e.Precision = Classify(e.RelError)
		c.Entries = append(c.Entries, e)
	}
	return c, nil
}

// Best 绝对误差最小的方法
func (c Comparison) Best() Entry {
	return best(c.Entries, func(Entry) bool { return true })
}

// BestRectangle 绝对误差最小的矩形方法
func (c Comparison) BestRectangle() Entry {
	return best(c.Entries, func(e Entry) bool {
		_, ok := e.Method.Mode()
		return ok
	})
}

// Get 返回指定方法的结果
func (c Comparison) Get(m quad.Method) (Entry, bool) {
	for _, e := range c.Entries {
		if e.Method == m {
			return e, true
		}
	}
	return Entry{}, false
}

func best(es []Entry, keep func(Entry) bool) (out Entry) {
	found := false
	for _, e := range es {
		if !keep(e) {
			continue
		}
		if !found || e.AbsError < out.AbsError {
			out, found = e, true
		}
	}
	return out
}
