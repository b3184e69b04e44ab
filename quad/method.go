package quad

import (
	"fmt"
	"strings"

	"integral/maths"
)

// Method 求积方法
type Method int

const (
	RectangleLeft  Method = iota // 左矩形
	RectangleMid                 // 中矩形
	RectangleRight               // 右矩形
	TrapezoidRule                // 梯形
	SimpsonRule                  // Simpson 1/3
)

// Methods 全部方法，按报告顺序
var Methods = []Method{RectangleLeft, RectangleMid, RectangleRight, TrapezoidRule, SimpsonRule}

// RectangleMethod 由求值模式得到矩形方法
func RectangleMethod(mode Mode) (Method, error) {
	switch mode {
	case Left:
		return RectangleLeft, nil
	case Mid:
		return RectangleMid, nil
	case Right:
		return RectangleRight, nil
	}
	return 0, fmt.Errorf("%w: got %d", ErrInvalidMode, int(mode))
}

// ParseMethod 解析方法名，如 rectangles-mid、trapezoid、simpson
func ParseMethod(s string) (Method, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, m := range Methods {
		if m.String() == s {
			return m, nil
		}
	}
	switch s {
	case "trap":
		return TrapezoidRule, nil
	case "simp":
		return SimpsonRule, nil
	}
	if rest, ok := strings.CutPrefix(s, "rect-"); ok {
		mode, err := ParseMode(rest)
		if err != nil {
			return 0, err
		}
		return RectangleMethod(mode)
	}
	return 0, fmt.Errorf("unknown method %q", s)
}

// Mode 矩形方法的求值模式
func (m Method) Mode() (Mode, bool) {
	switch m {
	case RectangleLeft:
		return Left, true
	case RectangleMid:
		return Mid, true
	case RectangleRight:
		return Right, true
	}
	return 0, false
}

// Order 理论收敛阶 O(h^k)
func (m Method) Order() int {
	switch m {
	case RectangleLeft, RectangleRight:
		return 1
	case RectangleMid, TrapezoidRule:
		return 2
	case SimpsonRule:
		return 4
	}
	return 0
}

func (m Method) String() string {
	switch m {
	case RectangleLeft:
		return "rectangles-left"
	case RectangleMid:
		return "rectangles-mid"
	case RectangleRight:
		return "rectangles-right"
	case TrapezoidRule:
		return "trapezoid"
	case SimpsonRule:
		return "simpson"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Label 报告中使用的名称
func (m Method) Label() string {
	if mode, ok := m.Mode(); ok {
		return fmt.Sprintf("Rectangles (%s)", mode)
	}
	switch m {
	case TrapezoidRule:
		return "Trapezoid O(h^2)"
	case SimpsonRule:
		return "Simpson O(h^4)"
	}
	return m.String()
}

// MarshalText 实现 encoding.TextMarshaler
func (m Method) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText 实现 encoding.TextUnmarshaler
func (m *Method) UnmarshalText(text []byte) error {
	v, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Result 一次求积结果
type Result struct {
	Method   Method  `json:"method"`
	N        int     `json:"n"`        // 请求的子区间数
	Used     int     `json:"used_n"`   // 实际使用的子区间数
	Value    float64 `json:"value"`    // 近似值
	Adjusted bool    `json:"adjusted"` // Simpson 奇数 n 已调整
}

// Apply 以该方法在 [a, b] 上用 n 个子区间求积
func (m Method) Apply(f maths.Func, a, b float64, n int) (Result, error) {
	res := Result{Method: m, N: n, Used: n}
	var err error
	switch m {
	case RectangleLeft, RectangleMid, RectangleRight:
		mode, _ := m.Mode()
		res.Value, err = Rectangle(f, a, b, n, mode)
	case TrapezoidRule:
		res.Value, err = Trapezoid(f, a, b, n)
	case SimpsonRule:
		res.Value, res.Used, err = Simpson(f, a, b, n)
		res.Adjusted = res.Used != n
	default:
		err = fmt.Errorf("unknown method %d", int(m))
	}
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", m, err)
	}
	return res, nil
}
