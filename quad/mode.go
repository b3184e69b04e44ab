// Package quad 实现定积分的数值求积公式：矩形（左/中/右）、梯形与 Simpson 1/3
package quad

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidMode 矩形法求值模式非法
	ErrInvalidMode = errors.New("mode must be one of left, mid, right")
	// ErrInvalidCount 子区间数非法
	ErrInvalidCount = errors.New("subinterval count must be between 1 and MaxCount")
)

// MaxCount 单次求积允许的最大子区间数，Simpson 调整后的偶数 n 也不超过它
const MaxCount = 1 << 26

// Mode 矩形法求值位置
type Mode int

const (
	Left  Mode = iota // 左端点
	Mid               // 中点
	Right             // 右端点
)

// Modes 全部求值模式
var Modes = []Mode{Left, Mid, Right}

// ParseMode 解析模式字符串（不区分大小写），非法时返回 ErrInvalidMode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return Left, nil
	case "mid":
		return Mid, nil
	case "right":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: got %q", ErrInvalidMode, s)
}

// Offset 子区间内的相对求值位置
func (m Mode) Offset() (float64, error) {
	switch m {
	case Left:
		return 0, nil
	case Mid:
		return 0.5, nil
	case Right:
		return 1, nil
	}
	return 0, fmt.Errorf("%w: got %d", ErrInvalidMode, int(m))
}

// Order 理论收敛阶
func (m Mode) Order() int {
	if m == Mid {
		return 2
	}
	return 1
}

func (m Mode) String() string {
	switch m {
	case Left:
		return "left"
	case Mid:
		return "mid"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// MarshalText 实现 encoding.TextMarshaler
func (m Mode) MarshalText() ([]byte, error) {
	if _, err := m.Offset(); err != nil {
		return nil, err
	}
	return []byte(m.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
