package analysis

import (
	"fmt"
	"slices"

	"integral/quad"
)

// DefaultNValues 收敛分析默认的子区间数序列
var DefaultNValues = []int{10, 20, 50, 100, 200, 500, 1000}

// MergeN 将 n 并入序列，结果升序且去重
func MergeN(ns []int, n ...int) []int {
	out := append(slices.Clone(ns), n...)
	slices.Sort(out)
	return slices.Compact(out)
}

// ValidateN 检查序列非空且每个 n 在 [1, quad.MaxCount] 内
func ValidateN(ns []int) error {
	if len(ns) == 0 {
		return fmt.Errorf("%w: empty n list", quad.ErrInvalidCount)
	}
	for _, n := range ns {
		if err := quad.CheckCount(n); err != nil {
			return err
		}
	}
	return nil
}
