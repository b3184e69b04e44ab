package analysis

import (
	"fmt"

	"integral/energy"
	"integral/maths"
	"integral/quad"
)

// GridN 矩形法对照表默认的 n
var GridN = []int{10, 100, 1000}

// Cell 对照表中一个模式与 n 的结果
type Cell struct {
	Mode     quad.Mode
	N        int
	Value    float64
	AbsError float64
	RelError float64
	Precision
}

// Grid 矩形法在每个模式与每个 n 下的结果，按模式分组
type Grid struct {
	Bounds energy.Bounds
	Exact  float64
	Modes  []quad.Mode
	Ns     []int
	Cells  []Cell
}

// RectangleGrid 对 modes × ns 逐一计算矩形法
func RectangleGrid(f maths.Func, b energy.Bounds, exact float64, modes []quad.Mode, ns []int) (Grid, error) {
	if err := b.Validate(); err != nil {
		return Grid{}, err
	}
	if err := ValidateN(ns); err != nil {
		return Grid{}, err
	}
	if len(modes) == 0 {
		return Grid{}, fmt.Errorf("%w: empty mode list", quad.ErrInvalidMode)
	}
	g := Grid{Bounds: b, Exact: exact, Modes: modes, Ns: ns, Cells: make([]Cell, 0, len(modes)*len(ns))}
	for _, mode := range modes {
		for _, n := range ns {
			v, err := quad.Rectangle(f, b.A, b.B, n, mode)
			if err != nil {
				return Grid{}, fmt.Errorf("grid %s n=%d: %w", mode, n, err)
			}
			c := Cell{
				Mode:     mode,
				N:        n,
				Value:    v,
				AbsError: AbsoluteError(v, exact),
				RelError: RelativeError(v, exact),
			}
			c.Precision = Classify(c.RelError)
			g.Cells = append(g.Cells, c)
		}
	}
	return g, nil
}

// Get 返回指定模式与 n 的结果
func (g Grid) Get(mode quad.Mode, n int) (Cell, bool) {
	for _, c := range g.Cells {
		if c.Mode == mode && c.N == n {
			return c, true
		}
	}
	return Cell{}, false
}

// ByMode 某一模式下按 n 排列的结果
func (g Grid) ByMode(mode quad.Mode) []Cell {
	var out []Cell
	for _, c := range g.Cells {
		if c.Mode == mode {
			out = append(out, c)
		}
	}
	return out
}
