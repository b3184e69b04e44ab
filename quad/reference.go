package quad

import (
	gquad "gonum.org/v1/gonum/integrate/quad"

	"integral/maths"
)

// ReferenceNodes Gauss-Legendre 节点数，对 127 次以下多项式精确
const ReferenceNodes = 64

// Reference 使用固定阶 Gauss-Legendre 求积作为独立参考值
func Reference(f maths.Func, a, b float64) float64 {
	return gquad.Fixed(f, a, b, ReferenceNodes, nil, 0)
}
