package maths

// Func 单变量实函数
type Func func(x float64) float64
