package analysis

// Precision 精度等级
type Precision string

const (
	UltraHigh Precision = "ultra-high"
	VeryHigh  Precision = "very high"
	High      Precision = "high"
	Medium    Precision = "medium"
	Low       Precision = "low"
)

// Classify 按相对误差（百分比）划分精度等级
func Classify(relErr float64) Precision {
	switch {
	case relErr < 0.01:
		return UltraHigh
	case relErr < 0.1:
		return VeryHigh
	case relErr < 1:
		return High
	case relErr < 5:
		return Medium
	}
	return Low
}
