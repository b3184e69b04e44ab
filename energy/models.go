package energy

import "sort"

// TestDuration 单次基准测试时长（秒）
const TestDuration = 600

// Model 本地评测的语言模型
type Model struct {
	Name         string  `json:"name"`
	ShortName    string  `json:"short_name"`
	Params       float64 `json:"params_b"`        // 参数量（十亿）
	TokensPerSec float64 `json:"tokens_per_sec"`  // 生成速度
	Latency      float64 `json:"latency_s"`       // 首字延迟
	GPUPower     float64 `json:"gpu_power_w"`     // GPU 功率
	RAM          float64 `json:"ram_gib"`         // 内存占用
	VRAM         float64 `json:"vram_gib"`        // 显存占用
	Energy       float64 `json:"energy_total_wh"` // 测试期间总能耗
}

// Efficiency 每 Wh 生成的 token 数
func (m Model) Efficiency() float64 {
	if m.Energy == 0 {
		return 0
	}
	return m.TokensPerSec * TestDuration / m.Energy
}

// Predicted 曲线在该模型参数量处的能耗
func (m Model) Predicted() float64 { return Energy(m.Params) }

// Models 返回参考模型表（按参数量升序）
func Models() []Model {
	ms := []Model{
		{Name: "Phi-3 Mini", ShortName: "Phi-3", Params: 3.8, TokensPerSec: 23.4, Latency: 0.42, GPUPower: 96, RAM: 14.2, VRAM: 4.9, Energy: 14.8},
		{Name: "LLaMA-3 8B", ShortName: "LLaMA-3", Params: 8.0, TokensPerSec: 17.1, Latency: 0.68, GPUPower: 110, RAM: 16.8, VRAM: 5.6, Energy: 18.3},
		{Name: "Mistral-7B", ShortName: "Mistral", Params: 7.0, TokensPerSec: 19.8, Latency: 0.59, GPUPower: 104, RAM: 15.9, VRAM: 5.3, Energy: 16.9},
		{Name: "Gemma-2B", ShortName: "Gemma", Params: 2.0, TokensPerSec: 31.2, Latency: 0.37, GPUPower: 88, RAM: 12.3, VRAM: 4.1, Energy: 13.2},
		{Name: "TinyLLaMA", ShortName: "TinyLLaMA", Params: 1.1, TokensPerSec: 38.9, Latency: 0.31, GPUPower: 82, RAM: 10.8, VRAM: 3.8, Energy: 11.7},
	}
	sort.Slice(ms, func(i, j int) bool { return ms[i].Params < ms[j].Params })
	return ms
}

// ModelBounds 覆盖全部模型参数量的区间
func ModelBounds(ms []Model) (Bounds, error) {
	if len(ms) == 0 {
		return Bounds{}, ErrInvalidBounds
	}
	lo, hi := ms[0].Params, ms[0].Params
	for _, m := range ms[1:] {
		lo = min(lo, m.Params)
		hi = max(hi, m.Params)
	}
	return NewBounds(lo, hi)
}
