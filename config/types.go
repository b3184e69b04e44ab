// Package config 定义运行配置：积分区间、n 序列、输出目录与图表样式
//
// 配置是不可变的值，由调用方显式传入报告与绘图函数。
package config

import (
	"fmt"
	"image/color"
	"path/filepath"
	"slices"
	"strings"

	"integral/analysis"
	"integral/energy"
	"integral/quad"
)

// Config 运行配置
type Config struct {
	Bounds      energy.Bounds `yaml:"bounds"`
	NValues     []int         `yaml:"n_values"`     // 收敛分析 n 序列
	ValidationN int           `yaml:"validation_n"` // 精确值报告中用于校验的 n
	MinPromptN  int           `yaml:"min_prompt_n"` // 交互输入允许的最小 n
	MaxPromptN  int           `yaml:"max_prompt_n"` // 交互输入与命令行允许的最大 n
	Output      Output        `yaml:"output"`
	Chart       Chart         `yaml:"chart"`
}

// Output 输出目录
type Output struct {
	Dir     string   `yaml:"dir"`
	PNG     string   `yaml:"png"`
	PDF     string   `yaml:"pdf"`
	HTML    string   `yaml:"html"`
	Results string   `yaml:"results"`
	Formats []string `yaml:"formats"` // png / pdf
}

// Chart 图表样式
type Chart struct {
	DPI          int     `yaml:"dpi"`
	Width        float64 `yaml:"width"`  // 英寸
	Height       float64 `yaml:"height"` // 英寸
	CurveSamples int     `yaml:"curve_samples"`
	Palette      Palette `yaml:"palette"`
}

// Palette 十六进制颜色
type Palette struct {
	Curve     string `yaml:"curve"`
	Left      string `yaml:"left"`
	Mid       string `yaml:"mid"`
	Right     string `yaml:"right"`
	Trapezoid string `yaml:"trapezoid"`
	Simpson   string `yaml:"simpson"`
	Exact     string `yaml:"exact"`
	Primitive string `yaml:"primitive"`
	Accent    string `yaml:"accent"`
}

// Default 默认配置
func Default() Config {
	return Config{
		Bounds:      energy.DefaultBounds,
		NValues:     slices.Clone(analysis.DefaultNValues),
		ValidationN: 1000,
		MinPromptN:  4,
		MaxPromptN:  100000,
		Output: Output{
			Dir:     "figures",
			PNG:     "png",
			PDF:     "pdf",
			HTML:    "html",
			Results: "results",
			Formats: []string{"png", "pdf"},
		},
		Chart: Chart{
			DPI:          300,
			Width:        14,
			Height:       6,
			CurveSamples: 500,
			Palette: Palette{
				Curve:     "#C62828",
				Left:      "#1976D2",
				Mid:       "#388E3C",
				Right:     "#F57C00",
				Trapezoid: "#3A86FF",
				Simpson:   "#FB5607",
				Exact:     "#6A1B9A",
				Primitive: "#8B3A62",
				Accent:    "#5C946E",
			},
		},
	}
}

// Validate 校验配置
func (c Config) Validate() error {
	if err := c.Bounds.Validate(); err != nil {
		return err
	}
	if err := analysis.ValidateN(c.NValues); err != nil {
		return fmt.Errorf("n_values: %w", err)
	}
	if c.ValidationN < 1 {
		return fmt.Errorf("validation_n must be at least 1, got %d", c.ValidationN)
	}
	if c.MinPromptN < 1 {
		return fmt.Errorf("min_prompt_n must be at least 1, got %d", c.MinPromptN)
	}
	if c.MaxPromptN < c.MinPromptN || c.MaxPromptN > quad.MaxCount {
		return fmt.Errorf("max_prompt_n must be between min_prompt_n (%d) and %d, got %d", c.MinPromptN, quad.MaxCount, c.MaxPromptN)
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir must not be empty")
	}
	for _, f := range c.Output.Formats {
		if f != "png" && f != "pdf" {
			return fmt.Errorf("unsupported output format %q", f)
		}
	}
	if c.Chart.DPI <= 0 || c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("chart dpi/width/height must be positive")
	}
	if c.Chart.CurveSamples < 2 {
		return fmt.Errorf("chart.curve_samples must be at least 2, got %d", c.Chart.CurveSamples)
	}
	for name, hex := range c.Chart.Palette.entries() {
		if _, err := ParseHex(hex); err != nil {
			return fmt.Errorf("palette.%s: %w", name, err)
		}
	}
	return nil
}

// CheckN 校验命令行给出的 n 在 [1, MaxPromptN] 内，交互输入另有 MinPromptN 下限
func (c Config) CheckN(n int) error {
	if n < 1 || n > c.MaxPromptN {
		return fmt.Errorf("%w: n must be between 1 and %d, got %d", quad.ErrInvalidCount, c.MaxPromptN, n)
	}
	return nil
}

// PNGDir PNG 图片目录
func (o Output) PNGDir() string { return filepath.Join(o.Dir, o.PNG) }

// PDFDir PDF 图片目录
func (o Output) PDFDir() string { return filepath.Join(o.Dir, o.PDF) }

// HTMLDir 网页目录
func (o Output) HTMLDir() string { return filepath.Join(o.Dir, o.HTML) }

// ResultsDir 表格与记录目录
func (o Output) ResultsDir() string { return filepath.Join(o.Dir, o.Results) }

// Wants 是否输出指定格式
func (o Output) Wants(format string) bool { return slices.Contains(o.Formats, format) }

func (p Palette) entries() map[string]string {
	return map[string]string{
		"curve": p.Curve, "left": p.Left, "mid": p.Mid, "right": p.Right,
		"trapezoid": p.Trapezoid, "simpson": p.Simpson, "exact": p.Exact,
		"primitive": p.Primitive, "accent": p.Accent,
	}
}

// Color 按名称取颜色，未知名称或非法值返回黑色
func (p Palette) Color(name string) color.RGBA {
	c, err := ParseHex(p.entries()[name])
	if err != nil {
		return color.RGBA{A: 255}
	}
	return c
}

// ParseHex 解析 #RRGGBB 或 #RRGGBBAA
func ParseHex(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	c := color.RGBA{A: 255}
	var err error
	switch len(s) {
	case 6:
		_, err = fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B)
	case 8:
		_, err = fmt.Sscanf(s, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		return c, fmt.Errorf("invalid hex color %q", "#"+s)
	}
	if err != nil {
		return c, fmt.Errorf("invalid hex color %q: %w", "#"+s, err)
	}
	return c, nil
}
