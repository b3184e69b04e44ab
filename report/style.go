// Package report 输出终端报告：精确值、单一方法、收敛表、方法对比与模型表
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// 调色板
var (
	ColorTitle   = lipgloss.Color("#C62828")
	ColorAccent  = lipgloss.Color("#1976D2")
	ColorSuccess = lipgloss.Color("#388E3C")
	ColorWarning = lipgloss.Color("#F57C00")
	ColorMuted   = lipgloss.Color("#6B7B8C")
)

// Styles 预设样式，非终端输出时 lipgloss 自动退化为纯文本
var Styles = struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Box     lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorTitle),
	Header:  lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
	Bold:    lipgloss.NewStyle().Bold(true),
	Muted:   lipgloss.NewStyle().Foreground(ColorMuted),
	Success: lipgloss.NewStyle().Foreground(ColorSuccess),
	Warning: lipgloss.NewStyle().Foreground(ColorWarning),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorAccent).
		Padding(0, 1),
}

const ruleWidth = 72

// printer 记录第一次写错误，之后的写入直接跳过
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) line(s string) { p.printf("%s\n", s) }

func (p *printer) title(s string) {
	p.line("")
	p.line(Styles.Title.Render(s))
	p.line(Styles.Muted.Render(strings.Repeat("=", ruleWidth)))
}

func (p *printer) rule() { p.line(Styles.Muted.Render(strings.Repeat("-", ruleWidth))) }

func (p *printer) header(format string, args ...any) {
	p.line(Styles.Header.Render(fmt.Sprintf(format, args...)))
	p.rule()
}
