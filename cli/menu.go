package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"integral"
	"integral/quad"
	"integral/report"
)

// action 菜单项
type action struct {
	key   string
	label string
	run   func() error
}

// Menu 交互式菜单
type Menu struct {
	wb      *integral.Workbench
	p       *Prompter
	out     io.Writer
	minN    int
	maxN    int
	actions []action
}

// NewMenu 创建菜单，n 的范围取配置中的 MinPromptN 与 MaxPromptN
func NewMenu(wb *integral.Workbench, in io.Reader, out io.Writer) *Menu {
	m := &Menu{wb: wb, p: NewPrompter(in, out), out: out, minN: wb.Config.MinPromptN, maxN: wb.Config.MaxPromptN}
	m.actions = []action{
		{"1", "Rectangles method (left / mid / right)", m.rectangles},
		{"2", "Rectangles visualization", m.visualize},
		{"3", "AI model comparison (rectangles by mode and n)", m.models},
		{"4", "Trapezoidal rule", func() error { return m.single(quad.TrapezoidRule) }},
		{"5", "Simpson's 1/3 rule", func() error { return m.single(quad.SimpsonRule) }},
		{"6", "Analytic solution (antiderivative)", wb.ExactReport},
		{"7", "Compare all methods", m.compare},
	}
	return m
}

// Run 循环显示菜单直到选择退出或输入结束，单项失败不会结束菜单
func (m *Menu) Run() error {
	for {
		m.show()
		choice, err := m.p.ReadLine(fmt.Sprintf("Enter option (1-%d): ", len(m.actions)+1))
		if errors.Is(err, io.EOF) {
			m.bye()
			return nil
		}
		if err != nil {
			return err
		}
		if choice == fmt.Sprint(len(m.actions)+1) {
			m.bye()
			return nil
		}
		a, ok := m.find(choice)
		if !ok {
			m.p.warn(fmt.Sprintf("Error: invalid option, choose 1-%d.", len(m.actions)+1))
			continue
		}
		if err := a.run(); err != nil {
			if errors.Is(err, io.EOF) {
				m.bye()
				return nil
			}
			slog.Debug("menu action failed", slog.String("option", a.key), slog.Any("err", err))
			m.p.warn("Error: " + err.Error())
		}
		fmt.Fprintln(m.out, report.Styles.Muted.Render(strings.Repeat("-", 70)))
		next, err := m.p.ReadLine("Press Enter to continue or type 'q' to quit: ")
		if errors.Is(err, io.EOF) || strings.EqualFold(next, "q") {
			m.bye()
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) find(key string) (action, bool) {
	for _, a := range m.actions {
		if a.key == key {
			return a, true
		}
	}
	return action{}, false
}

func (m *Menu) show() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, report.Styles.Title.Render("ENERGY INTEGRAL WORKBENCH"))
	fmt.Fprintln(m.out, report.Styles.Muted.Render(fmt.Sprintf("E(N) on %s, exact Z = %.8f", m.wb.Bounds(), m.wb.Exact())))
	for _, a := range m.actions {
		fmt.Fprintf(m.out, "  %s. %s\n", a.key, a.label)
	}
	fmt.Fprintf(m.out, "  %d. Exit\n", len(m.actions)+1)
}

func (m *Menu) bye() {
	fmt.Fprintln(m.out, report.Styles.Muted.Render("Closing. Goodbye."))
}

func (m *Menu) readN() (int, error) {
	return m.p.ReadN(fmt.Sprintf("Number of subintervals n (%d-%d): ", m.minN, m.maxN), m.minN, m.maxN)
}

func (m *Menu) readMode() (quad.Mode, error) {
	return m.p.ReadMode("Mode (left/mid/right) [mid]: ")
}

func (m *Menu) rectangles() error {
	n, err := m.readN()
	if err != nil {
		return err
	}
	mode, err := m.readMode()
	if err != nil {
		return err
	}
	method, err := quad.RectangleMethod(mode)
	if err != nil {
		return err
	}
	return m.runAndConverge(method, n)
}

func (m *Menu) visualize() error {
	n, err := m.readN()
	if err != nil {
		return err
	}
	mode, err := m.readMode()
	if err != nil {
		return err
	}
	paths, err := m.wb.Rectangles(n, mode)
	m.saved(paths)
	return err
}

func (m *Menu) models() error {
	paths, err := m.wb.ModelComparison()
	m.saved(paths)
	if err != nil {
		return err
	}
	return m.wb.Models()
}

func (m *Menu) single(method quad.Method) error {
	n, err := m.readN()
	if err != nil {
		return err
	}
	return m.runAndConverge(method, n)
}

// runAndConverge 单个 n 的结果之后输出并入该 n 的收敛表与收敛图
func (m *Menu) runAndConverge(method quad.Method, n int) error {
	if _, err := m.wb.Run(method, n); err != nil {
		return err
	}
	_, err := m.wb.Converge(method, n)
	return err
}

func (m *Menu) saved(paths []string) {
	for _, p := range paths {
		fmt.Fprintln(m.out, report.Styles.Success.Render("Saved: "+p))
	}
}

func (m *Menu) compare() error {
	n, err := m.readN()
	if err != nil {
		return err
	}
	_, err = m.wb.Compare(n)
	return err
}
