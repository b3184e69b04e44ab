// Package cli 交互式菜单与带校验重试的输入
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"integral/quad"
	"integral/report"
)

// Prompter 从 in 读取一行输入，提示与错误写到 out
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter 创建输入器
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ReadLine 输出提示并读取一行，输入结束时返回 io.EOF
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadN 读取 [min, max] 内的整数，非法输入时重新提示
func (p *Prompter) ReadN(prompt string, min, max int) (int, error) {
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		switch {
		case err != nil:
			p.warn("Error: please enter a valid integer.")
		case n < min:
			p.warn(fmt.Sprintf("Error: n must be at least %d.", min))
		case n > max:
			p.warn(fmt.Sprintf("Error: n must be at most %d.", max))
		default:
			return n, nil
		}
	}
}

// ReadMode 读取 left/mid/right，空输入取 mid，非法输入时重新提示
func (p *Prompter) ReadMode(prompt string) (quad.Mode, error) {
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		if line == "" {
			return quad.Mid, nil
		}
		mode, err := quad.ParseMode(line)
		if err == nil {
			return mode, nil
		}
		p.warn("Error: " + err.Error())
	}
}

func (p *Prompter) warn(msg string) {
	fmt.Fprintln(p.out, report.Styles.Warning.Render(msg))
}
