package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorWhite = lipgloss.Color("255")
	colorDim   = lipgloss.Color("240")

	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLabel   = lipgloss.NewStyle().Foreground(colorDim).Width(12)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
)

const iconSuccess = "✓"

// printSummary 输出布局结果
func printSummary(w io.Writer, data *CloudData, outputs []string) {
	area := 0
	for _, t := range data.Tags {
		area += t.Region.Area()
	}
	density := 0.0
	if b := data.Bounds.Area(); b > 0 {
		density = float64(area) / float64(b) * 100
	}
	rings := 0
	for _, t := range data.Tags {
		rings = max(rings, t.Ring+1)
	}

	row := func(label, value string) {
		fmt.Fprintln(w, styleLabel.Render(label)+value)
	}
	fmt.Fprintln(w, styleTitle.Render("标签云布局"))
	row("策略", styleValue.Render(data.Meta.Strategy.String()))
	row("标签数量", styleNumber.Render(fmt.Sprint(len(data.Tags))))
	row("云区域", styleNumber.Render(fmt.Sprintf("%dx%d", data.Bounds.Width, data.Bounds.Height)))
	row("圆环数量", styleNumber.Render(fmt.Sprint(rings)))
	row("当前半径", styleNumber.Render(fmt.Sprint(data.Radius)))
	row("空间利用率", styleNumber.Render(fmt.Sprintf("%.2f%%", density)))
	for _, out := range outputs {
		fmt.Fprintln(w, styleSuccess.Render(iconSuccess)+" "+styleValue.Render(out))
	}
}
