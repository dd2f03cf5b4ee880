package main

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/image/colornames"

	"tagcloud2d/cloud"
)

// Options 是一次布局和渲染的全部配置，可以从 TOML 文件加载，命令行参数优先
type Options struct {
	Input         string         `toml:"input"`           // 输入文件或目录
	OutputDir     string         `toml:"output"`          // 输出目录
	Strategy      cloud.Strategy `toml:"strategy"`        // 布局策略
	CenterX       int            `toml:"center_x"`        // 布局中心 x
	CenterY       int            `toml:"center_y"`        // 布局中心 y
	Sort          string         `toml:"sort"`            // 按尺寸重新排序 (none, area, perimeter, maxside, height)
	Reverse       bool           `toml:"reverse"`         // 反向排序
	MaxTags       int            `toml:"max_tags"`        // 最多放置的标签数量，0 表示不限制
	MinWordLength int            `toml:"min_word_length"` // 统计词频时忽略更短的单词
	MinScale      float64        `toml:"min_scale"`       // 最小权重的字形缩放
	MaxScale      float64        `toml:"max_scale"`       // 最大权重的字形缩放
	Padding       int            `toml:"padding"`         // 标签四周的留白
	Formats       []string       `toml:"formats"`         // 输出格式 (png, pdf)
	Margin        int            `toml:"margin"`          // 画布边距
	MinCanvas     int            `toml:"min_canvas"`      // 画布最小边长
	Steps         bool           `toml:"steps"`           // 每放置一个标签输出一张图片
	Grid          int            `toml:"grid"`            // 网格间距，0 表示不画网格
	Background    string         `toml:"background"`      // 背景颜色名
	Border        string         `toml:"border"`          // 边框颜色名
	TextColor     string         `toml:"text_color"`      // 文字颜色名
	Palette       []string       `toml:"palette"`         // 按圆环序号循环使用的填充颜色名
}

// DefaultOptions 返回默认配置
func DefaultOptions() Options {
	return Options{
		Input:         "input",
		OutputDir:     "output",
		Strategy:      cloud.SectorRings,
		Sort:          "none",
		MaxTags:       150,
		MinWordLength: 3,
		MinScale:      1,
		MaxScale:      4,
		Padding:       2,
		Formats:       []string{"png"},
		Margin:        20,
		MinCanvas:     500,
		Background:    "white",
		Border:        "black",
		TextColor:     "black",
		Palette: []string{
			"lightsteelblue", "navajowhite", "palegreen", "plum",
			"lightsalmon", "paleturquoise", "khaki", "thistle",
		},
	}
}

// LoadOptions 在默认配置之上加载 TOML 文件，path 为空时只返回默认配置。
// 文件中无法识别的键以警告记录，不视为错误。
func LoadOptions(path string, logger *log.Logger) (Options, error) {
	opts := DefaultOptions()
	if path == "" {
		return opts, nil
	}
	md, err := toml.DecodeFile(path, &opts)
	if err != nil {
		return opts, fmt.Errorf("读取配置文件 %s 失败: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		logger.Warn("未知的配置项", "key", key.String(), "file", path)
	}
	return opts, opts.Validate()
}

// Validate 检查配置是否可用
func (o *Options) Validate() error {
	if _, err := cloud.ResolveSort(o.Sort); err != nil {
		return err
	}
	if o.MinScale <= 0 || o.MaxScale < o.MinScale {
		return fmt.Errorf("无效的缩放范围: %v - %v", o.MinScale, o.MaxScale)
	}
	if o.Padding < 0 || o.Margin < 0 || o.MinCanvas < 0 || o.Grid < 0 {
		return fmt.Errorf("padding, margin, min_canvas 和 grid 不能为负数")
	}
	for _, f := range o.Formats {
		switch strings.ToLower(f) {
		case "png", "pdf":
		default:
			return fmt.Errorf("不支持的输出格式 %q", f)
		}
	}
	for _, name := range append([]string{o.Background, o.Border, o.TextColor}, o.Palette...) {
		if _, err := lookupColor(name); err != nil {
			return err
		}
	}
	if len(o.Palette) == 0 {
		return fmt.Errorf("palette 至少需要一种颜色")
	}
	return nil
}

// Center 返回布局中心
func (o *Options) Center() cloud.Point {
	return cloud.NewPoint(o.CenterX, o.CenterY)
}

// HasFormat 判断是否需要输出指定格式
func (o *Options) HasFormat(format string) bool {
	for _, f := range o.Formats {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}

// Encode 以 TOML 格式写出配置
func (o *Options) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(o)
}

// lookupColor 按 SVG 颜色名查找颜色
func lookupColor(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return color.RGBA{}, fmt.Errorf("未知的颜色名 %q", name)
	}
	return c, nil
}

// optionFlags 保存命令行参数，只有显式设置的参数才会覆盖配置文件
type optionFlags struct {
	output, strategy, sort string
	centerX, centerY              int
	reverse                       bool
	maxTags, minWordLength        int
	minScale, maxScale            float64
	padding, margin, minCanvas    int
	grid                          int
	formats                       []string
	steps                         bool
}

// register 注册布局和渲染共用的参数，默认值取自 DefaultOptions
func (f *optionFlags) register(cmd *cobra.Command) {
	d := DefaultOptions()
	fs := cmd.Flags()
	fs.StringVarP(&f.output, "output", "o", d.OutputDir, "输出目录")
	fs.StringVar(&f.strategy, "strategy", d.Strategy.String(), "布局策略 (sector, spiral)")
	fs.IntVar(&f.centerX, "center-x", d.CenterX, "布局中心 x")
	fs.IntVar(&f.centerY, "center-y", d.CenterY, "布局中心 y")
	fs.StringVar(&f.sort, "sort", d.Sort, "按尺寸排序 (none, area, perimeter, maxside, height)")
	fs.BoolVar(&f.reverse, "reverse", d.Reverse, "反向排序")
	fs.IntVar(&f.maxTags, "max-tags", d.MaxTags, "最多放置的标签数量")
	fs.IntVar(&f.minWordLength, "min-word-length", d.MinWordLength, "忽略更短的单词")
	fs.Float64Var(&f.minScale, "min-scale", d.MinScale, "最小字形缩放")
	fs.Float64Var(&f.maxScale, "max-scale", d.MaxScale, "最大字形缩放")
	fs.IntVar(&f.padding, "padding", d.Padding, "标签留白")
	fs.IntVar(&f.margin, "margin", d.Margin, "画布边距")
	fs.IntVar(&f.minCanvas, "min-canvas", d.MinCanvas, "画布最小边长")
	fs.IntVar(&f.grid, "grid", d.Grid, "网格间距，0 表示不画网格")
	fs.StringSliceVar(&f.formats, "format", d.Formats, "输出格式 (png, pdf)")
	fs.BoolVar(&f.steps, "steps", d.Steps, "每放置一个标签输出一张图片")
}

// apply 把显式设置的参数写入 opts
func (f *optionFlags) apply(cmd *cobra.Command, opts *Options) error {
	changed := cmd.Flags().Changed
	if changed("output") {
		opts.OutputDir = f.output
	}
	if changed("strategy") {
		s, err := cloud.ResolveStrategy(f.strategy)
		if err != nil {
			return err
		}
		opts.Strategy = s
	}
	if changed("center-x") {
		opts.CenterX = f.centerX
	}
	if changed("center-y") {
		opts.CenterY = f.centerY
	}
	if changed("sort") {
		opts.Sort = f.sort
	}
	if changed("reverse") {
		opts.Reverse = f.reverse
	}
	if changed("max-tags") {
		opts.MaxTags = f.maxTags
	}
	if changed("min-word-length") {
		opts.MinWordLength = f.minWordLength
	}
	if changed("min-scale") {
		opts.MinScale = f.minScale
	}
	if changed("max-scale") {
		opts.MaxScale = f.maxScale
	}
	if changed("padding") {
		opts.Padding = f.padding
	}
	if changed("margin") {
		opts.Margin = f.margin
	}
	if changed("min-canvas") {
		opts.MinCanvas = f.minCanvas
	}
	if changed("grid") {
		opts.Grid = f.grid
	}
	if changed("format") {
		opts.Formats = f.formats
	}
	if changed("steps") {
		opts.Steps = f.steps
	}
	return opts.Validate()
}
