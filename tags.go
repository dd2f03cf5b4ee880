package main

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/maruel/natural"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"tagcloud2d/cloud"
)

// labelFace 是测量和绘制标签所用的字体
var labelFace = basicfont.Face7x13

// Tag 是一个待放置的标签
type Tag struct {
	Text   string
	Weight int
	Scale  float64
	Size   cloud.Size
}

// listInputFiles 返回输入路径下的文本文件。目录中的 *.txt 按文件名自然顺序排列
func listInputFiles(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("输入路径 %s 不存在: %w", input, err)
	}
	if !info.IsDir() {
		return []string{input}, nil
	}
	paths, err := filepath.Glob(filepath.Join(input, "*.txt"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("输入目录 %s 中没有找到任何文本文件", input)
	}
	sort.Sort(natural.StringSlice(paths))
	return paths, nil
}

// readTags 读取输入路径下所有文件的词频，并生成按权重排序、已测量尺寸的标签
func readTags(opts *Options) ([]Tag, error) {
	paths, err := listInputFiles(opts.Input)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		err = countWords(file, opts.MinWordLength, counts)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("读取 %s 失败: %w", path, err)
		}
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("输入 %s 中没有任何单词", opts.Input)
	}
	return buildTags(counts, opts), nil
}

// countWords 把 r 中的单词累加到 counts。
// "单词 权重" 形式的行直接给出权重，其余行按单词统计出现次数，以 # 开头的行是注释。
func countWords(r io.Reader, minLength int, counts map[string]int) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 2 {
			if weight, err := strconv.Atoi(fields[1]); err == nil && weight > 0 {
				counts[strings.ToLower(fields[0])] += weight
				continue
			}
		}
		words := strings.FieldsFunc(line, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '-'
		})
		for _, w := range words {
			w = strings.ToLower(strings.Trim(w, "'-"))
			if len([]rune(w)) < minLength || w == "" {
				continue
			}
			counts[w]++
		}
	}
	return scanner.Err()
}

// buildTags 按权重降序(相同权重按自然顺序)排列单词，截取前 MaxTags 个并测量尺寸
func buildTags(counts map[string]int, opts *Options) []Tag {
	tags := make([]Tag, 0, len(counts))
	for text, weight := range counts {
		tags = append(tags, Tag{Text: text, Weight: weight})
	}
	slices.SortFunc(tags, func(a, b Tag) int {
		if c := cmp.Compare(b.Weight, a.Weight); c != 0 {
			return c
		}
		if natural.Less(a.Text, b.Text) {
			return -1
		}
		if natural.Less(b.Text, a.Text) {
			return 1
		}
		return 0
	})
	if opts.MaxTags > 0 && len(tags) > opts.MaxTags {
		tags = tags[:opts.MaxTags]
	}

	minW, maxW := tags[len(tags)-1].Weight, tags[0].Weight
	for i := range tags {
		tags[i].Scale = scaleFor(tags[i].Weight, minW, maxW, opts.MinScale, opts.MaxScale)
		tags[i].Size = measureTag(tags[i].Text, tags[i].Scale, opts.Padding)
	}
	return tags
}

// scaleFor 在 [minScale, maxScale] 之间按权重线性插值
func scaleFor(weight, minW, maxW int, minScale, maxScale float64) float64 {
	if maxW == minW {
		return maxScale
	}
	t := float64(weight-minW) / float64(maxW-minW)
	return minScale + (maxScale-minScale)*t
}

// measureLabel 返回文本在 labelFace 下的像素尺寸
func measureLabel(text string) cloud.Size {
	w := font.MeasureString(labelFace, text).Ceil()
	h := labelFace.Metrics().Height.Ceil()
	return cloud.NewSize(max(w, 1), h)
}

// measureTag 返回缩放后的标签尺寸，四周加上 padding
func measureTag(text string, scale float64, padding int) cloud.Size {
	label := measureLabel(text)
	return cloud.NewSize(
		int(math.Ceil(float64(label.Width)*scale))+2*padding,
		int(math.Ceil(float64(label.Height)*scale))+2*padding,
	)
}
