package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"tagcloud2d/cloud"
)

// Parallel 把 [start, end) 分批交给多个 goroutine 执行 fn
func Parallel(start, end int, fn func(i int)) {
	numGoroutines := runtime.NumCPU()
	if end-start < numGoroutines {
		// 如果任务数量少于CPU核心数，直接顺序执行
		for i := start; i < end; i++ {
			fn(i)
		}
		return
	}
	var wg sync.WaitGroup
	batchSize := max((end-start)/numGoroutines, 1)
	for i := start; i < end; i += batchSize {
		wg.Add(1)
		go func(from, to int) {
			defer wg.Done()
			for j := from; j < to && j < end; j++ {
				fn(j)
			}
		}(i, i+batchSize)
	}
	wg.Wait()
}

// palette 是渲染时使用的颜色
type palette struct {
	background color.RGBA
	border     color.RGBA
	text       color.RGBA
	fills      []color.RGBA
}

func newPalette(opts *Options) (*palette, error) {
	p := &palette{}
	var err error
	if p.background, err = lookupColor(opts.Background); err != nil {
		return nil, err
	}
	if p.border, err = lookupColor(opts.Border); err != nil {
		return nil, err
	}
	if p.text, err = lookupColor(opts.TextColor); err != nil {
		return nil, err
	}
	for _, name := range opts.Palette {
		c, err := lookupColor(name)
		if err != nil {
			return nil, err
		}
		p.fills = append(p.fills, c)
	}
	if len(p.fills) == 0 {
		p.fills = append(p.fills, p.background)
	}
	return p, nil
}

// fill 返回圆环 ring 的填充颜色
func (p *palette) fill(ring int) color.RGBA {
	return p.fills[ring%len(p.fills)]
}

// placeCloudInImage 计算能容纳整个云的正方形画布，并返回把云居中放入画布所需的平移量。
// 画布边长至少为 minSide。
func placeCloudInImage(bounds cloud.Rect, margin, minSide int) CanvasInfo {
	side := max(bounds.Width+2*margin, bounds.Height+2*margin, minSide, 1)
	return CanvasInfo{
		Size: cloud.NewSize(side, side),
		Offset: cloud.NewPoint(
			(side-bounds.Width)/2-bounds.X,
			(side-bounds.Height)/2-bounds.Y,
		),
	}
}

// renderLabel 用 labelFace 绘制文本并缩放到 size 以内，保持宽高比
func renderLabel(text string, size cloud.Size, textColor color.Color) *image.NRGBA {
	natural := measureLabel(text)
	src := image.NewNRGBA(image.Rect(0, 0, natural.Width, natural.Height))
	d := &font.Drawer{
		Dst:  src,
		Src:  image.NewUniform(textColor),
		Face: labelFace,
		Dot:  fixed.P(0, labelFace.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)

	scale := math.Min(float64(size.Width)/float64(natural.Width), float64(size.Height)/float64(natural.Height))
	w := max(int(float64(natural.Width)*scale), 1)
	h := max(int(float64(natural.Height)*scale), 1)
	return imaging.Resize(src, w, h, imaging.NearestNeighbor)
}

// drawBorder 在 r 的内侧画 1 像素宽的边框
func drawBorder(dst draw.Image, r image.Rectangle, c color.Color) {
	u := image.NewUniform(c)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
}

// drawGrid 以 step 为间距画网格线
func drawGrid(dst draw.Image, step int, c color.Color) {
	if step <= 0 {
		return
	}
	b := dst.Bounds()
	u := image.NewUniform(c)
	for x := b.Min.X; x < b.Max.X; x += step {
		draw.Draw(dst, image.Rect(x, b.Min.Y, x+1, b.Max.Y), u, image.Point{}, draw.Src)
	}
	for y := b.Min.Y; y < b.Max.Y; y += step {
		draw.Draw(dst, image.Rect(b.Min.X, y, b.Max.X, y+1), u, image.Point{}, draw.Src)
	}
}

// CreateCloudImage 创建标签云图像。
// data.Canvas 会被更新为本次渲染的画布尺寸和平移量；stepsDir 不为空时每绘制一个标签保存一张图片
func CreateCloudImage(data *CloudData, opts *Options, stepsDir string) (*image.NRGBA, error) {
	defer track(&debugInfo.RenderTime)()

	colors, err := newPalette(opts)
	if err != nil {
		return nil, err
	}
	data.Canvas = placeCloudInImage(data.Bounds, opts.Margin, opts.MinCanvas)
	side := data.Canvas.Size
	offset := data.Canvas.Offset

	dstImage := imaging.New(side.Width, side.Height, colors.background)
	drawGrid(dstImage, opts.Grid, namedColor("gainsboro", colors.border))

	// 标签文字互不依赖，先并行绘制
	labels := make([]*image.NRGBA, len(data.Tags))
	Parallel(0, len(data.Tags), func(i int) {
		t := data.Tags[i]
		if t.Text == "" {
			return
		}
		inner := cloud.NewSize(max(t.Region.Width-2*opts.Padding, 1), max(t.Region.Height-2*opts.Padding, 1))
		labels[i] = renderLabel(t.Text, inner, colors.text)
	})

	if stepsDir != "" {
		if err := os.MkdirAll(stepsDir, 0755); err != nil {
			return nil, fmt.Errorf("创建步骤目录失败: %w", err)
		}
	}
	for i, t := range data.Tags {
		r := t.Region.Translate(offset.X, offset.Y)
		dstRect := image.Rect(r.Left(), r.Top(), r.Right(), r.Bottom())
		draw.Draw(dstImage, dstRect, image.NewUniform(colors.fill(t.Ring)), image.Point{}, draw.Src)
		drawBorder(dstImage, dstRect, colors.border)

		if label := labels[i]; label != nil {
			lb := label.Bounds()
			at := image.Pt(
				dstRect.Min.X+(dstRect.Dx()-lb.Dx())/2,
				dstRect.Min.Y+(dstRect.Dy()-lb.Dy())/2,
			)
			draw.Draw(dstImage, lb.Add(at), label, image.Point{}, draw.Over)
		}

		if stepsDir != "" {
			stepPath := filepath.Join(stepsDir, fmt.Sprintf("step_%04d.png", i))
			if err := imaging.Save(dstImage, stepPath); err != nil {
				return nil, fmt.Errorf("保存步骤图片失败: %w", err)
			}
		}
	}
	return dstImage, nil
}

// namedColor 按名称查找颜色，找不到时返回 fallback
func namedColor(name string, fallback color.RGBA) color.RGBA {
	if c, err := lookupColor(name); err == nil {
		return c
	}
	return fallback
}
