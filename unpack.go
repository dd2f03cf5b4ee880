package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"

	"github.com/disintegration/imaging"
)

// tileName 返回第 i 个标签切片的文件名
func tileName(i int, text string) string {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			return r
		}
		return '_'
	}, text)
	if clean == "" {
		return fmt.Sprintf("%04d.png", i)
	}
	return fmt.Sprintf("%04d_%s.png", i, clean)
}

// unpack 根据布局文件把已渲染的云图切分成每个标签一张的图片
func unpack(jsonPath, outputDir string) (int, error) {
	data, err := readCloudJSON(jsonPath)
	if err != nil {
		return 0, err
	}
	if data.Canvas.Image == "" {
		return 0, fmt.Errorf("布局文件 %s 没有关联的图像，请先用 png 格式渲染", jsonPath)
	}

	imagePath := filepath.Join(filepath.Dir(jsonPath), data.Canvas.Image)
	cloudImage, err := imaging.Open(imagePath)
	if err != nil {
		return 0, fmt.Errorf("打开云图失败: %w", err)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return 0, fmt.Errorf("创建输出目录失败: %w", err)
	}

	offset := data.Canvas.Offset
	var (
		mu       sync.Mutex
		firstErr error
	)
	Parallel(0, len(data.Tags), func(i int) {
		r := data.Tags[i].Region.Translate(offset.X, offset.Y)
		tile := imaging.Crop(cloudImage, image.Rect(r.Left(), r.Top(), r.Right(), r.Bottom()))
		outputPath := filepath.Join(outputDir, tileName(i, data.Tags[i].Text))
		if err := imaging.Save(tile, outputPath); err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = fmt.Errorf("保存 %s 失败: %w", outputPath, err)
			}
			mu.Unlock()
		}
	})
	if firstErr != nil {
		return 0, firstErr
	}
	return len(data.Tags), nil
}
