package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"tagcloud2d/cloud"
)

// TagInfo 存储一个已放置标签的信息
type TagInfo struct {
	Text   string     `json:"text"`
	Weight int        `json:"weight"`
	Scale  float64    `json:"scale"`
	Region cloud.Rect `json:"region"`
	Ring   int        `json:"ring"`
	Sector string     `json:"sector,omitempty"`
}

// CanvasInfo 描述云在图像中的位置
type CanvasInfo struct {
	Image  string      `json:"image,omitempty"`
	Size   cloud.Size  `json:"size"`
	Offset cloud.Point `json:"offset"`
}

// CloudData 是 cloud.json 的内容
type CloudData struct {
	Meta struct {
		Version   string         `json:"version"`
		Timestamp string         `json:"timestamp"`
		Session   string         `json:"session"`
		Strategy  cloud.Strategy `json:"strategy"`
	} `json:"meta"`
	Center cloud.Point `json:"center"`
	Bounds cloud.Rect  `json:"bounds"`
	Radius int         `json:"radius"`
	Canvas CanvasInfo  `json:"canvas"`
	Tags   []TagInfo   `json:"tags"`
}

// newCloudData 从布局器中收集已放置的标签，tags 与放置顺序一一对应
func newCloudData(layouter *cloud.Layouter, tags []Tag) *CloudData {
	data := &CloudData{
		Center: layouter.Center(),
		Bounds: layouter.Bounds(),
		Radius: layouter.State().Radius,
		Tags:   make([]TagInfo, layouter.Len()),
	}
	data.Meta.Version = VERSION
	data.Meta.Timestamp = time.Now().Format("2006-01-02 15:04:05")
	data.Meta.Session = uuid.New().String()
	data.Meta.Strategy = layouter.Strategy()

	for id, r := range layouter.Rects() {
		state := layouter.Placement(id)
		info := TagInfo{Region: r, Ring: state.Ring}
		if state.Strategy == cloud.SectorRings {
			info.Sector = state.Sector.String()
		}
		if id < len(tags) {
			info.Text = tags[id].Text
			info.Weight = tags[id].Weight
			info.Scale = tags[id].Scale
		}
		data.Tags[id] = info
	}
	return data
}

// Rects 返回全部标签的区域
func (d *CloudData) Rects() []cloud.Rect {
	rects := make([]cloud.Rect, len(d.Tags))
	for i, t := range d.Tags {
		rects[i] = t.Region
	}
	return rects
}

// generateCloudJSON 把布局结果写入 JSON 文件
func generateCloudJSON(data *CloudData, outputPath string) error {
	defer track(&debugInfo.JsonTime)()

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, jsonData, 0644)
}

// readCloudJSON 读取 generateCloudJSON 写出的文件
func readCloudJSON(path string) (*CloudData, error) {
	jsonData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取布局文件失败: %w", err)
	}
	var data CloudData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("解析JSON失败: %w", err)
	}
	for i, t := range data.Tags {
		if t.Region.IsEmpty() {
			return nil, fmt.Errorf("标签 #%d 的尺寸无效: %v", i, t.Region.Size)
		}
	}
	return &data, nil
}
