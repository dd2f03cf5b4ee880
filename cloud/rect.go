package cloud

import (
	"fmt"
	"math"
)

// Point 描述了二维空间中的一个位置。Y 轴向下增长，与图像坐标一致。
type Point struct {
	// X 是在水平 x 轴上的位置。
	X int `json:"x"`
	// Y 是在垂直 y 轴上的位置。
	Y int `json:"y"`
}

// NewPoint 初始化一个具有指定坐标的新点。
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// Eq 判断接收者和另一个点是否具有相同的值。
func (p Point) Eq(point Point) bool {
	return p.X == point.X && p.Y == point.Y
}

// String 返回点的字符串表示形式。
func (p Point) String() string {
	return fmt.Sprintf("[%v, %v]", p.X, p.Y)
}

// Offset 返回按指定相对量移动后的点。
func (p Point) Offset(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// DistanceSq 返回两点之间距离的平方。
func (p Point) DistanceSq(point Point) int {
	dx := p.X - point.X
	dy := p.Y - point.Y
	return dx*dx + dy*dy
}

// Distance 返回两点之间的欧氏距离。
func (p Point) Distance(point Point) float64 {
	return math.Sqrt(float64(p.DistanceSq(point)))
}

// CeilDistance 返回向上取整后的两点距离。
func (p Point) CeilDistance(point Point) int {
	return ceilSqrt(p.DistanceSq(point))
}

// Size 描述了二维空间中实体的尺寸。
type Size struct {
	// Width 是在水平 x 轴上的尺寸。
	Width int `json:"width"`
	// Height 是在垂直 y 轴上的尺寸。
	Height int `json:"height"`
}

// NewSize 创建具有指定尺寸的新尺寸对象。
func NewSize(width, height int) Size {
	return Size{Width: width, Height: height}
}

// Eq 判断接收者和另一个尺寸是否具有相同的值。
func (sz Size) Eq(size Size) bool {
	return sz.Width == size.Width && sz.Height == size.Height
}

// String 返回尺寸的字符串表示形式。
func (sz Size) String() string {
	return fmt.Sprintf("[%v, %v]", sz.Width, sz.Height)
}

// Area 返回总面积（宽度 * 高度）。
func (sz Size) Area() int {
	return sz.Width * sz.Height
}

// Perimeter 返回所有边的总长度。
func (sz Size) Perimeter() int {
	return (sz.Width + sz.Height) << 1
}

// MaxSide 返回较大边的值。
func (sz Size) MaxSide() int {
	return max(sz.Width, sz.Height)
}

// MinSide 返回较小边的值。
func (sz Size) MinSide() int {
	return min(sz.Width, sz.Height)
}

// Ratio 计算宽度与高度之间的比率。
func (sz Size) Ratio() float64 {
	return float64(sz.Width) / float64(sz.Height)
}

// IsEmpty 测试宽度或高度是否小于1。
func (sz Size) IsEmpty() bool {
	return sz.Width <= 0 || sz.Height <= 0
}

// Rect 描述了二维空间中的一个位置（左上角）和尺寸。
type Rect struct {
	// Point 表示矩形的左上角坐标。
	Point
	// Size 表示矩形的宽度和高度。
	Size
}

// NewRect 初始化一个使用指定点和尺寸值的新矩形。
func NewRect(x, y, w, h int) Rect {
	return Rect{
		Point: Point{X: x, Y: y},
		Size:  Size{Width: w, Height: h},
	}
}

// NewRectAt 用左上角和尺寸构造矩形。
func NewRectAt(location Point, size Size) Rect {
	return Rect{Point: location, Size: size}
}

// Eq 比较两个矩形以确定位置和尺寸是否相等。
func (r Rect) Eq(rect Rect) bool {
	return r.Point.Eq(rect.Point) && r.Size.Eq(rect.Size)
}

// String 返回描述矩形的字符串。
func (r Rect) String() string {
	return fmt.Sprintf("[%v, %v, %v, %v]", r.X, r.Y, r.Width, r.Height)
}

// Location 返回矩形的左上角。
func (r Rect) Location() Point {
	return r.Point
}

// Left 返回矩形左边缘在 x 轴上的坐标。
func (r Rect) Left() int {
	return r.X
}

// Top 返回矩形上边缘在 y 轴上的坐标。
func (r Rect) Top() int {
	return r.Y
}

// Right 返回矩形右边缘在 x 轴上的坐标。
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom 返回矩形下边缘在 y 轴上的坐标。
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// TopLeft 返回表示矩形左上角的点。
func (r Rect) TopLeft() Point {
	return Point{X: r.Left(), Y: r.Top()}
}

// TopRight 返回表示矩形右上角的点。
func (r Rect) TopRight() Point {
	return Point{X: r.Right(), Y: r.Top()}
}

// BottomLeft 返回表示矩形左下角的点。
func (r Rect) BottomLeft() Point {
	return Point{X: r.Left(), Y: r.Bottom()}
}

// BottomRight 返回表示矩形右下角的点。
func (r Rect) BottomRight() Point {
	return Point{X: r.Right(), Y: r.Bottom()}
}

// Corners 按左上、右上、右下、左下的顺序返回四个角。
func (r Rect) Corners() [4]Point {
	return [4]Point{r.TopLeft(), r.TopRight(), r.BottomRight(), r.BottomLeft()}
}

// Center 返回表示矩形中心的点，坐标向下取整。
func (r Rect) Center() Point {
	return Point{X: r.X + (r.Width >> 1), Y: r.Y + (r.Height >> 1)}
}

// FarthestCornerDistance 返回离 p 最远的角到 p 的距离，向上取整。
func (r Rect) FarthestCornerDistance(p Point) int {
	far := 0
	for _, c := range r.Corners() {
		far = max(far, c.DistanceSq(p))
	}
	return ceilSqrt(far)
}

// MoveTo 返回左上角移动到 location 的矩形。
func (r Rect) MoveTo(location Point) Rect {
	r.Point = location
	return r
}

// Translate 返回按相对量平移后的矩形。
func (r Rect) Translate(dx, dy int) Rect {
	r.Point = r.Point.Offset(dx, dy)
	return r
}

// Contains 测试指定的坐标是否在接收者的边界内。
func (r Rect) Contains(x, y int) bool {
	return r.X <= x && x < r.X+r.Width && r.Y <= y && y < r.Y+r.Height
}

// Intersects 测试接收者是否与指定的矩形有重叠。仅接触边缘不算相交。
func (r Rect) Intersects(rect Rect) bool {
	return rect.X < r.X+r.Width &&
		r.X < rect.X+rect.Width &&
		rect.Y < r.Y+r.Height &&
		r.Y < rect.Y+rect.Height
}

// Touches 测试两个矩形是否不相交但共享一段边。
func (r Rect) Touches(rect Rect) bool {
	if r.Intersects(rect) {
		return false
	}
	overlapX := r.Left() < rect.Right() && rect.Left() < r.Right()
	overlapY := r.Top() < rect.Bottom() && rect.Top() < r.Bottom()
	return (overlapX && (r.Top() == rect.Bottom() || r.Bottom() == rect.Top())) ||
		(overlapY && (r.Left() == rect.Right() || r.Right() == rect.Left()))
}

// Union 返回一个包含目标和自己的最小矩形
func (r Rect) Union(rect Rect) Rect {
	x1 := min(r.X, rect.X)
	x2 := max(r.X+r.Width, rect.X+rect.Width)
	y1 := min(r.Y, rect.Y)
	y2 := max(r.Y+r.Height, rect.Y+rect.Height)
	return NewRect(x1, y1, x2-x1, y2-y1)
}

// abs 返回整数的绝对值
func abs(x int) int {
	if x >= 0 {
		return x
	}
	return -x
}

// ceilSqrt 返回 ⌈√n⌉，n 小于等于 0 时返回 0。
func ceilSqrt(n int) int {
	if n <= 0 {
		return 0
	}
	r := int(math.Sqrt(float64(n)))
	for r*r < n {
		r++
	}
	for r > 0 && (r-1)*(r-1) >= n {
		r--
	}
	return r
}
