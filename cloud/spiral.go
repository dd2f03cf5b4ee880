package cloud

import "math"

const (
	// SpiralStartRadius 是螺线的初始半径。
	SpiralStartRadius = 5
	// SpiralRadiusStep 是螺线每转一圈半径的增量。
	SpiralRadiusStep = 5

	fullTurn = 360
)

// Spiral 沿逐度展开的螺线生成候选位置。
// 每次调用角度增加 1°，超过 360° 后角度归零、半径增加 SpiralRadiusStep。
type Spiral struct {
	center Point
	radius int
	angle  int
	ring   int
}

// NewSpiral 创建以 center 为中心的螺线。
func NewSpiral(center Point) *Spiral {
	return &Spiral{center: center, radius: SpiralStartRadius}
}

// Next 前进一步并返回螺线上的原始点，坐标向上取整。
func (s *Spiral) Next() Point {
	s.angle++
	if s.angle > fullTurn {
		s.angle = 0
		s.radius += SpiralRadiusStep
		s.ring++
	}
	rad := float64(s.angle) * math.Pi / 180.0
	r := float64(s.radius)
	return Point{
		X: s.center.X + int(math.Ceil(r*math.Cos(rad))),
		Y: s.center.Y + int(math.Ceil(r*math.Sin(rad))),
	}
}

// Seed 不改变螺线状态，螺线总是从固定半径开始。
func (s *Spiral) Seed(Rect) {}

// Position 返回以下一个螺线点为中心的矩形左上角。
func (s *Spiral) Position(size Size) Point {
	p := s.Next()
	return Point{X: p.X - size.Width/2, Y: p.Y - size.Height/2}
}

// Resolve 忽略相交的矩形，直接取螺线上的下一个位置。
func (s *Spiral) Resolve(candidate, _ Rect) Point {
	return s.Position(candidate.Size)
}

// Commit 对螺线没有影响，螺线在矩形之间连续推进。
func (s *Spiral) Commit(int) {}

func (s *Spiral) State() State {
	return State{
		Strategy: AngularSpiral,
		Radius:   s.radius,
		Ring:     s.ring,
		Angle:    s.angle,
	}
}
