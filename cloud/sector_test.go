package cloud

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectorNextIsClockwise(t *testing.T) {
	s := TopRight
	var order []Sector
	for range 5 {
		order = append(order, s)
		s = s.Next()
	}
	assert.Equal(t, []Sector{TopRight, BottomRight, BottomLeft, TopLeft, TopRight}, order)
}

func TestQuadrantOf(t *testing.T) {
	center := NewPoint(0, 0)
	tests := []struct {
		name string
		p    Point
		want Sector
	}{
		{"12 o'clock", NewPoint(0, -3), TopRight},
		{"3 o'clock", NewPoint(3, 0), BottomRight},
		{"6 o'clock", NewPoint(0, 3), BottomLeft},
		{"9 o'clock", NewPoint(-3, 0), TopLeft},
		{"top-right", NewPoint(2, -2), TopRight},
		{"bottom-right", NewPoint(2, 2), BottomRight},
		{"bottom-left", NewPoint(-2, 2), BottomLeft},
		{"top-left", NewPoint(-2, -2), TopLeft},
		{"center", center, BottomLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, quadrantOf(tt.p, center, BottomLeft))
		})
	}
}

// clockAngle 返回从 12 点方向顺时针量到 p 的角度(屏幕坐标，Y 向下)
func clockAngle(p Point) float64 {
	a := math.Atan2(float64(p.X), float64(-p.Y))
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func TestSectorSigns(t *testing.T) {
	inside := map[Sector]Point{
		TopRight:    NewPoint(3, -4),
		BottomRight: NewPoint(4, 3),
		BottomLeft:  NewPoint(-3, 4),
		TopLeft:     NewPoint(-4, -3),
	}
	origin := NewPoint(0, 0)
	for q, p := range inside {
		for _, alongX := range []bool{true, false} {
			step := func(sign int) Point {
				if alongX {
					return p.Offset(sign, 0)
				}
				return p.Offset(0, sign)
			}
			cw := step(clockwiseSign(q, alongX))
			assert.Greater(t, clockAngle(cw), clockAngle(p), "%v alongX=%v", q, alongX)

			out := step(outwardSign(q, alongX))
			assert.Greater(t, out.DistanceSq(origin), p.DistanceSq(origin), "%v alongX=%v", q, alongX)
		}
	}
}

func TestSectorNearestCorner(t *testing.T) {
	r := NewRect(2, 3, 6, 4)

	assert.Equal(t, r.BottomLeft(), TopRight.nearestCorner(r))
	assert.Equal(t, r.TopLeft(), BottomRight.nearestCorner(r))
	assert.Equal(t, r.TopRight(), BottomLeft.nearestCorner(r))
	assert.Equal(t, r.BottomRight(), TopLeft.nearestCorner(r))
}
