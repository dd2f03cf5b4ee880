package cloud

import "fmt"

// Sector 是中心周围的四个 90° 象限之一，在一个圆环内按顺时针依次填充。
type Sector uint8

const (
	TopRight Sector = iota
	BottomRight
	BottomLeft
	TopLeft

	sectorCount = 4
)

// Next 返回顺时针方向的下一个扇区，TopLeft 之后回到 TopRight。
func (s Sector) Next() Sector {
	return (s + 1) % sectorCount
}

func (s Sector) String() string {
	switch s {
	case TopRight:
		return "top-right"
	case BottomRight:
		return "bottom-right"
	case BottomLeft:
		return "bottom-left"
	case TopLeft:
		return "top-left"
	}
	return "unknown"
}

// MarshalText 以名称编码扇区。
func (s Sector) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText 按名称解码扇区。
func (s *Sector) UnmarshalText(text []byte) error {
	for v := range Sector(sectorCount) {
		if v.String() == string(text) {
			*s = v
			return nil
		}
	}
	return fmt.Errorf("unknown sector %q", text)
}

// movesAlongX 报告在该扇区内顺时针移动时是否沿 x 轴。
func (s Sector) movesAlongX() bool {
	return s == BottomRight || s == TopLeft
}

// nearestCorner 返回 r 在扇区 s 中离中心最近的角。
func (s Sector) nearestCorner(r Rect) Point {
	switch s {
	case TopRight:
		return r.BottomLeft()
	case BottomRight:
		return r.TopLeft()
	case BottomLeft:
		return r.TopRight()
	default:
		return r.BottomRight()
	}
}

// quadrantOf 返回点 p 相对 center 所在的象限。
// 位于坐标轴上的点归属于顺时针方向即将进入的象限：
// 12 点方向属于 TopRight，3 点方向属于 BottomRight，6 点属于 BottomLeft，9 点属于 TopLeft。
// p 与 center 重合时返回 fallback。
func quadrantOf(p, center Point, fallback Sector) Sector {
	switch {
	case p.X >= center.X && p.Y < center.Y:
		return TopRight
	case p.X > center.X && p.Y >= center.Y:
		return BottomRight
	case p.X <= center.X && p.Y > center.Y:
		return BottomLeft
	case p.X < center.X && p.Y <= center.Y:
		return TopLeft
	default:
		return fallback
	}
}

// clockwiseSign 返回在象限 q 中沿指定轴顺时针移动的符号。
func clockwiseSign(q Sector, alongX bool) int {
	switch q {
	case TopRight:
		return 1
	case BottomRight:
		if alongX {
			return -1
		}
		return 1
	case BottomLeft:
		return -1
	default:
		if alongX {
			return 1
		}
		return -1
	}
}

// outwardSign 返回在象限 q 中沿指定轴远离中心的符号。
func outwardSign(q Sector, alongX bool) int {
	switch q {
	case TopRight:
		if alongX {
			return 1
		}
		return -1
	case BottomRight:
		return 1
	case BottomLeft:
		if alongX {
			return -1
		}
		return 1
	default:
		return -1
	}
}
