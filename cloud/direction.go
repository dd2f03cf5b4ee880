package cloud

// Direction 是最近邻查询和压缩移动所用的基本方向。
type Direction uint8

const (
	Left Direction = iota
	Right
	Top
	Bottom
)

// Directions 列出全部四个方向。
var Directions = [...]Direction{Left, Right, Top, Bottom}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	}
	return "unknown"
}

// Gap 返回 candidate 在 d 方向上相对 subject 的有符号间距。
// 负值表示 candidate 不完全位于该方向一侧；0 表示两者接触。
func (d Direction) Gap(subject, candidate Rect) int {
	switch d {
	case Left:
		return subject.Left() - candidate.Right()
	case Right:
		return candidate.Left() - subject.Right()
	case Top:
		return subject.Top() - candidate.Bottom()
	default:
		return candidate.Top() - subject.Bottom()
	}
}

// Delta 返回沿 d 移动一个单位时的坐标增量。
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Top:
		return 0, -1
	default:
		return 0, 1
	}
}

// Opposite 返回相反的方向。
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Top:
		return Bottom
	default:
		return Top
	}
}
