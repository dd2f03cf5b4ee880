package cloud

// CircleLayer 是按扇区填充的同心圆环。
//
// 每个圆环依次向 TopRight、BottomRight、BottomLeft、TopLeft 四个扇区各放置一个矩形，
// 矩形离中心最近的角落在当前半径的圆上。四个扇区都放满后创建下一个圆环，
// 新半径取被跟踪矩形最远角到中心距离的最小值。
type CircleLayer struct {
	center  Point
	radius  int
	sector  Sector
	ring    int
	tracked []int
	storage *Storage
}

// NewCircleLayer 创建以 center 为中心、半径为 radius 的第一个圆环。
// storage 用于在换环时读取已放置矩形的最终位置。
func NewCircleLayer(center Point, radius int, storage *Storage) *CircleLayer {
	return &CircleLayer{
		center:  center,
		radius:  max(radius, 0),
		sector:  TopRight,
		storage: storage,
	}
}

// Center 返回圆环的中心。
func (l *CircleLayer) Center() Point {
	return l.center
}

// Radius 返回当前圆环的半径。
func (l *CircleLayer) Radius() int {
	return l.radius
}

// Sector 返回当前正在填充的扇区。
func (l *CircleLayer) Sector() Sector {
	return l.sector
}

// Ring 返回当前圆环的序号。
func (l *CircleLayer) Ring() int {
	return l.ring
}

// Tracked 返回参与下一次半径计算的矩形标识（由内部管理，如需修改请复制）
func (l *CircleLayer) Tracked() []int {
	return l.tracked
}

// Seed 用中心矩形的外接圆半径初始化第一个圆环，半径只增不减。
func (l *CircleLayer) Seed(first Rect) {
	// ⌈√(w²+h²)/2⌉ = ⌈√⌈(w²+h²)/4⌉⌉
	diagSq := first.Width*first.Width + first.Height*first.Height
	l.radius = max(l.radius, ceilSqrt((diagSq+3)/4))
}

// Position 返回当前扇区中矩形的左上角，使矩形离中心最近的角落在圆上。
func (l *CircleLayer) Position(size Size) Point {
	c, r := l.center, l.radius
	switch l.sector {
	case TopRight:
		return Point{X: c.X, Y: c.Y - r - size.Height}
	case BottomRight:
		return Point{X: c.X + r, Y: c.Y}
	case BottomLeft:
		return Point{X: c.X - size.Width, Y: c.Y + r}
	default:
		return Point{X: c.X - r - size.Width, Y: c.Y - size.Height}
	}
}

// Commit 记录新放置的矩形并把扇区顺时针推进一格，回到 TopRight 时创建新圆环。
func (l *CircleLayer) Commit(id int) {
	l.tracked = append(l.tracked, id)
	l.sector = l.sector.Next()
	if l.sector == TopRight {
		l.expand(1)
	}
}

// Resolve 计算 candidate 绕开 blocker 的新位置。
//
// candidate 沿当前扇区的移动轴顺时针移过 blocker，再沿另一轴向外调整，
// 使离中心最近的角重新落在圆上。若移动后矩形越过扇区末端的坐标轴，
// 则转入下一个扇区（必要时创建新圆环）并返回该扇区的起始位置。
func (l *CircleLayer) Resolve(candidate, blocker Rect) Point {
	alongX := l.sector.movesAlongX()
	corner := l.sector.nearestCorner(candidate)
	q := quadrantOf(corner, l.center, l.sector)

	shift := clockwiseDistance(l.sector, candidate, blocker) * clockwiseSign(q, alongX)
	moved := candidate
	if alongX {
		moved = moved.Translate(shift, 0)
	} else {
		moved = moved.Translate(0, shift)
	}

	if l.crossesSectorEnd(moved) {
		l.advance(candidate.MinSide())
		return l.Position(candidate.Size)
	}

	offset := l.offsetToCircle(l.sector.nearestCorner(moved), alongX) * outwardSign(q, !alongX)
	if alongX {
		return moved.Point.Offset(0, offset)
	}
	return moved.Point.Offset(offset, 0)
}

func (l *CircleLayer) State() State {
	return State{
		Strategy: SectorRings,
		Radius:   l.radius,
		Ring:     l.ring,
		Sector:   l.sector,
	}
}

// clockwiseDistance 返回 candidate 在扇区 s 中顺时针移过 blocker 所需的距离。
func clockwiseDistance(s Sector, candidate, blocker Rect) int {
	switch s {
	case TopRight:
		return abs(candidate.Top() - blocker.Bottom())
	case BottomRight:
		return abs(candidate.Right() - blocker.Left())
	case BottomLeft:
		return abs(candidate.Bottom() - blocker.Top())
	default:
		return abs(candidate.Left() - blocker.Right())
	}
}

// offsetToCircle 返回沿非移动轴需要向外移动的距离，使 corner 落在圆上。
// corner 已在圆外时以其实际距离为斜边，结果为 0。
func (l *CircleLayer) offsetToCircle(corner Point, alongX bool) int {
	moving := abs(corner.Y - l.center.Y)
	perp := abs(corner.X - l.center.X)
	if alongX {
		moving, perp = perp, moving
	}
	hyp := max(l.radius*l.radius, corner.DistanceSq(l.center))
	return max(ceilSqrt(hyp-moving*moving)-perp, 0)
}

// crossesSectorEnd 报告 r 是否越过当前扇区末端的坐标轴。
func (l *CircleLayer) crossesSectorEnd(r Rect) bool {
	switch l.sector {
	case TopRight:
		return r.Bottom() > l.center.Y
	case BottomRight:
		return r.Left() < l.center.X
	case BottomLeft:
		return r.Top() < l.center.Y
	default:
		return r.Right() > l.center.X
	}
}

// advance 在当前扇区无法容纳矩形时转入下一个扇区。
func (l *CircleLayer) advance(growth int) {
	l.sector = l.sector.Next()
	if l.sector == TopRight {
		l.expand(growth)
	}
}

// expand 创建下一个圆环。
//
// 新半径为被跟踪矩形最远角到中心距离的最小值，且严格大于当前半径；
// 没有被跟踪的矩形时半径增加 growth。最远角不超过新半径的矩形不再跟踪。
func (l *CircleLayer) expand(growth int) {
	next := l.radius + max(growth, 1)
	if len(l.tracked) > 0 {
		next = -1
		for _, id := range l.tracked {
			d := l.storage.Get(id).FarthestCornerDistance(l.center)
			if next < 0 || d < next {
				next = d
			}
		}
		next = max(next, l.radius+1)
	}

	kept := l.tracked[:0]
	for _, id := range l.tracked {
		if l.storage.Get(id).FarthestCornerDistance(l.center) > next {
			kept = append(kept, id)
		}
	}
	l.tracked = kept
	l.radius = next
	l.ring++
	l.sector = TopRight
}
