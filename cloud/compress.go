package cloud

// Compactor 在矩形无相交放置后把它推向中心。
type Compactor struct {
	center Point
}

// NewCompactor 创建向 center 压缩的压缩器。
func NewCompactor(center Point) *Compactor {
	return &Compactor{center: center}
}

// Compress 沿需要的方向把 r 推向中心，直到接触最近的已提交矩形或中心线。
//
// 方向由 r 相对中心的位置决定：底边在中心上方则向下，左边在中心右侧则向左，
// 右边在中心左侧则向右，顶边在中心下方则向上。某方向上没有最近邻时不移动。
// 每次移动都不超过到最近障碍物的间距，因此结果不会与 committed 相交。
func (c *Compactor) Compress(r Rect, committed []Rect) Rect {
	for _, d := range c.directions(r) {
		r = c.slide(r, d, committed)
	}
	return r
}

// directions 返回 r 需要向中心移动的方向。
func (c *Compactor) directions(r Rect) []Direction {
	dirs := make([]Direction, 0, 2)
	if r.Bottom() < c.center.Y {
		dirs = append(dirs, Bottom)
	}
	if r.Left() > c.center.X {
		dirs = append(dirs, Left)
	}
	if r.Right() < c.center.X {
		dirs = append(dirs, Right)
	}
	if r.Top() > c.center.Y {
		dirs = append(dirs, Top)
	}
	return dirs
}

func (c *Compactor) slide(r Rect, d Direction, committed []Rect) Rect {
	_, gap, found := FindNearest(r, d, committed)
	if !found {
		return r
	}
	step := min(gap, c.distanceToCenterLine(r, d))
	if step <= 0 {
		return r
	}
	dx, dy := d.Delta()
	return r.Translate(dx*step, dy*step)
}

// distanceToCenterLine 返回 r 沿 d 到达中心线前可以移动的距离。
func (c *Compactor) distanceToCenterLine(r Rect, d Direction) int {
	switch d {
	case Left:
		return r.Left() - c.center.X
	case Right:
		return c.center.X - r.Right()
	case Top:
		return r.Top() - c.center.Y
	default:
		return c.center.Y - r.Bottom()
	}
}
