package cloud

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
)

// ErrInvalidSize 表示矩形的宽度或高度不大于 0。
var ErrInvalidSize = errors.New("rectangle has incorrect size")

// Layouter 包含一次布局会话的状态：固定的中心、已放置的矩形和位置分布器。
//
// 矩形按调用顺序逐个放置，结果只取决于输入和插入顺序。Layouter 不能被并发使用。
type Layouter struct {
	center      Point
	strategy    Strategy
	storage     *Storage
	distributor Distributor
	compactor   *Compactor
	logger      *log.Logger
	// placements 记录每个矩形提交时分布器的状态，下标与矩形标识一致
	placements []State

	// sortFunc 定义 PutAll 放置前用于比较尺寸大小的函数，nil 表示保持输入顺序
	sortFunc SortFunc
	// sortRev 表示是否启用反向排序
	sortRev bool
}

// NewLayouter 创建并初始化一个以 center 为中心的布局器
// 参数:
//
//	center - 会话的中心点，整个会话内保持不变
//	strategy - 生成候选位置的策略
//
// 返回:
//
//	*Layouter - 初始化成功的布局器实例
//	error - 策略无效时返回 ErrInvalidStrategy
func NewLayouter(center Point, strategy Strategy) (*Layouter, error) {
	l := &Layouter{
		center:    center,
		strategy:  strategy,
		storage:   &Storage{},
		compactor: NewCompactor(center),
		logger:    log.New(io.Discard),
	}
	if err := l.resetDistributor(); err != nil {
		return nil, err
	}
	return l, nil
}

// NewDefaultLayouter 创建使用 SectorRings 策略的布局器
func NewDefaultLayouter(center Point) *Layouter {
	l, _ := NewLayouter(center, SectorRings)
	return l
}

func (l *Layouter) resetDistributor() error {
	switch l.strategy {
	case SectorRings:
		l.distributor = NewCircleLayer(l.center, 0, l.storage)
	case AngularSpiral:
		l.distributor = NewSpiral(l.center)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidStrategy, l.strategy)
	}
	return nil
}

// SetLogger 设置记录换环等调试信息的日志器，nil 表示不记录
func (l *Layouter) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	l.logger = logger
}

// Sorter 设置 PutAll 使用的排序函数和排序顺序
func (l *Layouter) Sorter(compare SortFunc, reverse bool) {
	l.sortFunc = compare
	l.sortRev = reverse
}

// Center 返回会话的中心点
func (l *Layouter) Center() Point {
	return l.center
}

// Strategy 返回布局器使用的策略
func (l *Layouter) Strategy() Strategy {
	return l.strategy
}

// PutNext 放置下一个矩形：校验尺寸、无相交放置、向中心压缩并提交。
//
// 尺寸无效时返回包装了 ErrInvalidSize 的错误，会话状态不发生任何变化。
func (l *Layouter) PutNext(size Size) (Rect, error) {
	id, err := l.place(size)
	if err != nil {
		return Rect{}, err
	}
	r := l.compactor.Compress(l.storage.Get(id), l.storage.Before(id))
	l.storage.Move(id, r.Location())
	return r, nil
}

// PlaceWithoutIntersection 放置下一个矩形但不做压缩。
func (l *Layouter) PlaceWithoutIntersection(size Size) (Rect, error) {
	id, err := l.place(size)
	if err != nil {
		return Rect{}, err
	}
	return l.storage.Get(id), nil
}

// PutAll 依次放置多个尺寸，设置了 Sorter 时先排序。
// 任一尺寸无效时不放置任何矩形。返回值按放置顺序排列。
func (l *Layouter) PutAll(sizes ...Size) ([]Rect, error) {
	for _, size := range sizes {
		if err := validateSize(size); err != nil {
			return nil, err
		}
	}
	ordered := slices.Clone(sizes)
	if l.sortFunc != nil {
		if l.sortRev {
			slices.SortStableFunc(ordered, func(a, b Size) int {
				return l.sortFunc(b, a)
			})
		} else {
			slices.SortStableFunc(ordered, l.sortFunc)
		}
	} else if l.sortRev {
		slices.Reverse(ordered)
	}

	placed := make([]Rect, 0, len(ordered))
	for _, size := range ordered {
		r, err := l.PutNext(size)
		if err != nil {
			return placed, err
		}
		placed = append(placed, r)
	}
	return placed, nil
}

// place 校验尺寸并把矩形放到与已提交矩形都不相交的位置，返回其标识。
func (l *Layouter) place(size Size) (int, error) {
	if err := validateSize(size); err != nil {
		return 0, err
	}
	if l.storage.Len() == 0 {
		first := NewRectAt(Point{X: l.center.X - size.Width/2, Y: l.center.Y - size.Height/2}, size)
		l.distributor.Seed(first)
		id := l.storage.Add(first)
		l.placements = append(l.placements, l.distributor.State())
		l.logger.Debug("放置中心矩形", "rect", first, "radius", l.distributor.State().Radius)
		return id, nil
	}

	before := l.distributor.State()
	id := l.storage.Add(NewRectAt(l.distributor.Position(size), size))
	attempts := 0
	for {
		candidate := l.storage.Get(id)
		blocker, ok := l.firstIntersection(candidate, id)
		if !ok {
			break
		}
		l.storage.Move(id, l.distributor.Resolve(candidate, blocker))
		attempts++
	}
	l.placements = append(l.placements, l.distributor.State())
	l.distributor.Commit(id)

	if after := l.distributor.State(); after.Ring != before.Ring {
		l.logger.Debug("进入新的圆环", "ring", after.Ring, "radius", after.Radius, "placed", l.storage.Len())
	}
	if attempts > 0 {
		l.logger.Debug("已绕开相交矩形", "id", id, "attempts", attempts)
	}
	return id, nil
}

// firstIntersection 返回标识小于 id 的矩形中第一个与 r 相交的矩形。
func (l *Layouter) firstIntersection(r Rect, id int) (Rect, bool) {
	for _, committed := range l.storage.Before(id) {
		if r.Intersects(committed) {
			return committed, true
		}
	}
	return Rect{}, false
}

// Rects 获取所有已放置的矩形，顺序与放置顺序一致
// 返回:
//
//	已放置矩形的切片(由内部管理，如需修改请复制)
func (l *Layouter) Rects() []Rect {
	return l.storage.All()
}

// Rect 返回标识为 id 的矩形
func (l *Layouter) Rect(id int) Rect {
	return l.storage.Get(id)
}

// Placement 返回标识为 id 的矩形被放置时所在的圆环和扇区
func (l *Layouter) Placement(id int) State {
	return l.placements[id]
}

// Len 返回已放置的矩形数量
func (l *Layouter) Len() int {
	return l.storage.Len()
}

// State 返回分布器当前状态（半径、扇区、圆环序号）
func (l *Layouter) State() State {
	return l.distributor.State()
}

// Bounds 计算包含所有已放置矩形的最小矩形，会话为空时返回中心处的空矩形
func (l *Layouter) Bounds() Rect {
	rects := l.storage.All()
	if len(rects) == 0 {
		return NewRectAt(l.center, Size{})
	}
	bounds := rects[0]
	for _, r := range rects[1:] {
		bounds = bounds.Union(r)
	}
	return bounds
}

// Clear 清除所有已放置的矩形并以同一中心开始新的会话(保留配置)
func (l *Layouter) Clear() {
	l.storage.Reset()
	l.placements = nil
	_ = l.resetDistributor()
}

func validateSize(size Size) error {
	if size.IsEmpty() {
		return fmt.Errorf("%w: width = %d, height = %d", ErrInvalidSize, size.Width, size.Height)
	}
	return nil
}
