package cloud

// Storage 是按插入顺序保存矩形的只追加集合，下标即矩形的标识。
// 正在放置的矩形通过 Move 按下标覆盖位置，放置完成后不再修改。
type Storage struct {
	rects []Rect
}

// Add 追加一个矩形并返回其标识。
func (s *Storage) Add(r Rect) int {
	s.rects = append(s.rects, r)
	return len(s.rects) - 1
}

// Get 返回标识为 id 的矩形。id 越界会引发 panic。
func (s *Storage) Get(id int) Rect {
	return s.rects[id]
}

// Move 将标识为 id 的矩形移动到 location，尺寸保持不变。
func (s *Storage) Move(id int, location Point) {
	s.rects[id].Point = location
}

// Len 返回已保存的矩形数量。
func (s *Storage) Len() int {
	return len(s.rects)
}

// All 返回全部矩形（由内部管理，如需修改请复制）
func (s *Storage) All() []Rect {
	return s.rects
}

// Before 返回标识小于 id 的矩形，即 id 之前已提交的矩形。
func (s *Storage) Before(id int) []Rect {
	return s.rects[:id]
}

// Reset 清空集合。之前通过 All 或 Before 返回的切片不受影响。
func (s *Storage) Reset() {
	s.rects = nil
}
