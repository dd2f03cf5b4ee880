package cloud

// FindNearest 在 candidates 中查找 d 方向上离 subject 最近的矩形。
//
//	subject - 查询的矩形
//	d - 查询方向
//	candidates - 已放置的矩形
//
// 只有间距非负（完全位于该方向一侧，允许接触）的矩形参与比较；间距相同时
// 取输入顺序中靠前的一个。candidates 为空或没有符合条件的矩形时 found 为 false。
func FindNearest(subject Rect, d Direction, candidates []Rect) (nearest Rect, gap int, found bool) {
	for _, candidate := range candidates {
		g := d.Gap(subject, candidate)
		if g < 0 {
			continue
		}
		if !found || g < gap {
			nearest, gap, found = candidate, g, true
		}
	}
	return
}
