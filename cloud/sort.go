package cloud

import (
	"cmp"
	"fmt"
	"strings"
)

// SortFunc 定义矩形尺寸比较函数的原型
// 返回值:
//
//	-1: a < b
//	 0: a == b
//	 1: a > b
type SortFunc func(a, b Size) int

// SortArea 按矩形面积降序排序(从大到小)
func SortArea(a, b Size) int {
	return cmp.Compare(b.Area(), a.Area())
}

// SortPerimeter 按矩形周长降序排序(从大到小)
func SortPerimeter(a, b Size) int {
	return cmp.Compare(b.Perimeter(), a.Perimeter())
}

// SortMaxSide 按矩形最长边降序排序(从大到小)
func SortMaxSide(a, b Size) int {
	return cmp.Compare(b.MaxSide(), a.MaxSide())
}

// SortHeight 按矩形高度降序排序(从大到小)，字号越大的标签越先放置
func SortHeight(a, b Size) int {
	return cmp.Compare(b.Height, a.Height)
}

// ResolveSort 按名称返回排序函数，"none" 或空字符串表示保持插入顺序
func ResolveSort(name string) (SortFunc, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return nil, nil
	case "area":
		return SortArea, nil
	case "perimeter":
		return SortPerimeter, nil
	case "maxside":
		return SortMaxSide, nil
	case "height":
		return SortHeight, nil
	}
	return nil, fmt.Errorf("unknown sort order %q", name)
}
