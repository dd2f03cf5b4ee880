package cloud

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var strategies = []Strategy{SectorRings, AngularSpiral}

func newTestLayouter(t *testing.T, strategy Strategy) *Layouter {
	t.Helper()
	l, err := NewLayouter(NewPoint(5, 5), strategy)
	require.NoError(t, err)
	return l
}

func TestNewLayouterInvalidStrategy(t *testing.T) {
	_, err := NewLayouter(NewPoint(0, 0), Strategy(42))
	assert.ErrorIs(t, err, ErrInvalidStrategy)
}

func TestPutNextInvalidSize(t *testing.T) {
	sizes := []Size{
		NewSize(0, 4),
		NewSize(3, 0),
		NewSize(-3, 4),
		NewSize(3, -4),
		NewSize(-3, -4),
		NewSize(0, 0),
	}
	for _, strategy := range strategies {
		t.Run(strategy.String(), func(t *testing.T) {
			l := newTestLayouter(t, strategy)
			for _, size := range sizes {
				_, err := l.PutNext(size)
				assert.ErrorIs(t, err, ErrInvalidSize, size.String())
			}
			assert.Equal(t, 0, l.Len())

			_, err := l.PutNext(NewSize(6, 4))
			require.NoError(t, err)
			state := l.State()
			for _, size := range sizes {
				_, err := l.PlaceWithoutIntersection(size)
				assert.ErrorIs(t, err, ErrInvalidSize)
			}
			assert.Equal(t, 1, l.Len())
			assert.Equal(t, state, l.State())
		})
	}
}

func TestPutNextFirstAtCenter(t *testing.T) {
	for _, strategy := range strategies {
		t.Run(strategy.String(), func(t *testing.T) {
			l := newTestLayouter(t, strategy)

			r, err := l.PutNext(NewSize(6, 4))
			require.NoError(t, err)
			assert.Equal(t, NewRect(2, 3, 6, 4), r)
			assert.Equal(t, 1, l.Len())
		})
	}

	l := newTestLayouter(t, SectorRings)
	_, err := l.PutNext(NewSize(6, 4))
	require.NoError(t, err)
	assert.Equal(t, 4, l.State().Radius)
}

func TestPutNextSecondTouchesFirst(t *testing.T) {
	for _, strategy := range strategies {
		t.Run(strategy.String(), func(t *testing.T) {
			l := newTestLayouter(t, strategy)

			first, err := l.PutNext(NewSize(6, 4))
			require.NoError(t, err)
			second, err := l.PutNext(NewSize(4, 4))
			require.NoError(t, err)

			assert.False(t, first.Intersects(second))
			assert.True(t, first.Top() == second.Bottom() ||
				first.Bottom() == second.Top() ||
				first.Left() == second.Right() ||
				first.Right() == second.Left())
		})
	}
}

func TestPutNextSectorRing(t *testing.T) {
	l := newTestLayouter(t, SectorRings)
	size := NewSize(4, 4)

	_, err := l.PutNext(size)
	require.NoError(t, err)
	require.Equal(t, 3, l.State().Radius)
	for range 4 {
		_, err := l.PutNext(size)
		require.NoError(t, err)
	}

	want := []Rect{
		NewRect(3, 3, 4, 4),
		NewRect(5, -1, 4, 4),
		NewRect(7, 5, 4, 4),
		NewRect(1, 7, 4, 4),
		NewRect(-1, 1, 4, 4),
	}
	assert.Equal(t, want, l.Rects())
	assert.Equal(t, State{Strategy: SectorRings, Radius: 8, Ring: 1, Sector: TopRight}, l.State())
	for id, sector := range []Sector{TopRight, TopRight, BottomRight, BottomLeft, TopLeft} {
		assert.Equal(t, State{Strategy: SectorRings, Radius: 3, Sector: sector}, l.Placement(id))
	}

	sixth, err := l.PutNext(size)
	require.NoError(t, err)
	assert.Equal(t, NewRect(5, -5, 4, 4), sixth)
	assert.True(t, sixth.Touches(l.Rect(1)))
	assert.Equal(t, BottomRight, l.State().Sector)
}

func TestPlaceWithoutIntersectionSkipsCompaction(t *testing.T) {
	l := newTestLayouter(t, SectorRings)

	_, err := l.PutNext(NewSize(6, 4))
	require.NoError(t, err)
	r, err := l.PlaceWithoutIntersection(NewSize(4, 4))
	require.NoError(t, err)

	// 半径为 4 的圆上的起始位置，未被压缩
	assert.Equal(t, NewRect(5, -3, 4, 4), r)
	assert.Equal(t, r, l.Rect(1))
}

func TestPutNextRandomNoOverlap(t *testing.T) {
	for _, strategy := range strategies {
		t.Run(strategy.String(), func(t *testing.T) {
			l := newTestLayouter(t, strategy)
			rnd := rand.New(rand.NewSource(42))

			radius := 0
			for range 150 {
				_, err := l.PutNext(NewSize(rnd.Intn(56)+5, rnd.Intn(56)+5))
				require.NoError(t, err)
				assert.GreaterOrEqual(t, l.State().Radius, radius)
				radius = l.State().Radius
			}

			rects := l.Rects()
			require.Len(t, rects, 150)
			c := NewCompactor(l.Center())
			for i, a := range rects {
				for _, b := range rects[i+1:] {
					require.False(t, a.Intersects(b), "%v intersects %v", a, b)
				}
				assert.Equal(t, a, c.Compress(a, rects[:i]))
			}
		})
	}
}

func TestPutAllSorted(t *testing.T) {
	l := NewDefaultLayouter(NewPoint(5, 5))
	l.Sorter(SortArea, false)

	placed, err := l.PutAll(NewSize(2, 2), NewSize(6, 4), NewSize(3, 3))
	require.NoError(t, err)
	require.Len(t, placed, 3)
	assert.Equal(t, NewRect(2, 3, 6, 4), placed[0])
	assert.Equal(t, NewSize(3, 3), placed[1].Size)
	assert.Equal(t, NewSize(2, 2), placed[2].Size)

	l.Clear()
	l.Sorter(SortArea, true)
	placed, err = l.PutAll(NewSize(2, 2), NewSize(6, 4), NewSize(3, 3))
	require.NoError(t, err)
	assert.Equal(t, NewRect(4, 4, 2, 2), placed[0])
}

func TestPutAllRejectsBeforePlacing(t *testing.T) {
	l := NewDefaultLayouter(NewPoint(0, 0))

	placed, err := l.PutAll(NewSize(2, 2), NewSize(0, 3))
	assert.ErrorIs(t, err, ErrInvalidSize)
	assert.Empty(t, placed)
	assert.Equal(t, 0, l.Len())
}

func TestLayouterClear(t *testing.T) {
	l := newTestLayouter(t, SectorRings)
	for range 6 {
		_, err := l.PutNext(NewSize(4, 4))
		require.NoError(t, err)
	}
	require.Equal(t, 1, l.State().Ring)

	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, State{Strategy: SectorRings}, l.State())

	r, err := l.PutNext(NewSize(6, 4))
	require.NoError(t, err)
	assert.Equal(t, NewRect(2, 3, 6, 4), r)
}

func TestLayouterBounds(t *testing.T) {
	l := newTestLayouter(t, SectorRings)
	assert.Equal(t, NewRect(5, 5, 0, 0), l.Bounds())

	_, err := l.PutAll(NewSize(6, 4), NewSize(4, 4))
	require.NoError(t, err)
	assert.Equal(t, NewRect(2, -1, 7, 8), l.Bounds())
}

func TestLayouterLogsRingChange(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLayouter(t, SectorRings)
	l.SetLogger(log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}))

	for range 5 {
		_, err := l.PutNext(NewSize(4, 4))
		require.NoError(t, err)
	}
	assert.Contains(t, buf.String(), "ring=1")

	l.SetLogger(nil)
	buf.Reset()
	_, err := l.PutNext(NewSize(4, 4))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
