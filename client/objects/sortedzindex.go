package objects

import (
	"fmt"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// SortedZIndexList maintains a list of objects sorted by z-index.
// Objects with equal z-index keep their insertion order.
type SortedZIndexList struct {
	sorted []GameObject
}

func NewSortedZIndexList() *SortedZIndexList {
	return &SortedZIndexList{
		sorted: make([]GameObject, 0),
	}
}

func (l *SortedZIndexList) Add(obj GameObject) error {
	if l.indexOf(obj) >= 0 {
		return fmt.Errorf("object already in list")
	}
	l.insert(obj)
	return nil
}

func (l *SortedZIndexList) Remove(obj GameObject) error {
	i := l.indexOf(obj)
	if i < 0 {
		return fmt.Errorf("object not found in sorted list")
	}
	l.sorted = slices.Delete(l.sorted, i, i+1)
	return nil
}

// Reorder moves obj to the position matching its current z-index.
func (l *SortedZIndexList) Reorder(obj GameObject) error {
	if err := l.Remove(obj); err != nil {
		return err
	}
	l.insert(obj)
	return nil
}

func (l *SortedZIndexList) Contains(obj GameObject) bool {
	return l.indexOf(obj) >= 0
}

func (l *SortedZIndexList) Objects() []GameObject {
	return l.sorted
}

func (l *SortedZIndexList) Len() int {
	return len(l.sorted)
}

func (l *SortedZIndexList) Clear() {
	clear(l.sorted)
	l.sorted = l.sorted[:0]
}

func (l *SortedZIndexList) Draw(screen *ebiten.Image) {
	for _, obj := range l.sorted {
		obj.Draw(screen)
	}
}

func (l *SortedZIndexList) insert(obj GameObject) {
	for i, other := range l.sorted {
		if other.GetZIndex() > obj.GetZIndex() {
			l.sorted = append(l.sorted[:i], append([]GameObject{obj}, l.sorted[i:]...)...)
			return
		}
	}
	l.sorted = append(l.sorted, obj)
}

func (l *SortedZIndexList) indexOf(obj GameObject) int {
	for i, other := range l.sorted {
		if other == obj {
			return i
		}
	}
	return -1
}
