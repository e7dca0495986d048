// Package viewport answers the two questions a scrolling list keeps asking:
// is a row currently on screen, and where should the list scroll to bring it there.
//
// All positions are in rows (or any other unit, as long as it is used consistently)
// measured from the top of the scrolled content.
package viewport

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlign is returned by ParseAlign for names other than top, center and bottom.
var ErrUnknownAlign = errors.New("unknown alignment")

// Item is a block of content inside a scrolled container.
type Item struct {
	Top    int
	Height int
}

// Bottom is the first position below the item.
func (i Item) Bottom() int {
	return i.Top + i.Height
}

// Viewport is the visible window of a scrolled container.
type Viewport struct {
	Offset int
	Height int
}

// Align controls where ScrollTo places an item inside the viewport.
type Align int

const (
	Top Align = iota
	Center
	Bottom
)

func (a Align) String() string {
	switch a {
	case Top:
		return "top"
	case Center:
		return "center"
	case Bottom:
		return "bottom"
	default:
		return fmt.Sprintf("Align(%d)", int(a))
	}
}

// ParseAlign converts a configuration value into an Align.
func ParseAlign(name string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "top":
		return Top, nil
	case "center", "centre":
		return Center, nil
	case "bottom":
		return Bottom, nil
	default:
		return Top, fmt.Errorf("%w: %q", ErrUnknownAlign, name)
	}
}

// IsVisible reports whether item is inside view. With allowPartial any overlap counts;
// otherwise the item must fit entirely.
func IsVisible(item Item, view Viewport, allowPartial bool) bool {
	end := view.Offset + view.Height

	if allowPartial {
		return !(end <= item.Top || view.Offset >= item.Bottom())
	}
	return !(end < item.Bottom() || view.Offset > item.Top)
}

// ScrollTo returns the offset that places item at the requested position in view.
// The result is never negative.
func ScrollTo(item Item, view Viewport, align Align) int {
	var offset int

	switch align {
	case Center:
		offset = item.Top + item.Height/2 - view.Height/2
	case Bottom:
		offset = item.Bottom() - view.Height
	default:
		offset = item.Top
	}

	return max(0, offset)
}

// ScrollIfNeeded returns view.Offset unchanged when item is visible, and the ScrollTo offset otherwise.
func ScrollIfNeeded(item Item, view Viewport, align Align, allowPartial bool) int {
	if IsVisible(item, view, allowPartial) {
		return view.Offset
	}
	return ScrollTo(item, view, align)
}

// Rows returns the Item for row index of a list whose rows are all rowHeight tall.
func Rows(index, rowHeight int) Item {
	return Item{Top: index * rowHeight, Height: rowHeight}
}
