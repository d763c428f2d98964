package refresh

import (
	"fmt"

	"github.com/go-drift/pullrefresh/pkg/content"
	"github.com/go-drift/pullrefresh/pkg/layout"
)

// ContentKind is the scroll capability of the content child.
type ContentKind int

const (
	// ContentPlain has no scrolling of its own.
	ContentPlain ContentKind = iota
	// ContentListLike answers CanScrollVertically.
	ContentListLike
	// ContentRecyclerLike delegates item placement to a layout manager.
	ContentRecyclerLike
)

func (k ContentKind) String() string {
	switch k {
	case ContentPlain:
		return "plain"
	case ContentListLike:
		return "list"
	case ContentRecyclerLike:
		return "recycler"
	default:
		return fmt.Sprintf("ContentKind(%d)", int(k))
	}
}

// contentAdapter pairs a kind with its single capability query, chosen once
// at classification time.
type contentAdapter struct {
	kind  ContentKind
	atTop func() bool
}

func classify(child layout.Child) contentAdapter {
	switch v := child.(type) {
	case content.LayoutManagerHost:
		return contentAdapter{
			kind:  ContentRecyclerLike,
			atTop: func() bool { return content.IsFirstItemFullyVisible(v) },
		}
	case content.VerticalScroller:
		return contentAdapter{
			kind:  ContentListLike,
			atTop: func() bool { return !content.CanScrollUp(v) },
		}
	default:
		return contentAdapter{
			kind:  ContentPlain,
			atTop: func() bool { return true },
		}
	}
}
