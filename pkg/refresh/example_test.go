package refresh_test

import (
	"fmt"
	"time"

	"github.com/go-drift/pullrefresh/pkg/content"
	"github.com/go-drift/pullrefresh/pkg/graphics"
	"github.com/go-drift/pullrefresh/pkg/refresh"
	rtesting "github.com/go-drift/pullrefresh/pkg/testing"
)

// A pull past the header height opens the header and asks for a refresh;
// StopRefreshing closes it again.
func ExampleContainer() {
	tester := rtesting.NewTester()
	c := refresh.NewContainer(refresh.Options{Scheduler: tester.Scheduler()})
	c.SetContent(content.NewStatic("feed"))
	c.SetRefreshListener(func() { fmt.Println("refresh requested") })
	tester.Mount(c, graphics.Size{Width: 320, Height: 480})

	tester.DragFrom(graphics.Offset{Y: 10}, graphics.Offset{Y: 200})
	tester.PumpAndSettle(time.Second)
	fmt.Println(c.IsRefreshing(), c.Movement())

	c.StopRefreshing()
	tester.PumpAndSettle(time.Second)
	fmt.Println(c.IsRefreshing(), c.Movement())
	// Output:
	// refresh requested
	// true 80
	// false 0
}

// A scrolled list keeps the gesture until it reaches its top.
func ExampleContainer_scrolledList() {
	tester := rtesting.NewTester()
	list := content.NewScrollList(100, 40)
	c := refresh.NewContainer(refresh.Options{Scheduler: tester.Scheduler()})
	c.SetContent(list)
	tester.Mount(c, graphics.Size{Width: 320, Height: 480})
	list.JumpTo(60)

	tester.DragFromInSteps(graphics.Offset{Y: 100}, graphics.Offset{Y: 40}, 4)
	fmt.Println(c.ContentKind(), list.Offset(), c.Movement())
	// Output:
	// list 20 0
}
