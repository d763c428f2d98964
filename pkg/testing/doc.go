// Package testing provides a deterministic harness for pull-to-refresh
// containers and other pointer-driven views.
//
// # Quick Start
//
// Create a tester, build a container on its scheduler, and drive it:
//
//	func TestPull(t *testing.T) {
//	    tester := rtesting.NewTesterWithT(t)
//	    c := refresh.NewContainer(refresh.Options{Scheduler: tester.Scheduler()})
//	    c.SetContent(content.NewStatic("body"))
//	    tester.Mount(c, graphics.Size{Width: 320, Height: 480})
//
//	    tester.DragFrom(graphics.Offset{X: 10, Y: 10}, graphics.Offset{Y: 200})
//	    if err := tester.PumpAndSettle(time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	}
//
// # Animation Testing
//
// The tester's scheduler reads a FakeClock. Advance it and pump a frame:
//
//	tester.Clock().Advance(100 * time.Millisecond)
//	tester.Pump()
//
// # Reported Errors
//
// NewTesterWithT installs a Recorder as the global error handler for the
// duration of the test, so configuration and goroutine errors can be
// asserted with tester.Errors().
//
// # Snapshot Testing
//
// Capture the container's frames and compare them with a golden file:
//
//	rtesting.CaptureSnapshot(c).MatchesFile(t, "testdata/pulled.snapshot.json")
//
// Update snapshots with:
//
//	PULLREFRESH_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import rtesting "github.com/go-drift/pullrefresh/pkg/testing"
package testing
