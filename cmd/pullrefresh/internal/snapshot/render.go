package snapshot

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/pullrefresh/pkg/content"
	"github.com/go-drift/pullrefresh/pkg/graphics"
	"github.com/go-drift/pullrefresh/pkg/refresh"
)

// Palette.
var (
	ColorBackground = graphics.RGB(0xfa, 0xfa, 0xfa)
	ColorHeader     = graphics.RGB(0x1f, 0x1d, 0x2e)
	ColorTrack      = graphics.RGB(0x3c, 0x3a, 0x4e)
	ColorIndicator  = graphics.RGB(0x7d, 0x56, 0xf4)
	ColorArmed      = graphics.RGB(0x04, 0xb5, 0x75)
	ColorRowAlt     = graphics.RGB(0xee, 0xee, 0xf2)
	ColorText       = graphics.RGB(0x22, 0x22, 0x22)
	ColorHeaderText = graphics.RGB(0xe0, 0xe0, 0xe0)
)

const (
	barHeight  = 6
	barMargin  = 16
	textIndent = 12
	// stripe is the segment width of the indeterminate bar.
	stripe = 12
)

var face font.Face = basicfont.Face7x13

// Render rasterizes c's current frame. c must have been laid out.
func Render(c *refresh.Container) *image.RGBA {
	body := c.ContentFrame()
	img := image.NewRGBA(image.Rect(0, 0, body.Right, body.Bottom))
	fill(img, img.Bounds(), ColorBackground)

	drawContent(img, c)
	drawHeader(img, c)
	return img
}

func drawHeader(img *image.RGBA, c *refresh.Container) {
	frame := c.HeaderFrame()
	r := rect(frame).Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	fill(img, r, ColorHeader)

	fraction, indeterminate := indicatorState(c)
	barTop := frame.Bottom - barMargin - barHeight
	track := image.Rect(frame.Left+barMargin, barTop, frame.Right-barMargin, barTop+barHeight)
	fill(img, track, ColorTrack)

	label := "pull to refresh"
	barColor := ColorIndicator
	switch {
	case indeterminate:
		label = "refreshing"
		for x := track.Min.X; x < track.Max.X; x += 2 * stripe {
			fill(img, image.Rect(x, track.Min.Y, min(x+stripe, track.Max.X), track.Max.Y), ColorIndicator)
		}
	default:
		if c.HeaderHeight() > 0 && c.Movement() > c.HeaderHeight() {
			label = "release to refresh"
			barColor = ColorArmed
		}
		filled := int(float64(track.Dx()) * fraction)
		fill(img, image.Rect(track.Min.X, track.Min.Y, track.Min.X+filled, track.Max.Y), barColor)
	}
	drawText(img, track.Min.X, barTop-6, label, ColorHeaderText)
}

// indicatorState reads the default header when installed and falls back
// to the container's progress for custom headers.
func indicatorState(c *refresh.Container) (float64, bool) {
	if h, ok := c.Header().(*refresh.DefaultHeader); ok {
		return h.Indicator.Fraction(), h.Indicator.Indeterminate
	}
	return float64(c.Progress()) / 100, c.IsRefreshing()
}

func drawContent(img *image.RGBA, c *refresh.Container) {
	frame := c.ContentFrame()
	switch v := c.Content().(type) {
	case *content.ScrollList:
		drawRows(img, frame, v.Offset(), v.ItemExtent, v.ItemCount, 1)
	case *content.Recycler:
		switch lm := v.LayoutManager().(type) {
		case *content.LinearLayoutManager:
			drawRows(img, frame, v.Offset(), lm.ItemExtent, v.ItemCount, 1)
		case *content.GridLayoutManager:
			drawRows(img, frame, v.Offset(), lm.RowExtent, v.ItemCount, max(1, lm.SpanCount))
		}
	case *content.Static:
		width := font.MeasureString(face, v.Label).Ceil()
		x := frame.Left + (frame.Width()-width)/2
		y := frame.Top + frame.Height()/2
		drawText(img, x, y, v.Label, ColorText)
	}
}

// drawRows paints rows of span cells each, starting from the row at the
// scroll offset.
func drawRows(img *image.RGBA, frame graphics.Rect, offset, extent, count, span int) {
	if extent <= 0 {
		return
	}
	rows := (count + span - 1) / span
	cellWidth := frame.Width() / span
	ascent := face.Metrics().Ascent.Ceil()
	for row := offset / extent; row < rows; row++ {
		top := frame.Top + row*extent - offset
		if top >= frame.Bottom {
			break
		}
		if row%2 == 1 {
			fill(img, image.Rect(frame.Left, top, frame.Right, top+extent), ColorRowAlt)
		}
		for col := range span {
			idx := row*span + col
			if idx >= count {
				break
			}
			x := frame.Left + col*cellWidth + textIndent
			y := top + (extent+ascent)/2
			drawText(img, x, y, fmt.Sprintf("item %03d", idx), ColorText)
		}
	}
}

// drawText draws s with its baseline at y.
func drawText(img *image.RGBA, x, y int, s string, c graphics.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func fill(img *image.RGBA, r image.Rectangle, c graphics.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func rect(r graphics.Rect) image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Right, r.Bottom)
}
