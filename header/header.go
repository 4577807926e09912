// Package header models a collapsing header driven by scroll events.
//
// The header consists of a collapsible view containing an image, a label and
// menu items, and a greeting shown once the image has shrunk. Scrolling the
// content shrinks the view; the image shrinks along with it, the label moves
// in proportion to the image, menu items fade out and the greeting fades
// in. Once the image is fully collapsed, the content below becomes
// scrollable.
//
// The model only computes numbers. Applying a [Layout] to actual views, and
// animating snaps, is up to the caller.
package header

import (
	"math"

	"honnef.co/go/track"
)

// Layout is the set of presentation values derived from the header's state.
type Layout struct {
	Height        float64
	ImageHeight   float64
	LabelLead     float64
	Label         track.Point
	MenuAlpha     float64
	GreetingAlpha float64
	// Scrollable reports whether the content below the header may scroll
	// on its own.
	Scrollable bool
}

// Header tracks the state of a collapsing header. It must not be used
// concurrently.
type Header struct {
	conf Config

	collapsible track.Track[float64]
	image       track.Track[float64]
	label       track.Track[float64]
	labelPath   track.Line

	menu     track.Fade[float64]
	greeting track.Fade[float64]

	height     float64
	prevHeight float64
	collapsing bool
	scrollable bool

	observers []func(Layout)
}

// New returns an expanded header.
func New(conf Config) *Header {
	h := &Header{
		conf:        conf,
		collapsible: track.New(conf.Collapsible.Start, conf.Collapsible),
		image:       track.New(conf.Collapsible.Start, conf.Image),
		label:       track.New(conf.LabelLead.Start, conf.LabelLead),
		labelPath: track.Ln(
			track.Pt(conf.LabelLead.Start, conf.LabelTop.Start),
			track.Pt(conf.LabelLead.Finish, conf.LabelTop.Finish),
		),
		menu:     track.NewFade(conf.MenuFade, track.FadeOut),
		greeting: track.NewFade(conf.GreetingFade, track.FadeIn),
		height:   conf.Collapsible.Start,
	}
	h.prevHeight = h.height
	return h
}

// Config returns the configuration the header was created with.
func (h *Header) Config() Config { return h.conf }

// Observe registers fn to be called with the new layout after every change.
func (h *Header) Observe(fn func(Layout)) {
	h.observers = append(h.observers, fn)
}

func (h *Header) notify() Layout {
	l := h.Layout()
	for _, fn := range h.observers {
		fn(l)
	}
	return l
}

// Layout returns the current presentation values.
func (h *Header) Layout() Layout {
	return Layout{
		Height:        h.height,
		ImageHeight:   h.image.RelativeLocation(),
		LabelLead:     h.label.RelativeLocation(),
		Label:         h.image.RelocateAlong(h.labelPath),
		MenuAlpha:     h.menu.Apply(h.collapsible),
		GreetingAlpha: h.greeting.Apply(h.image),
		Scrollable:    h.scrollable,
	}
}

// Scroll moves the content by offset. Positive offsets push the content up,
// shrinking the header. Offsets that are NaN or infinite leave the header
// unchanged.
func (h *Header) Scroll(offset float64) Layout {
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return h.Layout()
	}
	next := h.height - offset
	if next != h.prevHeight {
		h.collapsing = next < h.prevHeight
	}

	h.scrollable = false
	h.collapsible.Update(next)
	h.image.Update(next)
	h.label.Update(h.image.RelocateProportionately(h.label.Interval))
	h.height = h.collapsible.RelativeLocation()
	h.prevHeight = h.height

	h.image.ExecuteAfter(func() {
		h.scrollable = true
	})
	return h.notify()
}

// EndScroll is called when the user stops scrolling. A header left between
// its two states snaps to whichever state it was last moving towards.
func (h *Header) EndScroll() Layout {
	if h.scrollable {
		return h.Layout()
	}
	return h.Snap(h.collapsing)
}

// Snap moves the header to its fully collapsed or fully expanded state.
func (h *Header) Snap(collapsed bool) Layout {
	edge := h.conf.Collapsible.Start
	if collapsed {
		edge = h.conf.Collapsible.Finish
	}

	h.collapsible.Update(edge)
	h.height = h.collapsible.RelativeLocation()
	h.image.Update(h.height)
	h.label.Update(h.image.RelocateProportionately(h.label.Interval))
	h.prevHeight = h.height
	h.collapsing = collapsed
	h.scrollable = collapsed
	return h.notify()
}

// Expand snaps the header to its expanded state.
func (h *Header) Expand() Layout {
	return h.Snap(false)
}
