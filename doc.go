// Package track maps a moving scalar, such as a scroll offset, onto line
// segments. It was written to drive collapsing-header interactions, where a
// single scroll position shrinks an image, moves a label, and fades menu
// items at the same time, but it has no dependency on any UI toolkit.
//
// # Intervals
//
// An [Interval] is a segment on one axis, going from Start to Finish. It may
// be increasing, decreasing, or singular (zero-length). Min, Max and Distance
// are independent of direction.
//
// [Interval.Mid] returns half of the interval's distance, not the location
// between the endpoints. This mirrors the behavior existing callers rely on;
// use [Interval.Midpoint] for the location.
//
// # Tracks
//
// A [Track] pairs a current location with an interval. The location is free
// to overshoot the interval in either direction: [Track.Position] reports
// whether it is before, inside, or after the interval, and
// [Track.RelativeLocation] clamps it to the nearest endpoint. All percentages
// are computed from the clamped location, so they always lie in [0, 1].
//
// Tracks can be coupled to one another. [Track.RelocateProportionately] maps
// a track's progress onto a second interval, so that, for example, a label's
// offset follows an image's height. [Track.RelocateAlong] does the same for a
// 2D [Line].
//
// # Fades
//
// A [Fade] turns a location into an opacity over its own interval,
// independently of the interval of the track the location came from. Fades
// satisfy [FadeCurve] and can be built once and sampled many times.
//
// # Scalar types
//
// All types are generic over floating point types. Integer types are not
// supported, as percentages would truncate.
//
// None of the types are safe for concurrent mutation. A track is meant to be
// owned and updated by one caller, typically on the same path that delivers
// scroll events.
package track
