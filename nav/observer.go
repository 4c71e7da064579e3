package nav

import (
	"github.com/p09s/folio/util"
)

// Threshold bounds accepted for the visibility observer. A section
// counts as "in view" once the configured fraction of its height sits
// inside the viewport; values outside this range are clamped.
const (
	MinThreshold = 0.30
	MaxThreshold = 0.50
)

// extent records where a tracked section lives inside the rendered document.
type extent struct {
	top    int
	height int
}

// Observer watches viewport geometry and reports, for each tracked
// section, when its visible fraction crosses the configured threshold
// upward. It never scrolls and never mutates anything beyond invoking
// the subscribed callbacks; ties between simultaneous crossings are
// resolved last-write-wins with no priority logic.
type Observer struct {
	threshold float64

	order     []string
	extents   map[string]extent
	fractions map[string]float64
	callbacks map[string]func()
	closed    bool
}

// NewObserver returns an observer with the given visibility threshold,
// clamped into the accepted range.
func NewObserver(threshold float64) *Observer {
	return &Observer{
		threshold: util.Clamp(threshold, MinThreshold, MaxThreshold),
		extents:   make(map[string]extent),
		fractions: make(map[string]float64),
		callbacks: make(map[string]func()),
	}
}

// Threshold returns the effective visibility threshold.
func (o *Observer) Threshold() float64 {
	return o.threshold
}

// Subscribe registers a callback fired whenever the section's visible
// fraction crosses the threshold upward. A second subscription for the
// same section replaces the first.
func (o *Observer) Subscribe(id string, onCrossThreshold func()) {
	if o.closed {
		return
	}
	o.callbacks[id] = onCrossThreshold
}

// Unsubscribe releases the section's subscription.
func (o *Observer) Unsubscribe(id string) {
	delete(o.callbacks, id)
}

// Track records the document extent of a section. Tracking order
// defines event delivery order for simultaneous crossings; re-tracking
// an id updates its extent in place.
func (o *Observer) Track(id string, top, height int) {
	if o.closed {
		return
	}
	if _, seen := o.extents[id]; !seen {
		o.order = append(o.order, id)
	}
	o.extents[id] = extent{top: top, height: height}
}

// Report feeds the observer the current viewport window. Every tracked
// section whose visible fraction moved from below the threshold to at
// or above it has its callback fired, in tracking (document) order, so
// the latest delivered crossing wins downstream.
func (o *Observer) Report(viewTop, viewHeight int) {
	if o.closed {
		return
	}

	for _, id := range o.order {
		ext := o.extents[id]
		fraction := visibleFraction(ext, viewTop, viewHeight)

		previous := o.fractions[id]
		o.fractions[id] = fraction

		if previous < o.threshold && fraction >= o.threshold {
			if cb, ok := o.callbacks[id]; ok {
				cb()
			}
		}
	}
}

// Close releases every subscription and stops all observation.
// Reports and subscriptions after Close are discarded.
func (o *Observer) Close() {
	o.closed = true
	o.callbacks = make(map[string]func())
}

func visibleFraction(ext extent, viewTop, viewHeight int) float64 {
	if ext.height <= 0 || viewHeight <= 0 {
		return 0
	}

	top := util.Max(ext.top, viewTop)
	bottom := util.Min(ext.top+ext.height, viewTop+viewHeight)
	if bottom <= top {
		return 0
	}

	return float64(bottom-top) / float64(ext.height)
}
