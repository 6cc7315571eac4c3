// Package geometry tracks where the selection indicator sits under the tab
// strip.
package geometry

// Extent is a horizontal span in terminal cells, relative to the container
// that holds the controls. Row counts wrapped lines of controls from the top.
type Extent struct {
	Row   int
	Left  int
	Width int
}

// IsZero reports whether the extent is empty.
func (e Extent) IsZero() bool {
	return e.Width <= 0
}

// Handle names a rendered control.
type Handle string

// Measurer resolves a control handle to its rendered extent. ok is false when
// the control has not been laid out yet.
type Measurer interface {
	Measure(h Handle) (Extent, bool)
}

// Layout is a declared layout: the extent of every control, computed ahead of
// drawing instead of read back from a rendering surface.
type Layout map[Handle]Extent

// Measure implements Measurer.
func (l Layout) Measure(h Handle) (Extent, bool) {
	e, ok := l[h]
	return e, ok
}

// Tracker derives the indicator extent for the selected key. Controls are
// bound by key rather than position, so reordering controls never shifts the
// indicator onto a neighbour.
type Tracker[K comparable] struct {
	handles  map[K]Handle
	selected K
	extent   Extent
	dirty    bool
}

// NewTracker returns a tracker that considers initial selected and needs a
// first measurement.
func NewTracker[K comparable](initial K) *Tracker[K] {
	return &Tracker[K]{
		handles:  make(map[K]Handle),
		selected: initial,
		dirty:    true,
	}
}

// Bind associates key with the handle of its control.
func (t *Tracker[K]) Bind(key K, h Handle) {
	t.handles[key] = h
	if key == t.selected {
		t.dirty = true
	}
}

// Handle returns the handle bound to key.
func (t *Tracker[K]) Handle(key K) (Handle, bool) {
	h, ok := t.handles[key]
	return h, ok
}

// Select records a new selection. Selecting the current key again still
// schedules a measurement.
func (t *Tracker[K]) Select(key K) {
	t.selected = key
	t.dirty = true
}

// Invalidate schedules a measurement of the current selection, e.g. after the
// controls were laid out again.
func (t *Tracker[K]) Invalidate() {
	t.dirty = true
}

// Selected returns the key the tracker measures.
func (t *Tracker[K]) Selected() K {
	return t.selected
}

// Dirty reports whether a measurement is pending.
func (t *Tracker[K]) Dirty() bool {
	return t.dirty
}

// Extent returns the last successfully measured extent.
func (t *Tracker[K]) Extent() Extent {
	return t.extent
}

// Sync measures the selected control if a measurement is pending. When the
// control is unbound or not laid out the previous extent is kept and the
// measurement stays pending for the next call. It reports whether the extent
// changed.
func (t *Tracker[K]) Sync(m Measurer) bool {
	if !t.dirty || m == nil {
		return false
	}
	h, ok := t.handles[t.selected]
	if !ok {
		return false
	}
	e, ok := m.Measure(h)
	if !ok {
		return false
	}
	t.dirty = false
	if e == t.extent {
		return false
	}
	t.extent = e
	return true
}
