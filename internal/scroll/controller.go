// Package scroll decides when the "return to top" affordance is shown.
//
// A Controller listens to a Host's vertical scroll position and keeps a single
// visibility flag equal to position > Threshold. The Host is whatever owns the
// viewport: the browser window under WebAssembly (see package jshost) or a
// fake in tests.
package scroll

import "sync"

// Threshold is the scroll offset the viewport must exceed before the
// affordance becomes visible. An offset of exactly Threshold stays hidden.
const Threshold = 300.0

// Host is the viewport a Controller observes and drives.
type Host interface {
	// AddScrollListener registers fn for scroll notifications and returns a
	// function that unregisters it.
	AddScrollListener(fn func(position float64)) (remove func())
	// ScrollY reports the current vertical offset.
	ScrollY() float64
	// ScrollTo moves the viewport to offset. Hosts that cannot animate may
	// jump instead when smooth is set.
	ScrollTo(offset float64, smooth bool)
}

// Evaluate reports whether the affordance should be visible at position.
func Evaluate(position float64) bool {
	return position > Threshold
}

type subscription struct {
	remove func()
}

// Controller owns the visibility flag for one affordance.
type Controller struct {
	host Host

	mu       sync.Mutex
	visible  bool
	sub      *subscription
	onChange func(visible bool)
}

// NewController returns an inactive Controller bound to host. A nil host is
// allowed: the controller then never registers and never becomes visible.
func NewController(host Host) *Controller {
	return &Controller{host: host}
}

// OnChange sets fn to be called whenever the visibility flag flips. It is
// never called for samples that leave the flag unchanged.
func (c *Controller) OnChange(fn func(visible bool)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// Activate registers the controller's scroll listener with the host and
// returns a disposer that unregisters it. Calling Activate on an active
// controller returns a disposer for the existing registration. Disposers are
// idempotent, and a disposer from an earlier activation never releases a
// later one.
//
// The host is called without c.mu held, so it may deliver samples from
// inside AddScrollListener.
func (c *Controller) Activate() (dispose func()) {
	c.mu.Lock()
	if c.host == nil {
		c.mu.Unlock()
		return func() {}
	}
	if sub := c.sub; sub != nil {
		c.mu.Unlock()
		return func() { c.release(sub) }
	}
	sub := &subscription{}
	c.sub = sub
	c.mu.Unlock()

	remove := c.host.AddScrollListener(c.sample)

	c.mu.Lock()
	if c.sub != sub {
		// Released while the host was registering.
		c.mu.Unlock()
		if remove != nil {
			remove()
		}
		return func() {}
	}
	sub.remove = remove
	c.mu.Unlock()

	return func() { c.release(sub) }
}

// Deactivate releases the current registration, if any.
func (c *Controller) Deactivate() {
	c.mu.Lock()
	sub := c.sub
	c.mu.Unlock()

	if sub != nil {
		c.release(sub)
	}
}

// Active reports whether a scroll listener is currently registered.
func (c *Controller) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sub != nil
}

// Visible reports the current visibility flag.
func (c *Controller) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// Sync samples the host's current offset once. Used right after activation
// so a page restored mid-scroll shows the affordance without waiting for the
// next scroll event.
func (c *Controller) Sync() {
	if c.host == nil {
		return
	}
	c.sample(c.host.ScrollY())
}

// ScrollToTop asks the host to scroll smoothly to offset 0. It issues the
// request whatever the current flag is.
func (c *Controller) ScrollToTop() {
	if c.host == nil {
		return
	}
	c.host.ScrollTo(0, true)
}

func (c *Controller) sample(position float64) {
	c.mu.Lock()
	if c.sub == nil {
		// Late delivery after release.
		c.mu.Unlock()
		return
	}
	c.setLocked(Evaluate(position))
}

func (c *Controller) release(sub *subscription) {
	c.mu.Lock()
	if c.sub != sub {
		c.mu.Unlock()
		return
	}
	c.sub = nil
	remove := sub.remove
	c.setLocked(false)

	// remove is nil while Activate is still registering; Activate then
	// unregisters itself.
	if remove != nil {
		remove()
	}
}

// setLocked stores visible, unlocks c.mu and notifies the observer if the
// flag changed.
func (c *Controller) setLocked(visible bool) {
	changed := c.visible != visible
	c.visible = visible
	fn := c.onChange
	c.mu.Unlock()

	if changed && fn != nil {
		fn(visible)
	}
}
