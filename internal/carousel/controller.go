// Package carousel implements the radial dish wheel controller: a
// continuous rotation, the discrete active index derived from it, and the
// drag, wheel and button inputs that move them.
//
// A Controller is owned by a single event loop and is not safe for
// concurrent use.
package carousel

import (
	"io"
	"log/slog"
	"math"
	"time"

	"dish-wheel.klederson.com/internal/config"
	"dish-wheel.klederson.com/internal/timeutil"
)

// Options tunes a Controller. Zero fields take the defaults from config.
type Options struct {
	Clock  timeutil.Clock
	Logger *slog.Logger

	Start int // Index facing the viewer initially

	ScrollDelay    time.Duration
	RotateDuration time.Duration
	PlateDuration  time.Duration

	InertiaTau      float64
	SettleSpeed     float64
	FlingSpeed      float64
	MaxGlide        float64
	VelocityWindow  time.Duration
	VelocitySamples int
}

func (o *Options) fillDefaults() {
	if o.Clock == nil {
		o.Clock = timeutil.RealClock{}
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.ScrollDelay == 0 {
		o.ScrollDelay = config.ScrollDelay
	}
	if o.RotateDuration == 0 {
		o.RotateDuration = config.RotateDuration
	}
	if o.PlateDuration == 0 {
		o.PlateDuration = config.PlateDuration
	}
	if o.InertiaTau == 0 {
		o.InertiaTau = config.InertiaTau
	}
	if o.SettleSpeed == 0 {
		o.SettleSpeed = config.SettleSpeed
	}
	if o.FlingSpeed == 0 {
		o.FlingSpeed = config.FlingSpeed
	}
	if o.MaxGlide == 0 {
		o.MaxGlide = config.MaxGlide
	}
	if o.VelocityWindow == 0 {
		o.VelocityWindow = config.VelocityWindow
	}
	if o.VelocitySamples == 0 {
		o.VelocitySamples = config.VelocitySamples
	}
}

// Controller keeps the wheel rotation, the active item and the animations
// consistent across every input source.
type Controller struct {
	opts   Options
	clock  timeutil.Clock
	logger *slog.Logger

	items []Item
	state *RotationState
	gate  *CooldownGate
	anim  *Animator

	dragging bool
	samples  *sampleRing

	layoutKey  layoutKey
	placements []Placement

	listeners []listener
	nextID    uint32
}

type layoutKey struct {
	path  Circle
	opts  LayoutOptions
	valid bool
}

// New returns a controller over items. An empty list is allowed; every
// operation is then a no-op until SetItems provides items.
func New(items []Item, opts Options) *Controller {
	opts.fillDefaults()
	c := &Controller{
		opts:    opts,
		clock:   opts.Clock,
		logger:  opts.Logger,
		items:   append([]Item(nil), items...),
		gate:    NewCooldownGate(opts.Clock, opts.ScrollDelay),
		samples: newSampleRing(opts.VelocitySamples),
	}
	c.state = NewRotationState(len(c.items), opts.Start)
	c.anim = NewAnimator(c.state.Rotation(), opts.RotateDuration, opts.PlateDuration,
		opts.InertiaTau, opts.SettleSpeed)
	return c
}

// Len returns the number of items.
func (c *Controller) Len() int { return len(c.items) }

// Items returns a copy of the item list.
func (c *Controller) Items() []Item { return append([]Item(nil), c.items...) }

// ActiveIndex returns the index of the item facing the viewer.
func (c *Controller) ActiveIndex() int { return c.state.Active() }

// Active returns the item facing the viewer. ok is false when empty.
func (c *Controller) Active() (Item, bool) {
	if len(c.items) == 0 {
		return Item{}, false
	}
	return c.items[c.state.Active()], true
}

// Accent returns the active item's color, or "" when empty.
func (c *Controller) Accent() string {
	it, ok := c.Active()
	if !ok {
		return ""
	}
	return it.Color
}

// Rotation returns the logical rotation in degrees.
func (c *Controller) Rotation() float64 { return c.state.Rotation() }

// VisualRotation returns the rotation currently on screen.
func (c *Controller) VisualRotation() float64 { return c.anim.Rotation() }

// State exposes the rotation state for inspection.
func (c *Controller) State() *RotationState { return c.state }

// Gate exposes the wheel cooldown gate for inspection.
func (c *Controller) Gate() *CooldownGate { return c.gate }

// Dragging reports whether a drag gesture is in progress.
func (c *Controller) Dragging() bool { return c.dragging }

// Plate returns the detail plate animation frame.
func (c *Controller) Plate() PlateFrame { return c.anim.Plate(c.clock.Now()) }

// Animating reports whether a tick is needed to make progress.
func (c *Controller) Animating() bool { return c.anim.Animating() }

// Attach marks the view as mounted; animations play from now on. Mounting
// plays the enter animation for the item already on show. Attaching an
// attached view does nothing.
func (c *Controller) Attach() {
	if c.anim.Attached() {
		return
	}
	c.anim.Attach()
	if len(c.items) == 0 {
		return
	}
	if c.anim.PlayEnter(c.clock.Now()) {
		idx := c.state.Active()
		c.emit(Event{Kind: EventEnterPlay, Source: SourceNone, Index: idx, Item: c.items[idx]})
	}
}

// Detach marks the view as unmounted; animations are skipped. An enter
// animation cut short still reports EventEnterStop.
func (c *Controller) Detach() {
	playing := c.anim.plate.Active()
	c.anim.Detach()
	if playing && len(c.items) > 0 {
		idx := c.state.Active()
		c.emit(Event{Kind: EventEnterStop, Index: idx, Item: c.items[idx]})
	}
}

// Subscribe registers fn for controller events.
func (c *Controller) Subscribe(fn func(Event)) *Subscription {
	c.nextID++
	c.listeners = append(c.listeners, listener{id: c.nextID, fn: fn})
	return &Subscription{id: c.nextID, c: c}
}

func (c *Controller) emit(ev Event) {
	for _, l := range append([]listener(nil), c.listeners...) {
		l.fn(ev)
	}
}

// Placements returns the layout of the items on path. The result is cached
// until the item list, the path or the options change.
func (c *Controller) Placements(path Circle, opts LayoutOptions) []Placement {
	key := layoutKey{path: path, opts: opts, valid: true}
	if c.layoutKey != key {
		c.placements = Positions(c.items, path, opts)
		c.layoutKey = key
	}
	return c.placements
}

// SetItems replaces the item list. The active index is clamped by modulo
// and the rotation moves to that index's slot.
func (c *Controller) SetItems(items []Item) {
	prev, hadPrev := c.Active()
	c.items = append([]Item(nil), items...)
	c.layoutKey = layoutKey{}
	c.placements = nil
	c.endDrag()
	c.state.resize(len(c.items))
	c.anim.Jump(c.state.Rotation())

	cur, ok := c.Active()
	if ok && (!hadPrev || cur != prev) {
		c.commitChanged(SourceItems)
	}
}

// Next advances the active item by one slot. Buttons are never gated.
func (c *Controller) Next() bool { return c.step(1, SourceButton) }

// Prev moves the active item back by one slot.
func (c *Controller) Prev() bool { return c.step(-1, SourceButton) }

// Wheel handles one scroll event. Only the sign of deltaY matters; a
// positive delta turns the wheel clockwise, which shows the previous item.
// Requests during the cooldown window are dropped.
func (c *Controller) Wheel(deltaY float64) bool {
	if len(c.items) == 0 || deltaY == 0 || math.IsNaN(deltaY) {
		return false
	}
	if !c.gate.Request() {
		c.logger.Debug("wheel step dropped", "unlock_at", c.gate.UnlockAt())
		return false
	}
	dir := 1
	if deltaY > 0 {
		dir = -1
	}
	return c.step(dir, SourceWheel)
}

// step moves exactly one slot from the slot the active item occupies, so
// the rotation and the index cannot drift apart.
func (c *Controller) step(dir int, src Source) bool {
	if len(c.items) == 0 || dir == 0 {
		return false
	}
	if c.dragging {
		c.resolveDrag()
	}
	sn := c.state.Snapper()
	idx := sn.StepIndex(c.state.Active(), dir)
	target := c.state.activeSlotRotation() - float64(sign(dir))*sn.Step()
	changed := c.state.settle(target, idx)
	c.animateRotation(target, false)
	c.logger.Debug("step", "source", src, "dir", dir, "index", idx, "rotation", target)
	if changed {
		c.commitChanged(src)
	}
	return true
}

// DragStart begins a drag gesture. The wheel picks up from where it is on
// screen, superseding any animation in flight.
func (c *Controller) DragStart() {
	if len(c.items) == 0 {
		return
	}
	now := c.clock.Now()
	r := c.anim.Rotation()
	c.anim.Jump(r)
	c.state.ApplyDelta(r - c.state.Rotation())
	c.state.SetTarget(r)
	c.dragging = true
	c.samples.reset()
	c.samples.push(now, r)
}

// DragMove rotates the wheel by delta degrees under the pointer.
func (c *Controller) DragMove(delta float64) {
	if !c.dragging || math.IsNaN(delta) {
		return
	}
	c.state.ApplyDelta(delta)
	c.state.SetTarget(c.state.Rotation())
	c.anim.Jump(c.state.Rotation())
	c.samples.push(c.clock.Now(), c.state.Rotation())
}

// DragEnd releases the wheel. A fast release coasts on; either way the
// wheel settles on the slot nearest to where the motion would end, and
// that slot's index is committed immediately.
func (c *Controller) DragEnd() (int, bool) {
	if !c.dragging {
		return c.state.Active(), false
	}
	now := c.clock.Now()
	v := c.samples.velocity(now, c.opts.VelocityWindow)
	c.endDrag()

	projected := c.state.Rotation()
	fling := math.Abs(v) >= c.opts.FlingSpeed
	if fling {
		glide := v * c.opts.InertiaTau
		glide = math.Max(-c.opts.MaxGlide, math.Min(c.opts.MaxGlide, glide))
		projected += glide
	}
	snapped, idx := c.state.Snapper().SnapNearest(projected)
	changed := c.state.settle(snapped, idx)
	c.animateRotation(snapped, fling)
	c.logger.Debug("drag end", "velocity", v, "rotation", snapped, "index", idx)
	if changed {
		c.commitChanged(SourceDrag)
	}
	return idx, true
}

// resolveDrag settles an interrupted drag on its nearest slot.
func (c *Controller) resolveDrag() {
	c.endDrag()
	snapped, idx := c.state.Snapper().SnapNearest(c.state.Rotation())
	if c.state.settle(snapped, idx) {
		c.commitChanged(SourceDrag)
	}
}

func (c *Controller) endDrag() {
	c.dragging = false
	c.samples.reset()
}

func (c *Controller) animateRotation(target float64, fling bool) {
	now := c.clock.Now()
	var played bool
	if fling {
		played = c.anim.Glide(now, target)
	} else {
		played = c.anim.RotateTo(now, target)
	}
	if !played {
		c.logger.Debug("rotation animation skipped, view not mounted")
	}
}

func (c *Controller) commitChanged(src Source) {
	idx := c.state.Active()
	item := c.items[idx]
	c.emit(Event{Kind: EventActiveChanged, Source: src, Index: idx, Item: item})
	if c.anim.PlayEnter(c.clock.Now()) {
		c.emit(Event{Kind: EventEnterPlay, Source: src, Index: idx, Item: item})
	}
}

// Tick advances animations to the current time. It reports whether more
// ticks are needed.
func (c *Controller) Tick() bool {
	if c.anim.Update(c.clock.Now()) && len(c.items) > 0 {
		idx := c.state.Active()
		c.emit(Event{Kind: EventEnterStop, Index: idx, Item: c.items[idx]})
	}
	return c.anim.Animating()
}
