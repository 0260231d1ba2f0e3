package rotation

import (
	"sync"
	"time"
)

// Config controls a carousel's timing.
type Config struct {
	Interval   time.Duration // autoplay period; <= 0 disables autoplay
	Transition time.Duration // animating-guard duration
}

const defaultTransition = 500 * time.Millisecond

// Carousel is the autoplay slider state machine shared by the photo gallery
// and the scripture rotator. Transitions are serialized by the isAnimating
// guard: while a transition is in flight every navigation call is a no-op.
// The autoplay timer is torn down and recreated whenever its dependency set
// changes (item count, play flag, hover flag) so a stale timer can never
// keep driving an old item list.
type Carousel[T any] struct {
	mu           sync.Mutex
	cfg          Config
	items        []T
	currentIndex int
	isAnimating  bool
	isPlaying    bool
	isHovered    bool

	transitionTimer *time.Timer
	autoplayStop    chan struct{}
	stopped         bool
}

func NewCarousel[T any](cfg Config) *Carousel[T] {
	if cfg.Transition <= 0 {
		cfg.Transition = defaultTransition
	}
	return &Carousel[T]{
		cfg:       cfg,
		isPlaying: true,
	}
}

// SetItems replaces the item list and clamps the index back into range.
// The autoplay timer depends on the item count, not list identity: an
// unchanged-count refresh keeps the running ticker, otherwise a store poll
// faster than the interval would starve autoplay forever.
func (c *Carousel[T]) SetItems(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prevCount := len(c.items)
	c.items = make([]T, len(items))
	copy(c.items, items)
	if c.currentIndex >= len(c.items) {
		c.currentIndex = 0
	}
	if len(c.items) != prevCount {
		c.restartAutoplayLocked()
	}
}

// Next advances one slide. Returns false when the call was swallowed
// (mid-transition or empty list).
func (c *Carousel[T]) Next() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped || c.isAnimating || len(c.items) == 0 {
		return false
	}
	c.beginTransitionLocked((c.currentIndex + 1) % len(c.items))
	return true
}

// Prev moves one slide back, wrapping to the end.
func (c *Carousel[T]) Prev() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped || c.isAnimating || len(c.items) == 0 {
		return false
	}
	n := len(c.items)
	c.beginTransitionLocked((c.currentIndex - 1 + n) % n)
	return true
}

// JumpTo selects a slide directly (dots navigation). Same guard and reset
// as Next/Prev.
func (c *Carousel[T]) JumpTo(index int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped || c.isAnimating || index < 0 || index >= len(c.items) {
		return false
	}
	c.beginTransitionLocked(index)
	return true
}

func (c *Carousel[T]) beginTransitionLocked(index int) {
	c.isAnimating = true
	c.currentIndex = index
	c.transitionTimer = time.AfterFunc(c.cfg.Transition, func() {
		c.mu.Lock()
		c.isAnimating = false
		c.mu.Unlock()
	})
}

// SetPlaying toggles autoplay (gallery play/pause button).
func (c *Carousel[T]) SetPlaying(playing bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.isPlaying = playing
	c.restartAutoplayLocked()
}

// SetHovered pauses autoplay while the pointer is over the slider.
func (c *Carousel[T]) SetHovered(hovered bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.isHovered = hovered
	c.restartAutoplayLocked()
}

// restartAutoplayLocked cancels any running autoplay timer and starts a new
// one only when eligible: more than one item, playing, not hovered. A
// single-item list never gets a timer.
func (c *Carousel[T]) restartAutoplayLocked() {
	if c.autoplayStop != nil {
		close(c.autoplayStop)
		c.autoplayStop = nil
	}
	if c.stopped || c.cfg.Interval <= 0 {
		return
	}
	if len(c.items) <= 1 || !c.isPlaying || c.isHovered {
		return
	}

	stop := make(chan struct{})
	c.autoplayStop = stop

	go func() {
		ticker := time.NewTicker(c.cfg.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				c.Next()
			}
		}
	}()
}

// Stop tears down all outstanding timers. The carousel stays readable but
// never fires again (component unmount).
func (c *Carousel[T]) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopped = true
	if c.autoplayStop != nil {
		close(c.autoplayStop)
		c.autoplayStop = nil
	}
	if c.transitionTimer != nil {
		c.transitionTimer.Stop()
		c.isAnimating = false
	}
}

// Items returns a copy of the current item list.
func (c *Carousel[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Current returns the item under the cursor, if any.
func (c *Carousel[T]) Current() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	if len(c.items) == 0 {
		return zero, false
	}
	return c.items[c.currentIndex], true
}

// Snapshot of the machine state for API responses.
type Snapshot struct {
	Count        int  `json:"count"`
	CurrentIndex int  `json:"current_index"`
	IsAnimating  bool `json:"is_animating"`
	IsPlaying    bool `json:"is_playing"`
	IsHovered    bool `json:"is_hovered"`
}

func (c *Carousel[T]) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Count:        len(c.items),
		CurrentIndex: c.currentIndex,
		IsAnimating:  c.isAnimating,
		IsPlaying:    c.isPlaying,
		IsHovered:    c.isHovered,
	}
}
