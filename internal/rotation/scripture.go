package rotation

import (
	"context"
	"sync"
	"time"

	"github.com/royalhouse/fellowship-backend/internal/content"
)

const (
	scriptureInterval   = 8 * time.Second
	scriptureTransition = 500 * time.Millisecond
	scripturePollEvery  = 5 * time.Second
)

// ScriptureRotator cycles the active-flagged scriptures on the home page.
// It re-derives its item list from the store every 5 seconds so admin-side
// activation changes surface without a reload, and refreshes immediately
// when a "scriptures updated" broadcast arrives.
type ScriptureRotator struct {
	car   *Carousel[content.Scripture]
	store *content.Store

	mu       sync.Mutex
	pollStop chan struct{}
}

func NewScriptureRotator(store *content.Store) *ScriptureRotator {
	return &ScriptureRotator{
		car: NewCarousel[content.Scripture](Config{
			Interval:   scriptureInterval,
			Transition: scriptureTransition,
		}),
		store: store,
	}
}

// Start loads the active scriptures and begins the 5 s store poll.
func (r *ScriptureRotator) Start(ctx context.Context) {
	r.Reload(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pollStop != nil {
		return
	}
	stop := make(chan struct{})
	r.pollStop = stop

	go func() {
		ticker := time.NewTicker(scripturePollEvery)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.Reload(ctx)
			}
		}
	}()
}

// Reload re-filters the scripture collection to the active records.
func (r *ScriptureRotator) Reload(ctx context.Context) {
	r.car.SetItems(r.store.ActiveScriptures(ctx))
}

// Notify handles the scriptures-updated broadcast: refresh now rather than
// waiting for the next poll tick.
func (r *ScriptureRotator) Notify(ctx context.Context) {
	r.Reload(ctx)
}

func (r *ScriptureRotator) Stop() {
	r.mu.Lock()
	if r.pollStop != nil {
		close(r.pollStop)
		r.pollStop = nil
	}
	r.mu.Unlock()
	r.car.Stop()
}

func (r *ScriptureRotator) Next() bool        { return r.car.Next() }
func (r *ScriptureRotator) Previous() bool    { return r.car.Prev() }
func (r *ScriptureRotator) JumpTo(i int) bool { return r.car.JumpTo(i) }

// ScriptureSnapshot is the rotator state served to the web client. Nothing
// renders when Scriptures is empty.
type ScriptureSnapshot struct {
	Scriptures   []content.Scripture `json:"scriptures"`
	CurrentIndex int                 `json:"current_index"`
	IsAnimating  bool                `json:"is_animating"`
}

func (r *ScriptureRotator) Snapshot() ScriptureSnapshot {
	snap := r.car.Snapshot()
	return ScriptureSnapshot{
		Scriptures:   r.car.Items(),
		CurrentIndex: snap.CurrentIndex,
		IsAnimating:  snap.IsAnimating,
	}
}
