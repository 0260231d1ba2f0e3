package rotation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCarousel returns a carousel with autoplay disabled and a transition
// short enough that tests can wait it out.
func testCarousel(items ...string) *Carousel[string] {
	c := NewCarousel[string](Config{Interval: 0, Transition: time.Millisecond})
	c.SetItems(items)
	return c
}

func settle(c *Carousel[string]) {
	time.Sleep(20 * time.Millisecond)
}

func TestCarouselNextWrapsAround(t *testing.T) {
	c := testCarousel("a", "b", "c")
	defer c.Stop()

	for i := 0; i < 3; i++ {
		require.True(t, c.Next())
		settle(c)
	}
	// Three advances over three items lands back on the first
	assert.Equal(t, 0, c.Snapshot().CurrentIndex)
}

func TestCarouselPrevWrapsToEnd(t *testing.T) {
	c := testCarousel("a", "b", "c")
	defer c.Stop()

	require.True(t, c.Prev())
	settle(c)
	assert.Equal(t, 2, c.Snapshot().CurrentIndex)
}

func TestCarouselPrevUndoesNext(t *testing.T) {
	c := testCarousel("a", "b", "c", "d")
	defer c.Stop()

	require.True(t, c.Next())
	settle(c)
	require.True(t, c.Prev())
	settle(c)
	assert.Equal(t, 0, c.Snapshot().CurrentIndex)
}

func TestCarouselIgnoresCallsMidTransition(t *testing.T) {
	c := NewCarousel[string](Config{Interval: 0, Transition: time.Second})
	defer c.Stop()
	c.SetItems([]string{"a", "b", "c"})

	require.True(t, c.Next())
	// Still animating: every navigation is swallowed
	assert.False(t, c.Next())
	assert.False(t, c.Prev())
	assert.False(t, c.JumpTo(2))
	assert.Equal(t, 1, c.Snapshot().CurrentIndex)
}

func TestCarouselEmptyAndOutOfRange(t *testing.T) {
	c := testCarousel()
	defer c.Stop()

	assert.False(t, c.Next())
	assert.False(t, c.Prev())
	assert.False(t, c.JumpTo(0))

	_, ok := c.Current()
	assert.False(t, ok)

	c.SetItems([]string{"a", "b"})
	assert.False(t, c.JumpTo(-1))
	assert.False(t, c.JumpTo(2))
	assert.True(t, c.JumpTo(1))
}

func TestCarouselSetItemsClampsIndex(t *testing.T) {
	c := testCarousel("a", "b", "c", "d")
	defer c.Stop()

	require.True(t, c.JumpTo(3))
	settle(c)

	c.SetItems([]string{"a", "b"})
	assert.Equal(t, 0, c.Snapshot().CurrentIndex)
}

func TestCarouselAutoplayAdvances(t *testing.T) {
	c := NewCarousel[string](Config{Interval: 15 * time.Millisecond, Transition: time.Millisecond})
	defer c.Stop()
	c.SetItems([]string{"a", "b", "c"})

	time.Sleep(50 * time.Millisecond)
	assert.NotEqual(t, 0, c.Snapshot().CurrentIndex)
}

func TestCarouselAutoplayPausesOnHover(t *testing.T) {
	c := NewCarousel[string](Config{Interval: 15 * time.Millisecond, Transition: time.Millisecond})
	defer c.Stop()
	c.SetItems([]string{"a", "b", "c"})
	c.SetHovered(true)

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 0, c.Snapshot().CurrentIndex)

	// Leaving the slider resumes the rotation
	c.SetHovered(false)
	time.Sleep(60 * time.Millisecond)
	assert.NotEqual(t, 0, c.Snapshot().CurrentIndex)
}

func TestCarouselAutoplayRespectsPause(t *testing.T) {
	c := NewCarousel[string](Config{Interval: 15 * time.Millisecond, Transition: time.Millisecond})
	defer c.Stop()
	c.SetItems([]string{"a", "b", "c"})
	c.SetPlaying(false)

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 0, c.Snapshot().CurrentIndex)
}

func TestCarouselSingleItemNeverRotates(t *testing.T) {
	c := NewCarousel[string](Config{Interval: 10 * time.Millisecond, Transition: time.Millisecond})
	defer c.Stop()
	c.SetItems([]string{"only"})

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, c.Snapshot().CurrentIndex)
}

func TestCarouselAutoplaySurvivesUnchangedRefresh(t *testing.T) {
	c := NewCarousel[string](Config{Interval: 40 * time.Millisecond, Transition: time.Millisecond})
	defer c.Stop()
	items := []string{"a", "b", "c", "d", "e"}
	c.SetItems(items)

	// Refresh faster than the autoplay interval with the same item count,
	// the way the store poll does. The ticker must keep running.
	for i := 0; i < 12; i++ {
		time.Sleep(15 * time.Millisecond)
		c.SetItems(items)
	}
	assert.NotEqual(t, 0, c.Snapshot().CurrentIndex)
}

func TestCarouselAutoplayStopsWhenShrunkToOne(t *testing.T) {
	c := NewCarousel[string](Config{Interval: 15 * time.Millisecond, Transition: time.Millisecond})
	defer c.Stop()
	c.SetItems([]string{"a", "b", "c"})

	// A count change still rebuilds the timer, and one item means no timer
	c.SetItems([]string{"a"})
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 0, c.Snapshot().CurrentIndex)
}

func TestCarouselNavigationDeadAfterStop(t *testing.T) {
	c := testCarousel("a", "b", "c")
	c.Stop()

	assert.False(t, c.Next())
	assert.False(t, c.Prev())
	assert.False(t, c.JumpTo(1))

	snap := c.Snapshot()
	assert.Equal(t, 0, snap.CurrentIndex)
	assert.False(t, snap.IsAnimating)
}

func TestCarouselStopKillsAutoplay(t *testing.T) {
	c := NewCarousel[string](Config{Interval: 10 * time.Millisecond, Transition: time.Millisecond})
	c.SetItems([]string{"a", "b", "c"})
	c.Stop()

	idx := c.Snapshot().CurrentIndex
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, idx, c.Snapshot().CurrentIndex)
}
