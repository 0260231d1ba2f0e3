package rotation

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/royalhouse/fellowship-backend/internal/content"
)

func galleryWithImages(t *testing.T, n int) (*GalleryRotator, *content.Store) {
	t.Helper()
	store := content.NewStore(content.NewMemoryKV())

	images := make([]content.GalleryImage, n)
	for i := range images {
		images[i] = content.GalleryImage{
			ID:    fmt.Sprintf("img-%d", i),
			Src:   fmt.Sprintf("/assets/gallery/%d.jpg", i),
			Title: fmt.Sprintf("Image %d", i),
		}
	}
	require.NoError(t, store.SaveGalleryImages(context.Background(), images))

	g := NewGalleryRotator(store)
	g.Start(context.Background())
	t.Cleanup(g.Stop)
	return g, store
}

func TestLightboxIndependentOfSlider(t *testing.T) {
	g, _ := galleryWithImages(t, 10)

	require.True(t, g.OpenLightbox(3))
	for i := 0; i < 8; i++ {
		require.True(t, g.LightboxNext())
	}

	snap := g.Snapshot()
	require.NotNil(t, snap.SelectedImage)
	// (3 + 8) mod 10, the slider cursor never moved
	assert.Equal(t, 1, *snap.SelectedImage)
	assert.Equal(t, 0, snap.CurrentIndex)
}

func TestLightboxWrapsBackward(t *testing.T) {
	g, _ := galleryWithImages(t, 5)

	require.True(t, g.OpenLightbox(0))
	require.True(t, g.LightboxPrevious())

	snap := g.Snapshot()
	require.NotNil(t, snap.SelectedImage)
	assert.Equal(t, 4, *snap.SelectedImage)
}

func TestLightboxRejectsOutOfRange(t *testing.T) {
	g, _ := galleryWithImages(t, 3)

	assert.False(t, g.OpenLightbox(-1))
	assert.False(t, g.OpenLightbox(3))
	assert.Nil(t, g.SelectedImage())

	// Navigation with no lightbox open is a no-op
	assert.False(t, g.LightboxNext())
	assert.False(t, g.LightboxPrevious())
}

func TestCloseLightboxClearsSelection(t *testing.T) {
	g, _ := galleryWithImages(t, 3)

	require.True(t, g.OpenLightbox(2))
	g.CloseLightbox()
	assert.Nil(t, g.SelectedImage())
}

func TestReloadClampsLightboxWhenGalleryShrinks(t *testing.T) {
	g, store := galleryWithImages(t, 5)

	require.True(t, g.OpenLightbox(4))

	require.NoError(t, store.SaveGalleryImages(context.Background(), []content.GalleryImage{
		{ID: "img-0", Src: "/assets/gallery/0.jpg", Title: "Image 0"},
		{ID: "img-1", Src: "/assets/gallery/1.jpg", Title: "Image 1"},
	}))
	g.Reload(context.Background())

	assert.Nil(t, g.SelectedImage())
	assert.Len(t, g.Images(), 2)
}

func TestScriptureRotatorPicksUpActivationOnPoll(t *testing.T) {
	store := content.NewStore(content.NewMemoryKV())
	ctx := context.Background()

	require.NoError(t, store.SaveScriptures(ctx, []content.Scripture{
		{ID: "s1", Reference: "John 3:16", Text: "...", IsActive: true},
		{ID: "s2", Reference: "Psalm 23:1", Text: "...", IsActive: false},
	}))

	r := NewScriptureRotator(store)
	r.Reload(ctx)
	defer r.Stop()

	require.Len(t, r.Snapshot().Scriptures, 1)

	// Activation flips to s2; a broadcast refreshes the rotator immediately
	require.NoError(t, store.SaveScriptures(ctx, []content.Scripture{
		{ID: "s1", Reference: "John 3:16", Text: "...", IsActive: false},
		{ID: "s2", Reference: "Psalm 23:1", Text: "...", IsActive: true},
	}))
	r.Notify(ctx)

	snap := r.Snapshot()
	require.Len(t, snap.Scriptures, 1)
	assert.Equal(t, "s2", snap.Scriptures[0].ID)
}

func TestScriptureRotatorEmptyWhenNothingActive(t *testing.T) {
	store := content.NewStore(content.NewMemoryKV())
	r := NewScriptureRotator(store)
	r.Reload(context.Background())
	defer r.Stop()

	snap := r.Snapshot()
	assert.Empty(t, snap.Scriptures)
	assert.False(t, snap.IsAnimating)

	// And navigation on an empty rotator does nothing
	assert.False(t, r.Next())
	assert.False(t, r.Previous())
}
