package rotation

import (
	"context"
	"sync"
	"time"

	"github.com/royalhouse/fellowship-backend/internal/content"
)

const (
	galleryInterval   = 5 * time.Second
	galleryTransition = 500 * time.Millisecond
)

// GalleryRotator drives the public photo slider: a 5 s autoplay carousel
// with play/pause and hover-pause, plus an independent lightbox cursor.
// Opening the lightbox seeds it from the clicked slide but the two indices
// never sync back afterwards.
type GalleryRotator struct {
	car   *Carousel[content.GalleryImage]
	store *content.Store

	mu       sync.Mutex
	selected *int // lightbox index, nil when closed
}

func NewGalleryRotator(store *content.Store) *GalleryRotator {
	return &GalleryRotator{
		car: NewCarousel[content.GalleryImage](Config{
			Interval:   galleryInterval,
			Transition: galleryTransition,
		}),
		store: store,
	}
}

// Start loads the gallery collection and arms autoplay.
func (g *GalleryRotator) Start(ctx context.Context) {
	g.Reload(ctx)
}

// Reload re-reads the gallery collection from the store. Called on start
// and after every admin gallery save.
func (g *GalleryRotator) Reload(ctx context.Context) {
	images := g.store.GetGalleryImages(ctx)
	g.car.SetItems(images)

	// Clamp the lightbox too if the list shrank underneath it
	g.mu.Lock()
	if g.selected != nil && *g.selected >= len(images) {
		g.selected = nil
	}
	g.mu.Unlock()
}

func (g *GalleryRotator) Stop() {
	g.car.Stop()
}

// ===========================
// ▶️ Main slider operations
func (g *GalleryRotator) Next() bool            { return g.car.Next() }
func (g *GalleryRotator) Previous() bool        { return g.car.Prev() }
func (g *GalleryRotator) JumpTo(i int) bool     { return g.car.JumpTo(i) }
func (g *GalleryRotator) SetPlaying(p bool)     { g.car.SetPlaying(p) }
func (g *GalleryRotator) SetHovered(h bool)     { g.car.SetHovered(h) }
func (g *GalleryRotator) Images() []content.GalleryImage { return g.car.Items() }

// ===========================
// 🔍 Lightbox sub-mode
func (g *GalleryRotator) OpenLightbox(index int) bool {
	count := len(g.car.Items())
	if index < 0 || index >= count {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.selected = &index
	return true
}

func (g *GalleryRotator) CloseLightbox() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.selected = nil
}

func (g *GalleryRotator) LightboxNext() bool {
	count := len(g.car.Items())
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.selected == nil || count == 0 {
		return false
	}
	next := (*g.selected + 1) % count
	g.selected = &next
	return true
}

func (g *GalleryRotator) LightboxPrevious() bool {
	count := len(g.car.Items())
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.selected == nil || count == 0 {
		return false
	}
	prev := (*g.selected - 1 + count) % count
	g.selected = &prev
	return true
}

// SelectedImage returns the lightbox index, nil when closed.
func (g *GalleryRotator) SelectedImage() *int {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.selected == nil {
		return nil
	}
	v := *g.selected
	return &v
}

// GallerySnapshot is the slider state served to the web client.
type GallerySnapshot struct {
	Images        []content.GalleryImage `json:"images"`
	CurrentIndex  int                    `json:"current_index"`
	IsAnimating   bool                   `json:"is_animating"`
	IsPlaying     bool                   `json:"is_playing"`
	IsHovered     bool                   `json:"is_hovered"`
	SelectedImage *int                   `json:"selected_image"`
}

func (g *GalleryRotator) Snapshot() GallerySnapshot {
	snap := g.car.Snapshot()
	return GallerySnapshot{
		Images:        g.car.Items(),
		CurrentIndex:  snap.CurrentIndex,
		IsAnimating:   snap.IsAnimating,
		IsPlaying:     snap.IsPlaying,
		IsHovered:     snap.IsHovered,
		SelectedImage: g.SelectedImage(),
	}
}
