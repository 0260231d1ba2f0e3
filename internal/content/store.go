package content

import (
	"context"
	"encoding/json"
	"log"
)

// Storage keys, one blob per collection
const (
	leadersKey    = "rh_leaders"
	galleryKey    = "rh_gallery"
	membersKey    = "rh_members"
	eventsKey     = "rh_events"
	scripturesKey = "rh_scriptures"
)

// Store is the typed record store for the five site collections. Reads fall
// back to the default dataset when a blob is missing or unparsable; writes
// replace the whole collection snapshot. Last write wins, by design of the
// original single-admin workflow.
type Store struct {
	kv KV
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// ===========================
// 🔎 Generic load / save over one collection blob
func load[T any](ctx context.Context, s *Store, key string, defaults []T) []T {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if err != ErrKeyMissing {
			log.Printf("⚠️ content: read of %q failed, serving defaults: %v", key, err)
		}
		return cloneSlice(defaults)
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		// Corrupt blob: swallow and serve defaults, the next save replaces it
		log.Printf("⚠️ content: %q blob is corrupt, serving defaults: %v", key, err)
		return cloneSlice(defaults)
	}
	if items == nil {
		items = []T{}
	}
	return items
}

func save[T any](ctx context.Context, s *Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, key, string(raw))
}

func cloneSlice[T any](src []T) []T {
	out := make([]T, len(src))
	copy(out, src)
	return out
}

// ===========================
// 👥 Leaders
func (s *Store) GetLeaders(ctx context.Context) []Leader {
	return load(ctx, s, leadersKey, defaultLeaders)
}

func (s *Store) SaveLeaders(ctx context.Context, leaders []Leader) error {
	return save(ctx, s, leadersKey, leaders)
}

// ===========================
// 🖼 Gallery
func (s *Store) GetGalleryImages(ctx context.Context) []GalleryImage {
	return load(ctx, s, galleryKey, defaultGalleryImages)
}

func (s *Store) SaveGalleryImages(ctx context.Context, images []GalleryImage) error {
	return save(ctx, s, galleryKey, images)
}

// ===========================
// 🧑‍🎓 Members
func (s *Store) GetMembers(ctx context.Context) []Member {
	return load(ctx, s, membersKey, defaultMembers)
}

func (s *Store) SaveMembers(ctx context.Context, members []Member) error {
	return save(ctx, s, membersKey, members)
}

// ===========================
// 📆 Events
func (s *Store) GetEvents(ctx context.Context) []Event {
	return load(ctx, s, eventsKey, defaultEvents)
}

func (s *Store) SaveEvents(ctx context.Context, events []Event) error {
	return save(ctx, s, eventsKey, events)
}

// ===========================
// 📖 Scriptures
func (s *Store) GetScriptures(ctx context.Context) []Scripture {
	return load(ctx, s, scripturesKey, defaultScriptures)
}

func (s *Store) SaveScriptures(ctx context.Context, scriptures []Scripture) error {
	return save(ctx, s, scripturesKey, scriptures)
}

// ActiveScriptures returns only the records flagged for public display.
func (s *Store) ActiveScriptures(ctx context.Context) []Scripture {
	all := s.GetScriptures(ctx)
	active := make([]Scripture, 0, len(all))
	for _, sc := range all {
		if sc.IsActive {
			active = append(active, sc)
		}
	}
	return active
}
