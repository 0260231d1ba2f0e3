package gallery

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/royalhouse/fellowship-backend/internal/content"
)

var (
	ErrMissingFields = errors.New("image url and title are required")
	ErrNotFound      = errors.New("gallery image not found")
)

// Reloader is the slider hook: after every save the public carousel re-reads
// the collection so new images join the rotation immediately.
type Reloader interface {
	Reload(ctx context.Context)
}

// ImageInput carries the editable fields of one gallery image.
type ImageInput struct {
	Src         string `json:"src"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type Service interface {
	List(ctx context.Context) []content.GalleryImage
	Create(ctx context.Context, in ImageInput) (*content.GalleryImage, error)
	Update(ctx context.Context, id string, in ImageInput) (*content.GalleryImage, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	store  *content.Store
	slider Reloader
}

func NewService(store *content.Store, slider Reloader) Service {
	return &service{store: store, slider: slider}
}

func (s *service) List(ctx context.Context) []content.GalleryImage {
	return s.store.GetGalleryImages(ctx)
}

func (s *service) Create(ctx context.Context, in ImageInput) (*content.GalleryImage, error) {
	if in.Src == "" || in.Title == "" {
		return nil, ErrMissingFields
	}

	rec := content.GalleryImage{
		ID:          uuid.NewString(),
		Src:         in.Src,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
	}

	images := append(s.store.GetGalleryImages(ctx), rec)
	if err := s.store.SaveGalleryImages(ctx, images); err != nil {
		return nil, err
	}
	s.reload(ctx)
	return &rec, nil
}

func (s *service) Update(ctx context.Context, id string, in ImageInput) (*content.GalleryImage, error) {
	if in.Src == "" || in.Title == "" {
		return nil, ErrMissingFields
	}

	images := s.store.GetGalleryImages(ctx)
	for i := range images {
		if images[i].ID != id {
			continue
		}
		images[i].Src = in.Src
		images[i].Title = in.Title
		images[i].Description = in.Description
		images[i].Category = in.Category
		if err := s.store.SaveGalleryImages(ctx, images); err != nil {
			return nil, err
		}
		s.reload(ctx)
		updated := images[i]
		return &updated, nil
	}
	return nil, ErrNotFound
}

func (s *service) Delete(ctx context.Context, id string) error {
	images := s.store.GetGalleryImages(ctx)
	kept := make([]content.GalleryImage, 0, len(images))
	for _, img := range images {
		if img.ID != id {
			kept = append(kept, img)
		}
	}
	if len(kept) == len(images) {
		return ErrNotFound
	}
	if err := s.store.SaveGalleryImages(ctx, kept); err != nil {
		return err
	}
	s.reload(ctx)
	return nil
}

func (s *service) reload(ctx context.Context) {
	if s.slider != nil {
		s.slider.Reload(ctx)
	}
}
