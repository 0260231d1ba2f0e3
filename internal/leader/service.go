package leader

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/royalhouse/fellowship-backend/internal/content"
)

// Headshot used when the admin saves a leader without a photo URL.
const defaultLeaderImage = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400&h=400&fit=crop&crop=face"

var (
	ErrMissingFields = errors.New("name and role are required")
	ErrNotFound      = errors.New("leader not found")
)

// LeaderInput carries the editable fields of one leadership profile.
type LeaderInput struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Course string `json:"course"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Image  string `json:"image"`
	Quote  string `json:"quote"`
}

type Service interface {
	List(ctx context.Context) []content.Leader
	Create(ctx context.Context, in LeaderInput) (*content.Leader, error)
	Update(ctx context.Context, id string, in LeaderInput) (*content.Leader, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	store *content.Store
}

func NewService(store *content.Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) []content.Leader {
	return s.store.GetLeaders(ctx)
}

// Create validates the input, fills the placeholder headshot when no photo was
// given, and appends the new profile to the collection.
func (s *service) Create(ctx context.Context, in LeaderInput) (*content.Leader, error) {
	if in.Name == "" || in.Role == "" {
		return nil, ErrMissingFields
	}

	rec := content.Leader{
		ID:     uuid.NewString(),
		Name:   in.Name,
		Role:   in.Role,
		Course: in.Course,
		Phone:  in.Phone,
		Email:  in.Email,
		Image:  in.Image,
		Quote:  in.Quote,
	}
	if rec.Image == "" {
		rec.Image = defaultLeaderImage
	}

	leaders := append(s.store.GetLeaders(ctx), rec)
	if err := s.store.SaveLeaders(ctx, leaders); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *service) Update(ctx context.Context, id string, in LeaderInput) (*content.Leader, error) {
	if in.Name == "" || in.Role == "" {
		return nil, ErrMissingFields
	}

	leaders := s.store.GetLeaders(ctx)
	for i := range leaders {
		if leaders[i].ID != id {
			continue
		}
		leaders[i].Name = in.Name
		leaders[i].Role = in.Role
		leaders[i].Course = in.Course
		leaders[i].Phone = in.Phone
		leaders[i].Email = in.Email
		leaders[i].Quote = in.Quote
		if in.Image != "" {
			leaders[i].Image = in.Image
		}
		if err := s.store.SaveLeaders(ctx, leaders); err != nil {
			return nil, err
		}
		updated := leaders[i]
		return &updated, nil
	}
	return nil, ErrNotFound
}

func (s *service) Delete(ctx context.Context, id string) error {
	leaders := s.store.GetLeaders(ctx)
	kept := make([]content.Leader, 0, len(leaders))
	for _, l := range leaders {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(leaders) {
		return ErrNotFound
	}
	return s.store.SaveLeaders(ctx, kept)
}
