package scripture

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/royalhouse/fellowship-backend/internal/content"
	"github.com/royalhouse/fellowship-backend/utils"
)

var (
	ErrMissingFields = errors.New("reference and text are required")
	ErrNotFound      = errors.New("scripture not found")
)

// ScriptureInput carries the editable fields of one scripture.
type ScriptureInput struct {
	Reference string `json:"reference"`
	Text      string `json:"text"`
}

// UpdateBroadcast is the payload published on every scripture mutation so
// the home-page rotator refreshes immediately instead of waiting for its
// next poll.
type UpdateBroadcast struct {
	ScriptureID string `json:"scripture_id"`
	Action      string `json:"action"` // create/update/delete/activate
	At          string `json:"at"`
}

type Service interface {
	List(ctx context.Context) []content.Scripture
	Active(ctx context.Context) []content.Scripture
	Create(ctx context.Context, in ScriptureInput) (*content.Scripture, error)
	Update(ctx context.Context, id string, in ScriptureInput) (*content.Scripture, error)
	Delete(ctx context.Context, id string) error

	// Activate flags one scripture for public display and clears the flag
	// on every other record in the same write.
	Activate(ctx context.Context, id string) (*content.Scripture, error)
}

type service struct {
	store *content.Store
}

func NewService(store *content.Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) []content.Scripture {
	return s.store.GetScriptures(ctx)
}

func (s *service) Active(ctx context.Context) []content.Scripture {
	return s.store.ActiveScriptures(ctx)
}

// New scriptures start inactive; the admin activates one explicitly.
func (s *service) Create(ctx context.Context, in ScriptureInput) (*content.Scripture, error) {
	if in.Reference == "" || in.Text == "" {
		return nil, ErrMissingFields
	}

	rec := content.Scripture{
		ID:        uuid.NewString(),
		Reference: in.Reference,
		Text:      in.Text,
		IsActive:  false,
		CreatedAt: time.Now().Format(time.RFC3339),
	}

	scriptures := append(s.store.GetScriptures(ctx), rec)
	if err := s.store.SaveScriptures(ctx, scriptures); err != nil {
		return nil, err
	}
	s.broadcast(ctx, rec.ID, "create")
	return &rec, nil
}

func (s *service) Update(ctx context.Context, id string, in ScriptureInput) (*content.Scripture, error) {
	if in.Reference == "" || in.Text == "" {
		return nil, ErrMissingFields
	}

	scriptures := s.store.GetScriptures(ctx)
	for i := range scriptures {
		if scriptures[i].ID != id {
			continue
		}
		scriptures[i].Reference = in.Reference
		scriptures[i].Text = in.Text
		if err := s.store.SaveScriptures(ctx, scriptures); err != nil {
			return nil, err
		}
		s.broadcast(ctx, id, "update")
		updated := scriptures[i]
		return &updated, nil
	}
	return nil, ErrNotFound
}

func (s *service) Delete(ctx context.Context, id string) error {
	scriptures := s.store.GetScriptures(ctx)
	kept := make([]content.Scripture, 0, len(scriptures))
	for _, sc := range scriptures {
		if sc.ID != id {
			kept = append(kept, sc)
		}
	}
	if len(kept) == len(scriptures) {
		return ErrNotFound
	}
	if err := s.store.SaveScriptures(ctx, kept); err != nil {
		return err
	}
	s.broadcast(ctx, id, "delete")
	return nil
}

func (s *service) Activate(ctx context.Context, id string) (*content.Scripture, error) {
	scriptures := s.store.GetScriptures(ctx)

	var activated *content.Scripture
	for i := range scriptures {
		scriptures[i].IsActive = scriptures[i].ID == id
		if scriptures[i].IsActive {
			activated = &scriptures[i]
		}
	}
	if activated == nil {
		return nil, ErrNotFound
	}

	// One snapshot write keeps the single-active rule atomic
	if err := s.store.SaveScriptures(ctx, scriptures); err != nil {
		return nil, err
	}
	s.broadcast(ctx, id, "activate")

	rec := *activated
	return &rec, nil
}

func (s *service) broadcast(ctx context.Context, id, action string) {
	payload, _ := json.Marshal(UpdateBroadcast{
		ScriptureID: id,
		Action:      action,
		At:          time.Now().Format(time.RFC3339),
	})
	utils.PublishEvent(ctx, utils.TopicScriptureUpdates, payload)
}
