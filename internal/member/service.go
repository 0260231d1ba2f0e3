package member

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/royalhouse/fellowship-backend/internal/content"
	"github.com/royalhouse/fellowship-backend/utils"
)

var (
	ErrMissingFields = errors.New("name and email are required")
	ErrNotFound      = errors.New("member not found")
)

type Service interface {
	// Join is the public signup: durable row first, then the dashboard
	// mirror, then the joined broadcast.
	Join(ctx context.Context, req JoinRequest) (*content.Member, error)

	List(ctx context.Context) []content.Member
	Create(ctx context.Context, req JoinRequest) (*content.Member, error)
	Update(ctx context.Context, id string, req JoinRequest) (*content.Member, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type service struct {
	repo    Repository
	store   *content.Store
	publish func(ctx context.Context, topic string, payload []byte) error
}

func NewService(repo Repository, store *content.Store) Service {
	return &service{repo: repo, store: store, publish: utils.PublishEvent}
}

func (s *service) Join(ctx context.Context, req JoinRequest) (*content.Member, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" || email == "" {
		return nil, ErrMissingFields
	}

	now := time.Now()
	rec := &MemberRecord{
		RecordID: uuid.NewString(),
		FullName: name,
		Email:    email,
		Phone:    strings.TrimSpace(req.Phone),
		Course:   strings.TrimSpace(req.Course),
		Year:     strings.TrimSpace(req.Year),
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	mirror := content.Member{
		ID:         rec.RecordID,
		Name:       rec.FullName,
		Email:      rec.Email,
		Phone:      rec.Phone,
		Course:     rec.Course,
		Year:       rec.Year,
		JoinedDate: now.Format("2006-01-02"),
	}
	members := append(s.store.GetMembers(ctx), mirror)
	if err := s.store.SaveMembers(ctx, members); err != nil {
		// The durable row exists, so don't fail the signup over the mirror
		log.Printf("⚠️ member: dashboard mirror write failed for %s: %v", rec.RecordID, err)
	}

	// The durable insert succeeded; the welcome pipeline runs regardless of
	// the mirror write
	payload, _ := json.Marshal(MemberJoinedEvent{
		RecordID: rec.RecordID,
		Name:     rec.FullName,
		Email:    rec.Email,
		Course:   rec.Course,
		JoinedAt: now.Format(time.RFC3339),
	})
	s.publish(ctx, utils.TopicMemberJoined, payload)

	return &mirror, nil
}

func (s *service) List(ctx context.Context) []content.Member {
	return s.store.GetMembers(ctx)
}

// Create is the admin-side add: same record shape as Join but no joined
// broadcast, the admin is already looking at the dashboard.
func (s *service) Create(ctx context.Context, req JoinRequest) (*content.Member, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" || email == "" {
		return nil, ErrMissingFields
	}

	rec := &MemberRecord{
		RecordID: uuid.NewString(),
		FullName: name,
		Email:    email,
		Phone:    strings.TrimSpace(req.Phone),
		Course:   strings.TrimSpace(req.Course),
		Year:     strings.TrimSpace(req.Year),
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	mirror := content.Member{
		ID:         rec.RecordID,
		Name:       rec.FullName,
		Email:      rec.Email,
		Phone:      rec.Phone,
		Course:     rec.Course,
		Year:       rec.Year,
		JoinedDate: time.Now().Format("2006-01-02"),
	}
	members := append(s.store.GetMembers(ctx), mirror)
	if err := s.store.SaveMembers(ctx, members); err != nil {
		return nil, err
	}
	return &mirror, nil
}

func (s *service) Update(ctx context.Context, id string, req JoinRequest) (*content.Member, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" || email == "" {
		return nil, ErrMissingFields
	}

	members := s.store.GetMembers(ctx)
	for i := range members {
		if members[i].ID != id {
			continue
		}
		members[i].Name = name
		members[i].Email = email
		members[i].Phone = strings.TrimSpace(req.Phone)
		members[i].Course = strings.TrimSpace(req.Course)
		members[i].Year = strings.TrimSpace(req.Year)
		if err := s.store.SaveMembers(ctx, members); err != nil {
			return nil, err
		}
		updated := members[i]
		return &updated, nil
	}
	return nil, ErrNotFound
}

func (s *service) Delete(ctx context.Context, id string) error {
	members := s.store.GetMembers(ctx)
	kept := make([]content.Member, 0, len(members))
	for _, m := range members {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(members) {
		return ErrNotFound
	}
	if err := s.store.SaveMembers(ctx, kept); err != nil {
		return err
	}
	// Best effort on the durable row; the dashboard reads the mirror
	_ = s.repo.DeleteByRecordID(ctx, id)
	return nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
