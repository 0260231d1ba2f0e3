package event

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/royalhouse/fellowship-backend/internal/content"
)

var (
	ErrMissingFields = errors.New("title, date and time are required")
	ErrNotFound      = errors.New("event not found")
)

// EventInput carries the editable fields of one event.
type EventInput struct {
	Title            string `json:"title"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	Location         string `json:"location"`
	Description      string `json:"description"`
	Image            string `json:"image"`
	IsRecurring      bool   `json:"is_recurring"`
	RecurringPattern string `json:"recurring_pattern"`
}

type Service interface {
	List(ctx context.Context) []content.Event
	Upcoming(ctx context.Context) UpcomingSchedule
	Create(ctx context.Context, in EventInput) (*content.Event, error)
	Update(ctx context.Context, id string, in EventInput) (*content.Event, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	store *content.Store
	now   func() time.Time
}

func NewService(store *content.Store) Service {
	return &service{store: store, now: time.Now}
}

func (s *service) List(ctx context.Context) []content.Event {
	return s.store.GetEvents(ctx)
}

func (s *service) Upcoming(ctx context.Context) UpcomingSchedule {
	return BuildSchedule(s.store.GetEvents(ctx), s.now())
}

func (s *service) Create(ctx context.Context, in EventInput) (*content.Event, error) {
	if in.Title == "" || in.Date == "" || in.Time == "" {
		return nil, ErrMissingFields
	}

	rec := content.Event{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Date:        in.Date,
		Time:        in.Time,
		Location:    in.Location,
		Description: in.Description,
		Image:       in.Image,
		IsRecurring: in.IsRecurring,
	}
	// The pattern only means anything on a recurring event
	if rec.IsRecurring {
		rec.RecurringPattern = in.RecurringPattern
	}

	events := append(s.store.GetEvents(ctx), rec)
	if err := s.store.SaveEvents(ctx, events); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *service) Update(ctx context.Context, id string, in EventInput) (*content.Event, error) {
	if in.Title == "" || in.Date == "" || in.Time == "" {
		return nil, ErrMissingFields
	}

	events := s.store.GetEvents(ctx)
	for i := range events {
		if events[i].ID != id {
			continue
		}
		events[i].Title = in.Title
		events[i].Date = in.Date
		events[i].Time = in.Time
		events[i].Location = in.Location
		events[i].Description = in.Description
		events[i].Image = in.Image
		events[i].IsRecurring = in.IsRecurring
		if in.IsRecurring {
			events[i].RecurringPattern = in.RecurringPattern
		} else {
			events[i].RecurringPattern = ""
		}
		if err := s.store.SaveEvents(ctx, events); err != nil {
			return nil, err
		}
		updated := events[i]
		return &updated, nil
	}
	return nil, ErrNotFound
}

func (s *service) Delete(ctx context.Context, id string) error {
	events := s.store.GetEvents(ctx)
	kept := make([]content.Event, 0, len(events))
	for _, ev := range events {
		if ev.ID != id {
			kept = append(kept, ev)
		}
	}
	if len(kept) == len(events) {
		return ErrNotFound
	}
	return s.store.SaveEvents(ctx, kept)
}
