package gallery

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/royalhouse/fellowship-backend/internal/content"
)

type reloadSpy struct {
	calls int
}

func (r *reloadSpy) Reload(context.Context) { r.calls++ }

func newTestService() (Service, *reloadSpy, *content.Store) {
	store := content.NewStore(content.NewMemoryKV())
	spy := &reloadSpy{}
	return NewService(store, spy), spy, store
}

func TestCreateImageTriggersSliderReload(t *testing.T) {
	svc, spy, _ := newTestService()
	ctx := context.Background()

	rec, err := svc.Create(ctx, ImageInput{Src: "/assets/gallery/new.jpg", Title: "Retreat"})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, 1, spy.calls)
}

func TestCreateImageValidation(t *testing.T) {
	svc, spy, _ := newTestService()
	ctx := context.Background()
	before := len(svc.List(ctx))

	_, err := svc.Create(ctx, ImageInput{Title: "No source"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Create(ctx, ImageInput{Src: "/assets/x.jpg"})
	assert.ErrorIs(t, err, ErrMissingFields)

	// Rejected input: no write, no reload
	assert.Equal(t, 0, spy.calls)
	assert.Len(t, svc.List(ctx), before)
}

func TestUpdateImage(t *testing.T) {
	svc, spy, _ := newTestService()
	ctx := context.Background()

	rec, err := svc.Create(ctx, ImageInput{Src: "/assets/a.jpg", Title: "Old"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, rec.ID, ImageInput{Src: "/assets/a.jpg", Title: "New", Category: "Worship"})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "Worship", updated.Category)
	assert.Equal(t, 2, spy.calls)
}

func TestDeleteImage(t *testing.T) {
	svc, spy, _ := newTestService()
	ctx := context.Background()

	rec, err := svc.Create(ctx, ImageInput{Src: "/assets/a.jpg", Title: "A"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, rec.ID))
	assert.Equal(t, 2, spy.calls)
	assert.ErrorIs(t, svc.Delete(ctx, rec.ID), ErrNotFound)
}
