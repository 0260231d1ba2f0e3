package scripture

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/royalhouse/fellowship-backend/internal/content"
)

func newTestService() Service {
	return NewService(content.NewStore(content.NewMemoryKV()))
}

func TestCreateScripture(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	rec, err := svc.Create(ctx, ScriptureInput{Reference: "John 3:16", Text: "For God so loved the world..."})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.IsActive)

	_, err = time.Parse(time.RFC3339, rec.CreatedAt)
	assert.NoError(t, err)
}

func TestCreateScriptureValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, ScriptureInput{Reference: "John 3:16"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Create(ctx, ScriptureInput{Text: "..."})
	assert.ErrorIs(t, err, ErrMissingFields)

	assert.Empty(t, svc.List(ctx))
}

func TestActivateEnforcesSingleActive(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, ScriptureInput{Reference: "John 3:16", Text: "..."})
	require.NoError(t, err)
	b, err := svc.Create(ctx, ScriptureInput{Reference: "Psalm 23:1", Text: "..."})
	require.NoError(t, err)
	_, err = svc.Create(ctx, ScriptureInput{Reference: "Romans 8:28", Text: "..."})
	require.NoError(t, err)

	_, err = svc.Activate(ctx, a.ID)
	require.NoError(t, err)

	// Activating another record deactivates the first in the same write
	activated, err := svc.Activate(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, activated.IsActive)

	active := svc.Active(ctx)
	require.Len(t, active, 1)
	assert.Equal(t, b.ID, active[0].ID)

	for _, rec := range svc.List(ctx) {
		if rec.ID == b.ID {
			assert.True(t, rec.IsActive)
		} else {
			assert.False(t, rec.IsActive, "record %s should be inactive", rec.ID)
		}
	}
}

func TestActivateUnknownScripture(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, ScriptureInput{Reference: "John 3:16", Text: "..."})
	require.NoError(t, err)

	_, err = svc.Activate(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	// A failed activation must not clear existing flags either
	assert.Empty(t, svc.Active(ctx))
}

func TestUpdateKeepsActiveFlag(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	rec, err := svc.Create(ctx, ScriptureInput{Reference: "John 3:16", Text: "old text"})
	require.NoError(t, err)
	_, err = svc.Activate(ctx, rec.ID)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, rec.ID, ScriptureInput{Reference: "John 3:16", Text: "new text"})
	require.NoError(t, err)
	assert.True(t, updated.IsActive)
	assert.Equal(t, "new text", updated.Text)
}

func TestDeleteScripture(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	rec, err := svc.Create(ctx, ScriptureInput{Reference: "John 3:16", Text: "..."})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, rec.ID))
	assert.Empty(t, svc.List(ctx))
	assert.ErrorIs(t, svc.Delete(ctx, rec.ID), ErrNotFound)
}
