package member

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/royalhouse/fellowship-backend/internal/content"
	"github.com/royalhouse/fellowship-backend/utils"
)

type fakeRepo struct {
	created []MemberRecord
	deleted []string
	dupes   map[string]bool
}

func (f *fakeRepo) Create(_ context.Context, rec *MemberRecord) error {
	if f.dupes[rec.Email] {
		return ErrDuplicateEmail
	}
	f.created = append(f.created, *rec)
	return nil
}

func (f *fakeRepo) List(context.Context) ([]MemberRecord, error) {
	return f.created, nil
}

func (f *fakeRepo) DeleteByRecordID(_ context.Context, recordID string) error {
	f.deleted = append(f.deleted, recordID)
	return nil
}

func (f *fakeRepo) Count(context.Context) (int64, error) {
	return int64(len(f.created)), nil
}

func newTestService() (Service, *fakeRepo, *content.Store) {
	repo := &fakeRepo{dupes: map[string]bool{}}
	store := content.NewStore(content.NewMemoryKV())
	return NewService(repo, store), repo, store
}

func TestJoinNormalizesAndMirrors(t *testing.T) {
	svc, repo, store := newTestService()
	ctx := context.Background()

	rec, err := svc.Join(ctx, JoinRequest{
		Name:   "  Mary Wanjiru  ",
		Email:  " Mary.Wanjiru@Students.UNI.edu ",
		Course: "Computer Science",
		Year:   "2nd Year",
	})
	require.NoError(t, err)

	assert.Equal(t, "Mary Wanjiru", rec.Name)
	assert.Equal(t, "mary.wanjiru@students.uni.edu", rec.Email)
	assert.NotEmpty(t, rec.JoinedDate)

	// Durable row and dashboard mirror both exist, sharing one id
	require.Len(t, repo.created, 1)
	assert.Equal(t, rec.ID, repo.created[0].RecordID)

	mirror := store.GetMembers(ctx)
	require.Len(t, mirror, 1)
	assert.Equal(t, rec.ID, mirror[0].ID)
}

// brokenKV reads like an empty store but rejects every write.
type brokenKV struct{}

func (brokenKV) Get(context.Context, string) (string, error) { return "", content.ErrKeyMissing }
func (brokenKV) Set(context.Context, string, string) error   { return errors.New("kv unavailable") }

func TestJoinBroadcastsWhenMirrorWriteFails(t *testing.T) {
	repo := &fakeRepo{dupes: map[string]bool{}}
	svc := NewService(repo, content.NewStore(brokenKV{})).(*service)

	var topics []string
	var payloads [][]byte
	svc.publish = func(_ context.Context, topic string, payload []byte) error {
		topics = append(topics, topic)
		payloads = append(payloads, payload)
		return nil
	}

	rec, err := svc.Join(context.Background(), JoinRequest{Name: "Mary", Email: "mary@students.uni.edu"})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	// The durable insert succeeded, so the welcome pipeline still fires
	require.Len(t, topics, 1)
	assert.Equal(t, utils.TopicMemberJoined, topics[0])

	var ev MemberJoinedEvent
	require.NoError(t, json.Unmarshal(payloads[0], &ev))
	assert.Equal(t, rec.ID, ev.RecordID)
	assert.Equal(t, "mary@students.uni.edu", ev.Email)
}

func TestJoinPublishesMemberJoined(t *testing.T) {
	svc := NewService(&fakeRepo{dupes: map[string]bool{}}, content.NewStore(content.NewMemoryKV())).(*service)

	var count int
	svc.publish = func(context.Context, string, []byte) error {
		count++
		return nil
	}

	_, err := svc.Join(context.Background(), JoinRequest{Name: "Mary", Email: "mary@students.uni.edu"})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestJoinValidation(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Join(ctx, JoinRequest{Name: "   ", Email: "x@y.z"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Join(ctx, JoinRequest{Name: "Mary"})
	assert.ErrorIs(t, err, ErrMissingFields)

	assert.Empty(t, repo.created)
}

func TestJoinDuplicateEmail(t *testing.T) {
	svc, repo, store := newTestService()
	ctx := context.Background()
	repo.dupes["taken@students.uni.edu"] = true

	_, err := svc.Join(ctx, JoinRequest{Name: "Mary", Email: "Taken@Students.UNI.edu"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// The mirror stays clean when the durable insert is rejected
	assert.Empty(t, store.GetMembers(ctx))
}

func TestUpdateMemberNormalizesEmail(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	rec, err := svc.Join(ctx, JoinRequest{Name: "Mary", Email: "mary@students.uni.edu"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, rec.ID, JoinRequest{Name: "Mary W.", Email: " MARY@students.uni.edu "})
	require.NoError(t, err)
	assert.Equal(t, "Mary W.", updated.Name)
	assert.Equal(t, "mary@students.uni.edu", updated.Email)
}

func TestDeleteMemberRemovesMirrorAndRow(t *testing.T) {
	svc, repo, store := newTestService()
	ctx := context.Background()

	rec, err := svc.Join(ctx, JoinRequest{Name: "Mary", Email: "mary@students.uni.edu"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, rec.ID))
	assert.Empty(t, store.GetMembers(ctx))
	assert.Equal(t, []string{rec.ID}, repo.deleted)

	assert.ErrorIs(t, svc.Delete(ctx, rec.ID), ErrNotFound)
}
