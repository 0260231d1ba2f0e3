package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/royalhouse/fellowship-backend/config"
)

type fakeRepo struct {
	users map[string]*User
}

func (f *fakeRepo) Create(user *User) error {
	f.users[user.Email] = user
	return nil
}

func (f *fakeRepo) FindByEmail(email string) (*User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, errors.New("record not found")
	}
	return u, nil
}

func (f *fakeRepo) FindByID(userID uint) (User, error) {
	for _, u := range f.users {
		if u.ID == userID {
			return *u, nil
		}
	}
	return User{}, errors.New("record not found")
}

func (f *fakeRepo) GetAdminEmails() ([]string, error) {
	var emails []string
	for _, u := range f.users {
		if u.Role == RoleAdmin {
			emails = append(emails, u.Email)
		}
	}
	return emails, nil
}

func testService(t *testing.T) Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("open-sesame"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeRepo{users: map[string]*User{
		"admin@royalhouse.local": {
			ID:           1,
			FullName:     "Fellowship Admin",
			Email:        "admin@royalhouse.local",
			PasswordHash: string(hash),
			Role:         RoleAdmin,
		},
	}}
	cfg := &config.Config{
		JWTAccessSecret:  "access-secret",
		JWTRefreshSecret: "refresh-secret",
	}
	return NewService(repo, cfg)
}

func TestLoginNormalizesEmail(t *testing.T) {
	svc := testService(t)

	resp, err := svc.Login(&LoginRequest{Email: "  Admin@RoyalHouse.LOCAL ", Password: "open-sesame"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, RoleAdmin, resp.User.Role)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	svc := testService(t)

	_, err := svc.Login(&LoginRequest{Email: "admin@royalhouse.local", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&LoginRequest{Email: "nobody@royalhouse.local", Password: "open-sesame"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRoundTrip(t *testing.T) {
	svc := testService(t)

	first, err := svc.Login(&LoginRequest{Email: "admin@royalhouse.local", Password: "open-sesame"})
	require.NoError(t, err)

	second, err := svc.Refresh(first.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, second.AccessToken)
	assert.Equal(t, first.User.ID, second.User.ID)
}

func TestRefreshRejectsGarbageAndWrongTokenKind(t *testing.T) {
	svc := testService(t)

	_, err := svc.Refresh("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// An access token is signed with the other secret and must not refresh
	resp, err := svc.Login(&LoginRequest{Email: "admin@royalhouse.local", Password: "open-sesame"})
	require.NoError(t, err)
	_, err = svc.Refresh(resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
