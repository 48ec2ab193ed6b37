package usecase

import (
	"context"
	"testing"

	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authFixture() (AuthService, *fakeUserRepo, *fakeSessionRepo) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	repo := &repository.Repository{User: users, Session: sessions}
	config := &utils.Config{Session: utils.SessionConfig{ExpiryHours: 24}}
	return NewAuthService(repo, config, testLogger()), users, sessions
}

func TestRegisterAndLogin(t *testing.T) {
	svc, users, sessions := authFixture()

	resp, err := svc.Register(context.Background(), &request.RegisterRequest{
		Username: "tester",
		Email:    "tester@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "tester", resp.User.Username)
	assert.Equal(t, "customer", resp.User.Role)
	assert.Len(t, users.users, 1)
	assert.Len(t, sessions.sessions, 1)

	// Passwords are stored hashed.
	for _, u := range users.users {
		assert.NotEqual(t, "secret-password", u.PasswordHash)
	}

	login, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "tester@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.NotEqual(t, resp.Token, login.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := authFixture()

	req := &request.RegisterRequest{
		Username: "tester",
		Email:    "tester@example.com",
		Password: "secret-password",
	}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorContains(t, err, "already registered")
}

func TestRegisterValidation(t *testing.T) {
	svc, users, _ := authFixture()

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Username: "tester",
		Email:    "not-an-email",
		Password: "short",
	})
	assert.ErrorContains(t, err, "validation failed")
	assert.Empty(t, users.users)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := authFixture()

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Username: "tester",
		Email:    "tester@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "tester@example.com",
		Password: "wrong-password",
	})
	assert.EqualError(t, err, "invalid email or password")

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret-password",
	})
	assert.EqualError(t, err, "invalid email or password")
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, _, sessions := authFixture()

	resp, err := svc.Register(context.Background(), &request.RegisterRequest{
		Username: "tester",
		Email:    "tester@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.Token))
	assert.Equal(t, []string{resp.Token}, sessions.revoked)
}
