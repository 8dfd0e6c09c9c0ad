package accountservice

import (
	"context"
	"errors"
	"testing"

	accountrepo "github.com/GlebRadaev/ticketbooking/internal/repo/account-repo"
	"github.com/GlebRadaev/ticketbooking/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	return service, repo
}

func TestAddAccount(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		username      string
		password      string
		prepareMock   func()
		expectedOK    bool
		expectedError error
	}{
		{
			name:     "Successful creation",
			username: "alice",
			password: "secret",
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), "alice", "secret").Return(true, nil)
			},
			expectedOK: true,
		},
		{
			name:     "Username already taken",
			username: "alice",
			password: "other",
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), "alice", "other").Return(false, nil)
			},
			expectedOK: false,
		},
		{
			name:     "Persistence failure",
			username: "bob",
			password: "secret",
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), "bob", "secret").Return(true, storage.ErrIO)
			},
			expectedOK:    true,
			expectedError: storage.ErrIO,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			ok, err := service.AddAccount(context.Background(), tt.username, tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedOK, ok)
		})
	}
}

func TestValidateLogin(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name        string
		username    string
		password    string
		prepareMock func()
		expected    bool
	}{
		{
			name:     "Matching password",
			username: "alice",
			password: "secret",
			prepareMock: func() {
				repo.EXPECT().Find("alice").Return("secret", true)
			},
			expected: true,
		},
		{
			name:     "Wrong password",
			username: "alice",
			password: "Secret",
			prepareMock: func() {
				repo.EXPECT().Find("alice").Return("secret", true)
			},
			expected: false,
		},
		{
			name:     "Unknown username",
			username: "nobody",
			password: "",
			prepareMock: func() {
				repo.EXPECT().Find("nobody").Return("", false)
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			assert.Equal(t, tt.expected, service.ValidateLogin(tt.username, tt.password))
		})
	}
}

func TestEditAccount(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedOK    bool
		expectedError error
	}{
		{
			name: "Existing account updated",
			prepareMock: func() {
				repo.EXPECT().Update(gomock.Any(), "alice", "new").Return(true, nil)
			},
			expectedOK: true,
		},
		{
			name: "Missing account",
			prepareMock: func() {
				repo.EXPECT().Update(gomock.Any(), "alice", "new").Return(false, nil)
			},
			expectedOK: false,
		},
		{
			name: "Persistence failure",
			prepareMock: func() {
				repo.EXPECT().Update(gomock.Any(), "alice", "new").Return(true, errors.New("disk full"))
			},
			expectedOK:    true,
			expectedError: errors.New("disk full"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			ok, err := service.EditAccount(context.Background(), "alice", "new")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedOK, ok)
		})
	}
}

func TestDeleteAccount(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name        string
		prepareMock func()
		expectedOK  bool
		expectErr   bool
	}{
		{
			name: "Existing account deleted",
			prepareMock: func() {
				repo.EXPECT().Delete(gomock.Any(), "alice").Return(true, nil)
			},
			expectedOK: true,
		},
		{
			name: "Missing account",
			prepareMock: func() {
				repo.EXPECT().Delete(gomock.Any(), "alice").Return(false, nil)
			},
			expectedOK: false,
		},
		{
			name: "Persistence failure",
			prepareMock: func() {
				repo.EXPECT().Delete(gomock.Any(), "alice").Return(true, storage.ErrIO)
			},
			expectedOK: true,
			expectErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			ok, err := service.DeleteAccount(context.Background(), "alice")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedOK, ok)
		})
	}
}

func TestListUsernames(t *testing.T) {
	service, repo := NewMock(t)
	repo.EXPECT().Usernames().Return([]string{"alice", "bob"})

	assert.ElementsMatch(t, []string{"bob", "alice"}, service.ListUsernames())
}

func TestAccountLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := accountrepo.New(storage.New(storage.NewFileBackend(t.TempDir())), "accounts.json")
	require.NoError(t, repo.Load(ctx))
	service := New(repo)

	ok, err := service.AddAccount(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, service.ValidateLogin("alice", "secret"))

	ok, err = service.AddAccount(ctx, "alice", "other")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, service.ValidateLogin("alice", "secret"))
	assert.False(t, service.ValidateLogin("alice", "other"))

	ok, err = service.EditAccount(ctx, "bob", "x")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{"alice"}, service.ListUsernames())

	ok, err = service.EditAccount(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = service.DeleteAccount(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, service.ValidateLogin("alice", "secret"))

	ok, err = service.DeleteAccount(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, ok)
}
