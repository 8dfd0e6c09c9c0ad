package accountrepo

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/ticketbooking/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

const resource = "accounts.json"

func NewMock(t *testing.T) (*Repository, *MockStore) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	repo := New(store, resource)
	return repo, store
}

func seed(t *testing.T, repo *Repository, store *MockStore, accounts map[string]string) {
	t.Helper()
	store.EXPECT().Load(gomock.Any(), resource, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, dst any) error {
			*dst.(*map[string]string) = accounts
			return nil
		})
	require.NoError(t, repo.Load(context.Background()))
}

func TestRepository_Load(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(store *MockStore)
		expectErr bool
		usernames []string
	}{
		{
			name: "Accounts loaded",
			mockSetup: func(store *MockStore) {
				store.EXPECT().Load(gomock.Any(), resource, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, dst any) error {
						*dst.(*map[string]string) = map[string]string{"bob": "b", "alice": "a"}
						return nil
					})
			},
			usernames: []string{"alice", "bob"},
		},
		{
			name: "Store error",
			mockSetup: func(store *MockStore) {
				store.EXPECT().Load(gomock.Any(), resource, gomock.Any()).Return(errors.New("read error"))
			},
			expectErr: true,
			usernames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, store := NewMock(t)
			tt.mockSetup(store)

			err := repo.Load(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.usernames, repo.Usernames())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		mockSetup  func(store *MockStore)
		expectedOK bool
		expectErr  bool
		password   string
	}{
		{
			name:     "New account persisted",
			username: "carol",
			mockSetup: func(store *MockStore) {
				store.EXPECT().Save(gomock.Any(), resource, map[string]string{"alice": "a", "carol": "c"}).Return(nil)
			},
			expectedOK: true,
			password:   "c",
		},
		{
			name:       "Duplicate username rejected without save",
			username:   "alice",
			mockSetup:  func(store *MockStore) {},
			expectedOK: false,
			password:   "a",
		},
		{
			name:     "Save failure keeps the new account",
			username: "carol",
			mockSetup: func(store *MockStore) {
				store.EXPECT().Save(gomock.Any(), resource, gomock.Any()).Return(errors.New("disk full"))
			},
			expectedOK: true,
			expectErr:  true,
			password:   "c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, store := NewMock(t)
			seed(t, repo, store, map[string]string{"alice": "a"})
			tt.mockSetup(store)

			ok, err := repo.Create(context.Background(), tt.username, "c")
			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			password, found := repo.Find(tt.username)
			assert.True(t, found)
			assert.Equal(t, tt.password, password)
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, store := NewMock(t)
	seed(t, repo, store, map[string]string{"alice": "a"})

	ok, err := repo.Update(context.Background(), "nobody", "x")
	assert.False(t, ok)
	assert.NoError(t, err)
	_, found := repo.Find("nobody")
	assert.False(t, found)

	store.EXPECT().Save(gomock.Any(), resource, map[string]string{"alice": ""}).Return(nil)
	ok, err = repo.Update(context.Background(), "alice", "")
	assert.True(t, ok)
	assert.NoError(t, err)
	password, _ := repo.Find("alice")
	assert.Equal(t, "", password)
}

func TestRepository_Delete(t *testing.T) {
	repo, store := NewMock(t)
	seed(t, repo, store, map[string]string{"alice": "a", "bob": "b"})

	ok, err := repo.Delete(context.Background(), "nobody")
	assert.False(t, ok)
	assert.NoError(t, err)

	store.EXPECT().Save(gomock.Any(), resource, map[string]string{"bob": "b"}).Return(nil)
	ok, err = repo.Delete(context.Background(), "alice")
	assert.True(t, ok)
	assert.NoError(t, err)
	assert.Equal(t, []string{"bob"}, repo.Usernames())
}

func TestRepository_WriteThroughToFile(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo := New(storage.New(storage.NewFileBackend(dir)), resource)
	require.NoError(t, repo.Load(ctx))
	assert.Empty(t, repo.Usernames())

	ok, err := repo.Create(ctx, "alice", "secret")
	require.NoError(t, err)
	require.True(t, ok)

	reloaded := New(storage.New(storage.NewFileBackend(dir)), resource)
	require.NoError(t, reloaded.Load(ctx))
	password, found := reloaded.Find("alice")
	assert.True(t, found)
	assert.Equal(t, "secret", password)
}
