package orderrepo

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/ticketbooking/internal/domain"
	"github.com/GlebRadaev/ticketbooking/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

const resource = "orders.json"

func NewMock(t *testing.T) (*Repository, *MockStore) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	repo := New(store, resource)
	return repo, store
}

func sampleOrders() []domain.Order {
	return []domain.Order{
		{ID: "a", Username: "alice", TicketType: "Single Race Pass", Quantity: 1, TotalCost: 120, PaymentMethod: "Cash", Date: "2024-01-01"},
		{ID: "b", Username: "bob", TicketType: "Weekend Package", Quantity: 2, TotalCost: 600, PaymentMethod: "Credit Card", Date: "2024-01-01"},
		{ID: "c", Username: "alice", TicketType: "Season Membership", Quantity: 1, TotalCost: 1200, PaymentMethod: "Cash", Date: "2024-01-02"},
	}
}

func seed(t *testing.T, repo *Repository, store *MockStore, orders []domain.Order) {
	t.Helper()
	store.EXPECT().Load(gomock.Any(), resource, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, dst any) error {
			*dst.(*[]domain.Order) = orders
			return nil
		})
	require.NoError(t, repo.Load(context.Background()))
}

func TestRepository_Load(t *testing.T) {
	repo, store := NewMock(t)
	seed(t, repo, store, sampleOrders())
	assert.Equal(t, sampleOrders(), repo.All())

	store.EXPECT().Load(gomock.Any(), resource, gomock.Any()).Return(errors.New("read error"))
	assert.Error(t, repo.Load(context.Background()))
	assert.Equal(t, sampleOrders(), repo.All())
}

func TestRepository_Append(t *testing.T) {
	repo, store := NewMock(t)
	seed(t, repo, store, sampleOrders()[:1])

	order := sampleOrders()[1]
	store.EXPECT().Save(gomock.Any(), resource, sampleOrders()[:2]).Return(nil)
	require.NoError(t, repo.Append(context.Background(), order))
	assert.Equal(t, sampleOrders()[:2], repo.All())

	store.EXPECT().Save(gomock.Any(), resource, gomock.Any()).Return(errors.New("disk full"))
	assert.Error(t, repo.Append(context.Background(), sampleOrders()[2]))
	assert.Len(t, repo.All(), 3)
}

func TestRepository_Delete(t *testing.T) {
	tests := []struct {
		name       string
		index      int
		mockSetup  func(store *MockStore)
		expectedOK bool
		expected   []domain.Order
	}{
		{
			name:       "Negative index",
			index:      -1,
			mockSetup:  func(store *MockStore) {},
			expectedOK: false,
			expected:   sampleOrders(),
		},
		{
			name:       "Index equal to length",
			index:      3,
			mockSetup:  func(store *MockStore) {},
			expectedOK: false,
			expected:   sampleOrders(),
		},
		{
			name:  "Middle order removed and later orders shift",
			index: 1,
			mockSetup: func(store *MockStore) {
				store.EXPECT().Save(gomock.Any(), resource, gomock.Any()).Return(nil)
			},
			expectedOK: true,
			expected:   []domain.Order{sampleOrders()[0], sampleOrders()[2]},
		},
		{
			name:  "Last order removed",
			index: 2,
			mockSetup: func(store *MockStore) {
				store.EXPECT().Save(gomock.Any(), resource, gomock.Any()).Return(nil)
			},
			expectedOK: true,
			expected:   sampleOrders()[:2],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, store := NewMock(t)
			seed(t, repo, store, sampleOrders())
			tt.mockSetup(store)

			ok, err := repo.Delete(context.Background(), tt.index)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expected, repo.All())
		})
	}
}

func TestRepository_AllIsACopy(t *testing.T) {
	repo, store := NewMock(t)
	seed(t, repo, store, sampleOrders())

	snapshot := repo.All()
	store.EXPECT().Save(gomock.Any(), resource, gomock.Any()).Return(nil)
	_, err := repo.Delete(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, sampleOrders(), snapshot)
}

func TestRepository_WriteThroughToFile(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo := New(storage.New(storage.NewFileBackend(dir)), resource)
	require.NoError(t, repo.Load(ctx))
	assert.Empty(t, repo.All())

	for _, order := range sampleOrders() {
		require.NoError(t, repo.Append(ctx, order))
	}
	_, err := repo.Delete(ctx, 0)
	require.NoError(t, err)

	reloaded := New(storage.New(storage.NewFileBackend(dir)), resource)
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, sampleOrders()[1:], reloaded.All())
}
