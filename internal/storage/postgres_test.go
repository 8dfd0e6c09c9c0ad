package storage

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

const (
	selectResourceQuery = "SELECT data FROM ledger_resources WHERE name = $1"
	upsertResourceQuery = `
		INSERT INTO ledger_resources (name, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`
)

func NewPostgresMock(t *testing.T) (*PostgresBackend, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return NewPostgresBackend(mockDB), mockDB
}

func TestPostgresBackend_Read(t *testing.T) {
	backend, mock := NewPostgresMock(t)

	tests := []struct {
		name        string
		resource    string
		mockSetup   func()
		expectErr   error
		expectedRaw []byte
	}{
		{
			name:     "Resource found",
			resource: "accounts.json",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"data"}).AddRow([]byte(`{"alice":"secret"}`))
				mock.ExpectQuery(regexp.QuoteMeta(selectResourceQuery)).
					WithArgs("accounts.json").
					WillReturnRows(rows)
			},
			expectedRaw: []byte(`{"alice":"secret"}`),
		},
		{
			name:     "Resource absent",
			resource: "orders.json",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectResourceQuery)).
					WithArgs("orders.json").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: ErrNotFound,
		},
		{
			name:     "Database error",
			resource: "orders.json",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectResourceQuery)).
					WithArgs("orders.json").
					WillReturnError(errors.New("connection reset"))
			},
			expectErr: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			raw, err := backend.Read(context.Background(), tt.resource)
			if tt.expectErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectErr.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRaw, raw)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresBackend_Write(t *testing.T) {
	backend, mock := NewPostgresMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Upsert succeeds",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(upsertResourceQuery)).
					WithArgs("orders.json", []byte("[]")).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Upsert fails",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(upsertResourceQuery)).
					WithArgs("orders.json", []byte("[]")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := backend.Write(context.Background(), "orders.json", []byte("[]"))
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresBackend_HelperAbsentResource(t *testing.T) {
	backend, mock := NewPostgresMock(t)
	helper := New(backend)

	mock.ExpectQuery(regexp.QuoteMeta(selectResourceQuery)).
		WithArgs("accounts.json").
		WillReturnError(pgx.ErrNoRows)

	var accounts map[string]string
	err := helper.Load(context.Background(), "accounts.json", &accounts)
	assert.NoError(t, err)
	assert.Empty(t, accounts)
	assert.NotNil(t, accounts)
}
