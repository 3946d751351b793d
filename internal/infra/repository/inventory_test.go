//go:build unit

package repository

import (
	"context"
	"testing"

	"shopbot/internal/infra"
	sqlc "shopbot/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockInventoryWriteQueries struct {
	mock.Mock
}

func (m *MockInventoryWriteQueries) ReserveProductUnit(ctx context.Context, db sqlc.DBTX, id int64) (int32, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockInventoryWriteQueries) ReleaseProductUnit(ctx context.Context, db sqlc.DBTX, id int64) (int32, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockInventoryWriteQueries) TouchProduct(ctx context.Context, db sqlc.DBTX, id int64) error {
	args := m.Called(ctx, db, id)
	return args.Error(0)
}

func TestInventoryReserve(t *testing.T) {
	tests := []struct {
		name          string
		remaining     int32
		mockError     error
		wantOK        bool
		wantRemaining int
		wantError     bool
	}{
		{
			name:          "unit taken",
			remaining:     4,
			wantOK:        true,
			wantRemaining: 4,
		},
		{
			name:      "no stock left",
			mockError: pgx.ErrNoRows,
			wantOK:    false,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockInventoryWriteQueries)
			mockQueries.On("ReserveProductUnit", mock.Anything, mock.Anything, int64(9)).Return(tt.remaining, tt.mockError)

			repo := NewInventoryRepository(mockQueries, nil)

			remaining, ok, err := repo.Reserve(context.Background(), nil, 9)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantOK, ok)
				assert.Equal(t, tt.wantRemaining, remaining)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestInventoryReleaseMissingProduct(t *testing.T) {
	mockQueries := new(MockInventoryWriteQueries)
	mockQueries.On("ReleaseProductUnit", mock.Anything, mock.Anything, int64(9)).Return(int32(0), pgx.ErrNoRows)

	repo := NewInventoryRepository(mockQueries, nil)

	_, err := repo.Release(context.Background(), nil, 9)

	assert.True(t, infra.IsNotFound(err))
	mockQueries.AssertExpectations(t)
}
