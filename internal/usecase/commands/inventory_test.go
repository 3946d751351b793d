//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"shopbot/internal/infra"
	sqlc "shopbot/internal/infra/sqlc/generated"
	"shopbot/internal/pkg/errs"
	"shopbot/internal/usecase/commands"
	commandsmock "shopbot/tests/mock/commands"
	sharedmock "shopbot/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func passThroughDB(uow *sharedmock.MockUnitOfWork) {
	uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
			return fn(ctx, nil)
		}).AnyTimes()
}

func TestReserve(t *testing.T) {
	t.Run("takes a unit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		repo := commandsmock.NewMockInventoryRepository(ctrl)
		passThroughDB(uow)
		repo.EXPECT().Reserve(gomock.Any(), gomock.Any(), int64(7)).Return(2, true, nil)

		res, err := commands.NewInventoryUseCase(uow, repo, discard).Reserve(context.Background(), 7)

		require.NoError(t, err)
		assert.True(t, res.Reserved)
		assert.Equal(t, 2, res.Remaining)
		assert.False(t, res.Released())
	})

	t.Run("lost race is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		repo := commandsmock.NewMockInventoryRepository(ctrl)
		passThroughDB(uow)
		repo.EXPECT().Reserve(gomock.Any(), gomock.Any(), int64(7)).Return(0, false, nil)

		res, err := commands.NewInventoryUseCase(uow, repo, discard).Reserve(context.Background(), 7)

		require.NoError(t, err)
		assert.False(t, res.Reserved)
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		repo := commandsmock.NewMockInventoryRepository(ctrl)
		passThroughDB(uow)
		repo.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, false, errors.New("conn reset"))

		res, err := commands.NewInventoryUseCase(uow, repo, discard).Reserve(context.Background(), 7)

		require.Error(t, err)
		assert.Nil(t, res)
	})
}

func TestReleaseIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	repo := commandsmock.NewMockInventoryRepository(ctrl)
	passThroughDB(uow)
	repo.EXPECT().Reserve(gomock.Any(), gomock.Any(), int64(7)).Return(0, true, nil)
	repo.EXPECT().Release(gomock.Any(), gomock.Any(), int64(7)).Return(1, nil).Times(1)

	uc := commands.NewInventoryUseCase(uow, repo, discard)
	res, err := uc.Reserve(context.Background(), 7)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]error, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = uc.Release(context.Background(), res)
		}()
	}
	wg.Wait()

	var ok, already int
	for _, err := range results {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, commands.ErrAlreadyReleased):
			already++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, len(results)-1, already)
	assert.True(t, res.Released())
}

func TestReleaseRejections(t *testing.T) {
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	repo := commandsmock.NewMockInventoryRepository(ctrl)
	uc := commands.NewInventoryUseCase(uow, repo, discard)

	assert.ErrorIs(t, uc.Release(context.Background(), nil), commands.ErrNotReserved)
	assert.ErrorIs(t, uc.Release(context.Background(), &commands.Reservation{ProductID: 7}), commands.ErrNotReserved)
}

func TestReleaseFailureCanBeRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	repo := commandsmock.NewMockInventoryRepository(ctrl)
	passThroughDB(uow)
	repo.EXPECT().Reserve(gomock.Any(), gomock.Any(), int64(7)).Return(0, true, nil)
	gomock.InOrder(
		repo.EXPECT().Release(gomock.Any(), gomock.Any(), int64(7)).
			Return(0, infra.WrapRepoErr("product not found", nil, infra.KindNotFound)),
		repo.EXPECT().Release(gomock.Any(), gomock.Any(), int64(7)).Return(1, nil),
	)

	uc := commands.NewInventoryUseCase(uow, repo, discard)
	res, err := uc.Reserve(context.Background(), 7)
	require.NoError(t, err)

	err = uc.Release(context.Background(), res)
	assert.True(t, errs.Is(err, commands.ErrProductNotFound))
	assert.False(t, res.Released())

	require.NoError(t, uc.Release(context.Background(), res))
	assert.True(t, res.Released())
}
