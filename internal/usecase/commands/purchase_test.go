//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"shopbot/internal/domain/money"
	"shopbot/internal/domain/purchase"
	"shopbot/internal/pkg/errs"
	"shopbot/internal/usecase/commands"
	"shopbot/internal/usecase/shared"
	sharedmock "shopbot/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRecord(t *testing.T) *purchase.Record {
	t.Helper()
	rec, err := purchase.NewRecord(uuid.New(), 42, 3, 17, money.Cents(4990), money.Cents(10), time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return rec
}

type recordFixture struct {
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	purchases *sharedmock.MockPurchaseRepository
	products  *sharedmock.MockProductRepository
}

func newRecordFixture(t *testing.T) recordFixture {
	ctrl := gomock.NewController(t)
	f := recordFixture{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		tx:        sharedmock.NewMockTx(ctrl),
		purchases: sharedmock.NewMockPurchaseRepository(ctrl),
		products:  sharedmock.NewMockProductRepository(ctrl),
	}
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		})
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Purchases().Return(f.purchases).AnyTimes()
	f.tx.EXPECT().Products().Return(f.products).AnyTimes()
	return f
}

func TestRecordAppendsAndRotatesUnit(t *testing.T) {
	f := newRecordFixture(t)
	rec := newRecord(t)

	gomock.InOrder(
		f.purchases.EXPECT().Append(gomock.Any(), gomock.Any(), rec).Return(nil),
		f.products.EXPECT().Touch(gomock.Any(), gomock.Any(), int64(17)).Return(nil),
	)

	require.NoError(t, commands.NewPurchaseUseCase(f.uow).Record(context.Background(), rec))
}

func TestRecordFailureIsMarked(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f recordFixture)
	}{
		{
			name: "append fails",
			setup: func(f recordFixture) {
				f.purchases.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("unique violation"))
			},
		},
		{
			name: "touch fails",
			setup: func(f recordFixture) {
				f.purchases.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.products.EXPECT().Touch(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("deadlock"))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRecordFixture(t)
			tt.setup(f)

			err := commands.NewPurchaseUseCase(f.uow).Record(context.Background(), newRecord(t))

			assert.True(t, errs.Is(err, commands.ErrPurchaseRecordFailed))
		})
	}
}
