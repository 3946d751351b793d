//go:build unit

package commands_test

import (
	"context"
	"testing"

	"shopbot/internal/domain/ledger"
	"shopbot/internal/domain/money"
	"shopbot/internal/infra"
	"shopbot/internal/pkg/errs"
	"shopbot/internal/usecase/commands"
	"shopbot/internal/usecase/shared"
	commandsmock "shopbot/tests/mock/commands"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDebit(t *testing.T) {
	ownerID := uuid.New()
	const customerID = int64(42)
	price := money.Cents(4990)

	tests := []struct {
		name  string
		setup func(repo *commandsmock.MockBalanceRepository)
		want  ledger.DebitResult
	}{
		{
			name: "debited",
			setup: func(repo *commandsmock.MockBalanceRepository) {
				repo.EXPECT().Debit(gomock.Any(), ownerID, customerID, price).Return(money.Cents(10), true, nil)
			},
			want: ledger.Succeeded(customerID, 10),
		},
		{
			name: "insufficient",
			setup: func(repo *commandsmock.MockBalanceRepository) {
				repo.EXPECT().Debit(gomock.Any(), ownerID, customerID, price).Return(money.Cents(0), false, nil)
				repo.EXPECT().Snapshot(gomock.Any(), ownerID, customerID).Return(&shared.BalanceSnapshot{Balance: 3000}, nil)
			},
			want: ledger.Failed(customerID, ledger.ReasonInsufficient, 3000),
		},
		{
			name: "blocked wins over insufficient",
			setup: func(repo *commandsmock.MockBalanceRepository) {
				repo.EXPECT().Debit(gomock.Any(), ownerID, customerID, price).Return(money.Cents(0), false, nil)
				repo.EXPECT().Snapshot(gomock.Any(), ownerID, customerID).Return(&shared.BalanceSnapshot{Balance: 100, Blocked: true}, nil)
			},
			want: ledger.Failed(customerID, ledger.ReasonBlocked, 100),
		},
		{
			name: "unknown customer",
			setup: func(repo *commandsmock.MockBalanceRepository) {
				repo.EXPECT().Debit(gomock.Any(), ownerID, customerID, price).Return(money.Cents(0), false, nil)
				repo.EXPECT().Snapshot(gomock.Any(), ownerID, customerID).
					Return(nil, infra.WrapRepoErr("customer not found", nil, infra.KindNotFound))
			},
			want: ledger.Failed(customerID, ledger.ReasonNotFound, 0),
		},
		{
			name: "retries after a concurrent credit",
			setup: func(repo *commandsmock.MockBalanceRepository) {
				gomock.InOrder(
					repo.EXPECT().Debit(gomock.Any(), ownerID, customerID, price).Return(money.Cents(0), false, nil),
					repo.EXPECT().Snapshot(gomock.Any(), ownerID, customerID).Return(&shared.BalanceSnapshot{Balance: 9000}, nil),
					repo.EXPECT().Debit(gomock.Any(), ownerID, customerID, price).Return(money.Cents(4010), true, nil),
				)
			},
			want: ledger.Succeeded(customerID, 4010),
		},
		{
			name: "gives up after repeated races",
			setup: func(repo *commandsmock.MockBalanceRepository) {
				repo.EXPECT().Debit(gomock.Any(), ownerID, customerID, price).Return(money.Cents(0), false, nil).Times(3)
				repo.EXPECT().Snapshot(gomock.Any(), ownerID, customerID).Return(&shared.BalanceSnapshot{Balance: 9000}, nil).Times(3)
			},
			want: ledger.Failed(customerID, ledger.ReasonInsufficient, 9000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := commandsmock.NewMockBalanceRepository(ctrl)
			tt.setup(repo)

			got, err := commands.NewLedgerUseCase(repo, discard).Debit(context.Background(), ownerID, customerID, price)

			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DebitResult mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDebitRejectsNonPositiveAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := commands.NewLedgerUseCase(commandsmock.NewMockBalanceRepository(ctrl), discard)

	_, err := uc.Debit(context.Background(), uuid.New(), 1, 0)
	assert.ErrorIs(t, err, commands.ErrNonPositiveAmount)

	_, err = uc.Credit(context.Background(), uuid.New(), 1, -100)
	assert.ErrorIs(t, err, commands.ErrNonPositiveAmount)
}

func TestCredit(t *testing.T) {
	ownerID := uuid.New()

	t.Run("returns new balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := commandsmock.NewMockBalanceRepository(ctrl)
		repo.EXPECT().Credit(gomock.Any(), ownerID, int64(42), money.Cents(2500)).Return(money.Cents(5500), nil)

		got, err := commands.NewLedgerUseCase(repo, discard).Credit(context.Background(), ownerID, 42, 2500)

		require.NoError(t, err)
		assert.Equal(t, money.Cents(5500), got)
	})

	t.Run("unknown customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := commandsmock.NewMockBalanceRepository(ctrl)
		repo.EXPECT().Credit(gomock.Any(), ownerID, int64(42), gomock.Any()).
			Return(money.Cents(0), infra.WrapRepoErr("customer not found", nil, infra.KindNotFound))

		_, err := commands.NewLedgerUseCase(repo, discard).Credit(context.Background(), ownerID, 42, 2500)

		assert.True(t, errs.Is(err, errs.ErrCustomerNotFound))
	})
}
