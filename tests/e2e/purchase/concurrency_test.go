//go:build e2e

package purchase_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"

	"shopbot/internal/domain/money"
	"shopbot/internal/domain/replyid"
	"shopbot/internal/usecase/commands"
	"shopbot/tests/common/builder"
	"shopbot/tests/common/dbtest"
	"shopbot/tests/common/httptest"
	"shopbot/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

type ConcurrencySuite struct {
	e2e.SharedSuite
}

func (s *ConcurrencySuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestConcurrencySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ConcurrencySuite))
}

func (s *ConcurrencySuite) TestStockNeverGoesNegative() {
	s.Run("Concurrent reservations take exactly the available units", func() {
		t := s.T()
		ownerID := dbtest.DefaultOwnerID(t, s.DB)
		categoryID := dbtest.CreateTestCategory(t, s.DB, ownerID, "Gift card", 1000)
		productID := dbtest.CreateTestProduct(t, s.DB, categoryID, "GC", 3)

		var reserved atomic.Int32
		var g errgroup.Group
		for range 20 {
			g.Go(func() error {
				res, err := s.Inventory.Reserve(context.Background(), productID)
				if err != nil {
					return err
				}
				if res.Reserved {
					reserved.Add(1)
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())

		s.Equal(int32(3), reserved.Load())
		s.Equal(0, dbtest.ProductStock(t, s.DB, productID))
	})

	s.Run("A reservation is released once", func() {
		t := s.T()
		ownerID := dbtest.DefaultOwnerID(t, s.DB)
		categoryID := dbtest.CreateTestCategory(t, s.DB, ownerID, "Gift card", 1000)
		productID := dbtest.CreateTestProduct(t, s.DB, categoryID, "GC", 1)

		res, err := s.Inventory.Reserve(context.Background(), productID)
		require.NoError(t, err)
		require.True(t, res.Reserved)

		var released, refused atomic.Int32
		var g errgroup.Group
		for range 5 {
			g.Go(func() error {
				err := s.Inventory.Release(context.Background(), res)
				switch {
				case err == nil:
					released.Add(1)
				case errors.Is(err, commands.ErrAlreadyReleased):
					refused.Add(1)
				default:
					return err
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())

		s.Equal(int32(1), released.Load())
		s.Equal(int32(4), refused.Load())
		s.Equal(1, dbtest.ProductStock(t, s.DB, productID))
	})
}

func (s *ConcurrencySuite) TestBalanceNeverGoesNegative() {
	s.Run("Concurrent debits stop at the balance", func() {
		t := s.T()
		ownerID := dbtest.DefaultOwnerID(t, s.DB)
		customerID := dbtest.CreateTestCustomer(t, s.DB, ownerID, "5511988880000", 10000)

		var debited atomic.Int32
		var g errgroup.Group
		for range 10 {
			g.Go(func() error {
				res, err := s.Ledger.Debit(context.Background(), ownerID, customerID, money.Cents(3000))
				if err != nil {
					return err
				}
				if res.OK {
					debited.Add(1)
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())

		s.Equal(int32(3), debited.Load())
		s.Equal(int64(1000), dbtest.CustomerBalance(t, s.DB, customerID))
	})

	s.Run("Credits and debits interleave without losing updates", func() {
		t := s.T()
		ownerID := dbtest.DefaultOwnerID(t, s.DB)
		customerID := dbtest.CreateTestCustomer(t, s.DB, ownerID, "5511988880000", 5000)

		var g errgroup.Group
		for range 10 {
			g.Go(func() error {
				_, err := s.Ledger.Credit(context.Background(), ownerID, customerID, money.Cents(100))
				return err
			})
			g.Go(func() error {
				res, err := s.Ledger.Debit(context.Background(), ownerID, customerID, money.Cents(100))
				if err == nil && !res.OK {
					return fmt.Errorf("debit refused: %s", res.Reason)
				}
				return err
			})
		}
		require.NoError(t, g.Wait())

		s.Equal(int64(5000), dbtest.CustomerBalance(t, s.DB, customerID))
	})
}

func (s *ConcurrencySuite) TestConcurrentPurchases() {
	s.Run("Customers racing for the last units", func() {
		t := s.T()
		ownerID := dbtest.DefaultOwnerID(t, s.DB)
		categoryID := dbtest.CreateTestCategory(t, s.DB, ownerID, "Streaming 30d", 4990)
		productID := dbtest.CreateTestProduct(t, s.DB, categoryID, "CODIGO", 2)

		customers := make([]int64, 6)
		for i := range customers {
			customers[i] = dbtest.CreateTestCustomer(t, s.DB, ownerID, fmt.Sprintf("55119999900%02d", i), 10000)
		}

		var g errgroup.Group
		for i := range customers {
			raw := builder.NewWebhookBuilder().
				WithSender(fmt.Sprintf("55119999900%02d", i), "Cliente").
				WithMessageID(fmt.Sprintf("wamid.race.%d", i)).
				WithButtonReply(replyid.Buy(categoryID), "Comprar").
				Build()
			g.Go(func() error {
				w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, "/webhooks/whatsapp/"+ownerID.String(), raw)
				if w.Code != http.StatusOK {
					return fmt.Errorf("status %d", w.Code)
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())

		s.Equal(0, dbtest.ProductStock(t, s.DB, productID))

		var bought, untouched int
		for _, id := range customers {
			switch dbtest.CustomerBalance(t, s.DB, id) {
			case 5010:
				bought++
				s.Equal(1, dbtest.CountPurchases(t, s.DB, id))
			case 10000:
				untouched++
				s.Equal(0, dbtest.CountPurchases(t, s.DB, id))
			default:
				t.Errorf("customer %d ended with an unexpected balance", id)
			}
		}
		s.Equal(2, bought)
		s.Equal(len(customers)-2, untouched)
	})
}
