//go:build unit

package payment_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shopbot/internal/domain/money"
	domain "shopbot/internal/domain/payment"
	"shopbot/internal/infra/payment"
	"shopbot/internal/pkg/clock"
	"shopbot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMercadoPago(url string) *payment.MercadoPago {
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	return payment.NewMercadoPago(url, "mp-token", "pagamentos@loja.test", 30*time.Minute, time.Second, clk,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestMercadoPagoPix(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payments", r.URL.Path)
		assert.Equal(t, "Bearer mp-token", r.Header.Get("Authorization"))
		assert.Equal(t, "owner:7:wamid.1", r.Header.Get("X-Idempotency-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"id":123456789,"status":"pending","date_of_expiration":"2026-03-01T09:30:00.000-03:00",
			"point_of_interaction":{"transaction_data":{"qr_code":"00020126PIX","ticket_url":"https://mp.test/t/1"}}}`))
	}))
	defer srv.Close()

	charge, err := newMercadoPago(srv.URL).Charge(context.Background(), domain.ChargeRequest{
		Provider:     payment.ProviderPix,
		Amount:       money.Cents(2550),
		CustomerName: "Ana",
		Reference:    "owner:7:wamid.1",
	})

	require.NoError(t, err)
	assert.Equal(t, "123456789", charge.ProviderRef)
	assert.Equal(t, []string{"https://mp.test/t/1", "00020126PIX"}, charge.Instructions())
	assert.True(t, charge.ExpiresAt.Equal(time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)))
	assert.Equal(t, 25.5, body["transaction_amount"])
	assert.Equal(t, "pix", body["payment_method_id"])
	assert.Equal(t, "owner:7:wamid.1", body["external_reference"])
}

func TestMercadoPagoCheckout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/checkout/preferences", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"pref-1","init_point":"https://mp.test/checkout/pref-1"}`))
	}))
	defer srv.Close()

	charge, err := newMercadoPago(srv.URL).Charge(context.Background(), domain.ChargeRequest{
		Provider: payment.ProviderCheckout,
		Amount:   money.Cents(10000),
	})

	require.NoError(t, err)
	assert.Equal(t, "pref-1", charge.ProviderRef)
	assert.Equal(t, []string{"https://mp.test/checkout/pref-1"}, charge.Instructions())
}

func TestMercadoPagoRejections(t *testing.T) {
	t.Run("error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"invalid payer"}`))
		}))
		defer srv.Close()

		_, err := newMercadoPago(srv.URL).Charge(context.Background(), domain.ChargeRequest{Provider: payment.ProviderPix, Amount: 1000})
		assert.True(t, errs.Is(err, payment.ErrProviderRejected))
	})

	t.Run("no instructions", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"id":1,"status":"rejected"}`))
		}))
		defer srv.Close()

		_, err := newMercadoPago(srv.URL).Charge(context.Background(), domain.ChargeRequest{Provider: payment.ProviderPix, Amount: 1000})
		assert.True(t, errs.Is(err, payment.ErrProviderRejected))
	})

	t.Run("foreign provider", func(t *testing.T) {
		_, err := newMercadoPago("http://unused").Charge(context.Background(), domain.ChargeRequest{Provider: "stripe", Amount: 1000})
		assert.True(t, errs.Is(err, errs.ErrUnknownProvider))
	})
}
