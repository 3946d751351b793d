package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	domain "shopbot/internal/domain/payment"
	"shopbot/internal/pkg/clock"
	"shopbot/internal/pkg/errs"
)

const (
	ProviderPix      = "mercadopago_pix"
	ProviderCheckout = "mercadopago_checkout"
)

var ErrProviderRejected = errs.New("payment provider rejected the charge")

// MercadoPago creates Pix payments and checkout preferences. Callbacks
// confirming payment are handled elsewhere.
type MercadoPago struct {
	baseURL    string
	token      string
	payerEmail string
	expiry     time.Duration
	http       *http.Client
	clock      clock.Clock
	logger     *slog.Logger
}

func NewMercadoPago(baseURL, token, payerEmail string, expiry, timeout time.Duration, clk clock.Clock, logger *slog.Logger) *MercadoPago {
	return &MercadoPago{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		payerEmail: payerEmail,
		expiry:     expiry,
		http:       &http.Client{Timeout: timeout},
		clock:      clk,
		logger:     logger.With(slog.String("component", "mercadopago")),
	}
}

type pixRequest struct {
	TransactionAmount float64  `json:"transaction_amount"`
	Description       string   `json:"description"`
	PaymentMethodID   string   `json:"payment_method_id"`
	ExternalReference string   `json:"external_reference"`
	DateOfExpiration  string   `json:"date_of_expiration"`
	Payer             pixPayer `json:"payer"`
}

type pixPayer struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
}

type pixResponse struct {
	ID                 int64  `json:"id"`
	Status             string `json:"status"`
	DateOfExpiration   string `json:"date_of_expiration"`
	PointOfInteraction struct {
		TransactionData struct {
			QRCode    string `json:"qr_code"`
			TicketURL string `json:"ticket_url"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
}

type preferenceRequest struct {
	Items             []preferenceItem `json:"items"`
	ExternalReference string           `json:"external_reference"`
	Expires           bool             `json:"expires"`
	ExpirationDateTo  string           `json:"expiration_date_to"`
}

type preferenceItem struct {
	Title      string  `json:"title"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	CurrencyID string  `json:"currency_id"`
}

type preferenceResponse struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

func (m *MercadoPago) Charge(ctx context.Context, req domain.ChargeRequest) (*domain.Charge, error) {
	switch req.Provider {
	case ProviderPix:
		return m.pix(ctx, req)
	case ProviderCheckout:
		return m.checkout(ctx, req)
	default:
		return nil, errs.Mark(errs.Newf("mercadopago cannot serve %q", req.Provider), errs.ErrUnknownProvider)
	}
}

func (m *MercadoPago) pix(ctx context.Context, req domain.ChargeRequest) (*domain.Charge, error) {
	expires := m.clock.Now().Add(m.expiry)
	body := pixRequest{
		TransactionAmount: toUnits(req),
		Description:       "Recarga de saldo",
		PaymentMethodID:   "pix",
		ExternalReference: req.Reference,
		DateOfExpiration:  expires.Format("2006-01-02T15:04:05.000-07:00"),
		Payer:             pixPayer{Email: m.payerEmail, FirstName: req.CustomerName},
	}
	var out pixResponse
	if err := m.post(ctx, "/v1/payments", req.Reference, body, &out); err != nil {
		return nil, err
	}

	charge := &domain.Charge{
		ProviderRef: strconv.FormatInt(out.ID, 10),
		TicketURL:   out.PointOfInteraction.TransactionData.TicketURL,
		QRCode:      out.PointOfInteraction.TransactionData.QRCode,
		ExpiresAt:   expires,
	}
	if t, err := time.Parse("2006-01-02T15:04:05.000-07:00", out.DateOfExpiration); err == nil {
		charge.ExpiresAt = t
	}
	if charge.TicketURL == "" && charge.QRCode == "" {
		return nil, errs.Mark(errs.Newf("pix payment %d has no instructions (status %s)", out.ID, out.Status), ErrProviderRejected)
	}
	return charge, nil
}

func (m *MercadoPago) checkout(ctx context.Context, req domain.ChargeRequest) (*domain.Charge, error) {
	expires := m.clock.Now().Add(m.expiry)
	body := preferenceRequest{
		Items: []preferenceItem{{
			Title:      "Recarga de saldo",
			Quantity:   1,
			UnitPrice:  toUnits(req),
			CurrencyID: "BRL",
		}},
		ExternalReference: req.Reference,
		Expires:           true,
		ExpirationDateTo:  expires.Format("2006-01-02T15:04:05.000-07:00"),
	}
	var out preferenceResponse
	if err := m.post(ctx, "/checkout/preferences", req.Reference, body, &out); err != nil {
		return nil, err
	}
	if out.InitPoint == "" {
		return nil, errs.Mark(errs.Newf("preference %s has no init point", out.ID), ErrProviderRejected)
	}
	return &domain.Charge{ProviderRef: out.ID, TicketURL: out.InitPoint, ExpiresAt: expires}, nil
}

func (m *MercadoPago) post(ctx context.Context, path, idempotencyKey string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return errs.Wrap(err, "failed to encode charge")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.token)
	if idempotencyKey != "" {
		req.Header.Set("X-Idempotency-Key", idempotencyKey)
	}

	resp, err := m.http.Do(req)
	if err != nil {
		return errs.Wrap(err, "mercadopago request")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errs.Wrap(err, "failed to read mercadopago response")
	}
	if resp.StatusCode/100 != 2 {
		m.logger.Warn("mercadopago rejected request", "path", path, "status", resp.StatusCode)
		return errs.Mark(errs.Newf("mercadopago status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw))), ErrProviderRejected)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errs.Wrap(err, "failed to decode mercadopago response")
	}
	return nil
}

// Amounts go out as decimal units; tiers are whole cents so the float is exact
// to two places.
func toUnits(req domain.ChargeRequest) float64 {
	return float64(req.Amount.Int64()) / 100
}
