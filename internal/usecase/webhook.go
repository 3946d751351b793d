package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"time"

	"shopbot/internal/domain/inbound"
	"shopbot/internal/domain/owner"
	"shopbot/internal/infra"
	"shopbot/internal/pkg/clock"
	"shopbot/internal/pkg/errs"
	"shopbot/internal/usecase/flow"

	"github.com/google/uuid"
)

var (
	ErrVerificationFailed = errors.New("webhook verification failed")
	ErrEnvelopeMismatch   = errors.New("webhook addressed to another phone number")
)

type OwnerRepository interface {
	OwnerByID(ctx context.Context, ownerID uuid.UUID) (*owner.Owner, error)
}

type InboundEventRepository interface {
	TryInsert(ctx context.Context, ownerID uuid.UUID, providerMessageID string, expiresAt time.Time) (bool, error)
}

// Delivery describes what happened to one webhook call.
type Delivery struct {
	Outcome   flow.Outcome
	Duplicate bool
}

type WebhookUseCase interface {
	Verify(mode, token, challenge string) (string, error)
	Receive(ctx context.Context, ownerID uuid.UUID, raw []byte) (Delivery, error)
}

type webhookUseCaseImpl struct {
	owners      OwnerRepository
	events      InboundEventRepository
	engine      flow.Engine
	verifyToken string
	dedupeTTL   time.Duration
	clock       clock.Clock
	logger      *slog.Logger
}

func NewWebhookUseCase(
	owners OwnerRepository,
	events InboundEventRepository,
	engine flow.Engine,
	verifyToken string,
	dedupeTTL time.Duration,
	clock clock.Clock,
	logger *slog.Logger,
) WebhookUseCase {
	return &webhookUseCaseImpl{
		owners:      owners,
		events:      events,
		engine:      engine,
		verifyToken: verifyToken,
		dedupeTTL:   dedupeTTL,
		clock:       clock,
		logger:      logger.With(slog.String("component", "webhook")),
	}
}

// Verify answers the provider's subscription handshake.
func (w *webhookUseCaseImpl) Verify(mode, token, challenge string) (string, error) {
	if mode != "subscribe" || w.verifyToken == "" {
		return "", ErrVerificationFailed
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(w.verifyToken)) != 1 {
		return "", ErrVerificationFailed
	}
	return challenge, nil
}

// Receive resolves the owner, drops redeliveries of an already seen provider
// message id and hands the rest to the flow engine.
func (w *webhookUseCaseImpl) Receive(ctx context.Context, ownerID uuid.UUID, raw []byte) (Delivery, error) {
	o, err := w.owners.OwnerByID(ctx, ownerID)
	if err != nil {
		if infra.IsNotFound(err) {
			return Delivery{}, errs.ErrOwnerNotFound
		}
		return Delivery{}, errs.Wrap(err, "failed to resolve owner")
	}
	if !o.Active {
		return Delivery{}, errs.ErrOwnerInactive
	}

	if env, ok := inbound.ParseEnvelope(raw); ok && o.PhoneNumberID != "" && env.PhoneNumberID != o.PhoneNumberID {
		w.logger.Warn("phone number id does not match owner",
			"owner_id", o.ID.String(),
			"phone_number_id", env.PhoneNumberID)
		return Delivery{}, ErrEnvelopeMismatch
	}

	msg := inbound.Normalize(raw, o.BotNumber)
	if msg == nil {
		return Delivery{Outcome: flow.OutcomeIgnored}, nil
	}

	if msg.ProviderMessageID != "" {
		fresh, err := w.events.TryInsert(ctx, o.ID, msg.ProviderMessageID, w.clock.Now().Add(w.dedupeTTL))
		if err != nil {
			return Delivery{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !fresh {
			w.logger.Info("duplicate delivery dropped",
				"owner_id", o.ID.String(),
				"message_id", msg.ProviderMessageID)
			return Delivery{Outcome: flow.OutcomeIgnored, Duplicate: true}, nil
		}
	}

	return Delivery{Outcome: w.engine.HandleInboundEvent(ctx, *o, raw)}, nil
}
