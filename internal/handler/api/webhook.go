package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"shopbot/internal/handler/httperr"
	"shopbot/internal/handler/middleware"
	"shopbot/internal/pkg/errs"
	"shopbot/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// provider payloads are small; anything bigger is not a webhook
const maxWebhookBody = 1 << 20

type WebhookHandler struct {
	uc     usecase.WebhookUseCase
	logger *slog.Logger
}

func NewWebhookHandler(uc usecase.WebhookUseCase, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{uc: uc, logger: logger.With(slog.String("component", "webhook_handler"))}
}

// @Summary Verify webhook subscription
// @Description Answers the WhatsApp Cloud API verification handshake
// @Tags webhooks
// @Produce plain
// @Param ownerID path string true "Owner ID"
// @Param hub.mode query string true "Subscription mode"
// @Param hub.verify_token query string true "Verify token"
// @Param hub.challenge query string true "Challenge echoed back"
// @Success 200 {string} string
// @Failure 403 {object} httperr.Response
// @Router /webhooks/whatsapp/{ownerID} [get]
func (h *WebhookHandler) Verify(c *gin.Context) {
	challenge, err := h.uc.Verify(c.Query("hub.mode"), c.Query("hub.verify_token"), c.Query("hub.challenge"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusForbidden, err, "Verification failed", nil)
		return
	}
	c.String(http.StatusOK, challenge)
}

// @Summary Receive webhook
// @Description Processes one WhatsApp delivery. Always answers 200 so the provider does not redeliver.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param ownerID path string true "Owner ID"
// @Success 200 {object} map[string]string
// @Router /webhooks/whatsapp/{ownerID} [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	log := h.logger.With(slog.String("request_id", middleware.GetRequestID(c)))

	ownerID, err := uuid.Parse(c.Param("ownerID"))
	if err != nil {
		log.Warn("webhook for malformed owner id", "owner_id", c.Param("ownerID"))
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		log.Warn("failed to read webhook body", "error", err)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	// the provider may hang up before a purchase finishes; the work must not
	ctx := context.WithoutCancel(c.Request.Context())
	delivery, err := h.uc.Receive(ctx, ownerID, raw)
	switch {
	case err == nil:
	case errs.Is(err, errs.ErrOwnerNotFound), errs.Is(err, errs.ErrOwnerInactive), errs.Is(err, usecase.ErrEnvelopeMismatch):
		log.Warn("webhook rejected", "owner_id", ownerID.String(), "error", err)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	default:
		log.Error("webhook processing failed", "owner_id", ownerID.String(), "error", err)
		c.JSON(http.StatusOK, gin.H{"status": "error"})
		return
	}

	status := delivery.Outcome.String()
	if delivery.Duplicate {
		status = "duplicate"
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}
