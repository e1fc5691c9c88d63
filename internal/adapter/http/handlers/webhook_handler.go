package handlers

import (
	"log"
	"net/http"

	request "rede_saude/internal/adapter/http/dto/request"
	"rede_saude/internal/domain/entities"
	"rede_saude/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// SettlementPublisher is the hub side the webhook feeds.
type SettlementPublisher interface {
	Publish(transactionID string)
}

// WebhookHandler receives the billing provider's payment notifications and
// feeds confirmed settlements into the hub. The notification itself only
// carries the transaction id; the status is confirmed against the provider
// before anything is published, so a spoofed or premature notification can
// never settle a charge.

type WebhookHandler struct {
	publisher SettlementPublisher
	gateway   interfaces.IPaymentGateway
}

func NewWebhookHandler(publisher SettlementPublisher, gateway interfaces.IPaymentGateway) *WebhookHandler {
	return &WebhookHandler{publisher: publisher, gateway: gateway}
}

// HandlePaymentNotification always answers 200 for well-formed events the
// provider should not redeliver; only malformed payloads get a 400.
func (h *WebhookHandler) HandlePaymentNotification(c *gin.Context) {
	var payload request.WebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[settlement][webhook] malformed payload err=%v", err)
		c.Status(http.StatusBadRequest)
		return
	}

	if payload.Type != "payment" || payload.TransactionID() == "" {
		log.Printf("[settlement][webhook] ignoring event type=%q", payload.Type)
		c.Status(http.StatusOK)
		return
	}

	txID := payload.TransactionID()
	status, err := h.gateway.GetChargeStatus(c.Request.Context(), txID)
	if err != nil {
		// Answer 5xx so the provider redelivers once the transient fault
		// clears.
		log.Printf("[settlement][webhook] status fetch failed transaction_id=%s err=%v", txID, err)
		c.Status(http.StatusBadGateway)
		return
	}

	if status == entities.ChargeStatusPaid {
		log.Printf("[settlement][webhook] settlement confirmed transaction_id=%s", txID)
		h.publisher.Publish(txID)
	} else {
		log.Printf("[settlement][webhook] charge not settled yet transaction_id=%s status=%s", txID, status)
	}

	c.Status(http.StatusOK)
}
