//go:build unit || e2e

package builder

import (
	"encoding/json"
	"fmt"
)

// WebhookBuilder assembles WhatsApp Cloud API deliveries carrying one message.
type WebhookBuilder struct {
	phoneNumberID string
	displayPhone  string
	senderID      string
	senderName    string
	messageID     string
	message       map[string]any
}

func NewWebhookBuilder() *WebhookBuilder {
	return &WebhookBuilder{
		phoneNumberID: "PNID",
		displayPhone:  "551140000000",
		senderID:      "5511999990000",
		senderName:    "Ana",
		messageID:     "wamid.HBgN1",
		message:       map[string]any{"type": "text", "text": map[string]any{"body": "oi"}},
	}
}

func (b *WebhookBuilder) WithPhoneNumberID(id string) *WebhookBuilder {
	b.phoneNumberID = id
	return b
}

func (b *WebhookBuilder) WithSender(id, name string) *WebhookBuilder {
	b.senderID = id
	b.senderName = name
	return b
}

func (b *WebhookBuilder) WithMessageID(id string) *WebhookBuilder {
	b.messageID = id
	return b
}

func (b *WebhookBuilder) WithText(body string) *WebhookBuilder {
	b.message = map[string]any{"type": "text", "text": map[string]any{"body": body}}
	return b
}

func (b *WebhookBuilder) WithButtonReply(id, title string) *WebhookBuilder {
	b.message = map[string]any{
		"type": "interactive",
		"interactive": map[string]any{
			"type":         "button_reply",
			"button_reply": map[string]any{"id": id, "title": title},
		},
	}
	return b
}

func (b *WebhookBuilder) WithListReply(id, title string) *WebhookBuilder {
	b.message = map[string]any{
		"type": "interactive",
		"interactive": map[string]any{
			"type":       "list_reply",
			"list_reply": map[string]any{"id": id, "title": title},
		},
	}
	return b
}

func (b *WebhookBuilder) Build() []byte {
	msg := map[string]any{"from": b.senderID, "id": b.messageID, "timestamp": "1772370000"}
	for k, v := range b.message {
		msg[k] = v
	}
	payload := map[string]any{
		"object": "whatsapp_business_account",
		"entry": []any{map[string]any{
			"id": "WABA",
			"changes": []any{map[string]any{
				"field": "messages",
				"value": map[string]any{
					"messaging_product": "whatsapp",
					"metadata":          map[string]any{"display_phone_number": b.displayPhone, "phone_number_id": b.phoneNumberID},
					"contacts":          []any{map[string]any{"wa_id": b.senderID, "profile": map[string]any{"name": b.senderName}}},
					"messages":          []any{msg},
				},
			}},
		}},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		panic(fmt.Sprintf("webhook builder: %v", err))
	}
	return raw
}

// BuildStatus is a delivery receipt with no inbound message.
func (b *WebhookBuilder) BuildStatus() []byte {
	return []byte(fmt.Sprintf(`{"object":"whatsapp_business_account","entry":[{"id":"WABA","changes":[{"field":"messages","value":{
		"messaging_product":"whatsapp",
		"metadata":{"display_phone_number":%q,"phone_number_id":%q},
		"statuses":[{"id":%q,"status":"delivered","recipient_id":%q}]}}]}]}`,
		b.displayPhone, b.phoneNumberID, b.messageID, b.senderID))
}
