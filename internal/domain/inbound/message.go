package inbound

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

type Type string

const (
	TypeText        Type = "text"
	TypeInteractive Type = "interactive"
	TypeImage       Type = "image"
	TypeDocument    Type = "document"
	TypeAudio       Type = "audio"
	TypeVideo       Type = "video"
	TypeSticker     Type = "sticker"
	TypeButton      Type = "button"
	TypeUnknown     Type = "unknown"
)

// MediaRef points at provider-hosted media; the engine never downloads it.
type MediaRef struct {
	ID       string
	MimeType string
	Filename string
}

// Message is the canonical form of one inbound provider event.
type Message struct {
	SenderID          string
	SenderName        string
	Type              Type
	Text              string
	ReplyID           string
	Media             *MediaRef
	ProviderMessageID string
	Timestamp         time.Time
}

func (m *Message) HasReplyID() bool {
	return m != nil && m.ReplyID != ""
}

// Envelope carries the business-side identifiers of a delivery, used by the
// transport to resolve which owner the webhook belongs to.
type Envelope struct {
	PhoneNumberID      string
	DisplayPhoneNumber string
}

// ParseEnvelope returns the metadata of the first change in the payload.
func ParseEnvelope(raw []byte) (Envelope, bool) {
	var p webhookPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Envelope{}, false
	}
	for _, e := range p.Entry {
		for _, c := range e.Changes {
			if c.Value.Metadata.PhoneNumberID != "" {
				return Envelope{
					PhoneNumberID:      c.Value.Metadata.PhoneNumberID,
					DisplayPhoneNumber: c.Value.Metadata.DisplayPhoneNumber,
				}, true
			}
		}
	}
	return Envelope{}, false
}

// Normalize turns one webhook delivery into a Message. It returns nil when
// the delivery carries nothing actionable: status-only callbacks, echoes of
// the bot's own number, system/unknown message types, or garbage input.
func Normalize(raw []byte, botNumber string) *Message {
	var p webhookPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil
	}

	value, msg, ok := firstMessage(p)
	if !ok {
		return nil
	}

	from := digitsOnly(msg.From)
	if from == "" {
		return nil
	}
	if bot := digitsOnly(botNumber); bot != "" && from == bot {
		return nil
	}

	typ := mapType(msg.Type)
	if typ == TypeUnknown {
		return nil
	}

	out := &Message{
		SenderID:          from,
		SenderName:        senderName(value, msg.From),
		Type:              typ,
		ProviderMessageID: msg.ID,
		Timestamp:         parseTimestamp(msg.Timestamp),
	}

	switch typ {
	case TypeText:
		if msg.Text != nil {
			out.Text = msg.Text.Body
		}
	case TypeInteractive:
		out.ReplyID, out.Text = interactiveReply(msg.Interactive)
	case TypeButton:
		if msg.Button != nil {
			out.ReplyID = firstNonEmpty(msg.Button.Payload, msg.Button.Text)
			out.Text = msg.Button.Text
		}
	default:
		if m := mediaOf(msg, typ); m != nil {
			out.Text = m.Caption
			out.Media = &MediaRef{ID: m.ID, MimeType: m.MimeType, Filename: m.Filename}
		}
	}

	out.Text = strings.TrimSpace(out.Text)
	out.ReplyID = strings.TrimSpace(out.ReplyID)
	return out
}

func firstMessage(p webhookPayload) (webhookValue, providerMsg, bool) {
	for _, e := range p.Entry {
		for _, c := range e.Changes {
			if len(c.Value.Messages) > 0 {
				return c.Value, c.Value.Messages[0], true
			}
		}
	}
	return webhookValue{}, providerMsg{}, false
}

func mapType(t string) Type {
	switch Type(t) {
	case TypeText, TypeInteractive, TypeImage, TypeDocument, TypeAudio, TypeVideo, TypeSticker, TypeButton:
		return Type(t)
	default:
		// "system", "unknown", "unsupported", reactions and anything new
		return TypeUnknown
	}
}

// list_reply wins over button_reply; the title is the fallback text.
func interactiveReply(in *interactive) (id, text string) {
	if in == nil {
		return "", ""
	}
	if in.ListReply != nil && in.ListReply.ID != "" {
		return in.ListReply.ID, in.ListReply.Title
	}
	if in.ButtonReply != nil {
		return firstNonEmpty(in.ButtonReply.ID, in.ButtonReply.Payload), in.ButtonReply.Title
	}
	if in.ListReply != nil {
		return "", in.ListReply.Title
	}
	return "", ""
}

func mediaOf(msg providerMsg, typ Type) *media {
	switch typ {
	case TypeImage:
		return msg.Image
	case TypeDocument:
		return msg.Document
	case TypeAudio:
		return msg.Audio
	case TypeVideo:
		return msg.Video
	case TypeSticker:
		return msg.Sticker
	default:
		return nil
	}
}

func senderName(v webhookValue, from string) string {
	for _, c := range v.Contacts {
		if c.WaID == from {
			return strings.TrimSpace(c.Profile.Name)
		}
	}
	return ""
}

func parseTimestamp(s string) time.Time {
	secs, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || secs <= 0 {
		return time.Time{}
	}
	return time.Unix(secs, 0).UTC()
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// NormalizePhone strips everything but digits so phone numbers from the
// provider, config and admin input compare equal.
func NormalizePhone(s string) string {
	return digitsOnly(s)
}
