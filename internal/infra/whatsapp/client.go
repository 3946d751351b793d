package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"shopbot/internal/domain/outbound"
	"shopbot/internal/pkg/errs"
)

const (
	maxTextBody        = 4096
	maxInteractiveBody = 1024
	maxListButton      = 20
	maxSectionTitle    = 24
	maxCaption         = 1024
)

var ErrSendFailed = errs.New("whatsapp send failed")

// Client posts messages to the WhatsApp Cloud API. Everything is clipped to
// the provider limits before it leaves; nothing is retried.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(baseURL, token string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With(slog.String("component", "whatsapp")),
	}
}

func (c *Client) SendText(ctx context.Context, from, to, body string) error {
	return c.send(ctx, from, sendRequest{
		To:   to,
		Type: "text",
		Text: &textPart{Body: outbound.Clip(body, maxTextBody), PreviewURL: strings.Contains(body, "http")},
	})
}

// SendButtons sends up to three reply buttons; extra buttons are dropped.
func (c *Client) SendButtons(ctx context.Context, from, to, body string, buttons []outbound.Button) error {
	if len(buttons) == 0 {
		return c.SendText(ctx, from, to, body)
	}
	if len(buttons) > outbound.MaxButtons {
		c.logger.Warn("dropping buttons over provider limit", "count", len(buttons))
		buttons = buttons[:outbound.MaxButtons]
	}
	parts := make([]buttonPart, 0, len(buttons))
	for _, b := range buttons {
		parts = append(parts, buttonPart{
			Type:  "reply",
			Reply: replyPart{ID: b.ID, Title: outbound.Clip(b.Title, outbound.MaxButtonTitle)},
		})
	}
	return c.send(ctx, from, sendRequest{
		To:   to,
		Type: "interactive",
		Interactive: &interactivePart{
			Type:   "button",
			Body:   bodyPart{Text: outbound.Clip(body, maxInteractiveBody)},
			Action: actionPart{Buttons: parts},
		},
	})
}

// SendList sends a list message. Rows past the provider's total of ten are
// dropped.
func (c *Client) SendList(ctx context.Context, from, to string, list outbound.List) error {
	if list.RowCount() == 0 {
		return c.SendText(ctx, from, to, list.Body)
	}
	budget := outbound.MaxListRows
	sections := make([]sectionPart, 0, len(list.Sections))
	for _, s := range list.Sections {
		if budget == 0 {
			break
		}
		rows := s.Rows
		if len(rows) > budget {
			rows = rows[:budget]
		}
		budget -= len(rows)
		part := sectionPart{Title: outbound.Clip(s.Title, maxSectionTitle)}
		for _, r := range rows {
			part.Rows = append(part.Rows, rowPart{
				ID:          r.ID,
				Title:       outbound.Clip(r.Title, outbound.MaxRowTitle),
				Description: outbound.Clip(r.Description, outbound.MaxRowDescription),
			})
		}
		sections = append(sections, part)
	}
	if list.RowCount() > outbound.MaxListRows {
		c.logger.Warn("dropping list rows over provider limit", "count", list.RowCount())
	}
	label := list.ButtonLabel
	if label == "" {
		label = "Menu"
	}
	return c.send(ctx, from, sendRequest{
		To:   to,
		Type: "interactive",
		Interactive: &interactivePart{
			Type:   "list",
			Body:   bodyPart{Text: outbound.Clip(list.Body, maxInteractiveBody)},
			Action: actionPart{Button: outbound.Clip(label, maxListButton), Sections: sections},
		},
	})
}

func (c *Client) SendMedia(ctx context.Context, from, to string, media outbound.Media) error {
	part := &mediaPart{Link: media.URL, Caption: outbound.Clip(media.Caption, maxCaption)}
	req := sendRequest{To: to, Type: string(media.Kind)}
	switch media.Kind {
	case outbound.MediaImage:
		req.Image = part
	case outbound.MediaVideo:
		req.Video = part
	case outbound.MediaAudio:
		// audio messages carry no caption
		part.Caption = ""
		req.Audio = part
	default:
		req.Type = string(outbound.MediaDocument)
		part.Filename = media.Filename
		req.Document = part
	}
	return c.send(ctx, from, req)
}

func (c *Client) send(ctx context.Context, phoneNumberID string, body sendRequest) error {
	if phoneNumberID == "" {
		return errs.Mark(errs.New("missing phone number id"), ErrSendFailed)
	}
	body.MessagingProduct = "whatsapp"
	body.RecipientType = "individual"

	payload, err := json.Marshal(body)
	if err != nil {
		return errs.Wrap(err, "failed to encode message")
	}

	url := c.baseURL + "/" + phoneNumberID + "/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "whatsapp request"), ErrSendFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var apiErr errorResponse
		msg := strings.TrimSpace(string(raw))
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			msg = apiErr.Error.Message
		}
		return errs.Mark(errs.Newf("whatsapp status %d: %s", resp.StatusCode, msg), ErrSendFailed)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
