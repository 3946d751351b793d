package flow

import (
	"context"

	"shopbot/internal/domain/outbound"
	"shopbot/internal/domain/replyid"
	"shopbot/internal/usecase/shared"
)

func (e *engine) openSupport(ctx context.Context, req *request) (Outcome, error) {
	threadID, err := e.transcript.Open(ctx, req.owner.ID, req.sender())
	if err != nil {
		return OutcomeFailed, err
	}
	if err := e.conversations.SetSupportHandoff(ctx, req.owner.ID, req.sender(), true); err != nil {
		return OutcomeFailed, err
	}
	req.conv.SupportHandoffOpen = true
	req.log.Info("support handoff opened", "thread_id", threadID.String())

	e.buttons(ctx, req, msgSupportOpened, []outbound.Button{
		{ID: replyid.SupportFinish, Title: labelFinish},
	})
	e.appendOutbound(ctx, req, msgSupportOpened)

	if e.notifier != nil {
		if err := e.notifier.NotifySupportRequest(ctx, req.owner, *req.customer); err != nil {
			req.log.Warn("support notification failed", "error", err)
		}
	}
	return OutcomeHandled, nil
}

// transcribe stores the message for the human agent. Nothing is sent back.
func (e *engine) transcribe(ctx context.Context, req *request) (Outcome, error) {
	entry := shared.TranscriptEntry{
		Direction: shared.TranscriptInbound,
		Body:      req.msg.Text,
	}
	if req.msg.Media != nil {
		entry.MediaID = req.msg.Media.ID
	}
	if entry.Body == "" && entry.MediaID == "" {
		entry.Body = "[" + string(req.msg.Type) + "]"
	}
	if err := e.transcript.Append(ctx, req.owner.ID, req.sender(), entry); err != nil {
		return OutcomeFailed, err
	}
	return OutcomeTranscribed, nil
}

func (e *engine) finishSupport(ctx context.Context, req *request) (Outcome, error) {
	e.say(ctx, req, msgSupportClosed)
	e.appendOutbound(ctx, req, msgSupportClosed)

	closed, err := e.transcript.Close(ctx, req.owner.ID, req.sender())
	if err != nil {
		return OutcomeFailed, err
	}
	if !closed {
		req.log.Warn("support handoff had no open thread")
	}
	if err := e.conversations.SetSupportHandoff(ctx, req.owner.ID, req.sender(), false); err != nil {
		return OutcomeFailed, err
	}
	req.conv.SupportHandoffOpen = false
	return e.mainMenu(ctx, req)
}

func (e *engine) appendOutbound(ctx context.Context, req *request, body string) {
	entry := shared.TranscriptEntry{Direction: shared.TranscriptOutbound, Body: body}
	if err := e.transcript.Append(ctx, req.owner.ID, req.sender(), entry); err != nil {
		req.log.Warn("failed to append outbound transcript", "error", err)
	}
}
