package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/leadcapture/internal/infra/http/middleware"
	"github.com/xavierca1/leadcapture/internal/usecase"
)

const maxWebhookBody = 1 << 20

type WebhookVerifier interface {
	Verify(ctx context.Context, mode, token string) bool
}

type LeadCapturer interface {
	Execute(ctx context.Context, in usecase.InboundMessage) usecase.CaptureLeadOutput
}

// WebhookHandler serves the provider callback. POST always answers 200:
// the provider retries anything else and would flood us with duplicates.
type WebhookHandler struct {
	Verifier    WebhookVerifier
	CaptureLead LeadCapturer
	Logger      *zap.Logger
}

func NewWebhookHandler(verifier WebhookVerifier, captureLead LeadCapturer, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		Verifier:    verifier,
		CaptureLead: captureLead,
		Logger:      logger,
	}
}

// Verify answers the subscription handshake (GET).
func (h *WebhookHandler) Verify(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	mode := q.Get("hub.mode")
	token := q.Get("hub.verify_token")
	challenge := q.Get("hub.challenge")

	if !h.Verifier.Verify(r.Context(), mode, token) {
		h.Logger.Warn("webhook verification rejected", zap.String("mode", mode))
		writeText(w, http.StatusForbidden, "Verification error")
		return
	}

	writeText(w, http.StatusOK, challenge)
}

// Receive ingests an event notification (POST).
func (h *WebhookHandler) Receive(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil || len(body) == 0 {
		if err != nil {
			h.Logger.Warn("webhook: unreadable body", zap.Error(err))
		}
		writeText(w, http.StatusOK, "no data")
		return
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil || empty(raw) {
		if err != nil {
			h.Logger.Warn("webhook: malformed payload", zap.Error(err))
		}
		writeText(w, http.StatusOK, "no data")
		return
	}

	var event webhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		h.Logger.Warn("webhook: malformed payload", zap.Error(err))
		writeText(w, http.StatusOK, "no data")
		return
	}

	value, ok := event.firstValue()
	if !ok || len(value.Messages) == 0 {
		writeText(w, http.StatusOK, "OK")
		return
	}

	msg := value.Messages[0]
	in := usecase.InboundMessage{
		Phone:         msg.From,
		Name:          value.senderName(),
		Text:          msg.Text.Body,
		PhoneNumberID: value.Metadata.PhoneNumberID,
	}

	h.capture(r.Context(), in)
	writeText(w, http.StatusOK, "EVENT_RECEIVED")
}

// capture runs detached from client cancellation so a provider hang-up
// does not abort the store or the reply; the reply has its own timeout.
func (h *WebhookHandler) capture(ctx context.Context, in usecase.InboundMessage) {
	defer func() {
		if rec := recover(); rec != nil {
			h.Logger.Error("webhook: panic while capturing lead", zap.Any("panic", rec))
		}
	}()

	out := h.CaptureLead.Execute(context.WithoutCancel(ctx), in)

	middleware.RecordLeadCaptured(out.DefaultTenant, out.LeadStored)
	middleware.RecordAutoReply(string(out.ReplyStatus))
	if !out.LeadStored {
		middleware.RecordIntegrationError("database")
	}
	if out.ReplyStatus == usecase.ReplyFailed {
		middleware.RecordIntegrationError("whatsapp")
	}
}

// empty reports JSON values that carry nothing: null, false, 0, "", {} and [].
func empty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case float64:
		return t == 0
	case string:
		return t == ""
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	}
	return false
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	io.WriteString(w, body)
}
