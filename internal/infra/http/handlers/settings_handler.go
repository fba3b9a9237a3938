package handlers

import (
	"context"
	"net/http"

	"github.com/xavierca1/leadcapture/internal/entity"
	"github.com/xavierca1/leadcapture/internal/infra/http/session"
	"github.com/xavierca1/leadcapture/internal/infra/http/views"
	"github.com/xavierca1/leadcapture/internal/usecase"
)

type SettingsService interface {
	Get(ctx context.Context, userID string) (*entity.User, error)
	UpdateWhatsApp(ctx context.Context, userID string, input usecase.WhatsAppSettingsInput) error
}

type SettingsHandler struct {
	Settings SettingsService
	Pages    *Pages
}

func NewSettingsHandler(settings SettingsService, pages *Pages) *SettingsHandler {
	return &SettingsHandler{Settings: settings, Pages: pages}
}

func (h *SettingsHandler) Page(w http.ResponseWriter, r *http.Request) {
	user, err := h.Settings.Get(r.Context(), session.UserIDFromContext(r.Context()))
	if err != nil {
		h.Pages.InternalError(w, r, err)
		return
	}
	h.Pages.Render(w, r, "settings", views.PageData{User: user})
}

func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := session.UserIDFromContext(ctx)

	input := usecase.WhatsAppSettingsInput{
		AccessToken:   r.PostFormValue("access_token"),
		PhoneNumberID: r.PostFormValue("phone_number_id"),
		VerifyToken:   r.PostFormValue("verify_token"),
	}

	// The stored token is never echoed back to the form.
	if input.AccessToken == "" && r.PostFormValue("keep_access_token") != "" {
		current, err := h.Settings.Get(ctx, userID)
		if err != nil {
			h.Pages.InternalError(w, r, err)
			return
		}
		input.AccessToken = current.AccessToken
	}

	if err := h.Settings.UpdateWhatsApp(ctx, userID, input); err != nil {
		if usecase.IsDomainError(err) {
			h.Pages.FlashRedirect(w, r, "danger", err.Error(), "/settings")
			return
		}
		h.Pages.InternalError(w, r, err)
		return
	}

	h.Pages.FlashRedirect(w, r, "success", "Settings saved.", "/settings")
}
