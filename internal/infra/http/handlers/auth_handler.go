package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/leadcapture/internal/entity"
	"github.com/xavierca1/leadcapture/internal/infra/http/views"
	"github.com/xavierca1/leadcapture/internal/usecase"
)

type Authenticator interface {
	Signup(ctx context.Context, input usecase.SignupInput) (*entity.User, error)
	Login(ctx context.Context, input usecase.LoginInput) (*entity.User, error)
}

type AuthHandler struct {
	Auth  Authenticator
	Pages *Pages
}

func NewAuthHandler(auth Authenticator, pages *Pages) *AuthHandler {
	return &AuthHandler{Auth: auth, Pages: pages}
}

func (h *AuthHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.Pages.Render(w, r, "index", views.PageData{})
}

func (h *AuthHandler) SignupPage(w http.ResponseWriter, r *http.Request) {
	h.Pages.Render(w, r, "signup", views.PageData{})
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	input := usecase.SignupInput{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	user, err := h.Auth.Signup(r.Context(), input)
	if err != nil {
		if usecase.IsDomainError(err) {
			h.Pages.FlashRedirect(w, r, "danger", err.Error(), "/signup")
			return
		}
		h.Pages.InternalError(w, r, err)
		return
	}

	h.Pages.Logger.Info("user signed up", zap.String("user_id", user.ID))
	h.Pages.FlashRedirect(w, r, "success", "Account created! You can now log in.", "/login")
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.Pages.Render(w, r, "login", views.PageData{})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	input := usecase.LoginInput{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	user, err := h.Auth.Login(r.Context(), input)
	if err != nil {
		if usecase.IsDomainError(err) {
			h.Pages.FlashRedirect(w, r, "danger", usecase.ErrInvalidCredentials.Message, "/login")
			return
		}
		h.Pages.InternalError(w, r, err)
		return
	}

	if err := h.Pages.Sessions.Login(w, r, user.ID); err != nil {
		h.Pages.InternalError(w, r, err)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Pages.Sessions.Logout(w, r); err != nil {
		h.Pages.Logger.Warn("failed to clear session", zap.Error(err))
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}
