package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/leadcapture/internal/infra/http/session"
	"github.com/xavierca1/leadcapture/internal/infra/http/views"
)

// Pages renders HTML pages with the session state every page needs.
type Pages struct {
	Sessions *session.Manager
	Views    *views.Renderer
	Logger   *zap.Logger
}

func NewPages(sessions *session.Manager, renderer *views.Renderer, logger *zap.Logger) *Pages {
	return &Pages{Sessions: sessions, Views: renderer, Logger: logger}
}

func (p *Pages) Render(w http.ResponseWriter, r *http.Request, name string, data views.PageData) {
	_, data.LoggedIn = p.Sessions.UserID(r)
	data.Flashes = p.Sessions.Flashes(w, r)

	if err := p.Views.Render(w, http.StatusOK, name, data); err != nil {
		p.InternalError(w, r, err)
	}
}

// FlashRedirect stores a user-facing message and sends the browser to url.
func (p *Pages) FlashRedirect(w http.ResponseWriter, r *http.Request, category, message, url string) {
	p.Sessions.AddFlash(w, r, category, message)
	http.Redirect(w, r, url, http.StatusSeeOther)
}

func (p *Pages) InternalError(w http.ResponseWriter, r *http.Request, err error) {
	p.Logger.Error("request failed",
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
