package handlers

import (
	"bytes"
	"net/http"

	"github.com/gocarina/gocsv"

	"github.com/xavierca1/leadcapture/internal/entity"
	"github.com/xavierca1/leadcapture/internal/infra/http/session"
	"github.com/xavierca1/leadcapture/internal/infra/http/views"
)

// DashboardHandler serves the owner's lead list. Routes sit behind
// RequireAuth, so the user id always comes from the session.
type DashboardHandler struct {
	LeadRepo entity.LeadRepositoryInterface
	Pages    *Pages
}

func NewDashboardHandler(leadRepo entity.LeadRepositoryInterface, pages *Pages) *DashboardHandler {
	return &DashboardHandler{LeadRepo: leadRepo, Pages: pages}
}

func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	leads, err := h.LeadRepo.ListByUser(r.Context(), session.UserIDFromContext(r.Context()))
	if err != nil {
		h.Pages.InternalError(w, r, err)
		return
	}

	h.Pages.Render(w, r, "dashboard", views.PageData{
		Leads: leads,
		Total: len(leads),
	})
}

// Export downloads the same list as leads.csv.
func (h *DashboardHandler) Export(w http.ResponseWriter, r *http.Request) {
	leads, err := h.LeadRepo.ListByUser(r.Context(), session.UserIDFromContext(r.Context()))
	if err != nil {
		h.Pages.InternalError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := writeLeadsCSV(&buf, leads); err != nil {
		h.Pages.InternalError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="leads.csv"`)
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

// writeLeadsCSV emits the header row (taken from the csv tags on
// entity.Lead) even for an empty list.
func writeLeadsCSV(buf *bytes.Buffer, leads []*entity.Lead) error {
	return gocsv.Marshal(leads, buf)
}
