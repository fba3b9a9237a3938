package views

import (
	"github.com/xavierca1/leadcapture/internal/entity"
	"github.com/xavierca1/leadcapture/internal/infra/http/session"
)

// PageData is the single view model shared by all pages.
type PageData struct {
	LoggedIn bool
	Flashes  []session.Flash
	Leads    []*entity.Lead
	Total    int
	User     *entity.User
}
