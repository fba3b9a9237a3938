package views

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/leadcapture/internal/entity"
	"github.com/xavierca1/leadcapture/internal/infra/http/session"
)

func TestRenderAllPages(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	for _, name := range pages {
		w := httptest.NewRecorder()
		data := PageData{
			User:    &entity.User{},
			Flashes: []session.Flash{{Category: "danger", Message: "Wrong email or password"}},
		}
		require.NoError(t, r.Render(w, 200, name, data), name)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "Wrong email or password")
	}
}

func TestRenderDashboardEscapesLeadText(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	err = r.Render(w, 200, "dashboard", PageData{
		LoggedIn: true,
		Total:    1,
		Leads: []*entity.Lead{
			{ID: 1, Phone: "91900000001", Name: "Asha", Message: "<script>alert(1)</script>", Timestamp: time.Now()},
		},
	})
	require.NoError(t, err)
	assert.NotContains(t, w.Body.String(), "<script>")
	assert.Contains(t, w.Body.String(), "Total leads: 1")
	assert.Contains(t, w.Body.String(), "91900000001")
}

func TestRenderSettingsMasksToken(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	err = r.Render(w, 200, "settings", PageData{
		LoggedIn: true,
		User: &entity.User{WhatsAppCredentials: entity.WhatsAppCredentials{
			AccessToken:   "EAAB-secret-token-1234",
			PhoneNumberID: "555",
		}},
	})
	require.NoError(t, err)
	assert.NotContains(t, w.Body.String(), "EAAB-secret-token")
	assert.Contains(t, w.Body.String(), "1234")
}

func TestRenderUnknownPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	assert.Error(t, r.Render(httptest.NewRecorder(), 200, "nope", PageData{}))
}
